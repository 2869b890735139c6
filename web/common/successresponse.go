package common

// SuccessResponse wraps every successful payload in a data envelope so
// clients can distinguish results from error messages.
type SuccessResponse struct {
	Data interface{} `json:"data"`
}

func NewSuccessResponse(data interface{}) *SuccessResponse {
	return &SuccessResponse{
		Data: data,
	}
}
