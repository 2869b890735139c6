package attendance

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sitepay.com/sitepay/core"
	"sitepay.com/sitepay/core/models"
	"sitepay.com/sitepay/utils"
	web "sitepay.com/sitepay/web/common"
	"sitepay.com/sitepay/web/middlewares"
)

const recentDays = 7

type Endpoint struct {
	base web.Handler
}

func Register(r *gin.RouterGroup, dm *core.DatabaseManager) {
	endpoint := &Endpoint{base: web.Handler{Dm: dm}}
	r.POST("/attendance", endpoint.Upsert)
	r.GET("/attendance", endpoint.List)
	r.GET("/attendance/my-recent", endpoint.MyRecent)
}

type AttendanceUpsertDTO struct {
	EmployeeID string  `json:"employeeId" binding:"required"`
	Date       string  `json:"date" binding:"required"`
	SiteID     string  `json:"siteId" binding:"required"`
	Shift1     string  `json:"shift1" binding:"omitempty,oneof=Present Absent Leave"`
	Shift2     string  `json:"shift2" binding:"omitempty,oneof=Present Absent Leave"`
	Advance    float64 `json:"advance" binding:"omitempty,gte=0"`
	Overtime   bool    `json:"overtime"`
}

// Upsert writes one day's entry. A second save for the same employee and
// day overwrites the first; site selection is mandatory before anything
// reaches storage.
func (ep *Endpoint) Upsert(c *gin.Context) {
	var dto AttendanceUpsertDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}
	// Any time-of-day is accepted here; the store normalizes to midnight
	// UTC before writing.
	date, err := utils.ParseISOTime(dto.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Field 'date' must be a valid date"))
		return
	}

	if dto.Shift1 == "" {
		dto.Shift1 = models.ShiftAbsent
	}
	if dto.Shift2 == "" {
		dto.Shift2 = models.ShiftAbsent
	}

	db, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	record, err := core.UpsertAttendance(db, core.AttendanceInput{
		EmployeeID: dto.EmployeeID,
		Date:       *date,
		SiteID:     dto.SiteID,
		Shift1:     dto.Shift1,
		Shift2:     dto.Shift2,
		Advance:    dto.Advance,
		Overtime:   dto.Overtime,
	})
	if err != nil {
		if errors.Is(err, core.ErrValidation) {
			c.JSON(http.StatusBadRequest, web.NewErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(record))
}

// List returns every attendance row; the UI filters client-side.
func (ep *Endpoint) List(c *gin.Context) {
	db, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	records, err := core.ListAttendance(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(records))
}

// MyRecent returns the caller's last few days for the self-service
// dashboard. The caller's id comes from the validated token, never from
// the request body.
func (ep *Endpoint) MyRecent(c *gin.Context) {
	employeeID := c.GetString(middlewares.EmployeeIDKey)
	if employeeID == "" {
		c.JSON(http.StatusUnauthorized, web.NewErrorResponse("no employee identity in token"))
		return
	}

	db, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	views, err := core.FindRecentAttendance(db, employeeID, recentDays)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(views))
}
