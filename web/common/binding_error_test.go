package common

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
)

type markingForm struct {
	Shift1    string  `json:"shift1" binding:"omitempty,oneof=Present Absent Leave"`
	Advance   float64 `json:"advance" binding:"omitempty,gte=0"`
	ShiftRate float64 `json:"shiftRate" binding:"required,gt=0"`
	Password  string  `json:"password" binding:"omitempty,min=6"`
}

func TestFormatBindingErrorFieldMessages(t *testing.T) {
	cases := []struct {
		name     string
		form     markingForm
		expected string
	}{
		{
			name:     "required field missing",
			form:     markingForm{},
			expected: "Field 'shiftRate' is required",
		},
		{
			name:     "value outside allowed set",
			form:     markingForm{Shift1: "Holiday", ShiftRate: 500},
			expected: "Field 'shift1' must be one of: Present Absent Leave",
		},
		{
			name:     "negative advance",
			form:     markingForm{Advance: -50, ShiftRate: 500},
			expected: "Field 'advance' must be 0 or more",
		},
		{
			name:     "non-positive rate",
			form:     markingForm{ShiftRate: -1},
			expected: "Field 'shiftRate' must be greater than 0",
		},
		{
			name:     "short password",
			form:     markingForm{ShiftRate: 500, Password: "abc"},
			expected: "Field 'password' must be at least 6 characters",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := binding.Validator.ValidateStruct(&tc.form)
			assert.Error(t, err)
			assert.Equal(t, tc.expected, FormatBindingError(err))
		})
	}
}

func TestFormatBindingErrorNil(t *testing.T) {
	assert.Equal(t, "", FormatBindingError(nil))
}
