package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sitepay.com/sitepay/core/models"
	"sitepay.com/sitepay/utils"
)

func TestShiftCredit(t *testing.T) {
	tests := []struct {
		name     string
		shift1   string
		shift2   string
		expected float64
	}{
		{"Full day", "Present", "Present", 1.5},
		{"First shift only", "Present", "Absent", 1.0},
		{"Second shift only", "Absent", "Present", 0.5},
		{"Leave all day", "Leave", "Leave", 0},
		{"Unmarked", "", "", 0},
		{"Case insensitive", "present", "PRESENT", 1.5},
		{"Whitespace trimmed", " Present ", "  present", 1.5},
		{"Leave and present", "Leave", "Present", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ShiftCredit(tt.shift1, tt.shift2))
		})
	}
}

func TestComputeWeekTotals(t *testing.T) {
	t.Run("Worked example at rate 500", func(t *testing.T) {
		records := []models.AttendanceRecord{
			{
				Date:   utils.MustParseDate("2024-03-11"), // Monday
				Shift1: "Present",
				Shift2: "Absent",
			},
			{
				Date:     utils.MustParseDate("2024-03-12"), // Tuesday
				Shift1:   "Present",
				Shift2:   "Present",
				Overtime: true,
				Advance:  200,
			},
		}

		totals := ComputeWeekTotals(500, records)

		assert.Equal(t, 2.5, totals.TotalShifts)
		assert.Equal(t, 250.0, totals.OvertimePay)
		assert.Equal(t, 200.0, totals.TotalAdvance)
		assert.Equal(t, 1500.0, totals.GrossSalary)
		assert.Equal(t, 1300.0, totals.TotalSalary)
	})

	t.Run("Net may go negative", func(t *testing.T) {
		records := []models.AttendanceRecord{
			{Shift1: "Absent", Shift2: "Absent", Advance: 500},
		}

		totals := ComputeWeekTotals(100, records)

		assert.Equal(t, 0.0, totals.GrossSalary)
		assert.Equal(t, -500.0, totals.TotalSalary)
	})

	t.Run("Empty week is all zeros", func(t *testing.T) {
		totals := ComputeWeekTotals(500, nil)

		assert.Equal(t, WeekTotals{}, totals)
	})

	t.Run("Order does not matter", func(t *testing.T) {
		records := []models.AttendanceRecord{
			{Shift1: "Present", Shift2: "Present", Advance: 50},
			{Shift1: "Present", Shift2: "Absent", Overtime: true},
			{Shift1: "Leave", Shift2: "Present"},
		}
		reversed := []models.AttendanceRecord{records[2], records[1], records[0]}

		assert.Equal(t, ComputeWeekTotals(400, records), ComputeWeekTotals(400, reversed))
	})
}
