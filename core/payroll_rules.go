package core

import (
	"strings"

	"sitepay.com/sitepay/core/models"
)

// A full first shift counts as one shift, a second shift as half. Overtime
// pays half a shift rate per flagged day.
const (
	Shift1Credit        = 1.0
	Shift2Credit        = 0.5
	OvertimeRateDivisor = 2.0
)

// WeekTotals is the monetary summary of one pay week. TotalSalary may be
// negative when advances exceed earnings; that is accepted, not an error.
type WeekTotals struct {
	TotalShifts  float64
	TotalAdvance float64
	OvertimePay  float64
	GrossSalary  float64
	TotalSalary  float64
}

func isPresent(shift string) bool {
	return strings.EqualFold(strings.TrimSpace(shift), models.ShiftPresent)
}

// ShiftCredit converts one day's shift markings into a fractional shift
// count. Anything other than "Present" (case-insensitive, trimmed)
// contributes nothing.
func ShiftCredit(shift1, shift2 string) float64 {
	credit := 0.0
	if isPresent(shift1) {
		credit += Shift1Credit
	}
	if isPresent(shift2) {
		credit += Shift2Credit
	}
	return credit
}

// ComputeWeekTotals aggregates a week's attendance into totals at the given
// shift rate. Record order is irrelevant. No rounding is applied at any
// stage; display rounding belongs to the caller.
func ComputeWeekTotals(shiftRate float64, records []models.AttendanceRecord) WeekTotals {
	var totals WeekTotals
	for _, record := range records {
		totals.TotalShifts += ShiftCredit(record.Shift1, record.Shift2)
		totals.TotalAdvance += record.Advance
		if record.Overtime {
			totals.OvertimePay += shiftRate / OvertimeRateDivisor
		}
	}
	totals.GrossSalary = totals.TotalShifts*shiftRate + totals.OvertimePay
	totals.TotalSalary = totals.GrossSalary - totals.TotalAdvance
	return totals
}
