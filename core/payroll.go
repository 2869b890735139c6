package core

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"sitepay.com/sitepay/core/models"
)

// CalculateWeekSalary computes and persists the pay week containing
// referenceDate for one employee. The week is always derived server-side;
// callers never supply explicit bounds. A week that was already computed is
// rejected with ErrDuplicatePeriod and the existing record is left
// untouched. A week with no attendance persists a valid all-zero record.
func CalculateWeekSalary(db *gorm.DB, employeeID string, referenceDate time.Time) (*models.SalaryRecord, error) {
	employee, err := GetEmployee(db, employeeID)
	if err != nil {
		return nil, err
	}

	weekStart, weekEnd := DerivePayWeek(referenceDate)

	exists, err := SalaryExists(db, employeeID, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicatePeriod
	}

	records, err := FindWeekAttendance(db, employeeID, weekStart, weekEnd)
	if err != nil {
		return nil, err
	}

	totals := ComputeWeekTotals(employee.ShiftRate, records)

	salary := models.SalaryRecord{
		EmployeeID:   employeeID,
		WeekStart:    weekStart,
		WeekEnd:      weekEnd,
		TotalShifts:  totals.TotalShifts,
		TotalAdvance: totals.TotalAdvance,
		OvertimePay:  totals.OvertimePay,
		GrossSalary:  totals.GrossSalary,
		TotalSalary:  totals.TotalSalary,
	}
	if err := db.Create(&salary).Error; err != nil {
		// The unique index on (employee_id, week_start, week_end) closes the
		// race between two concurrent calculations: the loser lands here.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicatePeriod
		}
		return nil, err
	}
	return &salary, nil
}
