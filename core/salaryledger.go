package core

import (
	"time"

	"gorm.io/gorm"

	"sitepay.com/sitepay/core/models"
)

// SalaryView is a ledger row joined with the employee's display identity.
// The join is read-only presentation data, not ownership.
type SalaryView struct {
	ID            string    `json:"id"`
	EmployeeID    string    `json:"employeeId"`
	EmployeeName  string    `json:"employeeName"`
	EmployeePhone string    `json:"employeePhone"`
	WeekStart     time.Time `json:"weekStart"`
	WeekEnd       time.Time `json:"weekEnd"`
	TotalShifts   float64   `json:"totalShifts"`
	TotalAdvance  float64   `json:"totalAdvance"`
	OvertimePay   float64   `json:"overtimePay"`
	GrossSalary   float64   `json:"grossSalary"`
	TotalSalary   float64   `json:"totalSalary"`
	CreatedAt     time.Time `json:"createdAt"`
}

func salaryViewQuery(db *gorm.DB) *gorm.DB {
	return db.Model(&models.SalaryRecord{}).
		Joins("JOIN employees ON employees.id = salary_records.employee_id").
		Select(`salary_records.*,
			employees.name AS employee_name,
			employees.phone AS employee_phone`).
		Order("salary_records.week_start DESC")
}

// ListSalaries returns every computed pay week, newest week first.
func ListSalaries(db *gorm.DB) ([]SalaryView, error) {
	var views []SalaryView
	if err := salaryViewQuery(db).Scan(&views).Error; err != nil {
		return nil, err
	}
	return views, nil
}

// ListSalariesForEmployee returns one employee's pay weeks, newest first.
func ListSalariesForEmployee(db *gorm.DB, employeeID string) ([]SalaryView, error) {
	var views []SalaryView
	err := salaryViewQuery(db).
		Where("salary_records.employee_id = ?", employeeID).
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

// DeleteSalary removes one computed week so it can be recalculated.
func DeleteSalary(db *gorm.DB, id string) error {
	result := db.Delete(&models.SalaryRecord{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSalaryNotFound
	}
	return nil
}

// SalaryExists reports whether the week has already been computed for the
// employee.
func SalaryExists(db *gorm.DB, employeeID string, weekStart, weekEnd time.Time) (bool, error) {
	var count int64
	err := db.Model(&models.SalaryRecord{}).
		Where("employee_id = ? AND week_start = ? AND week_end = ?", employeeID, weekStart, weekEnd).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
