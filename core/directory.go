package core

import (
	"errors"

	"gorm.io/gorm"

	"sitepay.com/sitepay/core/models"
)

// GetEmployee resolves an employee by id. The payroll calculator only
// needs the shift rate from here; the full employee lifecycle lives in the
// HTTP layer.
func GetEmployee(db *gorm.DB, id string) (*models.Employee, error) {
	var employee models.Employee
	if err := db.Take(&employee, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, err
	}
	return &employee, nil
}
