package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SalaryRecord is one computed Sunday..Saturday pay week. Rows are written
// once and never updated; a correction is a delete followed by a fresh
// calculation. The unique index is the storage-level duplicate-period guard.
type SalaryRecord struct {
	ID           string    `gorm:"primaryKey;column:id;type:char(36)" json:"id"`
	EmployeeID   string    `gorm:"column:employee_id;type:char(36);not null;uniqueIndex:idx_salary_period,priority:1" json:"employeeId"`
	WeekStart    time.Time `gorm:"column:week_start;type:datetime(3);not null;uniqueIndex:idx_salary_period,priority:2" json:"weekStart"`
	WeekEnd      time.Time `gorm:"column:week_end;type:datetime(3);not null;uniqueIndex:idx_salary_period,priority:3" json:"weekEnd"`
	TotalShifts  float64   `gorm:"column:total_shifts;type:decimal(6,2);not null" json:"totalShifts"`
	TotalAdvance float64   `gorm:"column:total_advance;type:decimal(10,2);not null" json:"totalAdvance"`
	OvertimePay  float64   `gorm:"column:overtime_pay;type:decimal(10,2);not null" json:"overtimePay"`
	GrossSalary  float64   `gorm:"column:gross_salary;type:decimal(10,2);not null" json:"grossSalary"`
	TotalSalary  float64   `gorm:"column:total_salary;type:decimal(10,2);not null" json:"totalSalary"`
	CreatedAt    time.Time `gorm:"column:created_at;type:timestamp;not null;default:CURRENT_TIMESTAMP;<-:create" json:"createdAt"`

	Employee Employee `gorm:"foreignKey:EmployeeID;references:ID" json:"-"`
}

func (SalaryRecord) TableName() string {
	return "salary_records"
}

func (s *SalaryRecord) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
