package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ShiftPresent = "Present"
	ShiftAbsent  = "Absent"
	ShiftLeave   = "Leave"
)

// AttendanceRecord is the single authoritative row for one employee on one
// day. Date carries no time-of-day component; it is normalized to midnight
// UTC before every write and lookup.
type AttendanceRecord struct {
	ID         string    `gorm:"primaryKey;column:id;type:char(36)" json:"id"`
	EmployeeID string    `gorm:"column:employee_id;type:char(36);not null;uniqueIndex:idx_attendance_day,priority:1" json:"employeeId"`
	Date       time.Time `gorm:"column:date;type:datetime;not null;uniqueIndex:idx_attendance_day,priority:2" json:"date"`
	SiteID     string    `gorm:"column:site_id;type:char(36);not null" json:"siteId"`
	Shift1     string    `gorm:"column:shift1;type:varchar(10);not null" json:"shift1"`
	Shift2     string    `gorm:"column:shift2;type:varchar(10);not null" json:"shift2"`
	Advance    float64   `gorm:"column:advance;type:decimal(10,2);not null" json:"advance"`
	Overtime   bool      `gorm:"column:overtime;type:bool;not null" json:"overtime"`

	Employee Employee `gorm:"foreignKey:EmployeeID;references:ID" json:"-"`
	Site     Site     `gorm:"foreignKey:SiteID;references:ID" json:"-"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}

func (a *AttendanceRecord) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
