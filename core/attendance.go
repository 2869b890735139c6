package core

import (
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sitepay.com/sitepay/core/models"
)

// AttendanceInput is one day's entry as submitted by the caller. Date may
// carry any time-of-day; it is normalized before storage.
type AttendanceInput struct {
	EmployeeID string
	Date       time.Time
	SiteID     string
	Shift1     string
	Shift2     string
	Advance    float64
	Overtime   bool
}

// AttendanceView is an attendance row joined with its site name for
// display.
type AttendanceView struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employeeId"`
	Date       time.Time `json:"date"`
	SiteID     string    `json:"siteId"`
	SiteName   string    `json:"siteName"`
	Shift1     string    `json:"shift1"`
	Shift2     string    `json:"shift2"`
	Advance    float64   `json:"advance"`
	Overtime   bool      `json:"overtime"`
}

// UpsertAttendance writes the authoritative row for (employee, day). A
// second write for the same day overwrites the mutable fields of the
// existing row instead of creating another one.
func UpsertAttendance(db *gorm.DB, input AttendanceInput) (*models.AttendanceRecord, error) {
	if input.EmployeeID == "" {
		return nil, fmt.Errorf("%w: employeeId is required", ErrValidation)
	}
	if input.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrValidation)
	}

	day := NormalizeDate(input.Date)
	record := models.AttendanceRecord{
		EmployeeID: input.EmployeeID,
		Date:       day,
		SiteID:     input.SiteID,
		Shift1:     input.Shift1,
		Shift2:     input.Shift2,
		Advance:    input.Advance,
		Overtime:   input.Overtime,
	}

	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "employee_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"site_id", "shift1", "shift2", "advance", "overtime"}),
	}).Create(&record).Error; err != nil {
		return nil, err
	}

	// Re-read by the natural key: on conflict the generated ID above is not
	// the stored row's ID.
	var stored models.AttendanceRecord
	if err := db.Where("employee_id = ? AND date = ?", input.EmployeeID, day).
		Take(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

// FindWeekAttendance returns the records inside [weekStart, weekEnd]
// inclusive. No ordering is guaranteed; aggregation must not depend on it.
func FindWeekAttendance(db *gorm.DB, employeeID string, weekStart, weekEnd time.Time) ([]models.AttendanceRecord, error) {
	var records []models.AttendanceRecord
	err := db.Where("employee_id = ? AND date >= ? AND date <= ?", employeeID, weekStart, weekEnd).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// FindRecentAttendance returns the latest limit rows for an employee,
// newest day first, with the site name joined for display.
func FindRecentAttendance(db *gorm.DB, employeeID string, limit int) ([]AttendanceView, error) {
	var views []AttendanceView
	err := db.Model(&models.AttendanceRecord{}).
		Joins("LEFT JOIN sites ON sites.id = attendance_records.site_id").
		Select(`attendance_records.id,
			attendance_records.employee_id,
			attendance_records.date,
			attendance_records.site_id,
			sites.name AS site_name,
			attendance_records.shift1,
			attendance_records.shift2,
			attendance_records.advance,
			attendance_records.overtime`).
		Where("attendance_records.employee_id = ?", employeeID).
		Order("attendance_records.date DESC").
		Limit(limit).
		Scan(&views).Error
	if err != nil {
		return nil, err
	}
	return views, nil
}

// ListAttendance returns every attendance row; callers filter client-side.
func ListAttendance(db *gorm.DB) ([]models.AttendanceRecord, error) {
	var records []models.AttendanceRecord
	if err := db.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
