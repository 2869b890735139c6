package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	SiteStatusActive    = "Active"
	SiteStatusCompleted = "Completed"
)

type Site struct {
	ID        string    `gorm:"primaryKey;column:id;type:char(36)" json:"id"`
	Name      string    `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Location  string    `gorm:"column:location;type:varchar(200)" json:"location"`
	Status    string    `gorm:"column:status;type:varchar(20);not null;default:Active" json:"status"`
	StartDate time.Time `gorm:"column:start_date;type:date" json:"startDate"`
}

func (Site) TableName() string {
	return "sites"
}

func (s *Site) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.StartDate.IsZero() {
		s.StartDate = time.Now().UTC()
	}
	return nil
}
