package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AccessRoleManager = "Manager"
	AccessRoleWorker  = "Worker"

	EmployeeTypePermanent = "Permanent"
	EmployeeTypeTemporary = "Temporary"

	EmployeeStatusActive   = "Active"
	EmployeeStatusInactive = "Inactive"
)

type Employee struct {
	ID         string    `gorm:"primaryKey;column:id;type:char(36)" json:"id"`
	Name       string    `gorm:"column:name;type:varchar(100);not null" json:"name"`
	Phone      string    `gorm:"column:phone;type:varchar(20);not null;uniqueIndex" json:"phone"`
	Password   string    `gorm:"column:password;type:varchar(100)" json:"-"`
	AccessRole string    `gorm:"column:access_role;type:varchar(20);not null;default:Worker" json:"accessRole"`
	Role       string    `gorm:"column:role;type:varchar(50)" json:"role"`
	Type       string    `gorm:"column:type;type:varchar(20);not null;default:Permanent" json:"type"`
	ShiftRate  float64   `gorm:"column:shift_rate;type:decimal(10,2);not null" json:"shiftRate"`
	JoinDate   time.Time `gorm:"column:join_date;type:date" json:"joinDate"`
	Status     string    `gorm:"column:status;type:varchar(20);not null;default:Active" json:"status"`
	SiteID     *string   `gorm:"column:site_id;type:char(36)" json:"siteId"`

	Site *Site `gorm:"foreignKey:SiteID;references:ID" json:"site,omitempty"`
}

func (Employee) TableName() string {
	return "employees"
}

func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.JoinDate.IsZero() {
		e.JoinDate = time.Now().UTC()
	}
	return nil
}
