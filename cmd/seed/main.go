package main

import (
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sitepay.com/sitepay/core/models"
)

func main() {

	dsn := os.Getenv("DSN") //"root:development@tcp(localhost:3306)/sitepay?parseTime=true"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		log.Fatal(err)
	}

	tables := []interface{}{
		&models.Site{},
		&models.Employee{},
		&models.AttendanceRecord{},
		&models.SalaryRecord{},
	}

	for _, m := range tables {
		if !db.Migrator().HasTable(m) {
			err := db.Migrator().CreateTable(m)
			if err != nil {
				log.Fatalf("failed to create table for %T: %v", m, err)
			}
		}
	}

	if os.Getenv("SEED_SAMPLE_DATA") == "" {
		return
	}

	site := models.Site{Name: "Riverside Towers", Location: "Sector 12", Status: models.SiteStatusActive}
	if err := db.FirstOrCreate(&site, models.Site{Name: site.Name}).Error; err != nil {
		log.Fatal(err)
	}

	employees := []models.Employee{
		{Name: "Site Manager", Phone: "9000000001", AccessRole: models.AccessRoleManager, Type: models.EmployeeTypePermanent, ShiftRate: 800, Status: models.EmployeeStatusActive},
		{Name: "Mason One", Phone: "9000000002", AccessRole: models.AccessRoleWorker, Role: "Mason", Type: models.EmployeeTypePermanent, ShiftRate: 500, Status: models.EmployeeStatusActive, SiteID: &site.ID},
		{Name: "Helper One", Phone: "9000000003", AccessRole: models.AccessRoleWorker, Role: "Helper", Type: models.EmployeeTypeTemporary, ShiftRate: 350, Status: models.EmployeeStatusActive, SiteID: &site.ID},
	}
	for i := range employees {
		if err := db.FirstOrCreate(&employees[i], models.Employee{Phone: employees[i].Phone}).Error; err != nil {
			log.Fatal(err)
		}
	}
}
