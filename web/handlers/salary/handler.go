package salary

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"sitepay.com/sitepay/core"
	"sitepay.com/sitepay/utils"
	web "sitepay.com/sitepay/web/common"
)

type Endpoint struct {
	base web.Handler
}

func Register(r *gin.RouterGroup, dm *core.DatabaseManager) {
	endpoint := &Endpoint{base: web.Handler{Dm: dm}}
	r.POST("/salary/calculate", endpoint.Calculate)
	r.GET("/salary", endpoint.List)
	r.GET("/salary/employee/:employeeId", endpoint.ListForEmployee)
	r.GET("/salary/export", endpoint.Export)
	r.DELETE("/salary/:id", endpoint.Delete)
}

// SalaryCalculateDTO is the one accepted request shape. The pay week is
// always derived from referenceDate on the server; explicit week bounds in
// the body are not honored.
type SalaryCalculateDTO struct {
	EmployeeID    string        `json:"employeeId" binding:"required"`
	ReferenceDate *web.DateOnly `json:"referenceDate" binding:"required"`
}

func (ep *Endpoint) Calculate(c *gin.Context) {
	var dto SalaryCalculateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}
	if dto.ReferenceDate.IsZero() {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Field 'referenceDate' is required"))
		return
	}

	db, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	record, err := core.CalculateWeekSalary(db, dto.EmployeeID, dto.ReferenceDate.Time)
	if err != nil {
		switch {
		case errors.Is(err, core.ErrEmployeeNotFound):
			c.JSON(http.StatusNotFound, web.NewErrorResponse(err.Error()))
		case errors.Is(err, core.ErrDuplicatePeriod):
			c.JSON(http.StatusConflict, web.NewErrorResponse(err.Error()))
		case errors.Is(err, core.ErrValidation):
			c.JSON(http.StatusBadRequest, web.NewErrorResponse(err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		}
		return
	}

	c.JSON(http.StatusCreated, web.NewSuccessResponse(record))
}

func (ep *Endpoint) List(c *gin.Context) {
	db, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	views, err := core.ListSalaries(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(views))
}

func (ep *Endpoint) ListForEmployee(c *gin.Context) {
	employeeID := c.Param("employeeId")

	db, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	views, err := core.ListSalariesForEmployee(db, employeeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(views))
}

func (ep *Endpoint) Delete(c *gin.Context) {
	id := c.Param("id")

	db, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	if err := core.DeleteSalary(db, id); err != nil {
		if errors.Is(err, core.ErrSalaryNotFound) {
			c.JSON(http.StatusNotFound, web.NewErrorResponse(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(gin.H{"message": "Salary record deleted successfully"}))
}

// Export streams the full ledger as an xlsx workbook.
func (ep *Endpoint) Export(c *gin.Context) {
	db, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	views, err := core.ListSalaries(db)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	headers := []interface{}{
		"Employee", "Phone", "Week Start", "Week End",
		"Total Shifts", "Overtime Pay", "Gross Salary", "Total Advance", "Net Salary",
	}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	rows := utils.Map(views, func(v core.SalaryView) []interface{} {
		return []interface{}{
			v.EmployeeName,
			v.EmployeePhone,
			v.WeekStart.Format("2006-01-02"),
			v.WeekEnd.Format("2006-01-02"),
			v.TotalShifts,
			v.OvertimePay,
			v.GrossSalary,
			v.TotalAdvance,
			v.TotalSalary,
		}
	})
	for i, row := range rows {
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
			return
		}
	}

	filename := fmt.Sprintf("salary-%s.xlsx", time.Now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := f.Write(c.Writer); err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
}
