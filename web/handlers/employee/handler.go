package employee

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"sitepay.com/sitepay/core"
	"sitepay.com/sitepay/core/models"
	web "sitepay.com/sitepay/web/common"
)

type Endpoint struct {
	base web.Handler
}

func Register(r *gin.RouterGroup, dm *core.DatabaseManager) {
	endpoint := &Endpoint{base: web.Handler{Dm: dm}}
	r.POST("/employees", endpoint.Create)
	r.GET("/employees", endpoint.List)
	r.PUT("/employees/:id", endpoint.Update)
}

type EmployeeCreateDTO struct {
	Name       string  `json:"name" binding:"required"`
	Phone      string  `json:"phone" binding:"required"`
	AccessRole string  `json:"accessRole" binding:"omitempty,oneof=Manager Worker"`
	Role       string  `json:"role"`
	Type       string  `json:"type" binding:"omitempty,oneof=Permanent Temporary"`
	ShiftRate  float64 `json:"shiftRate" binding:"required,gt=0"`
	SiteID     *string `json:"siteId"`
}

func (ep *Endpoint) Create(c *gin.Context) {
	var dto EmployeeCreateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	if dto.AccessRole == "" {
		dto.AccessRole = models.AccessRoleWorker
	}
	if dto.Type == "" {
		dto.Type = models.EmployeeTypePermanent
	}

	db, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	emp := models.Employee{
		Name:       dto.Name,
		Phone:      dto.Phone,
		AccessRole: dto.AccessRole,
		Role:       dto.Role,
		Type:       dto.Type,
		ShiftRate:  dto.ShiftRate,
		Status:     models.EmployeeStatusActive,
		SiteID:     dto.SiteID,
	}
	if err := db.Create(&emp).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, web.NewErrorResponse("phone number already registered"))
			return
		}
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, web.NewSuccessResponse(emp))
}

func (ep *Endpoint) List(c *gin.Context) {
	db, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	var employees []models.Employee
	if err := db.Preload("Site").Find(&employees).Error; err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(employees))
}

type EmployeeUpdateDTO struct {
	Name       *string  `json:"name,omitempty"`
	Phone      *string  `json:"phone,omitempty"`
	AccessRole *string  `json:"accessRole,omitempty" binding:"omitempty,oneof=Manager Worker"`
	Role       *string  `json:"role,omitempty"`
	Type       *string  `json:"type,omitempty" binding:"omitempty,oneof=Permanent Temporary"`
	ShiftRate  *float64 `json:"shiftRate,omitempty" binding:"omitempty,gt=0"`
	Status     *string  `json:"status,omitempty" binding:"omitempty,oneof=Active Inactive"`
	SiteID     *string  `json:"siteId,omitempty"`
}

func (ep *Endpoint) Update(c *gin.Context) {
	id := c.Param("id")

	var dto EmployeeUpdateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	db, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	var emp models.Employee
	if err := db.Take(&emp, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, web.NewErrorResponse("Employee not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	if err := db.Model(&emp).Updates(dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusBadRequest, web.NewErrorResponse("phone number already registered"))
			return
		}
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(emp))
}
