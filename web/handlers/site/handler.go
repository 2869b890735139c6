package site

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sitepay.com/sitepay/core"
	"sitepay.com/sitepay/core/models"
	web "sitepay.com/sitepay/web/common"
)

type Endpoint struct {
	base web.Handler
}

func Register(r *gin.RouterGroup, dm *core.DatabaseManager) {
	endpoint := &Endpoint{base: web.Handler{Dm: dm}}
	r.POST("/sites", endpoint.Create)
	r.GET("/sites", endpoint.List)
	r.DELETE("/sites/:id", endpoint.Delete)
}

type SiteCreateDTO struct {
	Name     string `json:"name" binding:"required"`
	Location string `json:"location"`
	Status   string `json:"status" binding:"omitempty,oneof=Active Completed"`
}

func (ep *Endpoint) Create(c *gin.Context) {
	var dto SiteCreateDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}
	if dto.Status == "" {
		dto.Status = models.SiteStatusActive
	}

	db, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	s := models.Site{
		Name:     dto.Name,
		Location: dto.Location,
		Status:   dto.Status,
	}
	if err := db.Create(&s).Error; err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, web.NewSuccessResponse(s))
}

func (ep *Endpoint) List(c *gin.Context) {
	db, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	var sites []models.Site
	if err := db.Order("start_date DESC").Find(&sites).Error; err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(sites))
}

func (ep *Endpoint) Delete(c *gin.Context) {
	id := c.Param("id")

	db, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	result := db.Delete(&models.Site{}, "id = ?", id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(result.Error.Error()))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, web.NewErrorResponse("Site not found"))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(gin.H{"message": "Site deleted successfully"}))
}
