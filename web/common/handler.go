package common

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"sitepay.com/sitepay/core"
)

type Handler struct {
	Dm *core.DatabaseManager
}

func (h *Handler) GetDB(c *gin.Context) (*gorm.DB, error) {
	return h.Dm.GetDB(c.Request.Context())
}
