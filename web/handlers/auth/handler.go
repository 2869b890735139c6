package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sitepay.com/sitepay/core"
	"sitepay.com/sitepay/core/models"
	"sitepay.com/sitepay/security"
	web "sitepay.com/sitepay/web/common"
	"sitepay.com/sitepay/web/middlewares"
)

const tokenLifetime = 7 * 24 * time.Hour

type Endpoint struct {
	base      web.Handler
	jwtSecret []byte
}

func Register(r *gin.RouterGroup, dm *core.DatabaseManager, jwtSecret []byte) {
	endpoint := &Endpoint{base: web.Handler{Dm: dm}, jwtSecret: jwtSecret}
	r.POST("/auth/login", endpoint.Login)
	r.POST("/auth/set-password", endpoint.SetPassword)
}

// RegisterProtected mounts the routes that need an authenticated caller.
func RegisterProtected(r *gin.RouterGroup, dm *core.DatabaseManager) {
	endpoint := &Endpoint{base: web.Handler{Dm: dm}}
	r.GET("/auth/me", endpoint.Me)
}

type LoginDTO struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password"`
}

// Login identifies an employee by phone number. Workers sign in with the
// phone alone; managers must also present their password. A manager who
// has not supplied a password yet gets a prompt response instead of a
// token.
func (ep *Endpoint) Login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	db, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	phone := strings.TrimSpace(dto.Phone)

	var user models.Employee
	if err := db.Take(&user, "phone = ?", phone).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, web.NewErrorResponse("User not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	if user.AccessRole == models.AccessRoleManager {
		if dto.Password == "" {
			c.JSON(http.StatusOK, gin.H{
				"isManager": true,
				"message":   "Password required",
			})
			return
		}

		if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(dto.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, web.NewErrorResponse("Invalid password"))
			return
		}
	}

	token, err := security.CreateIdentityToken(security.Identity{
		ID:         user.ID,
		AccessRole: user.AccessRole,
	}, ep.jwtSecret, tokenLifetime)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":      token,
		"accessRole": user.AccessRole,
	})
}

// Me returns the signed-in employee's own profile with the assigned site
// attached, resolved from the token identity.
func (ep *Endpoint) Me(c *gin.Context) {
	db, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	var user models.Employee
	if err := db.Preload("Site").Take(&user, "id = ?", c.GetString(middlewares.EmployeeIDKey)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, web.NewErrorResponse("User not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(user))
}

type SetPasswordDTO struct {
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// SetPassword stores a bcrypt hash for a manager account. Workers stay
// passwordless.
func (ep *Endpoint) SetPassword(c *gin.Context) {
	var dto SetPasswordDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse(web.FormatBindingError(err)))
		return
	}

	db, err := ep.base.GetDB(c)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	var user models.Employee
	if err := db.Take(&user, "phone = ?", strings.TrimSpace(dto.Phone)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, web.NewErrorResponse("Manager not found"))
			return
		}
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}
	if user.AccessRole != models.AccessRoleManager {
		c.JSON(http.StatusBadRequest, web.NewErrorResponse("Manager not found"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	if err := db.Model(&user).Update("password", string(hash)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, web.NewErrorResponse(err.Error()))
		return
	}

	c.JSON(http.StatusOK, web.NewSuccessResponse(gin.H{"message": "Password set successfully"}))
}
