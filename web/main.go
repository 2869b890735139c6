package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"sitepay.com/sitepay/core"
	"sitepay.com/sitepay/infrastructure/config"
	"sitepay.com/sitepay/web/handlers/attendance"
	"sitepay.com/sitepay/web/handlers/auth"
	"sitepay.com/sitepay/web/handlers/employee"
	"sitepay.com/sitepay/web/handlers/salary"
	"sitepay.com/sitepay/web/handlers/site"
	"sitepay.com/sitepay/web/middlewares"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	dm, err := core.New(cfg.DSN, cfg.MaxConnections)
	if err != nil {
		log.Fatal(err)
	}
	defer dm.Close()

	jwtSecret := []byte(cfg.JWTSecret)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	api := r.Group("/api")
	auth.Register(api, dm, jwtSecret)

	protected := api.Group("")
	protected.Use(middlewares.Authentication(jwtSecret))
	{
		auth.RegisterProtected(protected, dm)
		attendance.Register(protected, dm)
		salary.Register(protected, dm)

		admin := protected.Group("")
		admin.Use(middlewares.ManagerOnly())
		{
			employee.Register(admin, dm)
			site.Register(admin, dm)
		}
	}

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
