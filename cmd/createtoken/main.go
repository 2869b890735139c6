package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"sitepay.com/sitepay/core/models"
	"sitepay.com/sitepay/security"
)

// Mints a dev token for exercising the API by hand.
func main() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	id := os.Getenv("EMPLOYEE_ID")
	role := os.Getenv("ACCESS_ROLE")
	if role == "" {
		role = models.AccessRoleManager
	}

	token, err := security.CreateIdentityToken(security.Identity{
		ID:         id,
		AccessRole: role,
	}, []byte(secret), time.Hour)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(token)
}
