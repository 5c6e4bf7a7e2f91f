package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/johnquangdev/candidate-screening/pkg/config"
	"github.com/johnquangdev/candidate-screening/pkg/jwt"
)

// Prints a signed admin token for local use:
//
//	go run ./scripts/admintoken -email me@example.com
func main() {
	subject := flag.String("sub", "local-admin", "token subject")
	email := flag.String("email", "admin@localhost", "admin email")
	role := flag.String("role", "admin", "role claim")
	expiry := flag.Duration("expiry", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Auth.JWTSecret == "" {
		log.Fatalf("AUTH_JWT_SECRET is not set")
	}

	manager := jwt.NewManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer)
	token, err := manager.GenerateToken(*subject, *email, *role, *expiry)
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}
	fmt.Println(token)
}
