package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"beautystudio/internal/config"
	jwtsvc "beautystudio/internal/pkg/jwt"
)

// Mints an admin bearer token for the /api/v1/admin endpoints.
func main() {
	name := flag.String("name", "studio-admin", "subject name embedded in the token")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadRuntimeConfig()
	if err != nil {
		log.Fatal(err)
	}

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	token, err := j.GenerateToken(*name, "admin")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(token)
}
