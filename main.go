package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"payproof/pkg/verify"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

var jwtSecret []byte // loaded from env JWT_SECRET (fallback to dev default)

// verifyCfg is built once at startup from TARGET_PAYEE and VERIFY_TOLERANCE_HOURS.
var verifyCfg verify.Config

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment")
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-insecure-secret-change" // development fallback
	}
	jwtSecret = []byte(secret)

	verifyCfg = loadVerifyConfig()

	// Support a lightweight migrate command: `./payproof migrate`
	// It runs AutoMigrate and seeding then exits. Useful for CI or manual DB setup.
	if len(os.Args) > 1 && os.Args[1] == "migrate" {
		initDB()
		fmt.Println("migration and seeding completed")
		return
	}

	initDB()

	r := gin.Default()
	r.Use(cors.New(corsConfig()))

	setupRoutes(r)

	r.Run(":8081")
}

func loadVerifyConfig() verify.Config {
	cfg := verify.Config{TargetPayee: os.Getenv("TARGET_PAYEE")}
	if h := os.Getenv("VERIFY_TOLERANCE_HOURS"); h != "" {
		if n, err := strconv.Atoi(h); err == nil && n > 0 {
			cfg.Tolerance = time.Duration(n) * time.Hour
		} else {
			log.Printf("ignoring invalid VERIFY_TOLERANCE_HOURS=%q", h)
		}
	}
	return cfg
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.AllowOrigins = strings.Split(origins, ",")
	} else {
		cfg.AllowAllOrigins = true
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	return cfg
}
