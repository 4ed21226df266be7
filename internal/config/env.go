package config

import (
	"os"
	"strconv"
	"strings"
)

type Env struct {
	AppAddr       string
	GinMode       string
	DBDSN         string
	TaxRate       float64
	Currency      string
	JWTSecret     string
	MigrationsDir string
}

func LoadEnv() Env {
	appAddr := strings.TrimSpace(os.Getenv("APP_ADDR"))
	if appAddr == "" {
		appAddr = ":8080"
	}

	dsn := strings.TrimSpace(os.Getenv("DB_DSN"))
	if dsn == "" {
		dsn = "root:@tcp(127.0.0.1:3306)/pos_app?parseTime=true&loc=Local&charset=utf8mb4&timeout=5s&readTimeout=30s&writeTimeout=30s"
	}

	taxRate := 0.10
	if v := strings.TrimSpace(os.Getenv("TAX_RATE")); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			taxRate = f
		}
	}

	currency := strings.TrimSpace(os.Getenv("CURRENCY"))
	if currency == "" {
		currency = "USD"
	}

	secret := strings.TrimSpace(os.Getenv("JWT_SECRET"))
	if secret == "" {
		secret = "super-secret-key-change-me"
	}

	return Env{
		AppAddr:       appAddr,
		GinMode:       strings.TrimSpace(os.Getenv("GIN_MODE")),
		DBDSN:         dsn,
		TaxRate:       taxRate,
		Currency:      currency,
		JWTSecret:     secret,
		MigrationsDir: strings.TrimSpace(os.Getenv("MIGRATIONS_DIR")),
	}
}
