package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var AppEnv Config

type Config struct {
	MongoURI        string
	DBName          string
	JWTSecret       string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration

	BaseURL           string
	MercadoPagoToken  string
	MercadoPagoAPIURL string
	WhatsAppCountry   string
	CatalogPath       string

	AdminLoginMaxFails int
	AdminLoginWindow   time.Duration
}

func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env not loaded:", err)
	}
	AppEnv = Config{
		MongoURI:        getEnvOrDefault("MONGO_URI", ""),
		DBName:          getEnvOrDefault("DB_NAME", "atlas"),
		JWTSecret:       getEnvOrDefault("JWT_SECRET", ""),
		AccessTokenTTL:  getDurationEnv("ACCESS_TOKEN_TTL", 20, time.Minute),
		RefreshTokenTTL: getDurationEnv("REFRESH_TOKEN_TTL", 7, 24*time.Hour),

		BaseURL:           getEnvOrDefault("BASE_URL", "http://localhost:8080"),
		MercadoPagoToken:  getEnvOrDefault("MERCADOPAGO_ACCESS_TOKEN", ""),
		MercadoPagoAPIURL: getEnvOrDefault("MERCADOPAGO_API_URL", "https://api.mercadopago.com"),
		WhatsAppCountry:   getEnvOrDefault("WHATSAPP_COUNTRY_CODE", "55"),
		CatalogPath:       getEnvOrDefault("CATALOG_PATH", "data/catalog.json"),

		AdminLoginMaxFails: getIntEnv("ADMIN_LOGIN_MAX_FAILS", 5),
		AdminLoginWindow:   getDurationEnv("ADMIN_LOGIN_WINDOW", 5, time.Minute),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue int, unit time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return time.Duration(parsed) * unit
		}
	}
	return time.Duration(defaultValue) * unit
}
