package config

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/code-differently/cs-25-2-team6-sub003/app/models"
)

type Config struct {
	DB *sql.DB
}

var AppConfig *Config

// Load reads .env if present. Real environment variables win over the file.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
}

func InitDB() {
	host := envOr("DB_HOST", "localhost")
	port := envOr("DB_PORT", "5432")
	user := envOr("DB_USER", "postgres")
	password := os.Getenv("DB_PASSWORD")
	dbname := envOr("DB_NAME", "attendance")
	sslmode := envOr("DB_SSLMODE", "disable")

	psqlInfo := fmt.Sprintf("host=%s port=%s user=%s dbname=%s sslmode=%s",
		host, port, user, dbname, sslmode)
	if password != "" {
		psqlInfo += " password=" + password
	}

	db, err := sql.Open("postgres", psqlInfo)
	if err != nil {
		log.Fatal("Failed to open database connection:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	log.Println("Testing database connection...")
	if err = db.Ping(); err != nil {
		log.Fatal("Cannot establish database connection: ", err)
	}

	AppConfig = &Config{DB: db}
	log.Println("Database connected successfully")
}

func GetDB() *sql.DB {
	return AppConfig.DB
}

// JWTSecret returns the token signing key. A default keeps local development
// working; production must set JWT_SECRET.
func JWTSecret() []byte {
	return []byte(envOr("JWT_SECRET", "attendance-dev-secret"))
}

// AlertRules builds the configured threshold rule set from the environment.
// Unset variables leave the corresponding threshold disabled.
func AlertRules() models.AlertRuleSet {
	return models.AlertRuleSet{
		Absences30:    envThreshold("ALERT_ABSENCES_30"),
		Lates30:       envThreshold("ALERT_LATES_30"),
		AbsencesTotal: envThreshold("ALERT_ABSENCES_TOTAL"),
		LatesTotal:    envThreshold("ALERT_LATES_TOTAL"),
		NotifyParents: os.Getenv("ALERT_NOTIFY_PARENTS") == "true",
	}
}

func envThreshold(key string) *int {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		log.Printf("Ignoring invalid %s=%q", key, raw)
		return nil
	}
	return &n
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
