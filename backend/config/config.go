package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultFreeQuestionLimit is the free-tier cap used when
// FREE_QUESTION_LIMIT is unset. Both halves draw the limit from here;
// there is deliberately no second literal anywhere.
const DefaultFreeQuestionLimit = 200

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	ServerPort string

	SessionLifetime  time.Duration
	PaymentRetention time.Duration

	// FreeQuestionLimit is the single source of truth for the free-tier
	// cap; both the API and the local client read this value.
	FreeQuestionLimit int

	BankName          string
	BankAccountNumber string
	BankAccountName   string
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	return &Config{
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBName:            getEnv("DB_NAME", "vocab_game"),
		ServerPort:        getEnv("SERVER_PORT", "8080"),
		SessionLifetime:   getEnvDuration("SESSION_LIFETIME", 720*time.Hour),
		PaymentRetention:  getEnvDuration("PAYMENT_RETENTION", 24*time.Hour),
		FreeQuestionLimit: getEnvInt("FREE_QUESTION_LIMIT", DefaultFreeQuestionLimit),
		BankName:          getEnv("BANK_NAME", "MB Bank"),
		BankAccountNumber: getEnv("BANK_ACCOUNT_NUMBER", "0343767490"),
		BankAccountName:   getEnv("BANK_ACCOUNT_NAME", "NGUYEN VAN A"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
		log.Printf("Invalid value for %s, using default %d", key, defaultValue)
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Invalid value for %s, using default %s", key, defaultValue)
	}
	return defaultValue
}
