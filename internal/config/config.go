package config

import (
	"os"
	"strconv"

	"golang.org/x/crypto/bcrypt"
)

// Config carries everything the server needs from the environment.
type Config struct {
	Port        string
	DatabaseURL string
	SecretKey   string
	BcryptCost  int
}

// Load reads the environment with sensible development defaults. Call
// godotenv.Load before this if a .env file should be honored.
func Load() Config {
	cost := bcrypt.DefaultCost
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cost = n
		}
	}

	return Config{
		Port:        getenv("PORT", "3001"),
		DatabaseURL: getenv("DATABASE_URL", "host=localhost user=postgres password=postgres dbname=jobly port=5432 sslmode=disable"),
		SecretKey:   getenv("SECRET_KEY", "secret-dev"),
		BcryptCost:  cost,
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
