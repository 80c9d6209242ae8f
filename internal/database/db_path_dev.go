//go:build !prod

package database

import (
	"os"

	"github.com/joho/godotenv"
)

// GetDefaultDBPath returns the database path for development mode.
// In dev mode, the database lives in the project root for easy access and
// debugging; a .env file may override it via VOICE_DICTATOR_DB.
func GetDefaultDBPath() string {
	_ = godotenv.Load()
	if path := os.Getenv("VOICE_DICTATOR_DB"); path != "" {
		return path
	}
	return "voice-dictator.db"
}

func IsDevelopment() bool {
	return true
}
