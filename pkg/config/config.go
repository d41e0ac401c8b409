package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	Environment     string
	FirebaseProject string

	// Gemini settings for the assist bridge
	GoogleAPIKey    string
	GeminiModel     string
	Temperature     float64
	TopK            int64
	TopP            float64
	MaxOutputTokens int64

	// Mission id of the current weekly challenge
	WeeklyMissionID string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		GoogleAPIKey:    getEnv("GOOGLE_API_KEY", ""),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		Temperature:     getEnvAsFloat("GEMINI_TEMPERATURE", 0.7),
		TopK:            getEnvAsInt64("GEMINI_TOP_K", 40),
		TopP:            getEnvAsFloat("GEMINI_TOP_P", 0.95),
		MaxOutputTokens: getEnvAsInt64("GEMINI_MAX_OUTPUT_TOKENS", 2048),
		WeeklyMissionID: getEnv("WEEKLY_MISSION_ID", ""),
	}

	if config.FirebaseProject == "" {
		return nil, fmt.Errorf("FIREBASE_PROJECT_ID is required")
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		floatValue, err := strconv.ParseFloat(value, 64)
		if err == nil {
			return floatValue
		}
	}
	return defaultValue
}
