package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	Environment     string
	FirebaseProject string
	FirebaseApiKey  string

	// Media uploads: "cloudinary" or "gcs".
	MediaProvider      string
	CloudinaryCloud    string
	CloudinaryPreset   string
	CloudinaryTag      string
	StorageBucket      string
	ServiceAccountPath string

	// Mobile-money deposit numbers and contact points shown in
	// payment instructions.
	MTNMoneyNumber    string
	AirtelMoneyNumber string
	WhatsAppNumber    string
	SupportEmail      string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseApiKey:  getEnv("FIREBASE_API_KEY", ""),

		MediaProvider:      getEnv("MEDIA_PROVIDER", "cloudinary"),
		CloudinaryCloud:    getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryPreset:   getEnv("CLOUDINARY_UPLOAD_PRESET", "sombateka"),
		CloudinaryTag:      getEnv("CLOUDINARY_TAG", "sombateka"),
		StorageBucket:      getEnv("STORAGE_BUCKET", ""),
		ServiceAccountPath: getEnv("FIREBASE_SERVICE_ACCOUNT_PATH", ""),

		MTNMoneyNumber:    getEnv("MTN_MONEY_NUMBER", ""),
		AirtelMoneyNumber: getEnv("AIRTEL_MONEY_NUMBER", ""),
		WhatsAppNumber:    getEnv("WHATSAPP_NUMBER", ""),
		SupportEmail:      getEnv("SUPPORT_EMAIL", ""),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
