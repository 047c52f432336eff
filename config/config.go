package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

var (
	Port = "8080"

	// Auth settings
	JWTSecret     []byte
	JWTExpiration = 24 * time.Hour
	AdminUsername = "admin"
	// bcrypt hash of the admin password
	AdminPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

	// Remote news API (GraphQL)
	GraphQLEndpoint = "http://localhost:4000/graphql"

	// Image host settings
	CloudinaryCloudName    = "dsrl47mtp"
	CloudinaryUploadPreset = "unsigned_upload"
	UploadTimeout          = 30 * time.Second
)

func Init() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found")
	}

	Port = getEnv("PORT", Port)

	secret := getEnv("JWT_SECRET", "your-secret-key-change-this-in-production")
	JWTSecret = []byte(secret)

	AdminUsername = getEnv("ADMIN_USERNAME", AdminUsername)
	AdminPasswordHash = getEnv("ADMIN_PASSWORD_HASH", AdminPasswordHash)

	GraphQLEndpoint = getEnv("GRAPHQL_ENDPOINT", GraphQLEndpoint)

	CloudinaryCloudName = getEnv("CLOUDINARY_CLOUD_NAME", CloudinaryCloudName)
	CloudinaryUploadPreset = getEnv("CLOUDINARY_UPLOAD_PRESET", CloudinaryUploadPreset)

	if v := os.Getenv("UPLOAD_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			UploadTimeout = d
		}
	}
}

// CloudinaryUploadURL is the unsigned image upload endpoint for the configured cloud.
func CloudinaryUploadURL() string {
	return fmt.Sprintf("https://api.cloudinary.com/v1_1/%s/image/upload", CloudinaryCloudName)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
