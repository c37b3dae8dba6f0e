package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

var (
	SiteBaseURL string

	OSSEndpoint  string
	OSSKeyID     string
	OSSKeySecret string
	OSSBucket    string
)

func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, using system ENV")
	}

	SiteBaseURL = strings.TrimRight(GetEnv("SITE_BASE_URL"), "/")
	if SiteBaseURL == "" {
		SiteBaseURL = "http://localhost:3000"
	}

	OSSEndpoint = GetEnv("OSS_ENDPOINT")
	OSSKeyID = GetEnv("OSS_ACCESS_KEY_ID")
	OSSKeySecret = GetEnv("OSS_ACCESS_KEY_SECRET")
	OSSBucket = GetEnv("OSS_BUCKET")
	if OSSBucket == "" {
		log.Println("⚠️  OSS_BUCKET not set, file uploads disabled")
	}
}

func GetEnv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
