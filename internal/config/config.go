package config

import (
	"os"
	"strings"
	"time"
)

type Config struct {
	// Database
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// JWT
	JWTSecret        string
	JWTAccessExpiry  time.Duration
	JWTRefreshExpiry time.Duration

	// Blob storage
	BlobDriver  string // "local" or "s3"
	UploadDir   string
	S3Bucket    string
	S3Region    string
	S3Endpoint  string
	S3AccessKey string
	S3SecretKey string
	S3PathStyle bool

	// Server
	Port        string
	CORSOrigins string
	LogFormat   string // "json" or "text"
}

func Load() *Config {
	return &Config{
		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "postgres"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "closet_db"),
		DBSSLMode:  getEnv("DB_SSLMODE", "disable"),

		JWTSecret:        getEnv("JWT_SECRET", ""),
		JWTAccessExpiry:  parseDuration(getEnv("JWT_ACCESS_EXPIRY", "15m")),
		JWTRefreshExpiry: parseDuration(getEnv("JWT_REFRESH_EXPIRY", "168h")),

		BlobDriver:  getEnv("BLOB_DRIVER", "local"),
		UploadDir:   getEnv("UPLOAD_DIR", "./uploads/closet"),
		S3Bucket:    getEnv("BLOB_S3_BUCKET", ""),
		S3Region:    getEnv("BLOB_S3_REGION", "us-east-1"),
		S3Endpoint:  getEnv("BLOB_S3_ENDPOINT", ""),
		S3AccessKey: getEnv("BLOB_S3_ACCESS_KEY", ""),
		S3SecretKey: getEnv("BLOB_S3_SECRET_KEY", ""),
		S3PathStyle: strings.EqualFold(getEnv("BLOB_S3_PATH_STYLE", "false"), "true"),

		Port:        getEnv("PORT", "8080"),
		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
	}
}

func (c *Config) DSN() string {
	return "host=" + c.DBHost +
		" user=" + c.DBUser +
		" password=" + c.DBPassword +
		" dbname=" + c.DBName +
		" port=" + c.DBPort +
		" sslmode=" + c.DBSSLMode +
		" TimeZone=UTC"
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 15 * time.Minute
	}
	return d
}
