package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	JWTSecret  string
	SchoolSlug string
	AppEnv     string
)

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Tidak menemukan .env file, menggunakan ENV dari sistem")
		} else {
			log.Println("✅ .env file berhasil dimuat!")
		}
	} else {
		log.Println("🚀 Running in Railway, menggunakan ENV dari sistem")
	}

	JWTSecret = GetEnv("JWT_SECRET")
	SchoolSlug = GetEnv("SCHOOL_SLUG")
	AppEnv = GetEnv("APP_ENV", "development")

	if JWTSecret == "" {
		log.Println("❌ JWT_SECRET belum diset!")
	}
	// SCHOOL_SLUG menentukan tenant untuk seluruh umur proses (satu proses = satu sekolah).
	if SchoolSlug == "" {
		log.Println("❌ SCHOOL_SLUG belum diset! Proses tidak bisa melayani request tenant.")
	}
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

// IsProduction menentukan atribut Secure pada cookie auth.
func IsProduction() bool {
	return AppEnv == "production"
}
