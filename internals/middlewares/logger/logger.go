package logger

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"sekolahku_backend/internals/configs"
)

// LoggerMiddleware mencatat semua request HTTP. Request id (locals "reqid",
// diisi middleware observability di main) ikut dicetak supaya baris access
// log bisa dikorelasikan dengan log aplikasi lain.
func LoggerMiddleware() fiber.Handler {
	tz := configs.GetEnv("TZ")
	if tz == "" {
		tz = "Asia/Jakarta"
	}
	return logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   tz,
		Format:     "[${time}] ${locals:reqid} ${ip} ${method} ${path} ${status} ${latency}\n",
	})
}
