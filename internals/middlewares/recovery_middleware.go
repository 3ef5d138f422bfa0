package middlewares

import (
	"log"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// RecoveryMiddleware menangkap panic di handler supaya proses sekolah tidak
// ikut mati gara-gara satu request. Respons jadi 500, panic dicatat bersama
// request id dari middleware observability di main.
func RecoveryMiddleware() fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e any) {
			log.Printf("[PANIC] id=%v %s %s: %v\n%s",
				c.Locals("reqid"), c.Method(), c.OriginalURL(), e, debug.Stack())
		},
	})
}
