package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"urbanbean/internal/config"
	applog "urbanbean/internal/log"
)

const genericError = "Something went wrong. Please try again."

// ErrorHandler keeps client errors from fiber (unknown route, body too large)
// and hides everything else behind a generic message.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		return c.Status(fe.Code).JSON(fiber.Map{"error": fe.Message})
	}
	applog.Error(c, "server.error", err, nil)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": genericError})
}

// NewApp builds the HTTP surface: middleware plus routes.
func NewApp(d *Deps, cfg config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "urbanbean",
		BodyLimit:    1 << 20, // 1 MiB
		ErrorHandler: ErrorHandler,
	})

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(helmet.New())

	origins := strings.TrimSpace(cfg.CORSOrigins)
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		// empty AllowHeaders echoes whatever the preflight asks for
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		// fiber refuses credentials with a wildcard origin
		AllowCredentials: origins != "*",
	}))

	writes := limiter.New(limiter.Config{
		Max:        30,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Warn(c, "ratelimit.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many requests"})
		},
	})

	// ---------- Routes ----------
	app.Get("/", d.DiagnosticsHandler.Root)
	app.Get("/test", d.DiagnosticsHandler.Test)
	app.Get("/healthz", d.DiagnosticsHandler.Healthz)

	api := app.Group("/api")
	api.Get("/products", d.ProductHandler.List)
	api.Post("/products", writes, d.ProductHandler.Create)
	api.Get("/articles", d.ArticleHandler.List)
	api.Post("/articles", writes, d.ArticleHandler.Create)
	api.Post("/orders", writes, d.OrderHandler.Place)

	return app
}
