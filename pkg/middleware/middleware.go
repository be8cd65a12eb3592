package middleware

import (
	"github.com/gofiber/fiber/v2"
)

type Middleware interface {
	Middleware() fiber.Handler
}

// Transport groups the middlewares the server wires onto its routes.
type Transport struct {
	AdminAuthMiddleware Middleware
}
