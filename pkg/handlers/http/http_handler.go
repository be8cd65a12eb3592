package http

import (
	"github.com/gofiber/fiber/v2"
)

type Handler interface {
	Handle(c *fiber.Ctx) error
}

// HandlerTransport groups every handler the server mounts.
type HandlerTransport struct {
	ScanMessageHandler         Handler
	ListReviewPatternsHandler  Handler
	MarkPatternReviewedHandler Handler
	ListViolationsHandler      Handler
	ReportFalsePositiveHandler Handler
}
