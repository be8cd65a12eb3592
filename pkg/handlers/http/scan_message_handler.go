package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/wsabol/oracle-moderation/pkg/app/scan"
)

type scanMessageRequest struct {
	UserID  string `json:"user_id"`
	Message string `json:"message"`
}

type scanMessageHandler struct {
	logger  *logrus.Logger
	scanner *scan.MessageScanner
}

func NewScanMessageHandler(
	logger *logrus.Logger,
	scanner *scan.MessageScanner,
) Handler {
	return &scanMessageHandler{
		logger:  logger,
		scanner: scanner,
	}
}

// Handle @Summary      Scan a chat message
// @Description  Runs moderation over one message, persists any violation and re-evaluates behavioral patterns
// @Tags         Moderation
// @Param        Authorization header string true "Authorization token"
// @Accept       json
// @Produce      json
// @Success      200 {object} scan.Result "Scan outcome"
// @Failure      400 {object} map[string]interface{} "Invalid request body"
// @Failure      500 {object} map[string]interface{} "Internal server error"
// @Router       /api/v1/scan [post]
func (h *scanMessageHandler) Handle(c *fiber.Ctx) error {
	var req scanMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.UserID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "user_id is required"})
	}

	result, err := h.scanner.Scan(c.Context(), req.UserID, req.Message)
	if err != nil {
		h.logger.WithError(err).Error("failed to scan message")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to scan message"})
	}

	return c.Status(fiber.StatusOK).JSON(result)
}
