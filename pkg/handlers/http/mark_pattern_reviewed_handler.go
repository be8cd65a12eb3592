package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/wsabol/oracle-moderation/pkg/domain"
	"github.com/wsabol/oracle-moderation/pkg/domain/pattern"
)

type markPatternReviewedRequest struct {
	Notes string `json:"notes"`
}

type markPatternReviewedHandler struct {
	logger   *logrus.Logger
	patterns pattern.Repository
}

func NewMarkPatternReviewedHandler(
	logger *logrus.Logger,
	patterns pattern.Repository,
) Handler {
	return &markPatternReviewedHandler{
		logger:   logger,
		patterns: patterns,
	}
}

// Handle @Summary      Mark a pattern as reviewed
// @Description  Sets reviewed_at and the reviewer notes exactly once
// @Tags         Review
// @Param        Authorization header string true "Authorization token"
// @Param        pattern_id path string true "Pattern ID"
// @Accept       json
// @Produce      json
// @Success      200 {object} map[string]interface{} "Pattern marked reviewed"
// @Failure      404 {object} map[string]interface{} "Pattern not found"
// @Failure      409 {object} map[string]interface{} "Pattern already reviewed"
// @Router       /api/v1/patterns/{pattern_id}/review [put]
func (h *markPatternReviewedHandler) Handle(c *fiber.Ctx) error {
	patternID, err := uuid.Parse(c.Params("pattern_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid pattern id"})
	}

	var req markPatternReviewedRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := h.patterns.MarkReviewed(c.Context(), patternID, req.Notes); err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "pattern not found"})
		}
		if errors.Is(err, domain.ErrPatternAlreadyReviewed) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "pattern has already been reviewed"})
		}
		h.logger.WithError(err).Error("failed to mark pattern as reviewed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to mark pattern as reviewed"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "reviewed"})
}
