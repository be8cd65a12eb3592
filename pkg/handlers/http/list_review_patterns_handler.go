package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/wsabol/oracle-moderation/pkg/domain/pattern"
)

type listReviewPatternsHandler struct {
	logger   *logrus.Logger
	patterns pattern.Repository
}

func NewListReviewPatternsHandler(
	logger *logrus.Logger,
	patterns pattern.Repository,
) Handler {
	return &listReviewPatternsHandler{
		logger:   logger,
		patterns: patterns,
	}
}

// Handle @Summary      List patterns requiring review
// @Description  Returns unreviewed patterns flagged for manual review, newest first
// @Tags         Review
// @Param        Authorization header string true "Authorization token"
// @Param        user_hash path string true "User ID hash"
// @Produce      json
// @Success      200 {array} pattern.Pattern "Patterns awaiting review"
// @Failure      500 {object} map[string]interface{} "Internal server error"
// @Router       /api/v1/users/{user_hash}/patterns/review [get]
func (h *listReviewPatternsHandler) Handle(c *fiber.Ctx) error {
	userHash := c.Params("user_hash")
	if userHash == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "user_hash is required"})
	}

	patterns, err := h.patterns.ListRequiringReview(c.Context(), userHash)
	if err != nil {
		h.logger.WithError(err).Error("failed to list patterns requiring review")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list patterns"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"patterns": patterns,
		"count":    len(patterns),
	})
}
