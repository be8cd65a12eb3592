package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/wsabol/oracle-moderation/pkg/domain/violation"
)

type listViolationsHandler struct {
	logger     *logrus.Logger
	violations violation.Repository
}

func NewListViolationsHandler(
	logger *logrus.Logger,
	violations violation.Repository,
) Handler {
	return &listViolationsHandler{
		logger:     logger,
		violations: violations,
	}
}

// Handle @Summary      List a user's violations
// @Description  Returns the audit trail of violations for a user hash, newest first
// @Tags         Moderation
// @Param        Authorization header string true "Authorization token"
// @Param        user_hash path string true "User ID hash"
// @Produce      json
// @Success      200 {array} violation.Violation "Violations"
// @Failure      500 {object} map[string]interface{} "Internal server error"
// @Router       /api/v1/users/{user_hash}/violations [get]
func (h *listViolationsHandler) Handle(c *fiber.Ctx) error {
	userHash := c.Params("user_hash")
	if userHash == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "user_hash is required"})
	}

	offset := 0
	limit := 50

	if offsetStr := c.Query("offset"); offsetStr != "" {
		if val, err := strconv.Atoi(offsetStr); err == nil {
			offset = val
		}
	}
	if limitStr := c.Query("limit"); limitStr != "" {
		if val, err := strconv.Atoi(limitStr); err == nil && val > 0 && val <= 200 {
			limit = val
		}
	}

	violations, err := h.violations.ListByUser(c.Context(), userHash, offset, limit)
	if err != nil {
		h.logger.WithError(err).Error("failed to list violations")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to list violations"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"violations": violations,
		"count":      len(violations),
		"offset":     offset,
		"limit":      limit,
	})
}
