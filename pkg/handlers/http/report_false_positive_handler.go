package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/wsabol/oracle-moderation/pkg/domain"
	"github.com/wsabol/oracle-moderation/pkg/domain/violation"
)

type reportFalsePositiveRequest struct {
	Reason string `json:"reason"`
}

type reportFalsePositiveHandler struct {
	logger     *logrus.Logger
	violations violation.Repository
}

func NewReportFalsePositiveHandler(
	logger *logrus.Logger,
	violations violation.Repository,
) Handler {
	return &reportFalsePositiveHandler{
		logger:     logger,
		violations: violations,
	}
}

// Handle @Summary      Report a violation as a false positive
// @Description  Flags a violation as reviewer-confirmed false positive and deactivates it; the audit record is kept
// @Tags         Review
// @Param        Authorization header string true "Authorization token"
// @Param        violation_id path string true "Violation ID"
// @Accept       json
// @Produce      json
// @Success      200 {object} map[string]interface{} "Violation flagged"
// @Failure      404 {object} map[string]interface{} "Violation not found"
// @Router       /api/v1/violations/{violation_id}/false-positive [put]
func (h *reportFalsePositiveHandler) Handle(c *fiber.Ctx) error {
	violationID, err := uuid.Parse(c.Params("violation_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid violation id"})
	}

	var req reportFalsePositiveRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}
	if req.Reason == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "reason is required"})
	}

	if err := h.violations.ReportFalsePositive(c.Context(), violationID, req.Reason); err != nil {
		if domain.IsNotFoundError(err) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "violation not found"})
		}
		h.logger.WithError(err).Error("failed to report false positive")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to report false positive"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "false_positive_reported"})
}
