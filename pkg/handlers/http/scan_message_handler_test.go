package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wsabol/oracle-moderation/pkg/app/scan"
	"github.com/wsabol/oracle-moderation/pkg/domain"
	patternMocks "github.com/wsabol/oracle-moderation/pkg/domain/pattern/mocks"
	"github.com/wsabol/oracle-moderation/pkg/domain/violation"
	violationMocks "github.com/wsabol/oracle-moderation/pkg/domain/violation/mocks"
	"github.com/wsabol/oracle-moderation/pkg/moderation"
	"github.com/wsabol/oracle-moderation/pkg/moderation/lexicon"
)

func setupScanApp(t *testing.T, violations *violationMocks.Repository) *fiber.App {
	logger := logrus.New()
	logger.SetLevel(logrus.ErrorLevel)

	provider := lexicon.NewStaticProvider(nil)
	require.NoError(t, provider.Load(context.Background()))

	detector := moderation.NewDetector(provider, logger)
	scorer := moderation.NewConfidenceScorer(detector, logger)
	patterns := new(patternMocks.Repository)
	patternDetector := moderation.NewPatternDetector(violations, patterns, logger)
	patterns.On("Save", mock.Anything, mock.Anything).Return(nil).Maybe()

	scanner := scan.NewMessageScanner(detector, scorer, violations, patternDetector, logger, false)
	handler := NewScanMessageHandler(logger, scanner)

	app := fiber.New()
	app.Post("/api/v1/scan", handler.Handle)
	return app
}

func scanRequest(t *testing.T, payload map[string]string) *http.Request {
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/scan", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestScanMessageHandler_CleanMessage(t *testing.T) {
	violations := new(violationMocks.Repository)
	app := setupScanApp(t, violations)

	resp, err := app.Test(scanRequest(t, map[string]string{
		"user_id": "user-42",
		"message": "will the full moon affect my sign?",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result scan.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, domain.HashUserID("user-42"), result.UserIDHash)
	assert.Nil(t, result.Violation)
	assert.Equal(t, scan.ActionNone, result.Action)
}

func TestScanMessageHandler_Violation(t *testing.T) {
	violations := new(violationMocks.Repository)
	app := setupScanApp(t, violations)

	violations.On("Save", mock.Anything, mock.AnythingOfType("*violation.Violation")).
		Return(nil).
		Run(func(args mock.Arguments) {
			v, ok := args.Get(1).(*violation.Violation)
			require.True(t, ok)
			v.ViolationCount = 1
		})
	violations.On("CountActiveSince", mock.Anything, mock.Anything, mock.Anything).
		Return(int64(0), nil).Maybe()
	violations.On("CountActiveByTypeSince", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(int64(0), nil).Maybe()
	violations.On("LatestByType", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, nil).Maybe()
	violations.On("CountFalsePositivesSince", mock.Anything, mock.Anything, mock.Anything).
		Return(int64(0), nil).Maybe()
	violations.On("CountLowConfidenceSince", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(int64(0), nil).Maybe()

	resp, err := app.Test(scanRequest(t, map[string]string{
		"user_id": "user-42",
		"message": "you are a complete moron",
	}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result scan.Result
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	require.NotNil(t, result.Violation)
	assert.Equal(t, violation.TypeAbusiveLanguage, result.Violation.ViolationType)
	assert.Equal(t, scan.ActionWarning, result.Action)
}

func TestScanMessageHandler_UserIDRequired(t *testing.T) {
	violations := new(violationMocks.Repository)
	app := setupScanApp(t, violations)

	resp, err := app.Test(scanRequest(t, map[string]string{"message": "hello"}))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestScanMessageHandler_InvalidBody(t *testing.T) {
	violations := new(violationMocks.Repository)
	app := setupScanApp(t, violations)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/scan", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
