package server

import (
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/wsabol/oracle-moderation/pkg/config"
	handlers "github.com/wsabol/oracle-moderation/pkg/handlers/http"
	"github.com/wsabol/oracle-moderation/pkg/infra/prometheus"
	"github.com/wsabol/oracle-moderation/pkg/middleware"
)

type (
	AdminServerDI struct {
		MiddlewareTransport middleware.Transport
		HandlerTransport    handlers.HandlerTransport
		Config              *config.Config
		Logger              *logrus.Logger
	}
	AdminServer struct {
		*BaseServer
		middlewareTransport middleware.Transport
		handlerTransport    handlers.HandlerTransport
	}
)

func NewAdminServer(di AdminServerDI) *AdminServer {
	return &AdminServer{
		BaseServer:          NewBaseServer(di.Config, di.Logger),
		middlewareTransport: di.MiddlewareTransport,
		handlerTransport:    di.HandlerTransport,
	}
}

func (s *AdminServer) Run() error {
	s.setupRoutes()
	s.setupHealthCheck()
	s.startMetricsServer()

	addr := fmt.Sprintf(":%d", s.config.Server.AdminPort)
	s.logger.WithField("addr", addr).Info("Starting moderation admin server")
	return s.router.Listen(addr)
}

func (s *AdminServer) setupRoutes() {
	baseRouter := s.router.Group("")
	baseRouter.Use(s.middlewareTransport.AdminAuthMiddleware.Middleware())
	s.addRoutes(baseRouter)
}

func (s *AdminServer) addRoutes(router fiber.Router) {
	v1 := router.Group("/api/v1")
	{
		v1.Post("/scan", s.handlerTransport.ScanMessageHandler.Handle)

		users := v1.Group("/users/:user_hash")
		{
			users.Get("/violations", s.handlerTransport.ListViolationsHandler.Handle)
			users.Get("/patterns/review", s.handlerTransport.ListReviewPatternsHandler.Handle)
		}

		v1.Put("/patterns/:pattern_id/review", s.handlerTransport.MarkPatternReviewedHandler.Handle)
		v1.Put("/violations/:violation_id/false-positive", s.handlerTransport.ReportFalsePositiveHandler.Handle)
	}
}

func (s *AdminServer) startMetricsServer() {
	addr := fmt.Sprintf(":%d", s.config.Server.MetricsPort)
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(prometheus.Registry(), promhttp.HandlerOpts{}))

	go func() {
		s.logger.WithField("addr", addr).Info("Starting metrics server")
		if err := http.ListenAndServe(addr, mux); err != nil {
			s.logger.WithError(err).Error("metrics server stopped")
		}
	}()
}
