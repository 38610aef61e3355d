package server

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"

	"stoik.com/phishscan/internal/handler"
)

const maxUploadSize = "5M"

// BrokerHealth is implemented by the AMQP client.
type BrokerHealth interface {
	Healthy() bool
}

type HTTPServer struct {
	echo   *echo.Echo
	broker BrokerHealth
}

type HealthResponse struct {
	Status  string   `json:"status"`
	Service string   `json:"service"`
	Modules []string `json:"modules"`
	Broker  string   `json:"broker,omitempty"`
}

// NewHTTPServer wires the analysis routes. broker may be nil when no AMQP broker is configured.
func NewHTTPServer(analysisHandler *handler.AnalysisHTTPHandler, broker BrokerHealth) *HTTPServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.WithFields(log.Fields{
				"method":    v.Method,
				"uri":       v.URI,
				"status":    v.Status,
				"latency":   v.Latency,
				"requestID": v.RequestID,
			}).Info("request")
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(middleware.BodyLimit(maxUploadSize))
	e.Use(middleware.CORS())
	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
	}))

	server := &HTTPServer{
		echo:   e,
		broker: broker,
	}

	// Routes
	e.GET("/health", server.healthCheck)
	e.POST("/analyze_text", analysisHandler.AnalyzeText())
	e.POST("/analyze_email", analysisHandler.AnalyzeEmail())
	e.POST("/api/v1/analyses", analysisHandler.RequestAnalysis())

	return server
}

// Handler exposes the router, mainly for tests
func (s *HTTPServer) Handler() http.Handler {
	return s.echo
}

func (s *HTTPServer) healthCheck(c echo.Context) error {
	resp := HealthResponse{
		Status:  "healthy",
		Service: "phishscan",
		Modules: []string{"URL Security", "Signal Aggregation", "ML Blending"},
	}
	if s.broker != nil {
		resp.Broker = "up"
		if !s.broker.Healthy() {
			// synchronous analysis still works without the broker
			resp.Broker = "down"
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// Start serves until ctx is cancelled or the listener fails
func (s *HTTPServer) Start(ctx context.Context, address string) error {
	log.Infof("Starting HTTP server on %s", address)
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.echo.Start(address)
	}()

	select {
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
		return nil
	}
}

func (s *HTTPServer) Shutdown(ctx context.Context) error {
	log.Info("Shutting down HTTP server")
	return s.echo.Shutdown(ctx)
}
