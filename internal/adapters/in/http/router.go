package http

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"bakery/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	echoSwagger "github.com/swaggo/echo-swagger"
)

type RouterConfig struct {
	Logger   *slog.Logger
	Metrics  *metrics.ServerMetrics
	Gatherer prometheus.Gatherer

	// Ping reports whether the database is reachable; nil skips the check.
	Ping func(ctx context.Context) error
}

// NewRouter builds the echo instance: the API behind contract validation,
// plus /health, /metrics and the swagger UI.
func NewRouter(ctx context.Context, server ServerInterface, cfg RouterConfig) (*echo.Echo, error) {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	doc, err := LoadSpec(ctx)
	if err != nil {
		return nil, err
	}
	validator, err := NewRequestValidator(doc)
	if err != nil {
		return nil, err
	}
	if err = RegisterSwagger(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewErrorHandler(cfg.Logger)
	e.Use(middleware.Recover())
	e.Use(requestLogger(cfg.Logger))
	if cfg.Metrics != nil {
		e.Use(observe(cfg.Metrics))
	}
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		if cfg.Ping != nil {
			if err := cfg.Ping(c.Request().Context()); err != nil {
				return c.String(http.StatusServiceUnavailable, "Unhealthy")
			}
		}
		return c.String(http.StatusOK, "Healthy")
	})
	if cfg.Gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(metrics.Handler(cfg.Gatherer)))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	RegisterHandlers(e, server)

	return e, nil
}

func requestLogger(logger *slog.Logger) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			}
			if v.Error != nil {
				attrs = append(attrs, "error", v.Error)
			}
			logger.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	})
}

func observe(m *metrics.ServerMetrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				status = StatusFor(err)
			}
			route := c.Path()
			m.Requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
			m.LatencyMS.WithLabelValues(route).Observe(float64(time.Since(start).Milliseconds()))
			return err
		}
	}
}
