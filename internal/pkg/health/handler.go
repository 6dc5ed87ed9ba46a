package health

import (
	"context"
	"errors"
	"net/http"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/logger"
	"github.com/labstack/echo/v4"
)

// BuildInfo contains information about the build
type BuildInfo struct {
	Version     string    `json:"version"`
	GitCommit   string    `json:"git_commit"`
	BuildTime   string    `json:"build_time"`
	ServiceName string    `json:"service_name"`
	GoVersion   string    `json:"go_version"`
	Hostname    string    `json:"hostname"`
	ServerTime  time.Time `json:"server_time"`
}

// DefaultBuildInfo contains default build information
var DefaultBuildInfo = BuildInfo{
	Version:   "development",
	GitCommit: "unknown",
	BuildTime: "unknown",
	GoVersion: runtime.Version(),
}

// Checker reports the health of one dependency
type Checker interface {
	CheckHealth(ctx context.Context) error
}

// CheckerFunc adapts a function to Checker
type CheckerFunc func(ctx context.Context) error

// CheckHealth calls f(ctx)
func (f CheckerFunc) CheckHealth(ctx context.Context) error {
	return f(ctx)
}

// Pinger is satisfied by the Postgres and Redis clients
type Pinger interface {
	Ping(ctx context.Context) error
}

// Connector is satisfied by the NATS client
type Connector interface {
	IsConnected() bool
}

// PingChecker wraps a Pinger
func PingChecker(p Pinger) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		return p.Ping(ctx)
	})
}

// ConnectionChecker wraps a Connector
func ConnectionChecker(c Connector) Checker {
	return CheckerFunc(func(ctx context.Context) error {
		if !c.IsConnected() {
			return errors.New("not connected")
		}
		return nil
	})
}

// DependencyInfo represents health info for a dependency
type DependencyInfo struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// Response represents the health check response
type Response struct {
	Status       string           `json:"status"`
	Service      string           `json:"service"`
	Version      string           `json:"version,omitempty"`
	Timestamp    time.Time        `json:"timestamp"`
	Dependencies []DependencyInfo `json:"dependencies"`
}

// Service runs the registered dependency checks
type Service struct {
	serviceName string
	checkers    map[string]Checker
}

// NewService creates a new health service
func NewService(serviceName string) *Service {
	return &Service{
		serviceName: serviceName,
		checkers:    make(map[string]Checker),
	}
}

// AddChecker registers a health checker for a dependency
func (s *Service) AddChecker(name string, checker Checker) {
	s.checkers[name] = checker
}

// Check performs health checks on all registered dependencies
func (s *Service) Check(ctx context.Context) Response {
	response := Response{
		Status:       "healthy",
		Service:      s.serviceName,
		Timestamp:    time.Now(),
		Dependencies: make([]DependencyInfo, 0, len(s.checkers)),
	}

	names := make([]string, 0, len(s.checkers))
	for name := range s.checkers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		info := DependencyInfo{Name: name, Status: "healthy"}
		if err := s.checkers[name].CheckHealth(ctx); err != nil {
			logger.Error("Health check failed",
				logger.String("dependency", name),
				logger.Err(err))
			info.Status = "unhealthy"
			info.Error = err.Error()
			response.Status = "unhealthy"
		}
		response.Dependencies = append(response.Dependencies, info)
	}

	return response
}

// NewPingHandler creates a handler for the ping endpoint
func NewPingHandler(serviceName string) echo.HandlerFunc {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}

	buildInfo := DefaultBuildInfo
	buildInfo.ServiceName = serviceName
	buildInfo.Hostname = hostname

	if version := os.Getenv("VERSION"); version != "" {
		buildInfo.Version = version
	}
	if gitCommit := os.Getenv("GIT_COMMIT"); gitCommit != "" {
		buildInfo.GitCommit = gitCommit
	}
	if buildTime := os.Getenv("BUILD_TIME"); buildTime != "" {
		buildInfo.BuildTime = buildTime
	}

	return func(c echo.Context) error {
		info := buildInfo
		info.ServerTime = time.Now()
		return c.JSON(http.StatusOK, info)
	}
}

// RegisterHealthEndpoints registers the liveness, readiness and ping endpoints
func RegisterHealthEndpoints(e *echo.Echo, version string, service *Service) {
	e.GET("/ping", NewPingHandler(service.serviceName))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "ok",
			"service": service.serviceName,
		})
	})

	e.GET("/health/live", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "alive",
			"service": service.serviceName,
		})
	})

	e.GET("/health/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
		defer cancel()

		response := service.Check(ctx)
		response.Version = version

		if response.Status != "healthy" {
			return c.JSON(http.StatusServiceUnavailable, response)
		}
		return c.JSON(http.StatusOK, response)
	})
}
