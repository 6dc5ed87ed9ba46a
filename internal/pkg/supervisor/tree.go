package supervisor

import (
	"context"
	"time"

	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/logger"
	"github.com/thejerf/suture/v4"
)

// TreeConfig holds supervisor tree configuration
type TreeConfig struct {
	FailureThreshold float64
	FailureDecay     float64
	FailureBackoff   time.Duration
	ShutdownTimeout  time.Duration
}

// DefaultTreeConfig returns suture's defaults
func DefaultTreeConfig() TreeConfig {
	return TreeConfig{
		FailureThreshold: 5.0,
		FailureDecay:     30.0,
		FailureBackoff:   15 * time.Second,
		ShutdownTimeout:  10 * time.Second,
	}
}

// Tree supervises the background services of the matchmaking process.
// Workers (the expiry sweeper) and messaging (NATS consumers) are isolated
// so that a crash looping consumer does not stop the sweep.
type Tree struct {
	root      *suture.Supervisor
	workers   *suture.Supervisor
	messaging *suture.Supervisor
}

// NewTree creates a supervisor tree that reports its events through zap
func NewTree(name string, config TreeConfig) *Tree {
	defaults := DefaultTreeConfig()
	if config.FailureThreshold == 0 {
		config.FailureThreshold = defaults.FailureThreshold
	}
	if config.FailureDecay == 0 {
		config.FailureDecay = defaults.FailureDecay
	}
	if config.FailureBackoff == 0 {
		config.FailureBackoff = defaults.FailureBackoff
	}
	if config.ShutdownTimeout == 0 {
		config.ShutdownTimeout = defaults.ShutdownTimeout
	}

	spec := suture.Spec{
		EventHook:        EventHook,
		FailureThreshold: config.FailureThreshold,
		FailureDecay:     config.FailureDecay,
		FailureBackoff:   config.FailureBackoff,
		Timeout:          config.ShutdownTimeout,
	}

	root := suture.New(name, spec)
	workers := suture.New("workers", spec)
	messaging := suture.New("messaging", spec)
	root.Add(workers)
	root.Add(messaging)

	return &Tree{root: root, workers: workers, messaging: messaging}
}

// AddWorker adds a periodic background service
func (t *Tree) AddWorker(svc suture.Service) suture.ServiceToken {
	return t.workers.Add(svc)
}

// AddMessagingService adds a message consumer service
func (t *Tree) AddMessagingService(svc suture.Service) suture.ServiceToken {
	return t.messaging.Add(svc)
}

// ServeBackground starts the tree; the returned channel yields once it stops
func (t *Tree) ServeBackground(ctx context.Context) <-chan error {
	return t.root.ServeBackground(ctx)
}

// UnstoppedServiceReport lists services that did not stop within the timeout
func (t *Tree) UnstoppedServiceReport() ([]suture.UnstoppedService, error) {
	return t.root.UnstoppedServiceReport()
}

// EventHook logs supervisor events with the global zap logger
func EventHook(ev suture.Event) {
	details := logger.Any("details", ev.Map())

	switch ev.(type) {
	case suture.EventServicePanic:
		logger.Error(ev.String(), logger.String("event", "service_panic"), details)
	case suture.EventServiceTerminate:
		logger.Error(ev.String(), logger.String("event", "service_terminate"), details)
	case suture.EventStopTimeout:
		logger.Error(ev.String(), logger.String("event", "stop_timeout"), details)
	case suture.EventBackoff:
		logger.Warn(ev.String(), logger.String("event", "backoff"), details)
	default:
		logger.Info(ev.String(), logger.String("event", "resume"), details)
	}
}
