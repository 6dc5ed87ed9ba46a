package supervisor

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type flakyService struct {
	runs atomic.Int32
}

func (s *flakyService) Serve(ctx context.Context) error {
	if s.runs.Add(1) == 1 {
		return errors.New("first run fails")
	}
	<-ctx.Done()
	return ctx.Err()
}

func (s *flakyService) String() string { return "flaky" }

func TestTree_RestartsFailedWorker(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger.SetGlobalLogger(&logger.ZapLogger{Logger: zap.New(core)})
	t.Cleanup(func() { logger.SetGlobalLogger(nil) })

	tree := NewTree("matchmaking-test", TreeConfig{
		FailureBackoff:  10 * time.Millisecond,
		ShutdownTimeout: time.Second,
	})
	svc := &flakyService{}
	tree.AddWorker(svc)

	ctx, cancel := context.WithCancel(context.Background())
	done := tree.ServeBackground(ctx)

	require.Eventually(t, func() bool {
		return svc.runs.Load() >= 2
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("tree did not stop")
	}

	assert.NotEmpty(t, logs.FilterField(zap.String("event", "service_terminate")).All())
}

func TestTree_MessagingServiceRuns(t *testing.T) {
	tree := NewTree("matchmaking-test", DefaultTreeConfig())
	started := make(chan struct{})
	tree.AddMessagingService(serviceFunc(func(ctx context.Context) error {
		close(started)
		<-ctx.Done()
		return ctx.Err()
	}))

	ctx, cancel := context.WithCancel(context.Background())
	done := tree.ServeBackground(ctx)

	select {
	case <-started:
	case <-time.After(2 * time.Second):
		t.Fatal("service not started")
	}

	cancel()
	<-done

	report, err := tree.UnstoppedServiceReport()
	assert.NoError(t, err)
	assert.Empty(t, report)
}

type serviceFunc func(ctx context.Context) error

func (f serviceFunc) Serve(ctx context.Context) error { return f(ctx) }
