package worker

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/logger"
	nrpkg "github.com/AxelRadin/LudoKan-sub000/internal/pkg/newrelic"
	"github.com/AxelRadin/LudoKan-sub000/services/matchmaking"
	"github.com/google/uuid"
	"github.com/newrelic/go-agent/v3/newrelic"
)

const defaultSweepInterval = time.Minute

// Sweeper periodically expires stale matchmaking requests. Replicas compete
// for a shared lock so that one sweep runs per tick across the deployment.
type Sweeper struct {
	matchmakingUC matchmaking.MatchmakingUC
	nrApp         *newrelic.Application
	interval      time.Duration
	owner         string
}

// NewSweeper creates a sweeper that runs every interval
func NewSweeper(matchmakingUC matchmaking.MatchmakingUC, nrApp *newrelic.Application, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &Sweeper{
		matchmakingUC: matchmakingUC,
		nrApp:         nrApp,
		interval:      interval,
		owner:         lockOwner(),
	}
}

// Serve implements suture.Service. It sweeps once at start and then on every tick.
func (s *Sweeper) Serve(ctx context.Context) error {
	logger.Info("Expiry sweeper started",
		logger.Duration("interval", s.interval),
		logger.String("owner", s.owner))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		s.RunOnce(ctx)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// String names the service in supervisor events
func (s *Sweeper) String() string {
	return "expiry-sweeper"
}

// RunOnce performs a single locked sweep. Failures are logged; the next tick retries.
func (s *Sweeper) RunOnce(ctx context.Context) {
	txn, ctx := nrpkg.StartBackgroundTransaction(ctx, s.nrApp, "worker/expire-matchmaking-requests")
	if txn != nil {
		defer txn.End()
	}

	expired, ran, err := s.matchmakingUC.RunScheduledSweep(ctx, s.owner)
	if err != nil {
		if txn != nil {
			txn.NoticeError(err)
		}
		logger.ErrorCtx(ctx, "Expiry sweep failed", logger.Err(err))
		return
	}
	if !ran {
		return
	}

	if txn != nil {
		txn.AddAttribute("matchmaking.expired", expired)
	}
	logger.DebugCtx(ctx, "Expiry sweep finished", logger.Int64("expired", expired))
}

func lockOwner() string {
	host, err := os.Hostname()
	if err != nil || host == "" {
		host = "unknown"
	}
	return fmt.Sprintf("%s-%s", host, uuid.NewString())
}
