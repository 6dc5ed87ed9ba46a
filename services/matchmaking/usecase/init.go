package usecase

import (
	"time"

	"github.com/AxelRadin/LudoKan-sub000/internal/pkg/models"
	"github.com/AxelRadin/LudoKan-sub000/services/matchmaking"
)

const (
	defaultRadiusKm         = 10
	defaultRequestTTL       = time.Hour
	defaultSweepLockTTL     = 30 * time.Second
	defaultGeohashPrecision = 7
)

// MatchmakingUC implements the matchmaking use case interface
type MatchmakingUC struct {
	cfg  *models.Config
	repo matchmaking.MatchRequestRepo
	gw   matchmaking.MatchmakingGW
	now  func() time.Time
}

// NewMatchmakingUC creates a new matchmaking use case
func NewMatchmakingUC(
	cfg *models.Config,
	repo matchmaking.MatchRequestRepo,
	gw matchmaking.MatchmakingGW,
) *MatchmakingUC {
	return &MatchmakingUC{
		cfg:  cfg,
		repo: repo,
		gw:   gw,
		now:  time.Now,
	}
}

func (uc *MatchmakingUC) defaultRadiusKm() int {
	if uc.cfg.Matchmaking.DefaultRadiusKm > 0 {
		return uc.cfg.Matchmaking.DefaultRadiusKm
	}
	return defaultRadiusKm
}

func (uc *MatchmakingUC) defaultTTL() time.Duration {
	if uc.cfg.Matchmaking.DefaultTTL > 0 {
		return uc.cfg.Matchmaking.DefaultTTL
	}
	return defaultRequestTTL
}

func (uc *MatchmakingUC) sweepLockTTL() time.Duration {
	if uc.cfg.Matchmaking.SweepLockTTL > 0 {
		return uc.cfg.Matchmaking.SweepLockTTL
	}
	return defaultSweepLockTTL
}

func (uc *MatchmakingUC) geohashPrecision() uint {
	if uc.cfg.Matchmaking.GeohashPrecision > 0 {
		return uc.cfg.Matchmaking.GeohashPrecision
	}
	return defaultGeohashPrecision
}
