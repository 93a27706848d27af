package source

import (
	"context"

	"github.com/MinterTeam/restaking-explorer/address"
	"github.com/MinterTeam/restaking-explorer/latency"
	"github.com/MinterTeam/restaking-explorer/models"
	"github.com/MinterTeam/restaking-explorer/restaker"
	"github.com/MinterTeam/restaking-explorer/reward"
	"github.com/MinterTeam/restaking-explorer/validator"
	"github.com/sirupsen/logrus"
)

// MockSource serves generated data through the latency simulator
type MockSource struct {
	restakerRepository  *restaker.Repository
	validatorRepository *validator.Repository
	rewardRepository    *reward.Repository
	simulator           *latency.Simulator
	logger              *logrus.Entry
}

func NewMockSource(restakerRepository *restaker.Repository, validatorRepository *validator.Repository,
	rewardRepository *reward.Repository, simulator *latency.Simulator, logger *logrus.Entry) *MockSource {
	return &MockSource{
		restakerRepository:  restakerRepository,
		validatorRepository: validatorRepository,
		rewardRepository:    rewardRepository,
		simulator:           simulator,
		logger:              logger.WithField("source", "mock"),
	}
}

func (s *MockSource) FetchRestakers(ctx context.Context) ([]*models.RestakeRecord, error) {
	s.logger.Debug("fetching restakers")
	return latency.Simulate(ctx, s.simulator, func() ([]*models.RestakeRecord, error) {
		return s.restakerRepository.GenerateRestakers(), nil
	})
}

func (s *MockSource) FetchValidators(ctx context.Context) ([]*models.ValidatorRecord, error) {
	s.logger.Debug("fetching validators")
	return latency.Simulate(ctx, s.simulator, func() ([]*models.ValidatorRecord, error) {
		return s.validatorRepository.GenerateValidators(), nil
	})
}

// FetchRewardSummary rejects malformed addresses before any delay
func (s *MockSource) FetchRewardSummary(ctx context.Context, wallet string) (*models.RewardSummary, error) {
	s.logger.WithField("address", address.Short(wallet)).Debug("fetching rewards")
	if err := address.Validate(wallet); err != nil {
		return nil, err
	}
	return latency.Simulate(ctx, s.simulator, func() (*models.RewardSummary, error) {
		return s.rewardRepository.GenerateRewardSummary(wallet)
	})
}
