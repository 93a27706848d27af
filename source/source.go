package source

import (
	"context"

	"github.com/MinterTeam/restaking-explorer/models"
	"github.com/MinterTeam/restaking-explorer/stats"
	"golang.org/x/sync/errgroup"
)

// DataSource is everything the API needs from a restaking backend
type DataSource interface {
	FetchRestakers(ctx context.Context) ([]*models.RestakeRecord, error)
	FetchValidators(ctx context.Context) ([]*models.ValidatorRecord, error)
	FetchRewardSummary(ctx context.Context, address string) (*models.RewardSummary, error)
}

// FetchOverview loads both collections in parallel and derives the overview from them
func FetchOverview(ctx context.Context, ds DataSource) (*models.Overview, error) {
	var (
		restakers  []*models.RestakeRecord
		validators []*models.ValidatorRecord
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		restakers, err = ds.FetchRestakers(gctx)
		return err
	})
	g.Go(func() (err error) {
		validators, err = ds.FetchValidators(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return stats.Calculate(restakers, validators)
}
