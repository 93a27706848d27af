package core

import (
	"context"
	"os"
	"time"

	"github.com/MinterTeam/restaking-explorer/api"
	"github.com/MinterTeam/restaking-explorer/broadcast"
	"github.com/MinterTeam/restaking-explorer/env"
	"github.com/MinterTeam/restaking-explorer/latency"
	"github.com/MinterTeam/restaking-explorer/metrics"
	"github.com/MinterTeam/restaking-explorer/restaker"
	"github.com/MinterTeam/restaking-explorer/reward"
	"github.com/MinterTeam/restaking-explorer/source"
	"github.com/MinterTeam/restaking-explorer/validator"
	"github.com/fatih/structs"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type Explorer struct {
	env              *env.ExplorerEnvironment
	source           source.DataSource
	api              *api.Api
	broadcastService *broadcast.Service
	metrics          *metrics.Metrics
	logger           *logrus.Entry
}

func NewExplorer(env *env.ExplorerEnvironment) *Explorer {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	if env.Debug {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetLevel(logrus.InfoLevel)
	}
	contextLogger := logger.WithFields(logrus.Fields{
		"app": env.AppName,
	})

	m := metrics.New()
	simulator := latency.New(env.BaseDelay, env.Jitter).WithObserver(m.SimulatedDelay)
	mockSource := source.NewMockSource(
		restaker.NewRepository(),
		validator.NewRepository(),
		reward.NewRepository(),
		simulator,
		contextLogger,
	)

	return newExplorer(env, mockSource, m, contextLogger)
}

func newExplorer(env *env.ExplorerEnvironment, ds source.DataSource, m *metrics.Metrics, logger *logrus.Entry) *Explorer {
	ext := &Explorer{
		env:     env,
		source:  ds,
		api:     api.New(env.ApiHost, env.ApiPort, ds, m, logger),
		metrics: m,
		logger:  logger,
	}
	if env.BroadcastEnabled() {
		ext.broadcastService = broadcast.NewService(env.WsLink, env.WsKey, logger)
	}
	return ext
}

// Run blocks until ctx is cancelled or the API server fails
func (ext *Explorer) Run(ctx context.Context) error {
	ext.logger.WithFields(logrus.Fields{
		"addr":       ext.api.GetLink(),
		"base_delay": ext.env.BaseDelay.String(),
		"jitter":     ext.env.Jitter.String(),
		"broadcast":  ext.broadcastService != nil,
	}).Info("starting explorer")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return ext.api.Run(gctx)
	})
	if ext.broadcastService != nil {
		g.Go(func() error {
			ext.OverviewBroadcastWorker(gctx, ext.env.OverviewInterval)
			return nil
		})
	}
	return g.Wait()
}

// OverviewBroadcastWorker publishes a fresh overview every interval
func (ext *Explorer) OverviewBroadcastWorker(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		ext.publishOverview(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (ext *Explorer) publishOverview(ctx context.Context) {
	overview, err := source.FetchOverview(ctx, ext.source)
	if err != nil {
		if ctx.Err() == nil {
			ext.logger.Error(err)
		}
		return
	}
	ext.logger.WithFields(structs.Map(overview)).Debug("overview refreshed")

	if err := ext.broadcastService.PublishOverview(ctx, overview); err != nil {
		ext.metrics.OverviewBroadcasts.WithLabelValues("error").Inc()
		return
	}
	ext.metrics.OverviewBroadcasts.WithLabelValues("ok").Inc()
}
