package broadcast

import (
	"context"
	"encoding/json"

	"github.com/MinterTeam/restaking-explorer/models"
	"github.com/centrifugal/gocent"
	"github.com/sirupsen/logrus"
)

const OverviewChannel = "overview"

// Service pushes snapshots to Centrifugo channels
type Service struct {
	client *gocent.Client
	logger *logrus.Entry
}

func NewService(wsLink, wsKey string, logger *logrus.Entry) *Service {
	wsClient := gocent.New(gocent.Config{
		Addr: wsLink,
		Key:  wsKey,
	})

	return &Service{
		client: wsClient,
		logger: logger.WithField("service", "broadcast"),
	}
}

func (s *Service) PublishOverview(ctx context.Context, overview *models.Overview) error {
	msg, err := json.Marshal(overview)
	if err != nil {
		return err
	}
	return s.publish(ctx, OverviewChannel, msg)
}

func (s *Service) publish(ctx context.Context, ch string, msg []byte) error {
	err := s.client.Publish(ctx, ch, msg)
	if err != nil {
		s.logger.WithField("channel", ch).Warn(err)
	}
	return err
}
