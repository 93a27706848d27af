package core

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/MinterTeam/restaking-explorer/broadcast"
	"github.com/MinterTeam/restaking-explorer/env"
	"github.com/MinterTeam/restaking-explorer/latency"
	"github.com/MinterTeam/restaking-explorer/metrics"
	"github.com/MinterTeam/restaking-explorer/restaker"
	"github.com/MinterTeam/restaking-explorer/reward"
	"github.com/MinterTeam/restaking-explorer/source"
	"github.com/MinterTeam/restaking-explorer/validator"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCentrifugo struct {
	mu     sync.Mutex
	bodies []string
	srv    *httptest.Server
}

func newFakeCentrifugo() *fakeCentrifugo {
	f := &fakeCentrifugo{}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.POST("/api", f.publish)
	f.srv = httptest.NewServer(router)
	return f
}

func (f *fakeCentrifugo) publish(c *gin.Context) {
	b, _ := io.ReadAll(c.Request.Body)
	f.mu.Lock()
	f.bodies = append(f.bodies, string(b))
	f.mu.Unlock()
	c.String(http.StatusOK, `{"result":{}}`)
}

func (f *fakeCentrifugo) link() string {
	return f.srv.URL + "/api"
}

func (f *fakeCentrifugo) published() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.bodies...)
}

func newTestExplorer(envData *env.ExplorerEnvironment) *Explorer {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	entry := logrus.NewEntry(logger)
	ds := source.NewMockSource(restaker.NewRepository(), validator.NewRepository(), reward.NewRepository(),
		latency.New(time.Millisecond, 0), entry)
	return newExplorer(envData, ds, metrics.New(), entry)
}

func TestNewExplorerWithoutBroadcast(t *testing.T) {
	ext := NewExplorer(&env.ExplorerEnvironment{AppName: "test", ApiPort: 8000})
	assert.Nil(t, ext.broadcastService)
	assert.NotNil(t, ext.api)
}

func TestExplorer_OverviewBroadcastWorker(t *testing.T) {
	centrifugo := newFakeCentrifugo()
	defer centrifugo.srv.Close()

	ext := newTestExplorer(&env.ExplorerEnvironment{
		WsLink:           centrifugo.link(),
		OverviewInterval: 10 * time.Millisecond,
	})
	require.NotNil(t, ext.broadcastService)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ext.OverviewBroadcastWorker(ctx, 10*time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return len(centrifugo.published()) >= 2
	}, 5*time.Second, 5*time.Millisecond)
	cancel()
	<-done

	for _, body := range centrifugo.published() {
		assert.Contains(t, body, broadcast.OverviewChannel)
		assert.True(t, strings.Contains(body, "total_restaked"))
	}
	assert.GreaterOrEqual(t, testutil.ToFloat64(ext.metrics.OverviewBroadcasts.WithLabelValues("ok")), float64(2))
}

func TestExplorer_Run(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	ext := newTestExplorer(&env.ExplorerEnvironment{ApiHost: "127.0.0.1", ApiPort: port})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- ext.Run(ctx) }()

	url := "http://" + ext.api.GetLink() + "/overview"
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		_ = resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("explorer did not stop")
	}
}
