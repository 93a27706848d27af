package api

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/MinterTeam/restaking-explorer/metrics"
	"github.com/MinterTeam/restaking-explorer/source"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/urfave/negroni"
)

const shutdownTimeout = 5 * time.Second

type Api struct {
	Host    string
	Port    int
	source  source.DataSource
	metrics *metrics.Metrics
	logger  *logrus.Entry
}

func New(host string, port int, ds source.DataSource, m *metrics.Metrics, logger *logrus.Entry) *Api {
	return &Api{
		Host:    host,
		Port:    port,
		source:  ds,
		metrics: m,
		logger:  logger.WithField("service", "api"),
	}
}

func (api *Api) GetLink() string {
	return api.Host + ":" + strconv.Itoa(api.Port)
}

func (api *Api) Handler() http.Handler {
	router := mux.NewRouter()
	router.Use(api.instrument)
	router.HandleFunc("/restakers", api.Restakers).Methods(http.MethodGet)
	router.HandleFunc("/validators", api.Validators).Methods(http.MethodGet)
	router.HandleFunc("/rewards", api.Rewards).Methods(http.MethodGet)
	router.HandleFunc("/rewards/{address}", api.Rewards).Methods(http.MethodGet)
	router.HandleFunc("/overview", api.Overview).Methods(http.MethodGet)
	router.HandleFunc("/samples", api.Samples).Methods(http.MethodGet)
	router.Handle("/metrics", api.metrics.Handler()).Methods(http.MethodGet)
	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sendErrorWithCodeResponse(w, api.logger, r.URL.Path, "route not found", http.StatusNotFound)
	})

	n := negroni.New()
	n.Use(negroni.NewRecovery())
	n.Use(newRequestLogger(api.logger))
	n.UseHandler(router)
	return n
}

// Run serves until ctx is cancelled, then drains in-flight requests
func (api *Api) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", api.GetLink())
	if err != nil {
		return err
	}
	return api.Serve(ctx, listener)
}

func (api *Api) Serve(ctx context.Context, listener net.Listener) error {
	srv := &http.Server{
		Handler:           api.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		api.logger.WithField("addr", listener.Addr().String()).Info("api listening")
		errCh <- srv.Serve(listener)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
