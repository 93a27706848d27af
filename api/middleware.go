package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
	"github.com/urfave/negroni"
)

type ctxKey int

const loggerKey ctxKey = iota

const RequestIdHeader = "X-Request-Id"

type requestLogger struct {
	logger *logrus.Entry
}

func newRequestLogger(logger *logrus.Entry) negroni.Handler {
	return &requestLogger{logger: logger}
}

func (l *requestLogger) ServeHTTP(w http.ResponseWriter, r *http.Request, next http.HandlerFunc) {
	start := time.Now()
	requestId := r.Header.Get(RequestIdHeader)
	if requestId == "" {
		requestId = uuid.NewString()
	}
	w.Header().Set(RequestIdHeader, requestId)

	entry := l.logger.WithFields(logrus.Fields{
		"request_id": requestId,
		"method":     r.Method,
		"path":       r.URL.Path,
	})
	next(w, r.WithContext(context.WithValue(r.Context(), loggerKey, entry)))

	fields := logrus.Fields{"duration": time.Since(start).String()}
	if res, ok := w.(negroni.ResponseWriter); ok {
		fields["status"] = res.Status()
	}
	entry.WithFields(fields).Debug("request served")
}

// requestLog returns the per-request entry set by the logger middleware
func requestLog(r *http.Request, fallback *logrus.Entry) *logrus.Entry {
	if entry, ok := r.Context().Value(loggerKey).(*logrus.Entry); ok {
		return entry
	}
	return fallback
}

func (api *Api) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := r.URL.Path
		if current := mux.CurrentRoute(r); current != nil {
			if tpl, err := current.GetPathTemplate(); err == nil {
				route = tpl
			}
		}

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		api.metrics.RequestDuration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		api.metrics.RequestsTotal.WithLabelValues(route, strconv.Itoa(rec.status)).Inc()
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
