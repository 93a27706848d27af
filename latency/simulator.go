package latency

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	DefaultBase   = 500 * time.Millisecond
	DefaultJitter = 500 * time.Millisecond
)

// Simulator delays results to emulate a remote backend.
// Each delay is drawn uniformly from [Base, Base+Jitter).
type Simulator struct {
	Base     time.Duration
	Jitter   time.Duration
	observer prometheus.Observer
}

func New(base, jitter time.Duration) *Simulator {
	if base < 0 {
		base = 0
	}
	if jitter < 0 {
		jitter = 0
	}
	return &Simulator{Base: base, Jitter: jitter}
}

// WithObserver reports every drawn delay in seconds
func (s *Simulator) WithObserver(o prometheus.Observer) *Simulator {
	s.observer = o
	return s
}

func (s *Simulator) Delay() time.Duration {
	if s.Jitter <= 0 {
		return s.Base
	}
	return s.Base + time.Duration(rand.Int64N(int64(s.Jitter)))
}

// Wait blocks for one drawn delay or until ctx is done
func (s *Simulator) Wait(ctx context.Context) error {
	d := s.Delay()
	if s.observer != nil {
		s.observer.Observe(d.Seconds())
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Simulate produces the value right away and hands it back after the delay.
// When ctx is cancelled first the value is dropped.
func Simulate[T any](ctx context.Context, s *Simulator, produce func() (T, error)) (T, error) {
	var zero T
	value, err := produce()
	if err != nil {
		return zero, err
	}
	if err := s.Wait(ctx); err != nil {
		return zero, err
	}
	return value, nil
}
