package cli

import (
	"context"
	"errors"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/sirupsen/logrus"
)

var ErrPollTimeout = errors.New("payment not confirmed before the polling deadline")

// CheckFunc reports whether the awaited condition holds. An error aborts the poll.
type CheckFunc func(ctx context.Context) (bool, error)

// Poller repeats a check at a fixed interval until it succeeds or the
// deadline passes. It never changes server state on timeout.
type Poller struct {
	Clock    clock.Clock
	Interval time.Duration
	Timeout  time.Duration
	Log      *logrus.Logger
}

func NewPoller(clk clock.Clock, interval, timeout time.Duration, logger *logrus.Logger) *Poller {
	return &Poller{
		Clock:    clk,
		Interval: interval,
		Timeout:  timeout,
		Log:      logger,
	}
}

func (p *Poller) Run(ctx context.Context, check CheckFunc) error {
	deadline := p.Clock.Timer(p.Timeout)
	defer deadline.Stop()
	ticker := p.Clock.Ticker(p.Interval)
	defer ticker.Stop()

	attempt := 1
	for {
		done, err := check(ctx)
		if err != nil {
			return err
		}
		if done {
			p.Log.WithField("attempts", attempt).Info("condition met")
			return nil
		}
		p.Log.WithField("attempts", attempt).Debug("still pending")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline.C:
			p.Log.WithFields(logrus.Fields{
				"attempts": attempt,
				"timeout":  p.Timeout.String(),
			}).Warn("giving up")
			return ErrPollTimeout
		case <-ticker.C:
			attempt++
		}
	}
}
