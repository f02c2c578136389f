package llm

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"
)

// Breaker stops calling a failing provider for a cool-down after three
// consecutive failures.
type Breaker struct {
	next Client
	cb   *gobreaker.CircuitBreaker
}

func WithBreaker(next Client, name string) *Breaker {
	st := gobreaker.Settings{
		Name:    name,
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	}
	return &Breaker{next: next, cb: gobreaker.NewCircuitBreaker(st)}
}

func (b *Breaker) Model() string { return b.next.Model() }

func (b *Breaker) Complete(ctx context.Context, req Request) (string, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.Complete(ctx, req)
	})
	if err != nil {
		return "", err
	}
	return out.(string), nil
}

func (b *Breaker) State() gobreaker.State { return b.cb.State() }
