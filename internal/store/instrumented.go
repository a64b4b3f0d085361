package store

import (
	"context"
	"errors"
	"time"

	"github.com/ajitpratap0/riskready/internal/metrics"
)

// Instrumented wraps a KV and records operation counts and latency.
type Instrumented struct {
	KV
	backend string
}

// Instrument wraps kv so every call is recorded under the backend label.
func Instrument(kv KV, backend string) *Instrumented {
	return &Instrumented{KV: kv, backend: backend}
}

func (i *Instrumented) observe(op string, start time.Time, err error) {
	result := metrics.Result(err)
	if errors.Is(err, ErrNotFound) {
		result = "not_found"
	}
	metrics.StoreOps.WithLabelValues(i.backend, op, result).Inc()
	metrics.StoreDuration.WithLabelValues(i.backend, op).Observe(time.Since(start).Seconds())
}

// Get implements KV.
func (i *Instrumented) Get(ctx context.Context, key string) (_ []byte, err error) {
	defer func(start time.Time) { i.observe("get", start, err) }(time.Now())
	return i.KV.Get(ctx, key)
}

// Put implements KV.
func (i *Instrumented) Put(ctx context.Context, key string, value []byte) (err error) {
	defer func(start time.Time) { i.observe("put", start, err) }(time.Now())
	return i.KV.Put(ctx, key, value)
}

// Delete implements KV.
func (i *Instrumented) Delete(ctx context.Context, key string) (err error) {
	defer func(start time.Time) { i.observe("delete", start, err) }(time.Now())
	return i.KV.Delete(ctx, key)
}

// Keys implements KV.
func (i *Instrumented) Keys(ctx context.Context) (_ []string, err error) {
	defer func(start time.Time) { i.observe("keys", start, err) }(time.Now())
	return i.KV.Keys(ctx)
}
