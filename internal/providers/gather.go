package providers

import (
	"context"
	"sync"
	"time"

	"detectia-backend/internal/shared/metrics"
	"detectia-backend/internal/shared/telemetry"
)

// DefaultTimeout bounds a single provider call so one stalled service cannot
// hold up the whole analysis.
const DefaultTimeout = 15 * time.Second

// Gather queries every provider concurrently and waits for all of them to
// settle. A failed provider is logged, counted and simply omitted from the
// result; Gather itself never fails. The returned map is keyed by provider
// name and contains only the providers that answered.
func Gather(ctx context.Context, provs []Provider, text string, timeout time.Duration) map[string]Signal {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	var (
		mu      sync.Mutex
		signals = make(map[string]Signal, len(provs))
		wg      sync.WaitGroup
	)

	for _, p := range provs {
		wg.Add(1)
		go func(p Provider) {
			defer wg.Done()
			callCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			started := time.Now()
			signal, err := p.Detect(callCtx, text)
			if err != nil {
				metrics.IncProviderFailed(p.Name())
				telemetry.Error("provider.failed", map[string]any{
					"provider":    p.Name(),
					"error":       err.Error(),
					"duration_ms": float64(time.Since(started).Microseconds()) / 1000.0,
				})
				return
			}
			signal.Source = p.Name()

			mu.Lock()
			signals[p.Name()] = signal
			mu.Unlock()
		}(p)
	}

	wg.Wait()
	return signals
}
