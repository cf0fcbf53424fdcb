package worker

import (
	"context"

	"golang.org/x/time/rate"
)

// EngineLimiter caps the rate of OCR engine invocations. Local Tesseract
// does not need one, but API-backed engines bill per call and throttle; a
// nil limiter means unlimited.
type EngineLimiter struct {
	limiter *rate.Limiter
}

// NewEngineLimiter creates a limiter allowing requestsPerSecond sustained
// calls with the given burst. Returns nil (unlimited) when
// requestsPerSecond is not positive.
func NewEngineLimiter(requestsPerSecond float64, burst int) *EngineLimiter {
	if requestsPerSecond <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}
	return &EngineLimiter{limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burst)}
}

// Wait blocks until the next call is allowed or the context is done
func (l *EngineLimiter) Wait(ctx context.Context) error {
	if l == nil {
		return nil
	}
	return l.limiter.Wait(ctx)
}
