package ocr

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/rmarchuk/labelvet/internal/cache"
	"github.com/rmarchuk/labelvet/internal/worker"
)

// Service runs recognition for a submission's images: preprocessing,
// multiple rotations, bounded parallelism across images, and caching of
// per-image text keyed by image hash.
type Service struct {
	engine     Engine
	maxWorkers int
	languages  []string
	limiter    *worker.EngineLimiter
	store      cache.Cache // nil disables caching
}

// NewService creates an OCR service. OCR dominates CPU cost, so maxWorkers
// controls how many of a submission's images are recognized concurrently.
func NewService(engine Engine, maxWorkers int, languages []string, limiter *worker.EngineLimiter, store cache.Cache) *Service {
	if engine == nil {
		engine = DefaultEngine()
	}
	if maxWorkers <= 0 {
		maxWorkers = 4
	}
	return &Service{
		engine:     engine,
		maxWorkers: maxWorkers,
		languages:  languages,
		limiter:    limiter,
		store:      store,
	}
}

// ExtractText recognizes a single image: scaled down if oversized, run at
// each rotation, with results merged and deduplicated by line. Cached output
// is returned without touching the engine.
func (s *Service) ExtractText(ctx context.Context, imageBytes []byte) (string, error) {
	key := cache.Key(s.engine.Name(), imageBytes)
	if s.store != nil {
		if data, found := s.store.Get(key); found {
			return string(data), nil
		}
	}

	img, err := prepare(imageBytes)
	if err != nil {
		return "", err
	}

	var lines []string
	seen := make(map[string]bool)

	for _, angle := range rotations {
		rotated := img
		if angle != 0 {
			rotated = rotate90(img)
		}
		encoded, err := encodePNG(rotated)
		if err != nil {
			return "", err
		}

		if err := s.limiter.Wait(ctx); err != nil {
			return "", err
		}
		result, err := s.engine.Recognize(ctx, Input{
			ID:        fmt.Sprintf("rot-%d", angle),
			Image:     encoded,
			Languages: s.languages,
		})
		if err != nil {
			return "", fmt.Errorf("recognize: %w", err)
		}

		// The same text often comes back from different rotations; keep the
		// first occurrence of each line.
		for _, line := range strings.Split(result.PlainText, "\n") {
			line = strings.TrimSpace(line)
			lower := strings.ToLower(line)
			if lower == "" || seen[lower] {
				continue
			}
			seen[lower] = true
			lines = append(lines, line)
		}
	}

	text := strings.Join(lines, "\n")
	if s.store != nil {
		_ = s.store.Set(key, []byte(text), 0)
	}
	return text, nil
}

// ExtractAll recognizes every image of a submission concurrently and returns
// the per-image texts in submission order plus the aggregated blob the
// validation pass consumes (per-image texts joined by newlines).
func (s *Service) ExtractAll(ctx context.Context, images [][]byte) ([]string, string, error) {
	if len(images) == 0 {
		return nil, "", nil
	}

	texts := make([]string, len(images))
	errs := make([]error, len(images))
	var wg sync.WaitGroup

	semaphore := make(chan struct{}, s.maxWorkers)

	for i, img := range images {
		wg.Add(1)
		go func(idx int, data []byte) {
			defer wg.Done()

			select {
			case <-ctx.Done():
				errs[idx] = ctx.Err()
				return
			case semaphore <- struct{}{}:
			}
			defer func() { <-semaphore }()

			texts[idx], errs[idx] = s.ExtractText(ctx, data)
		}(i, img)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, "", err
		}
	}
	return texts, strings.Join(texts, "\n"), nil
}
