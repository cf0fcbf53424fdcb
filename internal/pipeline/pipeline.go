// Package pipeline orchestrates a full submission analysis: parallel OCR of
// the label images, one synchronous validation pass over the aggregated
// text, and report assembly.
package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/rmarchuk/labelvet/internal/cache"
	"github.com/rmarchuk/labelvet/internal/llm"
	"github.com/rmarchuk/labelvet/internal/model"
	"github.com/rmarchuk/labelvet/internal/ocr"
	"github.com/rmarchuk/labelvet/internal/validate"
	"github.com/rmarchuk/labelvet/internal/worker"
)

// ocrExcerptLength caps per-image OCR excerpts kept in the report
const ocrExcerptLength = 500

// allowedImageExts are the raster formats accepted for label uploads
var allowedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// ValidImageName reports whether a filename has an accepted image extension
func ValidImageName(name string) bool {
	return allowedImageExts[strings.ToLower(filepath.Ext(name))]
}

// LabelImage is one uploaded label image
type LabelImage struct {
	Name string
	Data []byte
}

// Submission is one analysis request: the beverage type, the applicant's
// declared form values, and the label images.
type Submission struct {
	BeverageType model.BeverageType
	Form         model.DeclaredForm
	Images       []LabelImage
}

// Pipeline wires the OCR service, the validator and the optional summarizer
type Pipeline struct {
	ocrService *ocr.Service
	summarizer *llm.Summarizer // nil if disabled
	renderer   *Renderer
	config     *model.Config
}

// NewPipeline builds a pipeline from configuration using the process default
// OCR engine
func NewPipeline(cfg *model.Config) *Pipeline {
	return NewPipelineWithEngine(cfg, ocr.DefaultEngine())
}

// NewPipelineWithEngine builds a pipeline around a specific OCR engine
func NewPipelineWithEngine(cfg *model.Config, engine ocr.Engine) *Pipeline {
	var store cache.Cache
	if cfg.Cache.Enabled {
		if cfg.Cache.Dir != "" {
			store = cache.NewLayeredCache(cfg.Cache.MemoryTTL, cfg.Cache.Dir, cfg.Cache.DiskTTL)
		} else {
			store = cache.NewMemoryCache(cfg.Cache.MemoryTTL, 10*time.Minute)
		}
	}

	limiter := worker.NewEngineLimiter(cfg.OCR.RatePerSecond, cfg.OCR.Workers)

	var summarizer *llm.Summarizer
	if cfg.LLM.Provider != "" {
		s, err := llm.NewSummarizer(cfg.LLM)
		if err != nil {
			fmt.Printf("Warning: Failed to initialize LLM provider: %v\n", err)
		} else {
			summarizer = s
		}
	}

	return &Pipeline{
		ocrService: ocr.NewService(engine, cfg.OCR.Workers, cfg.OCR.Languages, limiter, store),
		summarizer: summarizer,
		renderer:   NewRenderer(cfg.Output.IncludeFooter),
		config:     cfg,
	}
}

// Analyze runs the complete flow for one submission. OCR of the images runs
// in parallel; validation is a single synchronous pass over the combined
// text. Compliance failures surface as discrepancies in the report, never as
// errors; an error return means the submission itself was unprocessable.
func (p *Pipeline) Analyze(ctx context.Context, sub Submission) (*model.Report, error) {
	if len(sub.Images) == 0 {
		return nil, fmt.Errorf("at least one image is required")
	}
	for _, img := range sub.Images {
		if !ValidImageName(img.Name) {
			return nil, fmt.Errorf("unsupported file type: %s (allowed: .png, .jpg, .jpeg)", img.Name)
		}
	}

	data := make([][]byte, len(sub.Images))
	for i, img := range sub.Images {
		data[i] = img.Data
	}

	texts, aggregated, err := p.ocrService.ExtractAll(ctx, data)
	if err != nil {
		return nil, fmt.Errorf("ocr: %w", err)
	}

	result := validate.Run(sub.BeverageType, sub.Form, aggregated)

	report := &model.Report{
		BeverageType:  sub.BeverageType,
		AnalyzedAt:    time.Now().UTC(),
		Status:        result.Status,
		Discrepancies: result.Discrepancies,
		Evidence:      result.Evidence,
		Images:        make([]model.ImageOCR, len(sub.Images)),
	}
	for i, img := range sub.Images {
		report.Images[i] = model.ImageOCR{
			ImageName: img.Name,
			Excerpt:   excerpt(texts[i], ocrExcerptLength),
		}
	}

	// Summary generation happens AFTER the verdict and never affects it
	if p.summarizer != nil && p.summarizer.IsEnabled() {
		summary, err := p.summarizer.Summarize(ctx, report)
		if err != nil {
			fmt.Printf("Warning: LLM summary generation failed: %v\n", err)
		} else if summary != nil {
			report.LLM = summary
		}
	}

	return report, nil
}

func excerpt(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	return text[:limit] + "..."
}
