// Package tesseract provides the default OCR engine backed by the gosseract
// Tesseract bindings. Importing it registers the engine process-wide.
package tesseract

import (
	"context"
	"fmt"

	"github.com/otiai10/gosseract/v2"
	"github.com/rmarchuk/labelvet/internal/ocr"
)

func init() {
	ocr.SetDefaultEngine(New())
}

// Engine implements ocr.Engine using a gosseract client per call
type Engine struct {
	clientFactory func() *gosseract.Client
}

// New constructs a Tesseract-backed engine
func New() *Engine {
	return &Engine{clientFactory: gosseract.NewClient}
}

// Name returns the engine identifier used in cache keys
func (e *Engine) Name() string { return "tesseract" }

// Recognize performs OCR on a single image
func (e *Engine) Recognize(ctx context.Context, in ocr.Input) (ocr.Result, error) {
	select {
	case <-ctx.Done():
		return ocr.Result{}, ctx.Err()
	default:
	}

	c := e.clientFactory()
	defer c.Close()

	if err := c.SetImageFromBytes(in.Image); err != nil {
		return ocr.Result{}, fmt.Errorf("set image: %w", err)
	}
	if len(in.Languages) > 0 {
		if err := c.SetLanguage(in.Languages...); err != nil {
			return ocr.Result{}, fmt.Errorf("set languages: %w", err)
		}
	}

	text, err := c.Text()
	if err != nil {
		return ocr.Result{}, fmt.Errorf("recognize text: %w", err)
	}
	return ocr.Result{InputID: in.ID, PlainText: text}, nil
}
