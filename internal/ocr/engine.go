// Package ocr defines the OCR collaborator contract and the service that
// runs recognition over a submission's images. The validation core treats
// the engine as a black box that maps an image to text; engines may return
// empty text, which downstream validation handles as "no usable text".
package ocr

import (
	"context"
	"errors"
)

// Input is a single image submitted for recognition
type Input struct {
	// ID is an optional caller-provided identifier echoed back in the Result
	ID string
	// Image is the encoded PNG or JPEG payload
	Image []byte
	// Languages is a list of trained-data hints (e.g. "eng") that engines
	// may use; engines are free to ignore it
	Languages []string
}

// Result is the recognition output for one input
type Result struct {
	InputID   string
	PlainText string
}

// Engine is the OCR provider contract: one image in, one result out
type Engine interface {
	Name() string
	Recognize(ctx context.Context, input Input) (Result, error)
}

var defaultEngine Engine = noopEngine{}

// DefaultEngine returns the process-wide default engine. The Tesseract
// subpackage registers itself here on import.
func DefaultEngine() Engine { return defaultEngine }

// SetDefaultEngine replaces the process-wide default engine
func SetDefaultEngine(engine Engine) { defaultEngine = engine }

type noopEngine struct{}

func (noopEngine) Name() string { return "noop" }

func (noopEngine) Recognize(context.Context, Input) (Result, error) {
	return Result{}, errors.New("no OCR engine registered")
}
