package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rmarchuk/labelvet/internal/model"
	"github.com/rmarchuk/labelvet/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	batchOutDir      string
	batchConcurrency int
	batchTimeout     time.Duration
)

// manifestEntry is one submission in a batch manifest file
type manifestEntry struct {
	Name         string             `json:"name"`
	BeverageType string             `json:"beverage_type"`
	Form         model.DeclaredForm `json:"form"`
	Images       []string           `json:"images"`
}

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <manifest.json>",
	Short: "Analyze multiple submissions from a manifest file",
	Long: `Batch reads a JSON manifest describing multiple submissions and analyzes
them concurrently, writing one JSON report per entry into the output
directory.

Manifest format:
  [
    {
      "name": "old-tom-750",
      "beverage_type": "spirits",
      "form": {
        "brand_name": "Old Tom Distillery",
        "class_type_designation": "Kentucky Straight Bourbon Whiskey",
        "net_contents": "750 mL",
        "name_address": "Old Tom Distilling Co, Bardstown KY 40004",
        "alcohol_content": "45"
      },
      "images": ["labels/old-tom-front.jpg", "labels/old-tom-back.jpg"]
    }
  ]

Image paths are resolved relative to the manifest file.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().StringVarP(&batchOutDir, "out", "o", "reports", "output directory for per-entry JSON reports")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 2, "submissions analyzed in parallel")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "overall batch timeout")
	batchCmd.Flags().IntVar(&ocrWorkers, "ocr-workers", 4, "parallel OCR workers per submission")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the OCR text cache")
}

func runBatch(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	manifestPath := args[0]
	names, subs, err := loadManifest(manifestPath)
	if err != nil {
		return err
	}
	if len(subs) == 0 {
		return fmt.Errorf("manifest %s contains no entries", manifestPath)
	}

	if err := os.MkdirAll(batchOutDir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	p := pipeline.NewPipeline(cfg)
	processor := pipeline.NewBatchProcessor(p, batchConcurrency)

	fmt.Printf("Analyzing %d submission(s) with concurrency %d...\n", len(subs), batchConcurrency)
	results := processor.Process(ctx, names, subs)

	renderer := pipeline.NewRenderer(!noFooter)
	failed := 0
	for _, res := range results {
		if res.Error != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", res.Name, res.Error)
			continue
		}
		outPath := filepath.Join(batchOutDir, res.Name+".json")
		if err := renderer.RenderJSON(res.Report, outPath); err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "✗ %s: write report: %v\n", res.Name, err)
			continue
		}
		fmt.Printf("✓ %s: %s (%d discrepancies) → %s\n",
			res.Name, res.Report.Status, len(res.Report.Discrepancies), outPath)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d submissions failed", failed, len(results))
	}
	return nil
}

// loadManifest parses the manifest and loads every referenced image
func loadManifest(path string) ([]string, []pipeline.Submission, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read manifest: %w", err)
	}

	var entries []manifestEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, nil, fmt.Errorf("parse manifest: %w", err)
	}

	baseDir := filepath.Dir(path)
	names := make([]string, 0, len(entries))
	subs := make([]pipeline.Submission, 0, len(entries))

	for i, entry := range entries {
		name := entry.Name
		if name == "" {
			name = fmt.Sprintf("submission-%d", i+1)
		}

		sub := pipeline.Submission{
			BeverageType: model.BeverageType(entry.BeverageType),
			Form:         entry.Form,
		}
		for _, imgPath := range entry.Images {
			if !filepath.IsAbs(imgPath) {
				imgPath = filepath.Join(baseDir, imgPath)
			}
			imgData, err := os.ReadFile(imgPath)
			if err != nil {
				return nil, nil, fmt.Errorf("entry %s: read image %s: %w", name, imgPath, err)
			}
			sub.Images = append(sub.Images, pipeline.LabelImage{
				Name: filepath.Base(imgPath),
				Data: imgData,
			})
		}

		names = append(names, name)
		subs = append(subs, sub)
	}

	return names, subs, nil
}
