package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rmarchuk/labelvet/internal/model"
	"github.com/rmarchuk/labelvet/internal/pipeline"
	"github.com/spf13/cobra"

	// Register the Tesseract OCR engine as the process default
	_ "github.com/rmarchuk/labelvet/internal/ocr/tesseract"
)

var (
	beverageType string
	brandName    string
	classType    string
	netContents  string
	nameAddress  string
	alcohol      string
	warningText  string
	outJSON      string
	outMD        string
	timeout      time.Duration
	ocrWorkers   int
	noCache      bool
	noFooter     bool
	llmEnabled   bool
	llmProvider  string
	llmModel     string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze <image>...",
	Short: "Analyze label images against declared form values",
	Long: `Analyze runs OCR on the given label images (in parallel), aggregates the
recognized text and validates it against the declared form values for the
selected beverage type.

Example:
  labelvet analyze --type spirits \
    --brand "Old Tom Distillery" \
    --class "Kentucky Straight Bourbon Whiskey" \
    --net "750 mL" \
    --address "Old Tom Distilling Co, Bardstown KY 40004" \
    --abv 45 \
    front.jpg back.jpg`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	// Form flags
	analyzeCmd.Flags().StringVar(&beverageType, "type", "", "beverage type (malt, spirits, wine)")
	analyzeCmd.Flags().StringVar(&brandName, "brand", "", "declared brand name")
	analyzeCmd.Flags().StringVar(&classType, "class", "", "declared class/type designation")
	analyzeCmd.Flags().StringVar(&netContents, "net", "", "declared net contents (e.g. \"750 mL\")")
	analyzeCmd.Flags().StringVar(&nameAddress, "address", "", "declared producer/bottler name and address")
	analyzeCmd.Flags().StringVar(&alcohol, "abv", "", "declared alcohol content (e.g. \"45\" or \"45%\")")
	analyzeCmd.Flags().StringVar(&warningText, "warning", "", "expected government warning text (optional)")
	_ = analyzeCmd.MarkFlagRequired("type")

	// Output flags
	analyzeCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON path")
	analyzeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown path (optional)")
	analyzeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// OCR flags
	analyzeCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "overall analysis timeout")
	analyzeCmd.Flags().IntVar(&ocrWorkers, "ocr-workers", 4, "parallel OCR workers per submission")
	analyzeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the OCR text cache")

	// LLM flags
	analyzeCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM summary of the findings")
	analyzeCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider")
	analyzeCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	sub := pipeline.Submission{
		BeverageType: model.BeverageType(beverageType),
		Form: model.DeclaredForm{
			BrandName:                 brandName,
			ClassTypeDesignation:      classType,
			NetContents:               netContents,
			NameAddress:               nameAddress,
			AlcoholContent:            alcohol,
			GovernmentWarningExpected: warningText,
		},
	}

	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read image %s: %w", path, err)
		}
		sub.Images = append(sub.Images, pipeline.LabelImage{
			Name: filepath.Base(path),
			Data: data,
		})
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Analyzing %d image(s), beverage type %s\n", len(sub.Images), beverageType)
	}

	p := pipeline.NewPipeline(cfg)
	report, err := p.Analyze(ctx, sub)
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ OCR complete, %d discrepancies\n", len(report.Discrepancies))
	}

	renderer := pipeline.NewRenderer(!noFooter)
	if outJSON != "" {
		if err := renderer.RenderJSON(report, outJSON); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote JSON: %s\n", outJSON)
		}
	}
	if outMD != "" {
		if err := renderer.RenderMarkdown(report, outMD); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Fprintf(os.Stderr, "✓ Wrote Markdown: %s\n", outMD)
		}
	}
	renderer.RenderSummary(report)

	return nil
}

// buildConfig assembles the runtime configuration from defaults plus flags
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	cfg.OCR.Workers = ocrWorkers
	cfg.Cache.Enabled = !noCache
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter

	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel
		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
			if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
				cfg.LLM.BaseURL = baseURL
			}
		}
	}
	return cfg, nil
}
