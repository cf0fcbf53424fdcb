package model

import "time"

// Status is the overall verdict for a submission
type Status string

const (
	StatusCompliant    Status = "COMPLIANT"
	StatusNonCompliant Status = "NON_COMPLIANT"
)

// EvidenceRecord holds what OCR found for each tracked field, one optional
// slot per field. A nil slot means no evidence was recovered. Slots are
// populated uniformly by the pipeline after each rule runs: a failing rule's
// OCRFound wins over evidence recorded by a passing rule.
type EvidenceRecord struct {
	BrandName         *string `json:"brand_name"`
	ClassType         *string `json:"class_type_designation"`
	AlcoholContent    *string `json:"alcohol_content"`
	NetContents       *string `json:"net_contents"`
	NameAddress       *string `json:"name_address"`
	GovernmentWarning *string `json:"government_warning"`
}

// Set writes evidence into the slot for field. Untracked fields (e.g. the
// synthetic ocr/beverage_type fields) are ignored.
func (e *EvidenceRecord) Set(field Field, value string) {
	v := value
	switch field {
	case FieldBrandName:
		e.BrandName = &v
	case FieldClassType:
		e.ClassType = &v
	case FieldAlcoholContent:
		e.AlcoholContent = &v
	case FieldNetContents:
		e.NetContents = &v
	case FieldNameAddress:
		e.NameAddress = &v
	case FieldGovernmentWarning:
		e.GovernmentWarning = &v
	}
}

// Get returns the slot for field, or nil for untracked fields
func (e *EvidenceRecord) Get(field Field) *string {
	switch field {
	case FieldBrandName:
		return e.BrandName
	case FieldClassType:
		return e.ClassType
	case FieldAlcoholContent:
		return e.AlcoholContent
	case FieldNetContents:
		return e.NetContents
	case FieldNameAddress:
		return e.NameAddress
	case FieldGovernmentWarning:
		return e.GovernmentWarning
	}
	return nil
}

// AnalysisResult is the outcome of one validation pass over aggregated OCR
// text. Status is NON_COMPLIANT iff at least one discrepancy carries error
// severity.
type AnalysisResult struct {
	Status        Status         `json:"status"`
	Discrepancies []Discrepancy  `json:"discrepancies"`
	Evidence      EvidenceRecord `json:"ocr_evidence"`
}

// ImageOCR keeps per-image OCR output for traceability. Excerpt is capped so
// reports stay readable for dense labels.
type ImageOCR struct {
	ImageName string `json:"image_name"`
	Excerpt   string `json:"ocr_text_excerpt,omitempty"`
}

// Report is the complete analysis report for one submission
type Report struct {
	BeverageType BeverageType `json:"beverage_type"`
	AnalyzedAt   time.Time    `json:"analyzed_at"`

	Status        Status         `json:"status"`
	Discrepancies []Discrepancy  `json:"discrepancies"`
	Evidence      EvidenceRecord `json:"ocr_evidence"`

	Images []ImageOCR `json:"image_results,omitempty"`

	LLM *LLMSummary `json:"llm,omitempty"` // optional, never affects status
}

// LLMSummary contains an optional LLM-generated explanation of the findings.
// CRITICAL: this never affects the verdict and is clearly separated.
type LLMSummary struct {
	Enabled   bool   `json:"enabled"`
	Provider  string `json:"provider,omitempty"`
	Model     string `json:"model,omitempty"`
	SummaryMD string `json:"summary_md,omitempty"`
}
