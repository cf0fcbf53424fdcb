package model

// Field identifies a tracked label field that rules check and evidence is
// collected for
type Field string

const (
	FieldOCR               Field = "ocr"
	FieldBrandName         Field = "brand_name"
	FieldClassType         Field = "class_type_designation"
	FieldAlcoholContent    Field = "alcohol_content"
	FieldNetContents       Field = "net_contents"
	FieldNameAddress       Field = "name_address"
	FieldGovernmentWarning Field = "government_warning"
	FieldBeverageType      Field = "beverage_type"
)

// RuleID identifies a validation rule. Pipelines are configured as ordered
// lists of rule IDs; dispatch happens through an explicit table, not
// string-keyed reflection.
type RuleID string

const (
	RuleOCREmptyText        RuleID = "OCR_EMPTY_TEXT"
	RuleBrandNameContains   RuleID = "BRAND_NAME_CONTAINS"
	RuleDesignationContains RuleID = "DESIGNATION_CONTAINS"
	RuleNetContentsPresent  RuleID = "NET_CONTENTS_PRESENT"
	RuleNameAddressContains RuleID = "NAME_ADDRESS_CONTAINS"
	RuleGovWarningExact     RuleID = "GOV_WARNING_EXACT"
	RuleAlcPercentPresent   RuleID = "ALC_PERCENT_PRESENT"
	RuleAlcPercentMatch     RuleID = "ALC_PERCENT_MATCH_EXACT"

	// RuleInvalidBeverageType is synthetic: it never runs in a pipeline and
	// only appears when no pipeline exists for the requested beverage type.
	RuleInvalidBeverageType RuleID = "INVALID_BEVERAGE_TYPE"
)

// Severity classifies how a discrepancy affects the overall status
type Severity string

const (
	// SeverityError marks a failed mandatory check; any error discrepancy
	// makes the submission NON_COMPLIANT.
	SeverityError Severity = "error"
	// SeverityInfo marks a failed informational check; it is reported but
	// never changes the overall status.
	SeverityInfo Severity = "info"
)

// Discrepancy is a single field-level compliance failure. Rules produce
// discrepancies without a severity; the pipeline assigns severity based on
// the beverage type's configuration.
type Discrepancy struct {
	Field    Field    `json:"field"`     // which label field failed
	RuleID   RuleID   `json:"rule_id"`   // which check caught it
	Message  string   `json:"message"`   // human-readable explanation
	Severity Severity `json:"severity"`  // error or info, set by the pipeline
	OCRFound string   `json:"ocr_found"` // what OCR actually detected for the field
}
