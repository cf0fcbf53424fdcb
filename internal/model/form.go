package model

// BeverageType selects which validation pipeline applies to a submission
type BeverageType string

const (
	BeverageMalt    BeverageType = "malt"
	BeverageSpirits BeverageType = "spirits"
	BeverageWine    BeverageType = "wine"
)

// DeclaredForm holds the values the applicant claims appear on the label.
// The analyzer verifies these against text recovered from the label images.
type DeclaredForm struct {
	BrandName            string `json:"brand_name"`
	ClassTypeDesignation string `json:"class_type_designation"`
	NetContents          string `json:"net_contents"`
	NameAddress          string `json:"name_address"`
	AlcoholContent       string `json:"alcohol_content"`

	// GovernmentWarningExpected is optional; the warning check runs against
	// the canonical statement regardless.
	GovernmentWarningExpected string `json:"government_warning_expected,omitempty"`
}
