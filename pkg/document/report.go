package document

import (
	"github.com/BenjaminHaaseT/recipe-api/pkg/header"
)

// ResultStatus classifies the outcome of validating one document.
type ResultStatus string

const (
	// StatusValid means the document produced a complete recipe.
	StatusValid ResultStatus = "valid"
	// StatusInvalid means the document could not be read, failed envelope
	// checks, or was missing a mandatory field.
	StatusInvalid ResultStatus = "invalid"
)

// FileResult is the validation outcome for a single document source.
type FileResult struct {
	// Source is the path the document was read from.
	Source string `json:"source" yaml:"source"`

	// Status is valid or invalid.
	Status ResultStatus `json:"status" yaml:"status"`

	// MissingField names the mandatory recipe field the document lacks,
	// when that is the cause of invalidity.
	MissingField string `json:"missingField,omitempty" yaml:"missingField,omitempty"`

	// Message carries the failure detail for invalid documents.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// ReportSummary aggregates the per-file results.
type ReportSummary struct {
	Total   int `json:"total" yaml:"total"`
	Valid   int `json:"valid" yaml:"valid"`
	Invalid int `json:"invalid" yaml:"invalid"`
}

// ValidationReport is the document emitted after validating one or more
// recipe files.
type ValidationReport struct {
	header.Header `yaml:",inline"`

	Results []FileResult  `json:"results" yaml:"results"`
	Summary ReportSummary `json:"summary" yaml:"summary"`
}

// NewValidationReport assembles a report from per-file results, stamping the
// envelope and computing the summary counts.
func NewValidationReport(toolVersion string, results []FileResult) *ValidationReport {
	report := &ValidationReport{
		Results: results,
	}
	report.Header.Init(header.KindValidationReport, APIVersion, toolVersion)

	report.Summary.Total = len(results)
	for _, res := range results {
		if res.Status == StatusValid {
			report.Summary.Valid++
		} else {
			report.Summary.Invalid++
		}
	}

	return report
}
