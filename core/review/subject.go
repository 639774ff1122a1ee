// Package review defines the domain model for multi-agent business analysis:
// the subject under review, per-agent results, and the aggregate run.
package review

import (
	"fmt"
	"strings"
)

// Subject is the business entity a panel analyzes. It is assembled by the
// caller before a run starts and is immutable for the duration of the run.
type Subject struct {
	// ID uniquely identifies the subject across runs and storage.
	ID string `json:"id"`
	// Name is the display name of the project or query under review.
	Name string `json:"name"`
	// StartDate and EndDate bound the review period (free-form, e.g. "2026-01-02").
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
	// Budget is the planned spend for the subject.
	Budget float64 `json:"budget,omitempty"`
	// ActualCost is the realized spend.
	ActualCost float64 `json:"actual_cost,omitempty"`
	// Revenue is the realized income attributed to the subject.
	Revenue float64 `json:"revenue,omitempty"`
	// Description and Outcome are free-text fields from the intake form.
	Description string `json:"description,omitempty"`
	Outcome     string `json:"outcome,omitempty"`
	// Fields holds any additional named free-text fields.
	Fields map[string]string `json:"fields,omitempty"`
	// Documents are attached excerpts already extracted upstream.
	Documents []Document `json:"documents,omitempty"`
}

// Document is one attached file excerpt: the filename plus whatever text the
// upstream parser produced. Truncation happens at prompt-build time, not here.
type Document struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

// ROI returns the return on investment as a percentage. Zero actual cost
// yields zero rather than a division error.
func (s *Subject) ROI() float64 {
	if s.ActualCost <= 0 {
		return 0
	}
	return (s.Revenue - s.ActualCost) / s.ActualCost * 100
}

// FormatROI renders an ROI percentage with an explicit sign, e.g. "+50.0%".
func FormatROI(roi float64) string {
	return fmt.Sprintf("%+.1f%%", roi)
}

// FormatMoney renders a monetary amount with thousands separators, e.g.
// "1,500,000". Fractional parts are dropped; the intake forms store whole
// currency units.
func FormatMoney(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	digits := fmt.Sprintf("%.0f", amount)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Validate checks the subject is usable for a run.
func (s *Subject) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("subject id is required")
	}
	if s.Name == "" {
		return fmt.Errorf("subject name is required")
	}
	return nil
}
