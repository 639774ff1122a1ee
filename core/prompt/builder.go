// Package prompt assembles the user prompt each seat sends to its model:
// subject data, truncated document excerpts, prior-seat results for the
// integration seat, caller instructions, and the fixed output contract.
package prompt

import (
	"fmt"
	"sort"
	"strings"

	"github.com/adalundhe/boardroom/core/review"
	"github.com/adalundhe/boardroom/core/roles"
)

// Builder assembles prompts. It is stateless apart from the compiled file
// category matchers, so one Builder serves every seat in a run.
type Builder struct {
	categories []fileCategory
}

// NewBuilder creates a prompt builder with the default file categories.
func NewBuilder() *Builder {
	return &Builder{categories: defaultCategories()}
}

// Build produces the full user prompt for one seat. For fixed inputs the
// output is a deterministic string. others is non-empty only for the
// integration seat and carries every prior successful result in execution
// order; instructions is included verbatim when non-empty.
func (b *Builder) Build(role roles.Role, subject *review.Subject, others []review.AgentResult, instructions string) (string, error) {
	profile, err := roles.GetProfile(role)
	if err != nil {
		return "", err
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("You are reviewing the following subject as the %s.\n\n", role.DisplayName()))
	b.writeSubject(&sb, subject)
	b.writeDocuments(&sb, subject.Documents)

	if role == roles.Integration && len(others) > 0 {
		b.writeOtherResults(&sb, others)
	}

	if instructions != "" {
		sb.WriteString("## ADDITIONAL INSTRUCTIONS\n\n")
		sb.WriteString(instructions)
		sb.WriteString("\n\n")
	}

	sb.WriteString("## TOOLS\n\n")
	sb.WriteString(profile.ToolList)
	sb.WriteString("\n\n")
	sb.WriteString(outputContract)

	return sb.String(), nil
}

// writeSubject renders the subject's core fields. Monetary amounts carry
// thousands separators; ROI is computed here, not by the model.
func (b *Builder) writeSubject(sb *strings.Builder, subject *review.Subject) {
	sb.WriteString("## PROJECT DATA\n\n")
	fmt.Fprintf(sb, "- Name: %s\n", subject.Name)
	if subject.StartDate != "" || subject.EndDate != "" {
		fmt.Fprintf(sb, "- Period: %s ~ %s\n", subject.StartDate, subject.EndDate)
	}
	if subject.Budget > 0 {
		fmt.Fprintf(sb, "- Budget: %s\n", review.FormatMoney(subject.Budget))
	}
	if subject.ActualCost > 0 {
		fmt.Fprintf(sb, "- Actual Cost: %s\n", review.FormatMoney(subject.ActualCost))
	}
	if subject.Revenue > 0 {
		fmt.Fprintf(sb, "- Revenue: %s\n", review.FormatMoney(subject.Revenue))
	}
	fmt.Fprintf(sb, "- ROI: %s\n", review.FormatROI(subject.ROI()))
	if subject.Description != "" {
		fmt.Fprintf(sb, "- Description: %s\n", subject.Description)
	}
	if subject.Outcome != "" {
		fmt.Fprintf(sb, "- Outcome: %s\n", subject.Outcome)
	}
	for _, name := range sortedFieldNames(subject.Fields) {
		fmt.Fprintf(sb, "- %s: %s\n", name, subject.Fields[name])
	}
	sb.WriteString("\n")
}

// writeDocuments renders attached excerpts, truncated per file category.
func (b *Builder) writeDocuments(sb *strings.Builder, docs []review.Document) {
	if len(docs) == 0 {
		return
	}

	sb.WriteString("## ATTACHED DOCUMENTS\n\n")
	for _, doc := range docs {
		limit := b.limitFor(doc.Filename)
		fmt.Fprintf(sb, "### %s\n\n", doc.Filename)
		sb.WriteString(truncate(doc.Content, limit))
		sb.WriteString("\n\n")
	}
}

// writeOtherResults embeds each prior seat's structured result for the
// integration seat: score, then bounded slices of analysis and the
// extracted blocks.
func (b *Builder) writeOtherResults(sb *strings.Builder, others []review.AgentResult) {
	sb.WriteString("## PANEL RESULTS\n\n")
	for _, res := range others {
		fmt.Fprintf(sb, "### %s (score: %d/10)\n\n", res.Role.DisplayName(), res.Score)
		fmt.Fprintf(sb, "Analysis: %s\n", truncate(res.Analysis, analysisSliceLen))
		fmt.Fprintf(sb, "Recommendations: %s\n", truncate(res.Recommendations, blockSliceLen))
		fmt.Fprintf(sb, "Risks: %s\n\n", truncate(res.RiskAssessment, blockSliceLen))
	}
}

const (
	// analysisSliceLen bounds how much of each seat's raw analysis the
	// integration prompt embeds.
	analysisSliceLen = 500
	// blockSliceLen bounds the recommendation and risk slices.
	blockSliceLen = 300
)

// continuationMarker is appended whenever an excerpt is cut.
const continuationMarker = "..."

// truncate cuts s to limit characters, appending the continuation marker
// when anything was dropped.
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + continuationMarker
}

func sortedFieldNames(fields map[string]string) []string {
	if len(fields) == 0 {
		return nil
	}
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	// Sorted so prompt output stays deterministic for map fields.
	sort.Strings(names)
	return names
}

// outputContract is the fixed format every seat must follow. The score line
// label and the diagram grammar are load-bearing: extraction and downstream
// rendering match them exactly.
const outputContract = `## OUTPUT FORMAT (REQUIRED)

Write your analysis as numbered sections (1., 2., 3., ...). The final
numbered section must end with a single line of exactly this form:

종합 점수: N

where N is an integer from 1 to 10.

After the numbered sections, include exactly one fenced code block
containing a diagram of your analysis:

- The first line of the block must be the directed-graph declaration: graph TD
- Every node must be an identifier with a bracket-delimited label, e.g. A[Schedule slip]
- Every edge must use the arrow token: -->
- Use at least 4 nodes and at least 3 edges

Also include a section whose lines start with "권장사항" (recommendations)
and a section whose lines start with "리스크" (risk assessment).`
