package prompt

import (
	"strings"
	"testing"

	"github.com/adalundhe/boardroom/core/review"
	"github.com/adalundhe/boardroom/core/roles"
)

func testSubject() *review.Subject {
	return &review.Subject{
		ID:          "proj-001",
		Name:        "Warehouse Automation",
		StartDate:   "2025-01-01",
		EndDate:     "2025-06-30",
		Budget:      120000000,
		ActualCost:  1000,
		Revenue:     1500,
		Description: "Conveyor retrofit program",
		Outcome:     "Completed on revised schedule",
	}
}

// =============================================================================
// Subject Rendering Tests
// =============================================================================

func TestBuildRendersSubjectData(t *testing.T) {
	b := NewBuilder()
	out, err := b.Build(roles.Technical, testSubject(), nil, "")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	for _, want := range []string{
		"Technical Reviewer",
		"- Name: Warehouse Automation",
		"- Period: 2025-01-01 ~ 2025-06-30",
		"- Budget: 120,000,000",
		"- Actual Cost: 1,000",
		"- Revenue: 1,500",
		"- ROI: +50.0%",
		"- Description: Conveyor retrofit program",
		"- Outcome: Completed on revised schedule",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

// ROI appears in every seat's prompt, computed before the model sees anything.
func TestBuildROIInEveryRolePrompt(t *testing.T) {
	b := NewBuilder()
	for _, role := range roles.DefaultOrder() {
		out, err := b.Build(role, testSubject(), nil, "")
		if err != nil {
			t.Fatalf("Build(%s) failed: %v", role, err)
		}
		if !strings.Contains(out, "- ROI: +50.0%") {
			t.Errorf("role %s prompt missing precomputed ROI", role)
		}
	}
}

func TestBuildZeroCostROI(t *testing.T) {
	subject := testSubject()
	subject.ActualCost = 0
	subject.Revenue = 0

	b := NewBuilder()
	out, err := b.Build(roles.Financial, subject, nil, "")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !strings.Contains(out, "- ROI: +0.0%") {
		t.Error("zero-cost subject should render ROI as +0.0%, never divide")
	}
}

func TestBuildCustomFieldsSorted(t *testing.T) {
	subject := testSubject()
	subject.Fields = map[string]string{
		"Sponsor":    "COO",
		"Department": "Logistics",
		"Phase":      "Closeout",
	}

	b := NewBuilder()
	out, err := b.Build(roles.Business, subject, nil, "")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	dept := strings.Index(out, "- Department: Logistics")
	phase := strings.Index(out, "- Phase: Closeout")
	sponsor := strings.Index(out, "- Sponsor: COO")
	if dept < 0 || phase < 0 || sponsor < 0 {
		t.Fatal("custom fields missing from prompt")
	}
	if !(dept < phase && phase < sponsor) {
		t.Error("custom fields not rendered in sorted order")
	}
}

// =============================================================================
// Document Truncation Tests
// =============================================================================

func TestBuildTruncatesDocuments(t *testing.T) {
	subject := testSubject()
	subject.Documents = []review.Document{
		{Filename: "plan.pdf", Content: strings.Repeat("a", 5000)},
		{Filename: "costs.xlsx", Content: strings.Repeat("b", 5000)},
		{Filename: "meta.json", Content: strings.Repeat("c", 5000)},
		{Filename: "dump.bin", Content: strings.Repeat("d", 5000)},
	}

	b := NewBuilder()
	out, err := b.Build(roles.ProjectManager, subject, nil, "")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	tests := []struct {
		filename string
		letter   string
		limit    int
	}{
		{"plan.pdf", "a", 3000},
		{"costs.xlsx", "b", 2000},
		{"meta.json", "c", 1500},
		{"dump.bin", "d", 1000},
	}
	for _, tt := range tests {
		want := strings.Repeat(tt.letter, tt.limit) + "..."
		if !strings.Contains(out, want) {
			t.Errorf("%s not truncated to %d chars with marker", tt.filename, tt.limit)
		}
		if strings.Contains(out, strings.Repeat(tt.letter, tt.limit+1)) {
			t.Errorf("%s excerpt exceeds its %d char limit", tt.filename, tt.limit)
		}
		if !strings.Contains(out, "### "+tt.filename) {
			t.Errorf("filename heading missing for %s", tt.filename)
		}
	}
}

func TestBuildShortDocumentUntouched(t *testing.T) {
	subject := testSubject()
	subject.Documents = []review.Document{
		{Filename: "notes.txt", Content: strings.Repeat("x", 500)},
	}

	b := NewBuilder()
	out, err := b.Build(roles.ProjectManager, subject, nil, "")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !strings.Contains(out, strings.Repeat("x", 500)+"\n") {
		t.Error("short document should be embedded whole")
	}
	if strings.Contains(out, strings.Repeat("x", 500)+"...") {
		t.Error("short document must not get a continuation marker")
	}
}

func TestLimitForCaseInsensitive(t *testing.T) {
	b := NewBuilder()
	tests := []struct {
		filename string
		expected int
	}{
		{"REPORT.PDF", 3000},
		{"Budget.XLSX", 2000},
		{"data.JSON", 1500},
		{"binary.exe", 1000},
		{"no-extension", 1000},
	}
	for _, tt := range tests {
		if got := b.limitFor(tt.filename); got != tt.expected {
			t.Errorf("limitFor(%q) = %d, want %d", tt.filename, got, tt.expected)
		}
	}
}

func TestTruncateRuneSafe(t *testing.T) {
	// Multibyte text must be cut at a rune boundary, never mid-character.
	s := strings.Repeat("한", 10)
	got := truncate(s, 4)
	if got != "한한한한..." {
		t.Errorf("truncate = %q, want %q", got, "한한한한...")
	}
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate below limit changed the string: %q", got)
	}
	if got := truncate("exact", 5); got != "exact" {
		t.Errorf("truncate at exactly the limit must not add a marker: %q", got)
	}
}

// =============================================================================
// Integration Prompt Tests
// =============================================================================

func TestBuildIntegrationEmbedsOthers(t *testing.T) {
	others := []review.AgentResult{
		{
			Role:            roles.Technical,
			Score:           8,
			Analysis:        strings.Repeat("t", 800),
			Recommendations: strings.Repeat("r", 400),
			RiskAssessment:  "stack lock-in",
		},
		{
			Role:            roles.Financial,
			Score:           6,
			Analysis:        "margins are thin",
			Recommendations: "renegotiate vendor terms",
			RiskAssessment:  strings.Repeat("k", 400),
		},
	}

	b := NewBuilder()
	out, err := b.Build(roles.Integration, testSubject(), others, "")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if !strings.Contains(out, "## PANEL RESULTS") {
		t.Fatal("integration prompt missing panel results section")
	}
	if !strings.Contains(out, "Technical Reviewer (score: 8/10)") {
		t.Error("missing technical seat header with score")
	}
	if !strings.Contains(out, "Financial Analyst (score: 6/10)") {
		t.Error("missing financial seat header with score")
	}

	// Analysis sliced to 500, blocks to 300.
	if !strings.Contains(out, strings.Repeat("t", 500)+"...") {
		t.Error("analysis slice not bounded at 500 chars")
	}
	if !strings.Contains(out, strings.Repeat("r", 300)+"...") {
		t.Error("recommendations slice not bounded at 300 chars")
	}
	if !strings.Contains(out, strings.Repeat("k", 300)+"...") {
		t.Error("risk slice not bounded at 300 chars")
	}
	if !strings.Contains(out, "margins are thin") {
		t.Error("short analysis should pass through whole")
	}

	// Order matches the slice order.
	if strings.Index(out, "Technical Reviewer (score:") > strings.Index(out, "Financial Analyst (score:") {
		t.Error("panel results not in execution order")
	}
}

func TestBuildNonIntegrationIgnoresOthers(t *testing.T) {
	others := []review.AgentResult{{Role: roles.Technical, Score: 8, Analysis: "prior"}}

	b := NewBuilder()
	out, err := b.Build(roles.Quality, testSubject(), others, "")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if strings.Contains(out, "## PANEL RESULTS") {
		t.Error("non-integration seats must not see prior results")
	}
}

// =============================================================================
// Contract and Determinism Tests
// =============================================================================

func TestBuildOutputContract(t *testing.T) {
	b := NewBuilder()
	out, err := b.Build(roles.Risk, testSubject(), nil, "")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	for _, want := range []string{
		"종합 점수: N",
		"graph TD",
		"-->",
		"at least 4 nodes and at least 3 edges",
		"권장사항",
		"리스크",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output contract missing %q", want)
		}
	}
}

func TestBuildInstructionsVerbatim(t *testing.T) {
	instructions := "Weigh the Q3 러닝레이트 against the revised budget.\nDo not flag vendor X."

	b := NewBuilder()
	out, err := b.Build(roles.Team, testSubject(), nil, instructions)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !strings.Contains(out, instructions) {
		t.Error("caller instructions must appear verbatim")
	}

	without, err := b.Build(roles.Team, testSubject(), nil, "")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if strings.Contains(without, "## ADDITIONAL INSTRUCTIONS") {
		t.Error("empty instructions must not render the section header")
	}
}

func TestBuildDeterministic(t *testing.T) {
	subject := testSubject()
	subject.Fields = map[string]string{"Zeta": "z", "Alpha": "a", "Mid": "m"}

	b := NewBuilder()
	first, err := b.Build(roles.Integration, subject, nil, "focus on delivery")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := b.Build(roles.Integration, subject, nil, "focus on delivery")
		if err != nil {
			t.Fatalf("Build failed: %v", err)
		}
		if again != first {
			t.Fatal("Build is not deterministic for fixed inputs")
		}
	}
}

func TestBuildUnknownRole(t *testing.T) {
	b := NewBuilder()
	if _, err := b.Build(roles.Role("astrologer"), testSubject(), nil, ""); err == nil {
		t.Error("expected error for unknown role")
	}
}
