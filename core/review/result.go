package review

import (
	"time"

	"github.com/adalundhe/boardroom/core/roles"
)

// AgentResult is the outcome of one seat's analysis. It is created once per
// invocation (successful or exhausted-retry) and never mutated afterwards.
type AgentResult struct {
	// Role is the seat that produced this result.
	Role roles.Role `json:"role"`
	// Analysis is the raw response text, or a failure explanation when
	// Error is true.
	Analysis string `json:"analysis"`
	// Recommendations is the extracted recommendations block.
	Recommendations string `json:"recommendations"`
	// RiskAssessment is the extracted risk-assessment block.
	RiskAssessment string `json:"risk_assessment"`
	// Score is the extracted overall score, always in [1,10]. When no score
	// could be parsed the neutral default 5 is substituted.
	Score int `json:"score"`
	// Model is the model name that served the call.
	Model string `json:"model"`
	// Error marks a terminal per-seat failure. Failed seats never abort the
	// run; they are carried in the run output for display and manual retry.
	Error bool `json:"error"`
	// FailureKind names the failure category when Error is true.
	FailureKind string `json:"failure_kind,omitempty"`
	// CreatedAt is when the result was produced.
	CreatedAt time.Time `json:"created_at"`
}

// Run is the transient aggregate of one panel execution: the subject plus an
// ordered mapping of role to result. Insertion order is execution order; the
// integration result, when present, is always last.
type Run struct {
	// ID identifies this run for logging and progress reporting.
	ID string `json:"id"`
	// SubjectID is the reviewed subject's identifier.
	SubjectID string `json:"subject_id"`

	order   []roles.Role
	results map[roles.Role]AgentResult

	// StartedAt and CompletedAt bound the run's wall-clock duration.
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at,omitempty"`
}

// NewRun creates an empty run for a subject.
func NewRun(id, subjectID string) *Run {
	return &Run{
		ID:        id,
		SubjectID: subjectID,
		results:   make(map[roles.Role]AgentResult),
		StartedAt: time.Now(),
	}
}

// Append records a result, preserving insertion order. Re-appending a role
// (a manual retry) replaces the stored result without changing its position.
func (r *Run) Append(res AgentResult) {
	if _, ok := r.results[res.Role]; !ok {
		r.order = append(r.order, res.Role)
	}
	r.results[res.Role] = res
}

// Get returns the result for a role, if recorded.
func (r *Run) Get(role roles.Role) (AgentResult, bool) {
	res, ok := r.results[role]
	return res, ok
}

// Roles returns the recorded roles in insertion order.
func (r *Run) Roles() []roles.Role {
	out := make([]roles.Role, len(r.order))
	copy(out, r.order)
	return out
}

// Results returns all recorded results in insertion order.
func (r *Run) Results() []AgentResult {
	out := make([]AgentResult, 0, len(r.order))
	for _, role := range r.order {
		out = append(out, r.results[role])
	}
	return out
}

// Succeeded returns the non-integration results with Error=false, in
// insertion order. This is the mapping the integration seat's prompt embeds.
func (r *Run) Succeeded() []AgentResult {
	out := make([]AgentResult, 0, len(r.order))
	for _, role := range r.order {
		res := r.results[role]
		if role != roles.Integration && !res.Error {
			out = append(out, res)
		}
	}
	return out
}

// Summary reports run-level success counts for caller-side handling.
type Summary struct {
	Total       int          `json:"total"`
	Succeeded   int          `json:"succeeded"`
	Failed      int          `json:"failed"`
	FailedRoles []roles.Role `json:"failed_roles,omitempty"`
}

// Outcome classifies a summary as "succeeded", "partial", or "failed".
func (s Summary) Outcome() string {
	switch {
	case s.Total == 0 || s.Failed == 0:
		return "succeeded"
	case s.Succeeded == 0:
		return "failed"
	default:
		return "partial"
	}
}

// Summarize computes the run's success/failure counts across every recorded
// seat, integration included.
func (r *Run) Summarize() Summary {
	s := Summary{Total: len(r.order)}
	for _, role := range r.order {
		if r.results[role].Error {
			s.Failed++
			s.FailedRoles = append(s.FailedRoles, role)
		} else {
			s.Succeeded++
		}
	}
	return s
}
