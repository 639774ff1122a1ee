// Package roles defines the closed set of analyst roles a panel can seat,
// together with each role's fixed system prompt and tool-list description.
package roles

import "fmt"

// Role identifies one analyst seat on the panel.
type Role string

const (
	// ProjectManager reviews schedule, scope, and delivery execution.
	ProjectManager Role = "project_manager"
	// Technical reviews architecture, implementation quality, and tech debt.
	Technical Role = "technical"
	// Business reviews market fit, revenue model, and commercial outcomes.
	Business Role = "business"
	// Quality reviews defect history, test coverage, and process discipline.
	Quality Role = "quality"
	// Risk reviews threats, single points of failure, and mitigation posture.
	Risk Role = "risk"
	// Team reviews staffing, collaboration, and skill coverage.
	Team Role = "team"
	// Financial reviews budget adherence, cost structure, and ROI.
	Financial Role = "financial"
	// Integration synthesizes every other seat's result into one report.
	// It always runs last and only when at least one other seat succeeded.
	Integration Role = "integration"
)

// Profile is the static configuration one role owns.
type Profile struct {
	// SystemPrompt is the role's fixed system-prompt template.
	SystemPrompt string
	// ToolList describes the analysis tools the role claims to apply.
	ToolList string
}

var profiles = map[Role]Profile{
	ProjectManager: {SystemPrompt: projectManagerPrompt, ToolList: projectManagerTools},
	Technical:      {SystemPrompt: technicalPrompt, ToolList: technicalTools},
	Business:       {SystemPrompt: businessPrompt, ToolList: businessTools},
	Quality:        {SystemPrompt: qualityPrompt, ToolList: qualityTools},
	Risk:           {SystemPrompt: riskPrompt, ToolList: riskTools},
	Team:           {SystemPrompt: teamPrompt, ToolList: teamTools},
	Financial:      {SystemPrompt: financialPrompt, ToolList: financialTools},
	Integration:    {SystemPrompt: integrationPrompt, ToolList: integrationTools},
}

// DefaultOrder returns every individual role in its fixed execution order,
// followed by Integration. Execution order is significant for display.
func DefaultOrder() []Role {
	return []Role{
		ProjectManager,
		Technical,
		Business,
		Quality,
		Risk,
		Team,
		Financial,
		Integration,
	}
}

// GetProfile returns the static profile for a role.
func GetProfile(r Role) (Profile, error) {
	p, ok := profiles[r]
	if !ok {
		return Profile{}, fmt.Errorf("unknown role: %s", r)
	}
	return p, nil
}

// Valid reports whether r is one of the defined roles.
func Valid(r Role) bool {
	_, ok := profiles[r]
	return ok
}

// Parse converts a string into a Role, rejecting unknown names.
func Parse(s string) (Role, error) {
	r := Role(s)
	if !Valid(r) {
		return "", fmt.Errorf("unknown role: %q", s)
	}
	return r, nil
}

// DisplayName returns a human-readable name for the role.
func (r Role) DisplayName() string {
	switch r {
	case ProjectManager:
		return "Project Manager"
	case Technical:
		return "Technical Reviewer"
	case Business:
		return "Business Analyst"
	case Quality:
		return "Quality Auditor"
	case Risk:
		return "Risk Assessor"
	case Team:
		return "Team Analyst"
	case Financial:
		return "Financial Analyst"
	case Integration:
		return "Integration Chair"
	default:
		return string(r)
	}
}
