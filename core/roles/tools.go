package roles

// Per-role tool-list descriptions. These are fixed strings appended to every
// prompt so the model frames its analysis with the named instruments.

const projectManagerTools = `Analysis tools for this review:
- Schedule variance analysis (planned vs. actual dates)
- Scope change ledger review
- Milestone post-mortem checklist
- Stakeholder communication audit`

const technicalTools = `Analysis tools for this review:
- Architecture decision record review
- Technical debt inventory
- Operational readiness checklist
- Incident and outage pattern analysis`

const businessTools = `Analysis tools for this review:
- Business case reconciliation (intent vs. outcome)
- Revenue quality assessment
- Competitive positioning scan
- Portfolio alignment check`

const qualityTools = `Analysis tools for this review:
- Escaped defect analysis
- Verification coverage assessment
- Definition-of-done audit
- User-impact severity grid`

const riskTools = `Analysis tools for this review:
- Likelihood/impact risk matrix
- Single point of failure inventory
- Mitigation adequacy review
- Residual exposure register`

const teamTools = `Analysis tools for this review:
- Skill coverage map
- Collaboration friction log review
- Sustainable pace assessment
- Bus factor analysis`

const financialTools = `Analysis tools for this review:
- Budget variance decomposition
- Fixed/variable cost split
- ROI and payback analysis
- Estimate accuracy review`

const integrationTools = `Synthesis tools for this report:
- Cross-seat score reconciliation
- Conflict surfacing and adjudication
- Recommendation deduplication and prioritization
- Consolidated risk register assembly`
