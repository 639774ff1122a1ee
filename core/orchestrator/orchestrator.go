// Package orchestrator runs a panel of analyst seats sequentially over one
// subject and synthesizes their results through the integration seat. No
// two model calls ever interleave their retry delays: each seat, retries
// included, fully completes before the next seat starts.
package orchestrator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/adalundhe/boardroom/core/review"
	"github.com/adalundhe/boardroom/core/roles"
	"github.com/adalundhe/boardroom/core/runner"
	"github.com/adalundhe/boardroom/core/store"
)

// SeatRunner executes one seat. runner.Runner satisfies it; tests
// substitute fakes.
type SeatRunner interface {
	Run(ctx context.Context, role roles.Role, subject *review.Subject, opts runner.Options) review.AgentResult
}

// ProgressFunc receives human-readable seat-transition messages.
type ProgressFunc func(message string)

// Config controls one orchestrator.
type Config struct {
	// Roles is the ordered list of enabled seats. Integration, when
	// present, always executes last regardless of its position here.
	Roles []roles.Role

	// Model is the default model for every seat.
	Model string

	// Models overrides the model per seat. Optional.
	Models map[roles.Role]string

	// MaxTokens bounds each response; zero uses the model's budget.
	MaxTokens int

	// Instructions is caller free text passed to every seat verbatim.
	Instructions string

	// Timeout caps the whole sequential run, retries and waits included.
	// Zero means no deadline.
	Timeout time.Duration

	// Progress receives seat-transition messages. Optional.
	Progress ProgressFunc

	// Logger is optional, uses slog.Default() if nil.
	Logger *slog.Logger
}

// Orchestrator drives one panel run at a time.
type Orchestrator struct {
	runner  SeatRunner
	gateway store.Gateway
	config  Config
	logger  *slog.Logger

	mu    sync.RWMutex
	state State
}

// New creates an orchestrator. gateway may be nil when the caller handles
// persistence itself.
func New(seatRunner SeatRunner, gateway store.Gateway, cfg Config) (*Orchestrator, error) {
	if seatRunner == nil {
		return nil, fmt.Errorf("seat runner is required")
	}
	if len(cfg.Roles) == 0 {
		cfg.Roles = roles.DefaultOrder()
	}
	for _, role := range cfg.Roles {
		if !roles.Valid(role) {
			return nil, fmt.Errorf("unknown role: %s", role)
		}
	}
	if cfg.Model == "" {
		return nil, fmt.Errorf("model is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	return &Orchestrator{
		runner:  seatRunner,
		gateway: gateway,
		config:  cfg,
		logger:  cfg.Logger,
		state:   StatePending,
	}, nil
}

// State returns the current run state.
func (o *Orchestrator) State() State {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.state
}

func (o *Orchestrator) setState(s State) {
	o.mu.Lock()
	o.state = s
	o.mu.Unlock()
}

// Run executes the configured seats sequentially over the subject. A seat
// failure never aborts the run; failed seats are carried in the returned
// run with Error=true. The integration seat executes only when enabled and
// at least one individual seat succeeded. The returned error covers input
// validation only, never partial failure.
func (o *Orchestrator) Run(ctx context.Context, subject *review.Subject) (*review.Run, error) {
	if subject == nil {
		return nil, fmt.Errorf("subject is required")
	}
	if err := subject.Validate(); err != nil {
		return nil, err
	}

	if o.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.config.Timeout)
		defer cancel()
	}

	run := review.NewRun(newRunID(), subject.ID)
	o.logger.Info("panel run started",
		"run_id", run.ID,
		"subject_id", subject.ID,
		"seats", len(o.config.Roles),
	)

	o.setState(StateRunningIndividual)
	integrationEnabled := false
	for _, role := range o.config.Roles {
		if role == roles.Integration {
			integrationEnabled = true
			continue
		}
		o.report("running seat: " + role.DisplayName())
		res := o.runner.Run(ctx, role, subject, runner.Options{
			Model:        o.modelFor(role),
			MaxTokens:    o.config.MaxTokens,
			Instructions: o.config.Instructions,
		})
		run.Append(res)
		o.persist(ctx, subject.ID, res)
	}

	if integrationEnabled && len(run.Succeeded()) > 0 {
		o.setState(StateRunningIntegration)
		o.report("running seat: " + roles.Integration.DisplayName())
		res := o.runner.Run(ctx, roles.Integration, subject, runner.Options{
			Model:        o.modelFor(roles.Integration),
			MaxTokens:    o.config.MaxTokens,
			Others:       run.Succeeded(),
			Instructions: o.config.Instructions,
		})
		run.Append(res)
		o.persist(ctx, subject.ID, res)
	}

	o.setState(StateDone)
	run.CompletedAt = time.Now()

	summary := run.Summarize()
	o.logger.Info("panel run finished",
		"run_id", run.ID,
		"outcome", summary.Outcome(),
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
	)
	o.report(fmt.Sprintf("run %s: %d succeeded, %d failed", summary.Outcome(), summary.Succeeded, summary.Failed))

	return run, nil
}

// RetryRole re-executes a single seat and replaces its result in the run.
// Retrying the integration seat rebuilds its prompt from the run's current
// successful results. This is the manual retry affordance for failed seats;
// it is never invoked automatically.
func (o *Orchestrator) RetryRole(ctx context.Context, run *review.Run, subject *review.Subject, role roles.Role) (review.AgentResult, error) {
	if run == nil || subject == nil {
		return review.AgentResult{}, fmt.Errorf("run and subject are required")
	}
	if !roles.Valid(role) {
		return review.AgentResult{}, fmt.Errorf("unknown role: %s", role)
	}

	opts := runner.Options{
		Model:        o.modelFor(role),
		MaxTokens:    o.config.MaxTokens,
		Instructions: o.config.Instructions,
	}
	if role == roles.Integration {
		succeeded := run.Succeeded()
		if len(succeeded) == 0 {
			return review.AgentResult{}, fmt.Errorf("integration requires at least one successful seat")
		}
		opts.Others = succeeded
	}

	res := o.runner.Run(ctx, role, subject, opts)
	run.Append(res)
	o.persist(ctx, subject.ID, res)
	return res, nil
}

// modelFor resolves the per-seat model override.
func (o *Orchestrator) modelFor(role roles.Role) string {
	if m, ok := o.config.Models[role]; ok && m != "" {
		return m
	}
	return o.config.Model
}

// persist saves one result. Storage failures are logged and do not abort
// the run; the result still lives in the returned run.
func (o *Orchestrator) persist(ctx context.Context, subjectID string, res review.AgentResult) {
	if o.gateway == nil {
		return
	}
	if err := o.gateway.Save(ctx, subjectID, res); err != nil {
		o.logger.Warn("failed to persist seat result",
			"subject_id", subjectID,
			"role", string(res.Role),
			"error", err,
		)
	}
}

func (o *Orchestrator) report(message string) {
	if o.config.Progress != nil {
		o.config.Progress(message)
	}
}

func newRunID() string {
	return "run_" + uuid.New().String()[:8]
}
