package screening

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/ermekov/tenderscope/internal/tender"
)

// Filter represents a single screening step applied to tenders before
// full evaluation.
type Filter interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Validate(cfg *Config) error
	Apply(deps Deps, t *tender.Tenders) (*tender.Tenders, Step, error)
}

// Deps aggregates dependencies shared across all screening steps.
type Deps struct {
	Logger *zap.Logger
}

// Step describes the result of executing a screening step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Config contains configuration settings consumed by the filters.
type Config struct {
	ExcludedIssuers []string
	ExcludeFile     string
	// Now is the evaluation date used for deadline checks; defaults to
	// time.Now when unset.
	Now func() time.Time
}

func (c *Config) now() time.Time {
	if c == nil || c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// Status represents runtime information about a filter.
type Status struct {
	Name    string
	Enabled bool
	Reason  string
	Details map[string]string
}

// statusProvider is implemented by filters that can supply detailed status information.
type statusProvider interface {
	Status() Status
}

// DisableByName marks a filter with the provided name as disabled while keeping it in the list.
func DisableByName(steps []Filter, name, reason string) {
	for _, step := range steps {
		if step.Name() == name {
			step.Disable(reason)
		}
	}
}

// Run executes the supplied filters sequentially and returns the
// tenders that survive screening.
func Run(cfg *Config, deps Deps, steps []Filter, t *tender.Tenders) (*tender.Tenders, error) {
	for _, step := range steps {
		if !step.IsEnabled() {
			continue
		}
		if err := step.Validate(cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}
	}

	for _, step := range steps {
		if !step.IsEnabled() {
			if deps.Logger != nil {
				deps.Logger.Info("screening step disabled", zap.String("name", step.Name()))
			}
			continue
		}

		next, info, err := step.Apply(deps, t)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		if deps.Logger != nil {
			deps.Logger.Info("screening step",
				zap.String("name", step.Name()),
				zap.Int("initial", info.Initial),
				zap.Int("dropped", info.Dropped),
				zap.Int("left", info.Left),
			)
		}

		t = next
	}

	return t, nil
}

// Describe returns status entries for the provided filters.
func Describe(steps []Filter) []Status {
	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		if reporter, ok := step.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{
			Name:    step.Name(),
			Enabled: step.IsEnabled(),
		})
	}
	return statuses
}
