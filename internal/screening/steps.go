package screening

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/ermekov/tenderscope/internal/logger"
	"github.com/ermekov/tenderscope/internal/tender"
)

const maxLoggedTitle = 60

type expiredDeadlineFilter struct {
	now time.Time
}

// NewExpiredDeadline creates a filter that removes tenders whose
// submission deadline has already passed. Tenders with unparseable
// deadlines are kept; the scoring engine handles them.
func NewExpiredDeadline() Filter {
	return &expiredDeadlineFilter{}
}

func (f *expiredDeadlineFilter) Name() string { return "expired_deadline" }

func (f *expiredDeadlineFilter) Disable(string) {}

func (f *expiredDeadlineFilter) IsEnabled() bool { return true }

func (f *expiredDeadlineFilter) Validate(cfg *Config) error {
	f.now = cfg.now()
	return nil
}

func (f *expiredDeadlineFilter) Apply(deps Deps, t *tender.Tenders) (*tender.Tenders, Step, error) {
	initial := t.Len()

	var dropped []string
	kept := make([]*tender.Record, 0, initial)
	for _, record := range t.Items {
		deadline, ok := record.DeadlineDate()
		if ok && deadline.Before(f.now) {
			dropped = append(dropped, record.ID)
			if deps.Logger != nil {
				deps.Logger.Debug("dropping expired tender",
					zap.String("tender_id", record.ID),
					zap.String("title", logger.TruncateForLog(record.Title, maxLoggedTitle)),
					zap.String("deadline", record.DeadlineRaw),
				)
			}
			continue
		}
		kept = append(kept, record)
	}
	t.Items = kept

	if deps.Logger != nil && len(dropped) > 0 {
		deps.Logger.Info("excluding tenders with passed deadlines",
			zap.Strings("excluded_tenders", dropped),
			zap.Int("tenders_left", t.Len()),
		)
	}

	return t, Step{Initial: initial, Dropped: len(dropped), Left: t.Len()}, nil
}

func (f *expiredDeadlineFilter) Status() Status {
	return Status{Name: f.Name(), Enabled: true}
}

type issuersFilter struct {
	issuers []string
}

// NewExcludedIssuers creates a filter that removes tenders published by
// issuers the company refuses to work with.
func NewExcludedIssuers() Filter {
	return &issuersFilter{}
}

func (f *issuersFilter) Name() string { return "excluded_issuers" }

func (f *issuersFilter) Disable(string) {}

func (f *issuersFilter) IsEnabled() bool { return true }

func (f *issuersFilter) Validate(cfg *Config) error {
	f.issuers = nil
	if cfg != nil {
		f.issuers = append(f.issuers, cfg.ExcludedIssuers...)
	}
	return nil
}

func (f *issuersFilter) Apply(deps Deps, t *tender.Tenders) (*tender.Tenders, Step, error) {
	initial := t.Len()
	if len(f.issuers) == 0 {
		return t, Step{Initial: initial, Dropped: 0, Left: t.Len()}, nil
	}

	excluded := t.Exclude(tender.RecordIssuerField, f.issuers)
	if deps.Logger != nil && len(excluded) > 0 {
		deps.Logger.Info("excluding tenders by issuer",
			zap.Strings("excluded_issuers", f.issuers),
			zap.Strings("excluded_tenders", excluded),
			zap.Int("tenders_left", t.Len()),
		)
	}

	return t, Step{Initial: initial, Dropped: len(excluded), Left: t.Len()}, nil
}

func (f *issuersFilter) Status() Status {
	details := map[string]string{}
	if len(f.issuers) > 0 {
		details["issuers"] = strings.Join(f.issuers, ",")
	}
	return Status{Name: f.Name(), Enabled: true, Details: details}
}

type excludeFileFilter struct {
	path string
}

// NewExcludeFile creates a filter that removes tenders recorded in an
// exclude file during earlier runs.
func NewExcludeFile() Filter {
	return &excludeFileFilter{}
}

func (f *excludeFileFilter) Name() string { return "exclude_file" }

func (f *excludeFileFilter) Disable(string) {}

func (f *excludeFileFilter) IsEnabled() bool { return true }

func (f *excludeFileFilter) Validate(cfg *Config) error {
	f.path = ""
	if cfg != nil {
		f.path = strings.TrimSpace(cfg.ExcludeFile)
	}
	return nil
}

func (f *excludeFileFilter) Apply(deps Deps, t *tender.Tenders) (*tender.Tenders, Step, error) {
	initial := t.Len()
	if f.path == "" {
		return t, Step{Initial: initial, Dropped: 0, Left: t.Len()}, nil
	}

	excluded, err := tender.GetExcludedTendersFromFile(f.path)
	if err != nil {
		return t, Step{}, fmt.Errorf("getting excluded tenders from file: %w", err)
	}

	removed := t.Exclude(tender.RecordIDField, excluded.IDs())
	if deps.Logger != nil && len(removed) > 0 {
		deps.Logger.Info("excluding tenders based on exclude file",
			zap.String("path", f.path),
			zap.Strings("excluded_tenders", removed),
			zap.Int("tenders_left", t.Len()),
		)
	}

	return t, Step{Initial: initial, Dropped: len(removed), Left: t.Len()}, nil
}

func (f *excludeFileFilter) Status() Status {
	details := map[string]string{}
	if f.path != "" {
		details["path"] = f.path
	}
	return Status{Name: f.Name(), Enabled: true, Details: details}
}
