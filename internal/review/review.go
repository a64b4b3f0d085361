// Package review sweeps the dataset for items that need attention:
// overdue or due-soon work, low or expiring supplies, and scenarios that
// carry high risk with little preparation.
package review

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/ajitpratap0/riskready/internal/engine"
	"github.com/ajitpratap0/riskready/internal/metrics"
	"github.com/ajitpratap0/riskready/internal/models"
)

// Finding kinds.
const (
	KindOverdueRemediation = "overdue_remediation"
	KindDueSoonRemediation = "due_soon_remediation"
	KindOverdueStep        = "overdue_step"
	KindDueSoonStep        = "due_soon_step"
	KindOverduePlan        = "overdue_plan"
	KindLowStock           = "low_stock"
	KindExpiring           = "expiring_item"
	KindExpired            = "expired_item"
	KindHighRisk           = "high_risk_scenario"
	KindUnprepared         = "unprepared_scenario"
)

// Finding is one item that needs attention.
type Finding struct {
	Kind   string     `json:"kind"`
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Detail string     `json:"detail"`
	Tag    engine.Tag `json:"tag"`
}

// Report summarizes a review run.
type Report struct {
	GeneratedAt time.Time      `json:"generated_at"`
	Findings    []Finding      `json:"findings"`
	Counts      map[string]int `json:"counts"`
}

// Count returns how many findings of kind the report holds.
func (r *Report) Count(kind string) int { return r.Counts[kind] }

// Source supplies the dataset to review.
type Source interface {
	Snapshot() models.Dataset
}

// Options sets the look-ahead windows in days.
type Options struct {
	DueSoonDays  int
	ExpiringDays int
}

// Manager runs review sweeps.
type Manager struct {
	source Source
	opts   Options
	logger *slog.Logger
}

// NewManager creates a review manager. Zero windows use the engine defaults.
func NewManager(src Source, opts Options, logger *slog.Logger) *Manager {
	if opts.DueSoonDays <= 0 {
		opts.DueSoonDays = engine.DueSoonDays
	}
	if opts.ExpiringDays <= 0 {
		opts.ExpiringDays = engine.ExpiringWithinDays
	}
	return &Manager{
		source: src,
		opts:   opts,
		logger: logger,
	}
}

// Run executes every check against a fresh snapshot at now.
func (m *Manager) Run(now time.Time) *Report {
	ds := m.source.Snapshot()
	report := &Report{GeneratedAt: now, Findings: []Finding{}, Counts: map[string]int{}}
	add := func(f Finding) {
		report.Findings = append(report.Findings, f)
		report.Counts[f.Kind]++
		metrics.ReviewFindings.WithLabelValues(f.Kind).Inc()
	}

	m.reviewRemediations(&ds, now, add)
	m.reviewPlans(&ds, now, add)
	m.reviewSteps(&ds, now, add)
	m.reviewInventory(&ds, now, add)
	m.reviewScenarios(&ds, now, add)

	metrics.ReviewRuns.Inc()
	m.logger.Info("review complete", "findings", len(report.Findings))
	return report
}

func overdue(d *models.Date, status models.Status, now time.Time) bool {
	return engine.PastDue(d, now) && status != models.StatusCompleted
}

func (m *Manager) dueSoon(d *models.Date, status models.Status, now time.Time) bool {
	return status != models.StatusCompleted && engine.DueWithin(d, now, m.opts.DueSoonDays)
}

func (m *Manager) reviewRemediations(ds *models.Dataset, now time.Time, add func(Finding)) {
	for i := range ds.Remediations {
		r := &ds.Remediations[i]
		switch {
		case engine.IsOverdue(r, now):
			m.logger.Debug("overdue remediation", "id", r.ID, "due", r.DueDate.String())
			add(Finding{Kind: KindOverdueRemediation, ID: r.ID, Name: r.Name, Detail: "due " + r.DueDate.String(), Tag: engine.TagError})
		case m.dueSoon(r.DueDate, r.Status, now):
			add(Finding{Kind: KindDueSoonRemediation, ID: r.ID, Name: r.Name, Detail: "due " + r.DueDate.String(), Tag: engine.TagWarning})
		}
	}
}

// reviewPlans flags plans past their due date that still have unfinished
// steps.
func (m *Manager) reviewPlans(ds *models.Dataset, now time.Time, add func(Finding)) {
	for i := range ds.Plans {
		p := &ds.Plans[i]
		if !engine.PastDue(p.DueDate, now) {
			continue
		}
		steps := engine.StepsForPlan(ds, p.ID)
		done := 0
		for _, st := range steps {
			if st.Status == models.StatusCompleted {
				done++
			}
		}
		if len(steps) > 0 && done == len(steps) {
			continue
		}
		add(Finding{
			Kind:   KindOverduePlan,
			ID:     p.ID,
			Name:   p.Name,
			Detail: fmt.Sprintf("due %s, %d of %d steps done", p.DueDate, done, len(steps)),
			Tag:    engine.TagError,
		})
	}
}

func (m *Manager) reviewSteps(ds *models.Dataset, now time.Time, add func(Finding)) {
	for i := range ds.Steps {
		st := &ds.Steps[i]
		switch {
		case overdue(st.DueDate, st.Status, now):
			add(Finding{Kind: KindOverdueStep, ID: st.ID, Name: st.Name, Detail: stepDetail(ds, st), Tag: engine.TagError})
		case m.dueSoon(st.DueDate, st.Status, now):
			add(Finding{Kind: KindDueSoonStep, ID: st.ID, Name: st.Name, Detail: stepDetail(ds, st), Tag: engine.TagWarning})
		}
	}
}

// stepDetail is only called for steps with a due date.
func stepDetail(ds *models.Dataset, st *models.Step) string {
	return engine.PlanName(ds, st.PlanID) + ", due " + st.DueDate.String()
}

func (m *Manager) reviewInventory(ds *models.Dataset, now time.Time, add func(Finding)) {
	for i := range ds.Inventory {
		item := &ds.Inventory[i]
		if stock := engine.ItemStock(item); stock.Label == engine.StockLow {
			add(Finding{
				Kind:   KindLowStock,
				ID:     item.ID,
				Name:   item.Name,
				Detail: fmt.Sprintf("%g on hand, minimum %g", item.Quantity, item.MinimumStock),
				Tag:    stock.Tag,
			})
		}
		if !models.IsSet(item.ExpirationDate) {
			continue
		}
		days := engine.DaysUntil(*item.ExpirationDate, now)
		switch {
		case days < 0:
			add(Finding{Kind: KindExpired, ID: item.ID, Name: item.Name, Detail: "expired " + item.ExpirationDate.String(), Tag: engine.TagError})
		case days <= float64(m.opts.ExpiringDays):
			add(Finding{Kind: KindExpiring, ID: item.ID, Name: item.Name, Detail: "expires " + item.ExpirationDate.String(), Tag: engine.TagWarning})
		}
	}
}

// reviewScenarios flags high-risk scenarios and scenarios whose plan steps
// are less than half done or missing.
func (m *Manager) reviewScenarios(ds *models.Dataset, now time.Time, add func(Finding)) {
	for _, row := range engine.ScenarioRows(ds, now) {
		sc := row.Scenario
		if row.RiskScore > engine.HighRiskThreshold {
			add(Finding{
				Kind:   KindHighRisk,
				ID:     sc.ID,
				Name:   sc.Name,
				Detail: fmt.Sprintf("risk score %.1f", row.RiskScore),
				Tag:    row.RiskTier.Tag,
			})
		}
		switch row.Preparedness.Level {
		case engine.LevelNeedsAttention, engine.LevelNoSteps, engine.LevelNoPlans:
			add(Finding{
				Kind:   KindUnprepared,
				ID:     sc.ID,
				Name:   sc.Name,
				Detail: fmt.Sprintf("%s (%d%%)", row.Preparedness.Level, row.Preparedness.Percentage),
				Tag:    row.Preparedness.Tag,
			})
		}
	}
}
