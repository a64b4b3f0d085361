package main

import (
	"fmt"
	"strings"

	"github.com/ajitpratap0/riskready/internal/engine"
	"github.com/ajitpratap0/riskready/internal/models"
	"github.com/ajitpratap0/riskready/internal/review"
	"github.com/ajitpratap0/riskready/pkg/ux"
)

const descWidth = 48

func badge(p *ux.Printer, tag engine.Tag, text string) string {
	return p.Badge(string(tag), text)
}

func scenarioTable(p *ux.Printer, rows []engine.ScenarioRow) {
	headers := []string{"ID", "SCENARIO", "SEVERITY", "PROBABILITY", "PREPAREDNESS", "RISK"}
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		sc := r.Scenario
		out = append(out, []string{
			sc.ID,
			truncate(sc.Name, descWidth),
			badge(p, engine.SeverityTag(sc.Severity), string(sc.Severity)),
			badge(p, engine.ProbabilityTag(sc.Probability), string(sc.Probability)),
			p.ProgressBar(r.Preparedness.Percentage, 10, string(r.Preparedness.Tag)),
			badge(p, r.RiskTier.Tag, fmt.Sprintf("%.2f %s", r.RiskScore, r.RiskTier.Label)),
		})
	}
	p.Table(headers, out)
}

func renderDashboard(p *ux.Printer, view engine.DashboardView) {
	p.Title("Risk dashboard")
	p.Muted(fmt.Sprintf("view %s, sorted by %s %s", view.ViewMode, view.SortBy, view.SortOrder))
	if view.ViewMode == models.ViewAll {
		scenarioTable(p, view.Rows)
		return
	}
	for _, g := range view.Groups {
		p.Line("")
		p.Title(fmt.Sprintf("%s (%d)", g.Category.Name, len(g.Rows)))
		if !g.Expanded {
			p.Muted("collapsed")
			continue
		}
		scenarioTable(p, g.Rows)
	}
}

func renderAnalysis(p *ux.Printer, a engine.Analysis) {
	sc := a.Scenario
	p.Title(sc.Name)
	if sc.Description != "" {
		p.Muted(sc.Description)
	}
	p.Line("Categories:    %s", strings.Join(a.Categories, ", "))
	p.Line("Severity:      %s", badge(p, engine.SeverityTag(sc.Severity), string(sc.Severity)))
	p.Line("Probability:   %s", badge(p, engine.ProbabilityTag(sc.Probability), string(sc.Probability)))
	p.Line("Remediations:  %s %s", p.ProgressBar(a.Readiness.Percentage, 20, string(a.Readiness.Tag)), a.Readiness.Level)
	p.Line("Plan steps:    %s %s", p.ProgressBar(a.PlanReadiness.Percentage, 20, string(a.PlanReadiness.Tag)), a.PlanReadiness.Level)

	r := a.Risk
	p.Box("Risk "+badge(p, r.Tier.Tag, fmt.Sprintf("%.2f %s", r.Score, r.Tier.Label)), strings.Join([]string{
		fmt.Sprintf("severity %.1f × probability %.1f × velocity %.1f × detectability %.1f", r.SeverityWeight, r.ProbabilityWeight, r.VelocityWeight, r.DetectabilityWeight),
		fmt.Sprintf("season %s × %.1f", r.Season, r.SeasonalMultiplier),
		fmt.Sprintf("overdue %d × %.2f", r.OverdueCount, r.OverdueMultiplier),
		fmt.Sprintf("preparedness %.0f%%", r.PreparednessRatio*100),
	}, "\n"))

	if len(a.UrgentActions) > 0 {
		p.Line("")
		p.Title("Urgent actions")
		for _, row := range a.UrgentActions {
			p.Warning(urgentLine(row))
		}
	}

	p.Line("")
	p.Title("Response plans")
	if len(a.Plans) == 0 {
		p.Muted("no plans")
	}
	for _, pv := range a.Plans {
		p.Line("%d. %s  %s", pv.Plan.Order, pv.Plan.Name, badge(p, pv.Readiness.Tag, pv.Readiness.Level))
		for _, st := range pv.Steps {
			p.Line("   %d) %s  %s", st.Order, st.Name, badge(p, engine.StatusTag(st.Status), string(st.Status)))
		}
	}

	p.Line("")
	p.Title("Remediations")
	rows := make([][]string, 0, len(a.Remediations))
	for _, row := range a.Remediations {
		rows = append(rows, []string{
			row.Remediation.ID,
			truncate(row.Remediation.Name, descWidth),
			badge(p, row.StatusTag, string(row.Remediation.Status)),
			dueText(row.Remediation.DueDate),
		})
	}
	p.Table([]string{"ID", "REMEDIATION", "STATUS", "DUE"}, rows)

	if len(a.RequiredItems) > 0 {
		p.Line("")
		p.Title("Required inventory")
		for _, it := range a.RequiredItems {
			p.Line("%s %s  %s", ux.IconBullet, it.Name, badge(p, it.Stock.Tag, it.Stock.Label))
		}
	}
}

func urgentLine(row engine.RemediationRow) string {
	when := "due soon"
	if row.Overdue {
		when = "overdue"
	}
	return fmt.Sprintf("%s (%s, %s)", row.Remediation.Name, when, dueText(row.Remediation.DueDate))
}

func dueText(d *models.Date) string {
	if !models.IsSet(d) {
		return "-"
	}
	return d.String()
}

func renderInventory(p *ux.Printer, rows []engine.InventoryRow, totals engine.InventoryTotals) {
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		it := r.Item
		expiry := dueText(it.ExpirationDate)
		if r.ExpiringSoon {
			expiry = badge(p, engine.TagWarning, expiry)
		}
		out = append(out, []string{
			it.ID,
			truncate(it.Name, 32),
			it.Category,
			fmt.Sprintf("%g/%g", it.Quantity, it.MinimumStock),
			badge(p, r.Stock.Tag, r.Stock.Label),
			expiry,
			fmt.Sprintf("%.2f", r.TotalValue),
		})
	}
	p.Table([]string{"ID", "ITEM", "CATEGORY", "QTY/MIN", "STOCK", "EXPIRES", "VALUE"}, out)
	p.Line("")
	p.Line("%d items: %s, %s, %s, %s. Total value %.2f",
		totals.Items,
		badge(p, engine.TagError, fmt.Sprintf("%d low", totals.LowStock)),
		badge(p, engine.TagWarning, fmt.Sprintf("%d medium", totals.Medium)),
		badge(p, engine.TagSuccess, fmt.Sprintf("%d good", totals.Good)),
		badge(p, engine.TagWarning, fmt.Sprintf("%d expiring", totals.Expiring)),
		totals.TotalValue)
}

func renderContacts(p *ux.Printer, groups []engine.ContactGroup) {
	if len(groups) == 0 {
		p.Muted("no active contacts")
		return
	}
	for i, g := range groups {
		if i > 0 {
			p.Line("")
		}
		p.Title(g.Name)
		rows := make([][]string, 0, len(g.Contacts))
		for _, c := range g.Contacts {
			rows = append(rows, []string{
				c.Name,
				c.Relationship,
				badge(p, engine.ContactPriorityTag(c.Priority), string(c.Priority)),
				c.PhonePrimary,
				c.Email,
			})
		}
		p.Table([]string{"NAME", "RELATIONSHIP", "PRIORITY", "PHONE", "EMAIL"}, rows)
	}
}

func renderReview(p *ux.Printer, report *review.Report) {
	p.Title("Review")
	if len(report.Findings) == 0 {
		p.Success("nothing needs attention")
		return
	}
	rows := make([][]string, 0, len(report.Findings))
	for _, f := range report.Findings {
		rows = append(rows, []string{
			badge(p, f.Tag, f.Kind),
			f.ID,
			truncate(f.Name, 40),
			f.Detail,
		})
	}
	p.Table([]string{"KIND", "ID", "NAME", "DETAIL"}, rows)
	p.Line("")
	p.Warning(fmt.Sprintf("%d findings", len(report.Findings)))
}

func renderPreferences(p *ux.Printer, prefs models.Preferences) {
	p.Table([]string{"KEY", "VALUE"}, [][]string{
		{"dark-mode", fmt.Sprint(prefs.DarkMode)},
		{"current-page", prefs.CurrentPage},
		{"sort-by", string(prefs.DashboardSortBy)},
		{"sort-order", string(prefs.DashboardSortOrder)},
		{"view-mode", string(prefs.ViewMode)},
		{"expanded", strings.Join(prefs.ExpandedCategories, ",")},
		{"selected", strings.Join(prefs.SelectedCategories, ",")},
	})
}
