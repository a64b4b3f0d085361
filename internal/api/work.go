package api

import (
	"net/http"

	"github.com/ajitpratap0/riskready/internal/engine"
	"github.com/ajitpratap0/riskready/internal/forms"
	"github.com/ajitpratap0/riskready/internal/models"
	"github.com/ajitpratap0/riskready/internal/state"
)

// --- remediations ---

// remediationView is a remediation with its resolved scenario names.
type remediationView struct {
	models.Remediation
	ScenarioNames string     `json:"scenario_names"`
	StatusTag     engine.Tag `json:"status_tag"`
	Overdue       bool       `json:"overdue"`
	DueSoon       bool       `json:"due_soon"`
}

func (s *Server) handleListRemediations(w http.ResponseWriter, r *http.Request) {
	ds := s.state.Snapshot()
	now := s.state.Now()
	scenario := r.URL.Query().Get("scenario")
	out := make([]remediationView, 0, len(ds.Remediations))
	for i := range ds.Remediations {
		rem := &ds.Remediations[i]
		if scenario != "" && !rem.AppliesTo(scenario) {
			continue
		}
		out = append(out, remediationView{
			Remediation:   *rem,
			ScenarioNames: engine.ScenarioNames(&ds, rem.ApplicableScenarios),
			StatusTag:     engine.StatusTag(rem.Status),
			Overdue:       engine.IsOverdue(rem, now),
			DueSoon:       engine.IsDueSoon(rem, now),
		})
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateRemediation(w http.ResponseWriter, r *http.Request) {
	var f forms.Remediation
	if !s.decode(w, r, &f) {
		return
	}
	rem, err := s.state.CreateRemediation(r.Context(), f.Model(""))
	if err != nil {
		s.fail(w, "create remediation", err)
		return
	}
	s.writeJSON(w, http.StatusCreated, rem)
}

// handleUpdateRemediation replaces a remediation. An omitted status keeps
// the current one.
func (s *Server) handleUpdateRemediation(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var f forms.Remediation
	if !s.decode(w, r, &f) {
		return
	}
	rem, err := s.state.UpdateRemediation(r.Context(), f.Model(id))
	if err != nil {
		s.fail(w, "update remediation", err)
		return
	}
	s.writeJSON(w, http.StatusOK, rem)
}

func (s *Server) handleRemediationStatus(w http.ResponseWriter, r *http.Request) {
	var f forms.StatusChange
	if !s.decode(w, r, &f) {
		return
	}
	rem, err := s.state.SetRemediationStatus(r.Context(), r.PathValue("id"), f.Status)
	if err != nil {
		s.fail(w, "update remediation status", err)
		return
	}
	s.writeJSON(w, http.StatusOK, rem)
}

func (s *Server) handleDeleteRemediation(w http.ResponseWriter, r *http.Request) {
	if err := s.state.DeleteRemediation(r.Context(), r.PathValue("id")); err != nil {
		s.fail(w, "delete remediation", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- plans ---

// planSummary is a plan with its owner name and step readiness.
type planSummary struct {
	models.Plan
	ScenarioName string           `json:"scenario_name"`
	Readiness    engine.Readiness `json:"readiness"`
	StepCount    int              `json:"step_count"`
}

// handleListPlans lists plans, optionally only those of ?scenario=.
func (s *Server) handleListPlans(w http.ResponseWriter, r *http.Request) {
	ds := s.state.Snapshot()
	plans := ds.Plans
	if scenario := r.URL.Query().Get("scenario"); scenario != "" {
		plans = engine.PlansForScenario(&ds, scenario)
	}
	out := make([]planSummary, 0, len(plans))
	for i := range plans {
		p := plans[i]
		steps := engine.StepsForPlan(&ds, p.ID)
		out = append(out, planSummary{
			Plan:         p,
			ScenarioName: engine.ScenarioName(&ds, p.ScenarioID),
			Readiness:    engine.PlanReadiness(&ds, p.ID),
			StepCount:    len(steps),
		})
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreatePlan(w http.ResponseWriter, r *http.Request) {
	var f forms.Plan
	if !s.decode(w, r, &f) {
		return
	}
	p, err := s.state.CreatePlan(r.Context(), f.Model(""))
	if err != nil {
		s.fail(w, "create plan", err)
		return
	}
	s.writeJSON(w, http.StatusCreated, p)
}

func (s *Server) handleUpdatePlan(w http.ResponseWriter, r *http.Request) {
	var f forms.Plan
	if !s.decode(w, r, &f) {
		return
	}
	p, err := s.state.UpdatePlan(r.Context(), f.Model(r.PathValue("id")))
	if err != nil {
		s.fail(w, "update plan", err)
		return
	}
	s.writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleDeletePlan(w http.ResponseWriter, r *http.Request) {
	if err := s.state.DeletePlan(r.Context(), r.PathValue("id")); err != nil {
		s.fail(w, "delete plan", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- steps ---

func (s *Server) handleListSteps(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	ds := s.state.Snapshot()
	if _, ok := ds.PlanByID(id); !ok {
		s.notFound(w, "plan", id)
		return
	}
	s.writeJSON(w, http.StatusOK, engine.StepsForPlan(&ds, id))
}

func (s *Server) handleAddStep(w http.ResponseWriter, r *http.Request) {
	var f forms.Step
	if !s.decode(w, r, &f) {
		return
	}
	st, err := s.state.AddStep(r.Context(), r.PathValue("id"), f.Model(""))
	if err != nil {
		s.fail(w, "add step", err)
		return
	}
	s.writeJSON(w, http.StatusCreated, st)
}

// handleUpdateStep replaces a step. An omitted status keeps the current one.
func (s *Server) handleUpdateStep(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var f forms.Step
	if !s.decode(w, r, &f) {
		return
	}
	st, err := s.state.UpdateStep(r.Context(), f.Model(id))
	if err != nil {
		s.fail(w, "update step", err)
		return
	}
	s.writeJSON(w, http.StatusOK, st)
}

func (s *Server) handleStepStatus(w http.ResponseWriter, r *http.Request) {
	var f forms.StatusChange
	if !s.decode(w, r, &f) {
		return
	}
	st, err := s.state.SetStepStatus(r.Context(), r.PathValue("id"), f.Status)
	if err != nil {
		s.fail(w, "update step status", err)
		return
	}
	s.writeJSON(w, http.StatusOK, st)
}

// handleMoveStep moves a step and returns its plan's steps in the new order.
func (s *Server) handleMoveStep(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var f forms.Move
	if !s.decode(w, r, &f) {
		return
	}
	if err := s.state.MoveStep(r.Context(), id, state.Direction(f.Direction)); err != nil {
		s.fail(w, "move step", err)
		return
	}
	ds := s.state.Snapshot()
	st, _ := ds.StepByID(id)
	s.writeJSON(w, http.StatusOK, engine.StepsForPlan(&ds, st.PlanID))
}

func (s *Server) handleDeleteStep(w http.ResponseWriter, r *http.Request) {
	if err := s.state.DeleteStep(r.Context(), r.PathValue("id")); err != nil {
		s.fail(w, "delete step", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
