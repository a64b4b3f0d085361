package api

import (
	"net/http"

	"github.com/ajitpratap0/riskready/internal/engine"
	"github.com/ajitpratap0/riskready/internal/forms"
	"github.com/ajitpratap0/riskready/internal/models"
)

func (s *Server) handleDashboard(w http.ResponseWriter, _ *http.Request) {
	ds := s.state.Snapshot()
	s.writeJSON(w, http.StatusOK, engine.Dashboard(&ds, s.state.Preferences(), s.state.Now()))
}

// handleListScenarios returns every scenario row. The sort defaults to the
// dashboard preference and can be overridden with ?sort= and ?order=.
func (s *Server) handleListScenarios(w http.ResponseWriter, r *http.Request) {
	prefs := s.state.Preferences()
	key, order := prefs.DashboardSortBy, prefs.DashboardSortOrder
	if v := models.SortKey(r.URL.Query().Get("sort")); v != "" {
		if !v.IsValid() {
			s.writeError(w, http.StatusBadRequest, "invalid sort key")
			return
		}
		key = v
	}
	if v := models.SortOrder(r.URL.Query().Get("order")); v != "" {
		if !v.IsValid() {
			s.writeError(w, http.StatusBadRequest, "invalid sort order")
			return
		}
		order = v
	}
	ds := s.state.Snapshot()
	rows := engine.SortScenarios(engine.ScenarioRows(&ds, s.state.Now()), key, order)
	s.writeJSON(w, http.StatusOK, rows)
}

func (s *Server) handleGetScenario(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	ds := s.state.Snapshot()
	sc, ok := ds.ScenarioByID(id)
	if !ok {
		s.notFound(w, "scenario", id)
		return
	}
	s.writeJSON(w, http.StatusOK, sc)
}

func (s *Server) handleCreateScenario(w http.ResponseWriter, r *http.Request) {
	var f forms.Scenario
	if !s.decode(w, r, &f) {
		return
	}
	sc, err := s.state.CreateScenario(r.Context(), f.Model(""))
	if err != nil {
		s.fail(w, "create scenario", err)
		return
	}
	s.writeJSON(w, http.StatusCreated, sc)
}

func (s *Server) handleUpdateScenario(w http.ResponseWriter, r *http.Request) {
	var f forms.Scenario
	if !s.decode(w, r, &f) {
		return
	}
	sc, err := s.state.UpdateScenario(r.Context(), f.Model(r.PathValue("id")))
	if err != nil {
		s.fail(w, "update scenario", err)
		return
	}
	s.writeJSON(w, http.StatusOK, sc)
}

func (s *Server) handleDeleteScenario(w http.ResponseWriter, r *http.Request) {
	if err := s.state.DeleteScenario(r.Context(), r.PathValue("id")); err != nil {
		s.fail(w, "delete scenario", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	ds := s.state.Snapshot()
	a, ok := engine.ScenarioAnalysis(&ds, id, s.state.Now())
	if !ok {
		s.notFound(w, "scenario", id)
		return
	}
	s.writeJSON(w, http.StatusOK, a)
}

func (s *Server) handleRisk(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	ds := s.state.Snapshot()
	sc, ok := ds.ScenarioByID(id)
	if !ok {
		s.notFound(w, "scenario", id)
		return
	}
	s.writeJSON(w, http.StatusOK, engine.ExplainRisk(&ds, &sc, s.state.Now()))
}

func (s *Server) handlePreparedness(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	strategy, err := engine.ParseStrategy(r.URL.Query().Get("strategy"))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ds := s.state.Snapshot()
	if _, ok := ds.ScenarioByID(id); !ok {
		s.notFound(w, "scenario", id)
		return
	}
	s.writeJSON(w, http.StatusOK, engine.Preparedness(&ds, id, strategy))
}
