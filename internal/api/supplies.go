package api

import (
	"net/http"
	"strconv"

	"github.com/ajitpratap0/riskready/internal/engine"
	"github.com/ajitpratap0/riskready/internal/forms"
)

// --- inventory ---

// handleListInventory lists inventory rows, filtered by ?q= when given.
func (s *Server) handleListInventory(w http.ResponseWriter, r *http.Request) {
	ds := s.state.Snapshot()
	items := engine.SearchInventory(ds.Inventory, r.URL.Query().Get("q"))
	s.writeJSON(w, http.StatusOK, engine.InventoryRows(items, s.state.Now()))
}

func (s *Server) handleInventorySummary(w http.ResponseWriter, _ *http.Request) {
	ds := s.state.Snapshot()
	s.writeJSON(w, http.StatusOK, engine.InventorySummary(ds.Inventory, s.state.Now()))
}

func (s *Server) handleCreateInventory(w http.ResponseWriter, r *http.Request) {
	var f forms.InventoryItem
	if !s.decode(w, r, &f) {
		return
	}
	item, err := s.state.CreateInventoryItem(r.Context(), f.Model(""))
	if err != nil {
		s.fail(w, "create inventory item", err)
		return
	}
	s.writeJSON(w, http.StatusCreated, item)
}

func (s *Server) handleUpdateInventory(w http.ResponseWriter, r *http.Request) {
	var f forms.InventoryItem
	if !s.decode(w, r, &f) {
		return
	}
	item, err := s.state.UpdateInventoryItem(r.Context(), f.Model(r.PathValue("id")))
	if err != nil {
		s.fail(w, "update inventory item", err)
		return
	}
	s.writeJSON(w, http.StatusOK, item)
}

func (s *Server) handleDeleteInventory(w http.ResponseWriter, r *http.Request) {
	if err := s.state.DeleteInventoryItem(r.Context(), r.PathValue("id")); err != nil {
		s.fail(w, "delete inventory item", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- contacts ---

// handleListContacts returns every contact, or active contacts grouped by
// category with ?grouped=true.
func (s *Server) handleListContacts(w http.ResponseWriter, r *http.Request) {
	ds := s.state.Snapshot()
	if grouped, _ := strconv.ParseBool(r.URL.Query().Get("grouped")); grouped {
		s.writeJSON(w, http.StatusOK, engine.ContactsByCategory(ds.Contacts))
		return
	}
	s.writeJSON(w, http.StatusOK, ds.Contacts)
}

func (s *Server) handleCreateContact(w http.ResponseWriter, r *http.Request) {
	var f forms.Contact
	if !s.decode(w, r, &f) {
		return
	}
	c, err := s.state.CreateContact(r.Context(), f.Model(""))
	if err != nil {
		s.fail(w, "create contact", err)
		return
	}
	s.writeJSON(w, http.StatusCreated, c)
}

// handleUpdateContact replaces a contact. An omitted isActive keeps the
// current value; setting it soft-deletes or restores the contact.
func (s *Server) handleUpdateContact(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var f forms.Contact
	if !s.decode(w, r, &f) {
		return
	}
	c, err := s.state.UpdateContact(r.Context(), f.Model(id), f.IsActive == nil)
	if err != nil {
		s.fail(w, "update contact", err)
		return
	}
	s.writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleDeleteContact(w http.ResponseWriter, r *http.Request) {
	if err := s.state.DeleteContact(r.Context(), r.PathValue("id")); err != nil {
		s.fail(w, "delete contact", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- categories ---

func (s *Server) handleListCategories(w http.ResponseWriter, _ *http.Request) {
	ds := s.state.Snapshot()
	s.writeJSON(w, http.StatusOK, ds.Categories)
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var f forms.Category
	if !s.decode(w, r, &f) {
		return
	}
	c, err := s.state.CreateCategory(r.Context(), f.Model(""))
	if err != nil {
		s.fail(w, "create category", err)
		return
	}
	s.writeJSON(w, http.StatusCreated, c)
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	var f forms.Category
	if !s.decode(w, r, &f) {
		return
	}
	c, err := s.state.UpdateCategory(r.Context(), f.Model(r.PathValue("id")))
	if err != nil {
		s.fail(w, "update category", err)
		return
	}
	s.writeJSON(w, http.StatusOK, c)
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := s.state.DeleteCategory(r.Context(), r.PathValue("id")); err != nil {
		s.fail(w, "delete category", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleToggleCategory flips a dashboard category. ?field=selected toggles
// the filter; anything else toggles the expanded state.
func (s *Server) handleToggleCategory(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	ds := s.state.Snapshot()
	if _, ok := ds.CategoryByID(id); !ok {
		s.notFound(w, "category", id)
		return
	}
	field := r.URL.Query().Get("field")
	toggle := s.state.ToggleExpanded
	if field == "selected" {
		toggle = s.state.ToggleSelected
	} else {
		field = "expanded"
	}
	on, err := toggle(r.Context(), id)
	if err != nil {
		s.fail(w, "toggle category", err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"id": id, field: on})
}

// --- preferences ---

func (s *Server) handleGetPreferences(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.state.Preferences())
}

func (s *Server) handleSetPreferences(w http.ResponseWriter, r *http.Request) {
	var f forms.Preferences
	if !s.decode(w, r, &f) {
		return
	}
	prefs, err := s.state.SetPreferences(r.Context(), f.Model())
	if err != nil {
		s.fail(w, "update preferences", err)
		return
	}
	s.writeJSON(w, http.StatusOK, prefs)
}
