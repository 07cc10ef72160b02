// Package directory keeps the ordered set of tracked cities and its persisted form.
package directory

import (
	"slices"

	"github.com/Nazarious-ucu/weather-dashboard/internal/models"
)

// State is the ordered city list plus an optional selection.
// Selected, when set, always names a member of Cities. Methods never mutate the receiver.
type State struct {
	Cities   []models.CityEntry `json:"cities"`
	Selected *models.CityEntry  `json:"selected"`
}

// NewState builds a State from names, dropping repeated names and keeping the first occurrence.
func NewState(names []string) State {
	s := State{Cities: make([]models.CityEntry, 0, len(names))}
	for _, n := range names {
		if s.Contains(n) {
			continue
		}
		s.Cities = append(s.Cities, models.CityEntry{Name: n})
	}
	return s
}

func (s State) Names() []string {
	names := make([]string, len(s.Cities))
	for i, c := range s.Cities {
		names[i] = c.Name
	}
	return names
}

func (s State) Contains(name string) bool {
	return s.indexOf(name) >= 0
}

// SelectedName returns the selected city or "" when nothing is selected.
func (s State) SelectedName() string {
	if s.Selected == nil {
		return ""
	}
	return s.Selected.Name
}

func (s State) IsSelected(name string) bool {
	return s.Selected != nil && s.Selected.Name == name
}

// Add appends name unless it is already tracked. changed reports whether the list grew,
// which is when the caller has to persist.
func (s State) Add(name string) (next State, changed bool) {
	if s.Contains(name) {
		return s, false
	}
	next = s.clone()
	next.Cities = append(next.Cities, models.CityEntry{Name: name})
	return next, true
}

// Remove drops name and clears the selection if it pointed at name.
func (s State) Remove(name string) (next State, changed bool) {
	i := s.indexOf(name)
	if i < 0 {
		return s, false
	}
	next = s.clone()
	next.Cities = slices.Delete(next.Cities, i, i+1)
	if next.IsSelected(name) {
		next.Selected = nil
	}
	return next, true
}

// Select marks name as selected. Unknown names leave the state untouched.
func (s State) Select(name string) (next State, changed bool) {
	i := s.indexOf(name)
	if i < 0 || s.IsSelected(name) {
		return s, false
	}
	next = s.clone()
	entry := next.Cities[i]
	next.Selected = &entry
	return next, true
}

func (s State) indexOf(name string) int {
	return slices.IndexFunc(s.Cities, func(c models.CityEntry) bool { return c.Name == name })
}

func (s State) clone() State {
	out := State{Cities: slices.Clone(s.Cities)}
	if s.Selected != nil {
		sel := *s.Selected
		out.Selected = &sel
	}
	return out
}
