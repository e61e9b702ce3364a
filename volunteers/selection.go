package volunteers

import "github.com/auriaahmad/civil-defence/db"

// Selection is the set of volunteer ids marked for a bulk operation.
// Toggle flips individual ids; ToggleAll replaces the whole set with the
// current filtered view.
type Selection map[string]struct{}

// NewSelection returns an empty selection.
func NewSelection() Selection {
	return Selection{}
}

// Toggle flips the membership of a single id.
func (s Selection) Toggle(id string) {
	if _, ok := s[id]; ok {
		delete(s, id)
		return
	}
	s[id] = struct{}{}
}

// Has reports whether id is selected.
func (s Selection) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of selected ids.
func (s Selection) Len() int {
	return len(s)
}

// IDs returns the selected ids in no particular order.
func (s Selection) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	return ids
}

// AllSelected reports whether every volunteer in view is selected. An
// empty view is never fully selected.
func (s Selection) AllSelected(view []*db.Volunteer) bool {
	if len(view) == 0 {
		return false
	}
	for _, v := range view {
		if !s.Has(v.ID.Hex()) {
			return false
		}
	}
	return true
}

// equalsView reports whether the selection is exactly the view's id set.
func (s Selection) equalsView(view []*db.Volunteer) bool {
	if len(s) != len(view) {
		return false
	}
	for _, v := range view {
		if !s.Has(v.ID.Hex()) {
			return false
		}
	}
	return true
}

// ToggleAll replaces the selection with exactly the view's id set,
// dropping any ids not in view. When the selection already equals the
// view's id set it is cleared instead, so applying it twice on the same
// view empties the selection.
func (s Selection) ToggleAll(view []*db.Volunteer) {
	wasEqual := s.equalsView(view)
	for id := range s {
		delete(s, id)
	}
	if wasEqual {
		return
	}
	for _, v := range view {
		s[v.ID.Hex()] = struct{}{}
	}
}

// Subset returns the volunteers from source whose ids are selected,
// preserving source order. With an empty selection it returns source
// unchanged, so an export without an explicit selection covers the whole
// view.
func (s Selection) Subset(source []*db.Volunteer) []*db.Volunteer {
	if len(s) == 0 {
		return source
	}
	subset := make([]*db.Volunteer, 0, len(s))
	for _, v := range source {
		if s.Has(v.ID.Hex()) {
			subset = append(subset, v)
		}
	}
	return subset
}
