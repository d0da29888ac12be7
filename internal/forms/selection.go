package forms

import "slices"

// NoParticipantsHint is shown on the disabled submit button.
const NoParticipantsHint = "Please select at least one participant"

// ParticipantSelection tracks the participant checkboxes of the expense form.
// The submit button is enabled only while at least one box is checked.
type ParticipantSelection struct {
	candidates []int64
	selected   map[int64]bool
}

// NewParticipantSelection starts with every candidate unchecked.
func NewParticipantSelection(candidates []int64) *ParticipantSelection {
	return &ParticipantSelection{
		candidates: slices.Clone(candidates),
		selected:   make(map[int64]bool, len(candidates)),
	}
}

// Toggle flips one checkbox. Unknown ids are ignored.
func (s *ParticipantSelection) Toggle(userID int64) {
	if !slices.Contains(s.candidates, userID) {
		return
	}
	s.selected[userID] = !s.selected[userID]
}

// SelectAll mirrors the "select all" checkbox onto every candidate.
func (s *ParticipantSelection) SelectAll(checked bool) {
	for _, id := range s.candidates {
		s.selected[id] = checked
	}
}

// Selected returns the checked ids in candidate order.
func (s *ParticipantSelection) Selected() []int64 {
	var ids []int64
	for _, id := range s.candidates {
		if s.selected[id] {
			ids = append(ids, id)
		}
	}
	return ids
}

// SubmitState reports whether submit is enabled and, when it is not, the hint
// to show.
func (s *ParticipantSelection) SubmitState() (enabled bool, hint string) {
	if len(s.Selected()) == 0 {
		return false, NoParticipantsHint
	}
	return true, ""
}
