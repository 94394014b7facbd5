package models

import "strings"

const (
	// CategoryNone is the selector's initial value; it is not among Categories.
	CategoryNone  = "None"
	CategoryOther = "Other"
)

// Categories are the selectable event kinds, in display order.
var Categories = []string{"Meeting", "Anniversary", "Birthday", "Exam", "D-Day", "Holiday", CategoryOther}

// FieldState is the visibility sub-state of the event dialog.
type FieldState int

const (
	CategorySelected FieldState = iota
	CustomTextVisible
)

func (s FieldState) String() string {
	if s == CustomTextVisible {
		return "custom_text_visible"
	}
	return "category_selected"
}

// EventForm is the state behind the add-event dialog. The custom text field
// is visible only while Other is selected; text typed into it survives a
// switch to another category, the same as a hidden input keeps its value.
type EventForm struct {
	Category   string
	CustomText string
	state      FieldState
}

// NewEventForm starts on the None placeholder with the custom field hidden
func NewEventForm() *EventForm {
	return &EventForm{
		Category: CategoryNone,
		state:    CategorySelected,
	}
}

// Select records the chosen category and returns the resulting field state.
func (f *EventForm) Select(category string) FieldState {
	if category == "" {
		category = CategoryNone
	}
	f.Category = category

	if category == CategoryOther {
		f.state = CustomTextVisible
	} else {
		f.state = CategorySelected
	}
	return f.state
}

func (f *EventForm) SetCustomText(text string) {
	f.CustomText = text
}

// State returns the current visibility sub-state
func (f *EventForm) State() FieldState {
	return f.state
}

func (f *EventForm) CustomVisible() bool {
	return f.state == CustomTextVisible
}

// Resolve returns the label to record and whether anything should be recorded.
//
// Other with blank text yields the literal label "None" and is recorded.
// None with blank text records nothing. Any other selection is recorded verbatim.
func (f *EventForm) Resolve() (string, bool) {
	custom := strings.TrimSpace(f.CustomText)

	switch {
	case f.Category == CategoryOther:
		if custom != "" {
			return custom, true
		}
		// TODO: confirm with product whether blank Other should be discarded like None.
		return CategoryNone, true
	case f.Category == CategoryNone && custom == "":
		return "", false
	default:
		return f.Category, true
	}
}
