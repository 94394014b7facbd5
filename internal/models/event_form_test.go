package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventFormStartsOnNone(t *testing.T) {
	form := NewEventForm()

	assert.Equal(t, CategoryNone, form.Category)
	assert.Equal(t, CategorySelected, form.State())
	assert.Equal(t, "category_selected", form.State().String())
	assert.False(t, form.CustomVisible())
}

func TestEventFormCustomFieldFollowsSelection(t *testing.T) {
	form := NewEventForm()

	assert.Equal(t, CustomTextVisible, form.Select(CategoryOther))
	assert.True(t, form.CustomVisible())
	assert.Equal(t, "custom_text_visible", form.State().String())

	assert.Equal(t, CategorySelected, form.Select("Exam"))
	assert.False(t, form.CustomVisible())

	form.Select("")
	assert.Equal(t, CategoryNone, form.Category)
}

func TestEventFormResolve(t *testing.T) {
	tests := []struct {
		name      string
		category  string
		custom    string
		wantLabel string
		wantOK    bool
	}{
		{"category verbatim", "Meeting", "", "Meeting", true},
		{"category ignores hidden text", "D-Day", "ignored", "D-Day", true},
		{"other uses trimmed text", CategoryOther, "  Dentist  ", "Dentist", true},
		{"blank other records None", CategoryOther, "   ", CategoryNone, true},
		{"none with blank text is discarded", CategoryNone, "", "", false},
		{"none with whitespace is discarded", CategoryNone, " \t ", "", false},
		{"none with leftover text records None", CategoryNone, "left over", CategoryNone, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := NewEventForm()
			form.Select(tt.category)
			form.SetCustomText(tt.custom)

			label, ok := form.Resolve()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantLabel, label)
		})
	}
}

func TestCategoriesOrder(t *testing.T) {
	assert.Equal(t, []string{"Meeting", "Anniversary", "Birthday", "Exam", "D-Day", "Holiday", "Other"}, Categories)
	assert.NotContains(t, Categories, CategoryNone)
}
