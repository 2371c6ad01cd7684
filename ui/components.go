package ui

import (
	"strings"
)

// Component represents a reusable UI component
type Component interface {
	Render() string
}

// HeaderComponent renders styled section headers
type HeaderComponent struct {
	Text   string
	Note   string
	Margin bool
}

// NewHeader creates a new header component
func NewHeader(text string) *HeaderComponent {
	return &HeaderComponent{Text: text}
}

// WithNote adds a muted note after the header text
func (h *HeaderComponent) WithNote(note string) *HeaderComponent {
	h.Note = note
	return h
}

// WithMargin adds a blank line above the header
func (h *HeaderComponent) WithMargin() *HeaderComponent {
	h.Margin = true
	return h
}

// Render outputs the styled header
func (h *HeaderComponent) Render() string {
	text := Header.Render(h.Text)
	if h.Note != "" {
		text += " " + Muted.Render("("+h.Note+")")
	}
	if h.Margin {
		text = "\n" + text
	}
	return text
}

// LabelValueComponent renders label: value pairs
type LabelValueComponent struct {
	Label  string
	Value  string
	Indent int
}

// NewLabelValue creates a new label-value component
func NewLabelValue(label, value string) *LabelValueComponent {
	return &LabelValueComponent{Label: label, Value: value}
}

// WithIndent adds left indentation
func (lv *LabelValueComponent) WithIndent(spaces int) *LabelValueComponent {
	lv.Indent = spaces
	return lv
}

// Render outputs the styled label-value pair
func (lv *LabelValueComponent) Render() string {
	result := Label.Render(lv.Label) + " " + Value.Render(lv.Value)
	if lv.Indent > 0 {
		result = strings.Repeat(" ", lv.Indent) + result
	}
	return result
}
