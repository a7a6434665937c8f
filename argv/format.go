package argv

import "strings"

// Format is a sink for program metadata. The same registry walk feeds every
// variant: plain-text help, man page, or the resolver itself, whose
// metadata methods are no-ops because parsing produces no output.
type Format interface {
	AddSection(title string)
	AddSubsection(title string)
	AddLine(text string)
	AddListItem(term, description string)
}

// HelpText renders metadata as plain text for terminal display.
type HelpText struct {
	b strings.Builder
}

// NewHelpText creates an empty plain-text sink.
func NewHelpText() *HelpText {
	return &HelpText{}
}

func (h *HelpText) AddSection(title string) {
	if h.b.Len() > 0 {
		h.b.WriteString("\n")
	}
	h.b.WriteString(strings.ToUpper(title) + "\n")
}

func (h *HelpText) AddSubsection(title string) {
	h.b.WriteString("  " + title + "\n")
}

func (h *HelpText) AddLine(text string) {
	h.b.WriteString("    " + text + "\n")
}

func (h *HelpText) AddListItem(term, description string) {
	h.b.WriteString("    " + term + "\n")
	if description != "" {
		h.b.WriteString("          " + description + "\n")
	}
}

// String returns the accumulated help text.
func (h *HelpText) String() string {
	return h.b.String()
}

// ManPage renders metadata as a minimal troff man page.
type ManPage struct {
	b strings.Builder
}

// NewManPage creates a man-page sink with its .TH title line.
func NewManPage(name, version string) *ManPage {
	m := &ManPage{}
	m.b.WriteString(".TH " + strings.ToUpper(name) + " 1")
	if version != "" {
		m.b.WriteString(" \"" + name + " " + version + "\"")
	}
	m.b.WriteString("\n")
	return m
}

func (m *ManPage) AddSection(title string) {
	m.b.WriteString(".SH " + strings.ToUpper(title) + "\n")
}

func (m *ManPage) AddSubsection(title string) {
	m.b.WriteString(".SS " + title + "\n")
}

func (m *ManPage) AddLine(text string) {
	m.b.WriteString(text + "\n")
}

func (m *ManPage) AddListItem(term, description string) {
	m.b.WriteString(".TP\n\\fB" + term + "\\fP\n" + description + "\n")
}

// String returns the accumulated troff source.
func (m *ManPage) String() string {
	return m.b.String()
}
