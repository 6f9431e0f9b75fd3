package prompt

import "github.com/charmbracelet/lipgloss"

var (
	promptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	feedbackStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("red")).Bold(true)
)

// render applies st to s when styling is enabled. With styling off the text
// passes through untouched, so injected sinks see exactly what callers wrote.
func (p *Prompter) render(st lipgloss.Style, s string) string {
	if !p.styled {
		return s
	}
	return st.Render(s)
}

// decorate formats a message with an optional gray hint, the way the rest of
// the suite's tools present prompts: "Message (hint): ".
func (p *Prompter) decorate(msg, hint string) string {
	out := p.render(promptStyle, msg)
	if hint != "" {
		out += " " + p.render(hintStyle, hint)
	}
	return out + ": "
}
