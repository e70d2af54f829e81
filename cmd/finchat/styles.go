package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/findosh/finchat/internal/models"
	"github.com/findosh/finchat/internal/render"
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	metaStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
)

const wrapWidth = 88

// formatEnvelope renders an answer for the terminal. raw skips markdown
// styling and the metadata line.
func formatEnvelope(env *models.ResponseEnvelope, raw bool) string {
	if raw {
		return env.Response
	}

	var b strings.Builder
	b.WriteString(render.Terminal(env.Response, wrapWidth))
	b.WriteString("\n\n")

	meta := fmt.Sprintf("confidence %.0f%% · %s · %s", env.Confidence*100, env.Source, env.Mode)
	if env.Analysis != nil {
		meta += fmt.Sprintf(" · intent %s", env.Analysis.Intent)
	}
	b.WriteString(metaStyle.Render(meta))
	return b.String()
}

// formatSuggestions lists follow-up questions under a label
func formatSuggestions(suggestions []string) string {
	if len(suggestions) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(labelStyle.Render("Try asking:"))
	for _, s := range suggestions {
		b.WriteString("\n  • ")
		b.WriteString(s)
	}
	return b.String()
}
