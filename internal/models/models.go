// internal/models/models.go
// Package models holds the typed /api/tags payload and its console rendering.
package models

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/termenv"
)

// Divider separates consecutive model blocks.
const Divider = "---------------------------"

// Lines formats the model and its details, one field per line.
func (m Model) Lines() []string {
	lines := []string{
		fmt.Sprintf("Model Name: %s", m.Name),
		fmt.Sprintf("Model ID: %s", m.Model),
		fmt.Sprintf("Modified At: %s", m.ModifiedAt),
		fmt.Sprintf("Size: %d bytes", m.Size),
		fmt.Sprintf("Digest: %s", m.Digest),
	}
	return append(lines, m.Details.Lines()...)
}

// Lines formats the detail fields; each entry of Families gets its own bullet.
func (d Detail) Lines() []string {
	lines := []string{
		fmt.Sprintf("Parent Model: %s", d.ParentModel),
		fmt.Sprintf("Format: %s", d.Format),
		fmt.Sprintf("Family: %s", d.Family),
	}
	for _, family := range d.Families {
		lines = append(lines, fmt.Sprintf(" - %s", family))
	}
	return append(lines,
		fmt.Sprintf("Parameter Size: %s", d.ParameterSize),
		fmt.Sprintf("Quantization Level: %s", d.QuantizationLevel),
	)
}

// Lines formats every model in order, each block followed by Divider.
func (m Models) Lines() []string {
	var lines []string
	for _, model := range m.Models {
		lines = append(lines, model.Lines()...)
		lines = append(lines, Divider)
	}
	return lines
}

// Summary is a one-line count and total size, e.g. "2 models, 8.1 GiB total".
func (m Models) Summary() string {
	noun := "models"
	if m.Len() == 1 {
		noun = "model"
	}
	return fmt.Sprintf("%d %s, %s total", m.Len(), noun, humanize.IBytes(m.TotalSize()))
}

// Render writes Models.Lines to w. Styling is applied only when w is a
// color-capable terminal.
func Render(w io.Writer, m Models) error {
	renderer := lipgloss.NewRenderer(w)
	nameStyle := renderer.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	bulletStyle := renderer.NewStyle().Foreground(lipgloss.Color("246"))
	dividerStyle := renderer.NewStyle().Faint(true)

	styled := renderer.ColorProfile() != termenv.Ascii

	var b strings.Builder
	blockStart := true
	for _, line := range m.Lines() {
		isDivider := line == Divider
		if styled {
			switch {
			case isDivider:
				line = dividerStyle.Render(line)
			case blockStart:
				line = nameStyle.Render(line)
			case strings.HasPrefix(line, " - "):
				line = bulletStyle.Render(line)
			}
		}
		blockStart = isDivider
		b.WriteString(line)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
