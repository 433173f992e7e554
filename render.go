package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rogue-tools/overrides/lib/overrides"
	"gopkg.in/yaml.v3"
)

const (
	ColorPrimary = lipgloss.Color("#7C3AED")
	ColorMuted   = lipgloss.Color("#6B7280")
	ColorSuccess = lipgloss.Color("#10B981")
	ColorError   = lipgloss.Color("#EF4444")
	ColorWarning = lipgloss.Color("#F59E0B")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorError)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)
)

// renderFieldTable lays out fields as a table with one row per field.
func renderFieldTable(fields []overrides.FieldInfo) string {
	rows := make([][]string, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, []string{
			f.Name,
			string(f.Group),
			string(f.Kind),
			string(f.Phase),
			formatValue(f.Default),
		})
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(SubtitleStyle).
		Headers("FIELD", "GROUP", "KIND", "PHASE", "DEFAULT").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return TitleStyle.Padding(0, 1)
			}
			return cellStyle
		}).
		String()
}

// renderDiff lists the fields of merged that differ from their default.
func renderDiff(merged *overrides.Overrides) string {
	active := merged.Active()
	if len(active) == 0 {
		return SubtitleStyle.Render("no overrides active, production behaviour") + "\n"
	}
	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf("%d overrides active", len(active))) + "\n")
	for _, name := range active {
		value, _ := merged.Value(name)
		info, _ := overrides.Lookup(name)
		fmt.Fprintf(&b, "  %s: %s %s\n",
			WarningStyle.Render(name),
			formatValue(value),
			SubtitleStyle.Render("(default "+formatValue(info.Default)+")"),
		)
	}
	return b.String()
}

// formatValue renders v as single-line YAML.
func formatValue(v any) string {
	var n yaml.Node
	if err := n.Encode(v); err != nil {
		return fmt.Sprint(v)
	}
	flow(&n)
	out, err := yaml.Marshal(&n)
	if err != nil {
		return fmt.Sprint(v)
	}
	return strings.TrimSpace(string(out))
}

func flow(n *yaml.Node) {
	if n.Kind == yaml.MappingNode || n.Kind == yaml.SequenceNode {
		n.Style = yaml.FlowStyle
	}
	for _, c := range n.Content {
		flow(c)
	}
}

func describeError(err error) string {
	var fe *overrides.FieldError
	if errors.As(err, &fe) && fe.Err != nil {
		return WarningStyle.Render(fe.Field) + ": " + fe.Kind.Error() + ": " + fe.Err.Error()
	}
	return err.Error()
}
