package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/roach88/hyperkey/internal/shortcuts"
)

// ShortcutsOptions holds flags for the shortcuts command.
type ShortcutsOptions struct {
	*RootOptions
	Lang   string // keyboard layout language
	Layout bool   // draw the keyboard with the app's keys highlighted
}

// ShortcutsResult is the structured shortcuts listing.
type ShortcutsResult struct {
	Apps   []shortcuts.App       `json:"apps" yaml:"apps"`
	Layout [][]shortcuts.KeyData `json:"layout,omitempty" yaml:"layout,omitempty"`
	Arrows []shortcuts.KeyData   `json:"arrows,omitempty" yaml:"arrows,omitempty"`
}

// NewShortcutsCommand creates the shortcuts command.
func NewShortcutsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ShortcutsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "shortcuts [app]",
		Short: "List the shortcut reference tables",
		Long: fmt.Sprintf(`List the shortcut reference tables.

Without an argument every table is listed. Known apps: %s.

Examples:
  hyperkey shortcuts
  hyperkey shortcuts karabiner --layout
  hyperkey shortcuts wezterm --layout --lang ru
  hyperkey shortcuts --format json`, strings.Join(shortcuts.IDs(), ", ")),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShortcuts(opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Lang, "lang", string(shortcuts.English), "keyboard layout language (en|ru)")
	cmd.Flags().BoolVar(&opts.Layout, "layout", false, "draw the keyboard layout")

	return cmd
}

func runShortcuts(opts *ShortcutsOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd.OutOrStdout(), cmd.ErrOrStderr())

	apps := shortcuts.Data()
	if len(args) == 1 {
		app, ok := shortcuts.Lookup(args[0])
		if !ok {
			return formatter.Fail(ExitCommandError, ErrCodeUnknownApp,
				fmt.Sprintf("unknown app %q (available: %s)", args[0], strings.Join(shortcuts.IDs(), ", ")), nil)
		}
		apps = []shortcuts.App{app}
	}
	lang := shortcuts.ParseLang(opts.Lang)
	if string(lang) != opts.Lang {
		formatter.VerboseLog("Unknown layout %q, using %s", opts.Lang, lang)
	}

	if formatter.Structured() {
		result := ShortcutsResult{Apps: apps}
		if opts.Layout {
			result.Layout = shortcuts.Layout(lang)
			result.Arrows = shortcuts.Arrows()
		}
		return formatter.Success(result)
	}

	var b strings.Builder
	for i, app := range apps {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(renderApp(app))
		if opts.Layout {
			b.WriteString("\n")
			b.WriteString(renderLayout(lang, highlighted(app)))
			b.WriteString("\n")
		}
	}
	fmt.Fprint(formatter.Writer, b.String())
	return nil
}

var (
	appStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	groupStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("62"))
	chordStyle  = lipgloss.NewStyle().Width(24).Foreground(lipgloss.Color("15"))
	actionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))
	leaderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	capStyle       = lipgloss.NewStyle().Align(lipgloss.Center).Foreground(lipgloss.Color("245"))
	activeCapStyle = capStyle.Bold(true).Reverse(true).Foreground(lipgloss.Color("212"))
)

// capWidths maps KeyData.Width classes to cell widths.
var capWidths = map[string]int{
	"backspace": 6,
	"tab":       5,
	"backslash": 5,
	"caps":      6,
	"enter":     7,
	"shift-l":   8,
	"shift-r":   9,
	"ctrl":      5,
	"alt":       4,
	"cmd":       4,
	"space":     20,
}

func renderApp(app shortcuts.App) string {
	var b strings.Builder
	b.WriteString(appStyle.Render(app.Name))
	b.WriteString("\n")
	for _, g := range app.Groups {
		b.WriteString("\n  ")
		b.WriteString(groupStyle.Render(g.Name))
		b.WriteString("\n")
		for _, s := range g.Shortcuts {
			line := chordStyle.Render(strings.Join(s.Keys, " + ")) + " " + actionStyle.Render(s.Action)
			if s.Leader {
				line += " " + leaderStyle.Render("(leader)")
			}
			b.WriteString("    ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// highlighted collects the layout key ids an app's shortcuts use.
func highlighted(app shortcuts.App) map[string]bool {
	ids := map[string]bool{}
	for _, g := range app.Groups {
		for _, s := range g.Shortcuts {
			for _, id := range s.HighlightIDs() {
				ids[id] = true
			}
		}
	}
	return ids
}

func renderLayout(lang shortcuts.Lang, active map[string]bool) string {
	renderCap := func(k shortcuts.KeyData) string {
		width, ok := capWidths[k.Width]
		if !ok {
			width = 3
		}
		style := capStyle
		if active[shortcuts.KeyID(k)] {
			style = activeCapStyle
		}
		return style.Width(width).Render(k.Key)
	}

	var rows []string
	for _, row := range shortcuts.Layout(lang) {
		caps := make([]string, len(row))
		for i, k := range row {
			caps[i] = renderCap(k)
		}
		rows = append(rows, strings.Join(caps, " "))
	}

	arrows := make([]string, 0, len(shortcuts.Arrows()))
	for _, k := range shortcuts.Arrows() {
		arrows = append(arrows, renderCap(k))
	}
	rows = append(rows, strings.Join(arrows, " "))

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
