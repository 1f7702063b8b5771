package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"datacat/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToCatalogueMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("Data Catalogue Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Table"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move row selection"))
	b.WriteString(helpLine("h / l / ← / →", "Previous / next page"))
	b.WriteString(helpLine("g / G", "First / last page"))
	b.WriteString(helpLine("1 … 7", "Sort by title, category, sub category,"))
	b.WriteString(helpLine("", "frequency, unit, source, region"))
	b.WriteString(helpLine("", "(press again: descending, then unsorted)"))
	b.WriteString(helpLine("y", "Copy selected id to clipboard"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Search"))
	b.WriteString("\n")
	b.WriteString(helpLine("/", "Focus search"))
	b.WriteString(helpLine("esc / enter", "Back to table"))
	b.WriteString(styles.MutedText.Render("  Matches title, category, sub category, source, region and id."))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Categories"))
	b.WriteString("\n")
	b.WriteString(helpLine("tab", "Switch between table and sidebar"))
	b.WriteString(helpLine("enter / l / h", "Expand / collapse"))
	b.WriteString(helpLine("s", "Show / hide sidebar"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("d", "Switch dataset (Default / IMF)"))
	b.WriteString(helpLine("r", "Reload current dataset"))
	b.WriteString(helpLine("L", "Log out"))
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(PadRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}
