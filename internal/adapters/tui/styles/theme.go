package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	Primary   = lipgloss.Color("#2563EB") // Blue
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")
	Surface   = lipgloss.Color("#1F2937")

	// Dataset badge colors
	DatasetDefaultColor = lipgloss.Color("#6366F1") // Indigo
	DatasetIMFColor     = lipgloss.Color("#F97316") // Orange

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	Badge = lipgloss.NewStyle().
		Foreground(White).
		Padding(0, 1).
		Bold(true)

	// Sidebar
	Sidebar = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(Muted).
		PaddingRight(1).
		MarginRight(1)

	SidebarFocused = Sidebar.
			BorderForeground(Primary)

	NodeBranch = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#60A5FA")) // Light blue

	NodeLeaf = lipgloss.NewStyle()

	NodeSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	// Tree indicators
	TreeBranch    = lipgloss.NewStyle().Foreground(Muted)
	TreeExpanded  = "▼ "
	TreeCollapsed = "▶ "
	TreeLeaf      = "• "

	// Table
	TableHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(Muted)

	TableCell = lipgloss.NewStyle()

	TableSelected = lipgloss.NewStyle().
			Background(Surface).
			Foreground(White).
			Bold(true)

	SortActive = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	// Pagination strip
	PageCurrent = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Padding(0, 1)

	PageOther = lipgloss.NewStyle().
			Foreground(Muted).
			Padding(0, 1)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(Surface).
			Foreground(White).
			Padding(0, 1)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Muted).
			Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	ErrorPanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Error).
			Padding(0, 1)

	Searching = lipgloss.NewStyle().
			Foreground(Warning).
			Italic(true)

	Spinner = lipgloss.NewStyle().
		Foreground(Primary)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)

	// Login card
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Primary).
		Padding(1, 3)
)

// DatasetColor returns the badge color for a dataset name
func DatasetColor(name string) lipgloss.Color {
	switch name {
	case "default":
		return DatasetDefaultColor
	case "IMF":
		return DatasetIMFColor
	default:
		return Primary
	}
}
