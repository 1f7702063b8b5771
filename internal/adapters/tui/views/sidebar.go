package views

import (
	"fmt"
	"strings"

	"datacat/internal/adapters/tui/styles"
	"datacat/internal/domain"
)

// sidebarRow is one visible line of the category tree
type sidebarRow struct {
	node  *domain.CategoryNode
	depth int
}

// SidebarModel shows the category tree with expand/collapse. Expansion
// state is kept per node and reset when the tree is replaced.
type SidebarModel struct {
	tree     domain.CategoryTree
	expanded map[*domain.CategoryNode]bool
	rows     []sidebarRow
	cursor   int
	offset   int
	height   int
	width    int
}

// NewSidebarModel creates an empty sidebar
func NewSidebarModel() *SidebarModel {
	return &SidebarModel{
		expanded: make(map[*domain.CategoryNode]bool),
		width:    32,
	}
}

// SetTree replaces the tree, collapsing everything.
func (m *SidebarModel) SetTree(tree domain.CategoryTree) {
	m.tree = tree
	m.expanded = make(map[*domain.CategoryNode]bool)
	m.cursor = 0
	m.offset = 0
	m.refreshRows()
}

// SetSize sets the sidebar's width and visible line count.
func (m *SidebarModel) SetSize(width, height int) {
	if width > 0 {
		m.width = width
	}
	m.height = height
	m.scrollToCursor()
}

// Count returns the number of top-level categories.
func (m *SidebarModel) Count() int {
	return m.tree.Count()
}

// Selected returns the node under the cursor.
func (m *SidebarModel) Selected() *domain.CategoryNode {
	if m.cursor >= 0 && m.cursor < len(m.rows) {
		return m.rows[m.cursor].node
	}
	return nil
}

// CursorUp moves the cursor up
func (m *SidebarModel) CursorUp() {
	if m.cursor > 0 {
		m.cursor--
		m.scrollToCursor()
	}
}

// CursorDown moves the cursor down
func (m *SidebarModel) CursorDown() {
	if m.cursor < len(m.rows)-1 {
		m.cursor++
		m.scrollToCursor()
	}
}

// Expand opens the selected node.
func (m *SidebarModel) Expand() {
	if n := m.Selected(); n != nil && !n.IsLeaf() {
		m.expanded[n] = true
		m.refreshRows()
	}
}

// Collapse closes the selected node, or moves to its parent when it is
// already closed.
func (m *SidebarModel) Collapse() {
	n := m.Selected()
	if n == nil {
		return
	}
	if m.expanded[n] {
		delete(m.expanded, n)
		m.refreshRows()
		return
	}

	depth := m.rows[m.cursor].depth
	for i := m.cursor - 1; i >= 0; i-- {
		if m.rows[i].depth < depth {
			m.cursor = i
			m.scrollToCursor()
			return
		}
	}
}

// Toggle flips the selected node.
func (m *SidebarModel) Toggle() {
	if n := m.Selected(); n != nil && m.expanded[n] {
		m.Collapse()
		return
	}
	m.Expand()
}

// refreshRows lists the visible nodes: roots plus children of expanded nodes.
func (m *SidebarModel) refreshRows() {
	m.rows = m.rows[:0]
	m.tree.Walk(func(n *domain.CategoryNode, depth int) bool {
		m.rows = append(m.rows, sidebarRow{node: n, depth: depth})
		return m.expanded[n]
	})

	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.scrollToCursor()
}

func (m *SidebarModel) scrollToCursor() {
	if m.height <= 0 {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
}

// View renders the sidebar. focused highlights the cursor row.
func (m *SidebarModel) View(focused, loading bool) string {
	var b strings.Builder

	b.WriteString(styles.InputLabel.Render(fmt.Sprintf("Categories (%d)", m.Count())))
	b.WriteString("\n\n")

	switch {
	case loading && len(m.rows) == 0:
		b.WriteString(RenderMuted("Loading categories..."))
	case len(m.rows) == 0:
		b.WriteString(RenderMuted("No categories"))
	default:
		end := len(m.rows)
		if m.height > 0 {
			end = min(m.offset+m.height, len(m.rows))
		}
		for i := m.offset; i < end; i++ {
			b.WriteString(m.renderRow(m.rows[i], focused && i == m.cursor))
			if i < end-1 {
				b.WriteString("\n")
			}
		}
	}

	style := styles.Sidebar
	if focused {
		style = styles.SidebarFocused
	}
	return style.Width(m.width).Render(b.String())
}

func (m *SidebarModel) renderRow(row sidebarRow, selected bool) string {
	indent := strings.Repeat("  ", row.depth)

	var prefix string
	switch {
	case row.node.IsLeaf():
		prefix = styles.TreeLeaf
	case m.expanded[row.node]:
		prefix = styles.TreeExpanded
	default:
		prefix = styles.TreeCollapsed
	}

	room := m.width - len([]rune(indent)) - 2
	text := Truncate(row.node.Name, room)
	if !row.node.IsLeaf() {
		text = Truncate(fmt.Sprintf("%s (%d)", row.node.Name, len(row.node.Children)), room)
	}

	switch {
	case selected:
		text = styles.NodeSelected.Render(text)
	case row.node.IsLeaf():
		text = styles.NodeLeaf.Render(text)
	default:
		text = styles.NodeBranch.Render(text)
	}

	return indent + styles.TreeBranch.Render(prefix) + text
}
