package views

import (
	"fmt"
	"strings"

	"datacat/internal/adapters/tui/styles"
	"datacat/internal/application/query"
	"datacat/internal/domain"
)

// column is one sortable table column bound to a number key
type column struct {
	field  domain.Field
	key    string
	weight int
}

// tableColumns in display order. Region is only shown when the page has one.
var tableColumns = []column{
	{domain.FieldTitle, "1", 30},
	{domain.FieldCat, "2", 14},
	{domain.FieldSubCat, "3", 14},
	{domain.FieldFreq, "4", 10},
	{domain.FieldUnit, "5", 10},
	{domain.FieldSrc, "6", 12},
	{domain.FieldRegion, "7", 10},
}

const (
	columnGap      = "  "
	minColumnWidth = 6
)

// SortFieldForKey maps a number key to its column's field.
func SortFieldForKey(k string) (domain.Field, bool) {
	for _, c := range tableColumns {
		if c.key == k {
			return c.field, true
		}
	}
	return domain.FieldNone, false
}

func visibleColumns(showRegion bool) []column {
	if showRegion {
		return tableColumns
	}
	return tableColumns[:len(tableColumns)-1]
}

// columnWidths splits width across cols by weight.
func columnWidths(cols []column, width int) []int {
	avail := width - len(columnGap)*(len(cols)-1)
	total := 0
	for _, c := range cols {
		total += c.weight
	}

	widths := make([]int, len(cols))
	used := 0
	for i, c := range cols {
		widths[i] = max(minColumnWidth, avail*c.weight/total)
		used += widths[i]
	}
	// Hand any rounding remainder to the title column.
	if rest := avail - used; rest > 0 {
		widths[0] += rest
	}
	return widths
}

func sortIndicator(state query.SortState, f domain.Field) string {
	if state.Field != f {
		return ""
	}
	switch state.Direction {
	case query.Ascending:
		return " ▲"
	case query.Descending:
		return " ▼"
	default:
		return ""
	}
}

// RenderTable renders the page rows with a header. cursor is the selected
// row within the page, or -1 for none.
func RenderTable(snap query.Snapshot, cursor, width int) string {
	cols := visibleColumns(snap.ShowRegion)
	widths := columnWidths(cols, width)

	var b strings.Builder

	header := make([]string, len(cols))
	for i, c := range cols {
		label := fmt.Sprintf("%s %s%s", c.key, c.field.Label(), sortIndicator(snap.Sort, c.field))
		cell := PadRight(Truncate(label, widths[i]), widths[i])
		if snap.Sort.Field == c.field && snap.Sort.Active() {
			cell = styles.SortActive.Render(cell)
		}
		header[i] = cell
	}
	b.WriteString(styles.TableHeader.Render(strings.Join(header, columnGap)))
	b.WriteString("\n")

	for r, rec := range snap.Rows {
		cells := make([]string, len(cols))
		for i, c := range cols {
			v, _ := rec.Field(c.field)
			cells[i] = PadRight(Truncate(v, widths[i]), widths[i])
		}
		line := strings.Join(cells, columnGap)
		if r == cursor {
			line = styles.TableSelected.Render(line)
		} else {
			line = styles.TableCell.Render(line)
		}
		b.WriteString(line)
		if r < len(snap.Rows)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}
