// internal/app/navctl/manager.go
package navctl

import (
	"fmt"

	"github.com/llehouerou/flicks/internal/catalog"
	"github.com/llehouerou/flicks/internal/ui/headerbar"
)

// Row is one carousel of the browse grid.
type Row struct {
	Name   string
	Titles []*catalog.Title
}

// Manager manages the view mode, the active tab and the browse cursor.
type Manager struct {
	viewMode ViewMode
	tab      headerbar.Tab
	query    string

	rows    []Row
	row     int
	cards   []int // cursor card per row
	rowTop  int   // first visible row
	offsets []int // first visible card per row
}

// New creates a new Manager with default state.
func New() *Manager {
	return &Manager{viewMode: ViewBrowse, tab: headerbar.TabHome}
}

// --- View Mode ---

// ViewMode returns the current view mode.
func (n *Manager) ViewMode() ViewMode {
	return n.viewMode
}

// SetViewMode changes the view mode.
func (n *Manager) SetViewMode(mode ViewMode) {
	n.viewMode = mode
}

// --- Tabs and search ---

// Tab returns the active tab.
func (n *Manager) Tab() headerbar.Tab {
	return n.tab
}

// SetTab switches tabs. It clears the search query; call Rebuild after.
func (n *Manager) SetTab(t headerbar.Tab) {
	n.tab = t
	n.query = ""
	n.reset()
}

// Query returns the active search query.
func (n *Manager) Query() string {
	return n.query
}

// SetQuery filters the grid by query; call Rebuild after.
func (n *Manager) SetQuery(q string) {
	n.query = q
	n.reset()
}

func (n *Manager) reset() {
	n.rows, n.cards, n.offsets = nil, nil, nil
	n.row, n.rowTop = 0, 0
}

// ShowsHero reports whether the current grid has a hero banner above it.
func (n *Manager) ShowsHero() bool {
	return n.tab == headerbar.TabHome && n.query == ""
}

// --- Rows ---

// Rebuild recomputes the rows for the current tab and query. myList holds
// title ids in the order they were added.
func (n *Manager) Rebuild(cat *catalog.Catalog, myList []string) {
	rows := buildRows(cat, n.tab, n.query, myList)
	if len(rows) != len(n.rows) {
		n.cards = make([]int, len(rows))
		n.offsets = make([]int, len(rows))
	}
	n.rows = rows
	for i, r := range rows {
		last := max(len(r.Titles)-1, 0)
		n.cards[i] = min(n.cards[i], last)
		n.offsets[i] = min(n.offsets[i], n.cards[i])
	}
	n.row = min(n.row, max(len(n.rows)-1, 0))
	n.rowTop = min(n.rowTop, n.row)
}

func buildRows(cat *catalog.Catalog, tab headerbar.Tab, query string, myList []string) []Row {
	if cat == nil {
		return nil
	}
	if query != "" {
		return []Row{{Name: fmt.Sprintf("Results for %q", query), Titles: cat.Search(query)}}
	}

	if tab == headerbar.TabMyList {
		var titles []*catalog.Title
		for _, id := range myList {
			if t, ok := cat.Title(id); ok {
				titles = append(titles, t)
			}
		}
		return []Row{{Name: "My List", Titles: titles}}
	}

	var rows []Row
	for i, r := range cat.Rows {
		titles := cat.RowTitles(i)
		switch tab {
		case headerbar.TabSeries:
			titles = filterKind(titles, catalog.KindSeries)
		case headerbar.TabFilms:
			titles = filterKind(titles, catalog.KindMovie)
		case headerbar.TabHome, headerbar.TabMyList:
		}
		if len(titles) > 0 {
			rows = append(rows, Row{Name: r.Name, Titles: titles})
		}
	}
	return rows
}

func filterKind(titles []*catalog.Title, kind catalog.Kind) []*catalog.Title {
	var out []*catalog.Title
	for _, t := range titles {
		if t.Kind == kind {
			out = append(out, t)
		}
	}
	return out
}

// Rows returns the rows of the grid.
func (n *Manager) Rows() []Row {
	return n.rows
}

// --- Cursor ---

// Cursor returns the row and card under the cursor.
func (n *Manager) Cursor() (row, card int) {
	if len(n.rows) == 0 {
		return 0, 0
	}
	return n.row, n.cards[n.row]
}

// Selected returns the title under the cursor.
func (n *Manager) Selected() (*catalog.Title, bool) {
	if len(n.rows) == 0 {
		return nil, false
	}
	titles := n.rows[n.row].Titles
	c := n.cards[n.row]
	if c >= len(titles) {
		return nil, false
	}
	return titles[c], true
}

// RowTop returns the first visible row.
func (n *Manager) RowTop() int {
	return n.rowTop
}

// Offset returns the first visible card of row i.
func (n *Manager) Offset(i int) int {
	if i < 0 || i >= len(n.offsets) {
		return 0
	}
	return n.offsets[i]
}

// MoveRow moves the cursor delta rows, keeping it within visible rows.
func (n *Manager) MoveRow(delta, visible int) {
	if len(n.rows) == 0 {
		return
	}
	n.row = min(max(n.row+delta, 0), len(n.rows)-1)
	n.scrollRows(visible)
}

// MoveCard moves the cursor delta cards along the current row.
func (n *Manager) MoveCard(delta, perRow int) {
	if len(n.rows) == 0 {
		return
	}
	count := len(n.rows[n.row].Titles)
	if count == 0 {
		return
	}
	n.cards[n.row] = min(max(n.cards[n.row]+delta, 0), count-1)
	n.scrollCards(n.row, perRow)
}

// SelectVisible moves the cursor to a visible slot, as returned by a mouse
// hit test. It reports false when the slot holds no title.
func (n *Manager) SelectVisible(row, card int) bool {
	r := n.rowTop + row
	if r < 0 || r >= len(n.rows) {
		return false
	}
	c := n.offsets[r] + card
	if c < 0 || c >= len(n.rows[r].Titles) {
		return false
	}
	n.row = r
	n.cards[r] = c
	return true
}

func (n *Manager) scrollRows(visible int) {
	visible = max(visible, 1)
	if n.row < n.rowTop {
		n.rowTop = n.row
	}
	if n.row >= n.rowTop+visible {
		n.rowTop = n.row - visible + 1
	}
}

func (n *Manager) scrollCards(row, perRow int) {
	perRow = max(perRow, 1)
	c := n.cards[row]
	if c < n.offsets[row] {
		n.offsets[row] = c
	}
	if c >= n.offsets[row]+perRow {
		n.offsets[row] = c - perRow + 1
	}
}
