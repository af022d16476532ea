// Package tui is the interactive terminal front end: a bubbletea program
// that drives a row binder with cursor selection, sorting, filtering and
// contextual actions.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/leapstack-labs/leaptable/internal/source"
	"github.com/leapstack-labs/leaptable/pkg/grid"
)

// ReloadMsg asks the program to re-read the data source. The file watcher
// sends it through Program.Send; the reload key produces it directly.
type ReloadMsg struct{}

type reloadedMsg struct {
	rows []*source.Row
	err  error
}

// Host is the native-selection bridge between the binder and the table
// widget. The binder writes row-order indexes here; the model mirrors them
// onto the table cursor and writes the cursor back on every move.
type Host struct {
	indexes []int
}

// SelectedIndexes returns the currently selected row-order indexes.
func (h *Host) SelectedIndexes() []int {
	return append([]int(nil), h.indexes...)
}

// SetSelectedIndexes replaces the selected row-order indexes.
func (h *Host) SetSelectedIndexes(indexes []int) {
	h.indexes = append(h.indexes[:0], indexes...)
}

// Confirm parks a confirmation request until the operator answers it with
// y or n. It responds exactly once per request.
type Confirm struct {
	prompt  string
	respond func(bool)
}

// Confirm implements the binder's confirmation contract.
func (c *Confirm) Confirm(prompt string, respond func(bool)) {
	c.prompt = prompt
	c.respond = respond
}

func (c *Confirm) pending() bool { return c.respond != nil }

func (c *Confirm) answer(accepted bool) {
	if c.respond == nil {
		return
	}
	respond := c.respond
	c.prompt, c.respond = "", nil
	respond(accepted)
}

// Options configures the program.
type Options struct {
	Title   string
	Binder  *grid.Binder[*source.Row]
	Host    *Host
	Confirm *Confirm
	// Reload re-reads the data source. Nil disables the reload key.
	Reload func() ([]*source.Row, error)
	Logger *slog.Logger
}

// Model is the bubbletea model. It owns the table widget and translates key
// presses into binder operations; the binder owns all row and selection
// state.
type Model struct {
	binder  *grid.Binder[*source.Row]
	host    *Host
	confirm *Confirm
	reload  func() ([]*source.Row, error)
	log     *slog.Logger

	title     string
	tbl       table.Model
	keys      keyMap
	help      help.Model
	filter    textinput.Model
	filtering bool
	status    string
	sortCol   int
	sortState sortState
	width     int
}

type sortState int

const (
	sortNone sortState = iota
	sortDesc
	sortAsc
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Faint(true)
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
)

// New builds the model around an already-configured binder.
func New(opts Options) *Model {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	filter := textinput.New()
	filter.Prompt = "/"
	filter.Placeholder = "filter rows"
	filter.CharLimit = 128

	m := &Model{
		binder:  opts.Binder,
		host:    opts.Host,
		confirm: opts.Confirm,
		reload:  opts.Reload,
		log:     log,
		title:   opts.Title,
		keys:    defaultKeyMap(),
		help:    help.New(),
		filter:  filter,
		sortCol: 0,
	}

	t := table.New(table.WithColumns(m.tableColumns()), table.WithFocused(true), table.WithHeight(12))
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true)
	styles.Selected = styles.Selected.Bold(true)
	t.SetStyles(styles)
	m.tbl = t

	m.syncRows()
	return m
}

// Run starts the program and blocks until it quits. The started callback
// receives the program handle so a watcher can push ReloadMsg into it.
func Run(ctx context.Context, opts Options, started func(*tea.Program)) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	if started != nil {
		started(p)
	}
	_, err := p.Run()
	return err
}

func (m *Model) Init() tea.Cmd { return nil }

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.tbl.SetWidth(msg.Width)
		h := msg.Height - 5
		if h < 3 {
			h = 3
		}
		m.tbl.SetHeight(h)
		return m, nil

	case ReloadMsg:
		return m, m.reloadCmd()

	case reloadedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("reload failed: %v", msg.err)
			m.log.Error("reload failed", "error", msg.err)
			return m, nil
		}
		m.binder.SetContent(msg.rows)
		m.syncRows()
		m.status = fmt.Sprintf("reloaded %d rows", len(msg.rows))
		return m, nil

	case tea.KeyMsg:
		if m.confirm != nil && m.confirm.pending() {
			return m.updateConfirm(msg)
		}
		if m.filtering {
			return m.updateFilter(msg)
		}
		return m.updateBrowse(msg)
	}

	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	return m, cmd
}

func (m *Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.confirm.answer(true)
		m.syncRows()
	case "n", "N", "esc":
		m.confirm.answer(false)
	}
	return m, nil
}

func (m *Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.applyFilter(m.filter.Value())
		m.filtering = false
		return m, nil
	case tea.KeyEsc:
		m.filter.SetValue("")
		m.applyFilter("")
		m.filtering = false
		return m, nil
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	return m, cmd
}

func (m *Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.filter.Focus()
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Sort):
		m.cycleSort()
		return m, nil

	case key.Matches(msg, m.keys.PrevCol):
		if m.sortCol > 0 {
			m.sortCol--
			m.syncRows()
		}
		return m, nil

	case key.Matches(msg, m.keys.NextCol):
		if m.sortCol+1 < len(m.binder.Columns()) {
			m.sortCol++
			m.syncRows()
		}
		return m, nil

	case key.Matches(msg, m.keys.Toggle):
		m.binder.Click(m.tbl.Cursor(), m.binder.Mode() == grid.ModeMultiNative)
		m.syncRows()
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		return m, m.reloadCmd()
	}

	if idx, ok := actionIndex(msg.String()); ok {
		actions := m.binder.Actions()
		if idx < len(actions) {
			m.invokeAction(actions[idx].Label)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	m.cursorMoved()
	return m, cmd
}

// actionIndex maps the digit keys onto the action menu.
func actionIndex(s string) (int, bool) {
	if len(s) != 1 || s[0] < '1' || s[0] > '9' {
		return 0, false
	}
	return int(s[0] - '1'), true
}

func (m *Model) invokeAction(label string) {
	if err := m.binder.Invoke(label, m.tbl.Cursor()); err != nil {
		m.status = fmt.Sprintf("%s: %v", label, err)
		return
	}
	m.syncRows()
	if m.confirm == nil || !m.confirm.pending() {
		m.status = label
	}
}

// cursorMoved publishes the table cursor to the host so native selection
// tracks keyboard navigation.
func (m *Model) cursorMoved() {
	if m.host == nil || m.binder.Mode() == grid.ModeNone || m.binder.Mode() == grid.ModeCheckbox {
		return
	}
	cur := m.tbl.Cursor()
	if cur < 0 || cur >= m.binder.RowCount() {
		return
	}
	m.host.SetSelectedIndexes([]int{cur})
	m.binder.HostSelectionChanged()
}

func (m *Model) cycleSort() {
	cols := m.binder.Columns()
	if m.sortCol >= len(cols) {
		return
	}
	switch m.sortState {
	case sortNone:
		m.sortState = sortDesc
	case sortDesc:
		m.sortState = sortAsc
	default:
		m.sortState = sortNone
	}

	if m.sortState == sortNone {
		m.binder.SetDirectives(nil)
	} else {
		m.binder.SetDirectives([]grid.Directive{{
			ColumnID:  cols[m.sortCol].ID,
			Ascending: m.sortState == sortAsc,
		}})
	}
	m.syncRows()
}

func (m *Model) applyFilter(query string) {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		m.binder.SetFilter(nil)
	} else {
		m.binder.SetFilter(func(r *source.Row) bool {
			for _, cell := range r.Cells {
				if strings.Contains(strings.ToLower(cell), query) {
					return true
				}
			}
			return false
		})
	}
	m.syncRows()
}

func (m *Model) reloadCmd() tea.Cmd {
	if m.reload == nil {
		return nil
	}
	reload := m.reload
	return func() tea.Msg {
		rows, err := reload()
		return reloadedMsg{rows: rows, err: err}
	}
}

// syncRows rebuilds the table widget from the binder's current row order.
func (m *Model) syncRows() {
	marked := m.binder.Mode() == grid.ModeCheckbox
	cols := m.binder.Columns()

	m.tbl.SetColumns(m.tableColumns())
	rows := make([]table.Row, 0, m.binder.RowCount())
	for i := 0; i < m.binder.RowCount(); i++ {
		row := make(table.Row, 0, len(cols)+1)
		if marked {
			row = append(row, m.marker(i))
		}
		for _, col := range cols {
			cell, _ := m.binder.CellAt(i, col.ID)
			row = append(row, cell.String())
		}
		rows = append(rows, row)
	}
	m.tbl.SetRows(rows)

	if n := len(rows); n > 0 && m.tbl.Cursor() >= n {
		m.tbl.SetCursor(n - 1)
	}
}

func (m *Model) marker(row int) string {
	sel := m.binder.Selection()
	obj, ok := m.binder.RowAt(row)
	if sel == nil || !ok || !sel.IsSelected(obj) {
		return "[ ]"
	}
	return "[x]"
}

func (m *Model) tableColumns() []table.Column {
	cols := m.binder.Columns()
	out := make([]table.Column, 0, len(cols)+1)
	if m.binder.Mode() == grid.ModeCheckbox {
		out = append(out, table.Column{Title: " ", Width: 3})
	}
	for i, col := range cols {
		title := col.Name
		if i == m.sortCol {
			title = "*" + title
		}
		width := col.Width.Pixels() / 8
		if width < 4 {
			width = 4
		}
		out = append(out, table.Column{Title: title, Width: width})
	}
	return out
}

func (m *Model) View() string {
	parts := []string{}
	if m.title != "" {
		parts = append(parts, titleStyle.Render(m.title))
	}
	parts = append(parts, m.tbl.View())

	if m.confirm != nil && m.confirm.pending() {
		parts = append(parts, promptStyle.Render(m.confirm.prompt+" [y/n]"))
	} else if m.filtering {
		parts = append(parts, m.filter.View())
	} else {
		parts = append(parts, statusStyle.Render(m.statusLine()))
	}

	parts = append(parts, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) statusLine() string {
	cols := m.binder.Columns()
	sort := "unsorted"
	if m.sortState != sortNone && m.sortCol < len(cols) {
		dir := "desc"
		if m.sortState == sortAsc {
			dir = "asc"
		}
		sort = fmt.Sprintf("sort: %s %s", cols[m.sortCol].Name, dir)
	}
	line := fmt.Sprintf("%d rows | %s", m.binder.RowCount(), sort)
	if m.status != "" {
		line += " | " + m.status
	}
	if len(m.binder.Actions()) > 0 {
		labels := make([]string, 0, len(m.binder.Actions()))
		for i, a := range m.binder.Actions() {
			labels = append(labels, fmt.Sprintf("[%d]%s", i+1, a.Label))
		}
		line += " | " + strings.Join(labels, " ")
	}
	return line
}
