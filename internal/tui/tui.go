// Package tui provides the Bubble Tea terminal user interface for
// coasterlog. It renders the application state and translates key presses
// into app intents; all actual state lives in the app controller.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/awray/coasterlog/internal/app"
	"github.com/awray/coasterlog/internal/geo"
	"github.com/awray/coasterlog/internal/model"
	"github.com/awray/coasterlog/internal/nav"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	riddenStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	starStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	cursorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	mapStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6C757D"))
)

// Model is the Bubble Tea model for the TUI.
type Model struct {
	app *app.App

	search    textinput.Model
	searching bool

	parkCursor    int
	coasterCursor int

	width  int
	height int
}

// NewModel creates a new TUI model over the given controller.
func NewModel(a *app.App) Model {
	ti := textinput.New()
	ti.Placeholder = "park, city, state or coaster"
	ti.CharLimit = 60
	ti.Width = 40

	return Model{app: a, search: ti}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.searching {
			return m.updateSearch(msg)
		}
		switch m.app.Level() {
		case nav.LevelHome:
			return m.updateHome(msg)
		case nav.LevelPark:
			return m.updatePark(msg)
		case nav.LevelCoaster:
			return m.updateCoaster(msg)
		}
	}

	return m, nil
}

// updateSearch routes keys into the search input while it is focused.
func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.search.Blur()
		return m, nil
	case "esc":
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.app.SetSearch("")
		m.parkCursor = 0
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.app.SetSearch(m.search.Value())
	m.parkCursor = 0
	return m, cmd
}

func (m Model) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	parks := m.app.VisibleParks()

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "esc":
		if m.search.Value() != "" {
			m.search.SetValue("")
			m.app.SetSearch("")
			m.parkCursor = 0
			return m, nil
		}
		return m, tea.Quit

	case "/":
		m.searching = true
		return m, m.search.Focus()

	case "tab":
		if m.app.Mode() == nav.ModeMap {
			m.app.SetMode(nav.ModeList)
		} else {
			m.app.SetMode(nav.ModeMap)
		}

	case "up", "k":
		if m.parkCursor > 0 {
			m.parkCursor--
		}

	case "down", "j":
		if m.parkCursor < len(parks)-1 {
			m.parkCursor++
		}

	case "enter":
		if len(parks) > 0 && m.parkCursor < len(parks) {
			m.app.SelectPark(parks[m.parkCursor].ID)
			m.coasterCursor = 0
		}
	}

	return m, nil
}

func (m Model) updatePark(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	park, ok := m.app.SelectedPark()
	if !ok {
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "esc":
		m.app.ClosePark()
		return m, nil

	case "up", "k":
		if m.coasterCursor > 0 {
			m.coasterCursor--
		}

	case "down", "j":
		if m.coasterCursor < len(park.Coasters)-1 {
			m.coasterCursor++
		}

	case "enter":
		if m.coasterCursor < len(park.Coasters) {
			m.app.SelectCoaster(park.Coasters[m.coasterCursor].Name)
		}

	default:
		if m.coasterCursor < len(park.Coasters) {
			m.handleAnnotationKey(msg.String(), park, park.Coasters[m.coasterCursor])
		}
	}

	return m, nil
}

func (m Model) updateCoaster(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	park, _ := m.app.SelectedPark()
	coaster, ok := m.app.SelectedCoaster()
	if !ok {
		return m, nil
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit
	case "esc":
		m.app.CloseCoaster()
	default:
		m.handleAnnotationKey(msg.String(), park, coaster)
	}

	return m, nil
}

// handleAnnotationKey maps the shared ridden/rating keys. Unknown keys are
// ignored; invalid ratings never reach here because only "1".."5" map to
// SetRating.
func (m Model) handleAnnotationKey(key string, park *model.Park, coaster *model.Coaster) {
	switch key {
	case " ":
		m.app.ToggleRidden(park.ID, coaster.Name)
	case "1", "2", "3", "4", "5":
		m.app.SetRating(park.ID, coaster.Name, int(key[0]-'0'))
	case "0", "x":
		m.app.ClearRating(park.ID, coaster.Name)
	}
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🎢 coasterlog"))
	b.WriteString("\n")

	switch m.app.Level() {
	case nav.LevelHome:
		b.WriteString(m.viewHome())
	case nav.LevelPark:
		b.WriteString(m.viewPark())
	case nav.LevelCoaster:
		b.WriteString(m.viewCoaster())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.helpText()))

	return b.String()
}

func (m Model) viewHome() string {
	var b strings.Builder
	parks := m.app.VisibleParks()

	if m.searching || m.search.Value() != "" {
		b.WriteString(subtitleStyle.Render("Search: "))
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	}

	if len(parks) == 0 {
		b.WriteString(dimStyle.Render("No parks match."))
		b.WriteString("\n")
		return b.String()
	}

	cursor := m.parkCursor
	if cursor >= len(parks) {
		cursor = len(parks) - 1
	}

	if m.app.Mode() == nav.ModeMap {
		b.WriteString(m.renderMap(parks, cursor))
	}
	b.WriteString(m.renderParkList(parks, cursor))

	return b.String()
}

// renderMap plots the visible parks on a character grid using the fixed
// linear projection.
func (m Model) renderMap(parks []*model.Park, cursor int) string {
	cols, rows := 68, 16
	if m.width > 0 && m.width-6 < cols {
		cols = m.width - 6
	}
	if cols < 20 {
		cols = 20
	}

	grid := make([][]rune, rows)
	for r := range grid {
		grid[r] = make([]rune, cols)
		for c := range grid[r] {
			grid[r][c] = ' '
		}
	}

	for i, park := range parks {
		x, y := geo.Project(park.Lat, park.Lon)
		col, row := geo.Scale(x, y, cols, rows)
		grid[row][col] = markerFor(i)
	}

	var b strings.Builder
	for _, rowRunes := range grid {
		line := string(rowRunes)
		b.WriteString(line)
		b.WriteString("\n")
	}

	return mapStyle.Render(strings.TrimRight(b.String(), "\n")) + "\n\n"
}

// markerFor labels a park on the map with the same index shown in the list.
func markerFor(i int) rune {
	switch {
	case i < 9:
		return rune('1' + i)
	case i == 9:
		return '0'
	default:
		return '•'
	}
}

func (m Model) renderParkList(parks []*model.Park, cursor int) string {
	var b strings.Builder

	for i, park := range parks {
		ridden, total := m.app.ParkProgress(park)

		prefix := "  "
		line := fmt.Sprintf("%c %s — %s", markerFor(i), park.Name, park.Location)
		progress := fmt.Sprintf(" (%d/%d ridden)", ridden, total)

		if i == cursor {
			b.WriteString(cursorStyle.Render("❯ " + line))
		} else {
			b.WriteString(prefix + line)
		}
		if ridden == total && total > 0 {
			b.WriteString(riddenStyle.Render(progress))
		} else {
			b.WriteString(dimStyle.Render(progress))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewPark() string {
	park, ok := m.app.SelectedPark()
	if !ok {
		return ""
	}

	var b strings.Builder
	ridden, total := m.app.ParkProgress(park)

	b.WriteString(subtitleStyle.Render(park.Name))
	b.WriteString(dimStyle.Render(fmt.Sprintf("  %s · %d/%d ridden", park.Location, ridden, total)))
	b.WriteString("\n\n")

	cursor := m.coasterCursor
	if cursor >= len(park.Coasters) {
		cursor = len(park.Coasters) - 1
	}

	for i, c := range park.Coasters {
		check := "[ ]"
		if m.app.Ridden(park.ID, c.Name) {
			check = riddenStyle.Render("[✓]")
		}

		line := fmt.Sprintf("%s %-24s %s", check, c.Name, m.stars(park, c))
		if i == cursor {
			b.WriteString(cursorStyle.Render("❯ ") + line)
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %s · %.0f mph · %d", c.Type, c.Speed, c.Opened)))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) viewCoaster() string {
	park, _ := m.app.SelectedPark()
	coaster, ok := m.app.SelectedCoaster()
	if !ok {
		return ""
	}

	status := "not ridden"
	if m.app.Ridden(park.ID, coaster.Name) {
		status = riddenStyle.Render("ridden ✓")
	}

	detail := fmt.Sprintf(
		"%s\n%s\n\n"+
			"Speed      %.0f mph\n"+
			"Height     %.0f ft\n"+
			"Drop       %.0f ft\n"+
			"Length     %.0f ft\n"+
			"Inversions %d\n"+
			"Type       %s\n"+
			"Opened     %d\n\n"+
			"Rating     %s\n"+
			"Status     %s\n\n"+
			"%s\n%s",
		subtitleStyle.Render(coaster.Name),
		dimStyle.Render(park.Name+" — "+park.Location),
		coaster.Speed,
		coaster.Height,
		coaster.Drop,
		coaster.Length,
		coaster.Inversions,
		coaster.Type,
		coaster.Opened,
		m.stars(park, coaster),
		status,
		infoStyle.Render(coaster.Description),
		dimStyle.Render("POV: "+coaster.POVVideo),
	)

	return boxStyle.Render(detail) + "\n"
}

// stars renders the 1-5 rating, dim hollow stars when unrated.
func (m Model) stars(park *model.Park, coaster *model.Coaster) string {
	rating, ok := m.app.Rating(park.ID, coaster.Name)
	if !ok {
		return dimStyle.Render("☆☆☆☆☆")
	}
	return starStyle.Render(strings.Repeat("★", rating) + strings.Repeat("☆", model.MaxRating-rating))
}

func (m Model) helpText() string {
	if m.searching {
		return "type to filter • enter: done • esc: clear"
	}
	switch m.app.Level() {
	case nav.LevelHome:
		return "↑/↓: move • enter: open park • tab: map/list • /: search • q: quit"
	case nav.LevelPark:
		return "↑/↓: move • enter: details • space: ridden • 1-5: rate • 0: clear • esc: back"
	case nav.LevelCoaster:
		return "space: ridden • 1-5: rate • 0: clear rating • esc: back"
	}
	return ""
}

// Run starts the TUI and blocks until the user quits.
func Run(a *app.App, startMode nav.Mode) error {
	a.SetMode(startMode)
	p := tea.NewProgram(NewModel(a), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
