package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/TPSE31/career-roadmap/internal/cli/formatter"
	"github.com/TPSE31/career-roadmap/internal/contract"
	"github.com/TPSE31/career-roadmap/internal/domain"
	"github.com/TPSE31/career-roadmap/internal/service"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// browseChrome is the number of lines taken by the header and footer.
const browseChrome = 5

type browseKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
	Reload key.Binding
	Quit   key.Binding
}

func (k browseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Reload, k.Quit}
}

func (k browseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

func defaultBrowseKeys() browseKeyMap {
	return browseKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle: key.NewBinding(key.WithKeys(" ", "space", "x"), key.WithHelp("space", "toggle done")),
		Reload: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// browseLoadedMsg carries the ranked modules of the profile career.
type browseLoadedMsg struct {
	resp *contract.ScoredModulesResponse
	err  error
}

// browseToggledMsg reports the outcome of a completion toggle.
type browseToggledMsg struct {
	resp *contract.ToggleResponse
	err  error
}

// browseModel is a checklist of the selected career's roadmap modules.
type browseModel struct {
	ctx    context.Context
	engine service.Engine

	career  *domain.CareerPath
	rows    []domain.ScoredModule
	cursor  int
	loading bool
	err     error
	status  string

	vp       viewport.Model
	keys     browseKeyMap
	help     help.Model
	quitting bool
}

func newBrowseModel(ctx context.Context, engine service.Engine) *browseModel {
	return &browseModel{
		ctx:     ctx,
		engine:  engine,
		loading: true,
		vp:      viewport.New(80, 20),
		keys:    defaultBrowseKeys(),
		help:    help.New(),
	}
}

func (m *browseModel) Init() tea.Cmd {
	return m.load()
}

func (m *browseModel) load() tea.Cmd {
	ctx, engine := m.ctx, m.engine
	return func() tea.Msg {
		resp, err := engine.GetScoredModules(ctx, "")
		return browseLoadedMsg{resp: resp, err: err}
	}
}

func (m *browseModel) toggle(code string) tea.Cmd {
	ctx, engine := m.ctx, m.engine
	return func() tea.Msg {
		resp, err := engine.ToggleModule(ctx, code)
		return browseToggledMsg{resp: resp, err: err}
	}
}

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.vp.Width = msg.Width
		m.vp.Height = max(msg.Height-browseChrome, 1)
		m.help.Width = msg.Width
		m.refresh()
		return m, nil

	case browseLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.err == nil {
			m.career = msg.resp.Career
			m.rows = msg.resp.Modules
			m.cursor = min(m.cursor, max(len(m.rows)-1, 0))
		}
		m.refresh()
		return m, nil

	case browseToggledMsg:
		if msg.err != nil {
			m.status = formatter.StyleRed.Render("Error: " + msg.err.Error())
			return m, nil
		}
		for i := range m.rows {
			if m.rows[i].Code == msg.resp.Code {
				m.rows[i].Completed = msg.resp.Completed
			}
		}
		m.status = strings.TrimSuffix(formatter.FormatToggle(msg.resp), "\n")
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.rows)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Toggle):
			if m.cursor < len(m.rows) {
				return m, m.toggle(m.rows[m.cursor].Code)
			}
		case key.Matches(msg, m.keys.Reload):
			m.loading = true
			return m, m.load()
		}
		m.refresh()
	}
	return m, nil
}

// refresh re-renders the rows into the viewport and keeps the cursor visible.
func (m *browseModel) refresh() {
	m.vp.SetContent(m.renderRows())
	switch {
	case m.cursor < m.vp.YOffset:
		m.vp.SetYOffset(m.cursor)
	case m.cursor >= m.vp.YOffset+m.vp.Height:
		m.vp.SetYOffset(m.cursor - m.vp.Height + 1)
	}
}

func (m *browseModel) renderRows() string {
	var b strings.Builder
	for i, r := range m.rows {
		pointer := "  "
		name := r.DisplayName()
		if i == m.cursor {
			pointer = formatter.StyleHeader.Render("▸ ")
			name = formatter.StyleBold.Render(name)
		}
		fmt.Fprintf(&b, "%s%s %s %s %s\n",
			pointer,
			formatter.CheckMark(r.Completed),
			formatter.StyleBlue.Render(formatter.PadRight(r.Code, 12)),
			name,
			formatter.Dim(fmt.Sprintf("%d CP · %s", r.Credits, r.Phase)))
	}
	return b.String()
}

func (m *browseModel) View() string {
	if m.quitting {
		return ""
	}
	if m.loading {
		return formatter.Dim("Loading modules...") + "\n"
	}
	if m.err != nil {
		return formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n"
	}
	if m.career == nil {
		return formatter.Dim("No career selected. Run 'roadmap profile' first.") + "\n"
	}

	done, cp := 0, 0
	for _, r := range m.rows {
		if r.Completed {
			done++
			cp += r.Credits
		}
	}

	var b strings.Builder
	b.WriteString(formatter.Header(m.career.TitleEN))
	b.WriteString("\n")
	b.WriteString(formatter.Dim(fmt.Sprintf("%d/%d completed · %d CP", done, len(m.rows), cp)))
	b.WriteString("\n")
	b.WriteString(m.vp.View())
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status)
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func newBrowseCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Check off the roadmap modules of your career interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.interactive() {
				return contract.NewError(contract.ErrInvalidInput, "browse needs an interactive terminal")
			}
			ctx := cmd.Context()
			p := tea.NewProgram(newBrowseModel(ctx, app.Engine),
				tea.WithContext(ctx),
				tea.WithOutput(cmd.OutOrStdout()),
				tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}
}
