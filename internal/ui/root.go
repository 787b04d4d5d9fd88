package ui

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dori/tablero/internal/app"
	"github.com/dori/tablero/internal/drag"
	"github.com/dori/tablero/internal/model"
	"github.com/dori/tablero/internal/notify"
	"github.com/dori/tablero/internal/optimistic"
	"github.com/dori/tablero/internal/reassign"
	"github.com/dori/tablero/internal/store"
	"github.com/dori/tablero/internal/ui/theme"
	"github.com/dori/tablero/internal/ui/views"
	"github.com/rs/zerolog"
)

const (
	headerHeight = 1
	footerHeight = 2
)

// Options select what the dashboard shows at startup
type Options struct {
	View View
	// Project is the ID of the project opened on the task board
	Project          string
	IncludeCompleted bool
}

// RootModel is the main application model. It owns the collections shown
// by every view, the single drag session and the resolver.
type RootModel struct {
	reader  store.Reader
	log     zerolog.Logger
	timeout time.Duration
	now     func() time.Time

	keys   KeyMap
	help   help.Model
	width  int
	height int

	currentView View
	lastView    View
	gridView    views.GridView
	boardView   views.BoardView
	peopleView  views.PeopleView
	listView    views.ListView
	tasksView   views.TasksView
	helpVisible bool

	projects         *optimistic.State[model.Project]
	tasks            *optimistic.State[model.Task]
	people           []model.Person
	selected         string
	includeCompleted bool

	session  *drag.Session
	resolver *reassign.Resolver
	toasts   *notify.Toasts
	kbDrag   bool
	kbIndex  int
	focus    drag.Payload

	// Rendered content and its hit map in screen coordinates
	frame  views.Frame
	layout drag.Layout

	errorMsg string
}

// NewRootModel creates a new root model
func NewRootModel(application *app.App, opts Options) RootModel {
	cfg := application.Config
	log := application.Logger.With().Str("component", "ui").Logger()

	h := help.New()
	h.ShowAll = false

	projects := optimistic.New(model.Project.Clone)
	tasks := optimistic.New(model.Task.Clone)
	toasts := notify.NewToasts(cfg.Notify.ToastTTL)

	desktop := notify.Async(application.Desktop, func(err error) {
		log.Warn().Err(err).Msg("desktop notification failed")
	})

	resolver := reassign.New(application.DB, projects, tasks, reassign.Options{
		Timeout: cfg.Store.Timeout,
		Notices: notify.Multi(toasts, desktop),
		Logger:  application.Logger,
	})

	current := opts.View
	if current == ViewTasks && opts.Project == "" {
		current = ViewGrid
	}

	return RootModel{
		reader:           application.DB,
		log:              log,
		timeout:          cfg.Store.Timeout,
		now:              time.Now,
		keys:             DefaultKeyMap(),
		help:             h,
		currentView:      current,
		lastView:         ViewGrid,
		gridView:         views.NewGridView(),
		boardView:        views.NewBoardView(),
		peopleView:       views.NewPeopleView(),
		listView:         views.NewListView(),
		tasksView:        views.NewTasksView(),
		projects:         projects,
		tasks:            tasks,
		selected:         opts.Project,
		includeCompleted: opts.IncludeCompleted,
		session:          drag.NewSession(cfg.Drag.Threshold),
		resolver:         resolver,
		toasts:           toasts,
	}
}

// Init loads every collection
func (m RootModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadProjects(), m.loadPeople()}
	if m.selected != "" {
		cmds = append(cmds, m.loadTasks(m.selected))
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		contentHeight := max(m.height-headerHeight-footerHeight, 0)
		m.gridView = m.gridView.SetSize(m.width, contentHeight)
		m.boardView = m.boardView.SetSize(m.width, contentHeight)
		m.peopleView = m.peopleView.SetSize(m.width, contentHeight)
		m.listView = m.listView.SetSize(m.width, contentHeight)
		m.tasksView = m.tasksView.SetSize(m.width, contentHeight)

	case tea.KeyMsg:
		var quit bool
		m, cmd, quit = m.handleKey(msg)
		if quit {
			return m, tea.Quit
		}

	case tea.MouseMsg:
		m, cmd = m.handleMouse(msg)

	case projectsLoadedMsg:
		if msg.err != nil {
			m.fail("failed to load projects", msg.err)
			break
		}
		m.projects.Replace(msg.projects)

	case tasksLoadedMsg:
		if msg.err != nil {
			m.fail("failed to load tasks", msg.err)
			break
		}
		// Ignore tasks of a project that is no longer on the board
		if msg.projectID == m.selected {
			m.tasks.Replace(msg.tasks)
		}

	case peopleLoadedMsg:
		if msg.err != nil {
			m.fail("failed to load people", msg.err)
			break
		}
		m.people = msg.people
		m.resolver.SetPeople(msg.people)

	case dropSettledMsg:
		out := m.resolver.Settle(msg.pending, msg.err)
		cmd = tea.Batch(m.refetch(out.Refetch), m.expireToast())

	case toastExpiredMsg:
		m.toasts.Expire()
	}

	m.refreshFrame()
	return m, cmd
}

func (m RootModel) handleKey(msg tea.KeyMsg) (RootModel, tea.Cmd, bool) {
	if msg.String() == "ctrl+c" {
		return m, nil, true
	}
	m.errorMsg = ""

	if m.session.State() == drag.Active {
		m = m.handleDragKey(msg)
		cmd := m.dispatchIfResolving()
		return m, cmd, false
	}

	if m.currentView == ViewList && m.listView.IsInputMode() {
		var cmd tea.Cmd
		m.listView, cmd = m.listView.Update(msg)
		return m, cmd, false
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, nil, true

	case key.Matches(msg, m.keys.ThemeCycle):
		next := theme.Next(theme.Current.Theme.Name)
		theme.SetTheme(next)
		m.toasts.Push(notify.Notice{Title: "Theme: " + next.Name})
		return m, m.expireToast(), false

	case key.Matches(msg, m.keys.Help):
		m.helpVisible = !m.helpVisible
		m.help.ShowAll = m.helpVisible

	case key.Matches(msg, m.keys.GridView):
		m.switchView(ViewGrid)
	case key.Matches(msg, m.keys.BoardView):
		m.switchView(ViewBoard)
	case key.Matches(msg, m.keys.PeopleView):
		m.switchView(ViewPeople)
	case key.Matches(msg, m.keys.ListView):
		m.switchView(ViewList)
	case key.Matches(msg, m.keys.TasksView):
		if m.selected != "" {
			m.switchView(ViewTasks)
		}

	case key.Matches(msg, m.keys.Search):
		if m.currentView == ViewList {
			var cmd tea.Cmd
			m.listView, cmd = m.listView.StartSearch()
			return m, cmd, false
		}

	case key.Matches(msg, m.keys.ShowAll):
		m.includeCompleted = !m.includeCompleted
		return m, m.loadProjects(), false

	case key.Matches(msg, m.keys.Refresh):
		return m, m.refetch(reassign.RefetchProjects | reassign.RefetchTasks), false

	case key.Matches(msg, m.keys.Grab):
		m.beginKeyboardDrag()

	case key.Matches(msg, m.keys.Next):
		m.moveFocus(1)
	case key.Matches(msg, m.keys.Prev):
		m.moveFocus(-1)

	case key.Matches(msg, m.keys.Open):
		if p, ok := m.focus.(drag.ProjectPayload); ok {
			cmd := m.openProject(p.ProjectID)
			return m, cmd, false
		}

	case key.Matches(msg, m.keys.Back):
		if m.helpVisible {
			m.helpVisible = false
		} else if m.currentView == ViewTasks {
			m.switchView(m.lastView)
		}
	}

	return m, nil, false
}

// handleDragKey drives an active drag from the keyboard
func (m RootModel) handleDragKey(msg tea.KeyMsg) RootModel {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.session.Cancel()
		m.kbDrag = false
	case key.Matches(msg, m.keys.Drop):
		if _, ok := m.session.Release(); !ok {
			m.kbDrag = false
		}
	case m.kbDrag && key.Matches(msg, m.keys.Next):
		m.cycleTarget(1)
	case m.kbDrag && key.Matches(msg, m.keys.Prev):
		m.cycleTarget(-1)
	}
	return m
}

func (m *RootModel) beginKeyboardDrag() {
	if m.focus == nil {
		return
	}
	if err := m.session.Begin(m.focus); err != nil {
		m.log.Debug().Err(err).Msg("keyboard drag refused")
		return
	}
	m.kbDrag = true
	m.kbIndex = -1
	m.cycleTarget(1)
}

func (m *RootModel) cycleTarget(step int) {
	p := m.session.Payload()
	if p == nil {
		return
	}
	targets := m.layout.TargetsFor(p.Kind())
	if len(targets) == 0 {
		m.session.Hover(nil)
		return
	}
	m.kbIndex = (m.kbIndex + step + len(targets)) % len(targets)
	m.session.Hover(&targets[m.kbIndex])
}

func (m RootModel) handleMouse(msg tea.MouseMsg) (RootModel, tea.Cmd) {
	if m.kbDrag || m.helpVisible {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		payload := m.layout.HandleAt(msg.X, msg.Y)
		if payload == nil {
			return m, nil
		}
		m.focus = payload
		if err := m.session.Press(payload, msg.X, msg.Y); err != nil {
			m.log.Debug().Err(err).Msg("press ignored")
		}

	case tea.MouseActionMotion:
		if m.session.Move(msg.X, msg.Y) {
			m.log.Debug().Str("payload", drag.Describe(m.session.Payload())).Msg("drag started")
		}
		m.hoverAt(msg.X, msg.Y)

	case tea.MouseActionRelease:
		m.hoverAt(msg.X, msg.Y)
		m.session.Release()
		cmd := m.dispatchIfResolving()
		return m, cmd
	}

	return m, nil
}

func (m *RootModel) hoverAt(x, y int) {
	if m.session.State() != drag.Active {
		return
	}
	m.session.Hover(m.layout.TargetAt(x, y, m.session.Payload().Kind()))
}

// dispatchIfResolving hands a released drop to the resolver. The patch is
// applied now and the store write runs as a command.
func (m *RootModel) dispatchIfResolving() tea.Cmd {
	if m.session.State() != drag.Resolving {
		return nil
	}

	drop := drag.Drop{Payload: m.session.Payload(), Target: *m.session.Target()}
	pending := m.resolver.Dispatch(drop)
	m.session.Finish()
	m.kbDrag = false

	if pending == nil {
		return nil
	}
	return func() tea.Msg {
		err := pending.Run(context.Background())
		return dropSettledMsg{pending: pending, err: err}
	}
}

func (m *RootModel) switchView(v View) {
	if v == m.currentView {
		return
	}
	if m.currentView != ViewTasks {
		m.lastView = m.currentView
	}
	m.currentView = v
	m.focus = nil
}

func (m *RootModel) openProject(id string) tea.Cmd {
	if id != m.selected {
		m.selected = id
		m.tasks.Replace(nil)
	}
	m.switchView(ViewTasks)
	return m.loadTasks(id)
}

// moveFocus walks the keyboard cursor through the draggable entities
func (m *RootModel) moveFocus(step int) {
	payloads := m.layout.Payloads()
	if len(payloads) == 0 {
		m.focus = nil
		return
	}
	i := slices.Index(payloads, m.focus)
	if i < 0 {
		m.focus = payloads[0]
		return
	}
	m.focus = payloads[(i+step+len(payloads))%len(payloads)]
}

func (m *RootModel) fail(what string, err error) {
	m.log.Error().Err(err).Msg(what)
	m.errorMsg = fmt.Sprintf("%s: %v", what, err)
}

func (m RootModel) selectedProject() *model.Project {
	if m.selected == "" {
		return nil
	}
	i := m.projects.Find(func(p model.Project) bool { return p.ID == m.selected })
	if i < 0 {
		return nil
	}
	p := m.projects.Items()[i]
	return &p
}

// refreshFrame renders the current view and stores its hit map
func (m *RootModel) refreshFrame() {
	if m.width == 0 || m.height == 0 {
		return
	}

	d := views.Data{
		Now:      m.now(),
		Projects: m.projects.Items(),
		People:   m.people,
		Project:  m.selectedProject(),
		Tasks:    m.tasks.Items(),
	}
	ds := views.DragState{
		Payload: m.session.Payload(),
		Target:  m.session.Target(),
		Focus:   m.focus,
	}

	switch m.currentView {
	case ViewBoard:
		m.frame = m.boardView.Render(d, ds)
	case ViewPeople:
		m.frame = m.peopleView.Render(d, ds)
	case ViewList:
		m.frame = m.listView.Render(d, ds)
	case ViewTasks:
		m.frame = m.tasksView.Render(d, ds)
	default:
		m.frame = m.gridView.Render(d, ds)
	}
	m.layout = m.frame.Layout.Offset(0, headerHeight)

	// Drop the cursor if its card is gone
	if m.focus != nil && !slices.Contains(m.layout.Payloads(), m.focus) {
		m.focus = nil
	}
}

// View renders the UI
func (m RootModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	contentHeight := max(m.height-headerHeight-footerHeight, 0)
	content := m.frame.Content
	if m.helpVisible {
		content = m.help.View(m.keys)
	}

	// Ensure content fills available space
	contentLines := strings.Count(content, "\n") + 1
	if contentLines < contentHeight {
		content += strings.Repeat("\n", contentHeight-contentLines)
	}

	return strings.Join([]string{m.renderHeader(), content, m.renderFooter()}, "\n")
}

// renderHeader renders the header bar
func (m RootModel) renderHeader() string {
	styles := theme.Current.Styles
	t := theme.Current.Theme

	title := styles.Header.Render("tablero")
	viewStyle := lipgloss.NewStyle().
		Foreground(t.Subtle).
		Padding(0, 1)

	label := fmt.Sprintf("[%s]", m.currentView)
	if p := m.selectedProject(); p != nil && m.currentView == ViewTasks {
		label = fmt.Sprintf("[%s: %s]", m.currentView, p.Name)
	}
	left := lipgloss.JoinHorizontal(lipgloss.Center, title, viewStyle.Render(label))

	right := fmt.Sprintf("%d projects", m.projects.Len())
	if m.includeCompleted {
		right += " (all)"
	}
	if n := m.projects.Pending() + m.tasks.Pending(); n > 0 {
		right += fmt.Sprintf(" · saving %d", n)
	}
	right = viewStyle.Render(right + " · theme: " + t.Name)

	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 0)
	return left + strings.Repeat(" ", gap) + right
}

// renderFooter renders the status line and key hints
func (m RootModel) renderFooter() string {
	styles := theme.Current.Styles

	var status string
	switch {
	case m.session.State() == drag.Active:
		status = styles.ToastInfo.Render(m.describeDrag())
	case m.errorMsg != "":
		status = styles.ToastError.Render(m.errorMsg)
	default:
		if toast, ok := m.toasts.Current(); ok {
			status = renderToast(toast)
		}
	}

	hints := m.help.ShortHelpView(m.keys.ShortHelp())
	if m.session.State() == drag.Active {
		hints = m.help.ShortHelpView(m.keys.DragHelp())
	}
	return status + "\n" + hints
}

func renderToast(toast notify.Toast) string {
	styles := theme.Current.Styles

	text := toast.Title
	if toast.Body != "" {
		text += ": " + toast.Body
	}
	switch toast.Level {
	case notify.LevelError:
		return styles.ToastError.Render("✗ " + text)
	case notify.LevelSuccess:
		return styles.ToastSuccess.Render("✓ " + text)
	default:
		return styles.ToastInfo.Render(text)
	}
}

// describeDrag names the dragged entity and the hovered zone
func (m RootModel) describeDrag() string {
	p := m.session.Payload()
	name := p.ID()
	switch p := p.(type) {
	case drag.ProjectPayload:
		if i := m.projects.Find(func(x model.Project) bool { return x.ID == p.ProjectID }); i >= 0 {
			name = m.projects.Items()[i].Name
		}
	case drag.TaskPayload:
		if i := m.tasks.Find(func(x model.Task) bool { return x.ID == p.TaskID }); i >= 0 {
			name = m.tasks.Items()[i].Title
		}
	case drag.PersonPayload:
		for _, person := range m.people {
			if person.ID == p.PersonID {
				name = person.DisplayName
			}
		}
	}

	target := "nowhere"
	if t := m.session.Target(); t != nil {
		target = m.describeTarget(*t)
	}
	return fmt.Sprintf("moving %s → %s", name, target)
}

func (m RootModel) describeTarget(t drag.Target) string {
	switch t.Kind {
	case drag.TargetPriority:
		return model.Priority(t.Value).Label()
	case drag.TargetStatus:
		if m.currentView == ViewTasks {
			return model.TaskStatus(t.Value).Label()
		}
		return model.ProjectStatus(t.Value).Label()
	case drag.TargetPerson:
		if t.Value == drag.Unassigned {
			return "Unassigned"
		}
		for _, p := range m.people {
			if p.ID == t.Value {
				return p.DisplayName
			}
		}
	}
	return t.String()
}

func (m RootModel) expireToast() tea.Cmd {
	return tea.Tick(m.toasts.TTL(), func(time.Time) tea.Msg {
		return toastExpiredMsg{}
	})
}

// refetch reloads the collections a settled drop touched
func (m RootModel) refetch(what reassign.Refetch) tea.Cmd {
	var cmds []tea.Cmd
	if what.Has(reassign.RefetchProjects) {
		cmds = append(cmds, m.loadProjects())
	}
	if what.Has(reassign.RefetchTasks) && m.selected != "" {
		cmds = append(cmds, m.loadTasks(m.selected))
	}
	return tea.Batch(cmds...)
}

func (m RootModel) loadProjects() tea.Cmd {
	reader, timeout, all := m.reader, m.timeout, m.includeCompleted
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		projects, err := reader.ListProjects(ctx, all)
		return projectsLoadedMsg{projects: projects, err: err}
	}
}

func (m RootModel) loadTasks(projectID string) tea.Cmd {
	reader, timeout := m.reader, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		tasks, err := reader.ListTasks(ctx, projectID)
		return tasksLoadedMsg{projectID: projectID, tasks: tasks, err: err}
	}
}

func (m RootModel) loadPeople() tea.Cmd {
	reader, timeout := m.reader, m.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		people, err := reader.ListPeople(ctx)
		return peopleLoadedMsg{people: people, err: err}
	}
}
