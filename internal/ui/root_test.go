package ui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dori/tablero/internal/app"
	"github.com/dori/tablero/internal/config"
	"github.com/dori/tablero/internal/db"
	"github.com/dori/tablero/internal/drag"
	"github.com/dori/tablero/internal/model"
	"github.com/dori/tablero/internal/notify"
)

type harness struct {
	app     *app.App
	m       RootModel
	project *model.Project
	alice   *model.Person
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	cfg := config.Default()
	cfg.DataDir = t.TempDir()
	cfg.DBPath = filepath.Join(cfg.DataDir, "tablero.db")

	a, err := app.New(cfg, app.Options{})
	if err != nil {
		t.Fatalf("app.New: %v", err)
	}
	t.Cleanup(func() { a.Close() })

	ctx := context.Background()
	h := &harness{app: a}
	if h.alice, err = a.DB.CreatePerson(ctx, "Alice", "design"); err != nil {
		t.Fatalf("CreatePerson: %v", err)
	}
	h.project, err = a.DB.CreateProject(ctx, db.NewProject{
		Name:     "Atlas",
		Priority: model.PriorityHigh,
		Status:   model.ProjectActive,
	})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	h.m = NewRootModel(a, Options{})
	h.send(t, h.m.loadProjects()())
	h.send(t, h.m.loadPeople()())
	h.send(t, tea.WindowSizeMsg{Width: 90, Height: 30})
	return h
}

// send feeds msg to the model and returns the resulting command
func (h *harness) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := h.m.Update(msg)
	m, ok := next.(RootModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	h.m = m
	return cmd
}

func (h *harness) key(t *testing.T, k string) tea.Cmd {
	t.Helper()
	switch k {
	case "enter":
		return h.send(t, tea.KeyMsg{Type: tea.KeyEnter})
	case "esc":
		return h.send(t, tea.KeyMsg{Type: tea.KeyEsc})
	case " ":
		return h.send(t, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	}
	return h.send(t, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
}

func (h *harness) mouse(t *testing.T, action tea.MouseAction, x, y int) tea.Cmd {
	t.Helper()
	return h.send(t, tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft})
}

func (h *harness) handle(t *testing.T, p drag.Payload) drag.Rect {
	t.Helper()
	for _, hd := range h.m.layout.Handles {
		if hd.Payload == p {
			return hd.Rect
		}
	}
	t.Fatalf("no handle for %s", drag.Describe(p))
	return drag.Rect{}
}

func (h *harness) zone(t *testing.T, target drag.Target) drag.Rect {
	t.Helper()
	for _, z := range h.m.layout.Zones {
		if z.Target == target {
			return z.Rect
		}
	}
	t.Fatalf("no zone for %s", target)
	return drag.Rect{}
}

func (h *harness) current(t *testing.T) model.Project {
	t.Helper()
	i := h.m.projects.Find(func(p model.Project) bool { return p.ID == h.project.ID })
	if i < 0 {
		t.Fatal("project missing from state")
	}
	return h.m.projects.Items()[i]
}

func (h *harness) stored(t *testing.T) *model.Project {
	t.Helper()
	p, err := h.app.DB.GetProject(context.Background(), h.project.ID)
	if err != nil {
		t.Fatalf("GetProject: %v", err)
	}
	return p
}

// drag presses on the payload, moves to the target and releases there
func (h *harness) drag(t *testing.T, p drag.Payload, target drag.Target) tea.Cmd {
	t.Helper()
	from := h.handle(t, p)
	to := h.zone(t, target)
	h.mouse(t, tea.MouseActionPress, from.X, from.Y)
	h.mouse(t, tea.MouseActionMotion, to.X, to.Y)
	if h.m.session.State() != drag.Active {
		t.Fatalf("session %s after motion, want active", h.m.session.State())
	}
	return h.mouse(t, tea.MouseActionRelease, to.X, to.Y)
}

func TestMouseDropOnLaneChangesPriority(t *testing.T) {
	h := newHarness(t)

	payload := drag.ProjectPayload{ProjectID: h.project.ID}
	cmd := h.drag(t, payload, drag.Target{Kind: drag.TargetPriority, Value: string(model.PriorityMedium)})
	if cmd == nil {
		t.Fatal("expected a store write command")
	}

	// Applied before the write lands
	if got := h.current(t).Priority; got != model.PriorityMedium {
		t.Errorf("optimistic priority = %s", got)
	}
	if h.m.session.State() != drag.Idle {
		t.Errorf("session %s after drop", h.m.session.State())
	}

	h.send(t, cmd())

	if got := h.stored(t).Priority; got != model.PriorityMedium {
		t.Errorf("stored priority = %s", got)
	}
	if h.m.projects.Pending() != 0 {
		t.Errorf("%d patches still pending", h.m.projects.Pending())
	}
	toast, ok := h.m.toasts.Current()
	if !ok || toast.Level != notify.LevelSuccess || !strings.Contains(toast.Title, "Atlas") {
		t.Errorf("toast = %+v, %v", toast, ok)
	}
}

func TestMouseDropOnPersonChipReassigns(t *testing.T) {
	h := newHarness(t)

	payload := drag.ProjectPayload{ProjectID: h.project.ID}
	cmd := h.drag(t, payload, drag.Target{Kind: drag.TargetPerson, Value: h.alice.ID})
	if cmd == nil {
		t.Fatal("expected a store write command")
	}
	h.send(t, cmd())

	members := h.stored(t).Members
	if len(members) != 1 || members[0] != h.alice.ID {
		t.Errorf("members = %v", members)
	}
}

func TestClickWithoutMotionIsNotADrag(t *testing.T) {
	h := newHarness(t)

	payload := drag.ProjectPayload{ProjectID: h.project.ID}
	r := h.handle(t, payload)
	h.mouse(t, tea.MouseActionPress, r.X, r.Y)
	if cmd := h.mouse(t, tea.MouseActionRelease, r.X, r.Y); cmd != nil {
		t.Error("click produced a command")
	}
	if h.m.focus != drag.Payload(payload) {
		t.Errorf("focus = %v", h.m.focus)
	}
	if h.m.session.State() != drag.Idle {
		t.Errorf("session %s", h.m.session.State())
	}
}

func TestDropOnOwnLaneIsIgnored(t *testing.T) {
	h := newHarness(t)

	payload := drag.ProjectPayload{ProjectID: h.project.ID}
	r := h.zone(t, drag.Target{Kind: drag.TargetPriority, Value: string(model.PriorityHigh)})
	from := h.handle(t, payload)
	h.mouse(t, tea.MouseActionPress, from.X, from.Y)
	h.mouse(t, tea.MouseActionMotion, from.X+2, r.Y+r.H-3)
	if cmd := h.mouse(t, tea.MouseActionRelease, from.X+2, r.Y+r.H-3); cmd != nil {
		t.Error("no-op drop produced a command")
	}
	if _, ok := h.m.toasts.Current(); ok {
		t.Error("no-op drop produced a toast")
	}
}

func TestKeyboardDrag(t *testing.T) {
	h := newHarness(t)

	h.key(t, "j")
	if h.m.focus != drag.Payload(drag.ProjectPayload{ProjectID: h.project.ID}) {
		t.Fatalf("focus = %v", h.m.focus)
	}

	h.key(t, " ")
	if h.m.session.State() != drag.Active {
		t.Fatalf("session %s after grab", h.m.session.State())
	}
	first := h.m.session.Target()
	if first == nil || first.Value != string(model.PriorityHigh) {
		t.Fatalf("first target = %v", first)
	}

	// Next target is the medium lane
	h.key(t, "j")
	if got := h.m.session.Target(); got == nil || got.Value != string(model.PriorityMedium) {
		t.Fatalf("target = %v", got)
	}
	if !strings.Contains(h.m.View(), "moving Atlas") {
		t.Error("status line does not describe the drag")
	}

	cmd := h.key(t, "enter")
	if cmd == nil {
		t.Fatal("expected a store write command")
	}
	h.send(t, cmd())
	if got := h.stored(t).Priority; got != model.PriorityMedium {
		t.Errorf("stored priority = %s", got)
	}
}

func TestKeyboardDragCancel(t *testing.T) {
	h := newHarness(t)

	h.key(t, "j")
	h.key(t, " ")
	h.key(t, "j")
	if cmd := h.key(t, "esc"); cmd != nil {
		t.Error("cancel produced a command")
	}
	if h.m.session.State() != drag.Idle {
		t.Errorf("session %s after cancel", h.m.session.State())
	}
	if got := h.current(t).Priority; got != model.PriorityHigh {
		t.Errorf("priority changed to %s", got)
	}
}

func TestFailedWriteRollsBack(t *testing.T) {
	h := newHarness(t)

	payload := drag.ProjectPayload{ProjectID: h.project.ID}
	cmd := h.drag(t, payload, drag.Target{Kind: drag.TargetPriority, Value: string(model.PriorityLow)})
	if cmd == nil {
		t.Fatal("expected a store write command")
	}

	// The row vanishes before the write runs
	if _, err := h.app.DB.ExecContext(context.Background(), `DELETE FROM projects WHERE id = ?`, h.project.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	h.send(t, cmd())

	if got := h.current(t).Priority; got != model.PriorityHigh {
		t.Errorf("priority after rollback = %s", got)
	}
	toast, ok := h.m.toasts.Current()
	if !ok || toast.Level != notify.LevelError {
		t.Errorf("toast = %+v, %v", toast, ok)
	}
	if !strings.Contains(h.m.View(), "could not change project priority") {
		t.Error("error toast not rendered")
	}
}

func TestOpenProjectShowsTasks(t *testing.T) {
	h := newHarness(t)

	h.key(t, "j")
	cmd := h.key(t, "enter")
	if h.m.currentView != ViewTasks {
		t.Fatalf("view = %s", h.m.currentView)
	}
	if cmd == nil {
		t.Fatal("expected a task load command")
	}
	msg, ok := cmd().(tasksLoadedMsg)
	if !ok || msg.projectID != h.project.ID || msg.err != nil {
		t.Fatalf("load = %+v", msg)
	}

	h.key(t, "esc")
	if h.m.currentView != ViewGrid {
		t.Errorf("back went to %s", h.m.currentView)
	}
}

func TestViewSwitching(t *testing.T) {
	h := newHarness(t)

	for k, want := range map[string]View{"2": ViewBoard, "3": ViewPeople, "4": ViewList, "1": ViewGrid} {
		h.key(t, k)
		if h.m.currentView != want {
			t.Errorf("key %s: view = %s", k, h.m.currentView)
		}
	}

	// Without a selected project the task board stays closed
	h.key(t, "5")
	if h.m.currentView == ViewTasks {
		t.Error("task board opened without a project")
	}
}

func TestHeaderOffsetsLayout(t *testing.T) {
	h := newHarness(t)

	r := h.zone(t, drag.Target{Kind: drag.TargetPriority, Value: string(model.PriorityHigh)})
	if r.Y != headerHeight {
		t.Errorf("lane starts at y=%d, want %d", r.Y, headerHeight)
	}
	if !strings.Contains(h.m.View(), "Atlas") {
		t.Error("project card not rendered")
	}
}
