package reassign

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/dori/tablero/internal/drag"
	"github.com/dori/tablero/internal/model"
	"github.com/dori/tablero/internal/notify"
	"github.com/dori/tablero/internal/optimistic"
	"github.com/dori/tablero/internal/store"
	"github.com/rs/zerolog"
)

var now = time.Date(2026, 3, 2, 10, 0, 0, 0, time.Local)

// fakeStore records every write and fails when err is set
type fakeStore struct {
	calls []string
	err   error
	block bool
}

func (f *fakeStore) record(ctx context.Context, call string) error {
	f.calls = append(f.calls, call)
	if f.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return f.err
}

func (f *fakeStore) ListPeople(ctx context.Context) ([]model.Person, error) { return nil, nil }

func (f *fakeStore) UpdateProjectPriority(ctx context.Context, id string, p model.Priority) error {
	return f.record(ctx, fmt.Sprintf("priority %s %s", id, p))
}

func (f *fakeStore) UpdateProjectStatus(ctx context.Context, id string, s model.ProjectStatus) error {
	return f.record(ctx, fmt.Sprintf("project-status %s %s", id, s))
}

func (f *fakeStore) UpdateTaskStatus(ctx context.Context, id string, s model.TaskStatus) error {
	return f.record(ctx, fmt.Sprintf("task-status %s %s", id, s))
}

func (f *fakeStore) ReplaceProjectMembers(ctx context.Context, id string, person *string) error {
	who := "nil"
	if person != nil {
		who = *person
	}
	return f.record(ctx, fmt.Sprintf("replace %s %s", id, who))
}

func (f *fakeStore) UpsertProjectMember(ctx context.Context, id, person string) error {
	return f.record(ctx, fmt.Sprintf("member %s %s", id, person))
}

func (f *fakeStore) UpsertTaskAssignment(ctx context.Context, id, person string) error {
	return f.record(ctx, fmt.Sprintf("assign %s %s", id, person))
}

var _ store.AssignmentStore = (*fakeStore)(nil)

type harness struct {
	store    *fakeStore
	projects *optimistic.State[model.Project]
	tasks    *optimistic.State[model.Task]
	notices  []notify.Notice
	resolver *Resolver
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	soon := now.AddDate(0, 0, 2)
	h := &harness{
		store:    &fakeStore{},
		projects: optimistic.New(model.Project.Clone),
		tasks:    optimistic.New(model.Task.Clone),
	}
	h.projects.Replace([]model.Project{
		{ID: "p1", Name: "Website", Priority: model.PriorityAuto, Status: model.ProjectActive, Members: []string{"alice", "bob"}},
		{ID: "p2", Name: "Logo", Priority: model.PriorityLow, Status: model.ProjectPending, Deadline: &soon},
		{ID: "p3", Name: "Brochure", Priority: model.PriorityMedium, Status: model.ProjectPending},
	})
	h.tasks.Replace([]model.Task{
		{ID: "t1", ProjectID: "p1", Title: "Wireframes", Status: model.TaskPending, Assignees: []string{"alice"}},
	})

	h.resolver = New(h.store, h.projects, h.tasks, Options{
		Notices: notify.SenderFunc(func(n notify.Notice) error {
			h.notices = append(h.notices, n)
			return nil
		}),
		Logger:  zerolog.Nop(),
		Now:     func() time.Time { return now },
		Timeout: time.Second,
	})
	h.resolver.SetPeople([]model.Person{{ID: "carol", DisplayName: "Carol"}})
	return h
}

func (h *harness) project(id string) model.Project {
	i := h.projects.Find(func(p model.Project) bool { return p.ID == id })
	return h.projects.Items()[i]
}

func (h *harness) task(id string) model.Task {
	i := h.tasks.Find(func(t model.Task) bool { return t.ID == id })
	return h.tasks.Items()[i]
}

func drop(p drag.Payload, kind drag.TargetKind, value string) drag.Drop {
	return drag.Drop{Payload: p, Target: drag.Target{Kind: kind, Value: value}}
}

func TestProjectToPersonIsSingleOwner(t *testing.T) {
	h := newHarness(t)

	out, ok := h.resolver.Resolve(context.Background(),
		drop(drag.ProjectPayload{ProjectID: "p1"}, drag.TargetPerson, "carol"))
	if !ok {
		t.Fatal("drop was ignored")
	}
	if out.Err != nil {
		t.Fatalf("unexpected error: %v", out.Err)
	}
	if got := h.project("p1").Members; !slices.Equal(got, []string{"carol"}) {
		t.Errorf("members = %v, want [carol]", got)
	}
	if !slices.Equal(h.store.calls, []string{"replace p1 carol"}) {
		t.Errorf("calls = %v", h.store.calls)
	}
	if out.Notice.Title != "Website reassigned to Carol" || out.Notice.Level != notify.LevelSuccess {
		t.Errorf("notice = %+v", out.Notice)
	}
	if !out.Refetch.Has(RefetchProjects) {
		t.Error("expected a project refetch")
	}
}

func TestProjectToUnassignedClearsMembers(t *testing.T) {
	h := newHarness(t)

	h.resolver.Resolve(context.Background(),
		drop(drag.ProjectPayload{ProjectID: "p1"}, drag.TargetPerson, drag.Unassigned))
	if got := h.project("p1").Members; len(got) != 0 {
		t.Errorf("members = %v, want none", got)
	}
	if !slices.Equal(h.store.calls, []string{"replace p1 nil"}) {
		t.Errorf("calls = %v", h.store.calls)
	}
}

func TestPersonDropsAreAdditive(t *testing.T) {
	h := newHarness(t)
	ctx := context.Background()

	h.resolver.Resolve(ctx, drop(drag.PersonPayload{PersonID: "carol"}, drag.TargetProject, "p1"))
	if got := h.project("p1").Members; !slices.Equal(got, []string{"alice", "bob", "carol"}) {
		t.Errorf("members = %v", got)
	}

	out, _ := h.resolver.Resolve(ctx, drop(drag.PersonPayload{PersonID: "carol"}, drag.TargetTask, "t1"))
	if got := h.task("t1").Assignees; !slices.Equal(got, []string{"alice", "carol"}) {
		t.Errorf("assignees = %v", got)
	}
	if !out.Refetch.Has(RefetchTasks) || out.Refetch.Has(RefetchProjects) {
		t.Errorf("refetch = %b, want tasks only", out.Refetch)
	}

	want := []string{"member p1 carol", "assign t1 carol"}
	if !slices.Equal(h.store.calls, want) {
		t.Errorf("calls = %v, want %v", h.store.calls, want)
	}
}

func TestIdempotentDropsIssueNoWrites(t *testing.T) {
	tests := []struct {
		name string
		drop drag.Drop
	}{
		// p3 is manual medium with no deadline
		{"same priority lane", drop(drag.ProjectPayload{ProjectID: "p3"}, drag.TargetPriority, "medium")},
		// p2 is manual low but escalated to high by its deadline
		{"escalated lane", drop(drag.ProjectPayload{ProjectID: "p2"}, drag.TargetPriority, "high")},
		{"manual priority of an escalated project", drop(drag.ProjectPayload{ProjectID: "p2"}, drag.TargetPriority, "low")},
		{"same project status", drop(drag.ProjectPayload{ProjectID: "p1"}, drag.TargetStatus, "active")},
		{"same task status", drop(drag.TaskPayload{TaskID: "t1"}, drag.TargetStatus, "pending")},
		{"already a member", drop(drag.PersonPayload{PersonID: "bob"}, drag.TargetProject, "p1")},
		{"already assigned", drop(drag.PersonPayload{PersonID: "alice"}, drag.TargetTask, "t1")},
		{"already unassigned", drop(drag.ProjectPayload{ProjectID: "p2"}, drag.TargetPerson, drag.Unassigned)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			v := h.projects.Version() + h.tasks.Version()

			if p := h.resolver.Dispatch(tt.drop); p != nil {
				t.Fatalf("expected no-op, got pending %+v", p.Drop)
			}
			if len(h.store.calls) != 0 || len(h.notices) != 0 {
				t.Errorf("calls = %v notices = %v", h.store.calls, h.notices)
			}
			if h.projects.Version()+h.tasks.Version() != v {
				t.Error("no-op drop patched local state")
			}
		})
	}
}

func TestUnsupportedPairsAreIgnored(t *testing.T) {
	tests := []drag.Drop{
		drop(drag.TaskPayload{TaskID: "t1"}, drag.TargetPriority, "high"),
		drop(drag.TaskPayload{TaskID: "t1"}, drag.TargetPerson, "carol"),
		drop(drag.PersonPayload{PersonID: "carol"}, drag.TargetStatus, "active"),
		drop(drag.ProjectPayload{ProjectID: "p1"}, drag.TargetProject, "p2"),
		drop(drag.ProjectPayload{ProjectID: "p1"}, drag.TargetPriority, "auto"),
		drop(drag.ProjectPayload{ProjectID: "p1"}, drag.TargetStatus, "done"),
		drop(drag.TaskPayload{TaskID: "missing"}, drag.TargetStatus, "review"),
		{Payload: nil, Target: drag.Target{Kind: drag.TargetStatus, Value: "review"}},
	}

	h := newHarness(t)
	for _, d := range tests {
		if p := h.resolver.Dispatch(d); p != nil {
			t.Errorf("Dispatch(%v -> %v) = pending, want nil", drag.Describe(d.Payload), d.Target)
		}
	}
	if len(h.store.calls) != 0 {
		t.Errorf("calls = %v", h.store.calls)
	}
}

func TestFailureRollsBackWithOneNotice(t *testing.T) {
	h := newHarness(t)
	h.store.err = store.Wrap("update task status", "task", "t1", store.ErrNotFound)

	p := h.resolver.Dispatch(drop(drag.TaskPayload{TaskID: "t1"}, drag.TargetStatus, "review"))
	if p == nil {
		t.Fatal("drop was ignored")
	}
	if h.task("t1").Status != model.TaskReview {
		t.Fatal("patch must be visible before the write returns")
	}

	err := p.Run(context.Background())
	out := h.resolver.Settle(p, err)
	h.resolver.Settle(p, err)

	if h.task("t1").Status != model.TaskPending {
		t.Errorf("status = %q, want rollback to pending", h.task("t1").Status)
	}
	if len(h.notices) != 1 {
		t.Fatalf("got %d notices, want exactly 1", len(h.notices))
	}
	n := h.notices[0]
	if n.Level != notify.LevelError || n.Title != "could not move task" {
		t.Errorf("notice = %+v", n)
	}
	if !errors.Is(out.Err, store.ErrNotFound) {
		t.Errorf("outcome err = %v", out.Err)
	}
	if !out.Refetch.Has(RefetchTasks) {
		t.Error("a failed drop must still refetch")
	}
	if h.tasks.Pending() != 0 {
		t.Errorf("token left pending")
	}
}

func TestProjectPriorityDrop(t *testing.T) {
	h := newHarness(t)

	// p1 has no deadline so auto resolves to low
	out, ok := h.resolver.Resolve(context.Background(),
		drop(drag.ProjectPayload{ProjectID: "p1"}, drag.TargetPriority, "high"))
	if !ok || out.Err != nil {
		t.Fatalf("Resolve: ok=%v err=%v", ok, out.Err)
	}
	if h.project("p1").Priority != model.PriorityHigh {
		t.Errorf("priority = %q", h.project("p1").Priority)
	}
	if out.Notice.Title != "Website moved to Urgent" {
		t.Errorf("notice = %q", out.Notice.Title)
	}

	h.resolver.Resolve(context.Background(),
		drop(drag.ProjectPayload{ProjectID: "p3"}, drag.TargetStatus, "on_hold"))

	want := []string{"priority p1 high", "project-status p3 on_hold"}
	if !slices.Equal(h.store.calls, want) {
		t.Errorf("calls = %v, want %v", h.store.calls, want)
	}
}

func TestEscalatedProjectPriorityNotice(t *testing.T) {
	h := newHarness(t)

	// p2 is due in two days so it stays in Urgent whatever its manual setting
	out, ok := h.resolver.Resolve(context.Background(),
		drop(drag.ProjectPayload{ProjectID: "p2"}, drag.TargetPriority, "medium"))
	if !ok || out.Err != nil {
		t.Fatalf("Resolve: ok=%v err=%v", ok, out.Err)
	}
	if h.project("p2").Priority != model.PriorityMedium {
		t.Errorf("priority = %q", h.project("p2").Priority)
	}
	if want := "Logo set to In Progress, kept in Urgent by its deadline"; out.Notice.Title != want {
		t.Errorf("notice = %q, want %q", out.Notice.Title, want)
	}
}

func TestOverlappingDropsSettleIndependently(t *testing.T) {
	failed := errors.New("write rejected")

	tests := []struct {
		name       string
		first      string // "a" or "b"
		errA, errB error
		p3Priority model.Priority
		p1Status   model.ProjectStatus
	}{
		{"both fail in order", "a", failed, failed, model.PriorityMedium, model.ProjectActive},
		{"both fail out of order", "b", failed, failed, model.PriorityMedium, model.ProjectActive},
		{"first fails, second succeeds", "a", failed, nil, model.PriorityMedium, model.ProjectOnHold},
		{"second fails before first succeeds", "b", nil, failed, model.PriorityHigh, model.ProjectActive},
		{"both succeed", "a", nil, nil, model.PriorityHigh, model.ProjectOnHold},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)

			a := h.resolver.Dispatch(drop(drag.ProjectPayload{ProjectID: "p3"}, drag.TargetPriority, "high"))
			b := h.resolver.Dispatch(drop(drag.ProjectPayload{ProjectID: "p1"}, drag.TargetStatus, "on_hold"))
			if a == nil || b == nil {
				t.Fatal("drop was ignored")
			}
			if h.project("p3").Priority != model.PriorityHigh || h.project("p1").Status != model.ProjectOnHold {
				t.Fatal("both patches must be visible while the writes are in flight")
			}

			if tt.first == "a" {
				h.resolver.Settle(a, tt.errA)
				h.resolver.Settle(b, tt.errB)
			} else {
				h.resolver.Settle(b, tt.errB)
				h.resolver.Settle(a, tt.errA)
			}

			if got := h.project("p3").Priority; got != tt.p3Priority {
				t.Errorf("p3 priority = %q, want %q", got, tt.p3Priority)
			}
			if got := h.project("p1").Status; got != tt.p1Status {
				t.Errorf("p1 status = %q, want %q", got, tt.p1Status)
			}
			if len(h.notices) != 2 {
				t.Errorf("got %d notices, want 2", len(h.notices))
			}
			if h.projects.Pending() != 0 {
				t.Errorf("Pending() = %d, want 0", h.projects.Pending())
			}
		})
	}
}

func TestRefetchKeepsInFlightDrop(t *testing.T) {
	h := newHarness(t)

	p := h.resolver.Dispatch(drop(drag.PersonPayload{PersonID: "carol"}, drag.TargetProject, "p1"))
	if p == nil {
		t.Fatal("drop was ignored")
	}

	// A refetch for another drop lands before this write returns
	h.projects.Replace([]model.Project{
		{ID: "p1", Name: "Website", Priority: model.PriorityAuto, Status: model.ProjectActive, Members: []string{"alice", "bob"}},
	})
	if got := h.project("p1").Members; !slices.Equal(got, []string{"alice", "bob", "carol"}) {
		t.Fatalf("members = %v, want in-flight add kept", got)
	}

	h.resolver.Settle(p, errors.New("write rejected"))
	if got := h.project("p1").Members; !slices.Equal(got, []string{"alice", "bob"}) {
		t.Errorf("members = %v, want rollback", got)
	}
}

func TestHungWriteTimesOut(t *testing.T) {
	h := newHarness(t)
	h.store.block = true
	h.resolver.timeout = 10 * time.Millisecond

	out, _ := h.resolver.Resolve(context.Background(),
		drop(drag.ProjectPayload{ProjectID: "p3"}, drag.TargetPerson, "carol"))
	if !errors.Is(out.Err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want deadline exceeded", out.Err)
	}
	if got := h.project("p3").Members; len(got) != 0 {
		t.Errorf("members = %v, want rollback", got)
	}
}

func TestCancelledDragNeverReachesStore(t *testing.T) {
	h := newHarness(t)
	s := drag.NewSession(1)

	s.Begin(drag.ProjectPayload{ProjectID: "p1"})
	s.Hover(&drag.Target{Kind: drag.TargetPerson, Value: "carol"})
	s.Cancel()

	if d, ok := s.Release(); ok {
		h.resolver.Dispatch(d)
	}
	if len(h.store.calls) != 0 || h.projects.Pending() != 0 {
		t.Errorf("cancelled drag reached the store: %v", h.store.calls)
	}
}
