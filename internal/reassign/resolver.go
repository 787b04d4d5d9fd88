// Package reassign turns completed drags into optimistic local patches and
// store writes, and reconciles the two when the write finishes.
package reassign

import (
	"context"
	"time"

	"github.com/dori/tablero/internal/drag"
	"github.com/dori/tablero/internal/model"
	"github.com/dori/tablero/internal/notify"
	"github.com/dori/tablero/internal/optimistic"
	"github.com/dori/tablero/internal/store"
	"github.com/rs/zerolog"
)

// DefaultTimeout bounds a single store write
const DefaultTimeout = 10 * time.Second

// Refetch says which collections should be reloaded after a settle
type Refetch uint8

const (
	RefetchProjects Refetch = 1 << iota
	RefetchTasks
)

// Has reports whether r includes what
func (r Refetch) Has(what Refetch) bool { return r&what != 0 }

// Options configure a Resolver
type Options struct {
	Timeout time.Duration
	Notices notify.Sender
	Logger  zerolog.Logger
	Now     func() time.Time
}

// Resolver maps drops onto store operations. It mutates the optimistic
// collections it was given, so it must run on the goroutine that owns them.
type Resolver struct {
	store    store.AssignmentStore
	projects *optimistic.State[model.Project]
	tasks    *optimistic.State[model.Task]
	people   map[string]string

	timeout time.Duration
	notices notify.Sender
	log     zerolog.Logger
	now     func() time.Time
}

// New creates a resolver over the given store and view collections
func New(st store.AssignmentStore, projects *optimistic.State[model.Project], tasks *optimistic.State[model.Task], opts Options) *Resolver {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.Notices == nil {
		opts.Notices = notify.Discard
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Resolver{
		store:    st,
		projects: projects,
		tasks:    tasks,
		people:   make(map[string]string),
		timeout:  opts.Timeout,
		notices:  opts.Notices,
		log:      opts.Logger.With().Str("component", "reassign").Logger(),
		now:      opts.Now,
	}
}

// SetPeople updates the names used in notices
func (r *Resolver) SetPeople(people []model.Person) {
	r.people = make(map[string]string, len(people))
	for _, p := range people {
		r.people[p.ID] = p.DisplayName
	}
}

// Pending is a dispatched drop whose store write has not finished
type Pending struct {
	Drop    drag.Drop
	Refetch Refetch

	call    func(ctx context.Context) error
	timeout time.Duration

	project optimistic.Token[model.Project]
	task    optimistic.Token[model.Task]
	success string
	failure string
	settled bool
}

// Run issues the store write. It is safe to call off the event loop: it
// touches nothing but the store.
func (p *Pending) Run(ctx context.Context) error {
	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	return p.call(ctx)
}

// Outcome is the result of settling a pending drop
type Outcome struct {
	Notice  notify.Notice
	Refetch Refetch
	Err     error
}

// Dispatch validates a drop and applies its optimistic patch. It returns
// nil when the drop is unsupported or would change nothing; in that case
// no store call is made.
func (r *Resolver) Dispatch(drop drag.Drop) *Pending {
	log := r.log.With().
		Str("payload", drag.Describe(drop.Payload)).
		Stringer("target", drop.Target).
		Logger()

	p := r.plan(drop)
	if p == nil {
		log.Debug().Msg("drop ignored")
		return nil
	}
	p.Drop = drop
	p.timeout = r.timeout
	log.Debug().Msg("drop dispatched")
	return p
}

// Settle confirms or rolls back a pending drop and sends exactly one
// notice. Settling the same drop twice does nothing.
func (r *Resolver) Settle(p *Pending, err error) Outcome {
	if p == nil || p.settled {
		return Outcome{}
	}
	p.settled = true

	log := r.log.With().
		Str("payload", drag.Describe(p.Drop.Payload)).
		Stringer("target", p.Drop.Target).
		Logger()

	out := Outcome{Refetch: p.Refetch, Err: err}
	if err != nil {
		r.rollback(p)
		out.Notice = notify.Notice{Level: notify.LevelError, Title: p.failure, Body: err.Error()}
		log.Error().Err(err).Msg(p.failure)
	} else {
		r.confirm(p)
		out.Notice = notify.Notice{Level: notify.LevelSuccess, Title: p.success}
		log.Info().Msg(p.success)
	}

	if sendErr := r.notices.Send(out.Notice); sendErr != nil {
		log.Warn().Err(sendErr).Msg("failed to deliver notice")
	}
	return out
}

// Resolve dispatches a drop, runs its write and settles it in one call.
// ok is false when the drop was ignored.
func (r *Resolver) Resolve(ctx context.Context, drop drag.Drop) (Outcome, bool) {
	p := r.Dispatch(drop)
	if p == nil {
		return Outcome{}, false
	}
	return r.Settle(p, p.Run(ctx)), true
}

func (r *Resolver) rollback(p *Pending) {
	if p.project.Valid() {
		r.projects.Rollback(p.project)
	}
	if p.task.Valid() {
		r.tasks.Rollback(p.task)
	}
}

func (r *Resolver) confirm(p *Pending) {
	if p.project.Valid() {
		r.projects.Confirm(p.project)
	}
	if p.task.Valid() {
		r.tasks.Confirm(p.task)
	}
}

func (r *Resolver) personName(id string) string {
	if name, ok := r.people[id]; ok {
		return name
	}
	return id
}
