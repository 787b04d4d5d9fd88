package main

import (
	"context"
	"fmt"

	"github.com/dori/tablero/internal/app"
	"github.com/dori/tablero/internal/drag"
	"github.com/dori/tablero/internal/model"
	"github.com/dori/tablero/internal/optimistic"
	"github.com/dori/tablero/internal/reassign"
	"github.com/spf13/cobra"
)

var dropCmd = &cobra.Command{
	Use:   "drop <project|task|person> <ref> <priority|status|person|project|task> <value>",
	Short: "Drop an entity on a target without opening the dashboard",
	Long: `Runs one drop through the same rules as the dashboard.

Examples:
  tablero drop project Rebrand priority high
  tablero drop project Rebrand person Ana
  tablero drop project Rebrand person unassigned
  tablero drop task "Logo sketches" status review
  tablero drop person Ana project Rebrand
  tablero drop person Ana task "Logo sketches"

References are ids or names. A drop that changes nothing prints
"no change" and succeeds.`,
	Args: cobra.ExactArgs(4),
	RunE: runDrop,
}

func init() {
	rootCmd.AddCommand(dropCmd)
}

func runDrop(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		projects := optimistic.New(model.Project.Clone)
		tasks := optimistic.New(model.Task.Clone)

		payload, taskProject, err := resolvePayload(ctx, a, drag.Kind(args[0]), args[1])
		if err != nil {
			return err
		}
		target, targetProject, err := resolveTarget(ctx, a, drag.TargetKind(args[2]), args[3])
		if err != nil {
			return err
		}

		all, err := a.DB.ListProjects(ctx, true)
		if err != nil {
			return err
		}
		projects.Replace(all)

		if id := firstNonEmpty(taskProject, targetProject); id != "" {
			list, err := a.DB.ListTasks(ctx, id)
			if err != nil {
				return err
			}
			tasks.Replace(list)
		}

		people, err := a.DB.ListPeople(ctx)
		if err != nil {
			return err
		}

		resolver := reassign.New(a.DB, projects, tasks, reassign.Options{
			Timeout: a.Config.Store.Timeout,
			Notices: a.Desktop,
			Logger:  a.Logger,
		})
		resolver.SetPeople(people)

		out, ok := resolver.Resolve(ctx, drag.Drop{Payload: payload, Target: target})
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "no change")
			return nil
		}
		if out.Err != nil {
			return fmt.Errorf("%s: %w", out.Notice.Title, out.Err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), out.Notice.Title)
		return nil
	})
}

// resolvePayload turns a kind and reference into a payload. For tasks it
// also returns the owning project so its tasks can be loaded.
func resolvePayload(ctx context.Context, a *app.App, kind drag.Kind, ref string) (drag.Payload, string, error) {
	switch kind {
	case drag.KindProject:
		p, err := a.DB.FindProject(ctx, ref)
		if err != nil {
			return nil, "", err
		}
		return drag.ProjectPayload{ProjectID: p.ID}, "", nil
	case drag.KindTask:
		t, err := a.DB.FindTask(ctx, ref)
		if err != nil {
			return nil, "", err
		}
		return drag.TaskPayload{TaskID: t.ID}, t.ProjectID, nil
	case drag.KindPerson:
		p, err := a.DB.FindPerson(ctx, ref)
		if err != nil {
			return nil, "", err
		}
		return drag.PersonPayload{PersonID: p.ID}, "", nil
	}
	return nil, "", fmt.Errorf("cannot drag a %q", kind)
}

// resolveTarget turns a kind and value into a drop target. Entity values
// are looked up by name or id; priority and status values are passed
// through so the resolver can reject them.
func resolveTarget(ctx context.Context, a *app.App, kind drag.TargetKind, value string) (drag.Target, string, error) {
	t := drag.Target{Kind: kind, Value: value}

	switch kind {
	case drag.TargetPriority:
		if p, ok := model.ParsePriority(value); ok {
			t.Value = string(p)
		}
	case drag.TargetStatus:
	case drag.TargetPerson:
		if value == drag.Unassigned {
			break
		}
		p, err := a.DB.FindPerson(ctx, value)
		if err != nil {
			return t, "", err
		}
		t.Value = p.ID
	case drag.TargetProject:
		p, err := a.DB.FindProject(ctx, value)
		if err != nil {
			return t, "", err
		}
		t.Value = p.ID
	case drag.TargetTask:
		task, err := a.DB.FindTask(ctx, value)
		if err != nil {
			return t, "", err
		}
		t.Value = task.ID
		return t, task.ProjectID, nil
	default:
		return t, "", fmt.Errorf("unknown target %q", kind)
	}
	return t, "", nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
