package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dori/tablero/internal/app"
	"github.com/dori/tablero/internal/db"
	"github.com/dori/tablero/internal/model"
	"github.com/dori/tablero/internal/priority"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Quick add projects, tasks and people",
	Long: `Quick add syntax:
  tablero add project "Rebrand client:acme !high due:friday"
  tablero add task Rebrand "Logo sketches !critical due:tomorrow"
  tablero add person "Ana Ruiz" --role design

  Priority:  !low !medium !high !auto (projects)  !critical (tasks)
  Due date:  due:today due:tomorrow due:friday due:nextweek due:2026-01-15
  Client:    client:acme (underscores become spaces)`,
}

var (
	addStatus string
	addOwner  string
	addAssign string
	addRole   string
)

var addProjectCmd = &cobra.Command{
	Use:   "project <text>...",
	Short: "Add a project",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAddProject,
}

var addTaskCmd = &cobra.Command{
	Use:   "task <project> <text>...",
	Short: "Add a task to a project",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runAddTask,
}

var addPersonCmd = &cobra.Command{
	Use:   "person <name>...",
	Short: "Add a person",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAddPerson,
}

func init() {
	rootCmd.AddCommand(addCmd)
	addCmd.AddCommand(addProjectCmd, addTaskCmd, addPersonCmd)

	addProjectCmd.Flags().StringVar(&addStatus, "status", string(model.ProjectPending), "initial status")
	addProjectCmd.Flags().StringVar(&addOwner, "owner", "", "owner (name or id)")
	addTaskCmd.Flags().StringVar(&addAssign, "assign", "", "assignee (name or id)")
	addPersonCmd.Flags().StringVar(&addRole, "role", "", "role, e.g. design")
}

// withApp opens a headless app and runs fn with a context bounded by the
// store timeout.
func withApp(cmd *cobra.Command, fn func(ctx context.Context, a *app.App) error) error {
	a, err := openApp(false)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), a.Config.Store.Timeout)
	defer cancel()
	return fn(ctx, a)
}

func runAddProject(cmd *cobra.Command, args []string) error {
	now := time.Now()
	q, err := parseQuickAdd(strings.Join(args, " "), now, model.Priority.ValidForProject)
	if err != nil {
		return err
	}
	status := model.ProjectStatus(addStatus)
	if !status.Valid() {
		return fmt.Errorf("unknown project status %q", addStatus)
	}

	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		p, err := a.DB.CreateProject(ctx, db.NewProject{
			Name:     q.Title,
			Client:   q.Client,
			Deadline: q.Deadline,
			Priority: q.Priority,
			Status:   status,
		})
		if err != nil {
			return err
		}

		if addOwner != "" {
			person, err := a.DB.FindPerson(ctx, addOwner)
			if err != nil {
				return err
			}
			if err := a.DB.ReplaceProjectMembers(ctx, p.ID, &person.ID); err != nil {
				return err
			}
		}

		a.Logger.Info().Str("project", p.ID).Msg("project created")

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Created project: %s\n", p.Name)
		if p.Client != "" {
			fmt.Fprintf(out, "Client: %s\n", p.Client)
		}
		if p.Deadline != nil {
			fmt.Fprintf(out, "Due: %s\n", priority.DeadlineLabel(now, *p.Deadline))
		}
		fmt.Fprintf(out, "Priority: %s\n", priority.ForProject(now, p).Label())
		return nil
	})
}

func runAddTask(cmd *cobra.Command, args []string) error {
	now := time.Now()
	q, err := parseQuickAdd(strings.Join(args[1:], " "), now, model.Priority.ValidForTask)
	if err != nil {
		return err
	}

	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		project, err := a.DB.FindProject(ctx, args[0])
		if err != nil {
			return err
		}

		t, err := a.DB.CreateTask(ctx, db.NewTask{
			ProjectID: project.ID,
			Title:     q.Title,
			Deadline:  q.Deadline,
			Priority:  q.Priority,
		})
		if err != nil {
			return err
		}

		if addAssign != "" {
			person, err := a.DB.FindPerson(ctx, addAssign)
			if err != nil {
				return err
			}
			if err := a.DB.UpsertTaskAssignment(ctx, t.ID, person.ID); err != nil {
				return err
			}
		}

		a.Logger.Info().Str("task", t.ID).Str("project", project.ID).Msg("task created")

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Created task: %s (%s)\n", t.Title, project.Name)
		if t.Deadline != nil {
			fmt.Fprintf(out, "Due: %s\n", priority.DeadlineLabel(now, *t.Deadline))
		}
		if t.Priority != model.PriorityMedium {
			fmt.Fprintf(out, "Priority: %s\n", t.Priority)
		}
		return nil
	})
}

func runAddPerson(cmd *cobra.Command, args []string) error {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return fmt.Errorf("missing name")
	}

	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		p, err := a.DB.CreatePerson(ctx, name, addRole)
		if err != nil {
			return err
		}
		a.Logger.Info().Str("person", p.ID).Msg("person created")
		fmt.Fprintf(cmd.OutOrStdout(), "Created person: %s\n", p.DisplayName)
		return nil
	})
}
