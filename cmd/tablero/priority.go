package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/dori/tablero/internal/app"
	"github.com/dori/tablero/internal/model"
	"github.com/dori/tablero/internal/priority"
	"github.com/spf13/cobra"
)

var (
	priorityDue    string
	priorityManual string
)

var priorityCmd = &cobra.Command{
	Use:   "priority [project]",
	Short: "Show the effective priority of a project or of a deadline",
	Long: `With a project name or id, prints the project's effective priority.
Without one, computes it from --due and --manual:

  tablero priority --due friday
  tablero priority --due 2026-03-01 --manual low`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPriority,
}

func init() {
	rootCmd.AddCommand(priorityCmd)
	priorityCmd.Flags().StringVar(&priorityDue, "due", "", "deadline (same syntax as due: in quick add)")
	priorityCmd.Flags().StringVar(&priorityManual, "manual", "auto", "manual priority")
}

func runPriority(cmd *cobra.Command, args []string) error {
	now := time.Now()

	if len(args) == 1 {
		return withApp(cmd, func(ctx context.Context, a *app.App) error {
			p, err := a.DB.FindProject(ctx, args[0])
			if err != nil {
				return err
			}
			printPriority(cmd.OutOrStdout(), now, p.Deadline, p.Priority)
			return nil
		})
	}

	manual, ok := model.ParsePriority(priorityManual)
	if !ok || !manual.ValidForProject() {
		return fmt.Errorf("invalid manual priority %q", priorityManual)
	}

	var deadline *time.Time
	if priorityDue != "" {
		if deadline = parseNaturalDate(priorityDue, now); deadline == nil {
			return fmt.Errorf("cannot understand due date %q", priorityDue)
		}
	}

	printPriority(cmd.OutOrStdout(), now, deadline, manual)
	return nil
}

func printPriority(w io.Writer, now time.Time, deadline *time.Time, manual model.Priority) {
	eff := priority.Effective(now, deadline, manual)
	fmt.Fprintf(w, "%s (%s)\n", eff, priority.Bucket(eff).Label())
	if deadline != nil {
		fmt.Fprintln(w, priority.DeadlineLabel(now, *deadline))
	} else {
		fmt.Fprintln(w, "no deadline")
	}
}
