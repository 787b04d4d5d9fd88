package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dori/tablero/internal/app"
	"github.com/dori/tablero/internal/ui/views"
	"github.com/spf13/cobra"
)

var peopleCmd = &cobra.Command{
	Use:   "people",
	Short: "List people and how many projects each one owns",
	Args:  cobra.NoArgs,
	RunE:  runPeople,
}

var listAll bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects with their owners",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(peopleCmd, listCmd)
	listCmd.Flags().BoolVar(&listAll, "all", false, "include completed projects")
}

func runPeople(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		people, err := a.DB.ListPeople(ctx)
		if err != nil {
			return err
		}
		projects, err := a.DB.ListProjects(ctx, false)
		if err != nil {
			return err
		}

		load := views.Workload(projects)
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tROLE\tPROJECTS")
		for _, p := range people {
			fmt.Fprintf(w, "%s\t%s\t%d\n", p.DisplayName, p.Role, load[p.ID])
		}
		return w.Flush()
	})
}

func runList(cmd *cobra.Command, args []string) error {
	return withApp(cmd, func(ctx context.Context, a *app.App) error {
		projects, err := a.DB.ListProjects(ctx, listAll)
		if err != nil {
			return err
		}
		people, err := a.DB.ListPeople(ctx)
		if err != nil {
			return err
		}
		names := make(map[string]string, len(people))
		for _, p := range people {
			names[p.ID] = p.DisplayName
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tSTATUS\tPRIORITY\tPROGRESS\tOWNERS")
		for _, p := range projects {
			var owners []string
			for _, id := range p.Members {
				owners = append(owners, names[id])
			}
			if len(owners) == 0 {
				owners = []string{"-"}
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%d%%\t%s\n", p.Name, p.Status, p.Priority, p.Progress, strings.Join(owners, ", "))
		}
		return w.Flush()
	})
}
