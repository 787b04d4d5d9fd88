package main

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/dori/tablero/internal/ui"
	"github.com/dori/tablero/internal/ui/theme"
	"github.com/spf13/cobra"
)

var (
	viewFlag    string
	themeFlag   string
	projectFlag string
	allFlag     bool
)

func init() {
	f := rootCmd.Flags()
	f.StringVar(&viewFlag, "view", "", "starting view (grid, board, people, list, tasks)")
	f.StringVar(&themeFlag, "theme", "", "theme name ("+themeNames()+")")
	f.StringVar(&projectFlag, "project", "", "open the task board of this project (name or id)")
	f.BoolVar(&allFlag, "all", false, "include completed projects")
}

func themeNames() string {
	var names []string
	for _, t := range theme.Available() {
		names = append(names, t.Name)
	}
	return strings.Join(names, ", ")
}

func findTheme(name string) (theme.Theme, error) {
	t, ok := theme.ByName(strings.ToLower(name))
	if !ok {
		return theme.Theme{}, fmt.Errorf("unknown theme %q (available: %s)", name, themeNames())
	}
	return t, nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	application, err := openApp(true)
	if err != nil {
		return err
	}
	defer application.Close()

	cfg := application.Config

	name := cfg.Theme
	if themeFlag != "" {
		name = themeFlag
	}
	t, err := findTheme(name)
	if err != nil {
		return err
	}
	theme.SetTheme(t)

	viewName := cfg.View
	if viewFlag != "" {
		viewName = viewFlag
	}
	view, ok := ui.ParseView(viewName)
	if !ok {
		return fmt.Errorf("unknown view %q", viewName)
	}

	opts := ui.Options{View: view, IncludeCompleted: allFlag}
	if projectFlag != "" {
		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Store.Timeout)
		defer cancel()
		p, err := application.DB.FindProject(ctx, projectFlag)
		if err != nil {
			return err
		}
		opts.Project = p.ID
		if viewFlag == "" {
			opts.View = ui.ViewTasks
		}
	}

	application.Logger.Info().Str("view", opts.View.String()).Str("theme", t.Name).Msg("dashboard starting")

	p := tea.NewProgram(
		ui.NewRootModel(application, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}
