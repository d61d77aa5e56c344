// Package cli wires the cobra command tree. The bare `riseshine`
// command launches the TUI; subcommands cover the non-interactive
// paths (history, goal, undo) for scripts and quick checks.
package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/kingrea/riseshine/internal/clock"
	"github.com/kingrea/riseshine/internal/config"
	"github.com/kingrea/riseshine/internal/logbook"
	"github.com/kingrea/riseshine/internal/record"
	"github.com/kingrea/riseshine/internal/tui"
)

var homeFlag string

// env bundles everything a command needs. Callers must Close it.
type env struct {
	cfg   *config.Config
	store record.Store
	book  *logbook.Logbook
}

func (e *env) Close() error { return e.store.Close() }

func openEnv() (*env, error) {
	cfg, err := config.Load(homeFlag)
	if err != nil {
		return nil, err
	}
	book, err := logbook.New(cfg.LogPath())
	if err != nil {
		return nil, err
	}
	store, err := record.Open(cfg, clock.System{}, book)
	if err != nil {
		return nil, err
	}
	return &env{cfg: cfg, store: store, book: book}, nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "riseshine",
		Short: "Record your wake-up time by passing a morning challenge",
		Long: "riseshine gates each day's wake-up record behind a small\n" +
			"challenge (math, memory, colors, word scramble or a riddle),\n" +
			"so the record proves you were actually awake.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.Close()

			app := tui.NewApp(e.cfg, e.store, e.book)
			p := tea.NewProgram(app, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run tui: %w", err)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&homeFlag, "home", "",
		"app home directory (default $"+config.HomeEnv+" or ~/"+config.AppDirName+")")

	root.AddCommand(newHistoryCmd(), newGoalCmd(), newUndoCmd())
	return root
}

func newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Print every recorded wake-up",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.Close()

			history, err := e.store.History()
			if err != nil {
				return err
			}
			if len(history) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no wake-ups recorded yet")
				return nil
			}
			goal, err := e.store.Goal()
			if err != nil {
				return err
			}
			for _, rec := range history {
				mark := " "
				if record.GoalMet(rec, goal) {
					mark = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s  %s\n",
					mark, rec.Timestamp.Local().Format("2006-01-02 15:04"), rec.Game)
			}
			return nil
		},
	}
}

func newGoalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "goal [HH:MM]",
		Short: "Show or set the daily wake-up goal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.Close()

			if len(args) == 0 {
				goal, err := e.store.Goal()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), goal)
				return nil
			}
			goal := strings.TrimSpace(args[0])
			if err := e.store.SetGoal(goal); err != nil {
				return err
			}
			e.book.Info("Goal set to %s", goal)
			fmt.Fprintf(cmd.OutOrStdout(), "goal set to %s\n", goal)
			return nil
		},
	}
}

func newUndoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "undo",
		Short: "Remove today's wake-up record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.Close()

			if _, ok, err := e.store.TodaysRecord(); err != nil {
				return err
			} else if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "nothing recorded today")
				return nil
			}
			if err := e.store.RemoveToday(); err != nil {
				return err
			}
			e.book.Info("Today's wake-up record removed")
			fmt.Fprintln(cmd.OutOrStdout(), "today's record removed")
			return nil
		},
	}
}

// Execute runs the command tree.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "riseshine: %v\n", err)
		os.Exit(1)
	}
}
