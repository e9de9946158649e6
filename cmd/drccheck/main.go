// Command drccheck is the minimal demonstration driver for the DRC core:
// it reads a JSON board snapshot and a YAML settings file, runs drc.Run,
// and prints the textual report and exit code spec.md §6 specifies. It is
// a compatibility surface, not a project file format or full CLI parser
// (spec.md §1 Non-goals).
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/boarddrc/drc/approval"
	"github.com/boarddrc/drc/config"
	"github.com/boarddrc/drc/drc"
)

var (
	settingsPath string
	approvedPath string
	quick        bool
)

// errReportedFailure signals "the report printed to stdout already
// explains the exit-1 condition" — main must not also print it to
// stderr, only translate it into the exit-code contract spec.md §6
// specifies.
var errReportedFailure = errors.New("drccheck: board has non-approved messages or a fatal run error")

var rootCmd = &cobra.Command{
	Use:   "drccheck <board.json>",
	Short: "Run the board design rule checker against a JSON board snapshot",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.Flags().StringVar(&settingsPath, "settings", "", "path to a YAML settings file (required)")
	rootCmd.Flags().StringVar(&approvedPath, "approved", "", "path to a JSON array of approved canonical approval keys")
	rootCmd.Flags().BoolVar(&quick, "quick", false, "run only the quick-subset checks")
	_ = rootCmd.MarkFlagRequired("settings")
}

func runCheck(cmd *cobra.Command, args []string) error {
	boardPath := args[0]

	cfg, err := config.Load(settingsPath)
	if err != nil {
		return err
	}
	settings, err := cfg.ToSettings()
	if err != nil {
		return err
	}

	snap, graph, err := loadSnapshot(boardPath)
	if err != nil {
		return err
	}

	approvedKeys, err := loadApprovedKeys(approvedPath)
	if err != nil {
		return err
	}

	outcome := drc.Run(snap.Model, graph, settings, quick, nil, drc.NopReporter{})

	fatal := false
	for _, s := range outcome.StatusLog {
		if strings.HasPrefix(s, "fatal:") {
			fatal = true
		}
	}

	approvedCount, remaining := approval.Resolve(outcome.Messages, approvedKeys)
	remaining = approval.SortForPresentation(remaining)

	name := snap.BoardName
	if name == "" {
		name = boardPath
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Board '%s':\n", name)
	fmt.Fprintf(out, "Approved messages: %d\n", approvedCount)
	fmt.Fprintf(out, "Non-approved messages: %d\n", len(remaining))
	for _, m := range remaining {
		fmt.Fprintf(out, "  [%s] %s\n", m.Severity.String(), m.Text)
	}

	if len(remaining) > 0 || fatal {
		return errReportedFailure
	}
	return nil
}

func main() {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errReportedFailure) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
