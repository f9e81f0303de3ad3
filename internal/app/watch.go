package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/basketlift/internal/analyzer"
	"github.com/blackwell-systems/basketlift/internal/basket"
	"github.com/blackwell-systems/basketlift/internal/output"
)

// watchDebounce coalesces the bursts of write events editors and
// appenders produce into a single re-evaluation.
const watchDebounce = 250 * time.Millisecond

var (
	watchCSV  string
	watchRule string

	watchCmd = &cobra.Command{
		Use:   "watch",
		Short: "Re-evaluate a rule whenever a transactions CSV changes",
		Long: `Watch a transactions CSV and re-evaluate a rule each time the file is
written, printing the refreshed metrics.

The command runs in the foreground until interrupted with Ctrl+C. The
rule is evaluated once on startup, then again after every change. A load
or parse failure on a rewrite (for example a half-written file) is
reported and the previous result stands until the next change.`,
		Example: `  # Re-evaluate on every change to the CSV
  basketlift watch --csv transactions.csv --rule "bread -> butter"`,
		RunE: runWatch,
	}
)

func init() {
	watchCmd.Flags().StringVar(&watchCSV, "csv", "", "transactions CSV to watch (required)")
	watchCmd.Flags().StringVar(&watchRule, "rule", "", "rule to evaluate (required)")
	watchCmd.MarkFlagRequired("csv")
	watchCmd.MarkFlagRequired("rule")

	// Register with root command
	RootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	// Evaluate once up front so a bad rule or missing file fails fast.
	if err := evaluateOnce(watchCSV, watchRule); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(watchCSV); err != nil {
		return fmt.Errorf("failed to watch %s: %w", watchCSV, err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	fmt.Printf("\nWatching %s (Ctrl+C to stop)\n", watchCSV)

	var debounce *time.Timer
	var debounceCh <-chan time.Time
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Rename/Remove cover editors that replace the file on save;
			// the re-watch after the debounce picks up the new inode.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}
			if debounce == nil {
				debounce = time.NewTimer(watchDebounce)
				debounceCh = debounce.C
			} else {
				debounce.Reset(watchDebounce)
			}

		case <-debounceCh:
			debounce = nil
			debounceCh = nil
			fmt.Printf("\n%s changed, re-evaluating\n\n", watchCSV)
			if err := evaluateOnce(watchCSV, watchRule); err != nil {
				fmt.Fprintf(os.Stderr, "watch: %v\n", err)
			}
			// Some editors replace the file on save, dropping the watch.
			watcher.Remove(watchCSV)
			if err := watcher.Add(watchCSV); err != nil {
				return fmt.Errorf("failed to re-watch %s: %w", watchCSV, err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch: %v\n", err)

		case sig := <-sigCh:
			fmt.Printf("\nReceived %v, stopping\n", sig)
			return nil
		}
	}
}

// evaluateOnce loads the CSV, evaluates the rule, and prints the result.
func evaluateOnce(csvPath, ruleExpr string) error {
	coll, err := basket.LoadCSV(csvPath)
	if err != nil {
		return err
	}

	res, err := analyzer.EvaluateRule(coll, ruleExpr)
	if err != nil {
		return err
	}

	fmt.Print(output.RenderResult(res))
	return nil
}
