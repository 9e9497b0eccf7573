package app

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/basketmine/internal/output"
	"github.com/blackwell-systems/basketmine/internal/watcher"
)

var (
	watchInput    string
	watchMinsup   float64
	watchDebounce time.Duration

	watchCmd = &cobra.Command{
		Use:   "watch",
		Short: "Re-mine automatically whenever the dataset file changes",
		Long: `Watch a dataset file and re-run frequent-itemset mining every time the
file changes on disk.

Useful while an export job keeps rewriting the dataset: the frequent
itemset table refreshes after each change, without re-running the command
by hand. File events are debounced so a burst of writes triggers a single
re-mine. Runs in the foreground; press Ctrl+C to stop.`,
		Example: `  # Watch a dataset with 2% minimum support
  basketmine watch -i baskets.csv --minsup 0.02

  # Allow slow writers a longer settle window
  basketmine watch -i baskets.csv --minsup 0.02 --debounce 2s`,
		RunE: runWatch,
	}
)

func init() {
	watchCmd.Flags().StringVarP(&watchInput, "input", "i", "", "transaction dataset file")
	watchCmd.Flags().Float64Var(&watchMinsup, "minsup", 0, "minimum support ratio in (0,1] (default from config)")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watcher.DefaultDebounce, "settle window after a file change")
	addParsingFlags(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if watchInput == "" {
		return fmt.Errorf("no dataset given; use --input")
	}

	cfg := loadDefaults()
	applyParsingFlags(cmd, cfg)
	if cmd.Flags().Changed("minsup") {
		cfg.MinSupport = watchMinsup
	}

	mineOnce := func() {
		src, closeSrc, err := openSource(watchInput, false, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "watch: %v\n", err)
			return
		}
		defer closeSrc()

		res, err := mineDataset(src, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "watch: mining failed: %v\n", err)
			return
		}
		fmt.Printf("\n[%s] %s re-mined\n", time.Now().Format("15:04:05"), watchInput)
		fmt.Print(output.RenderItemsetTable(res))
		fmt.Printf("%d frequent itemsets in %d transactions (minsup %.4f)\n",
			len(res.Itemsets), res.N, cfg.MinSupport)
	}

	// Initial run before any change arrives.
	mineOnce()

	w, err := watcher.New(watchInput, watchDebounce, mineOnce)
	if err != nil {
		return err
	}
	if err := w.Start(); err != nil {
		return err
	}

	fmt.Printf("Watching %s for changes (Ctrl+C to stop)...\n", watchInput)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	fmt.Println("\nStopping watch...")
	return w.Stop()
}
