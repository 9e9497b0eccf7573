package app

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/blackwell-systems/basketmine/internal/config"
	"github.com/blackwell-systems/basketmine/internal/logging"
	"github.com/blackwell-systems/basketmine/internal/mining"
	"github.com/blackwell-systems/basketmine/internal/output"
	"github.com/blackwell-systems/basketmine/internal/store"
	"github.com/blackwell-systems/basketmine/internal/txsource"
)

// loadDefaults loads the user config file, falling back to shipped
// defaults when the file is missing or the config dir cannot be resolved.
func loadDefaults() *config.Config {
	dir, err := config.Dir()
	if err != nil {
		return config.Defaults()
	}
	cfg, err := config.Load(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v, using defaults\n", err)
		return config.Defaults()
	}
	return cfg
}

// newLogger builds the miner's diagnostic logger based on --verbose.
func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	log, err := logging.New("debug")
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v, logging disabled\n", err)
		return zap.NewNop()
	}
	return log
}

// addParsingFlags registers the dataset-format flags shared by every
// command that reads a dataset file.
func addParsingFlags(cmd *cobra.Command) {
	cmd.Flags().String("delimiter", ",", "item field delimiter (default from config)")
	cmd.Flags().Bool("index-column", true, "treat the first field as a transaction sequence number (default from config)")
}

// applyParsingFlags folds explicitly-set dataset-format flags into cfg;
// unset flags leave the config-file values in place.
func applyParsingFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("delimiter") {
		cfg.Delimiter, _ = cmd.Flags().GetString("delimiter")
	}
	if cmd.Flags().Changed("index-column") {
		cfg.IndexColumn, _ = cmd.Flags().GetBool("index-column")
	}
}

// openSource resolves the transaction source for mining commands: the CSV
// file named by input, or the imported dataset when fromStore is set. The
// returned closer releases any backing resource.
func openSource(input string, fromStore bool, cfg *config.Config) (mining.Source, func(), error) {
	if fromStore {
		path, err := getDBPath()
		if err != nil {
			return nil, nil, err
		}
		db, err := store.New(path)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open database: %w", err)
		}
		if err := db.CreateSchema(); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("failed to create database schema: %w", err)
		}
		count, err := db.CountTransactions()
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		if count == 0 {
			db.Close()
			return nil, nil, fmt.Errorf("no dataset imported; run 'basketmine import -i <dataset>' first")
		}
		return db.Source(), func() { db.Close() }, nil
	}

	if input == "" {
		return nil, nil, fmt.Errorf("no dataset given; use --input or --from-store")
	}
	src := txsource.NewCSVSource(input)
	src.Delimiter = cfg.Delimiter
	src.IndexColumn = cfg.IndexColumn
	return src, func() {}, nil
}

// mineDataset runs the level-wise search with a spinner on interactive
// terminals.
func mineDataset(src mining.Source, cfg *config.Config) (*mining.Result, error) {
	mcfg := mining.Config{
		MinSupport:    cfg.MinSupport,
		MinConfidence: cfg.MinConfidence,
		Logger:        newLogger(),
	}

	var spinner *output.Spinner
	if !noProgress && isatty.IsTerminal(os.Stdout.Fd()) {
		spinner = output.NewSpinner("Scanning transactions...")
		mcfg.Progress = func(done int) {
			if done%5000 == 0 {
				spinner.UpdateMessage(fmt.Sprintf("Scanning transactions... %d records", done))
			}
		}
		spinner.Start()
	}

	m, err := mining.NewMiner(src, mcfg)
	if err != nil {
		if spinner != nil {
			spinner.Stop()
		}
		return nil, err
	}

	res, err := m.Mine()
	if spinner != nil {
		spinner.Stop()
	}
	return res, err
}
