package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/basketmine/internal/store"
	"github.com/blackwell-systems/basketmine/internal/txsource"
)

var (
	importInput string

	importCmd = &cobra.Command{
		Use:   "import",
		Short: "Import a transaction dataset into the local database",
		Long: `Parse a transaction dataset and cache it in the basketmine database.

Imported datasets can be re-mined with 'mine --from-store' and
'rules --from-store' without re-parsing the original file, and feed the
'stats' command. Importing replaces any previously imported dataset.`,
		Example: `  # Import a CSV export
  basketmine import -i baskets.csv

  # Semicolon-delimited file without an index column
  basketmine import -i plain.csv --delimiter ";" --index-column=false`,
		RunE: runImport,
	}
)

func init() {
	importCmd.Flags().StringVarP(&importInput, "input", "i", "", "transaction dataset file")
	addParsingFlags(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	if importInput == "" {
		return fmt.Errorf("no dataset given; use --input")
	}

	cfg := loadDefaults()
	applyParsingFlags(cmd, cfg)

	src := txsource.NewCSVSource(importInput)
	src.Delimiter = cfg.Delimiter
	src.IndexColumn = cfg.IndexColumn

	path, err := getDBPath()
	if err != nil {
		return err
	}
	db, err := store.New(path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.CreateSchema(); err != nil {
		return fmt.Errorf("failed to create database schema: %w", err)
	}

	count, err := db.ImportFrom(src, importInput)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	fmt.Printf("✓ Imported %d transactions from %s\n", count, importInput)
	return nil
}
