package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/basketmine/internal/output"
)

var (
	mineInput     string
	mineMinsup    float64
	mineFromStore bool

	mineCmd = &cobra.Command{
		Use:   "mine",
		Short: "Mine frequent itemsets from a transaction dataset",
		Long: `Mine every frequent itemset from a transaction dataset using level-wise
Apriori search.

An itemset is frequent when the fraction of transactions containing it
strictly exceeds the minimum support ratio. The dataset is scanned once per
itemset size, so large files work without being loaded into memory.

The minimum support comes from --minsup, or from the config file
(~/.config/basketmine/config.yaml) when the flag is not set.`,
		Example: `  # Mine a CSV export with 2% minimum support
  basketmine mine -i baskets.csv --minsup 0.02

  # Mine the imported dataset instead of a file
  basketmine mine --from-store --minsup 0.02

  # Dataset without a leading transaction-number column
  basketmine mine -i plain.csv --minsup 0.05 --index-column=false`,
		RunE: runMine,
	}
)

func init() {
	mineCmd.Flags().StringVarP(&mineInput, "input", "i", "", "transaction dataset file")
	mineCmd.Flags().Float64Var(&mineMinsup, "minsup", 0, "minimum support ratio in (0,1] (default from config)")
	mineCmd.Flags().BoolVar(&mineFromStore, "from-store", false, "mine the imported dataset instead of a file")
	addParsingFlags(mineCmd)
}

func runMine(cmd *cobra.Command, args []string) error {
	cfg := loadDefaults()
	applyParsingFlags(cmd, cfg)
	if cmd.Flags().Changed("minsup") {
		cfg.MinSupport = mineMinsup
	}

	src, closeSrc, err := openSource(mineInput, mineFromStore, cfg)
	if err != nil {
		return err
	}
	defer closeSrc()

	res, err := mineDataset(src, cfg)
	if err != nil {
		return err
	}

	fmt.Print(output.RenderItemsetTable(res))
	fmt.Printf("%d frequent itemsets in %d transactions (minsup %.4f)\n",
		len(res.Itemsets), res.N, cfg.MinSupport)
	return nil
}
