package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/basketmine/internal/mining"
	"github.com/blackwell-systems/basketmine/internal/output"
)

var (
	rulesInput     string
	rulesMinsup    float64
	rulesMinconf   float64
	rulesFromStore bool

	rulesCmd = &cobra.Command{
		Use:   "rules",
		Short: "Derive confident association rules from a transaction dataset",
		Long: `Mine frequent itemsets, then derive every association rule whose
confidence strictly exceeds the minimum.

A rule "antecedent => consequent" means transactions containing the
antecedent tend to contain the consequent too; its confidence is the
support of the full itemset divided by the support of the antecedent.
Consequents are grown level-wise, mirroring the itemset search, and every
support count the derivation needs is already cached by the mining pass,
so no extra dataset scans are made.`,
		Example: `  # Rules with 2% support and 60% confidence
  basketmine rules -i baskets.csv --minsup 0.02 --minconf 0.6

  # Derive from the imported dataset
  basketmine rules --from-store --minsup 0.02 --minconf 0.5`,
		RunE: runRules,
	}
)

func init() {
	rulesCmd.Flags().StringVarP(&rulesInput, "input", "i", "", "transaction dataset file")
	rulesCmd.Flags().Float64Var(&rulesMinsup, "minsup", 0, "minimum support ratio in (0,1] (default from config)")
	rulesCmd.Flags().Float64Var(&rulesMinconf, "minconf", 0, "minimum rule confidence in (0,1] (default from config)")
	rulesCmd.Flags().BoolVar(&rulesFromStore, "from-store", false, "mine the imported dataset instead of a file")
	addParsingFlags(rulesCmd)
}

func runRules(cmd *cobra.Command, args []string) error {
	cfg := loadDefaults()
	applyParsingFlags(cmd, cfg)
	if cmd.Flags().Changed("minsup") {
		cfg.MinSupport = rulesMinsup
	}
	if cmd.Flags().Changed("minconf") {
		cfg.MinConfidence = rulesMinconf
	}

	src, closeSrc, err := openSource(rulesInput, rulesFromStore, cfg)
	if err != nil {
		return err
	}
	defer closeSrc()

	res, err := mineDataset(src, cfg)
	if err != nil {
		return err
	}

	rules, err := mining.DeriveAllRules(res, cfg.MinConfidence)
	if err != nil {
		return err
	}

	fmt.Print(output.RenderRuleTable(rules))
	fmt.Printf("%d confident rules from %d frequent itemsets (minsup %.4f, minconf %.4f)\n",
		len(rules), len(res.Itemsets), cfg.MinSupport, cfg.MinConfidence)
	return nil
}
