// Package output provides terminal output utilities for basketmine:
// result tables for frequent itemsets, association rules and dataset
// statistics, plus progress indicators for long dataset scans.
package output

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/blackwell-systems/basketmine/internal/mining"
	"github.com/blackwell-systems/basketmine/internal/store"
)

// RenderItemsetTable renders the frequent itemsets of a mining result,
// one row per itemset in result order (levels in increasing size).
func RenderItemsetTable(res *mining.Result) string {
	if res == nil || len(res.Itemsets) == 0 {
		return "No frequent itemsets found.\n"
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Size", "Itemset", "Count", "Support"})
	for _, s := range res.Itemsets {
		t.AppendRow(table.Row{
			len(s),
			s.String(),
			res.SupportOf(s),
			fmt.Sprintf("%.4f", res.Ratio(s)),
		})
	}
	return t.Render() + "\n"
}

// RenderRuleTable renders confident association rules, one per row.
func RenderRuleTable(rules []mining.Rule) string {
	if len(rules) == 0 {
		return "No confident rules found.\n"
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Antecedent", "Consequent", "Confidence", "Support"})
	for _, r := range rules {
		t.AppendRow(table.Row{
			r.Antecedent.String(),
			r.Consequent.String(),
			fmt.Sprintf("%.4f", r.Confidence),
			fmt.Sprintf("%.4f", r.Support),
		})
	}
	return t.Render() + "\n"
}

// RenderDatasetStats renders import metadata and the most frequent items.
func RenderDatasetStats(info *store.DatasetInfo, top []store.ItemCount) string {
	if info == nil {
		return "No dataset imported.\n"
	}

	out := fmt.Sprintf("Dataset: %s (imported %s)\nTransactions: %d\nDistinct items: %d\n",
		info.SourcePath,
		info.ImportedAt.Format("2006-01-02 15:04"),
		info.Transactions,
		info.DistinctItems,
	)
	if len(top) == 0 {
		return out
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Item", "Count", "Ratio"})
	for _, ic := range top {
		ratio := 0.0
		if info.Transactions > 0 {
			ratio = float64(ic.Count) / float64(info.Transactions)
		}
		t.AppendRow(table.Row{ic.Item, ic.Count, fmt.Sprintf("%.4f", ratio)})
	}
	return out + "\nTop items:\n" + t.Render() + "\n"
}
