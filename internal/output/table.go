// Package output provides terminal output utilities for basketminer.
//
// This package includes:
//   - Table rendering for association rules, the item universe, and saved runs
//   - A spinner for long-running mining passes
//
// Tables use ASCII characters and ANSI color codes; color is gated on the
// output being a TTY and NO_COLOR being unset.
package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/blackwell-systems/basketminer/internal/miner"
	"github.com/blackwell-systems/basketminer/internal/store"
)

// ANSI color codes for lift display
const (
	colorReset = "\033[0m"
	colorGreen = "\033[32m"
	colorRed   = "\033[31m"
	colorGray  = "\033[90m"
)

// IsColorEnabled returns true if ANSI color codes should be emitted.
// It checks that os.Stdout is a TTY and that the NO_COLOR env var is not set.
func IsColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// colorize wraps text in the given ANSI color code if color is enabled,
// otherwise returns the plain text.
func colorize(color, text string) string {
	if IsColorEnabled() {
		return color + text + colorReset
	}
	return text
}

// RenderRuleTable renders association rules in their emitted order.
// Confidence is shown with 2 decimal places, lift with 4.
func RenderRuleTable(rules []miner.Rule) string {
	if len(rules) == 0 {
		return "No rules met the confidence threshold.\n"
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-4s %-28s %-28s %-11s %s\n",
		"#", "Antecedent", "Consequent", "Confidence", "Lift"))
	sb.WriteString(strings.Repeat("─", 84))
	sb.WriteString("\n")

	for i, rule := range rules {
		liftStr := colorize(liftColor(rule.Lift), fmt.Sprintf("%.4f", rule.Lift))
		sb.WriteString(fmt.Sprintf("%-4d %-28s %-28s %-11s %s\n",
			i+1,
			truncate(rule.Antecedent.String(), 28),
			truncate(rule.Consequent.String(), 28),
			fmt.Sprintf("%.2f", rule.Confidence),
			liftStr))
	}

	return sb.String()
}

// liftColor picks a color for a lift value: above 1 the items co-occur more
// often than independence predicts, below 1 less often.
func liftColor(lift float64) string {
	switch {
	case lift > 1:
		return colorGreen
	case lift < 1:
		return colorRed
	default:
		return colorGray
	}
}

// RenderItemTable renders the distinct item universe with singleton
// transaction counts and relative supports.
func RenderItemTable(items []miner.ItemSupport) string {
	if len(items) == 0 {
		return "No items found.\n"
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-24s %-14s %s\n", "Item", "Transactions", "Support"))
	sb.WriteString(strings.Repeat("─", 48))
	sb.WriteString("\n")

	for _, item := range items {
		sb.WriteString(fmt.Sprintf("%-24s %-14d %.2f\n",
			truncate(item.Item, 24),
			item.Count,
			item.Support))
	}

	return sb.String()
}

// RenderRunTable renders saved mining runs, newest first (the order the
// store returns them in).
func RenderRunTable(runs []*store.Run) string {
	if len(runs) == 0 {
		return "No saved runs. Use 'basketminer mine --save' to record one.\n"
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-5s %-14s %-26s %-9s %-9s %-7s %s\n",
		"ID", "When", "Source", "Support", "Conf", "Rules", "Transactions"))
	sb.WriteString(strings.Repeat("─", 86))
	sb.WriteString("\n")

	for _, run := range runs {
		sb.WriteString(fmt.Sprintf("%-5d %-14s %-26s %-9.2f %-9.2f %-7d %d\n",
			run.ID,
			humanize.Time(run.CreatedAt),
			truncate(run.Source, 26),
			run.MinSupport,
			run.MinConf,
			run.RuleCount,
			run.Transactions))
	}

	return sb.String()
}

// truncate shortens a string to maxLen characters, appending "…" if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 1 {
		return "…"
	}
	return s[:maxLen-1] + "…"
}
