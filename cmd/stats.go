package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pavannsshetty7022/abbrevify/internal/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print usage statistics",
	Long:  `Display the locally tracked conversion and check counters.`,
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	c := stats.Load(cfg.StatsPath()).Counters()

	rows := []struct {
		label string
		value int
	}{
		{"Total Conversions", c.TotalConversions},
		{"SMS to Full", c.SmsToFullCount},
		{"Full to SMS", c.FullToSmsCount},
		{"Grammar Checks", c.GrammarCheckCount},
		{"Plagiarism Checks", c.PlagiarismCheckCount},
	}

	// Find max label length for alignment
	maxLen := 0
	for _, row := range rows {
		if len(row.label) > maxLen {
			maxLen = len(row.label)
		}
	}
	for _, row := range rows {
		fmt.Printf("  %-*s  %d\n", maxLen, row.label, row.value)
	}
	return nil
}
