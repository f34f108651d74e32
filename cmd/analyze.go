package cmd

import (
	"github.com/jsphweid/scaledex/chord"
	"github.com/spf13/cobra"
)

var topN int

func init() {
	analyzeCmd.Flags().IntVarP(&topN, "top", "n", 0, "only show the best n scales")
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze chord...",
	Short: "Lists scales that fit the chords",
	Long:  `Lists scales that fit the chords, best first. Example: analyze C:dur D:mi F:maj`,
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		analyzer, err := LoadAnalyzer()
		cobra.CheckErr(err)

		chords, err := chord.ParseAll(args, analyzer.Chords)
		cobra.CheckErr(err)

		matches, err := analyzer.Analyze(chords)
		cobra.CheckErr(err)
		printMatches(matches, topN)
	},
}
