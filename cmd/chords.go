package cmd

import (
	"fmt"

	"github.com/jsphweid/scaledex/chord"
	"github.com/jsphweid/scaledex/tone"
	"github.com/spf13/cobra"
)

var withChords []string

func init() {
	chordsCmd.Flags().StringSliceVarP(&withChords, "with", "w", nil, "score the scale against these chords")
	rootCmd.AddCommand(chordsCmd)
}

var chordsCmd = &cobra.Command{
	Use:   "chords root scale",
	Short: "Lists chords that fit a scale",
	Long:  `Lists chords that fit on every degree of a scale. Example: chords F major`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		analyzer, err := LoadAnalyzer()
		cobra.CheckErr(err)

		root, err := tone.Parse(args[0])
		cobra.CheckErr(err)
		with, err := chord.ParseAll(withChords, analyzer.Chords)
		cobra.CheckErr(err)

		match, err := analyzer.Scale(root, args[1], with)
		cobra.CheckErr(err)

		fmt.Printf("%v (%d%%)\n", match.Name(), match.Percent())
		fmt.Printf("Tones:     %v\n", toneNames(match))
		fmt.Printf("Mask:      %v\n", match.Mask())
		fmt.Printf("Intervals: %v\n", match.Intervals())
		printSuitableChords(analyzer.SuitableChords(match))
	},
}
