package cmd

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jsphweid/scaledex/midi"
	"github.com/jsphweid/scaledex/tone"
	"github.com/spf13/cobra"
)

var exportPath string

func init() {
	exportCmd.Flags().StringVarP(&exportPath, "out", "o", "", "file to write, defaults to a random name")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export root scale",
	Short: "Writes a scale as a MIDI file",
	Long:  `Writes a scale as a MIDI file, one note every 300ms from the root up to its octave.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		analyzer, err := LoadAnalyzer()
		cobra.CheckErr(err)

		root, err := tone.Parse(args[0])
		cobra.CheckErr(err)
		match, err := analyzer.Scale(root, args[1], nil)
		cobra.CheckErr(err)

		path := exportPath
		if path == "" {
			path = uuid.New().String() + ".mid"
		}
		cobra.CheckErr(midi.WriteScaleFile(path, match))
		fmt.Printf("Wrote %v to %v\n", match.Name(), path)
	},
}
