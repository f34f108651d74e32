package cmd

import (
	"fmt"

	"github.com/jsphweid/scaledex/chord"
	"github.com/jsphweid/scaledex/midi"
	"github.com/jsphweid/scaledex/model"
	"github.com/jsphweid/scaledex/registry"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect chords|scales|file.mid",
	Short: "Inspects the registries or a MIDI file",
	Long:  `Prints the loaded chord or scale shapes, or the notes of a MIDI file.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cobra.CheckErr(inspect(args[0]))
	},
}

func printPattern(p model.IntervalPattern) {
	fmt.Println(registry.FormatRecord(p))
}

func inspect(what string) error {
	switch what {
	case "chords", "scales":
		analyzer, err := LoadAnalyzer()
		if err != nil {
			return err
		}
		if what == "chords" {
			for _, c := range analyzer.Chords.All() {
				printPattern(c.IntervalPattern)
			}
			return nil
		}
		scales, err := analyzer.Scales.LoadScales()
		if err != nil {
			return err
		}
		for _, s := range scales {
			printPattern(s.IntervalPattern)
		}
		return nil
	default:
		s, err := midi.ReadMidiFile(what)
		if err != nil {
			return err
		}
		notes := midi.NoteSequence(s)
		fmt.Printf("sorted: %v\n", chord.CreateChordKey(append([]uint8(nil), notes...)))
		fmt.Printf("sequence: %v\n", notes)
		return nil
	}
}
