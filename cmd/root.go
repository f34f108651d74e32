package cmd

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/jsphweid/scaledex/constants"
	"github.com/jsphweid/scaledex/db"
	"github.com/jsphweid/scaledex/model"
	"github.com/jsphweid/scaledex/registry"
	"github.com/jsphweid/scaledex/scale"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "scaledex",
	Short: "Finds scales that fit a set of chords",
	Long: `Finds scales that fit a set of chords and the chords that fit a scale.
Chords are written as root:shape, e.g. C:dur D:mi F:maj.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// a missing .env is fine, the environment is used as is
		_ = godotenv.Load()
	},
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func scaleSource() (registry.ScaleSource, error) {
	if table := constants.GetScalesTable(); table != "" {
		return db.NewScaleTable(table, constants.GetDynamoEndpoint(), constants.GetAWSRegion())
	}
	return registry.FileScaleSource{Path: constants.GetScalesPath()}, nil
}

func LoadAnalyzer() (*scale.Analyzer, error) {
	chords, err := registry.LoadChordShapes(constants.GetChordsPath())
	if err != nil {
		return nil, err
	}
	scales, err := scaleSource()
	if err != nil {
		return nil, err
	}
	return scale.NewAnalyzer(chords, scales), nil
}

func toneNames(m model.WeightedScaleMatch) string {
	var names []string
	for _, t := range m.Tones() {
		names = append(names, t.String())
	}
	return strings.Join(names, " ")
}

func printMatches(matches []model.WeightedScaleMatch, top int) {
	if len(matches) == 0 {
		fmt.Println("No scale fits these chords")
		return
	}
	for i, m := range matches {
		if top > 0 && i >= top {
			break
		}
		fmt.Printf("%3d%%  %-24s %-24s %v\n", m.Percent(), m.Name(), toneNames(m), m.Mask())
	}
}

func printSuitableChords(groups []model.DegreeChords) {
	for _, g := range groups {
		var names []string
		for _, c := range g.Chords {
			names = append(names, c.String())
		}
		fmt.Printf("%2d: %v\n", g.Degree, strings.Join(names, ", "))
	}
}
