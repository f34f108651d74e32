package scale

import (
	"github.com/jsphweid/scaledex/model"
	"github.com/jsphweid/scaledex/registry"
	"github.com/jsphweid/scaledex/tone"
	"github.com/pkg/errors"
)

var ErrScaleNotFound = errors.New("scale not found")

// Analyzer ties the chord registry, loaded once, to a scale source that is
// read again on every call.
type Analyzer struct {
	Chords *registry.ChordShapes
	Scales registry.ScaleSource
}

func NewAnalyzer(chords *registry.ChordShapes, scales registry.ScaleSource) *Analyzer {
	return &Analyzer{Chords: chords, Scales: scales}
}

// Analyze returns the ranked scales that fit chords.
func (a *Analyzer) Analyze(chords []model.InputChord) ([]model.WeightedScaleMatch, error) {
	scales, err := a.Scales.LoadScales()
	if err != nil {
		return nil, err
	}
	matches, err := FindScales(chords, a.Chords, scales)
	if err != nil {
		return nil, err
	}
	return Rank(matches), nil
}

// Scale places the first scale called name on root. Its accuracy is scored
// against chords, or 1 when there are none.
func (a *Analyzer) Scale(root tone.PitchClass, name string, chords []model.InputChord) (model.WeightedScaleMatch, error) {
	scales, err := a.Scales.LoadScales()
	if err != nil {
		return model.WeightedScaleMatch{}, err
	}
	for _, s := range scales {
		if s.Name != name {
			continue
		}
		match := model.WeightedScaleMatch{Shape: s, Root: root, Accuracy: 1}
		if len(chords) > 0 {
			weights, sumWeights, err := BuildWeights(chords, a.Chords)
			if err != nil {
				return model.WeightedScaleMatch{}, err
			}
			match.Accuracy = Accuracy(weights, sumWeights, s, root)
		}
		return match, nil
	}
	return model.WeightedScaleMatch{}, errors.Wrapf(ErrScaleNotFound, "%q", name)
}

func (a *Analyzer) SuitableChords(match model.WeightedScaleMatch) []model.DegreeChords {
	return FindSuitableChords(match, a.Chords)
}
