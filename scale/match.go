package scale

import (
	"github.com/jsphweid/scaledex/constants"
	"github.com/jsphweid/scaledex/model"
	"github.com/jsphweid/scaledex/registry"
	"github.com/jsphweid/scaledex/tone"
)

// Accuracy is the share of the total weight that shape covers when placed on root.
func Accuracy(weights Weights, sumWeights int, shape model.ScaleShape, root tone.PitchClass) float64 {
	if sumWeights == 0 {
		return 0
	}
	numHits := 0
	for _, offset := range shape.Offsets {
		numHits += weights[root.Transpose(offset)]
	}
	return float64(numHits) / float64(sumWeights)
}

// FindScales tries every scale shape on every root and keeps the ones whose
// accuracy is above constants.RequiredAccuracy. Results come in scale order,
// then root order; duplicated shapes are scored independently.
func FindScales(chords []model.InputChord, chordShapes *registry.ChordShapes, scaleShapes []model.ScaleShape) ([]model.WeightedScaleMatch, error) {
	weights, sumWeights, err := BuildWeights(chords, chordShapes)
	if err != nil {
		return nil, err
	}

	var res []model.WeightedScaleMatch
	if sumWeights == 0 {
		return res, nil
	}

	for _, s := range scaleShapes {
		for _, root := range tone.All() {
			accuracy := Accuracy(weights, sumWeights, s, root)
			if accuracy > constants.RequiredAccuracy {
				res = append(res, model.WeightedScaleMatch{Shape: s, Root: root, Accuracy: accuracy})
			}
		}
	}
	return res, nil
}
