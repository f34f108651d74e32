package scale

import (
	"github.com/jsphweid/scaledex/constants"
	"github.com/jsphweid/scaledex/model"
	"github.com/jsphweid/scaledex/registry"
	"github.com/jsphweid/scaledex/tone"
	"github.com/jsphweid/scaledex/util"
	"github.com/pkg/errors"
)

var ErrShapeNotFound = errors.New("chord shape not found")

// Weights holds the importance of every pitch class for a set of chords:
// 0 if unused, 1 for a chord tone, RootWeight for a chord root.
type Weights [tone.NumPitchClasses]int

func (w Weights) Sum() int {
	return int(util.Sum(w[:]))
}

// BuildWeights fails with ErrShapeNotFound if a chord names an unknown shape.
func BuildWeights(chords []model.InputChord, shapes *registry.ChordShapes) (Weights, int, error) {
	var weights Weights
	for _, c := range chords {
		shape, ok := shapes.Get(c.Shape)
		if !ok {
			return Weights{}, 0, errors.Wrapf(ErrShapeNotFound, "%q in chord %v", c.Shape, c)
		}

		root := int(c.Root.Transpose(0))
		weights[root] = util.Max(weights[root], constants.RootWeight)

		// non-root tones only ever fill empty slots, they never add up
		for _, offset := range shape.Offsets {
			p := c.Root.Transpose(offset)
			if weights[p] < 1 {
				weights[p] = 1
			}
		}
	}
	return weights, weights.Sum(), nil
}
