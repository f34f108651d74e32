package model

import (
	"testing"

	"github.com/jsphweid/scaledex/tone"
	"github.com/stretchr/testify/assert"
)

func TestWeightedScaleMatchDerivedValues(t *testing.T) {
	m := WeightedScaleMatch{
		Shape:    NewScaleShape("major", 0, 2, 4, 5, 7, 9, 11),
		Root:     tone.F,
		Accuracy: 0.9166666666666666,
	}

	assert := assert.New(t)
	assert.Equal("F major", m.Name())
	assert.Equal(91, m.Percent())
	assert.Equal([]tone.PitchClass{tone.F, tone.G, tone.A, tone.BFlat, tone.C, tone.D, tone.E}, m.Tones())
	assert.Equal([]int{0, 2, 2, 1, 2, 2, 2}, m.Intervals())
	assert.Equal("0 - 2 - 4 - 5 - 7 - 9 - 11", m.Mask())
}

func TestPercentTruncates(t *testing.T) {
	assert.Equal(t, 77, WeightedScaleMatch{Accuracy: 0.779}.Percent())
	assert.Equal(t, 100, WeightedScaleMatch{Accuracy: 1}.Percent())
}

func TestChordNames(t *testing.T) {
	assert.Equal(t, "Bbmi", InputChord{Root: tone.BFlat, Shape: "mi"}.String())
	assert.Equal(t, "F#dur", ChordMatch{Root: tone.FSharp, Shape: "dur"}.String())
}
