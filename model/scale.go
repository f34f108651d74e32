package model

import (
	"strconv"
	"strings"

	"github.com/jsphweid/scaledex/tone"
)

// WeightedScaleMatch is a scale shape placed on a root, with the share of
// input weight it covers.
type WeightedScaleMatch struct {
	Shape    ScaleShape
	Root     tone.PitchClass
	Accuracy float64
}

func (m WeightedScaleMatch) Name() string {
	return m.Root.String() + " " + m.Shape.Name
}

// Percent truncates accuracy to a whole percent. Ranking compares this
// value, not the raw accuracy.
func (m WeightedScaleMatch) Percent() int {
	return int(m.Accuracy * 100)
}

func (m WeightedScaleMatch) Tones() []tone.PitchClass {
	res := make([]tone.PitchClass, len(m.Shape.Offsets))
	for i, o := range m.Shape.Offsets {
		res[i] = m.Root.Transpose(o)
	}
	return res
}

// Intervals are the steps between consecutive offsets, the first one
// measured from 0.
func (m WeightedScaleMatch) Intervals() []int {
	res := make([]int, len(m.Shape.Offsets))
	last := 0
	for i, o := range m.Shape.Offsets {
		res[i] = o - last
		last = o
	}
	return res
}

func (m WeightedScaleMatch) Mask() string {
	parts := make([]string, len(m.Shape.Offsets))
	for i, o := range m.Shape.Offsets {
		parts[i] = strconv.Itoa(o)
	}
	return strings.Join(parts, " - ")
}

func (m WeightedScaleMatch) String() string {
	return m.Name()
}
