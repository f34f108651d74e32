package scale

import (
	"github.com/jsphweid/scaledex/model"
	"github.com/jsphweid/scaledex/registry"
	"github.com/jsphweid/scaledex/tone"
)

type membership [tone.NumPitchClasses]bool

// relativeMembership marks the scale's offsets as if its root were C.
func relativeMembership(shape model.ScaleShape) membership {
	var m membership
	for _, offset := range shape.Offsets {
		m[tone.New(offset)] = true
	}
	return m
}

func (m membership) fits(degree int, chord model.ChordShape) bool {
	for _, offset := range chord.Offsets {
		if !m[tone.New(degree+offset)] {
			return false
		}
	}
	return true
}

// FindSuitableChords lists, for each degree of the matched scale, the chord
// shapes whose every tone lies in the scale. Degrees follow the scale's own
// offset order and chords follow registry order. Degrees with no fitting
// chord are left out.
func FindSuitableChords(match model.WeightedScaleMatch, chordShapes *registry.ChordShapes) []model.DegreeChords {
	inScale := relativeMembership(match.Shape)
	shapes := chordShapes.All()

	var res []model.DegreeChords
	for _, degree := range match.Shape.Offsets {
		var chords []model.ChordMatch
		for _, c := range shapes {
			if inScale.fits(degree, c) {
				chords = append(chords, model.ChordMatch{Root: match.Root.Transpose(degree), Shape: c.Name})
			}
		}
		if len(chords) > 0 {
			res = append(res, model.DegreeChords{Degree: degree, Chords: chords})
		}
	}
	return res
}
