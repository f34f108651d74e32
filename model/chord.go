package model

import "github.com/jsphweid/scaledex/tone"

type Offsets = []int

// IntervalPattern is a named list of semitone offsets from a root.
// Offsets[0] is 0 by convention but nothing depends on it.
type IntervalPattern struct {
	Name    string
	Offsets Offsets
}

type ChordShape struct {
	IntervalPattern
}

type ScaleShape struct {
	IntervalPattern
}

func NewChordShape(name string, offsets ...int) ChordShape {
	return ChordShape{IntervalPattern{Name: name, Offsets: offsets}}
}

func NewScaleShape(name string, offsets ...int) ScaleShape {
	return ScaleShape{IntervalPattern{Name: name, Offsets: offsets}}
}

// InputChord is a chord entered by the user. Shape must name a known ChordShape.
type InputChord struct {
	Root  tone.PitchClass
	Shape string
}

func (c InputChord) String() string {
	return c.Root.String() + c.Shape
}

type ChordMatch struct {
	Root  tone.PitchClass
	Shape string
}

func (c ChordMatch) String() string {
	return c.Root.String() + c.Shape
}

// DegreeChords are the chords that fit on one degree of a scale.
// Degree is relative to the scale root.
type DegreeChords struct {
	Degree int
	Chords []ChordMatch
}
