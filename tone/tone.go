package tone

import "fmt"

// PitchClass is one of the twelve tones of an octave, 0 == C.
type PitchClass int

const (
	C PitchClass = iota
	CSharp
	D
	DSharp
	E
	F
	FSharp
	G
	GSharp
	A
	BFlat
	B
)

const NumPitchClasses = 12

// Sharps are used everywhere except Bb, so that A# / B / H notations
// can't be confused.
var names = [NumPitchClasses]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "Bb", "B"}

var aliases = map[string]PitchClass{
	"Db": CSharp,
	"Eb": DSharp,
	"Fb": E,
	"E#": F,
	"Gb": FSharp,
	"Ab": GSharp,
	"A#": BFlat,
	"Cb": B,
	"B#": C,
}

func mod12(n int) int {
	return ((n % NumPitchClasses) + NumPitchClasses) % NumPitchClasses
}

// New wraps any integer into the 0..11 range.
func New(n int) PitchClass {
	return PitchClass(mod12(n))
}

func All() []PitchClass {
	res := make([]PitchClass, NumPitchClasses)
	for i := range res {
		res[i] = PitchClass(i)
	}
	return res
}

func (p PitchClass) Transpose(semitones int) PitchClass {
	return New(int(p) + semitones)
}

// Interval is the upward distance from p to other, in 0..11.
func (p PitchClass) Interval(other PitchClass) int {
	return mod12(int(other) - int(p))
}

func (p PitchClass) String() string {
	return names[mod12(int(p))]
}

func Parse(s string) (PitchClass, error) {
	for i, name := range names {
		if name == s {
			return PitchClass(i), nil
		}
	}
	if p, ok := aliases[s]; ok {
		return p, nil
	}
	return 0, fmt.Errorf("unknown tone %q", s)
}
