package tone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNamesUseSharpsExceptBb(t *testing.T) {
	var got []string
	for _, p := range All() {
		got = append(got, p.String())
	}
	assert.Equal(t, []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "Bb", "B"}, got)
}

func TestTransposeWraps(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(C, B.Transpose(1))
	assert.Equal(BFlat, C.Transpose(-2))
	assert.Equal(F, F.Transpose(24))
	assert.Equal(D, New(-10))
}

func TestInterval(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(7, C.Interval(G))
	assert.Equal(5, G.Interval(C))
	assert.Equal(0, A.Interval(A))
}

func TestParse(t *testing.T) {
	cases := map[string]PitchClass{
		"C":  C,
		"F#": FSharp,
		"Bb": BFlat,
		"A#": BFlat,
		"Db": CSharp,
		"B":  B,
	}
	for s, want := range cases {
		t.Run(s, func(t *testing.T) {
			got, err := Parse(s)
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	_, err := Parse("H")
	assert.Error(t, err)
}
