package midi

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/jsphweid/scaledex/model"
	"github.com/jsphweid/scaledex/tone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2/smf"
)

func fMajor() model.WeightedScaleMatch {
	return model.WeightedScaleMatch{
		Shape:    model.NewScaleShape("major", 0, 2, 4, 5, 7, 9, 11),
		Root:     tone.F,
		Accuracy: 1,
	}
}

func TestScaleNotesEndOnOctave(t *testing.T) {
	assert.Equal(t, []uint8{53, 55, 57, 58, 60, 62, 64, 65}, ScaleNotes(fMajor()))
}

func TestScaleNotesEmptyScale(t *testing.T) {
	m := model.WeightedScaleMatch{Shape: model.NewScaleShape("nothing"), Root: tone.C}
	assert.Equal(t, []uint8{60}, ScaleNotes(m))
}

func TestTicksFor300ms(t *testing.T) {
	assert.Equal(t, uint32(576), ticksFor(300_000_000))
}

func TestWriteScaleReadsBack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteScale(&buf, fMajor()))

	s, err := smf.ReadFrom(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, ScaleNotes(fMajor()), NoteSequence(s))
}

func TestWriteScaleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f-major.mid")
	require.NoError(t, WriteScaleFile(path, fMajor()))

	s, err := ReadMidiFile(path)
	require.NoError(t, err)
	assert.Equal(t, ScaleNotes(fMajor()), NoteSequence(s))
}

func TestReadMidiFileMissing(t *testing.T) {
	_, err := ReadMidiFile(filepath.Join(t.TempDir(), "missing.mid"))
	assert.Error(t, err)
}
