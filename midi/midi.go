package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jsphweid/scaledex/constants"
	"github.com/jsphweid/scaledex/model"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF
	var err error

	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)

	if err != nil {
		errText := fmt.Sprintf("Error reading midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))

	if err != nil {
		errText := fmt.Sprintf("Error parsing midi file... %s", err.Error())
		return &blank, errors.New(errText)
	}

	return res, nil
}

// NoteSequence lists the keys of every note on, track by track.
func NoteSequence(s *smf.SMF) []uint8 {
	var res []uint8
	for _, events := range s.Tracks {
		for _, event := range events {
			var channel, key, velocity uint8
			if event.Message.GetNoteOn(&channel, &key, &velocity) && velocity > 0 {
				res = append(res, key)
			}
		}
	}
	return res
}

// ScaleNotes is the scale played upward from the octave starting at
// constants.MiddleC, closed by the root an octave higher.
func ScaleNotes(match model.WeightedScaleMatch) []uint8 {
	root := constants.MiddleC + int(match.Root)
	offsets := append(append(model.Offsets(nil), match.Shape.Offsets...), 12)

	var res []uint8
	for _, offset := range offsets {
		note := root + offset
		if note < 0 || note > 127 {
			continue
		}
		res = append(res, uint8(note))
	}
	return res
}

func ticksFor(d time.Duration) uint32 {
	beat := time.Duration(float64(time.Minute) / constants.PlaybackTempo)
	return uint32(int64(constants.TicksPerBeat) * int64(d) / int64(beat))
}

// CreateScale builds a single track file playing the scale one note at a time.
func CreateScale(match model.WeightedScaleMatch) (*smf.SMF, error) {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(constants.TicksPerBeat)

	noteTicks := ticksFor(constants.NoteLengthMs * time.Millisecond)

	var track smf.Track
	track.Add(0, smf.MetaTempo(constants.PlaybackTempo))
	for _, note := range ScaleNotes(match) {
		track.Add(0, midi.NoteOn(constants.NoteChannel, note, constants.NoteVelocity))
		track.Add(noteTicks, midi.NoteOff(constants.NoteChannel, note))
	}
	track.Close(0)

	if err := s.Add(track); err != nil {
		return nil, err
	}
	return s, nil
}

func WriteScale(w io.Writer, match model.WeightedScaleMatch) error {
	s, err := CreateScale(match)
	if err != nil {
		return err
	}
	_, err = s.WriteTo(w)
	return err
}

func WriteScaleFile(path string, match model.WeightedScaleMatch) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not create %v: %w", path, err)
	}
	defer f.Close()

	if err := WriteScale(f, match); err != nil {
		return fmt.Errorf("could not write %v: %w", path, err)
	}
	return nil
}
