package chord

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jsphweid/scaledex/model"
	"github.com/jsphweid/scaledex/registry"
	"github.com/jsphweid/scaledex/tone"
)

type OnNotes = map[uint8]bool

const rootSeparator = ":"

// CreateChordKey sorts notes in place and joins them with "-".
func CreateChordKey(notes []uint8) string {
	sort.Slice(notes, func(i, j int) bool {
		return notes[i] < notes[j]
	})
	var res string
	for i, note := range notes {
		res += fmt.Sprintf("%v", note)
		if i < len(notes)-1 {
			res += "-"
		}
	}
	return res
}

// Parse reads a chord written as "root:shape", e.g. "F#:mi".
func Parse(s string, shapes *registry.ChordShapes) (model.InputChord, error) {
	var c model.InputChord
	parts := strings.SplitN(s, rootSeparator, 2)
	if len(parts) != 2 {
		return c, fmt.Errorf("chord %q is not written as root%sshape", s, rootSeparator)
	}
	root, err := tone.Parse(parts[0])
	if err != nil {
		return c, err
	}
	if _, ok := shapes.Get(parts[1]); !ok {
		return c, fmt.Errorf("unknown chord shape %q", parts[1])
	}
	c.Root = root
	c.Shape = parts[1]
	return c, nil
}

func ParseAll(args []string, shapes *registry.ChordShapes) ([]model.InputChord, error) {
	res := make([]model.InputChord, 0, len(args))
	for _, arg := range args {
		c, err := Parse(arg, shapes)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, nil
}

func pitchClassSet(notes []uint8) [tone.NumPitchClasses]bool {
	var set [tone.NumPitchClasses]bool
	for _, n := range notes {
		set[tone.New(int(n))] = true
	}
	return set
}

// Identify names the chord formed by notes. The bass note is tried as root
// first, then the other pitch classes from C upward. Shapes are tried in
// registry order.
func Identify(notes []uint8, shapes *registry.ChordShapes) (model.InputChord, bool) {
	if len(notes) == 0 {
		return model.InputChord{}, false
	}
	sorted := append([]uint8(nil), notes...)
	CreateChordKey(sorted)
	held := pitchClassSet(sorted)

	roots := []tone.PitchClass{tone.New(int(sorted[0]))}
	for _, p := range tone.All() {
		if held[p] && p != roots[0] {
			roots = append(roots, p)
		}
	}

	for _, root := range roots {
		for _, s := range shapes.All() {
			var formed [tone.NumPitchClasses]bool
			for _, offset := range s.Offsets {
				formed[root.Transpose(offset)] = true
			}
			if formed == held {
				return model.InputChord{Root: root, Shape: s.Name}, true
			}
		}
	}
	return model.InputChord{}, false
}
