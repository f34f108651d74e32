package registry

import (
	"io"
	"os"

	"github.com/jsphweid/scaledex/model"
	"github.com/pkg/errors"
)

// ChordShapes keeps chord shapes by name in the order they were first added.
type ChordShapes struct {
	names  []string
	shapes map[string]model.ChordShape
}

func NewChordShapes(shapes ...model.ChordShape) *ChordShapes {
	c := &ChordShapes{shapes: make(map[string]model.ChordShape)}
	for _, s := range shapes {
		c.Add(s)
	}
	return c
}

// Add stores s. Re-adding a name replaces its offsets but keeps its position.
func (c *ChordShapes) Add(s model.ChordShape) {
	if _, ok := c.shapes[s.Name]; !ok {
		c.names = append(c.names, s.Name)
	}
	c.shapes[s.Name] = s
}

func (c *ChordShapes) Get(name string) (model.ChordShape, bool) {
	s, ok := c.shapes[name]
	return s, ok
}

func (c *ChordShapes) All() []model.ChordShape {
	res := make([]model.ChordShape, 0, len(c.names))
	for _, name := range c.names {
		res = append(res, c.shapes[name])
	}
	return res
}

func (c *ChordShapes) Names() []string {
	return append([]string(nil), c.names...)
}

func (c *ChordShapes) Len() int {
	return len(c.names)
}

func ReadChordShapes(r io.Reader) (*ChordShapes, error) {
	records, err := ReadRecords(r)
	if err != nil {
		return nil, err
	}
	c := NewChordShapes()
	for _, p := range records {
		c.Add(model.ChordShape{IntervalPattern: p})
	}
	return c, nil
}

func LoadChordShapes(path string) (*ChordShapes, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open chords file")
	}
	defer f.Close()

	c, err := ReadChordShapes(f)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load chords from %v", path)
	}
	return c, nil
}
