package registry

import (
	"io"
	"os"

	"github.com/jsphweid/scaledex/model"
	"github.com/pkg/errors"
)

// ScaleSource hands out a fresh copy of the scale registry on every call,
// so edits to the backing store show up on the next analysis.
type ScaleSource interface {
	LoadScales() ([]model.ScaleShape, error)
}

func ReadScaleShapes(r io.Reader) ([]model.ScaleShape, error) {
	records, err := ReadRecords(r)
	if err != nil {
		return nil, err
	}
	res := make([]model.ScaleShape, 0, len(records))
	for _, p := range records {
		res = append(res, model.ScaleShape{IntervalPattern: p})
	}
	return res, nil
}

type FileScaleSource struct {
	Path string
}

func (s FileScaleSource) LoadScales() ([]model.ScaleShape, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open scales file")
	}
	defer f.Close()

	scales, err := ReadScaleShapes(f)
	if err != nil {
		return nil, errors.Wrapf(err, "could not load scales from %v", s.Path)
	}
	return scales, nil
}

// StaticScaleSource always returns the same scales.
type StaticScaleSource []model.ScaleShape

func (s StaticScaleSource) LoadScales() ([]model.ScaleShape, error) {
	return append([]model.ScaleShape(nil), s...), nil
}
