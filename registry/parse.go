package registry

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/jsphweid/scaledex/model"
	"github.com/pkg/errors"
)

const FieldSeparator = ":"

// ParseRecord parses one `name:offset1:offset2:...` line.
func ParseRecord(line string) (model.IntervalPattern, error) {
	var p model.IntervalPattern
	parts := strings.Split(line, FieldSeparator)
	// a trailing separator doesn't add an offset
	for len(parts) > 1 && parts[len(parts)-1] == "" {
		parts = parts[:len(parts)-1]
	}
	p.Name = parts[0]
	p.Offsets = make(model.Offsets, 0, len(parts)-1)
	for _, part := range parts[1:] {
		offset, err := strconv.Atoi(part)
		if err != nil {
			return model.IntervalPattern{}, errors.Wrapf(err, "bad offset %q in %q", part, p.Name)
		}
		p.Offsets = append(p.Offsets, offset)
	}
	return p, nil
}

// ReadRecords reads every record in r. One bad line fails the whole read.
func ReadRecords(r io.Reader) ([]model.IntervalPattern, error) {
	var res []model.IntervalPattern
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		p, err := ParseRecord(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNum)
		}
		res = append(res, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "could not read records")
	}
	return res, nil
}

func FormatRecord(p model.IntervalPattern) string {
	parts := []string{p.Name}
	for _, o := range p.Offsets {
		parts = append(parts, strconv.Itoa(o))
	}
	return strings.Join(parts, FieldSeparator)
}
