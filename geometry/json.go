package geometry

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Structural persistence. Every entity serializes as a flat record carrying
// a format version tag, so persisted records stay readable across
// revisions. Unmarshalling rebuilds the entity through its public
// constructor: derived fields are recomputed rather than trusted, and
// construction invariants hold for loaded records too.

const (
	pointFormatVersion     = 1
	segmentFormatVersion   = 10
	lineFormatVersion      = 20
	slopeLineFormatVersion = 30
	triangleFormatVersion  = 40
)

type pointRecord struct {
	Version int     `json:"version"`
	Name    string  `json:"name"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
}

func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(pointRecord{
		Version: pointFormatVersion,
		Name:    string(p.name),
		X:       p.x,
		Y:       p.y,
	})
}

func (p *Point) UnmarshalJSON(data []byte) error {
	var rec pointRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return errors.Wrap(err, "point record")
	}
	if rec.Version != pointFormatVersion {
		return errors.Errorf("unsupported point record version %d", rec.Version)
	}
	name := 'O'
	if rec.Name != "" {
		name = []rune(rec.Name)[0]
	}
	*p = NewPoint(name, rec.X, rec.Y)
	return nil
}

type segmentRecord struct {
	Version int   `json:"version"`
	A       Point `json:"a"`
	B       Point `json:"b"`
}

func (s Segment) MarshalJSON() ([]byte, error) {
	return json.Marshal(segmentRecord{
		Version: segmentFormatVersion,
		A:       s.a,
		B:       s.b,
	})
}

func (s *Segment) UnmarshalJSON(data []byte) error {
	var rec segmentRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return errors.Wrap(err, "segment record")
	}
	if rec.Version != segmentFormatVersion {
		return errors.Errorf("unsupported segment record version %d", rec.Version)
	}
	segment, err := NewSegment(rec.A, rec.B)
	if err != nil {
		return errors.Wrap(err, "segment record")
	}
	*s = segment
	return nil
}

type lineRecord struct {
	Version int     `json:"version"`
	A       float64 `json:"a"`
	B       float64 `json:"b"`
	C       float64 `json:"c"`
}

func (l Line) MarshalJSON() ([]byte, error) {
	return json.Marshal(lineRecord{
		Version: lineFormatVersion,
		A:       l.a,
		B:       l.b,
		C:       l.c,
	})
}

func (l *Line) UnmarshalJSON(data []byte) error {
	var rec lineRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return errors.Wrap(err, "line record")
	}
	if rec.Version != lineFormatVersion {
		return errors.Errorf("unsupported line record version %d", rec.Version)
	}
	line, err := NewLine(rec.A, rec.B, rec.C)
	if err != nil {
		return errors.Wrap(err, "line record")
	}
	*l = line
	return nil
}

type slopeLineRecord struct {
	Version int     `json:"version"`
	K       float64 `json:"k"`
	B       float64 `json:"b"`
}

func (l SlopeLine) MarshalJSON() ([]byte, error) {
	return json.Marshal(slopeLineRecord{
		Version: slopeLineFormatVersion,
		K:       l.k,
		B:       l.b,
	})
}

func (l *SlopeLine) UnmarshalJSON(data []byte) error {
	var rec slopeLineRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return errors.Wrap(err, "slope line record")
	}
	if rec.Version != slopeLineFormatVersion {
		return errors.Errorf("unsupported slope line record version %d", rec.Version)
	}
	*l = NewSlopeLine(rec.K, rec.B)
	return nil
}

type triangleRecord struct {
	Version  int      `json:"version"`
	Vertices [3]Point `json:"vertices"`
}

func (t Triangle) MarshalJSON() ([]byte, error) {
	return json.Marshal(triangleRecord{
		Version:  triangleFormatVersion,
		Vertices: [3]Point{t.sides[0].a, t.sides[1].a, t.sides[2].a},
	})
}

func (t *Triangle) UnmarshalJSON(data []byte) error {
	var rec triangleRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return errors.Wrap(err, "triangle record")
	}
	if rec.Version != triangleFormatVersion {
		return errors.Errorf("unsupported triangle record version %d", rec.Version)
	}
	triangle, err := NewTriangle(rec.Vertices[0], rec.Vertices[1], rec.Vertices[2])
	if err != nil {
		return errors.Wrap(err, "triangle record")
	}
	*t = triangle
	return nil
}
