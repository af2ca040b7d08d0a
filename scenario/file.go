package scenario

import (
	"errors"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
)

// ErrFile is returned for scenario files that decode but do not describe a
// valid scenario.
var ErrFile = errors.New("scenario: malformed scenario file")

// file is the TOML layout:
//
//	difficulty = "normal"
//	seed = 7
//	removed = [[0, 3], [4, 1]]
//
//	[[city]]
//	x = -0.5
//	y = 0.25
//	elevation = 0.9
type file struct {
	Difficulty string      `toml:"difficulty"`
	Seed       int64       `toml:"seed"`
	Removed    [][2]int    `toml:"removed"`
	Cities     []filePoint `toml:"city"`
}

type filePoint struct {
	X         float64 `toml:"x"`
	Y         float64 `toml:"y"`
	Elevation float64 `toml:"elevation"`
}

// Encode writes s as TOML. Removed edges are listed in row-major order.
func (s *Scenario) Encode(w io.Writer) error {
	f := file{
		Difficulty: s.difficulty.String(),
		Seed:       s.seed,
		Removed:    [][2]int{},
		Cities:     make([]filePoint, len(s.points)),
	}
	var i, j int
	for i = range s.points {
		p := s.points[i]
		f.Cities[i] = filePoint{X: p.X, Y: p.Y, Elevation: p.Elevation}
		for j = range s.blocked[i] {
			if s.blocked[i][j] {
				f.Removed = append(f.Removed, [2]int{i, j})
			}
		}
	}
	if err := toml.NewEncoder(w).Encode(f); err != nil {
		return fmt.Errorf("scenario: encode: %w", err)
	}

	return nil
}

// Decode reads a scenario written by Encode.
//
// Errors: ErrFile for unknown keys, ErrDifficulty, ErrOutOfRange for a
// removed edge that names a missing city.
func Decode(r io.Reader) (*Scenario, error) {
	var f file
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q", ErrFile, undecoded[0].String())
	}

	d, err := ParseDifficulty(f.Difficulty)
	if err != nil {
		return nil, err
	}
	pts := make([]Point, len(f.Cities))
	var i int
	for i = range f.Cities {
		c := f.Cities[i]
		pts[i] = Point{X: c.X, Y: c.Y, Elevation: c.Elevation}
	}
	s, err := FromPoints(pts, d)
	if err != nil {
		return nil, err
	}
	s.seed = f.Seed
	for _, e := range f.Removed {
		if err = s.RemoveEdge(e[0], e[1]); err != nil {
			return nil, err
		}
	}

	return s, nil
}
