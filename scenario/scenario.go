package scenario

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/katalvlaran/tourbound/tsp"
)

// MapScale converts map units into integer cost units.
const MapScale = 1000

// RemovalRate is the share of directed edges dropped for Normal and Hard.
const RemovalRate = 0.2

// Map bounds used by Generate.
const (
	minX, maxX = -1.5, 1.5
	minY, maxY = -1.0, 1.0
)

var (
	// ErrSize is returned for a negative city count.
	ErrSize = errors.New("scenario: city count must be non-negative")
	// ErrOutOfRange is returned for a city index outside the scenario.
	ErrOutOfRange = errors.New("scenario: city index out of range")
	// ErrDifficulty is returned for an unknown difficulty name or value.
	ErrDifficulty = errors.New("scenario: unknown difficulty")
)

// Difficulty selects the cost model.
type Difficulty int

const (
	Easy Difficulty = iota
	Normal
	Hard
)

var difficultyNames = [...]string{"easy", "normal", "hard"}

func (d Difficulty) String() string {
	if d < 0 || int(d) >= len(difficultyNames) {
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}

	return difficultyNames[d]
}

// ParseDifficulty accepts the lowercase names, case-insensitively.
func ParseDifficulty(s string) (Difficulty, error) {
	var i int
	for i = range difficultyNames {
		if strings.EqualFold(difficultyNames[i], s) {
			return Difficulty(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrDifficulty, s)
}

// Point is a city location. Elevation only matters on Hard.
type Point struct {
	X, Y      float64
	Elevation float64
}

// Scenario is a set of cities plus the directed edges that exist between
// them. It is not safe for concurrent mutation; Instance snapshots it.
type Scenario struct {
	points     []Point
	difficulty Difficulty
	seed       int64
	blocked    [][]bool // blocked[i][j]: edge i→j removed
}

// FromPoints builds a scenario over explicit points with every edge present.
func FromPoints(pts []Point, d Difficulty) (*Scenario, error) {
	if d < Easy || d > Hard {
		return nil, ErrDifficulty
	}
	s := &Scenario{
		points:     append([]Point(nil), pts...),
		difficulty: d,
		blocked:    make([][]bool, len(pts)),
	}
	var i int
	for i = range s.blocked {
		s.blocked[i] = make([]bool, len(pts))
	}

	return s, nil
}

// Generate places n cities uniformly on the map and, for Normal and Hard,
// removes RemovalRate of the directed edges outside a hidden random cycle.
func Generate(n int, d Difficulty, seed int64) (*Scenario, error) {
	if n < 0 {
		return nil, ErrSize
	}
	r := rand.New(rand.NewSource(seed))
	pts := make([]Point, n)
	var i int
	for i = range pts {
		pts[i] = Point{
			X:         minX + r.Float64()*(maxX-minX),
			Y:         minY + r.Float64()*(maxY-minY),
			Elevation: r.Float64(),
		}
	}
	s, err := FromPoints(pts, d)
	if err != nil {
		return nil, err
	}
	s.seed = seed
	if d != Easy {
		s.thin(r, RemovalRate)
	}

	return s, nil
}

// thin removes each directed edge with probability rate, except the edges
// of one random Hamiltonian cycle.
func (s *Scenario) thin(r *rand.Rand, rate float64) {
	n := len(s.points)
	if n < 3 {
		return
	}
	keep := make([][]bool, n)
	var i, j int
	for i = range keep {
		keep[i] = make([]bool, n)
	}
	ring := r.Perm(n)
	for i = range ring {
		keep[ring[i]][ring[(i+1)%n]] = true
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j || keep[i][j] {
				continue
			}
			if r.Float64() < rate {
				s.blocked[i][j] = true
			}
		}
	}
}

// RemoveEdge forbids travel from→to.
func (s *Scenario) RemoveEdge(from, to int) error {
	if from < 0 || from >= len(s.points) || to < 0 || to >= len(s.points) {
		return fmt.Errorf("%w: %d→%d", ErrOutOfRange, from, to)
	}
	s.blocked[from][to] = true

	return nil
}

// EdgeExists reports whether from→to may be travelled.
func (s *Scenario) EdgeExists(from, to int) bool {
	return from != to && !s.blocked[from][to]
}

// RemovedEdges counts the directed edges removed so far.
func (s *Scenario) RemovedEdges() int {
	var cnt, i, j int
	for i = range s.blocked {
		for j = range s.blocked[i] {
			if s.blocked[i][j] {
				cnt++
			}
		}
	}

	return cnt
}

func (s *Scenario) Len() int               { return len(s.points) }
func (s *Scenario) Point(i int) Point      { return s.points[i] }
func (s *Scenario) Difficulty() Difficulty { return s.difficulty }
func (s *Scenario) Seed() int64            { return s.seed }

// Cost is the travel cost from→to in integer map units, or +Inf when the
// edge is removed or from==to.
func (s *Scenario) Cost(from, to int) float64 {
	if !s.EdgeExists(from, to) {
		return math.Inf(1)
	}
	a, b := s.points[from], s.points[to]
	d := math.Hypot(b.X-a.X, b.Y-a.Y)
	if s.difficulty == Hard {
		d += b.Elevation - a.Elevation
		if d < 0 {
			d = 0
		}
	}

	return math.Ceil(d * MapScale)
}

// Cities returns one tsp.City per point, in index order. The cities read
// the scenario live, so call Instance to freeze costs before solving.
func (s *Scenario) Cities() []tsp.City {
	out := make([]tsp.City, len(s.points))
	var i int
	for i = range out {
		out[i] = City{s: s, idx: i}
	}

	return out
}

// Instance validates and freezes the scenario's costs.
func (s *Scenario) Instance() (*tsp.Instance, error) {
	return tsp.NewInstance(s.Cities())
}

// City is a scenario city.
type City struct {
	s   *Scenario
	idx int
}

var _ tsp.City = City{}

func (c City) Index() int { return c.idx }

// CostTo returns +Inf for cities of another scenario.
func (c City) CostTo(other tsp.City) float64 {
	o, ok := other.(City)
	if !ok || o.s != c.s {
		return math.Inf(1)
	}

	return c.s.Cost(c.idx, o.idx)
}
