package circuit

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"math"
	"strconv"
	"strings"
)

// MaxCoordinate is the largest accepted coordinate value. It keeps the sum
// of three squared coordinate differences within uint64.
const MaxCoordinate = math.MaxInt32

// fieldSeparator separates the three coordinates of a record.
const fieldSeparator = ","

// Point is a junction position. Points are identified by their index in
// Points, never by value: duplicates are allowed.
type Point struct {
	X, Y, Z int
}

func (p Point) String() string {
	return fmt.Sprintf("%d,%d,%d", p.X, p.Y, p.Z)
}

// Points is the ordered, immutable point set of one solve. Index order is
// input order.
type Points []Point

// Len returns the number of points.
func (ps Points) Len() int { return len(ps) }

// At returns the point with index i.
func (ps Points) At(i int) Point { return ps[i] }

// ParsePoint decodes a single "x,y,z" record.
func ParsePoint(record string) (Point, error) {
	fields := strings.Split(strings.TrimSpace(record), fieldSeparator)
	if len(fields) != 3 {
		return Point{}, fmt.Errorf("want 3 fields, got %d", len(fields))
	}

	var coords [3]int
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return Point{}, err
		}
		if v < 0 || v > MaxCoordinate {
			return Point{}, fmt.Errorf("coordinate %d out of range [0, %d]", v, MaxCoordinate)
		}
		coords[i] = v
	}
	return Point{X: coords[0], Y: coords[1], Z: coords[2]}, nil
}

// ParsePoints decodes records in order, assigning indices from 0. Blank
// records are skipped. The first malformed record stops parsing with a
// *ParseError.
func ParsePoints(records iter.Seq[string]) (Points, error) {
	var (
		points Points
		line   int
	)
	for record := range records {
		line++
		if strings.TrimSpace(record) == "" {
			continue
		}
		p, err := ParsePoint(record)
		if err != nil {
			return nil, &ParseError{Line: line, Record: record, Err: err}
		}
		points = append(points, p)
	}
	return points, nil
}

// ReadPoints reads newline-separated records from r and decodes them with
// ParsePoints.
func ReadPoints(r io.Reader) (Points, error) {
	scanner := bufio.NewScanner(r)
	var scanErr error
	records := func(yield func(string) bool) {
		for scanner.Scan() {
			if !yield(scanner.Text()) {
				return
			}
		}
		scanErr = scanner.Err()
	}

	points, err := ParsePoints(records)
	if err != nil {
		return nil, err
	}
	if scanErr != nil {
		return nil, fmt.Errorf("circuit: reading points: %w", scanErr)
	}
	return points, nil
}
