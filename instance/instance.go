// Package instance reads and writes the whitespace-separated integer format
// of a scheduling instance:
//
//	N M D K
//	u v w        (M lines, nodes 1-based)
//	x y          (N lines)
//
// and the one-line schedule answer of M 1-based days.
package instance

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/roadwork/core"
)

// Sentinel errors.
var (
	ErrMalformed = errors.New("instance: malformed input")
	ErrHeader    = errors.New("instance: bad header")
	ErrEdge      = errors.New("instance: bad edge")
	ErrCoord     = errors.New("instance: bad coordinate")
)

// Instance is one scheduling problem.
type Instance struct {
	Graph    *core.Graph
	Days     int // D
	Capacity int // K
}

// tokens yields whitespace-separated integers.
type tokens struct {
	sc  *bufio.Scanner
	pos int
}

func newTokens(r io.Reader) *tokens {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)
	return &tokens{sc: sc}
}

func (t *tokens) int64() (int64, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		return 0, fmt.Errorf("%w: unexpected end after %d values", ErrMalformed, t.pos)
	}
	t.pos++
	v, err := strconv.ParseInt(t.sc.Text(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: value %d: %q", ErrMalformed, t.pos, t.sc.Text())
	}
	return v, nil
}

func (t *tokens) ints(n int) ([]int64, error) {
	out := make([]int64, n)
	for i := range out {
		v, err := t.int64()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// Read parses an instance. Node ids in the input are 1-based and become
// 0-based in the graph; edge order is preserved.
func Read(r io.Reader) (*Instance, error) {
	t := newTokens(r)

	// 1) Header.
	h, err := t.ints(4)
	if err != nil {
		return nil, err
	}
	n, m, d, k := h[0], h[1], h[2], h[3]
	if n < 2 || m < 0 || d < 1 || k < 1 {
		return nil, fmt.Errorf("%w: N=%d M=%d D=%d K=%d", ErrHeader, n, m, d, k)
	}
	g, err := core.NewGraph(int(n))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrHeader, err)
	}

	// 2) Edges.
	for i := int64(0); i < m; i++ {
		e, err := t.ints(3)
		if err != nil {
			return nil, err
		}
		if _, err = g.AddEdge(int(e[0]-1), int(e[1]-1), e[2]); err != nil {
			return nil, fmt.Errorf("%w: line %d: %v", ErrEdge, i+2, err)
		}
	}

	// 3) Coordinates.
	for v := 0; v < int(n); v++ {
		c, err := t.ints(2)
		if err != nil {
			return nil, err
		}
		if c[0] < 0 || c[1] < 0 {
			return nil, fmt.Errorf("%w: node %d at (%d,%d)", ErrCoord, v+1, c[0], c[1])
		}
		_ = g.SetCoord(v, core.Coord{X: int(c[0]), Y: int(c[1])})
	}

	return &Instance{Graph: g, Days: int(d), Capacity: int(k)}, nil
}

// Write emits inst in the format accepted by Read.
func Write(w io.Writer, inst *Instance) error {
	g := inst.Graph
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d %d %d\n", g.N(), g.M(), inst.Days, inst.Capacity)
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "%d %d %d\n", e.U+1, e.V+1, e.Weight)
	}
	for v := 0; v < g.N(); v++ {
		c := g.Coord(v)
		fmt.Fprintf(bw, "%d %d\n", c.X, c.Y)
	}
	return bw.Flush()
}

// WriteSchedule emits the 1-based days on a single line.
func WriteSchedule(w io.Writer, schedule []int) error {
	parts := make([]string, len(schedule))
	for i, d := range schedule {
		parts[i] = strconv.Itoa(d)
	}
	_, err := io.WriteString(w, strings.Join(parts, " ")+"\n")
	return err
}
