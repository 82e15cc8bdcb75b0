package pointset

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
)

// Open creates a tree-backed set holding the points read from the named
// file. If the file cannot be opened the set is empty.
func Open(name string, opts ...Option) Set {
	return openInto(NewTree(opts...), name)
}

// OpenOrdered is like [Open] but creates an ordered set.
func OpenOrdered(name string, opts ...Option) Set {
	return openInto(NewOrdered(opts...), name)
}

func openInto(s Set, name string) Set {
	_, _ = Load(s, name)

	return s
}

// Load inserts the points read from the named file into s, as [ReadFrom]
// does. Unlike [Open] it reports why the file could not be read.
func Load(s Set, name string) (int, error) {
	f, err := os.Open(name)
	if err != nil {
		return 0, fmt.Errorf("opening points: %w", err)
	}

	defer f.Close()

	return ReadFrom(s, f)
}

// ReadFrom inserts points read from r into s.
//
// The input is a whitespace-separated sequence of numbers taken in X, Y
// pairs. Reading stops at the end of the input or at the first token that is
// not a finite number; an incomplete final pair is dropped. ReadFrom returns the
// number of pairs read, including duplicates the set ignored. The error is
// non-nil only if r fails.
func ReadFrom(s Set, r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var (
		pairs   int
		pending []float64
	)

	for scanner.Scan() {
		v, err := strconv.ParseFloat(scanner.Text(), 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			break
		}

		pending = append(pending, v)

		if len(pending) == 2 {
			s.Insert(Point{X: pending[0], Y: pending[1]})
			pending = pending[:0]
			pairs++
		}
	}

	if err := scanner.Err(); err != nil {
		return pairs, fmt.Errorf("reading points: %w", err)
	}

	return pairs, nil
}

// writePoints drains c into w, one point per line.
func writePoints(w io.Writer, c *Cursor) (int64, error) {
	bw := bufio.NewWriter(w)

	var written int64

	for p := range c.All() {
		n, err := bw.WriteString(p.String() + "\n")
		written += int64(n)

		if err != nil {
			return written, fmt.Errorf("writing points: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return written, fmt.Errorf("writing points: %w", err)
	}

	return written, nil
}
