package graphio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cs0rbagomba/graph/core"
)

// ReadPlaintext parses the blank-line-delimited record format: each
// record's first non-blank line is a vertex, and every subsequent
// non-blank line up to the next blank line (or EOF) is one of its
// neighbours. A leading blank line is tolerated. parse converts one line
// into a V; its errors are returned unwrapped.
func ReadPlaintext[V comparable](r io.Reader, parse func(line string) (V, error)) (*core.Graph[V], error) {
	g := core.NewGraph[V]()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var (
		vertex     V
		neighbours []V
		inRecord   bool
	)

	flush := func() {
		if inRecord {
			g.SetEdges(vertex, neighbours)
		}
		inRecord = false
		neighbours = nil
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		if !inRecord {
			v, err := parse(line)
			if err != nil {
				return nil, err
			}
			vertex = v
			inRecord = true
			continue
		}
		n, err := parse(line)
		if err != nil {
			return nil, err
		}
		neighbours = append(neighbours, n)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIO, err)
	}
	flush()

	return g, nil
}

// WritePlaintext emits g in the blank-line-delimited record format: one
// record per vertex, separated by a single blank line, the vertex first
// and then every neighbour in its current (implementation-defined) order.
func WritePlaintext[V comparable](w io.Writer, g *core.Graph[V], serialise func(v V) string) error {
	bw := bufio.NewWriter(w)

	first := true
	for v := range g.All() {
		if !first {
			if _, err := bw.WriteString("\n"); err != nil {
				return fmt.Errorf("%w: %v", ErrIO, err)
			}
		}
		first = false

		if _, err := fmt.Fprintln(bw, serialise(v)); err != nil {
			return fmt.Errorf("%w: %v", ErrIO, err)
		}
		for _, n := range g.NeighboursOf(v) {
			if _, err := fmt.Fprintln(bw, serialise(n)); err != nil {
				return fmt.Errorf("%w: %v", ErrIO, err)
			}
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}

	return nil
}

// ReadPlaintextFile opens path and parses it with ReadPlaintext.
func ReadPlaintextFile[V comparable](path string, parse func(line string) (V, error)) (*core.Graph[V], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrIO, path, err)
	}
	defer f.Close()

	return ReadPlaintext(f, parse)
}

// WritePlaintextFile creates (or truncates) path and writes g with
// WritePlaintext.
func WritePlaintextFile[V comparable](path string, g *core.Graph[V], serialise func(v V) string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrIO, path, err)
	}
	defer f.Close()

	return WritePlaintext(f, g, serialise)
}
