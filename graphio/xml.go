package graphio

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"github.com/cs0rbagomba/graph/core"
)

// xmlDocument mirrors the <graph><vertex pos="..."><edge>...</edge>
// </vertex></graph> wire format.
type xmlDocument struct {
	XMLName  xml.Name    `xml:"graph"`
	Vertices []xmlVertex `xml:"vertex"`
}

type xmlVertex struct {
	Pos   string   `xml:"pos,attr"`
	Edges []string `xml:"edge"`
}

// ReadXML parses the XML graph document. For every <vertex> element it
// calls core.Graph.SetEdges(parse(pos), [parse(edge)...]) — it does NOT
// synthesise the reverse leg of an edge, so a document describing an
// undirected graph must list both directions explicitly.
func ReadXML[V comparable](r io.Reader, parse func(text string) (V, error)) (*core.Graph[V], error) {
	var doc xmlDocument
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	g := core.NewGraph[V]()
	for _, vx := range doc.Vertices {
		pos, err := parse(vx.Pos)
		if err != nil {
			return nil, err
		}
		dests := make([]V, len(vx.Edges))
		for i, e := range vx.Edges {
			d, err := parse(e)
			if err != nil {
				return nil, err
			}
			dests[i] = d
		}
		g.SetEdges(pos, dests)
	}

	return g, nil
}

// WriteXML emits one <vertex> per graph vertex, with its current
// neighbour list as <edge> children.
func WriteXML[V comparable](w io.Writer, g *core.Graph[V], serialise func(v V) string) error {
	doc := xmlDocument{}
	for v := range g.All() {
		vx := xmlVertex{Pos: serialise(v)}
		for _, n := range g.NeighboursOf(v) {
			vx.Edges = append(vx.Edges, serialise(n))
		}
		doc.Vertices = append(doc.Vertices, vx)
	}

	data, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("%w: %v", ErrIO, err)
	}

	return nil
}

// ReadXMLFile opens path and parses it with ReadXML.
func ReadXMLFile[V comparable](path string, parse func(text string) (V, error)) (*core.Graph[V], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrIO, path, err)
	}
	defer f.Close()

	return ReadXML(f, parse)
}

// WriteXMLFile creates (or truncates) path and writes g with WriteXML.
func WriteXMLFile[V comparable](path string, g *core.Graph[V], serialise func(v V) string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrIO, path, err)
	}
	defer f.Close()

	return WriteXML(f, g, serialise)
}
