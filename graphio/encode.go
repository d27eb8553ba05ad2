package graphio

import (
	"encoding/json"
	"fmt"
	"io"

	"sigs.k8s.io/yaml"

	"github.com/katalvlaran/lvcover/core"
	"github.com/katalvlaran/lvcover/cover"
)

// DocumentOf captures g as a Document: vertices sorted, edges in insertion
// order as [from, to].
func DocumentOf(g *core.Graph) Document {
	edges := g.Edges()
	doc := Document{
		Vertices: g.Vertices(),
		Edges:    make([][]string, len(edges)),
	}
	for i, e := range edges {
		doc.Edges[i] = []string{e.From, e.To}
	}

	return doc
}

// Encode writes g to w as a graph document.
//
// Errors: ErrUnsupportedFormat, plus marshal and write failures.
func Encode(w io.Writer, g *core.Graph, format Format) error {
	if g == nil {
		return fmt.Errorf("encoding graph: %w", cover.ErrNilGraph)
	}

	return write(w, DocumentOf(g), format)
}

// ResultDocumentOf captures res for serialization.
func ResultDocumentOf(res cover.LabeledResult) ResultDocument {
	return ResultDocument{
		Algorithm:      res.Algorithm.String(),
		Vertices:       len(res.Cover) + len(res.IndependentSet),
		CoverSize:      len(res.Cover),
		Cover:          nonNil(res.Cover),
		IndependentSet: nonNil(res.IndependentSet),
	}
}

// EncodeResult writes res to w.
//
// Errors: ErrUnsupportedFormat, plus marshal and write failures.
func EncodeResult(w io.Writer, format Format, res cover.LabeledResult) error {
	return write(w, ResultDocumentOf(res), format)
}

// write marshals v in the requested format and writes it to w.
func write(w io.Writer, v any, format Format) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case FormatYAML:
		data, err = yaml.Marshal(v)
	case FormatJSON:
		data, err = json.MarshalIndent(v, "", "  ")
		data = append(data, '\n')
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return fmt.Errorf("marshaling %s: %w", format, err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing %s: %w", format, err)
	}

	return nil
}

// nonNil renders empty sets as [] rather than null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}

	return s
}
