package edgelist

import (
	"bufio"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Encode writes doc to w in the given format. The text form starts with the
// vertex count and lists one "u v w" triple per line.
func Encode(w io.Writer, doc *Document, format Format) error {
	switch format {
	case FormatText:
		return encodeText(w, doc)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("edgelist: encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func encodeText(w io.Writer, doc *Document) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d\n", doc.Vertices)
	for _, e := range doc.Edges {
		fmt.Fprintf(bw, "%d %d %d\n", e.Head, e.Tail, e.Weight)
	}

	return bw.Flush()
}
