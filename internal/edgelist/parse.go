package edgelist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const commentPrefix = "#"

// Parse decodes an edge list from r in the given format and validates it.
func Parse(r io.Reader, format Format) (*Document, error) {
	switch format {
	case FormatText:
		return parseText(r)
	case FormatYAML:
		return parseYAML(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func parseText(r io.Reader) (*Document, error) {
	var (
		doc    Document
		header bool
		lineNo int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if i := strings.Index(line, commentPrefix); i >= 0 {
			line = line[:i]
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		if !header {
			if len(fields) != 1 {
				return nil, fmt.Errorf("line %d: %w: want vertex count, got %q", lineNo, ErrSyntax, strings.TrimSpace(line))
			}
			n, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w: vertex count %q", lineNo, ErrSyntax, fields[0])
			}
			doc.Vertices = n
			if n < 1 {
				return nil, fmt.Errorf("line %d: %w: vertex count %d", lineNo, ErrVertexRange, n)
			}
			header = true
			continue
		}

		e, err := parseEdgeLine(fields)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		if err = doc.checkEdge(e); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		doc.Edges = append(doc.Edges, e)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("edgelist: read: %w", err)
	}
	if !header {
		return nil, fmt.Errorf("%w: missing vertex count", ErrSyntax)
	}

	return &doc, nil
}

func parseEdgeLine(fields []string) (EdgeRecord, error) {
	if len(fields) != 3 {
		return EdgeRecord{}, fmt.Errorf("%w: want \"u v w\", got %d fields", ErrSyntax, len(fields))
	}
	head, err := strconv.Atoi(fields[0])
	if err != nil {
		return EdgeRecord{}, fmt.Errorf("%w: head %q", ErrSyntax, fields[0])
	}
	tail, err := strconv.Atoi(fields[1])
	if err != nil {
		return EdgeRecord{}, fmt.Errorf("%w: tail %q", ErrSyntax, fields[1])
	}
	weight, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return EdgeRecord{}, fmt.Errorf("%w: weight %q", ErrSyntax, fields[2])
	}

	return EdgeRecord{Head: head, Tail: tail, Weight: weight}, nil
}

func parseYAML(r io.Reader) (*Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrSyntax)
		}
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}

	return &doc, nil
}
