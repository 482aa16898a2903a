package necklace

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// ToDOT returns a Graphviz DOT drawing of the quotient.
//
// Each coset becomes a cluster labeled with its index and size. Inside a
// cluster, solid arrows follow the generator r (rotate left by one) and,
// for Dn, dashed lines join each arrangement to its reversal s. Self-loops
// from symmetric arrangements are omitted.
//
// The alphabet names symbols as in [Arrangement.Word]; pass nil for a-z.
// ToDOT requires cosets; a quotient computed without them yields an empty
// graph.
//
// Example:
//
//	q, _ := necklace.ConfigsCount(multiset.Partition{2, 2}, necklace.Dihedral, true)
//	dot := q.ToDOT(nil)
func (q Quotient) ToDOT(alphabet []rune) string {
	var buf bytes.Buffer
	buf.WriteString("digraph Quotient {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=14, shape=box, style=\"filled,rounded\", fillcolor=white];\n")
	buf.WriteString("  edge [arrowsize=0.6];\n\n")

	ids := make(map[Arrangement]string)
	next := 0
	for i, coset := range q.Cosets {
		fmt.Fprintf(&buf, "  subgraph cluster_%d {\n", i)
		fmt.Fprintf(&buf, "    label=%q;\n", fmt.Sprintf("%s %d (%d)", q.Group.Name(), i+1, coset.Len()))
		buf.WriteString("    style=rounded;\n")
		for _, a := range coset.Sorted() {
			id := fmt.Sprintf("n%d", next)
			next++
			ids[a] = id
			fmt.Fprintf(&buf, "    %s [label=%q];\n", id, a.Word(alphabet))
		}
		buf.WriteString("  }\n")
	}

	for _, coset := range q.Cosets {
		for _, a := range coset.Sorted() {
			if r := a.Rotate(1); r != a {
				if to, ok := ids[r]; ok {
					fmt.Fprintf(&buf, "  %s -> %s [label=\"r\"];\n", ids[a], to)
				}
			}
			if q.Group != Dihedral {
				continue
			}
			// Emit each reflection pair once.
			if s := a.Reverse(); a < s {
				if to, ok := ids[s]; ok {
					fmt.Fprintf(&buf, "  %s -> %s [label=\"s\", style=dashed, dir=none];\n", ids[a], to)
				}
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders the quotient drawing as an SVG image.
//
// RenderSVG generates a DOT representation via ToDOT, then uses Graphviz to
// render it to SVG format. Errors are returned if Graphviz cannot
// initialize, the DOT is malformed, or rendering fails.
func (q Quotient) RenderSVG(alphabet []rune) ([]byte, error) {
	dot := q.ToDOT(alphabet)

	gv, err := graphviz.New(context.Background())
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(context.Background(), g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
