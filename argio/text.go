package argio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/pkg/errors"

	"github.com/katalvlaran/vfmatch/core"
)

type textGraph struct {
	Nodes int         `"nodes" @Int ";"`
	Stmts []*textStmt `@@*`
}

type textStmt struct {
	Node *textNode `  @@`
	Edge *textEdge `| @@`
}

type textNode struct {
	ID   int       `"node" @Int`
	Attr *textAttr `("[" @@ "]")? ";"`
}

type textEdge struct {
	From int       `@Int "-" ">"`
	To   int       `@Int`
	Attr *textAttr `("[" @@ "]")? ";"`
}

type textAttr struct {
	Int *int    `  @Int`
	Str *string `| @(Ident | String)`
}

func (a *textAttr) value() core.Attr {
	switch {
	case a == nil:
		return nil
	case a.Int != nil:
		return *a.Int
	default:
		return *a.Str
	}
}

var textParser = participle.MustBuild[textGraph](participle.Unquote("String"))

// ParseText reads one graph in the text language. Node attributes default
// to nil; a node may be given an attribute at most once.
func ParseText(r io.Reader, opts ...Option) (*core.Graph, error) {
	o := newOptions(opts)
	ast, err := textParser.Parse("", r)
	if err != nil {
		return nil, errors.Wrap(err, "argio: ParseText")
	}

	labelled := false
	for _, st := range ast.Stmts {
		if (st.Node != nil && st.Node.Attr != nil) || (st.Edge != nil && st.Edge.Attr != nil) {
			labelled = true
			break
		}
	}
	g, err := core.NewGraphN(ast.Nodes, o.graphOptions(labelled)...)
	if err != nil {
		return nil, errors.Wrap(err, "argio: ParseText")
	}

	seen := make(map[int]bool)
	for _, st := range ast.Stmts {
		switch {
		case st.Node != nil:
			if seen[st.Node.ID] {
				return nil, errors.Wrapf(ErrMalformed, "node %d declared twice", st.Node.ID)
			}
			seen[st.Node.ID] = true
			if err = g.SetNodeAttr(st.Node.ID, st.Node.Attr.value()); err != nil {
				return nil, errors.Wrapf(ErrMalformed, "node %d: %v", st.Node.ID, err)
			}
		case st.Edge != nil:
			if err = g.AddEdge(st.Edge.From, st.Edge.To, st.Edge.Attr.value()); err != nil {
				return nil, errors.Wrapf(ErrMalformed, "edge %d->%d: %v", st.Edge.From, st.Edge.To, err)
			}
		}
	}

	return g, nil
}

// WriteText prints g in the text language, nodes with attributes first,
// then edges in (from, to) order.
func WriteText(w io.Writer, g core.ARG) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "nodes %d;\n", g.NodeCount())
	for i := 0; i < g.NodeCount(); i++ {
		if a := g.NodeAttr(i); a != nil {
			s, err := formatAttr(a)
			if err != nil {
				return errors.Wrapf(err, "argio: node %d", i)
			}
			fmt.Fprintf(bw, "node %d [%s];\n", i, s)
		}
	}
	for i := 0; i < g.NodeCount(); i++ {
		for k := 0; k < g.OutEdgeCount(i); k++ {
			to, a := g.OutEdge(i, k)
			if a == nil {
				fmt.Fprintf(bw, "%d -> %d;\n", i, to)
				continue
			}
			s, err := formatAttr(a)
			if err != nil {
				return errors.Wrapf(err, "argio: edge %d->%d", i, to)
			}
			fmt.Fprintf(bw, "%d -> %d [%s];\n", i, to, s)
		}
	}

	return errors.Wrap(bw.Flush(), "argio: WriteText")
}

func formatAttr(a core.Attr) (string, error) {
	switch v := a.(type) {
	case int:
		return strconv.Itoa(v), nil
	case string:
		return strconv.Quote(v), nil
	default:
		return "", errors.Wrapf(ErrBadLabel, "%T", a)
	}
}
