// SPDX-License-Identifier: MIT

package argio

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"

	"github.com/katalvlaran/vfmatch/core"
)

// wordReader decodes little-endian 16-bit words and remembers the offset
// of the last word for error messages.
type wordReader struct {
	r   io.Reader
	off int64
	buf [2]byte
}

func (wr *wordReader) next(what string) (int, error) {
	if _, err := io.ReadFull(wr.r, wr.buf[:]); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return 0, errors.Wrapf(err, "argio: reading %s at byte %d", what, wr.off)
	}
	wr.off += 2
	return int(binary.LittleEndian.Uint16(wr.buf[:])), nil
}

// ReadBinary decodes one graph in the MIVIA binary layout.
//
// Errors: io.ErrUnexpectedEOF (wrapped) on truncation, ErrMalformed for
// out-of-range targets or repeated edges.
func ReadBinary(r io.Reader, opts ...Option) (*core.Graph, error) {
	o := newOptions(opts)
	wr := &wordReader{r: bufio.NewReader(r)}

	n, err := wr.next("node count")
	if err != nil {
		return nil, err
	}
	g, err := core.NewGraphN(n, o.graphOptions(o.labels)...)
	if err != nil {
		return nil, errors.Wrap(err, "argio: ReadBinary")
	}

	if o.labels {
		for i := 0; i < n; i++ {
			lbl, err := wr.next("node label")
			if err != nil {
				return nil, err
			}
			if err = g.SetNodeAttr(i, lbl); err != nil {
				return nil, errors.Wrapf(err, "argio: node %d", i)
			}
		}
	}

	for i := 0; i < n; i++ {
		cnt, err := wr.next("edge count")
		if err != nil {
			return nil, err
		}
		for k := 0; k < cnt; k++ {
			to, err := wr.next("edge target")
			if err != nil {
				return nil, err
			}
			var attr core.Attr
			if o.labels {
				if attr, err = wr.next("edge label"); err != nil {
					return nil, err
				}
			}
			if to >= n {
				return nil, errors.Wrapf(ErrMalformed, "edge %d->%d: target beyond %d nodes", i, to, n)
			}
			if err = g.AddEdge(i, to, attr); err != nil {
				return nil, errors.Wrapf(ErrMalformed, "edge %d->%d: %v", i, to, err)
			}
		}
	}

	return g, nil
}

// WriteBinary encodes g in the MIVIA binary layout. With WithLabels every
// node and edge attribute must be nil (written as 0) or an integer in
// [0, MaxWord].
func WriteBinary(w io.Writer, g core.ARG, opts ...Option) error {
	o := newOptions(opts)
	bw := bufio.NewWriter(w)
	var buf [2]byte
	put := func(v int) error {
		if v < 0 || v > MaxWord {
			return errors.Wrapf(ErrTooLarge, "argio: WriteBinary: %d", v)
		}
		binary.LittleEndian.PutUint16(buf[:], uint16(v))
		_, err := bw.Write(buf[:])
		return err
	}

	n := g.NodeCount()
	if err := put(n); err != nil {
		return err
	}
	if o.labels {
		for i := 0; i < n; i++ {
			lbl, err := label(g.NodeAttr(i))
			if err != nil {
				return errors.Wrapf(err, "argio: node %d", i)
			}
			if err = put(lbl); err != nil {
				return err
			}
		}
	}
	for i := 0; i < n; i++ {
		if err := put(g.OutEdgeCount(i)); err != nil {
			return err
		}
		for k := 0; k < g.OutEdgeCount(i); k++ {
			to, attr := g.OutEdge(i, k)
			if err := put(to); err != nil {
				return err
			}
			if !o.labels {
				continue
			}
			lbl, err := label(attr)
			if err != nil {
				return errors.Wrapf(err, "argio: edge %d->%d", i, to)
			}
			if err = put(lbl); err != nil {
				return err
			}
		}
	}

	return errors.Wrap(bw.Flush(), "argio: WriteBinary")
}

func label(a core.Attr) (int, error) {
	switch v := a.(type) {
	case nil:
		return 0, nil
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case uint16:
		return int(v), nil
	default:
		return 0, errors.Wrapf(ErrBadLabel, "%T", a)
	}
}
