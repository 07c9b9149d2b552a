package argio

import (
	"os"

	"github.com/pkg/errors"

	"github.com/katalvlaran/vfmatch/core"
)

// Load opens path and decodes it in the format chosen by WithFormat, or
// by the extension when the format is FormatAuto.
func Load(path string, opts ...Option) (*core.Graph, error) {
	o := newOptions(opts)
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "argio: Load")
	}
	defer f.Close()

	format := o.format
	if format == FormatAuto {
		format = detect(path)
	}

	var g *core.Graph
	if format == FormatText {
		g, err = ParseText(f, opts...)
	} else {
		g, err = ReadBinary(f, opts...)
	}

	return g, errors.Wrapf(err, "argio: %s", path)
}
