package argio

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/vfmatch/core"
)

// Sentinel errors.
var (
	// ErrTooLarge indicates a node count or label that does not fit in a 16-bit word.
	ErrTooLarge = errors.New("argio: value exceeds 16-bit word")

	// ErrBadLabel indicates an attribute that cannot be written as a binary label.
	ErrBadLabel = errors.New("argio: attribute is not an integer label")

	// ErrMalformed indicates structurally invalid input.
	ErrMalformed = errors.New("argio: malformed graph")
)

// MaxWord is the largest value a binary word can carry.
const MaxWord = 1<<16 - 1

// Format selects an on-disk layout.
type Format int

const (
	// FormatAuto infers the format from the file extension.
	FormatAuto Format = iota
	// FormatBinary is the MIVIA 16-bit little-endian layout.
	FormatBinary
	// FormatText is the participle text language.
	FormatText
)

// Option configures readers and writers.
type Option func(*options)

type options struct {
	labels bool
	format Format
	gopts  []core.GraphOption
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithLabels selects the labelled binary layout.
func WithLabels() Option { return func(o *options) { o.labels = true } }

// WithFormat overrides extension-based detection in Load.
func WithFormat(f Format) Option { return func(o *options) { o.format = f } }

// WithGraphOptions passes options to the constructed core.Graph; they are
// applied after the defaults the loader sets (self-loops allowed,
// core.EqualAttrs for labelled input).
func WithGraphOptions(gopts ...core.GraphOption) Option {
	return func(o *options) { o.gopts = append(o.gopts, gopts...) }
}

// graphOptions returns the loader defaults followed by the caller's options.
func (o options) graphOptions(labelled bool) []core.GraphOption {
	gopts := []core.GraphOption{core.WithLoops()}
	if labelled {
		gopts = append(gopts, core.WithNodeComparator(core.EqualAttrs), core.WithEdgeComparator(core.EqualAttrs))
	}
	return append(gopts, o.gopts...)
}

// detect maps a path to a format: .txt, .arg and .vfg are text, everything
// else is binary.
func detect(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt", ".arg", ".vfg":
		return FormatText
	default:
		return FormatBinary
	}
}
