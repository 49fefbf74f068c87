package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"sort"
	"strings"

	"github.com/katalvlaran/colorfield/field"
)

// ErrUnknownConverter indicates a converter name not present in Converters.
var ErrUnknownConverter = errors.New("render: unknown converter")

// ErrUnknownBoundary indicates a boundary name ParseBoundary does not know.
var ErrUnknownBoundary = errors.New("render: unknown boundary mode")

var (
	// UnreachedColor flags cells the search has not reached.
	UnreachedColor = color.RGBA{R: 255, G: 0, B: 255, A: 255}

	// DegenerateOrientation marks cells whose gradient is the zero vector.
	// Its non-zero blue channel cannot occur for a valid orientation.
	DegenerateOrientation = color.RGBA{R: 128, G: 128, B: 128, A: 255}
)

// Boundary selects how central differences treat the first and last cell of an axis.
type Boundary int

const (
	// BoundaryWrap reads the missing neighbour from the opposite edge.
	BoundaryWrap Boundary = iota
	// BoundaryClamp reads the border cell itself in place of the missing neighbour.
	BoundaryClamp
)

// String returns "wrap" or "clamp".
func (b Boundary) String() string {
	switch b {
	case BoundaryWrap:
		return "wrap"
	case BoundaryClamp:
		return "clamp"
	default:
		return fmt.Sprintf("Boundary(%d)", int(b))
	}
}

// ParseBoundary maps "wrap" or "clamp" (case-insensitive) to a Boundary.
func ParseBoundary(s string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wrap", "":
		return BoundaryWrap, nil
	case "clamp":
		return BoundaryClamp, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownBoundary, s)
	}
}

// Options configures the gradient converters.
type Options struct {
	Boundary Boundary
}

// Option is a functional option for the gradient converters.
type Option func(*Options)

// WithBoundary selects the border treatment for gradients.
func WithBoundary(b Boundary) Option {
	return func(o *Options) {
		o.Boundary = b
	}
}

// DefaultOptions returns Options{Boundary: BoundaryWrap}.
func DefaultOptions() Options {
	return Options{Boundary: BoundaryWrap}
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Converter turns a field into a displayable image.
type Converter func(f *field.Field, opts ...Option) *image.RGBA

// converters is the name registry used by drivers to select outputs.
var converters = map[string]Converter{
	"gray":        grayConverter,
	"gradient":    GradientMagnitude,
	"orientation": GradientOrientation,
}

func grayConverter(f *field.Field, _ ...Option) *image.RGBA { return Grayscale(f) }

// Lookup returns the converter registered under name.
func Lookup(name string) (Converter, error) {
	c, ok := converters[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownConverter, name, strings.Join(Names(), ", "))
	}
	return c, nil
}

// Names returns the registered converter names in sorted order.
func Names() []string {
	names := make([]string, 0, len(converters))
	for n := range converters {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
