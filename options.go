// SPDX-License-Identifier: MIT
// Package: subiso
//
// options.go — Kind, Representation, Options and functional options.
//
// Contract:
//   - DefaultOptions is Induced, unlimited matches, automatic worker count,
//     automatic representation, attribute-only matching, no logging.
//   - Option constructors panic on meaningless values; Run reports the same
//     problems as errors for Options assembled by hand (CLI, config files).

package subiso

import (
	"fmt"
	"log/slog"
	"strings"
)

// Kind selects which pattern relations an embedding must preserve.
type Kind int

const (
	// Induced maps pattern edges to target edges and pattern non-edges
	// to target non-edges.
	Induced Kind = iota
	// NonInduced maps pattern edges to target edges; pattern non-edges
	// impose no constraint.
	NonInduced
)

// String returns the canonical lowercase name used by the CLI.
func (k Kind) String() string {
	switch k {
	case Induced:
		return "induced"
	case NonInduced:
		return "non-induced"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) valid() bool { return k == Induced || k == NonInduced }

// ParseKind maps "induced" and "non-induced" (also "non_induced",
// "noninduced"; case-insensitive) to a Kind.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "induced", "":
		return Induced, nil
	case "non-induced", "non_induced", "noninduced":
		return NonInduced, nil
	default:
		return 0, fmt.Errorf("ParseKind: %q: %w", s, ErrUnknownKind)
	}
}

// Representation selects the physical encoding of a Graph's adjacency.
type Representation int

const (
	// AutoRepresentation picks BitRepresentation for dense graphs whose
	// bit matrix fits maxBitMatrixBytes, ListRepresentation otherwise.
	AutoRepresentation Representation = iota
	// BitRepresentation stores one n-bit row per vertex.
	BitRepresentation
	// ListRepresentation reuses the sorted CSR neighbor rows.
	ListRepresentation
)

// String returns the canonical lowercase name used by the CLI.
func (r Representation) String() string {
	switch r {
	case AutoRepresentation:
		return "auto"
	case BitRepresentation:
		return "bit"
	case ListRepresentation:
		return "list"
	default:
		return fmt.Sprintf("Representation(%d)", int(r))
	}
}

func (r Representation) valid() bool {
	return r == AutoRepresentation || r == BitRepresentation || r == ListRepresentation
}

// ParseRepresentation maps "auto", "bit" and "list" to a Representation.
func ParseRepresentation(s string) (Representation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "auto", "":
		return AutoRepresentation, nil
	case "bit", "bits":
		return BitRepresentation, nil
	case "list", "lists":
		return ListRepresentation, nil
	default:
		return 0, fmt.Errorf("ParseRepresentation: %q: %w", s, ErrUnknownRepresentation)
	}
}

// Options configures one search.
type Options struct {
	// Kind is Induced or NonInduced. Default Induced.
	Kind Kind

	// MaxMatchCount caps the number of rows; 0 means unlimited.
	// When the cap is reached the remaining work is abandoned.
	MaxMatchCount int

	// Workers is the number of engines; 0 derives it from GOMAXPROCS.
	// It is further capped by the number of first-level candidates.
	Workers int

	// Representation of the target graph. Default AutoRepresentation.
	Representation Representation

	// SemanticMatch additionally requires equal edge attributes on every
	// pattern edge when both graphs carry edge attributes.
	SemanticMatch bool

	// Ordering overrides the built-in pattern ordering when non-nil.
	Ordering *Ordering

	// Logger receives Debug-level run and engine events.
	// Default discards everything.
	Logger *slog.Logger
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Kind:           Induced,
		MaxMatchCount:  0,
		Workers:        0,
		Representation: AutoRepresentation,
		SemanticMatch:  false,
		Ordering:       nil,
		Logger:         slog.New(slog.DiscardHandler),
	}
}

// Validate reports the first meaningless field.
func (o Options) Validate() error {
	const method = "Options.Validate"
	if !o.Kind.valid() {
		return fmt.Errorf("%s: %v: %w", method, o.Kind, ErrUnknownKind)
	}
	if !o.Representation.valid() {
		return fmt.Errorf("%s: %v: %w", method, o.Representation, ErrUnknownRepresentation)
	}
	if o.MaxMatchCount < 0 {
		return fmt.Errorf("%s: max=%d: %w", method, o.MaxMatchCount, ErrNegativeMatchCount)
	}
	if o.Workers < 0 {
		return fmt.Errorf("%s: workers=%d: %w", method, o.Workers, ErrNegativeWorkers)
	}

	return nil
}

// Option mutates Options before a search starts.
type Option func(*Options)

// WithKind selects the isomorphism kind. Panics on an unknown Kind.
func WithKind(k Kind) Option {
	if !k.valid() {
		panic(fmt.Sprintf("subiso: WithKind(%v)", k))
	}

	return func(o *Options) { o.Kind = k }
}

// WithMaxMatchCount caps the number of rows (0 = unlimited).
// Panics on a negative cap.
func WithMaxMatchCount(k int) Option {
	if k < 0 {
		panic(fmt.Sprintf("subiso: WithMaxMatchCount(%d)", k))
	}

	return func(o *Options) { o.MaxMatchCount = k }
}

// WithWorkers fixes the engine count (0 = automatic). Panics on n < 0.
func WithWorkers(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("subiso: WithWorkers(%d)", n))
	}

	return func(o *Options) { o.Workers = n }
}

// WithRepresentation forces the target encoding. Panics on an unknown value.
func WithRepresentation(r Representation) Option {
	if !r.valid() {
		panic(fmt.Sprintf("subiso: WithRepresentation(%v)", r))
	}

	return func(o *Options) { o.Representation = r }
}

// WithSemanticMatch enables edge-attribute equality on pattern edges.
func WithSemanticMatch() Option {
	return func(o *Options) { o.SemanticMatch = true }
}

// WithOrdering replaces the built-in pattern ordering. The ordering is
// validated against the pattern by Match.
func WithOrdering(ord Ordering) Option {
	cp := ord.clone()

	return func(o *Options) { o.Ordering = &cp }
}

// WithLogger routes Debug-level search events to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("subiso: WithLogger(nil)")
	}

	return func(o *Options) { o.Logger = l }
}
