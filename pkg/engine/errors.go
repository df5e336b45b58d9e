package engine

import "errors"

// Sentinel errors returned by engine operations.
var (
	// ErrUnknownAlgorithm indicates an [Algorithm] outside the closed set
	// {Bubble, Insertion, Selection}, or an unparseable algorithm name.
	ErrUnknownAlgorithm = errors.New("engine: unknown algorithm")

	// ErrUnknownMethod indicates a search [Method] other than Linear or Binary.
	ErrUnknownMethod = errors.New("engine: unknown search method")
)
