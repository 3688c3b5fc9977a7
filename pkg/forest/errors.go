package forest

import "errors"

// Sentinel errors returned by Tree operations. All of them indicate
// programmer error — the growth engine is structured so that none of
// these are ever triggered in normal operation (see package vessel).
var (
	// ErrRootExists is returned by CreateRoot when the tree already has one.
	ErrRootExists = errors.New("forest: tree already has a root")
	// ErrNoRoot is returned by operations that require an existing root.
	ErrNoRoot = errors.New("forest: tree has no root yet")
	// ErrTooManyChildren is returned when a node already has two children.
	ErrTooManyChildren = errors.New("forest: node already has two children")
	// ErrUnknownNode is returned by GetNode for an id outside the arena.
	ErrUnknownNode = errors.New("forest: unknown node id")
)
