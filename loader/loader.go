// Package loader declares the contract every external history source
// implements (spec.md §1 "external collaborators... supply a typed
// History"). The SI decision engine never imports a concrete loader; it
// only ever sees the history.History the loader produces.
package loader

import (
	"io"

	"github.com/tsunaou/polysi-go/history"
)

// Loader reads an external representation of a transactional history into
// a frozen history.History. Implementations never retry on failure
// (spec.md §4.11/§7 propagation policy): a malformed record surfaces
// immediately as an invalid-history error.
type Loader interface {
	Load(r io.Reader) (*history.History, error)
}
