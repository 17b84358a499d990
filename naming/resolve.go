package naming

import (
	"context"
	"strings"

	"github.com/golang/glog"
	"github.com/lainio/err2"
	"github.com/lainio/err2/try"
)

// ResolutionState classifies a lookup result. The three-way split matters:
// a name without a visible record is not necessarily free, its registration
// may still be propagating between naming server replicas.
type ResolutionState int

const (
	// Found means the record is visible and carried in the Resolution.
	Found ResolutionState = iota

	// NotFound means the server has no record and no pending registration.
	NotFound

	// Pending means a registration was accepted but has not propagated
	// yet. Treating this as "name is free" would be wrong.
	Pending
)

func (s ResolutionState) String() string {
	return [...]string{"found", "not found", "pending"}[s]
}

// Resolution is the outcome of a name lookup.
type Resolution struct {
	State ResolutionState
	Info  *RegisteredNameInfo // non-nil only when State is Found
}

// Resolver performs read-only name lookups. It never retries and never
// caches: a stale answer served silently would be worse than a failed call.
type Resolver struct {
	api API
}

// NewResolver returns a resolver on top of the given naming API.
func NewResolver(api API) *Resolver {
	return &Resolver{api: api}
}

// Resolve looks up the current record of a name. The name must be non-empty
// and already normalized. Transport failures surface as *ConnectionError,
// everything else is answered through the Resolution state.
func (r *Resolver) Resolve(ctx context.Context, name string) (res Resolution, err error) {
	defer err2.Handle(&err)

	if name == "" || name != strings.TrimSpace(name) {
		return Resolution{}, ErrInvalidName
	}

	info := try.To1(r.api.GetCurrent(ctx, name))
	if info != nil {
		return Resolution{State: Found, Info: info}, nil
	}

	// No visible record. The server knows whether the name is genuinely
	// free or just not yet propagated; its classification is authoritative.
	free := try.To1(r.api.IsFree(ctx, name))
	if free {
		return Resolution{State: NotFound}, nil
	}

	glog.V(1).Infof("name %q is registered but not visible yet", name)
	return Resolution{State: Pending}, nil
}
