// Package tracking maintains the set of connected device slots and resolves
// raw snapshot samples into structured poses. Connect/disconnect transitions
// are derived by diffing consecutive snapshots against a registered-set; the
// native runtime's event stream is never consulted for lifecycle.
package tracking

import "vrhal/internal/runtime"

// Registry is the fixed-capacity membership table of slots that have been
// reported to the consumer as present. It is owned by exactly one backend
// instance and initialized lazily on the first successful snapshot.
type Registry struct {
	registered  [runtime.MaxTrackedDevices]bool
	initialized bool
}

// Added reports slots whose connectivity flipped to connected, flipping their
// bit as a side effect. The first call with a snapshot present treats every
// connected slot as newly discovered and initializes the table to match.
// Returns nil when no snapshot exists, or when nothing changed after
// initialization. Emission order is ascending slot index.
func (r *Registry) Added(snap *runtime.PoseSnapshot) []uint32 {
	if snap == nil {
		return nil
	}

	if !r.initialized {
		added := make([]uint32, 0, runtime.MaxTrackedDevices)
		for i := range snap {
			connected := snap[i].Connected
			r.registered[i] = connected
			if connected {
				added = append(added, uint32(i))
			}
		}
		r.initialized = true
		return added
	}

	var added []uint32
	for i := range snap {
		if !r.registered[i] && snap[i].Connected {
			r.registered[i] = true
			added = append(added, uint32(i))
		}
	}
	return added
}

// Removed reports slots whose connectivity dropped, flipping their bit. A slot
// can only appear here after having appeared in Added, so the table must be
// initialized first. Emission order is ascending slot index.
func (r *Registry) Removed(snap *runtime.PoseSnapshot) []uint32 {
	if !r.initialized || snap == nil {
		return nil
	}

	var removed []uint32
	for i := range snap {
		if r.registered[i] && !snap[i].Connected {
			r.registered[i] = false
			removed = append(removed, uint32(i))
		}
	}
	return removed
}

// Initialized reports whether the first snapshot has been absorbed.
func (r *Registry) Initialized() bool { return r.initialized }
