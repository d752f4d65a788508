// Package collide provides a 2D collision world backed by a chipmunk space.
//
// The world knows nothing about gameplay. Each object carries an opaque
// payload of type T that callers use to map contacts back to their own
// entities. Objects are sensor shapes on kinematic bodies: dynamics are
// not simulated and only contacts are reported.
package collide

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jakecoffman/cp"
	"gonum.org/v1/gonum/spatial/r2"
)

// ErrUnknownHandle is returned when a handle does not name a live object.
var ErrUnknownHandle = errors.New("collide: unknown handle")

// Handle identifies an object in a World. The zero Handle is never valid.
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether h is the zero handle.
func (h Handle) IsZero() bool {
	return h.gen == 0
}

// String implements fmt.Stringer.
func (h Handle) String() string {
	return fmt.Sprintf("handle(%d:%d)", h.index, h.gen)
}

func (h Handle) less(o Handle) bool {
	if h.index != o.index {
		return h.index < o.index
	}
	return h.gen < o.gen
}

// QueryType selects how an object's overlaps are reported.
type QueryType uint8

const (
	// QueryContacts reports the object's overlaps through ContactPairs.
	QueryContacts QueryType = iota
	// QueryProximity reports overlaps through ProximityPairs, without contact detail.
	QueryProximity
)

// ContactPair is a pair of touching objects. A is always ordered before B.
type ContactPair struct {
	A, B    Handle
	Contact Contact
}

type object[T any] struct {
	gen     uint32
	alive   bool
	body    *cp.Body
	shape   *cp.Shape
	query   QueryType
	payload T
}

// World is a collision world whose objects carry payloads of type T.
// It is not safe for concurrent use.
type World[T any] struct {
	space   *cp.Space
	margin  float64
	objects []object[T]
	free    []uint32
	count   int

	contacts    []ContactPair
	proximities []ContactPair
}

// NewWorld creates an empty world. margin is the distance under which
// separated shapes are still reported.
func NewWorld[T any](margin float64) *World[T] {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{})
	return &World[T]{
		space:  space,
		margin: margin,
	}
}

// Add inserts an object and returns its handle.
func (w *World[T]) Add(pos r2.Vec, shape Shape, groups Groups, query QueryType, payload T) Handle {
	var idx uint32
	if n := len(w.free); n > 0 {
		idx = w.free[n-1]
		w.free = w.free[:n-1]
	} else {
		idx = uint32(len(w.objects))
		w.objects = append(w.objects, object[T]{})
	}

	obj := &w.objects[idx]
	obj.gen++
	h := Handle{index: idx, gen: obj.gen}

	body := w.space.AddBody(cp.NewKinematicBody())
	body.SetPosition(cpVec(pos))

	s := shape.attach(body, w.margin/2)
	s.SetSensor(true)
	s.SetFilter(groups.filter())
	s.UserData = h
	w.space.AddShape(s)

	obj.alive = true
	obj.body = body
	obj.shape = s
	obj.query = query
	obj.payload = payload
	w.count++

	return h
}

func (w *World[T]) get(h Handle) (*object[T], bool) {
	if h.IsZero() || int(h.index) >= len(w.objects) {
		return nil, false
	}
	obj := &w.objects[h.index]
	if !obj.alive || obj.gen != h.gen {
		return nil, false
	}
	return obj, true
}

// Contains reports whether h names a live object.
func (w *World[T]) Contains(h Handle) bool {
	_, ok := w.get(h)
	return ok
}

// SetPosition moves an object. The move is seen by the next Update.
func (w *World[T]) SetPosition(h Handle, pos r2.Vec) error {
	obj, ok := w.get(h)
	if !ok {
		return fmt.Errorf("setting position of %v: %w", h, ErrUnknownHandle)
	}
	obj.body.SetPosition(cpVec(pos))
	return nil
}

// Position returns an object's position.
func (w *World[T]) Position(h Handle) (r2.Vec, bool) {
	obj, ok := w.get(h)
	if !ok {
		return r2.Vec{}, false
	}
	return vec(obj.body.Position()), true
}

// Payload returns the payload attached to an object.
func (w *World[T]) Payload(h Handle) (T, bool) {
	obj, ok := w.get(h)
	if !ok {
		var zero T
		return zero, false
	}
	return obj.payload, true
}

// Remove deletes objects. Every live handle is removed even if some of the
// others are unknown; the returned error names each unknown handle.
func (w *World[T]) Remove(handles ...Handle) error {
	var errs []error
	for _, h := range handles {
		obj, ok := w.get(h)
		if !ok {
			errs = append(errs, fmt.Errorf("removing %v: %w", h, ErrUnknownHandle))
			continue
		}
		w.space.RemoveShape(obj.shape)
		w.space.RemoveBody(obj.body)

		var zero T
		obj.alive = false
		obj.body = nil
		obj.shape = nil
		obj.payload = zero
		w.free = append(w.free, h.index)
		w.count--
	}
	return errors.Join(errs...)
}

// Len returns the number of live objects.
func (w *World[T]) Len() int {
	return w.count
}

// Update refreshes the space's spatial index and the pair lists.
// Pairs involving objects removed after Update are still listed until the
// next Update, but their payload lookups fail.
func (w *World[T]) Update() {
	w.contacts = w.contacts[:0]
	w.proximities = w.proximities[:0]

	// Kinematic bodies carry no velocity, so stepping only reindexes the
	// shapes at their new positions.
	w.space.Step(1)

	for i := range w.objects {
		a := &w.objects[i]
		if !a.alive {
			continue
		}
		ha := Handle{index: uint32(i), gen: a.gen}

		w.space.ShapeQuery(a.shape, func(other *cp.Shape, set *cp.ContactPointSet) {
			hb, ok := other.UserData.(Handle)
			if !ok || !ha.less(hb) || set.Count == 0 {
				return
			}
			b, ok := w.get(hb)
			if !ok {
				return
			}

			pair := ContactPair{A: ha, B: hb}
			if a.query == QueryContacts && b.query == QueryContacts {
				pair.Contact = contactFrom(set, w.margin)
				w.contacts = append(w.contacts, pair)
			} else {
				w.proximities = append(w.proximities, pair)
			}
		})
	}

	sortPairs(w.contacts)
	sortPairs(w.proximities)
}

// ContactPairs returns the touching pairs found by the last Update.
// The slice is reused by the next Update.
func (w *World[T]) ContactPairs() []ContactPair {
	return w.contacts
}

// ProximityPairs returns overlapping pairs involving a proximity-only object.
func (w *World[T]) ProximityPairs() []ContactPair {
	return w.proximities
}

func sortPairs(pairs []ContactPair) {
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A != pairs[j].A {
			return pairs[i].A.less(pairs[j].A)
		}
		return pairs[i].B.less(pairs[j].B)
	})
}
