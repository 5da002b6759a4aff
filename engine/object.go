package engine

import (
	"iter"
	"reflect"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
)

// ErrDuplicateProperty is returned when attaching a property of a type the
// object already holds.
var ErrDuplicateProperty = eris.New("property type already attached")

// GameObject is a composable entity placed in a scene. It holds a set of
// properties, at most one per concrete property type, and belongs to exactly
// one scene for its whole lifetime.
type GameObject struct {
	name    string
	uid     uuid.UUID
	handle  Handle
	scene   *Scene
	enabled bool

	props  []Property // attach order
	byType map[reflect.Type]Property
}

// Name returns the object's display name.
func (o *GameObject) Name() string { return o.name }

// UID returns the object's stable unique identity. Unlike the Handle, the
// UID never changes, not even across arena compaction.
func (o *GameObject) UID() uuid.UUID { return o.uid }

// Handle returns the object's current arena handle.
func (o *GameObject) Handle() Handle { return o.handle }

// Scene returns the scene that owns this object.
func (o *GameObject) Scene() *Scene { return o.scene }

// Enabled reports whether the object participates in update and draw passes.
func (o *GameObject) Enabled() bool { return o.enabled }

// Enable re-enables a disabled object. Enabled objects are updated and
// drawn each frame.
func (o *GameObject) Enable() { o.enabled = true }

// Disable removes the object from update and draw passes without despawning
// it. Its properties keep their state.
func (o *GameObject) Disable() { o.enabled = false }

// Transform returns the object's transform property.
func (o *GameObject) Transform() *Transform {
	return Get[Transform](o)
}

// Properties iterates over the attached properties in attach order.
func (o *GameObject) Properties() iter.Seq[Property] {
	return func(yield func(Property) bool) {
		for _, p := range o.props {
			if !yield(p) {
				return
			}
		}
	}
}

// PropertyCount returns the number of attached properties.
func (o *GameObject) PropertyCount() int { return len(o.props) }

// Attach adds a property to the object. It fails with ErrDuplicateProperty
// if a property of the same concrete type is already attached.
//
// Attaching during an update pass is not safe; use Frame.Commands instead.
// Attach does not invoke the property's Start hook: that happens during
// scene activation, or at command flush for deferred attaches.
func (o *GameObject) Attach(p Property) error {
	t := propertyType(p)
	if _, ok := o.byType[t]; ok {
		return eris.Wrapf(ErrDuplicateProperty, "attach %s to %q", t.String(), o.name)
	}
	o.props = append(o.props, p)
	o.byType[t] = p
	return nil
}

// Detach removes the property with the given concrete struct type. It
// returns false when no such property is attached. The Finish hook is not
// invoked; deferred detaches via Frame.Commands run it in active scenes.
func (o *GameObject) Detach(t reflect.Type) bool {
	p, ok := o.byType[t]
	if !ok {
		return false
	}
	delete(o.byType, t)
	for i, q := range o.props {
		if q == p {
			o.props = append(o.props[:i], o.props[i+1:]...)
			break
		}
	}
	return true
}

// Get returns the property of type T attached to the object, or nil when
// the object has no such property.
func Get[T any](o *GameObject) *T {
	if o == nil {
		return nil
	}
	p, ok := o.byType[reflect.TypeFor[T]()]
	if !ok {
		return nil
	}
	return p.(*T)
}

// Has reports whether the object carries a property of type T.
func Has[T any](o *GameObject) bool {
	return Get[T](o) != nil
}

// ObjectRef is a stable reference to a game object. Unlike a raw Handle it
// stays valid across arena compaction and resolves to nil once the object
// is despawned.
type ObjectRef struct {
	Handle Handle
	scene  *Scene
}

// Object resolves the reference. It returns nil once the referenced object
// has been despawned.
func (r *ObjectRef) Object() *GameObject {
	if r == nil || r.scene == nil || !r.Handle.Valid() {
		return nil
	}
	return r.scene.objects.get(r.Handle)
}

// Alive reports whether the referenced object still exists.
func (r *ObjectRef) Alive() bool {
	return r.Object() != nil
}
