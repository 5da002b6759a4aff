package engine

import "reflect"

// Property is a unit of behavior or data attached to a GameObject: a
// position, a sprite, a script. Concrete properties are pointers to structs;
// a GameObject holds at most one property per concrete type.
//
// Behavior is opt-in through the capability interfaces below. A property
// that implements none of them is pure data.
type Property any

// Starter is implemented by properties that need setup when their scene
// becomes active or when their object is spawned into an active scene.
type Starter interface {
	Start(obj *GameObject)
}

// Updater is implemented by properties with per-frame behavior. Update runs
// once per frame during the scene's update pass, in attach order.
type Updater interface {
	Update(obj *GameObject, frame *Frame)
}

// Drawer is implemented by properties that render. Drawing is just another
// property behavior: there is no draw method on GameObject itself.
type Drawer interface {
	Draw(obj *GameObject, canvas *Canvas)
}

// Finisher is implemented by properties that need cleanup when their scene
// is deactivated or when their object is despawned.
type Finisher interface {
	Finish(obj *GameObject)
}

// propertyType returns the concrete struct type used as the attachment key.
func propertyType(p Property) reflect.Type {
	t := reflect.TypeOf(p)
	if t == nil {
		panic("nil property")
	}
	if t.Kind() != reflect.Ptr || t.Elem().Kind() != reflect.Struct {
		panic("properties must be pointers to structs, got " + t.String())
	}
	return t.Elem()
}
