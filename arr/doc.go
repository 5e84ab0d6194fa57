// Package arr provides generic Filter and Map helpers over slices of
// references ([]*T).
//
// # Ownership
//
// The helpers never copy or take ownership of the pointed-to objects. The
// slices they return hold the same pointers as their input, so the caller
// must keep the underlying objects alive (and must not reallocate the slice
// backing them, when using [Refs]) for as long as the result is in use.
//
//	users := []User{{Name: "Alice", Admin: true}, {Name: "Bob"}}
//	admins := arr.Filter(arr.Refs(users), func(u *User) bool { return u.Admin })
//	names  := arr.Map(admins, func(u *User) string { return u.Name }) // → ["Alice"]
//
// # Callbacks
//
// Predicates and transforms are invoked exactly once per element, in input
// order. They may have side effects, but must not modify the input slice
// while it is being traversed; doing so leaves the output unspecified.
package arr
