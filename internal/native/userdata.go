package native

import (
	"sync"
	"sync/atomic"
)

// UserData is the opaque value registered with a reader next to its
// callback table and handed back to every callback. It is an integer key
// into a process-wide table so no Go pointer ever crosses the boundary.
type UserData uintptr

var (
	userData     sync.Map
	userDataNext atomic.Uintptr
)

// NewUserData stores v and returns the key that resolves it. The key must
// be released with Delete once the engine no longer calls back with it.
func NewUserData(v any) UserData {
	if v == nil {
		panic("native: NewUserData called with nil value")
	}
	u := UserData(userDataNext.Add(1))
	userData.Store(u, v)
	return u
}

// Value returns the value stored for u. A stale or forged key is a broken
// engine invariant and panics.
func (u UserData) Value() any {
	v, ok := userData.Load(u)
	if !ok {
		panic("native: invalid user data")
	}
	return v
}

// Delete releases u. Deleting twice is a no-op.
func (u UserData) Delete() {
	userData.Delete(u)
}
