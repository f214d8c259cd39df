// Package closurekit classifies deferred computations by how they capture their environment.
//
// A closure is a unit of deferred computation plus captured state.
// Without a borrow checker, the capture discipline has to be expressed
// through the shape of the API itself, so the package offers three shapes:
//
//   - Once: the closure takes ownership of its call, and may consume
//     captured state, thus it is callable at most once.
//   - Bind: the closure holds an exclusively owned mutable context object,
//     and may update it across unlimited calls.
//   - Share: the closure reads a shared context object, the context is
//     captured by value, so neither the closure nor its callers can mutate
//     the original.
package closurekit

import (
	"sync/atomic"

	"go.llib.dev/containerkit/pkg/errorkit"
)

// ErrConsumed is returned when a consuming closure is called after its single permitted call.
const ErrConsumed errorkit.Error = "Consumed"

// Once wraps fn into a by-value/move style closure.
//
// The returned OnceFn owns its single call the same way a moved-in value is
// owned: the first Call executes fn, every later Call returns ErrConsumed
// without invoking fn.
func Once[I, O any](fn func(I) O) *OnceFn[I, O] {
	return &OnceFn[I, O]{fn: fn}
}

// OnceFn is a closure that may consume its captured state, thus callable at most once.
type OnceFn[I, O any] struct {
	fn   func(I) O
	done int32
}

// Call invokes the wrapped function once, and returns ErrConsumed on every later call.
func (c *OnceFn[I, O]) Call(in I) (O, error) {
	if !atomic.CompareAndSwapInt32(&c.done, 0, 1) {
		var zero O
		return zero, ErrConsumed
	}
	return c.fn(in), nil
}

// Consumed reports whether the closure already spent its single permitted call.
func (c *OnceFn[I, O]) Consumed() bool {
	return atomic.LoadInt32(&c.done) != 0
}

// Bind wraps fn together with an exclusively held mutable context object.
//
// The returned MutFn is the by-mutable-reference capture shape:
// fn may update *S on every call, and as long as the MutFn is in use,
// no other party should access the bound state.
func Bind[S, I, O any](state *S, fn func(*S, I) O) *MutFn[S, I, O] {
	return &MutFn[S, I, O]{state: state, fn: fn}
}

// MutFn is a closure that mutates a bound context object across calls.
type MutFn[S, I, O any] struct {
	state *S
	fn    func(*S, I) O
}

// Call invokes the wrapped function with the bound mutable state.
func (c *MutFn[S, I, O]) Call(in I) O {
	return c.fn(c.state, in)
}

// State hands back the bound context object.
// Accessing it while the closure is still in use breaks the exclusivity discipline.
func (c *MutFn[S, I, O]) State() *S {
	return c.state
}

// Share returns a by-immutable-reference style closure.
//
// The state is captured by value, the returned function only reads it,
// and any number of such closures may coexist over the same source value.
func Share[S, I, O any](state S, fn func(S, I) O) func(I) O {
	return func(in I) O {
		return fn(state, in)
	}
}
