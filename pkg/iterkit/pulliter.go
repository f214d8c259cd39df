package iterkit

import (
	"io"
	"iter"

	"go.llib.dev/containerkit/pkg/errorkit"
)

// PullIter is the cursor style iteration contract.
// Advance with Next and read the current element with Value;
// once Next reports false, Err tells whether the walk ended in failure.
// The shape follows the stdlib decoder convention (json.Decoder, bufio.Scanner),
// which makes it a natural fit for sources with external resources behind them.
type PullIter[V any] interface {
	// Next advances the cursor to the next element.
	// It reports false when the source is exhausted or when retrieval failed,
	// in which case Err returns the cause.
	Next() bool
	// Value reads the element the cursor currently stands on.
	// It is repeatable and free of side effects between two Next calls.
	Value() V
	// Closer releases whatever resource the cursor holds.
	// Cursors without such a resource simply return nil.
	io.Closer
	// Err returns the failure that ended the walk, if any.
	Err() error
}

// ToPullIter exposes a failable sequence through the PullIter cursor contract.
// An error pair ends the walk: Next reports false and Err returns the cause.
func ToPullIter[T any](itr ErrSeq[T]) PullIter[T] {
	next, stop := iter.Pull2(itr)
	return &pullIter[T]{next: next, stop: stop}
}

// FromPullIter walks a cursor as a failable sequence.
// The sequence is single use, and the cursor is closed once the walk is over,
// with any iteration or close failure yielded as the final error pair.
func FromPullIter[T any](itr PullIter[T]) SingleUseErrSeq[T] {
	return Once2(func(yield func(T, error) bool) {
		defer itr.Close()
		for itr.Next() {
			if !yield(itr.Value(), nil) {
				return
			}
		}
		if err := errorkit.Merge(itr.Err(), itr.Close()); err != nil {
			var zero T
			yield(zero, err)
		}
	})
}

// SingleUseErrSeq is an ErrSeq[T] that can only be iterated once.
// After iteration, it is expected to yield no more values.
// For more information on single use sequences, please read the documentation of SingleUseSeq.
type SingleUseErrSeq[T any] = ErrSeq[T]

// CollectPullIter drains a cursor into a slice and closes it.
// The iteration error and the close error are reported together.
func CollectPullIter[T any](itr PullIter[T]) ([]T, error) {
	if itr == nil {
		return nil, nil
	}
	defer itr.Close()
	var vs []T
	for itr.Next() {
		vs = append(vs, itr.Value())
	}
	return vs, errorkit.Merge(itr.Err(), itr.Close())
}

type pullIter[T any] struct {
	next func() (T, error, bool)
	stop func()
	val  T
	err  error
	done bool
}

func (i *pullIter[T]) Next() bool {
	if i.done {
		return false
	}
	v, err, ok := i.next()
	if !ok {
		return false
	}
	if err != nil {
		i.err = err
		_ = i.Close()
		return false
	}
	i.val = v
	return true
}

func (i *pullIter[T]) Close() error {
	if i.done {
		return nil
	}
	i.done = true
	i.stop()
	return nil
}

func (i *pullIter[T]) Err() error {
	return i.err
}

func (i *pullIter[T]) Value() T {
	return i.val
}
