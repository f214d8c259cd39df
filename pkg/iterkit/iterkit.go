// Package iterkit provides a lazy sequence protocol with adapters and consumers.
//
// # Summary
//
// An iterator's goal is to decouple the origin of the data from the consumer who uses that data.
// An iterator represents an iterable list of elements,
// which length is not known until it is fully iterated, thus can range from zero to infinity.
// The producer type of the package is the standard iter.Seq[T]:
// a pull based, stateful source of values that are computed on demand rather than materialised upfront.
// Adapters wrap a producer and intercept the pulling, consumers drive a producer
// to completion or to an early exit when their result is already determined.
//
// A composed pipeline is a single logical pass:
// once a consumer drained a single-use source, the same handle yields no more values.
// Cancelling a pipeline is simply not pulling from it any further,
// side effects already performed by upstream adapters remain in place.
//
// The package carries no internal synchronisation,
// a pipeline belongs to a single goroutine.
//
// # Resources
//
// https://en.wikipedia.org/wiki/Iterator_pattern
// https://en.wikipedia.org/wiki/Pipeline_(software)
package iterkit

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"

	"go.llib.dev/containerkit/pkg/errorkit"
)

type I1[T any] interface {
	iter.Seq[T] | ErrSeq[T]
}

// SingleUseSeq is an iter.Seq[T] that can only be iterated once.
// After iteration, it is expected to yield no more values.
//
// Most iterators provide the ability to walk an entire sequence:
// when called, the iterator does any setup necessary to start the sequence,
// then calls yield on successive elements of the sequence, and then cleans up before returning.
// Calling the iterator again walks the sequence again.
//
// SingleUseSeq iterators break that convention, providing the ability to walk a sequence only once.
// These “single-use iterators” typically report values from a data stream that cannot be rewound to start over.
// Calling the iterator again after stopping early may continue the stream,
// but calling it again after the sequence is finished will yield no values at all.
//
// If an iterator sequence is single use,
// it should either have comments for functions or methods that return single-use iterators
// or it should use the SingleUseSeq type to clearly express it with a return type.
type SingleUseSeq[T any] = iter.Seq[T]

// SingleUseSeq2 is an iter.Seq2[K, V] that can only be iterated once.
// After iteration, it is expected to yield no more values.
// For more information on single use sequences, please read the documentation of SingleUseSeq.
type SingleUseSeq2[K, V any] = iter.Seq2[K, V]

// ErrSeq is an iterator that can tell if a currently returned value has an issue or not.
type ErrSeq[T any] = iter.Seq2[T, error]

// ErrFunc is the check function that can tell if currently an iterator that is related to the error function has an issue or not.
type ErrFunc = errorkit.ErrFunc

// KV is a key value pair element of an iter.Seq2 sequence.
type KV[K, V any] struct {
	K K
	V V
}

//////////////////////////////////////////////////// sources /////////////////////////////////////////////////////////

// Slice returns an iterator over the values of the slice.
func Slice[T any](slice []T) iter.Seq[T] {
	return slices.Values(slice)
}

// Empty iterator is used to represent a nil result with the Null object pattern.
func Empty[T any]() iter.Seq[T] {
	return func(yield func(T) bool) {}
}

// Empty2 iterator is used to represent a nil result with the Null object pattern.
func Empty2[T1, T2 any]() iter.Seq2[T1, T2] {
	return func(yield func(T1, T2) bool) {}
}

// SingleValue creates an iterator that yields one single element.
func SingleValue[T any](v T) iter.Seq[T] {
	return func(yield func(T) bool) { yield(v) }
}

// FromKV returns an iterator over the received key value pairs.
func FromKV[K, V any](kvs []KV[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, kv := range kvs {
			if !yield(kv.K, kv.V) {
				return
			}
		}
	}
}

// IntRange returns an iterator that will range between the specified `begin` and the `end` int, both inclusive.
func IntRange(begin, end int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := begin; i <= end; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// CharRange returns an iterator that will range between the specified `begin` and the `end` rune, both inclusive.
func CharRange(begin, end rune) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for c := begin; c <= end; c++ {
			if !yield(c) {
				return
			}
		}
	}
}

// Chan creates an iterator out from a channel.
func Chan[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		if ch == nil {
			return
		}
		for v := range ch {
			if !yield(v) {
				return
			}
		}
	}
}

// FromPull adapts a pull function into an iter.Seq.
func FromPull[T any](next func() (T, bool), stops ...func()) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, stop := range stops {
			defer stop()
		}
		for {
			v, ok := next()
			if !ok {
				break
			}
			if !yield(v) {
				return
			}
		}
	}
}

// FromPull2 adapts a pull function into an iter.Seq2.
func FromPull2[K, V any](next func() (K, V, bool), stops ...func()) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, stop := range stops {
			defer stop()
		}
		for {
			k, v, ok := next()
			if !ok {
				break
			}
			if !yield(k, v) {
				return
			}
		}
	}
}

//////////////////////////////////////////////////// adapters ////////////////////////////////////////////////////////

// Map allows you to do additional transformation on the values.
// This is useful in cases where you have to alter the input value,
// or change the type all together.
// The transform function is invoked once per produced element, in order.
func Map[To any, From any](i iter.Seq[From], transform func(From) To) iter.Seq[To] {
	return func(yield func(To) bool) {
		for v := range i {
			if !yield(transform(v)) {
				break
			}
		}
	}
}

// Map2 allows you to do additional transformation on key value sequences.
func Map2[OKey, OVal, IKey, IVal any](i iter.Seq2[IKey, IVal], transform func(IKey, IVal) (OKey, OVal)) iter.Seq2[OKey, OVal] {
	return func(yield func(OKey, OVal) bool) {
		for k, v := range i {
			if !yield(transform(k, v)) {
				return
			}
		}
	}
}

// MapErr is the failable variant of Map.
// A transform error propagates through the pipeline as the error of the yielded pair.
func MapErr[To any, From any, Iter I1[From]](i Iter, transform func(From) (To, error)) ErrSeq[To] {
	var src ErrSeq[From] = castToErrSeq[From](i)
	return func(yield func(To, error) bool) {
		for v, err := range src {
			if err != nil {
				var zero To
				if !yield(zero, err) {
					return
				}
				continue
			}
			if !yield(transform(v)) {
				return
			}
		}
	}
}

// Filter will hide values from the consumer that the filter predicate doesn't approve.
// Pulling a filtered iterator keeps pulling the upstream
// until an accepted element or the upstream's exhaustion.
func Filter[T any, Iter I1[T]](i Iter, filter func(T) bool) Iter {
	if i == nil {
		return nil
	}
	switch i := any(i).(type) {
	case iter.Seq[T]:
		var itr iter.Seq[T] = func(yield func(T) bool) {
			for v := range i {
				if filter(v) {
					if !yield(v) {
						break
					}
				}
			}
		}
		return any(itr).(Iter)
	case ErrSeq[T]:
		var itr ErrSeq[T] = func(yield func(T, error) bool) {
			for v, err := range i {
				if err != nil {
					var zero T
					if !yield(zero, err) {
						return
					}
					continue
				}
				if filter(v) {
					if !yield(v, nil) {
						return
					}
				}
			}
		}
		return any(itr).(Iter)
	default:
		panic("not-implemented")
	}
}

// Filter2 will hide key value pairs from the consumer that the filter predicate doesn't approve.
func Filter2[K, V any](i iter.Seq2[K, V], filter func(k K, v V) bool) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range i {
			if filter(k, v) {
				if !yield(k, v) {
					break
				}
			}
		}
	}
}

// FilterMap is a single pass transform plus filter:
// the transform reports an ok flag per element,
// elements without the ok flag are silently dropped, the rest are yielded transformed.
// A dropped element is intentional filtering, not an error.
func FilterMap[To any, From any](i iter.Seq[From], transform func(From) (To, bool)) iter.Seq[To] {
	return func(yield func(To) bool) {
		for v := range i {
			o, ok := transform(v)
			if !ok {
				continue
			}
			if !yield(o) {
				return
			}
		}
	}
}

// Enumerate pairs each yielded element with a zero based sequence number.
// The numbering counts the elements this adapter yields,
// so it is applied after any upstream filtering.
func Enumerate[T any](i iter.Seq[T]) iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		var index int
		for v := range i {
			if !yield(index, v) {
				return
			}
			index++
		}
	}
}

// Zip yields positional pairs from the two producers,
// and terminates at the first exhaustion of either, without an error.
func Zip[A, B any](a iter.Seq[A], b iter.Seq[B]) iter.Seq2[A, B] {
	return func(yield func(A, B) bool) {
		nextA, stopA := iter.Pull(a)
		defer stopA()
		nextB, stopB := iter.Pull(b)
		defer stopB()
		for {
			av, ok := nextA()
			if !ok {
				return
			}
			bv, ok := nextB()
			if !ok {
				return
			}
			if !yield(av, bv) {
				return
			}
		}
	}
}

// Limit yields at most n elements then reports exhaustion,
// regardless of what remains upstream. A non positive n yields nothing.
func Limit[V any](i iter.Seq[V], n int) iter.Seq[V] {
	return func(yield func(V) bool) {
		next, stop := iter.Pull(i)
		defer stop()
		for limit := n; 0 < limit; limit-- {
			v, ok := next()
			if !ok {
				break
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Offset pulls and discards the first n upstream elements,
// then yields the remainder unchanged.
func Offset[V any](i iter.Seq[V], offset int) iter.Seq[V] {
	return func(yield func(V) bool) {
		next, stop := iter.Pull(i)
		defer stop()
		for i := 0; i < offset; i++ {
			v, ok := next()
			if !ok {
				return
			}
			_ = v // dispose
		}
		for {
			v, ok := next()
			if !ok {
				break
			}
			if !yield(v) {
				return
			}
		}
	}
}

// LimitWhile yields elements while the predicate holds.
// The first failing element is already consumed from the upstream and is discarded,
// and from that point the adapter reports permanent exhaustion,
// even if a later upstream element would satisfy the predicate again.
func LimitWhile[V any](i iter.Seq[V], pred func(V) bool) iter.Seq[V] {
	return func(yield func(V) bool) {
		for v := range i {
			if !pred(v) {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

// OffsetWhile discards the leading elements while the predicate holds.
// Once the predicate fails for an element, that element and every element after it
// is yielded unconditionally, the predicate is never evaluated again.
func OffsetWhile[V any](i iter.Seq[V], pred func(V) bool) iter.Seq[V] {
	return func(yield func(V) bool) {
		var skipping = true
		for v := range i {
			if skipping {
				if pred(v) {
					continue
				}
				skipping = false
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Merge exhausts the received producers one after the other, preserving their relative order.
func Merge[T any](is ...iter.Seq[T]) iter.Seq[T] {
	if len(is) == 0 {
		return Empty[T]()
	}
	return func(yield func(T) bool) {
		for _, i := range is {
			for v := range i {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Merge2 exhausts the received key value producers one after the other, preserving their relative order.
func Merge2[K, V any](is ...iter.Seq2[K, V]) iter.Seq2[K, V] {
	if len(is) == 0 {
		return Empty2[K, V]()
	}
	return func(yield func(K, V) bool) {
		for _, i := range is {
			for k, v := range i {
				if !yield(k, v) {
					return
				}
			}
		}
	}
}

// Reverse will reverse the iteration direction.
//
// # WARNING
//
// It does not work with infinite iterators,
// as it requires to collect all values before it can reverse the elements.
func Reverse[T any](i iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		var vs []T = Collect(i)
		for i := len(vs) - 1; 0 <= i; i-- {
			if !yield(vs[i]) {
				return
			}
		}
	}
}

// Flatten yields the elements of the inner producers in order,
// skipping the empty inner sequences.
func Flatten[T any](i iter.Seq[iter.Seq[T]]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for inner := range i {
			if inner == nil {
				continue
			}
			for v := range inner {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// FlattenSlices yields the elements of the inner slices in order,
// skipping the empty ones.
func FlattenSlices[T any](i iter.Seq[[]T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for inner := range i {
			for _, v := range inner {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// FlatMap maps each element into a producer, then flattens the results.
func FlatMap[To any, From any](i iter.Seq[From], transform func(From) iter.Seq[To]) iter.Seq[To] {
	return Flatten(Map(i, transform))
}

// Inspect invokes a side-effecting callback per element as it passes through,
// and forwards the element unchanged. It must not alter the yielded values,
// its use-case is debugging and instrumentation in the middle of a pipeline.
func Inspect[V any](i iter.Seq[V], callback func(V)) iter.Seq[V] {
	return func(yield func(V) bool) {
		for v := range i {
			callback(v)
			if !yield(v) {
				return
			}
		}
	}
}

// Once returns a sequence that walks the source at most once,
// later iterations of the returned sequence yield no values at all.
func Once[T any](i iter.Seq[T]) SingleUseSeq[T] {
	var done bool
	return func(yield func(T) bool) {
		if done {
			return
		}
		done = true
		for v := range i {
			if !yield(v) {
				return
			}
		}
	}
}

// Once2 returns a key value sequence that walks the source at most once.
func Once2[K, V any](i iter.Seq2[K, V]) SingleUseSeq2[K, V] {
	var done bool
	return func(yield func(K, V) bool) {
		if done {
			return
		}
		done = true
		for k, v := range i {
			if !yield(k, v) {
				return
			}
		}
	}
}

//////////////////////////////////////////////////// consumers ///////////////////////////////////////////////////////

// Collect fully drains the iterator and materialises the elements into a slice.
func Collect[T any](i iter.Seq[T]) []T {
	if i == nil {
		return nil
	}
	var vs = make([]T, 0)
	for v := range i {
		vs = append(vs, v)
	}
	return vs
}

type KVMapFunc[KV any, K, V any] func(K, V) KV

// Collect2 materialises a key value sequence with the help of a pair mapping function.
func Collect2[K, V, KV any](i iter.Seq2[K, V], m KVMapFunc[KV, K, V]) []KV {
	if i == nil {
		return nil
	}
	var es []KV
	for k, v := range i {
		es = append(es, m(k, v))
	}
	return es
}

// CollectKV materialises a key value sequence into KV pairs.
func CollectKV[K, V any](i iter.Seq2[K, V]) []KV[K, V] {
	return Collect2(i, func(k K, v V) KV[K, V] {
		return KV[K, V]{K: k, V: v}
	})
}

// Collect2Map materialises a key value sequence into a map.
func Collect2Map[K comparable, V any](i iter.Seq2[K, V]) map[K]V {
	if i == nil {
		return nil
	}
	var out = make(map[K]V)
	for k, v := range i {
		out[k] = v
	}
	return out
}

// CollectErr materialises a failable sequence.
// On the first error the consumption is aborted,
// and the partially accumulated results are discarded.
func CollectErr[T any](i ErrSeq[T]) ([]T, error) {
	if i == nil {
		return nil, nil
	}
	var vs []T
	for v, err := range i {
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}

// CollectString concatenates a character or string sequence into a single text.
func CollectString[T rune | string](i iter.Seq[T]) string {
	var sb strings.Builder
	for v := range i {
		switch v := any(v).(type) {
		case rune:
			sb.WriteRune(v)
		case string:
			sb.WriteString(v)
		}
	}
	return sb.String()
}

// CollectPull materialises the remaining values of a pull function.
func CollectPull[T any](next func() (T, bool), stops ...func()) []T {
	var vs = make([]T, 0)
	for _, stop := range stops {
		defer stop()
	}
	for {
		v, ok := next()
		if !ok {
			break
		}
		vs = append(vs, v)
	}
	return vs
}

// Reduce is an eager left to right accumulation over the sequence.
func Reduce[R, T any](i iter.Seq[T], initial R, fn func(R, T) R) R {
	var v = initial
	for c := range i {
		v = fn(v, c)
	}
	return v
}

// ReduceErr is the failable variant of Reduce.
// Both an upstream error and an accumulator error abort the consumption at that point.
func ReduceErr[R, T any, I I1[T]](i I, initial R, fn func(R, T) (R, error)) (result R, rErr error) {
	var v = initial
	for c, err := range castToErrSeq[T](i) {
		if err != nil {
			return v, err
		}
		v, err = fn(v, c)
		if err != nil {
			return v, err
		}
	}
	return v, nil
}

// Numeric is the constraint of the Sum and Product consumers.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Sum folds the sequence with addition, starting from the 0 identity.
// Integer overflow wraps around with the native go semantics.
func Sum[T Numeric](i iter.Seq[T]) T {
	var total T
	for v := range i {
		total += v
	}
	return total
}

// Product folds the sequence with multiplication, starting from the 1 identity.
// Integer overflow wraps around with the native go semantics.
func Product[T Numeric](i iter.Seq[T]) T {
	var product T = 1
	for v := range i {
		product *= v
	}
	return product
}

// Count will iterate over and count the total iterations number.
//
// Good when all you want is to count all the elements in an iterator but don't want to do anything else.
func Count[T any](i iter.Seq[T]) int {
	var total int
	for range i {
		total++
	}
	return total
}

// Count2 counts the pairs of a key value sequence.
func Count2[K, V any](i iter.Seq2[K, V]) int {
	var total int
	for range i {
		total++
	}
	return total
}

// First returns the first element of the iterator and stops pulling any further.
func First[T any](i iter.Seq[T]) (T, bool) {
	for v := range i {
		return v, true
	}
	var zero T
	return zero, false
}

// First2 returns the first pair of the iterator and stops pulling any further.
func First2[K, V any](i iter.Seq2[K, V]) (K, V, bool) {
	for k, v := range i {
		return k, v, true
	}
	var (
		zeroK K
		zeroV V
	)
	return zeroK, zeroV, false
}

// Last fully drains the iterator and returns the element it yielded last.
func Last[T any](i iter.Seq[T]) (T, bool) {
	var (
		last T
		ok   bool
	)
	for v := range i {
		last = v
		ok = true
	}
	return last, ok
}

// Last2 fully drains the iterator and returns the pair it yielded last.
func Last2[K, V any](i iter.Seq2[K, V]) (K, V, bool) {
	var (
		lastK K
		lastV V
		ok    bool
	)
	for k, v := range i {
		lastK = k
		lastV = v
		ok = true
	}
	return lastK, lastV, ok
}

// Min returns the smallest element of the sequence, or false when the sequence was empty.
// On equal extrema the first one wins in yield order.
func Min[T cmp.Ordered](i iter.Seq[T]) (T, bool) {
	return MinBy(i, cmp.Compare[T])
}

// Max returns the greatest element of the sequence, or false when the sequence was empty.
// On equal extrema the last one wins in yield order.
func Max[T cmp.Ordered](i iter.Seq[T]) (T, bool) {
	return MaxBy(i, cmp.Compare[T])
}

// MinBy generalises Min with a total order. The first of equal extrema wins.
func MinBy[T any](i iter.Seq[T], compare func(a, b T) int) (T, bool) {
	var (
		best  T
		found bool
	)
	for v := range i {
		if !found || compare(v, best) < 0 {
			best = v
			found = true
		}
	}
	return best, found
}

// MaxBy generalises Max with a total order. The last of equal extrema wins.
func MaxBy[T any](i iter.Seq[T], compare func(a, b T) int) (T, bool) {
	var (
		best  T
		found bool
	)
	for v := range i {
		if !found || 0 <= compare(v, best) {
			best = v
			found = true
		}
	}
	return best, found
}

// MinByKey generalises Min with a key extraction function.
func MinByKey[T any, K cmp.Ordered](i iter.Seq[T], key func(T) K) (T, bool) {
	return MinBy(i, func(a, b T) int { return cmp.Compare(key(a), key(b)) })
}

// MaxByKey generalises Max with a key extraction function.
func MaxByKey[T any, K cmp.Ordered](i iter.Seq[T], key func(T) K) (T, bool) {
	return MaxBy(i, func(a, b T) int { return cmp.Compare(key(a), key(b)) })
}

// Find returns the first element the predicate accepts.
// It short-circuits: after a match, nothing further is consumed from the upstream.
func Find[T any](i iter.Seq[T], pred func(T) bool) (T, bool) {
	for v := range i {
		if pred(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// Position returns the zero based index of the first element the predicate accepts.
// It short-circuits the same way Find does.
func Position[T any](i iter.Seq[T], pred func(T) bool) (int, bool) {
	var index int
	for v := range i {
		if pred(v) {
			return index, true
		}
		index++
	}
	return -1, false
}

// Any reports whether the predicate accepts at least one element.
// It short-circuits on the first accepted element,
// and it is false on an empty sequence.
func Any[T any](i iter.Seq[T], pred func(T) bool) bool {
	for v := range i {
		if pred(v) {
			return true
		}
	}
	return false
}

// All reports whether the predicate accepts every element.
// It short-circuits on the first rejected element,
// and it is vacuously true on an empty sequence.
func All[T any](i iter.Seq[T], pred func(T) bool) bool {
	for v := range i {
		if !pred(v) {
			return false
		}
	}
	return true
}

// ForEach eagerly applies a side-effecting callback on every element.
// When the caller aborts the enclosing pipeline midway,
// the callbacks already applied stay applied, that is an accepted outcome.
func ForEach[T any](i iter.Seq[T], fn func(T)) {
	for v := range i {
		fn(v)
	}
}

// Partition splits the sequence in a single eager pass into the elements
// the predicate accepts and the ones it rejects,
// both groups preserving their relative order.
func Partition[T any](i iter.Seq[T], pred func(T) bool) (yes, no []T) {
	yes = make([]T, 0)
	no = make([]T, 0)
	for v := range i {
		if pred(v) {
			yes = append(yes, v)
		} else {
			no = append(no, v)
		}
	}
	return yes, no
}

//////////////////////////////////////////////// failable iteration //////////////////////////////////////////////////

// Error returns a producer whose only ability is to report the error, it never yields an element.
func Error[T any](err error) ErrSeq[T] {
	return func(yield func(T, error) bool) {
		var zero T
		yield(zero, err)
	}
}

// ErrorF behaves exactly like fmt.Errorf but returns the error wrapped as an iterator.
func ErrorF[T any](format string, a ...any) ErrSeq[T] {
	return Error[T](fmt.Errorf(format, a...))
}

// ToErrSeq will turn an iter.Seq[T] into an iter.Seq2[T, error] iterator,
// and use the error functions to yield potential issues with the iteration.
func ToErrSeq[T any](i iter.Seq[T], errFuncs ...ErrFunc) ErrSeq[T] {
	return func(yield func(T, error) bool) {
		for v := range i {
			if !yield(v, nil) {
				return
			}
		}
		if 0 < len(errFuncs) {
			errFunc := errorkit.MergeErrFunc(errFuncs...)
			if err := errFunc(); err != nil {
				var zero T
				yield(zero, err)
			}
		}
	}
}

// SplitErrSeq will split an iter.Seq2[T, error] iterator into an iter.Seq[T] iterator plus an error retrieval func.
func SplitErrSeq[T any](i ErrSeq[T]) (iter.Seq[T], ErrFunc) {
	var errs []error
	return func(yield func(T) bool) {
			errs = nil
			for v, err := range i {
				if err != nil {
					errs = append(errs, err)
					continue
				}
				if !yield(v) {
					return
				}
			}
		},
		func() error {
			return errorkit.Merge(errs...)
		}
}

func castToErrSeq[T any, I I1[T]](i I) ErrSeq[T] {
	switch i := any(i).(type) {
	case iter.Seq2[T, error]:
		return i
	case iter.Seq[T]:
		return func(yield func(T, error) bool) {
			for v := range i {
				if !yield(v, nil) {
					return
				}
			}
		}
	default:
		panic("not-implemented")
	}
}
