package iterkit

import (
	"iter"
	"reflect"

	"go.llib.dev/containerkit/pkg/errorkit"
)

// ErrUnsupportedCollectTarget is returned by CollectInto
// when the requested container shape cannot hold the sequence's element type.
const ErrUnsupportedCollectTarget errorkit.Error = "UnsupportedCollectTarget"

// CollectInto materialises the remaining elements of the sequence
// into the container the pointer refers to. The supported shapes are:
//
//   - *[]T for an ordered sequence of the elements
//   - *map[K]V when the elements are KV[K, V] pairs
//   - *map[T]struct{} for a set of the elements
//   - *string when the elements are runes or strings
//
// Any other target fails with ErrUnsupportedCollectTarget.
// Prefer the typed collectors (Collect, Collect2Map, CollectString)
// when the shape is known at compile time,
// CollectInto is for call-sites where the target arrives as a plain pointer.
func CollectInto[T any](i iter.Seq[T], ptr any) error {
	if ptr == nil {
		return ErrUnsupportedCollectTarget.F("nil collect target")
	}
	rptr := reflect.ValueOf(ptr)
	if rptr.Kind() != reflect.Pointer || rptr.IsNil() {
		return ErrUnsupportedCollectTarget.F("non pointer collect target: %T", ptr)
	}
	var (
		target   = rptr.Elem()
		elemType = reflect.TypeOf((*T)(nil)).Elem()
	)
	switch target.Kind() {
	case reflect.Slice:
		return collectIntoSlice[T](i, target, elemType)
	case reflect.Map:
		return collectIntoMap[T](i, target, elemType)
	case reflect.String:
		return collectIntoString[T](i, target, elemType)
	default:
		return ErrUnsupportedCollectTarget.F("%s is not a supported collect target", target.Type())
	}
}

func collectIntoSlice[T any](i iter.Seq[T], target reflect.Value, elemType reflect.Type) error {
	if !elemType.AssignableTo(target.Type().Elem()) {
		return ErrUnsupportedCollectTarget.F("cannot collect %s elements into %s", elemType, target.Type())
	}
	slice := reflect.MakeSlice(target.Type(), 0, 0)
	for v := range i {
		slice = reflect.Append(slice, reflect.ValueOf(&v).Elem())
	}
	target.Set(slice)
	return nil
}

var emptyStructType = reflect.TypeOf(struct{}{})

func collectIntoMap[T any](i iter.Seq[T], target reflect.Value, elemType reflect.Type) error {
	if target.Type().Elem() == emptyStructType { // set shape
		if !elemType.AssignableTo(target.Type().Key()) {
			return ErrUnsupportedCollectTarget.F("cannot collect %s elements into the %s set", elemType, target.Type())
		}
		out := reflect.MakeMap(target.Type())
		for v := range i {
			out.SetMapIndex(reflect.ValueOf(&v).Elem(), reflect.ValueOf(struct{}{}))
		}
		target.Set(out)
		return nil
	}
	if elemType.Kind() != reflect.Struct {
		return ErrUnsupportedCollectTarget.F("collecting into a map requires KV pair elements, got %s", elemType)
	}
	kField, kOK := elemType.FieldByName("K")
	vField, vOK := elemType.FieldByName("V")
	if !kOK || !vOK {
		return ErrUnsupportedCollectTarget.F("collecting into a map requires KV pair elements, got %s", elemType)
	}
	var (
		keyType = target.Type().Key()
		valType = target.Type().Elem()
	)
	if !kField.Type.AssignableTo(keyType) || !vField.Type.AssignableTo(valType) {
		return ErrUnsupportedCollectTarget.F("cannot collect %s pairs into %s", elemType, target.Type())
	}
	out := reflect.MakeMap(target.Type())
	for v := range i {
		rv := reflect.ValueOf(&v).Elem()
		out.SetMapIndex(rv.FieldByIndex(kField.Index), rv.FieldByIndex(vField.Index))
	}
	target.Set(out)
	return nil
}

func collectIntoString[T any](i iter.Seq[T], target reflect.Value, elemType reflect.Type) error {
	switch any(*new(T)).(type) {
	case rune, string:
	default:
		return ErrUnsupportedCollectTarget.F("cannot concatenate %s elements into a string", elemType)
	}
	var out string
	for v := range i {
		switch v := any(v).(type) {
		case rune:
			out += string(v)
		case string:
			out += v
		}
	}
	target.SetString(out)
	return nil
}
