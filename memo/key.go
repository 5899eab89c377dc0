package memo

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// KeyFunc maps the ordered argument list of a call to a value identifying it.
type KeyFunc func(args []any) any

// IdentityKey is the default key function. It returns the argument list
// unchanged, so the cache key is KeyString(args).
func IdentityKey(args []any) any {
	return args
}

// JoinKey returns a key function joining the string form of every argument with sep.
func JoinKey(sep string) KeyFunc {
	return func(args []any) any {
		return joinKeys(args, sep)
	}
}

// HashKey reduces the default key of args to its 64-bit xxhash digest.
// Distinct argument lists may collide.
func HashKey(args []any) any {
	return xxhash.Sum64String(KeyString(args))
}

// IgnoreKey returns a key function that leaves the arguments at the given
// positions out of the default key.
func IgnoreKey(indexes ...int) KeyFunc {
	ignored := make(map[int]struct{}, len(indexes))
	for _, i := range indexes {
		ignored[i] = struct{}{}
	}
	return func(args []any) any {
		kept := make([]any, 0, len(args))
		for i, arg := range args {
			if _, skip := ignored[i]; !skip {
				kept = append(kept, arg)
			}
		}
		return kept
	}
}

// KeyString converts a key value to the string used for cache lookup.
//
// Lists are flattened and joined with commas, nil becomes the empty string,
// and everything else takes its fmt.Sprint form. A list reached again while
// it is still being joined becomes the empty string. The conversion is
// textual: 1 and "1" produce the same key, []any{1, 2} and "1,2" do too, and
// pointers key by address rather than by what they point to. Supply a KeyFunc
// when that is not good enough.
func KeyString(v any) string {
	return keyString(v, nil)
}

// listID identifies a slice being joined. Length is part of it so a shorter
// reslice of the same backing array is not mistaken for a cycle.
type listID struct {
	data uintptr
	len  int
}

// joining holds the lists on the current path, like Array.prototype.join.
type joining map[listID]struct{}

func keyString(v any, seen joining) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case fmt.Stringer, error:
		return fmt.Sprint(x)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.Len() == 0 {
			return ""
		}
		id := listID{data: rv.Pointer(), len: rv.Len()}
		if _, ok := seen[id]; ok {
			return ""
		}
		if seen == nil {
			seen = joining{}
		}
		seen[id] = struct{}{}
		defer delete(seen, id)
		return joinValues(rv, ",", seen)
	case reflect.Array:
		return joinValues(rv, ",", seen)
	default:
		return fmt.Sprint(v)
	}
}

func joinValues(rv reflect.Value, sep string, seen joining) string {
	parts := make([]string, rv.Len())
	for i := range parts {
		parts[i] = keyString(rv.Index(i).Interface(), seen)
	}
	return strings.Join(parts, sep)
}

func joinKeys(args []any, sep string) string {
	return joinValues(reflect.ValueOf(args), sep, nil)
}
