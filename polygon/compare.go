package polygon

import (
	"cmp"
	"reflect"
)

// Regular returns p itself, making RegularPolygon (and every struct that
// embeds it) a Regular.
func (p RegularPolygon) Regular() RegularPolygon {
	return p
}

// Equal reports whether p and q have the same edge count and exactly the
// same circumradius. No tolerance is applied.
func (p RegularPolygon) Equal(q RegularPolygon) bool {
	return p.edges == q.edges && p.radius == q.radius
}

// Greater reports whether p has more edges than q. The circumradius plays
// no part, so two polygons may be neither Greater nor Equal.
func (p RegularPolygon) Greater(q RegularPolygon) bool {
	return p.edges > q.edges
}

// Compare orders p and q by edge count and returns -1, 0 or +1, suitable
// for slices.SortFunc. A zero result only means equal edge counts; use
// Equal for value equality.
func (p RegularPolygon) Compare(q RegularPolygon) int {
	return cmp.Compare(p.edges, q.edges)
}

// EqualAny is the dynamically typed form of Equal. ok is false when other
// is not a Regular (or is a nil pointer), meaning the two values are not
// comparable; equal is then false as well.
func (p RegularPolygon) EqualAny(other any) (equal, ok bool) {
	q, ok := asRegular(other)
	if !ok {
		return false, false
	}

	return p.Equal(q), true
}

// GreaterAny is the dynamically typed form of Greater, with the same ok
// semantics as EqualAny.
func (p RegularPolygon) GreaterAny(other any) (greater, ok bool) {
	q, ok := asRegular(other)
	if !ok {
		return false, false
	}

	return p.Greater(q), true
}

// asRegular extracts the polygon behind v. Nil pointers are rejected
// because a promoted value method would panic on them.
func asRegular(v any) (RegularPolygon, bool) {
	switch x := v.(type) {
	case RegularPolygon:
		return x, true
	case *RegularPolygon:
		if x == nil {
			return RegularPolygon{}, false
		}
		return *x, true
	case Regular:
		if rv := reflect.ValueOf(x); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return RegularPolygon{}, false
		}
		return x.Regular(), true
	default:
		return RegularPolygon{}, false
	}
}
