package wrap

import "fmt"

// TagName is implemented by tag types that carry a display name.
type TagName interface {
	TagName() string
}

// Named is a Strong whose tag supplies a compile-time name. It renders
// as "name: value"; the embedded Strong's String renders the value
// alone, and the arithmetic helpers operate on the embedded Strong.
type Named[T any, G TagName] struct {
	Strong[T, G]
}

// NewNamed wraps v under the name supplied by G.
func NewNamed[G TagName, T any](v T) Named[T, G] {
	return Named[T, G]{Strong[T, G]{value: v}}
}

// Name returns the tag's display name.
func (n Named[T, G]) Name() string {
	var g G
	return g.TagName()
}

// String renders "name: value".
func (n Named[T, G]) String() string {
	return n.Name() + ": " + fmt.Sprint(n.value)
}

// Transform returns a wrapper of the same type holding fn of the
// value.
func (n Named[T, G]) Transform(fn func(T) T) Named[T, G] {
	return Named[T, G]{n.Strong.Transform(fn)}
}

// Swap exchanges the wrapped values.
func (n *Named[T, G]) Swap(o *Named[T, G]) {
	n.Strong.Swap(&o.Strong)
}
