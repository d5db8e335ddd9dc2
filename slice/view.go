package slice

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	// ErrOutOfBounds is returned when an index falls outside the view.
	ErrOutOfBounds = errors.New("index out of bounds")
	// ErrInvalidBounds is returned when start/end do not describe a window of the buffer.
	ErrInvalidBounds = errors.New("invalid view bounds")
)

// defaultSeparator matches the separator Join uses when none is given.
const defaultSeparator = ","

// A View holds a window over a slice without copying it.
// 封装一个不拷贝底层数组的窗口，view 与原切片共享存储：
// 通过任意一方修改元素，另一方都能看到。需要独立副本时使用 ShallowCopy。
//
// The zero View is an empty view.
type View[T any] struct {
	buf    []T
	start  int // inclusive offset into buf
	length int // cached at construction
}

// New returns a view over buf[start..end], both ends inclusive.
// buf is aliased, not copied. An empty view is written as end == start-1.
func New[T any](buf []T, start, end int) (View[T], error) {
	if err := checkBounds(len(buf), start, end); err != nil {
		return View[T]{}, err
	}
	return View[T]{
		buf:    buf,
		start:  start,
		length: end - start + 1,
	}, nil
}

// From returns a view over buf. bounds is optional: bounds[0] is the start
// (default 0) and bounds[1] the inclusive end (default len(buf)-1).
func From[T any](buf []T, bounds ...int) (View[T], error) {
	start, end := 0, len(buf)-1
	switch len(bounds) {
	case 0:
	case 1:
		start = bounds[0]
	case 2:
		start, end = bounds[0], bounds[1]
	default:
		return View[T]{}, fmt.Errorf("got %d bounds, want at most 2: %w", len(bounds), ErrInvalidBounds)
	}
	return New(buf, start, end)
}

// MustNew is like New but panics if the bounds are invalid.
func MustNew[T any](buf []T, start, end int) View[T] {
	v, err := New(buf, start, end)
	if err != nil {
		panic(err)
	}
	return v
}

// MustFrom is like From but panics if the bounds are invalid.
func MustFrom[T any](buf []T, bounds ...int) View[T] {
	v, err := From(buf, bounds...)
	if err != nil {
		panic(err)
	}
	return v
}

func checkBounds(n, start, end int) error {
	if start < 0 || end < start-1 || end > n-1 {
		if debugEnabled() {
			logger.WithFields(logrus.Fields{
				"start": start,
				"end":   end,
				"len":   n,
			}).Debug("[slice] rejected view bounds")
		}
		return fmt.Errorf("start %d, end %d over buffer of length %d: %w", start, end, n, ErrInvalidBounds)
	}
	return nil
}

// Len returns the number of elements in the view.
func (v View[T]) Len() int {
	return v.length
}

// Bounds returns the absolute offsets of the view into its buffer, both inclusive.
func (v View[T]) Bounds() (start, end int) {
	return v.start, v.end()
}

func (v View[T]) end() int {
	return v.start + v.length - 1
}

// At returns the i-th element of the view.
func (v View[T]) At(i int) (T, error) {
	if err := v.check(i); err != nil {
		var zero T
		return zero, err
	}
	return v.buf[v.start+i], nil
}

// MustAt is like At but panics if i is out of bounds.
func (v View[T]) MustAt(i int) T {
	x, err := v.At(i)
	if err != nil {
		panic(err)
	}
	return x
}

// Set writes x to the i-th element. The write goes to the shared buffer.
func (v View[T]) Set(i int, x T) error {
	if err := v.check(i); err != nil {
		return err
	}
	v.buf[v.start+i] = x
	return nil
}

func (v View[T]) check(i int) error {
	if i < 0 || i > v.length-1 {
		if debugEnabled() {
			logger.WithFields(logrus.Fields{
				"index": i,
				"len":   v.length,
			}).Debug("[slice] index out of bounds")
		}
		return fmt.Errorf("%d is out of bounds: %w", i, ErrOutOfBounds)
	}
	return nil
}

// First returns the first element of the view.
func (v View[T]) First() (T, error) {
	return v.At(0)
}

// Last returns the last element of the view.
func (v View[T]) Last() (T, error) {
	return v.At(v.length - 1)
}

// Slice returns a child view sharing the same buffer. start and end are
// relative to v and half-open, as in v[start:end]; end defaults to v.Len().
func (v View[T]) Slice(start int, end ...int) (View[T], error) {
	hi := v.length
	if len(end) > 0 {
		hi = end[0]
	}
	if start < 0 || hi < start || hi > v.length {
		return View[T]{}, fmt.Errorf("slice [%d:%d] of view with length %d: %w", start, hi, v.length, ErrInvalidBounds)
	}
	// 子视图的下标换算到同一个 buf 上，结束位置换回闭区间
	return New(v.buf, v.start+start, v.start+hi-1)
}

// All returns an iterator over the elements of the view. It can be ranged over
// any number of times.
func (v View[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := v.start; i <= v.end(); i++ {
			if !yield(v.buf[i]) {
				return
			}
		}
	}
}

// Indexed returns an iterator over view-relative index/element pairs.
func (v View[T]) Indexed() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.length; i++ {
			if !yield(i, v.buf[v.start+i]) {
				return
			}
		}
	}
}

// Values returns a copy of the elements as a new slice.
func (v View[T]) Values() []T {
	c := make([]T, v.length)
	copy(c, v.buf[v.start:v.start+v.length])
	return c
}

// ShallowCopy returns a view over a freshly allocated buffer holding the
// same elements. The elements themselves are not deep-copied.
func (v View[T]) ShallowCopy() View[T] {
	c := v.Values()
	return View[T]{buf: c, length: len(c)}
}

// Join formats every element with fmt.Sprint and joins them with sep.
// sep defaults to ",".
func (v View[T]) Join(sep ...string) string {
	s := defaultSeparator
	if len(sep) > 0 {
		s = sep[0]
	}
	var b strings.Builder
	for i := v.start; i <= v.end(); i++ {
		if i > v.start {
			b.WriteString(s)
		}
		fmt.Fprint(&b, v.buf[i])
	}
	return b.String()
}

// String returns the elements in the same form fmt prints a slice.
func (v View[T]) String() string {
	return "[" + v.Join(" ") + "]"
}

// Map returns a new, independent view holding fn applied to every element of v.
// index is the element's absolute offset into v's buffer, not its position in v.
func Map[T, U any](v View[T], fn func(item T, index int) U) View[U] {
	buf := make([]U, 0, v.length)
	for i := v.start; i <= v.end(); i++ {
		buf = append(buf, fn(v.buf[i], i))
	}
	return View[U]{buf: buf, length: len(buf)}
}

// Reduce folds the elements of v from left to right, starting from initial.
// index is the element's absolute offset into v's buffer.
func Reduce[T, U any](v View[T], fn func(acc U, item T, index int, v View[T]) U, initial U) U {
	acc := initial
	for i := v.start; i <= v.end(); i++ {
		acc = fn(acc, v.buf[i], i, v)
	}
	return acc
}
