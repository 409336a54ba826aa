package meretable

import (
	"fmt"
	"iter"
	"reflect"
)

// FromItems builds a table from items implementing [Rower]. The columns come
// from [Nested] when T implements it, otherwise from [Headed]. Structure is
// read from the first item. When there are none it is read from the zero
// value of T, or from a new zero element when T is a pointer type.
func FromItems[T any](items ...T) (*Table, error) {
	first := prototype(items)
	if _, ok := any(first).(Rower); !ok {
		return nil, fmt.Errorf("%w: table rows require Rower, not implemented by %T", ErrMissingInterface, first)
	}

	t := &Table{}
	switch v := any(first).(type) {
	case Nested:
		t.AddColumnDefs(v.Columns()...)
	case Headed:
		t.AddColumns(v.Header()...)
	default:
		return nil, fmt.Errorf("%w: table columns require Nested or Headed, not implemented by %T", ErrMissingInterface, first)
	}
	if err := AppendItems(t, items...); err != nil {
		return nil, err
	}
	return t, nil
}

func prototype[T any](items []T) T {
	if len(items) > 0 {
		return items[0]
	}
	var zero T
	if typ := reflect.TypeFor[T](); typ.Kind() == reflect.Pointer {
		if v, ok := reflect.New(typ.Elem()).Interface().(T); ok {
			return v
		}
	}
	return zero
}

// AppendItems adds one row per item. It stops at the first item that is not
// a [Rower] or has the wrong number of values; rows added before it remain.
func AppendItems[T any](t *Table, items ...T) error {
	for _, item := range items {
		if err := appendItem(t, item); err != nil {
			return err
		}
	}
	return nil
}

// AppendIter adds one row per item produced by seq, stopping at the first
// error.
func AppendIter[T any](t *Table, seq iter.Seq[T]) error {
	var err error
	seq(func(item T) bool {
		err = appendItem(t, item)
		return err == nil
	})
	return err
}

// AppendChan adds one row per item received from ch until ch is closed or an
// item fails. It is a thin wrapper around [AppendIter].
func AppendChan[T any](t *Table, ch <-chan T) error {
	return AppendIter(t, chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

func appendItem[T any](t *Table, item T) error {
	r, ok := any(item).(Rower)
	if !ok {
		return fmt.Errorf("%w: table rows require Rower, not implemented by %T", ErrMissingInterface, item)
	}
	return t.addRow(r.Row())
}
