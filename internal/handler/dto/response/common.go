package response

import (
	"time"

	"github.com/jinzhu/copier"
)

// Date marshals as YYYY-MM-DD.
type Date time.Time

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(d).Format(time.DateOnly) + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	t, err := time.Parse(`"`+time.DateOnly+`"`, string(b))
	if err != nil {
		return err
	}
	*d = Date(t)
	return nil
}

func (d Date) String() string {
	return time.Time(d).Format(time.DateOnly)
}

type Page[T any] struct {
	Items      []T     `json:"items"`
	NextCursor *string `json:"next_cursor"`
}

var copyOptions = copier.Option{
	Converters: []copier.TypeConverter{{
		SrcType: time.Time{},
		DstType: Date{},
		Fn: func(src any) (any, error) {
			return Date(src.(time.Time)), nil
		},
	}},
}

// mapInto copies src onto a new T by matching field names.
func mapInto[T any](src any) T {
	var dst T
	if err := copier.CopyWithOption(&dst, src, copyOptions); err != nil {
		// field sets are fixed at compile time; a failure here is a programming error
		panic(err)
	}
	return dst
}

func mapSlice[S any, T any](src []S) []T {
	out := make([]T, 0, len(src))
	for _, s := range src {
		out = append(out, mapInto[T](s))
	}
	return out
}
