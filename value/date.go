package value

import (
	"fmt"
	"io"
	"time"
)

// Date is a mutable timestamp. A date may be invalid, in which case it
// holds no time.
type Date struct {
	t     time.Time
	valid bool
}

// Valid returns true iff the date holds a time.
func (d *Date) Valid() bool {
	return d.valid
}

// Time returns the held time, or the zero time for an invalid date.
func (d *Date) Time() time.Time {
	if !d.valid {
		return time.Time{}
	}
	return d.t
}

// SetTime replaces the held time, making the date valid.
func (d *Date) SetTime(t time.Time) {
	d.t = t
	d.valid = true
}

// Invalidate makes the date invalid.
func (d *Date) Invalidate() {
	d.t = time.Time{}
	d.valid = false
}

// PrettyPrint writes a pretty-printed representation of the date.
func (d *Date) PrettyPrint(prefix string, w io.Writer) {
	fmt.Fprintf(w, "%s%s\n", prefix, d.String())
}

// String returns the date in RFC 3339 form, or "Invalid Date".
func (d *Date) String() string {
	if !d.valid {
		return "Invalid Date"
	}
	return d.t.UTC().Format(time.RFC3339Nano)
}

// NewDate creates a date holding t.
func NewDate(t time.Time) *Date {
	return &Date{t: t, valid: true}
}

// NewInvalidDate creates an invalid date.
func NewInvalidDate() *Date {
	return &Date{}
}

// NewDateFrom creates an independent date holding the same time as d.
func NewDateFrom(d *Date) *Date {
	return &Date{t: d.t, valid: d.valid}
}
