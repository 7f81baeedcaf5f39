package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ZoyaAnsari19/true-beauty-admin-panel-sub000/internal/domain/model"
)

var null = []byte("null")

// Optional distinguishes an absent JSON field from an explicit null.
// Set is true whenever the key was present; Value is nil for null.
type Optional[T any] struct {
	Set   bool
	Value *T
}

// UnmarshalJSON implements json.Unmarshaler.
func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), null) {
		o.Value = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.Value = &v
	return nil
}

// patch converts o into the double pointer used by model patches.
func (o Optional[T]) patch() **T {
	if !o.Set {
		return nil
	}
	v := o.Value
	return &v
}

// Date accepts "2006-01-02" or RFC 3339 timestamps.
type Date struct {
	time.Time

	dateOnly bool
}

const dateOnlyLayout = "2006-01-02"

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), null) {
		d.Time = time.Time{}
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		d.Time, d.dateOnly = t, false
		return nil
	}
	if t, err := time.Parse(dateOnlyLayout, raw); err == nil {
		d.Time, d.dateOnly = t, true
		return nil
	}
	return fmt.Errorf("invalid date %q", raw)
}

// inclusive returns the time for an inclusive upper bound: a bare date
// covers its whole day.
func (d Date) inclusive() time.Time {
	if d.dateOnly && !d.Time.IsZero() {
		return model.EndOfDay(d.Time)
	}
	return d.Time
}

func datePtr(d *Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

func expiryPtr(d *Date) *time.Time {
	if d == nil {
		return nil
	}
	t := d.inclusive()
	return &t
}
