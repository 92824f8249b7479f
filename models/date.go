package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Date is a diary timestamp. The frontend sends either a bare calendar date
// ("2024-01-01") or a full ISO timestamp, so both are accepted.
type Date struct {
	time.Time
}

func ParseDate(s string) (Date, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Date{t}, nil
		}
	}
	return Date{}, fmt.Errorf("unrecognized date %q", s)
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.Format(time.RFC3339))
}

// Value implements driver.Valuer so entries can be written with a plain Exec.
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

// Scan accepts time.Time (DSN with parseTime=true) as well as the raw bytes
// MySQL returns without it.
func (d *Date) Scan(value any) error {
	switch v := value.(type) {
	case time.Time:
		d.Time = v
	case []byte:
		t, err := time.Parse("2006-01-02 15:04:05", string(v))
		if err != nil {
			return err
		}
		d.Time = t
	case string:
		t, err := time.Parse("2006-01-02 15:04:05", v)
		if err != nil {
			return err
		}
		d.Time = t
	case nil:
		d.Time = time.Time{}
	default:
		return fmt.Errorf("cannot scan %T into Date", value)
	}
	return nil
}
