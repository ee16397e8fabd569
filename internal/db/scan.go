package db

import (
	"fmt"
	"strings"
	"time"
)

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Time scans a timestamp column whatever form the driver returns it in
type Time struct {
	Dest *time.Time
}

// Scan implements sql.Scanner
func (t Time) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*t.Dest = time.Time{}
		return nil
	case time.Time:
		*t.Dest = v.UTC()
		return nil
	case []byte:
		return t.parse(string(v))
	case string:
		return t.parse(v)
	default:
		return fmt.Errorf("cannot scan %T into timestamp", src)
	}
}

func (t Time) parse(s string) error {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			*t.Dest = parsed.UTC()
			return nil
		}
	}
	return fmt.Errorf("cannot parse timestamp %q", s)
}

// Date scans a nullable DATE column into a YYYY-MM-DD string
type Date struct {
	Dest **string
}

// Scan implements sql.Scanner
func (d Date) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case nil:
		*d.Dest = nil
		return nil
	case time.Time:
		s = v.Format("2006-01-02")
	case []byte:
		s = string(v)
	case string:
		s = v
	default:
		return fmt.Errorf("cannot scan %T into date", src)
	}
	if len(s) > 10 {
		s = s[:10]
	}
	*d.Dest = &s
	return nil
}
