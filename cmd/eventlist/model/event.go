package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

// MatchTimeLayout is the wire format for match times: no timezone, no
// fractional seconds.
const MatchTimeLayout = "2006-01-02T15:04:05"

var ErrInvalidMatchTime = errors.New("match_time must be in YYYY-MM-DDTHH:MM:SS format")

// MatchTime keeps the events column and the JSON field on the same
// fixed layout.
type MatchTime time.Time

func ParseMatchTime(s string) (MatchTime, error) {
	t, err := time.Parse(MatchTimeLayout, s)
	if err != nil {
		return MatchTime{}, fmt.Errorf("%w: got %q", ErrInvalidMatchTime, s)
	}
	return MatchTime(t), nil
}

func (t MatchTime) Time() time.Time {
	return time.Time(t)
}

func (t MatchTime) IsZero() bool {
	return time.Time(t).IsZero()
}

func (t MatchTime) String() string {
	return time.Time(t).Format(MatchTimeLayout)
}

func (t MatchTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *MatchTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}

	parsed, err := ParseMatchTime(s)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}

func (t MatchTime) Value() (driver.Value, error) {
	return time.Time(t), nil
}

func (t *MatchTime) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*t = MatchTime(v)
		return nil
	case nil:
		*t = MatchTime{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into MatchTime", src)
	}
}

var mix10Truthy = map[string]bool{
	"true": true,
	"1":    true,
	"yes":  true,
}

// ParseMix10 reports whether s is one of "true", "1" or "yes",
// case-insensitively. Anything else, including the literal string
// "false" and the empty string, is false.
func ParseMix10(s string) bool {
	return mix10Truthy[strings.ToLower(strings.TrimSpace(s))]
}

type Event struct {
	ID        int       `gorm:"column:id;primaryKey" json:"id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	MatchTime MatchTime `gorm:"column:match_time;type:timestamp" json:"match_time"`
	Mix10     bool      `gorm:"column:mix10;default:false" json:"mix10"`
}

func (m *Event) TableName() string {
	return "events"
}

// BeforeCreate defaults an unset match time to the creation time.
func (m *Event) BeforeCreate(tx *gorm.DB) error {
	if m.MatchTime.IsZero() {
		m.MatchTime = MatchTime(time.Now().UTC())
	}
	return nil
}
