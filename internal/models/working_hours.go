package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ===============================
// Working Hours
// ===============================

// Break é um intervalo dentro do expediente (almoço etc.)
type Break struct {
	Start string `json:"start"` // HH:MM
	End   string `json:"end"`   // HH:MM
}

type DaySchedule struct {
	Start  string  `json:"start"` // HH:MM
	End    string  `json:"end"`   // HH:MM
	Breaks []Break `json:"breaks,omitempty"`
}

// WorkingHours mapeia dia da semana ("monday".."sunday") para o
// expediente daquele dia. Dia ausente no mapa significa folga.
type WorkingHours map[string]DaySchedule

var weekdayKeys = map[string]bool{
	"monday":    true,
	"tuesday":   true,
	"wednesday": true,
	"thursday":  true,
	"friday":    true,
	"saturday":  true,
	"sunday":    true,
}

// WeekdayKey devolve a chave do mapa para uma data.
func WeekdayKey(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}

// ===============================
// JSON column (jsonb)
// ===============================

func (wh WorkingHours) Value() (driver.Value, error) {
	if wh == nil {
		return "{}", nil
	}
	b, err := json.Marshal(wh)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (wh *WorkingHours) Scan(src any) error {
	if src == nil {
		*wh = WorkingHours{}
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("working_hours: unsupported column type %T", src)
	}

	return json.Unmarshal(data, wh)
}

// ===============================
// Validations
// ===============================

func parseClockMinutes(hm string) (int, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q", hm)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// Validate garante: dias conhecidos, start < end, pausas ordenadas,
// sem sobreposição e contidas em [start, end).
func (wh WorkingHours) Validate() error {
	for day, sched := range wh {
		if !weekdayKeys[day] {
			return fmt.Errorf("unknown weekday %q", day)
		}
		if err := sched.Validate(); err != nil {
			return fmt.Errorf("%s: %w", day, err)
		}
	}
	return nil
}

func (d DaySchedule) Validate() error {
	start, err := parseClockMinutes(d.Start)
	if err != nil {
		return err
	}
	end, err := parseClockMinutes(d.End)
	if err != nil {
		return err
	}
	if start >= end {
		return errors.New("start must be before end")
	}

	prevEnd := start
	for _, b := range d.Breaks {
		bs, err := parseClockMinutes(b.Start)
		if err != nil {
			return err
		}
		be, err := parseClockMinutes(b.End)
		if err != nil {
			return err
		}
		if bs >= be {
			return fmt.Errorf("break %s-%s: start must be before end", b.Start, b.End)
		}
		if bs < start || be > end {
			return fmt.Errorf("break %s-%s: outside working window", b.Start, b.End)
		}
		if bs < prevEnd {
			return fmt.Errorf("break %s-%s: overlaps or out of order", b.Start, b.End)
		}
		prevEnd = be
	}

	return nil
}
