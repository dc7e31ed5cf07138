package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWorkingHoursValidate(t *testing.T) {
	wh := WorkingHours{
		"monday": {
			Start:  "09:00",
			End:    "18:00",
			Breaks: []Break{{Start: "12:00", End: "13:00"}},
		},
		"saturday": {Start: "08:00", End: "14:00"},
	}
	assert.NoError(t, wh.Validate())
}

func TestWorkingHoursValidate_UnknownWeekday(t *testing.T) {
	wh := WorkingHours{"segunda": {Start: "09:00", End: "18:00"}}
	assert.Error(t, wh.Validate())
}

func TestDayScheduleValidate_InvertedWindow(t *testing.T) {
	d := DaySchedule{Start: "18:00", End: "09:00"}
	assert.Error(t, d.Validate())

	d = DaySchedule{Start: "09:00", End: "09:00"}
	assert.Error(t, d.Validate())
}

func TestDayScheduleValidate_BadClock(t *testing.T) {
	d := DaySchedule{Start: "9h00", End: "18:00"}
	assert.Error(t, d.Validate())
}

func TestDayScheduleValidate_Breaks(t *testing.T) {
	// fora do expediente
	d := DaySchedule{
		Start:  "09:00",
		End:    "18:00",
		Breaks: []Break{{Start: "08:00", End: "10:00"}},
	}
	assert.Error(t, d.Validate())

	// sobrepostas
	d = DaySchedule{
		Start: "09:00",
		End:   "18:00",
		Breaks: []Break{
			{Start: "12:00", End: "13:00"},
			{Start: "12:30", End: "14:00"},
		},
	}
	assert.Error(t, d.Validate())

	// fora de ordem
	d = DaySchedule{
		Start: "09:00",
		End:   "18:00",
		Breaks: []Break{
			{Start: "15:00", End: "16:00"},
			{Start: "12:00", End: "13:00"},
		},
	}
	assert.Error(t, d.Validate())

	// invertida
	d = DaySchedule{
		Start:  "09:00",
		End:    "18:00",
		Breaks: []Break{{Start: "13:00", End: "12:00"}},
	}
	assert.Error(t, d.Validate())

	// encostadas são válidas
	d = DaySchedule{
		Start: "09:00",
		End:   "18:00",
		Breaks: []Break{
			{Start: "12:00", End: "13:00"},
			{Start: "13:00", End: "13:30"},
		},
	}
	assert.NoError(t, d.Validate())
}

func TestWorkingHoursScanValue(t *testing.T) {
	wh := WorkingHours{
		"friday": {
			Start:  "09:00",
			End:    "19:00",
			Breaks: []Break{{Start: "12:00", End: "13:00"}},
		},
	}

	v, err := wh.Value()
	assert.NoError(t, err)

	var out WorkingHours
	assert.NoError(t, out.Scan(v))
	assert.Equal(t, wh, out)
}

func TestWorkingHoursScan_Nil(t *testing.T) {
	var out WorkingHours
	assert.NoError(t, out.Scan(nil))
	assert.NotNil(t, out)
	assert.Empty(t, out)
}

func TestWeekdayKey(t *testing.T) {
	// 2026-09-14 é segunda-feira
	monday := time.Date(2026, 9, 14, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "monday", WeekdayKey(monday))
	assert.Equal(t, "saturday", WeekdayKey(monday.AddDate(0, 0, 5)))
	assert.Equal(t, "sunday", WeekdayKey(monday.AddDate(0, 0, 6)))
}
