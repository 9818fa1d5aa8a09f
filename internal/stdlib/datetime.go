package stdlib

import (
	"time"

	"github.com/ncruces/go-strftime"
)

// isoformat renders t as an ISO 8601 timestamp with microseconds only
// when non-zero, and an offset only for zones other than Local.
func isoformat(t time.Time) string {
	layout := "2006-01-02T15:04:05"
	if t.Nanosecond()/1000 != 0 {
		layout += ".000000"
	}
	if t.Location() != time.Local {
		layout += "-07:00"
	}
	return t.Format(layout)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Weekday counts from Monday = 0.
func Weekday(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

type CurrentTime struct {
	Now   string `json:"now" yaml:"now"`
	Today string `json:"today" yaml:"today"`
	Time  string `json:"time" yaml:"time"`
}

type Formatting struct {
	Default  string `json:"default" yaml:"default"`
	Custom   string `json:"custom" yaml:"custom"`
	Readable string `json:"readable" yaml:"readable"`
	ISO      string `json:"iso" yaml:"iso"`
	DateOnly string `json:"date_only" yaml:"date_only"`
	TimeOnly string `json:"time_only" yaml:"time_only"`
}

type Arithmetic struct {
	Tomorrow         string `json:"tomorrow" yaml:"tomorrow"`
	NextWeek         string `json:"next_week" yaml:"next_week"`
	PastDate         string `json:"past_date" yaml:"past_date"`
	DaysUntilNewYear int    `json:"days_until_new_year" yaml:"days_until_new_year"`
}

type Timezone struct {
	UTC    string `json:"utc" yaml:"utc"`
	Local  string `json:"local" yaml:"local"`
	Offset string `json:"offset" yaml:"offset"`
}

type Components struct {
	Year        int `json:"year" yaml:"year"`
	Month       int `json:"month" yaml:"month"`
	Day         int `json:"day" yaml:"day"`
	Hour        int `json:"hour" yaml:"hour"`
	Minute      int `json:"minute" yaml:"minute"`
	Second      int `json:"second" yaml:"second"`
	Microsecond int `json:"microsecond" yaml:"microsecond"`
	Weekday     int `json:"weekday" yaml:"weekday"`
	ISOWeekday  int `json:"isoweekday" yaml:"isoweekday"`
}

type DateTimeResult struct {
	Current      CurrentTime `json:"current" yaml:"current"`
	SpecificDate string      `json:"specific_date" yaml:"specific_date"`
	Formatting   Formatting  `json:"formatting" yaml:"formatting"`
	Parsed       string      `json:"parsed" yaml:"parsed"`
	Arithmetic   Arithmetic  `json:"arithmetic" yaml:"arithmetic"`
	Timezone     Timezone    `json:"timezone" yaml:"timezone"`
	Components   Components  `json:"components" yaml:"components"`
}

// DateTime formats, parses and shifts dates relative to now, which must be
// in the Local zone.
func DateTime(now time.Time) (DateTimeResult, error) {
	var r DateTimeResult
	today := dateOnly(now)

	r.Current = CurrentTime{
		Now:   isoformat(now),
		Today: today.Format(time.DateOnly),
		Time:  now.Format("15:04:05.000000"),
	}

	birthday := time.Date(1990, time.May, 15, 10, 30, 45, 0, time.Local)
	r.SpecificDate = isoformat(birthday)

	r.Formatting = Formatting{
		Default:  strftime.Format("%Y-%m-%d %H:%M:%S.%f", now),
		Custom:   strftime.Format("%Y-%m-%d %H:%M:%S", now),
		Readable: strftime.Format("%B %d, %Y at %I:%M %p", now),
		ISO:      isoformat(now),
		DateOnly: strftime.Format("%Y-%m-%d", now),
		TimeOnly: strftime.Format("%H:%M:%S", now),
	}

	parsed, err := strftime.Parse("%Y-%m-%d %H:%M:%S", "2023-12-25 15:30:00")
	if err != nil {
		return r, err
	}
	r.Parsed = parsed.Format("2006-01-02T15:04:05")

	newYear := time.Date(today.Year()+1, time.January, 1, 0, 0, 0, 0, today.Location())
	r.Arithmetic = Arithmetic{
		Tomorrow:         today.AddDate(0, 0, 1).Format(time.DateOnly),
		NextWeek:         today.AddDate(0, 0, 7).Format(time.DateOnly),
		PastDate:         today.AddDate(0, 0, -30).Format(time.DateOnly),
		DaysUntilNewYear: daysBetween(today, newYear),
	}

	r.Timezone = Timezone{
		UTC:    isoformat(now.UTC()),
		Local:  isoformat(now),
		Offset: strftime.Format("%z", now),
	}

	r.Components = Components{
		Year:        now.Year(),
		Month:       int(now.Month()),
		Day:         now.Day(),
		Hour:        now.Hour(),
		Minute:      now.Minute(),
		Second:      now.Second(),
		Microsecond: now.Nanosecond() / 1000,
		Weekday:     Weekday(now),
		ISOWeekday:  Weekday(now) + 1,
	}
	return r, nil
}

// daysBetween counts calendar days, ignoring daylight saving shifts.
func daysBetween(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
