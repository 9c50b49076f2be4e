package domain

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used everywhere in the inventory.
// Flights carry no time component: one occurrence per route+date+aircraft.
const DateLayout = "2006-01-02"

type Season string

const (
	SeasonLow  Season = "LOW"
	SeasonHigh Season = "HIGH"
)

// ParseDate validates a calendar date string.
func ParseDate(date string) (time.Time, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q (expected %s)", ErrInvalidDate, date, DateLayout)
	}
	return d, nil
}

// SeasonOf returns the fare season for a date: June through August and
// December are high season, every other month is low season.
func SeasonOf(d time.Time) Season {
	switch d.Month() {
	case time.June, time.July, time.August, time.December:
		return SeasonHigh
	default:
		return SeasonLow
	}
}

// FareTable holds the per-season base fares of a route.
type FareTable struct {
	Low  int `json:"low" yaml:"low"`
	High int `json:"high" yaml:"high"`
}

// Route is a directed path between two points. It owns the fare rule:
// season of the flight date crossed with the client classification.
type Route struct {
	Code        string    `json:"code" yaml:"code"`
	Origin      string    `json:"origin" yaml:"origin"`
	Destination string    `json:"destination" yaml:"destination"`
	Fares       FareTable `json:"fares" yaml:"fares"`
}

// Fare computes the per-ticket fare for a classification and a flight date.
// It is a pure function of its inputs: the same route, date and
// classification always yield the same amount.
func (r Route) Fare(cl Classification, date string) (int, error) {
	d, err := ParseDate(date)
	if err != nil {
		return 0, err
	}
	base := r.Fares.Low
	if SeasonOf(d) == SeasonHigh {
		base = r.Fares.High
	}
	if cl.Kind == ClientCorporate {
		base -= int(float64(base) * cl.Discount)
	}
	return base, nil
}
