package pricing

import (
	"math"
	"time"
)

const (
	// GraceWindow is the courtesy exit period billed at zero.
	GraceWindow = 180 * time.Second

	dayCapFallbackCents = 999_00
)

// DayCapFallback applies when a lot has no day tariff configured.
var DayCapFallback = NewMoney(dayCapFallbackCents)

// Tariff is the price schedule of a lot. DayTariff caps a single day and is the flat
// rate for every calendar day of a multi-day stay.
type Tariff struct {
	Hourly    Money
	DayTariff *Money
}

func (t Tariff) dayCap() Money {
	if t.DayTariff == nil {
		return DayCapFallback
	}
	return *t.DayTariff
}

type Quote struct {
	Cost      Money
	Hours     int64
	ExtraDays int64
}

type Calculator interface {
	CalculatePrice(tariff Tariff, start, end time.Time) Quote
}

type DefaultCalculator struct {
	loc *time.Location
}

// NewDefaultCalculator compares calendar dates in loc. A nil loc means UTC.
func NewDefaultCalculator(loc *time.Location) *DefaultCalculator {
	if loc == nil {
		loc = time.UTC
	}
	return &DefaultCalculator{loc: loc}
}

// CalculatePrice expects end after start; it does not validate the interval.
func (c *DefaultCalculator) CalculatePrice(tariff Tariff, start, end time.Time) Quote {
	elapsed := end.Sub(start)
	hours := int64(math.Ceil(elapsed.Seconds() / 3600))

	if elapsed < GraceWindow {
		return Quote{Cost: NewMoney(0), Hours: hours}
	}

	if days := c.calendarDaysBetween(start, end); days > 0 {
		billed := days + 1
		return Quote{
			Cost:      tariff.dayCap().Mul(billed),
			Hours:     hours,
			ExtraDays: billed,
		}
	}

	return Quote{
		Cost:  tariff.Hourly.Mul(hours).Min(tariff.dayCap()),
		Hours: hours,
	}
}

func (c *DefaultCalculator) calendarDaysBetween(start, end time.Time) int64 {
	s := start.In(c.loc)
	e := end.In(c.loc)
	sd := time.Date(s.Year(), s.Month(), s.Day(), 0, 0, 0, 0, time.UTC)
	ed := time.Date(e.Year(), e.Month(), e.Day(), 0, 0, 0, 0, time.UTC)
	return int64(ed.Sub(sd).Hours() / 24)
}
