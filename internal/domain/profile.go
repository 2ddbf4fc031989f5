package domain

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// DateLayout is the calendar-day key used for grouping profile samples.
const DateLayout = "2006-01-02"

var (
	ErrNoProfile        = errors.New("no profile data")
	ErrNoSamplesForDate = errors.New("no profile data for date")
)

// One power-load measurement of a voltage room.
type LoadSample struct {
	RoomID    string
	Timestamp time.Time
	PowerKW   float64
}

// Date returns the calendar day of the sample in its own location.
func (s LoadSample) Date() string { return s.Timestamp.Format(DateLayout) }

// DayProfile is the analysis of one selected day against the room's full profile.
type DayProfile struct {
	Date       string
	PeakDay    string
	PeakDayKW  float64
	Dates      []string
	Samples    []LoadSample
	DayPeak    LoadSample
	OverallMax LoadSample
	Count      int
	MaxKW      float64
	AvgKW      float64
}

// IsPeakDay reports whether the selected day is the day with the highest daily maximum.
func (p DayProfile) IsPeakDay() bool { return p.Date == p.PeakDay }

// OverallPeakElsewhere reports whether the room's highest value fell on another day.
func (p DayProfile) OverallPeakElsewhere() bool { return p.OverallMax.Date() != p.Date }

// Analyze a room's samples for a single calendar day.
//
// An empty date selects the peak day. Ties on maxima resolve to the earliest
// date or timestamp. The returned day samples are sorted by timestamp.
func AnalyzeDay(samples []LoadSample, date string) (DayProfile, error) {
	if len(samples) == 0 {
		return DayProfile{}, ErrNoProfile
	}

	sorted := make([]LoadSample, len(samples))
	copy(sorted, samples)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	dailyMax := make(map[string]float64)
	dates := make([]string, 0, 32)
	overall := sorted[0]
	for _, s := range sorted {
		d := s.Date()
		cur, ok := dailyMax[d]
		if !ok {
			dates = append(dates, d)
			dailyMax[d] = s.PowerKW
		} else if s.PowerKW > cur {
			dailyMax[d] = s.PowerKW
		}

		if s.PowerKW > overall.PowerKW {
			overall = s
		}
	}
	// Timestamps in mixed locations can put day keys out of order.
	sort.Strings(dates)

	peakDay := dates[0]
	for _, d := range dates[1:] {
		if dailyMax[d] > dailyMax[peakDay] {
			peakDay = d
		}
	}

	if date == "" {
		date = peakDay
	}
	if _, ok := dailyMax[date]; !ok {
		return DayProfile{}, fmt.Errorf("analyze day %s: %w", date, ErrNoSamplesForDate)
	}

	day := make([]LoadSample, 0, 96)
	var sum float64
	for _, s := range sorted {
		if s.Date() != date {
			continue
		}
		day = append(day, s)
		sum += s.PowerKW
	}

	dayPeak := day[0]
	for _, s := range day[1:] {
		if s.PowerKW > dayPeak.PowerKW {
			dayPeak = s
		}
	}

	return DayProfile{
		Date:       date,
		PeakDay:    peakDay,
		PeakDayKW:  dailyMax[peakDay],
		Dates:      dates,
		Samples:    day,
		DayPeak:    dayPeak,
		OverallMax: overall,
		Count:      len(day),
		MaxKW:      dayPeak.PowerKW,
		AvgKW:      sum / float64(len(day)),
	}, nil
}
