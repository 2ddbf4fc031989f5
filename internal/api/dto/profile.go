package dto

import "time"

type SampleResponse struct {
	Timestamp time.Time `json:"timestamp"`
	PowerKW   float64   `json:"power_kw"`
}

type DayProfileResponse struct {
	RoomID     string           `json:"room_id"`
	Date       string           `json:"date"`
	IsPeakDay  bool             `json:"is_peak_day"`
	PeakDay    string           `json:"peak_day"`
	PeakDayKW  float64          `json:"peak_day_kw"`
	Dates      []string         `json:"dates"`
	Count      int              `json:"count"`
	MaxKW      float64          `json:"max_kw"`
	AvgKW      float64          `json:"avg_kw"`
	DayPeak    SampleResponse   `json:"day_peak"`
	OverallMax SampleResponse   `json:"overall_max"`
	Samples    []SampleResponse `json:"samples"`
}
