package dto

import (
	"voltage-room-service/internal/domain"
	"voltage-room-service/internal/services"
)

func Coordinates(c domain.Coordinates) CoordinatesResponse {
	return CoordinatesResponse{Lat: c.Lat, Lon: c.Lon}
}

func Room(r domain.VoltageRoom) RoomResponse {
	return RoomResponse{ID: r.ID, Name: r.DisplayName(), Location: Coordinates(r.Location)}
}

func Object(o domain.ConnectedObject) ObjectResponse {
	res := ObjectResponse{
		ObjectID: o.ObjectID,
		Purpose:  o.Purpose,
		Type:     o.Type,
		Address:  o.Address,
		AreaM2:   o.AreaM2,
	}
	if o.RD != nil {
		res.RD = &RDPointResponse{X: o.RD.X, Y: o.RD.Y}
	}
	if o.Location != nil {
		c := Coordinates(*o.Location)
		res.Location = &c
	}
	return res
}

func Sample(s domain.LoadSample) SampleResponse {
	return SampleResponse{Timestamp: s.Timestamp, PowerKW: s.PowerKW}
}

func DayProfile(roomID string, p domain.DayProfile) DayProfileResponse {
	res := DayProfileResponse{
		RoomID:     roomID,
		Date:       p.Date,
		IsPeakDay:  p.IsPeakDay(),
		PeakDay:    p.PeakDay,
		PeakDayKW:  p.PeakDayKW,
		Dates:      p.Dates,
		Count:      p.Count,
		MaxKW:      p.MaxKW,
		AvgKW:      p.AvgKW,
		DayPeak:    Sample(p.DayPeak),
		OverallMax: Sample(p.OverallMax),
		Samples:    make([]SampleResponse, 0, len(p.Samples)),
	}
	for _, s := range p.Samples {
		res.Samples = append(res.Samples, Sample(s))
	}
	return res
}

func MapView(v *services.MapView) MapViewResponse {
	res := MapViewResponse{
		Center:          Coordinates(v.Center),
		Zoom:            v.Zoom,
		Markers:         make([]MarkerResponse, 0, len(v.Markers)),
		UnplacedObjects: v.UnplacedObjects,
	}
	if v.Selected != nil {
		id := v.Selected.ID
		res.SelectedID = &id
	}
	for _, m := range v.Markers {
		res.Markers = append(res.Markers, MarkerResponse{
			Kind:     m.Kind,
			ID:       m.ID,
			Label:    m.Label,
			Location: Coordinates(m.Location),
			Selected: m.Selected,
		})
	}
	return res
}
