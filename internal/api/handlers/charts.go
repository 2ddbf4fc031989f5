package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"
	"voltage-room-service/internal/domain"
	"voltage-room-service/internal/ports"
	"voltage-room-service/internal/services"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

const (
	colorRoom     = "#3b82f6"
	colorSelected = "#ef4444"
	colorObject   = "#10b981"
)

// ChartHandler renders server-side go-echarts pages for the profile and the map.
type ChartHandler struct {
	Store ports.Store
}

// Profile renders the selected day's load curve. The day peak is marked and
// the room's overall peak is drawn as a horizontal line.
func (h *ChartHandler) Profile(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	id := r.PathValue("id")
	date := strings.TrimSpace(r.URL.Query().Get("date"))

	p, err := services.GetDayProfile(r.Context(), h.Store, id, date)
	if err != nil {
		writeServiceError(w, r, "profile chart", err)
		return
	}

	line := profileChart(id, p)

	var buf bytes.Buffer
	if err := line.Render(&buf); err != nil {
		writeServiceError(w, r, "profile chart", fmt.Errorf("render: %w", err))
		return
	}

	writeHTML(w, buf.Bytes())
}

func profileChart(roomID string, p domain.DayProfile) *charts.Line {
	x := make([]string, 0, len(p.Samples))
	y := make([]opts.LineData, 0, len(p.Samples))
	for _, s := range p.Samples {
		x = append(x, s.Timestamp.Format("15:04"))
		y = append(y, opts.LineData{Value: s.PowerKW})
	}

	color := colorRoom
	subtitle := fmt.Sprintf("room=%s points=%d max=%.1f kW avg=%.1f kW", roomID, p.Count, p.MaxKW, p.AvgKW)
	if p.IsPeakDay() {
		color = colorSelected
		subtitle += " (peak day)"
	} else if p.OverallPeakElsewhere() {
		subtitle += fmt.Sprintf(" | overall peak on %s at %s",
			p.OverallMax.Date(), p.OverallMax.Timestamp.Format("15:04"))
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Power Profile", Width: "100%", Height: "420px"}),
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("Power Profile for %s", p.Date), Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Time"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Power (kW)"}),
	)

	line.SetXAxis(x).
		AddSeries("Power (kW)", y,
			charts.WithLineStyleOpts(opts.LineStyle{Color: color, Width: 2}),
			charts.WithMarkPointNameCoordItemOpts(opts.MarkPointNameCoordItem{
				Name:       "Day Peak",
				Coordinate: []interface{}{p.DayPeak.Timestamp.Format("15:04"), p.DayPeak.PowerKW},
				Symbol:     "pin",
			}),
			charts.WithMarkLineNameYAxisItemOpts(opts.MarkLineNameYAxisItem{
				Name:  fmt.Sprintf("Year Peak: %.1f kW", p.OverallMax.PowerKW),
				YAxis: p.OverallMax.PowerKW,
			}),
		)

	return line
}

// Map renders room and object markers as a lon/lat scatter.
func (h *ChartHandler) Map(w http.ResponseWriter, r *http.Request) {
	if !allowGet(w, r) {
		return
	}

	selected := strings.TrimSpace(r.URL.Query().Get("selected"))
	view, err := services.BuildMapView(r.Context(), h.Store, selected)
	if err != nil {
		writeServiceError(w, r, "map chart", err)
		return
	}

	scatter := mapChart(view)

	var buf bytes.Buffer
	if err := scatter.Render(&buf); err != nil {
		writeServiceError(w, r, "map chart", fmt.Errorf("render: %w", err))
		return
	}

	writeHTML(w, buf.Bytes())
}

func mapChart(view *services.MapView) *charts.Scatter {
	var rooms, selected, objects []opts.ScatterData
	for _, m := range view.Markers {
		pt := opts.ScatterData{Name: m.Label, Value: []interface{}{m.Location.Lon, m.Location.Lat}}
		switch {
		case m.Kind == services.MarkerObject:
			objects = append(objects, pt)
		case m.Selected:
			selected = append(selected, pt)
		default:
			rooms = append(rooms, pt)
		}
	}

	subtitle := fmt.Sprintf("center=%.4f,%.4f zoom=%d", view.Center.Lat, view.Center.Lon, view.Zoom)
	if view.Selected != nil {
		subtitle += fmt.Sprintf(" | %s: %d objects", view.Selected.DisplayName(), len(objects))
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Voltage Room Locations", Width: "900px", Height: "900px"}),
		charts.WithTitleOpts(opts.Title{Title: "Voltage Room Locations", Subtitle: subtitle}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Longitude", Type: "value", Min: "dataMin", Max: "dataMax"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Latitude", Type: "value", Min: "dataMin", Max: "dataMax"}),
	)

	scatter.AddSeries("Voltage rooms", rooms,
		charts.WithItemStyleOpts(opts.ItemStyle{Color: colorRoom}),
		charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 10}),
	)
	if len(selected) > 0 {
		scatter.AddSeries("Selected room", selected,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: colorSelected}),
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 16}),
		)
	}
	if len(objects) > 0 {
		scatter.AddSeries("Connected objects", objects,
			charts.WithItemStyleOpts(opts.ItemStyle{Color: colorObject}),
			charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 6}),
		)
	}

	return scatter
}

func writeHTML(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
