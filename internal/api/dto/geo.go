package dto

type ConvertResponse struct {
	Mode          string              `json:"mode"`
	RD            RDPointResponse     `json:"rd"`
	WGS84         CoordinatesResponse `json:"wgs84"`
	InNetherlands bool                `json:"in_netherlands"`
}

type MarkerResponse struct {
	Kind     string              `json:"kind"`
	ID       string              `json:"id"`
	Label    string              `json:"label"`
	Location CoordinatesResponse `json:"location"`
	Selected bool                `json:"selected"`
}

type MapViewResponse struct {
	Center          CoordinatesResponse `json:"center"`
	Zoom            int                 `json:"zoom"`
	SelectedID      *string             `json:"selected_id"`
	Markers         []MarkerResponse    `json:"markers"`
	UnplacedObjects int                 `json:"unplaced_objects"`
}
