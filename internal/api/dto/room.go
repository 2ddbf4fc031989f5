package dto

type CoordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type RDPointResponse struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type RoomResponse struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	Location CoordinatesResponse `json:"location"`
}

type ListRoomsResponse struct {
	Rooms []RoomResponse `json:"rooms"`
}

type ObjectResponse struct {
	ObjectID string               `json:"object_id"`
	Purpose  string               `json:"purpose"`
	Type     string               `json:"type"`
	Address  string               `json:"address"`
	AreaM2   *float64             `json:"area_m2"`
	RD       *RDPointResponse     `json:"rd"`
	Location *CoordinatesResponse `json:"location"`
}

type RoomDetailResponse struct {
	Room     RoomResponse     `json:"room"`
	Objects  []ObjectResponse `json:"objects"`
	Placed   int              `json:"placed"`
	Unplaced int              `json:"unplaced"`
}
