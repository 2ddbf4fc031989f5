package domain

// Represents a physical object (building) fed by a voltage room.
// RD holds the surveyed grid position; Location is the converted WGS84 position
// and stays nil when the source row had no usable coordinates.
type ConnectedObject struct {
	RoomID   string
	ObjectID string
	Purpose  string
	Type     string
	Address  string
	AreaM2   *float64
	RD       *RDPoint
	Location *Coordinates
}

// Report whether the object can be placed on the map.
func (o ConnectedObject) Placed() bool { return o.Location != nil }

// Return the label used for map tooltips: address, then object ID.
func (o ConnectedObject) Label() string {
	if o.Address != "" {
		return o.Address
	}
	if o.ObjectID != "" {
		return o.ObjectID
	}
	return "Object"
}
