package place

import "errors"

// Place is a record stored by the remote service. The service assigns
// ID and CreatedAt; the client never mutates a Place after creation.
type Place struct {
	ID          string  `json:"_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Photo       *string `json:"photo"`
	CreatedAt   string  `json:"createdAt,omitempty"`
}

func (p Place) HasPhoto() bool {
	return p.Photo != nil && *p.Photo != ""
}

// Draft is the in-progress form state for a new Place. Coordinates are
// pointers because zero is a valid coordinate; both must be set together.
type Draft struct {
	Title       string
	Description string
	Latitude    *float64
	Longitude   *float64
	Photo       string
}

var ErrIncomplete = errors.New("title, description and location are required")

func (d Draft) HasLocation() bool {
	return d.Latitude != nil && d.Longitude != nil
}

func (d Draft) HasPhoto() bool {
	return d.Photo != ""
}

// Validate reports whether the draft can be submitted. Photo is optional.
func (d Draft) Validate() error {
	if d.Title == "" || d.Description == "" || !d.HasLocation() {
		return ErrIncomplete
	}
	return nil
}

func (d *Draft) SetLocation(lat, lng float64) {
	d.Latitude = &lat
	d.Longitude = &lng
}

func (d *Draft) Reset() {
	*d = Draft{}
}
