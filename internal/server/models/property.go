package models

import "time"

// Property statuses.
const (
	PropertyStatusAvailable = "available"
	PropertyStatusReserved  = "reserved"
	PropertyStatusSold      = "sold"
)

// Property is a single unit offered on the platform. Price is stored in
// minor currency units. Model3DKey points at the asset consumed by the
// 3D-visualization viewer.
type Property struct {
	ID          string    `json:"id"`
	BuildingID  string    `json:"buildingId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	AreaM2      float64   `json:"areaM2"`
	Rooms       int       `json:"rooms"`
	Floor       int       `json:"floor"`
	Status      string    `json:"status"`
	ImageKeys   []string  `json:"imageKeys"`
	ImageURLs   []string  `json:"imageUrls,omitempty"`
	Model3DKey  string    `json:"model3dKey"`
	Model3DURL  string    `json:"model3dUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// PropertyFilter narrows property listings. Zero values mean "no constraint".
type PropertyFilter struct {
	BuildingID string
	City       string
	MinPrice   int64
	MaxPrice   int64
	Rooms      int
	Status     string
}
