package domain

// BuildingStatus is the administrative state of a building.
type BuildingStatus string

const (
	BuildingActive   BuildingStatus = "active"
	BuildingInactive BuildingStatus = "inactive"
)

// Building groups residential units sharing one election scope.
type Building struct {
	ID     string         `json:"id"`
	Number string         `json:"number"`
	Status BuildingStatus `json:"status"`
}

// BuildingSummary is the read-side view of a building with its
// resident headcount.
type BuildingSummary struct {
	Building
	ResidentCount int `json:"residentCount"`
}

// OwnerType distinguishes owners from rental tenants.
type OwnerType string

const (
	OwnerTypeOwner  OwnerType = "owner"
	OwnerTypeRental OwnerType = "rental"
)

// Resident is a person tied to one building and unit. The election core
// reads residents for eligibility checks but never writes them.
type Resident struct {
	ID         string    `json:"id"`
	BuildingID string    `json:"buildingId"`
	FullName   string    `json:"fullName"`
	Unit       string    `json:"unit"`
	OwnerType  OwnerType `json:"ownerType"`
	IsActive   bool      `json:"isActive"`
}
