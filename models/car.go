package models

// Car type categories produced by catalog normalization.
const (
	CarTypeEconomy = "economy"
	CarTypeSedan   = "sedan"
	CarTypeSUV     = "suv"
	CarTypeLuxury  = "luxury"
	CarTypeSports  = "sports"
	CarTypeOther   = "other"
)

// Car is the canonical car shape. Feed records are normalized into it at
// ingestion; agency-added cars are created in it directly.
type Car struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Make     string  `json:"make"`
	Model    string  `json:"model"`
	Type     string  `json:"type"`
	Price    float64 `json:"price"` // per day
	Color    string  `json:"color,omitempty"`
	Seats    int     `json:"seats"`
	Rating   float64 `json:"rating,omitempty"` // 0-5
	Image    string  `json:"image,omitempty"`
	Location string  `json:"location,omitempty"`
	AgencyID string  `json:"agencyId,omitempty"`
	Approved bool    `json:"approved,omitempty"`
}
