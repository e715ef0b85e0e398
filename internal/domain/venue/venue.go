package venue

// Venue is a read-only projection of the venues service payload.
// Timestamps stay as the ISO-8601 strings the server emits.
type Venue struct {
	ID           int64
	Name         string
	Description  string
	Sport        SportType
	PricePerHour float64
	Address      string
	City         string
	Active       bool
	CreatedAt    string
	UpdatedAt    string
}
