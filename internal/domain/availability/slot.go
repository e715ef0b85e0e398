package availability

// Slot is a read-only projection of the availability service payload.
// End > start is enforced server-side; the client only refuses to submit
// malformed ranges (see reservation.TimeRange).
type Slot struct {
	ID                int64
	VenueID           int64
	Start             string
	End               string
	Available         bool
	UnavailableReason string
	CreatedAt         string
	UpdatedAt         string
}
