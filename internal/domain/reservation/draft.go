package reservation

// Draft is what the client is allowed to decide about a new reservation.
// The service assigns id, Pending status and audit timestamps.
type Draft struct {
	UserID     int64
	VenueID    int64
	Range      TimeRange
	TotalPrice float64
	Notes      Note
}
