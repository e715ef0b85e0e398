package reservation

// Reservation is a read-only projection of the reservations service payload.
// The service owns persistence and the status machine; the client sequences
// calls against it and keeps this snapshot for display.
type Reservation struct {
	ID         int64
	UserID     int64
	VenueID    int64
	Start      string
	End        string
	TotalPrice float64
	Status     Status
	Notes      string
	CreatedAt  string
	UpdatedAt  string
}

func (r Reservation) IsActive() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

func (r Reservation) CanConfirm() bool {
	return CanTransition(r.Status, StatusConfirmed)
}

func (r Reservation) CanCancel() bool {
	return CanTransition(r.Status, StatusCancelled)
}

func (r Reservation) CanComplete() bool {
	return CanTransition(r.Status, StatusCompleted)
}
