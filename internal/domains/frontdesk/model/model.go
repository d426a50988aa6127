package model

const (
	ReasonUnknownGuest = "guest not found"

	DistributedRemark = "Distributed from combined settlement"
	DefaultLedger     = "Cash Account"
	WalkInGuest       = "Walk-in Guest"
)

type Rejection struct {
	BookingID string `json:"bookingId"`
	Reason    string `json:"reason"`
}

// WriteResult reports which bookings of a write were stored and which were
// refused by the referential guard.
type WriteResult struct {
	Accepted []string    `json:"accepted"`
	Rejected []Rejection `json:"rejected"`
}

func (r WriteResult) AllAccepted() bool {
	return len(r.Rejected) == 0
}

func (r *WriteResult) Accept(bookingID string) {
	r.Accepted = append(r.Accepted, bookingID)
}

func (r *WriteResult) Reject(bookingID, reason string) {
	r.Rejected = append(r.Rejected, Rejection{BookingID: bookingID, Reason: reason})
}

// Merge appends the outcome of another write.
func (r *WriteResult) Merge(other WriteResult) {
	r.Accepted = append(r.Accepted, other.Accepted...)
	r.Rejected = append(r.Rejected, other.Rejected...)
}
