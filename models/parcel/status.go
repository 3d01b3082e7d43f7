package parcel

// Status represents the lifecycle state of a parcel.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusPostponed Status = "postponed"
	StatusCancelled Status = "cancelled"
	StatusOverdue   Status = "overdue"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusPaid, StatusPostponed, StatusCancelled, StatusOverdue:
		return true
	default:
		return false
	}
}

// IsActive returns true while the parcel is still awaiting delivery or resolution.
func (s Status) IsActive() bool {
	return s == StatusPending || s == StatusPostponed
}

// GetAllStatuses returns all valid parcel statuses
func GetAllStatuses() []Status {
	return []Status{
		StatusPending,
		StatusPaid,
		StatusPostponed,
		StatusCancelled,
		StatusOverdue,
	}
}
