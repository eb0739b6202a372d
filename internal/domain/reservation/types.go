package reservation

// Status is computed by the gateway from cancelled_at; the booking service does not send one.
type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCanceled  Status = "canceled"
)

func (s Status) String() string {
	return string(s)
}
