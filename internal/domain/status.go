package domain

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusReady     Status = "ready"
	StatusDelivered Status = "delivered"
)

// validTransitions is the order lifecycle: a strict linear chain with
// no branching and no cancellation path. Delivered is terminal.
var validTransitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed},
	StatusConfirmed: {StatusReady},
	StatusReady:     {StatusDelivered},
	StatusDelivered: {},
}

// IsValid reports whether s is one of the known lifecycle states.
func (s Status) IsValid() bool {
	_, ok := validTransitions[s]
	return ok
}

// CanTransitionTo checks if an order may move from s to newStatus.
func (s Status) CanTransitionTo(newStatus Status) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == newStatus {
			return true
		}
	}
	return false
}
