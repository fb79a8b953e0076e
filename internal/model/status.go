package model

// MemberStatus is the lifecycle state of a member record.
type MemberStatus string

const (
	MemberStatusActive   MemberStatus = "active"
	MemberStatusInactive MemberStatus = "inactive"
)

func (s MemberStatus) IsValid() bool {
	return s == MemberStatusActive || s == MemberStatusInactive
}

// EventType classifies club events.
type EventType string

const (
	EventTypeTraining EventType = "training"
	EventTypeMatch    EventType = "match"
	EventTypeEvent    EventType = "event"
)

func (t EventType) IsValid() bool {
	switch t {
	case EventTypeTraining, EventTypeMatch, EventTypeEvent:
		return true
	}
	return false
}

// PaymentStatus tracks whether a membership fee was settled.
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "unpaid"
	PaymentStatusPaid   PaymentStatus = "paid"
)

func (s PaymentStatus) IsValid() bool {
	return s == PaymentStatusUnpaid || s == PaymentStatusPaid
}
