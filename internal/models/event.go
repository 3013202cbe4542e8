package models

// AdminEvent is an event posted by the admin that volunteers sign up for.
type AdminEvent struct {
	ID            string              `json:"id" validate:"required"`
	Title         string              `json:"title" validate:"required"`
	Description   string              `json:"description"`
	Date          string              `json:"date" validate:"required,datetime=2006-01-02"`
	StartDate     string              `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate       string              `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	Registrations []EventRegistration `json:"registrations" validate:"dive"`
	Timestamp     int64               `json:"timestamp"`
}

// Clone returns a deep copy of the event and its registrations.
func (e AdminEvent) Clone() AdminEvent {
	c := e
	c.Registrations = cloneSlice(e.Registrations)
	return c
}

// Registration returns the registration of userID, if any.
func (e AdminEvent) Registration(userID string) (EventRegistration, bool) {
	for _, r := range e.Registrations {
		if r.UserID == userID {
			return r, true
		}
	}
	return EventRegistration{}, false
}

// EventRegistration records one volunteer signing up for an AdminEvent. The
// roll number and name are copied from the User when the registration is made.
type EventRegistration struct {
	UserID         string `json:"userId" validate:"required"`
	UserRollNumber string `json:"userRollNumber"`
	UserName       string `json:"userName"`
	RegisteredAt   int64  `json:"registeredAt"`
	IsApproved     bool   `json:"isApproved"`
	ApprovedBy     string `json:"approvedBy,omitempty"`
	ApprovedAt     int64  `json:"approvedAt,omitempty"`
}
