package models

// User is a registered volunteer.
//
// Password holds an argon2id hash (see internal/cryptox). Records written by
// older clients may still carry plaintext; those are upgraded on first login.
type User struct {
	ID           string       `json:"id" validate:"required"`
	FullName     string       `json:"fullName" validate:"required"`
	RollNumber   string       `json:"rollNumber" validate:"required"`
	Branch       string       `json:"branch" validate:"required"`
	Password     string       `json:"password" validate:"required"`
	ProfilePhoto string       `json:"profilePhoto"`
	EventPhotos  []EventPhoto `json:"eventPhotos" validate:"dive"`
	QRCode       string       `json:"qrCode"`
	Timestamp    int64        `json:"timestamp"`

	IsApproved      bool   `json:"isApproved"`
	IsRejected      bool   `json:"isRejected"`
	ApprovedBy      string `json:"approvedBy,omitempty"`
	ApprovedAt      int64  `json:"approvedAt,omitempty"`
	RejectedBy      string `json:"rejectedBy,omitempty"`
	RejectedAt      int64  `json:"rejectedAt,omitempty"`
	RejectionReason string `json:"rejectionReason,omitempty"`

	JoinDate string `json:"joinDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate  string `json:"endDate,omitempty" validate:"omitempty,datetime=2006-01-02"`

	Achievements []Achievement  `json:"achievements" validate:"dive"`
	Certificates []Certificate  `json:"certificates" validate:"dive"`
	EventHistory []EventHistory `json:"eventHistory" validate:"dive"`
}

// Approval derives the tri-state decision from the stored flags.
func (u User) Approval() ApprovalState {
	switch {
	case u.IsApproved:
		return ApprovalApproved
	case u.IsRejected:
		return ApprovalRejected
	default:
		return ApprovalPending
	}
}

// Clone returns a deep copy so callers can modify the result without touching
// a record held in a collection.
func (u User) Clone() User {
	c := u
	c.EventPhotos = cloneSlice(u.EventPhotos)
	c.Achievements = cloneSlice(u.Achievements)
	c.Certificates = cloneSlice(u.Certificates)
	c.EventHistory = cloneSlice(u.EventHistory)
	return c
}

// EventPhoto is a picture a volunteer attaches to their portfolio.
type EventPhoto struct {
	ID          string `json:"id" validate:"required"`
	Photo       string `json:"photo"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AchievementLevel is the scope at which an achievement was earned.
type AchievementLevel string

const (
	LevelNational AchievementLevel = "national"
	LevelState    AchievementLevel = "state"
	LevelDistrict AchievementLevel = "district"
)

// Achievement belongs to exactly one User.
type Achievement struct {
	ID          string           `json:"id" validate:"required"`
	Title       string           `json:"title" validate:"required"`
	Description string           `json:"description"`
	Level       AchievementLevel `json:"level" validate:"oneof=national state district"`
	Date        string           `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Photo       string           `json:"photo"`
	IsVerified  bool             `json:"isVerified"`
	VerifiedBy  string           `json:"verifiedBy,omitempty"`
	VerifiedAt  int64            `json:"verifiedAt,omitempty"`
}

// Certificate belongs to exactly one User.
type Certificate struct {
	ID          string `json:"id" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	FileURL     string `json:"fileUrl"`
	UploadDate  string `json:"uploadDate" validate:"omitempty,datetime=2006-01-02"`
	IsVerified  bool   `json:"isVerified"`
	VerifiedBy  string `json:"verifiedBy,omitempty"`
	VerifiedAt  int64  `json:"verifiedAt,omitempty"`
}

// EventStatus tracks a volunteer's progress through an event.
type EventStatus string

const (
	EventRegistered EventStatus = "registered"
	EventAttended   EventStatus = "attended"
	EventCompleted  EventStatus = "completed"
)

// Rank orders statuses so transitions can only move forward.
func (s EventStatus) Rank() int {
	switch s {
	case EventRegistered:
		return 1
	case EventAttended:
		return 2
	case EventCompleted:
		return 3
	default:
		return 0
	}
}

// EventHistory is a snapshot of an AdminEvent copied into the User at
// registration time. It is not updated when the event changes.
type EventHistory struct {
	EventID          string      `json:"eventId" validate:"required"`
	EventTitle       string      `json:"eventTitle"`
	StartDate        string      `json:"startDate"`
	EndDate          string      `json:"endDate"`
	Status           EventStatus `json:"status" validate:"oneof=registered attended completed"`
	RegistrationDate string      `json:"registrationDate"`
	AttendanceDate   string      `json:"attendanceDate,omitempty"`
	CompletionDate   string      `json:"completionDate,omitempty"`
}

func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)
	return out
}
