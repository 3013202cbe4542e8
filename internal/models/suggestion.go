package models

type SuggestionCategory string

const (
	CategoryGeneral     SuggestionCategory = "general"
	CategoryEvent       SuggestionCategory = "event"
	CategorySystem      SuggestionCategory = "system"
	CategoryAchievement SuggestionCategory = "achievement"
)

type SuggestionStatus string

const (
	SuggestionPending     SuggestionStatus = "pending"
	SuggestionReviewed    SuggestionStatus = "reviewed"
	SuggestionImplemented SuggestionStatus = "implemented"
	SuggestionRejected    SuggestionStatus = "rejected"
)

// Suggestion is feedback submitted by a volunteer (or anonymously from the
// landing page, in which case the user fields are empty).
type Suggestion struct {
	ID             string             `json:"id" validate:"required"`
	UserID         string             `json:"userId"`
	UserName       string             `json:"userName"`
	UserRollNumber string             `json:"userRollNumber"`
	Title          string             `json:"title" validate:"required"`
	Description    string             `json:"description"`
	Category       SuggestionCategory `json:"category" validate:"oneof=general event system achievement"`
	Status         SuggestionStatus   `json:"status" validate:"oneof=pending reviewed implemented rejected"`
	Timestamp      int64              `json:"timestamp"`
	ReviewedBy     string             `json:"reviewedBy,omitempty"`
	ReviewedAt     int64              `json:"reviewedAt,omitempty"`
	Response       string             `json:"response,omitempty"`
}
