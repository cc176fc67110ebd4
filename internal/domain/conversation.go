package domain

import "time"

// Feedback values accepted for a conversation's satisfaction question.
const (
	FeedbackYes = "yes"
	FeedbackNo  = "no"
)

// Conversation records one completed voice-numerology session: the inputs
// collected from the user, the numbers calculated for them, and the insight
// text they were given. The voice pipeline itself lives outside this
// service; we only store its outcome.
type Conversation struct {
	ID                   string    `json:"id"`
	UserID               string    `json:"userId"`
	UserName             string    `json:"userName"`
	BirthDate            string    `json:"birthDate"` // YYYY-MM-DD
	UserQuestion         string    `json:"userQuestion,omitempty"`
	NumbersCalculated    NumberSet `json:"numbersCalculated"`
	InsightProvided      string    `json:"insightProvided"`
	SatisfactionFeedback string    `json:"satisfactionFeedback,omitempty"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}
