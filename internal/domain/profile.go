package domain

import "time"

// NumberSet holds the six calculated numbers for one person. The JSON keys
// are the camelCase field names the API contract uses; the same shape is
// stored in conversations.numbers_calculated.
type NumberSet struct {
	LifePath      int `json:"lifePathNumber"`
	Destiny       int `json:"destinyNumber"`
	SoulUrge      int `json:"soulUrgeNumber"`
	Personality   int `json:"personalityNumber"`
	PersonalYear  int `json:"currentPersonalYear"`
	PersonalMonth int `json:"currentPersonalMonth"`
}

// Profile is a stored numerology profile, one per user. Interpretations are
// cached at calculation time keyed "lifePathNumber_<n>" etc., so reads never
// recompute them. NumberSet is embedded so its fields marshal inline.
type Profile struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	NumberSet
	Interpretations map[string]string `json:"interpretations"`
	CalculatedAt    time.Time         `json:"calculatedAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

// Reading is a stateless calculation result: the same numbers and
// interpretations as a Profile, but never persisted.
type Reading struct {
	FullName  string `json:"fullName"`
	BirthDate string `json:"birthDate"`
	NumberSet
	Interpretations map[string]string `json:"interpretations"`
}
