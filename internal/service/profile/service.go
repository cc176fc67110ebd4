// Package profile implements the numerology profile use cases: input
// validation, number calculation, interpretation lookup, and persistence.
package profile

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/thansohoc/numerology-api/internal/domain"
	"github.com/thansohoc/numerology-api/internal/numerology"
	"github.com/thansohoc/numerology-api/internal/pkg/logger"
)

// ErrNotFound is returned when no profile exists for a user.
var ErrNotFound = errors.New("profile not found")

// Repository is the persistence contract the service needs.
type Repository interface {
	GetByUserID(ctx context.Context, userID string) (*domain.Profile, error)
	Upsert(ctx context.Context, p *domain.Profile) error
}

// Cache is an optional read-through cache for stored profiles. A nil Cache
// disables caching entirely.
type Cache interface {
	Get(ctx context.Context, userID string) (*domain.Profile, bool)
	Set(ctx context.Context, p *domain.Profile)
	Invalidate(ctx context.Context, userID string)
}

// Config bounds request validation. Zero values fall back to the original
// service limits (100-char names, birth years from 1900).
type Config struct {
	Locale        string
	MaxNameLength int
	MinBirthYear  int
	// Now lets tests pin the clock for Personal Year/Month.
	Now func() time.Time
}

// Service calculates and stores numerology profiles.
type Service struct {
	repo  Repository
	cache Cache
	cfg   Config
}

// NewService creates a profile service. cache may be nil.
func NewService(repo Repository, cache Cache, cfg Config) *Service {
	if cfg.Locale == "" {
		cfg.Locale = numerology.LocaleVI
	}
	if cfg.MaxNameLength == 0 {
		cfg.MaxNameLength = 100
	}
	if cfg.MinBirthYear == 0 {
		cfg.MinBirthYear = 1900
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Service{repo: repo, cache: cache, cfg: cfg}
}

// ValidateName trims and bounds-checks a full name.
func (s *Service) ValidateName(fullName string) (string, error) {
	trimmed := strings.TrimSpace(fullName)
	if trimmed == "" {
		return "", NewEmptyNameError()
	}
	if len([]rune(fullName)) > s.cfg.MaxNameLength {
		return "", NewNameTooLongError(s.cfg.MaxNameLength)
	}
	return trimmed, nil
}

// ValidateBirthDate parses an ISO date string and rejects future dates and
// dates before the configured minimum year.
func (s *Service) ValidateBirthDate(birthDate string) (time.Time, error) {
	t, err := numerology.ParseBirthDate(birthDate)
	if err != nil {
		return time.Time{}, NewInvalidDateFormatError()
	}
	today := s.cfg.Now()
	if t.After(today) {
		return time.Time{}, NewBirthDateFutureError()
	}
	if t.Year() < s.cfg.MinBirthYear {
		return time.Time{}, NewBirthDateTooOldError()
	}
	return t, nil
}

// Calculate runs the full set of calculations for a validated name and
// birth date. Interpretation lookups that fail are logged and skipped; a
// missing text never fails the calculation.
func (s *Service) Calculate(fullName string, birthDate time.Time) (domain.NumberSet, map[string]string) {
	now := s.cfg.Now()

	numbers := domain.NumberSet{
		LifePath:      numerology.LifePath(birthDate),
		Destiny:       numerology.Destiny(fullName),
		SoulUrge:      numerology.SoulUrge(fullName),
		Personality:   numerology.Personality(fullName),
		PersonalYear:  numerology.PersonalYear(int(birthDate.Month()), birthDate.Day(), now.Year()),
		PersonalMonth: numerology.PersonalMonth(birthDate.Day(), int(now.Month()), now.Year()),
	}

	interpretations := make(map[string]string, 4)
	for _, item := range []struct {
		key      string
		category numerology.Category
		value    int
	}{
		{"lifePathNumber", numerology.CategoryLifePath, numbers.LifePath},
		{"destinyNumber", numerology.CategoryDestiny, numbers.Destiny},
		{"soulUrgeNumber", numerology.CategorySoulUrge, numbers.SoulUrge},
		{"personalityNumber", numerology.CategoryPersonality, numbers.Personality},
	} {
		text, err := numerology.Interpretation(item.category, item.value, s.cfg.Locale)
		if err != nil {
			logger.Warn("interpretation lookup failed",
				"category", string(item.category),
				"value", item.value,
				"locale", s.cfg.Locale,
				"error", err.Error(),
			)
			continue
		}
		interpretations[fmt.Sprintf("%s_%d", item.key, item.value)] = text
	}

	return numbers, interpretations
}

// CreateOrUpdate validates the request, calculates the profile, and upserts
// it for the user. The cache entry is replaced on success.
func (s *Service) CreateOrUpdate(ctx context.Context, userID, fullName, birthDate string) (*domain.Profile, error) {
	name, err := s.ValidateName(fullName)
	if err != nil {
		return nil, err
	}
	bd, err := s.ValidateBirthDate(birthDate)
	if err != nil {
		return nil, err
	}

	numbers, interpretations := s.Calculate(name, bd)

	now := s.cfg.Now().UTC()
	p := &domain.Profile{
		UserID:          userID,
		NumberSet:       numbers,
		Interpretations: interpretations,
		CalculatedAt:    now,
		UpdatedAt:       now,
	}

	if err := s.repo.Upsert(ctx, p); err != nil {
		return nil, fmt.Errorf("upsert profile: %w", err)
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx, userID)
		s.cache.Set(ctx, p)
	}

	logger.Info("numerology profile saved",
		"user_id", userID,
		"full_name", name,
		"life_path", numbers.LifePath,
	)
	return p, nil
}

// Get returns the stored profile for a user, consulting the cache first.
func (s *Service) Get(ctx context.Context, userID string) (*domain.Profile, error) {
	if s.cache != nil {
		if p, ok := s.cache.Get(ctx, userID); ok {
			return p, nil
		}
	}

	p, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, p)
	}
	return p, nil
}

// Reading computes a stateless reading without touching storage.
func (s *Service) Reading(fullName, birthDate string) (*domain.Reading, error) {
	name, err := s.ValidateName(fullName)
	if err != nil {
		return nil, err
	}
	bd, err := s.ValidateBirthDate(birthDate)
	if err != nil {
		return nil, err
	}

	numbers, interpretations := s.Calculate(name, bd)
	return &domain.Reading{
		FullName:        name,
		BirthDate:       birthDate,
		NumberSet:       numbers,
		Interpretations: interpretations,
	}, nil
}
