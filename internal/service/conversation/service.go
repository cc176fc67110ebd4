// Package conversation manages stored voice-numerology conversation
// records. The voice pipeline runs outside this service; we persist and
// serve its outcomes.
package conversation

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/thansohoc/numerology-api/internal/domain"
	"github.com/thansohoc/numerology-api/internal/numerology"
)

// ErrNotFound is returned when a conversation does not exist.
var ErrNotFound = errors.New("conversation not found")

// Validation error codes surfaced to the HTTP layer.
const (
	CodeEmptyUserName    = "EMPTY_USER_NAME"
	CodeInvalidBirthDate = "INVALID_BIRTH_DATE"
	CodeEmptyInsight     = "EMPTY_INSIGHT"
	CodeInvalidFeedback  = "INVALID_FEEDBACK"
)

// ValidationError mirrors the profile service's coded error shape.
type ValidationError struct {
	Code    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Repository is the persistence contract for conversations.
type Repository interface {
	Create(ctx context.Context, c *domain.Conversation) error
	Get(ctx context.Context, id string) (*domain.Conversation, error)
	ListByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Conversation, int, error)
	MostRecentByUser(ctx context.Context, userID string) (*domain.Conversation, error)
}

// Service validates and stores conversation records.
type Service struct {
	repo Repository
}

// NewService creates a conversation service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates and persists a conversation record.
func (s *Service) Create(ctx context.Context, c *domain.Conversation) (*domain.Conversation, error) {
	if strings.TrimSpace(c.UserName) == "" {
		return nil, &ValidationError{
			Code:    CodeEmptyUserName,
			Message: "Tên không được để trống. Vui lòng nhập tên của bạn.",
		}
	}
	if _, err := numerology.ParseBirthDate(c.BirthDate); err != nil {
		return nil, &ValidationError{
			Code:    CodeInvalidBirthDate,
			Message: "Ngày sinh không hợp lệ. Sử dụng YYYY-MM-DD.",
		}
	}
	if strings.TrimSpace(c.InsightProvided) == "" {
		return nil, &ValidationError{
			Code:    CodeEmptyInsight,
			Message: "Nội dung luận giải không được để trống.",
		}
	}
	if c.SatisfactionFeedback != "" &&
		c.SatisfactionFeedback != domain.FeedbackYes &&
		c.SatisfactionFeedback != domain.FeedbackNo {
		return nil, &ValidationError{
			Code:    CodeInvalidFeedback,
			Message: "Phản hồi chỉ nhận giá trị yes hoặc no.",
		}
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create conversation: %w", err)
	}
	return c, nil
}

// Get returns one conversation by id.
func (s *Service) Get(ctx context.Context, id string) (*domain.Conversation, error) {
	return s.repo.Get(ctx, id)
}

// List returns a page of a user's conversations, newest first, plus the
// total count for pagination.
func (s *Service) List(ctx context.Context, userID string, limit, offset int) ([]domain.Conversation, int, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.repo.ListByUser(ctx, userID, limit, offset)
}

// MostRecent returns the user's latest conversation.
func (s *Service) MostRecent(ctx context.Context, userID string) (*domain.Conversation, error) {
	return s.repo.MostRecentByUser(ctx, userID)
}
