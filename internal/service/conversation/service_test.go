package conversation

import (
	"context"
	"errors"
	"testing"

	"github.com/thansohoc/numerology-api/internal/domain"
)

type fakeRepo struct {
	created []*domain.Conversation
	stored  map[string]*domain.Conversation
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{stored: map[string]*domain.Conversation{}}
}

func (r *fakeRepo) Create(_ context.Context, c *domain.Conversation) error {
	if c.ID == "" {
		c.ID = "conv-1"
	}
	r.created = append(r.created, c)
	r.stored[c.ID] = c
	return nil
}

func (r *fakeRepo) Get(_ context.Context, id string) (*domain.Conversation, error) {
	c, ok := r.stored[id]
	if !ok {
		return nil, ErrNotFound
	}
	return c, nil
}

func (r *fakeRepo) ListByUser(_ context.Context, userID string, limit, offset int) ([]domain.Conversation, int, error) {
	var out []domain.Conversation
	for _, c := range r.stored {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, len(out), nil
}

func (r *fakeRepo) MostRecentByUser(_ context.Context, userID string) (*domain.Conversation, error) {
	for _, c := range r.stored {
		if c.UserID == userID {
			return c, nil
		}
	}
	return nil, ErrNotFound
}

func validConversation() *domain.Conversation {
	return &domain.Conversation{
		UserID:    "550e8400-e29b-41d4-a716-446655440000",
		UserName:  "Nguyễn Văn An",
		BirthDate: "1990-03-15",
		NumbersCalculated: domain.NumberSet{
			LifePath: 1, Destiny: 7, SoulUrge: 3, Personality: 4,
			PersonalYear: 9, PersonalMonth: 8,
		},
		InsightProvided: "Bạn là người tiên phong.",
	}
}

func TestCreateValidConversation(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	created, err := svc.Create(context.Background(), validConversation())
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.ID == "" {
		t.Error("created conversation has no id")
	}
	if len(repo.created) != 1 {
		t.Errorf("repo.Create called %d times, want 1", len(repo.created))
	}
}

func TestCreateValidation(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(c *domain.Conversation)
		wantCode string
	}{
		{"empty user name", func(c *domain.Conversation) { c.UserName = "  " }, CodeEmptyUserName},
		{"bad birth date", func(c *domain.Conversation) { c.BirthDate = "15/03/1990" }, CodeInvalidBirthDate},
		{"unpadded birth date", func(c *domain.Conversation) { c.BirthDate = "1990-3-5" }, CodeInvalidBirthDate},
		{"empty insight", func(c *domain.Conversation) { c.InsightProvided = "" }, CodeEmptyInsight},
		{"bad feedback", func(c *domain.Conversation) { c.SatisfactionFeedback = "maybe" }, CodeInvalidFeedback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepo()
			svc := NewService(repo)

			c := validConversation()
			tt.mutate(c)

			_, err := svc.Create(context.Background(), c)
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Create() error = %v, want ValidationError", err)
			}
			if verr.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", verr.Code, tt.wantCode)
			}
			if len(repo.created) != 0 {
				t.Error("invalid conversation reached the repository")
			}
		})
	}
}

func TestCreateAcceptsFeedbackValues(t *testing.T) {
	for _, fb := range []string{"", domain.FeedbackYes, domain.FeedbackNo} {
		repo := newFakeRepo()
		svc := NewService(repo)

		c := validConversation()
		c.SatisfactionFeedback = fb
		if _, err := svc.Create(context.Background(), c); err != nil {
			t.Errorf("Create() with feedback %q error = %v", fb, err)
		}
	}
}

func TestListClampsPagination(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	c := validConversation()
	if _, err := svc.Create(context.Background(), c); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	list, total, err := svc.List(context.Background(), c.UserID, -5, -1)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if total != 1 || len(list) != 1 {
		t.Errorf("List() total=%d len=%d, want 1/1", total, len(list))
	}
}

func TestMostRecentNotFound(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.MostRecent(context.Background(), "550e8400-e29b-41d4-a716-446655440001")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("MostRecent() error = %v, want ErrNotFound", err)
	}
}
