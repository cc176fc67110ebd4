package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/thansohoc/numerology-api/internal/domain"
	"github.com/thansohoc/numerology-api/internal/service/conversation"
)

// ConversationRepo implements conversation.Repository against PostgreSQL.
type ConversationRepo struct{ db *sql.DB }

// NewConversationRepo creates a Postgres-backed conversation repository.
func NewConversationRepo(db *sql.DB) *ConversationRepo { return &ConversationRepo{db: db} }

const conversationColumns = `id, user_id, user_name, to_char(birth_date, 'YYYY-MM-DD'),
	COALESCE(user_question, ''), numbers_calculated, insight_provided,
	COALESCE(satisfaction_feedback, ''), created_at, updated_at`

func (r *ConversationRepo) Create(ctx context.Context, c *domain.Conversation) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	numbers, err := json.Marshal(c.NumbersCalculated)
	if err != nil {
		return fmt.Errorf("encode numbers: %w", err)
	}

	err = r.db.QueryRowContext(ctx, `
		INSERT INTO conversations
			(id, user_id, user_name, birth_date, user_question,
			 numbers_calculated, insight_provided, satisfaction_feedback,
			 created_at, updated_at)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, NULLIF($8, ''), NOW(), NOW())
		RETURNING created_at, updated_at
	`, c.ID, c.UserID, c.UserName, c.BirthDate, c.UserQuestion,
		numbers, c.InsightProvided, c.SatisfactionFeedback,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create conversation: %w", err)
	}
	return nil
}

func (r *ConversationRepo) Get(ctx context.Context, id string) (*domain.Conversation, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+conversationColumns+`
		FROM conversations
		WHERE id = $1
	`, id)
	return scanConversation(row)
}

func (r *ConversationRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]domain.Conversation, int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM conversations WHERE user_id = $1`, userID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count conversations: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+conversationColumns+`
		FROM conversations
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list conversations: %w", err)
	}
	defer rows.Close()

	var out []domain.Conversation
	for rows.Next() {
		c, err := scanConversation(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list conversations: %w", err)
	}
	return out, total, nil
}

func (r *ConversationRepo) MostRecentByUser(ctx context.Context, userID string) (*domain.Conversation, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+conversationColumns+`
		FROM conversations
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 1
	`, userID)
	return scanConversation(row)
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanConversation(row scanner) (*domain.Conversation, error) {
	c := &domain.Conversation{}
	var numbers []byte
	err := row.Scan(
		&c.ID, &c.UserID, &c.UserName, &c.BirthDate,
		&c.UserQuestion, &numbers, &c.InsightProvided,
		&c.SatisfactionFeedback, &c.CreatedAt, &c.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, conversation.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan conversation: %w", err)
	}
	if err := json.Unmarshal(numbers, &c.NumbersCalculated); err != nil {
		return nil, fmt.Errorf("decode numbers: %w", err)
	}
	return c, nil
}
