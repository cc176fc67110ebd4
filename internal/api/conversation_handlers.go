package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/thansohoc/numerology-api/internal/domain"
	"github.com/thansohoc/numerology-api/internal/service/conversation"
)

// ConversationService is the use-case surface the conversation handlers need.
type ConversationService interface {
	Create(ctx context.Context, c *domain.Conversation) (*domain.Conversation, error)
	Get(ctx context.Context, id string) (*domain.Conversation, error)
	List(ctx context.Context, userID string, limit, offset int) ([]domain.Conversation, int, error)
	MostRecent(ctx context.Context, userID string) (*domain.Conversation, error)
}

// conversationListResponse pairs a page of conversations with the total
// count for pagination.
type conversationListResponse struct {
	Conversations []domain.Conversation `json:"conversations"`
	Total         int                   `json:"total"`
	Limit         int                   `json:"limit"`
	Offset        int                   `json:"offset"`
}

// HandleCreateConversation stores a completed conversation record.
//
//	POST /api/v1/conversations
func (h *Handlers) HandleCreateConversation(w http.ResponseWriter, r *http.Request) {
	var c domain.Conversation
	if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_BODY", "Nội dung yêu cầu không hợp lệ.")
		return
	}
	if _, err := uuid.Parse(c.UserID); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_USER_ID", "userId phải là UUID hợp lệ.")
		return
	}

	created, err := h.conversations.Create(r.Context(), &c)
	if err != nil {
		var verr *conversation.ValidationError
		if errors.As(err, &verr) {
			respondError(w, http.StatusBadRequest, verr.Code, verr.Message)
			return
		}
		respondInternalError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// HandleGetConversation returns one conversation by id.
//
//	GET /api/v1/conversations/{conversationID}
func (h *Handlers) HandleGetConversation(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "conversationID")

	c, err := h.conversations.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, conversation.ErrNotFound) {
			respondError(w, http.StatusNotFound, "CONVERSATION_NOT_FOUND", "Không tìm thấy cuộc hội thoại.")
			return
		}
		respondInternalError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, c)
}

// HandleListConversations returns a page of a user's conversations.
//
//	GET /api/v1/conversations?userId=...&limit=20&offset=0
func (h *Handlers) HandleListConversations(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if _, err := uuid.Parse(userID); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_USER_ID", "userId phải là UUID hợp lệ.")
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	list, total, err := h.conversations.List(r.Context(), userID, limit, offset)
	if err != nil {
		respondInternalError(w, err)
		return
	}
	if list == nil {
		list = []domain.Conversation{}
	}

	respondJSON(w, http.StatusOK, conversationListResponse{
		Conversations: list,
		Total:         total,
		Limit:         limit,
		Offset:        offset,
	})
}

// HandleRecentConversation returns the user's most recent conversation.
//
//	GET /api/v1/conversations/user/recent?userId=...
func (h *Handlers) HandleRecentConversation(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if _, err := uuid.Parse(userID); err != nil {
		respondError(w, http.StatusBadRequest, "INVALID_USER_ID", "userId phải là UUID hợp lệ.")
		return
	}

	c, err := h.conversations.MostRecent(r.Context(), userID)
	if err != nil {
		if errors.Is(err, conversation.ErrNotFound) {
			respondError(w, http.StatusNotFound, "CONVERSATION_NOT_FOUND", "Không tìm thấy cuộc hội thoại.")
			return
		}
		respondInternalError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, c)
}
