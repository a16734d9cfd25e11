package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"messenger-service/internal/models"
	"messenger-service/internal/observability"
	"messenger-service/internal/repositories"
	"messenger-service/internal/telemetry"
)

// MessageHandler serves message sending, conversation history and chat lists.
type MessageHandler struct {
	messageRepo    repositories.MessageRepository
	userRepo       repositories.UserRepository
	emitter        *telemetry.AuditEmitter
	noMessagesText string
}

// NewMessageHandler builds a MessageHandler. noMessagesText is the display
// string used when a chat-list partner has no retrievable last message.
func NewMessageHandler(messageRepo repositories.MessageRepository, userRepo repositories.UserRepository, emitter *telemetry.AuditEmitter, noMessagesText string) *MessageHandler {
	return &MessageHandler{
		messageRepo:    messageRepo,
		userRepo:       userRepo,
		emitter:        emitter,
		noMessagesText: noMessagesText,
	}
}

type sendMessageRequest struct {
	Sender   string `json:"sender" binding:"required"`
	Receiver string `json:"receiver" binding:"required"`
	Text     string `json:"text" binding:"required"`
}

// SendMessage stores a message unconditionally. Sender and receiver are
// caller-asserted usernames; self-messaging is allowed.
func (h *MessageHandler) SendMessage(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, "invalid request body")
		return
	}

	msg, err := h.messageRepo.CreateMessage(c.Request.Context(), req.Sender, req.Receiver, req.Text)
	if err != nil {
		respondError(c, "send error")
		return
	}

	observability.IncMessageSent()
	h.emitter.Emit(c.Request.Context(), "INFO", "message sent", requestIDFromContext(c), req.Sender, observability.IPFromRequest(c.Request))
	respondSuccess(c, gin.H{"message_id": msg.ID})
}

// GetMessages returns the full history between two usernames, oldest first.
func (h *MessageHandler) GetMessages(c *gin.Context) {
	msgs, err := h.messageRepo.GetConversation(c.Request.Context(), c.Param("user1"), c.Param("user2"))
	if err != nil {
		respondError(c, "messages error")
		return
	}

	views := make([]models.MessageView, 0, len(msgs))
	for _, m := range msgs {
		views = append(views, m.View())
	}
	respondSuccess(c, gin.H{"messages": views})
}

// GetUserChats derives the chat list of a user: every conversation partner,
// most recent exchange first, each with the text of the latest message.
// Partners without a user record are skipped.
func (h *MessageHandler) GetUserChats(c *gin.Context) {
	username := c.Param("username")

	partners, err := h.messageRepo.ListPartners(c.Request.Context(), username)
	if err != nil {
		respondError(c, "chats error")
		return
	}

	chats := make([]models.ChatSummary, 0, len(partners))
	for _, partner := range partners {
		user, err := h.userRepo.GetByUsername(c.Request.Context(), partner)
		if err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				continue
			}
			respondError(c, "chats error")
			return
		}

		lastMessage := h.noMessagesText
		last, err := h.messageRepo.LastMessage(c.Request.Context(), username, partner)
		switch {
		case err == nil:
			lastMessage = last.Text
		case errors.Is(err, repositories.ErrMessageNotFound):
			// keep placeholder
		default:
			respondError(c, "chats error")
			return
		}

		chats = append(chats, models.ChatSummary{User: user.Summary(), LastMessage: lastMessage})
	}

	respondSuccess(c, gin.H{"chats": chats})
}
