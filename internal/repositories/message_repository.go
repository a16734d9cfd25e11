package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"messenger-service/internal/models"
)

var ErrMessageNotFound = errors.New("message not found")

// MessageRepository abstracts message persistence and conversation queries.
type MessageRepository interface {
	CreateMessage(ctx context.Context, sender, receiver, text string) (models.Message, error)
	GetConversation(ctx context.Context, userA, userB string) ([]models.Message, error)
	ListPartners(ctx context.Context, username string) ([]string, error)
	LastMessage(ctx context.Context, userA, userB string) (models.Message, error)
}

// MessageRepo is a sqlx implementation of MessageRepository.
type MessageRepo struct {
	db *sqlx.DB
}

// NewMessageRepo constructs a MessageRepo.
func NewMessageRepo(db *sqlx.DB) *MessageRepo {
	return &MessageRepo{db: db}
}

// CreateMessage stores a message unconditionally. Sender and receiver are not
// checked against the users table and text length is unbounded.
func (r *MessageRepo) CreateMessage(ctx context.Context, sender, receiver, text string) (models.Message, error) {
	msg := models.Message{
		ID:        uuid.NewString(),
		Sender:    sender,
		Receiver:  receiver,
		Text:      text,
		Timestamp: models.NewTimestamp(),
	}

	query := r.db.Rebind(`INSERT INTO messages (id, sender, receiver, text, timestamp) VALUES (?, ?, ?, ?, ?)`)
	if _, err := r.db.ExecContext(ctx, query, msg.ID, msg.Sender, msg.Receiver, msg.Text, msg.Timestamp); err != nil {
		return models.Message{}, err
	}
	return msg, nil
}

// GetConversation returns every message between the two usernames, in either
// direction, ascending by timestamp.
func (r *MessageRepo) GetConversation(ctx context.Context, userA, userB string) ([]models.Message, error) {
	query := r.db.Rebind(`SELECT id, sender, receiver, text, timestamp FROM messages
        WHERE (sender = ? AND receiver = ?) OR (sender = ? AND receiver = ?)
        ORDER BY timestamp ASC`)
	var msgs []models.Message
	err := r.db.SelectContext(ctx, &msgs, query, userA, userB, userB, userA)
	return msgs, err
}

// ListPartners returns the distinct conversation partners of a user, most
// recent exchange first. A self-message yields the user as its own partner.
func (r *MessageRepo) ListPartners(ctx context.Context, username string) ([]string, error) {
	query := r.db.Rebind(`SELECT CASE WHEN sender = ? THEN receiver ELSE sender END AS partner
        FROM messages
        WHERE sender = ? OR receiver = ?
        GROUP BY partner
        ORDER BY MAX(timestamp) DESC`)
	var partners []string
	err := r.db.SelectContext(ctx, &partners, query, username, username, username)
	return partners, err
}

// LastMessage returns the most recent message exchanged between two usernames.
func (r *MessageRepo) LastMessage(ctx context.Context, userA, userB string) (models.Message, error) {
	query := r.db.Rebind(`SELECT id, sender, receiver, text, timestamp FROM messages
        WHERE (sender = ? AND receiver = ?) OR (sender = ? AND receiver = ?)
        ORDER BY timestamp DESC LIMIT 1`)
	var msg models.Message
	err := r.db.GetContext(ctx, &msg, query, userA, userB, userB, userA)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Message{}, ErrMessageNotFound
	}
	return msg, err
}
