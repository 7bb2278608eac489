package postgres

import (
	"context"
	"time"

	"go-jobmarket-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type messageRepo struct {
	db *pgxpool.Pool
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *pgxpool.Pool) domain.MessageRepository {
	return &messageRepo{db: db}
}

// CreateOpener inserts the thread-bootstrap message unless one already exists.
// The partial unique index on (application_id) WHERE is_opener makes repeated
// and concurrent calls collapse to a single row; ON CONFLICT DO NOTHING turns
// the loser into a no-op instead of an error.
func (r *messageRepo) CreateOpener(ctx context.Context, applicationID int64, senderUserID, receiverUserID string) (bool, error) {
	query := `
		INSERT INTO messages (application_id, sender_user_id, receiver_user_id, subject, body, is_opener, created_at, updated_at)
		VALUES ($1, $2, $3, $4, '', TRUE, $5, $5)
		ON CONFLICT (application_id) WHERE is_opener DO NOTHING`

	result, err := r.db.Exec(ctx, query, applicationID, senderUserID, receiverUserID, domain.OpenerSubject, time.Now())
	if err != nil {
		return false, err
	}
	return result.RowsAffected() > 0, nil
}

// Create inserts a regular message. Sender and receiver are decided by the
// usecase from the application's parties.
func (r *messageRepo) Create(ctx context.Context, msg *domain.Message) error {
	query := `
		INSERT INTO messages (application_id, sender_user_id, receiver_user_id, subject, body, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	now := time.Now()
	msg.CreatedAt = now
	msg.UpdatedAt = now

	return r.db.QueryRow(ctx, query,
		msg.ApplicationID,
		msg.SenderUserID,
		msg.ReceiverUserID,
		msg.Subject,
		msg.Body,
		msg.CreatedAt,
		msg.UpdatedAt,
	).Scan(&msg.ID)
}

// GetByApplicationID returns the thread oldest-first.
func (r *messageRepo) GetByApplicationID(ctx context.Context, applicationID int64) ([]domain.Message, error) {
	query := `
		SELECT id, application_id, sender_user_id, receiver_user_id, subject, body, created_at, updated_at
		FROM messages
		WHERE application_id = $1
		ORDER BY created_at ASC, id ASC`

	rows, err := r.db.Query(ctx, query, applicationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []domain.Message
	for rows.Next() {
		var msg domain.Message
		if err := rows.Scan(
			&msg.ID, &msg.ApplicationID, &msg.SenderUserID, &msg.ReceiverUserID,
			&msg.Subject, &msg.Body, &msg.CreatedAt, &msg.UpdatedAt,
		); err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, rows.Err()
}
