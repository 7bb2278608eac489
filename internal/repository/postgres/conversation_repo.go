package postgres

import (
	"context"

	"go-jobmarket-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type conversationRepo struct {
	db *pgxpool.Pool
}

// NewConversationRepository creates a new conversation repository
func NewConversationRepository(db *pgxpool.Pool) domain.ConversationRepository {
	return &conversationRepo{db: db}
}

// conversationRow is the raw preview row before display fallbacks are applied.
type conversationRow struct {
	ApplicationID int64
	JobTitle      string
	Name          string
	Avatar        *string
	LastMessage   *string
}

// ListForUser finds every application where the user is the candidate or the
// employer of the job, with the counterpart's display name and avatar and the
// most recent message body. Name falls back to the account username when the
// profile name is blank; avatar and preview fallbacks are applied by the
// usecase.
func (r *conversationRepo) ListForUser(ctx context.Context, userID string) ([]domain.ConversationSummary, error) {
	query := `
		SELECT
			a.id,
			j.title,
			CASE WHEN js.user_id = $1
			     THEN COALESCE(NULLIF(ep.first_name || ' ' || ep.last_name, ' '), eu.username)
			     ELSE COALESCE(NULLIF(js.first_name || ' ' || js.last_name, ' '), cu.username)
			END,
			CASE WHEN js.user_id = $1 THEN ep.company_logo_url ELSE js.profile_picture_url END,
			m.body
		FROM job_applications a
		JOIN job_posts j ON a.job_id = j.id
		JOIN job_seeker_profiles js ON a.candidate_id = js.id
		JOIN employer_profiles ep ON j.employer_id = ep.id
		JOIN users cu ON js.user_id = cu.id
		JOIN users eu ON ep.user_id = eu.id
		LEFT JOIN LATERAL (
			SELECT body
			FROM messages
			WHERE application_id = a.id
			ORDER BY created_at DESC, id DESC
			LIMIT 1
		) m ON TRUE
		WHERE js.user_id = $1 OR ep.user_id = $1
		ORDER BY a.applied_at DESC`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []domain.ConversationSummary
	for rows.Next() {
		var row conversationRow
		if err := rows.Scan(&row.ApplicationID, &row.JobTitle, &row.Name, &row.Avatar, &row.LastMessage); err != nil {
			return nil, err
		}
		s := domain.ConversationSummary{
			ApplicationID: row.ApplicationID,
			JobTitle:      row.JobTitle,
			Name:          row.Name,
		}
		if row.Avatar != nil {
			s.Avatar = *row.Avatar
		}
		if row.LastMessage != nil {
			s.LastMessage = *row.LastMessage
		} else {
			s.LastMessage = domain.NoMessagesMarker
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}
