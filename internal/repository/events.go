package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sysu-ecnc-dev/booking-manager/backend/internal/domain"
)

func (r *Repository) CreateEvent(event *domain.Event) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		INSERT INTO events (name, description, duration_in_minutes, user_id, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	args := []any{event.Name, event.Description, event.DurationInMinutes, event.UserID, event.IsActive}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetEventByID(id uuid.UUID) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT name, description, duration_in_minutes, user_id, is_active, created_at, updated_at
		FROM events WHERE id = $1
	`

	event := &domain.Event{
		ID: id,
	}

	dst := []any{&event.Name, &event.Description, &event.DurationInMinutes, &event.UserID, &event.IsActive, &event.CreatedAt, &event.UpdatedAt}
	if err := r.dbpool.QueryRowContext(ctx, query, id).Scan(dst...); err != nil {
		return nil, err
	}

	return event, nil
}

// GetEventsByUserID 获取某个用户的所有会议类型，新创建的排在前面
func (r *Repository) GetEventsByUserID(userID int64) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT id, name, description, duration_in_minutes, is_active, created_at, updated_at
		FROM events
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.dbpool.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		event := &domain.Event{
			UserID: userID,
		}
		dst := []any{&event.ID, &event.Name, &event.Description, &event.DurationInMinutes, &event.IsActive, &event.CreatedAt, &event.UpdatedAt}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func (r *Repository) UpdateEvent(event *domain.Event) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		UPDATE events
		SET
			name = $1,
			description = $2,
			duration_in_minutes = $3,
			is_active = $4,
			updated_at = now()
		WHERE id = $5
		RETURNING updated_at
	`

	args := []any{event.Name, event.Description, event.DurationInMinutes, event.IsActive, event.ID}
	if err := r.dbpool.QueryRowContext(ctx, query, args...).Scan(&event.UpdatedAt); err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteEvent(id uuid.UUID) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM events WHERE id = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	return nil
}

func (r *Repository) DeleteEventsByUserID(userID int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		DELETE FROM events WHERE user_id = $1
	`

	_, err := r.dbpool.ExecContext(ctx, query, userID)
	if err != nil {
		return err
	}

	return nil
}
