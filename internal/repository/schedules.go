package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/sysu-ecnc-dev/booking-manager/backend/internal/domain"
)

// UpsertSchedule 以用户为单位整体替换日程。
// 在同一个事务中完成三步：对 schedules 做 upsert 拿到日程 ID，
// 删除该日程下原有的全部可用时间段，再插入新的时间段。
// 任何一步失败整个事务回滚，不会出现只写入一半的中间状态。
// 注意必须先删除再插入，同一个用户并发保存时以最后提交的事务为准
func (r *Repository) UpsertSchedule(schedule *domain.Schedule) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.TransactionTimeout)*time.Second)
	defer cancel()

	tx, err := r.dbpool.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO schedules (user_id, timezone)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET timezone = EXCLUDED.timezone, updated_at = now()
		RETURNING id, created_at, updated_at
	`
	if err := tx.QueryRowContext(ctx, query, schedule.UserID, schedule.Timezone).Scan(&schedule.ID, &schedule.CreatedAt, &schedule.UpdatedAt); err != nil {
		return err
	}

	query = `DELETE FROM schedule_availabilities WHERE schedule_id = $1`
	if _, err := tx.ExecContext(ctx, query, schedule.ID); err != nil {
		return err
	}

	for i := range schedule.Availabilities {
		query = `
			INSERT INTO schedule_availabilities (schedule_id, day_of_week, start_time, end_time)
			VALUES ($1, $2, $3, $4)
			RETURNING id
		`
		params := []any{schedule.ID, schedule.Availabilities[i].DayOfWeek, schedule.Availabilities[i].StartTime, schedule.Availabilities[i].EndTime}
		if err := tx.QueryRowContext(ctx, query, params...).Scan(&schedule.Availabilities[i].ID); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	return nil
}

func (r *Repository) GetScheduleByUserID(userID int64) (*domain.Schedule, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	query := `
		SELECT
			s.id,
			s.timezone,
			s.created_at,
			s.updated_at,
			sa.id,
			sa.day_of_week,
			sa.start_time,
			sa.end_time
		FROM schedules s
		LEFT JOIN schedule_availabilities sa ON s.id = sa.schedule_id
		WHERE s.user_id = $1
		ORDER BY sa.day_of_week, sa.start_time
	`

	rows, err := r.dbpool.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	schedule := &domain.Schedule{
		UserID:         userID,
		Availabilities: make([]domain.ScheduleAvailability, 0),
	}
	found := false

	for rows.Next() {
		var row struct {
			ID        uuid.UUID
			Timezone  string
			CreatedAt time.Time
			UpdatedAt time.Time

			AvailabilityID uuid.NullUUID
			DayOfWeek      sql.NullString
			StartTime      sql.NullString
			EndTime        sql.NullString
		}

		dst := []any{
			&row.ID,
			&row.Timezone,
			&row.CreatedAt,
			&row.UpdatedAt,
			&row.AvailabilityID,
			&row.DayOfWeek,
			&row.StartTime,
			&row.EndTime,
		}
		if err := rows.Scan(dst...); err != nil {
			return nil, err
		}

		if !found {
			// 说明此时是第一次查到这个日程，需要初始化这个日程
			schedule.ID = row.ID
			schedule.Timezone = row.Timezone
			schedule.CreatedAt = row.CreatedAt
			schedule.UpdatedAt = row.UpdatedAt
			found = true
		}

		// 如果时间段 ID 为空，则表示这个日程还没有设置任何的时间段，此时可以跳过时间段解析的部分
		if !row.AvailabilityID.Valid {
			continue
		}

		schedule.Availabilities = append(schedule.Availabilities, domain.ScheduleAvailability{
			ID:        row.AvailabilityID.UUID,
			DayOfWeek: domain.DayOfWeek(row.DayOfWeek.String),
			StartTime: row.StartTime.String,
			EndTime:   row.EndTime.String,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	if !found {
		return nil, sql.ErrNoRows
	}

	return schedule, nil
}

func (r *Repository) DeleteScheduleByUserID(userID int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
	defer cancel()

	// schedule_availabilities 上有级联删除，这里只需要删除 schedules 中的行
	query := `DELETE FROM schedules WHERE user_id = $1`
	if _, err := r.dbpool.ExecContext(ctx, query, userID); err != nil {
		return err
	}

	return nil
}
