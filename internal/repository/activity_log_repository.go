package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/ats-backend/internal/models"
)

// ActivityLogRepository хранит журнал действий над сущностями.
type ActivityLogRepository struct {
	db *sqlx.DB
}

// NewActivityLogRepository создаёт новый экземпляр.
func NewActivityLogRepository(db *sqlx.DB) *ActivityLogRepository {
	return &ActivityLogRepository{db: db}
}

// Add добавляет запись аудита со старым и новым значением в JSON.
func (r *ActivityLogRepository) Add(ctx context.Context, userID *uuid.UUID, action, entityType string, entityID uuid.UUID, oldValue, newValue interface{}) error {
	oldJSON, _ := json.Marshal(oldValue)
	newJSON, _ := json.Marshal(newValue)
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO activity_log (user_id, action, entity_type, entity_id, old_value, new_value)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, userID, action, entityType, entityID, oldJSON, newJSON)
	if err != nil {
		return fmt.Errorf("activity log repository: add %w", err)
	}
	return nil
}

// ListByEntity возвращает историю действий над сущностью.
func (r *ActivityLogRepository) ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID) ([]models.ActivityLog, error) {
	var entries []models.ActivityLog
	err := r.db.SelectContext(ctx, &entries, `
		SELECT * FROM activity_log WHERE entity_type = $1 AND entity_id = $2 ORDER BY created_at ASC
	`, entityType, entityID)
	if err != nil {
		return nil, fmt.Errorf("activity log repository: list %w", err)
	}
	return entries, nil
}
