package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/baharkarakas/points-backend/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type auditLogsRepo struct{ pool *pgxpool.Pool }

func (r *auditLogsRepo) Create(ctx context.Context, l models.AuditLog) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}
	_, err := r.pool.Exec(ctx,
		`INSERT INTO audit_logs(id, user_id, action, amount, reason, details, created_at)
		 VALUES($1, $2, $3, $4, $5, $6, $7)`,
		l.ID, l.UserID, string(l.Action), l.Amount, l.Reason, l.Details, l.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert audit log for %d: %w", l.UserID, err)
	}
	return nil
}
