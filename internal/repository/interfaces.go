package repository

import (
	"context"
	"errors"

	"github.com/baharkarakas/points-backend/internal/models"
)

// ErrNotFound is returned by UserPoints.SelectByID when the user has no record.
var ErrNotFound = errors.New("record not found")

// UserPoints holds the latest balance per user. Implementations keep their
// own data structures consistent but do not serialize read-modify-write
// cycles; callers do that.
type UserPoints interface {
	SelectByID(ctx context.Context, id int64) (models.UserPoint, error)
	// InsertOrUpdate stores point as the user's balance and returns the
	// snapshot stamped with a fresh update time.
	InsertOrUpdate(ctx context.Context, id, point int64) (models.UserPoint, error)
	// Delete removes the user's record. Deleting an absent record is not an
	// error.
	Delete(ctx context.Context, id int64) error
}

// PointHistories is the append-only transaction log.
type PointHistories interface {
	Insert(ctx context.Context, userID, amount int64, typ models.TransactionType, timeMillis int64) (models.PointHistory, error)
	// SelectAllByUserID returns entries oldest first, or an empty slice.
	SelectAllByUserID(ctx context.Context, userID int64) ([]models.PointHistory, error)
}

type AuditLogs interface {
	Create(ctx context.Context, l models.AuditLog) error
}

// Repositories bundles the stores a backend provides.
type Repositories struct {
	UserPoints     UserPoints
	PointHistories PointHistories
	AuditLogs      AuditLogs
}
