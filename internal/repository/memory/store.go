// Package memory keeps points, histories and audit logs in process memory.
// It backs local runs and tests; nothing survives a restart.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/baharkarakas/points-backend/internal/models"
	repo "github.com/baharkarakas/points-backend/internal/repository"
)

func NewRepositories() repo.Repositories {
	return repo.Repositories{
		UserPoints:     NewUserPoints(),
		PointHistories: NewPointHistories(),
		AuditLogs:      NewAuditLogs(),
	}
}

type UserPoints struct {
	mu    sync.RWMutex
	table map[int64]models.UserPoint
	now   func() time.Time
}

var _ repo.UserPoints = (*UserPoints)(nil)

func NewUserPoints() *UserPoints {
	return &UserPoints{table: make(map[int64]models.UserPoint), now: time.Now}
}

func (s *UserPoints) SelectByID(_ context.Context, id int64) (models.UserPoint, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	up, ok := s.table[id]
	if !ok {
		return models.UserPoint{}, repo.ErrNotFound
	}
	return up, nil
}

func (s *UserPoints) InsertOrUpdate(_ context.Context, id, point int64) (models.UserPoint, error) {
	up := models.UserPoint{ID: id, Point: point, UpdateMillis: s.now().UnixMilli()}
	s.mu.Lock()
	s.table[id] = up
	s.mu.Unlock()
	return up, nil
}

func (s *UserPoints) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	delete(s.table, id)
	s.mu.Unlock()
	return nil
}

type PointHistories struct {
	mu     sync.RWMutex
	seq    int64
	byUser map[int64][]models.PointHistory
}

var _ repo.PointHistories = (*PointHistories)(nil)

func NewPointHistories() *PointHistories {
	return &PointHistories{byUser: make(map[int64][]models.PointHistory)}
}

func (s *PointHistories) Insert(_ context.Context, userID, amount int64, typ models.TransactionType, timeMillis int64) (models.PointHistory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	h := models.PointHistory{ID: s.seq, UserID: userID, Amount: amount, Type: typ, TimeMillis: timeMillis}
	s.byUser[userID] = append(s.byUser[userID], h)
	return h, nil
}

func (s *PointHistories) SelectAllByUserID(_ context.Context, userID int64) ([]models.PointHistory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	src := s.byUser[userID]
	out := make([]models.PointHistory, len(src))
	copy(out, src)
	return out, nil
}

type AuditLogs struct {
	mu   sync.Mutex
	logs []models.AuditLog
}

var _ repo.AuditLogs = (*AuditLogs)(nil)

func NewAuditLogs() *AuditLogs { return &AuditLogs{} }

func (s *AuditLogs) Create(_ context.Context, l models.AuditLog) error {
	if l.CreatedAt.IsZero() {
		l.CreatedAt = time.Now()
	}
	s.mu.Lock()
	s.logs = append(s.logs, l)
	s.mu.Unlock()
	return nil
}

// List returns a copy of everything recorded so far.
func (s *AuditLogs) List() []models.AuditLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.AuditLog, len(s.logs))
	copy(out, s.logs)
	return out
}
