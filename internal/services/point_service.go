package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/baharkarakas/points-backend/internal/lock"
	"github.com/baharkarakas/points-backend/internal/metrics"
	"github.com/baharkarakas/points-backend/internal/models"
	repo "github.com/baharkarakas/points-backend/internal/repository"
	"github.com/baharkarakas/points-backend/internal/worker"
	"github.com/google/uuid"
)

// DefaultMaxBalance caps a balance and any single charge.
const DefaultMaxBalance int64 = 5000

// PointService charges and spends user points. Every mutation of a user runs
// under that user's lock, so the limit check, the balance write and the
// history append are seen by other operations on the same user as one step.
// Different users never wait on each other.
type PointService struct {
	points    repo.UserPoints
	histories repo.PointHistories
	locks     *lock.Registry

	audit repo.AuditLogs
	wp    *worker.Pool
	log   *slog.Logger

	maxBalance      int64
	consistentReads bool
}

type Option func(*PointService)

func WithMaxBalance(n int64) Option {
	return func(s *PointService) { s.maxBalance = n }
}

// WithConsistentReads makes GetPoint and GetHistories wait for in-flight
// mutations of the same user instead of reading around them.
func WithConsistentReads(on bool) Option {
	return func(s *PointService) { s.consistentReads = on }
}

func WithLogger(l *slog.Logger) Option {
	return func(s *PointService) { s.log = l }
}

// WithAudit records rejected operations through wp.
func WithAudit(a repo.AuditLogs, wp *worker.Pool) Option {
	return func(s *PointService) { s.audit, s.wp = a, wp }
}

func NewPointService(p repo.UserPoints, h repo.PointHistories, opts ...Option) *PointService {
	s := &PointService{
		points:     p,
		histories:  h,
		locks:      lock.NewRegistry(),
		log:        slog.Default(),
		maxBalance: DefaultMaxBalance,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Charge adds amount to the user's balance, creating the balance on first use.
func (s *PointService) Charge(ctx context.Context, userID, amount int64) (models.UserPoint, error) {
	defer observe(models.TxnCharge)()
	unlock := s.lockUser(userID)
	defer unlock()

	found := true
	current, err := s.points.SelectByID(ctx, userID)
	switch {
	case errors.Is(err, repo.ErrNotFound):
		current, found = models.EmptyUserPoint(userID), false
	case err != nil:
		return models.UserPoint{}, err
	}

	// amount is checked first so current.Point+amount cannot overflow.
	if amount > s.maxBalance || current.Point+amount > s.maxBalance {
		return models.UserPoint{}, s.reject(userID, models.TxnCharge, amount, ErrLimitExceeded,
			"current", current.Point, "max", s.maxBalance)
	}
	return s.apply(ctx, current, found, current.Point+amount, amount, models.TxnCharge)
}

// Use spends amount from a balance that was charged before.
func (s *PointService) Use(ctx context.Context, userID, amount int64) (models.UserPoint, error) {
	defer observe(models.TxnUse)()
	unlock := s.lockUser(userID)
	defer unlock()

	current, err := s.points.SelectByID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return models.UserPoint{}, s.reject(userID, models.TxnUse, amount, ErrNoBalance)
	}
	if err != nil {
		return models.UserPoint{}, err
	}
	if current.Point < amount {
		return models.UserPoint{}, s.reject(userID, models.TxnUse, amount, ErrInsufficientBalance,
			"current", current.Point)
	}
	return s.apply(ctx, current, true, current.Point-amount, amount, models.TxnUse)
}

// GetPoint returns the current balance snapshot.
func (s *PointService) GetPoint(ctx context.Context, userID int64) (models.UserPoint, error) {
	if s.consistentReads {
		defer s.locks.RLock(userID)()
	}
	up, err := s.points.SelectByID(ctx, userID)
	if errors.Is(err, repo.ErrNotFound) {
		return models.UserPoint{}, ErrUserNotFound
	}
	return up, err
}

// GetHistories returns the user's history oldest first. A user without any
// entry gets ErrNoHistory rather than an empty list.
func (s *PointService) GetHistories(ctx context.Context, userID int64) ([]models.PointHistory, error) {
	if s.consistentReads {
		defer s.locks.RLock(userID)()
	}
	hs, err := s.histories.SelectAllByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(hs) == 0 {
		return nil, ErrNoHistory
	}
	return hs, nil
}

// apply must run under the user's lock. existed tells whether prev was read
// from the store or stands in for a user without a record.
func (s *PointService) apply(ctx context.Context, prev models.UserPoint, existed bool, total, amount int64, typ models.TransactionType) (models.UserPoint, error) {
	up, err := s.points.InsertOrUpdate(ctx, prev.ID, total)
	if err != nil {
		s.log.Error("point balance write failed", "user_id", prev.ID, "op", typ, "err", err)
		return models.UserPoint{}, fmt.Errorf("write balance: %w", err)
	}
	if _, err := s.histories.Insert(ctx, prev.ID, amount, typ, up.UpdateMillis); err != nil {
		s.log.Error("point history write failed, restoring balance", "user_id", prev.ID, "op", typ, "err", err)
		if rerr := s.restore(ctx, prev, existed); rerr != nil {
			s.log.Error("point balance restore failed", "user_id", prev.ID, "point", prev.Point, "err", rerr)
		}
		return models.UserPoint{}, fmt.Errorf("append history: %w", err)
	}
	metrics.PointOpsTotal.WithLabelValues(string(typ)).Inc()
	return up, nil
}

// restore puts the balance back to prev, or removes the record a first charge
// created.
func (s *PointService) restore(ctx context.Context, prev models.UserPoint, existed bool) error {
	if !existed {
		return s.points.Delete(ctx, prev.ID)
	}
	_, err := s.points.InsertOrUpdate(ctx, prev.ID, prev.Point)
	return err
}

func (s *PointService) reject(userID int64, typ models.TransactionType, amount int64, cause error, attrs ...any) error {
	reason := Reason(cause)
	metrics.PointRejections.WithLabelValues(string(typ), reason).Inc()
	s.log.Debug("point operation rejected",
		append([]any{"user_id", userID, "op", typ, "amount", amount, "reason", reason}, attrs...)...)

	if s.audit != nil && s.wp != nil {
		entry := models.AuditLog{
			ID:        uuid.NewString(),
			UserID:    userID,
			Action:    typ,
			Amount:    amount,
			Reason:    reason,
			Details:   details(attrs),
			CreatedAt: time.Now(),
		}
		queued := s.wp.Submit(func() {
			if err := s.audit.Create(context.Background(), entry); err != nil {
				s.log.Error("audit write failed", "user_id", userID, "err", err)
			}
		})
		if !queued {
			s.log.Warn("audit entry dropped", "user_id", userID, "op", typ, "reason", reason)
		}
	}
	return cause
}

func (s *PointService) lockUser(userID int64) func() {
	unlock := s.locks.Lock(userID)
	metrics.LocksInUse.Set(float64(s.locks.Len()))
	return func() {
		unlock()
		metrics.LocksInUse.Set(float64(s.locks.Len()))
	}
}

func observe(typ models.TransactionType) func() {
	start := time.Now()
	return func() {
		metrics.PointOpDuration.WithLabelValues(string(typ)).Observe(time.Since(start).Seconds())
	}
}

func details(kv []any) map[string]any {
	if len(kv) == 0 {
		return nil
	}
	m := make(map[string]any, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		if k, ok := kv[i].(string); ok {
			m[k] = kv[i+1]
		}
	}
	return m
}
