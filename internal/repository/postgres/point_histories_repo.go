package postgres

import (
	"context"
	"fmt"

	"github.com/baharkarakas/points-backend/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type pointHistoriesRepo struct{ pool *pgxpool.Pool }

func (r *pointHistoriesRepo) Insert(ctx context.Context, userID, amount int64, typ models.TransactionType, timeMillis int64) (models.PointHistory, error) {
	row := r.pool.QueryRow(ctx,
		`INSERT INTO point_histories(user_id, amount, type, time_millis)
		 VALUES($1, $2, $3, $4)
		 RETURNING id, user_id, amount, type, time_millis`,
		userID, amount, string(typ), timeMillis,
	)
	h, err := scanHistory(row)
	if err != nil {
		return models.PointHistory{}, fmt.Errorf("insert point history for %d: %w", userID, err)
	}
	return h, nil
}

func (r *pointHistoriesRepo) SelectAllByUserID(ctx context.Context, userID int64) ([]models.PointHistory, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, amount, type, time_millis
		   FROM point_histories
		  WHERE user_id=$1
		  ORDER BY id ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("select point histories for %d: %w", userID, err)
	}
	defer rows.Close()

	out := []models.PointHistory{}
	for rows.Next() {
		h, err := scanHistory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func scanHistory(row pgx.Row) (models.PointHistory, error) {
	var (
		h   models.PointHistory
		typ string
	)
	if err := row.Scan(&h.ID, &h.UserID, &h.Amount, &typ, &h.TimeMillis); err != nil {
		return models.PointHistory{}, err
	}
	t, err := models.ParseTransactionType(typ)
	if err != nil {
		return models.PointHistory{}, err
	}
	h.Type = t
	return h, nil
}
