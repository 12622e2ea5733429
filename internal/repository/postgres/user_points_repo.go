package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/baharkarakas/points-backend/internal/models"
	repo "github.com/baharkarakas/points-backend/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type userPointsRepo struct{ pool *pgxpool.Pool }

func (r *userPointsRepo) SelectByID(ctx context.Context, id int64) (models.UserPoint, error) {
	var up models.UserPoint
	err := r.pool.QueryRow(ctx,
		`SELECT id, point, update_millis
		   FROM user_points
		  WHERE id=$1`,
		id,
	).Scan(&up.ID, &up.Point, &up.UpdateMillis)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.UserPoint{}, repo.ErrNotFound
	}
	if err != nil {
		return models.UserPoint{}, fmt.Errorf("select user point %d: %w", id, err)
	}
	return up, nil
}

func (r *userPointsRepo) InsertOrUpdate(ctx context.Context, id, point int64) (models.UserPoint, error) {
	var up models.UserPoint
	err := r.pool.QueryRow(ctx,
		`INSERT INTO user_points(id, point, update_millis)
		 VALUES($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE
		    SET point = EXCLUDED.point,
		        update_millis = EXCLUDED.update_millis
		 RETURNING id, point, update_millis`,
		id, point, time.Now().UnixMilli(),
	).Scan(&up.ID, &up.Point, &up.UpdateMillis)
	if err != nil {
		return models.UserPoint{}, fmt.Errorf("upsert user point %d: %w", id, err)
	}
	return up, nil
}

func (r *userPointsRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM user_points WHERE id=$1`, id); err != nil {
		return fmt.Errorf("delete user point %d: %w", id, err)
	}
	return nil
}
