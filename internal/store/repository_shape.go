package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/zone-keeper/internal/logger"
	"github.com/MKhiriev/zone-keeper/models"
)

type shapeRepository struct {
	*DB
	logger *logger.Logger
}

func NewShapeRepository(db *DB, logger *logger.Logger) ShapeRepository {
	return &shapeRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *shapeRepository) GetAll(ctx context.Context) ([]models.Shape, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAllShapesQuery()
	if err != nil {
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "shapeRepository.GetAll").
			Msg("failed to execute query for getting all shapes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var shapes []models.Shape
	for rows.Next() {
		var row shapeRow
		if scanErr := rows.Scan(row.scanTargets()...); scanErr != nil {
			log.Err(scanErr).
				Str("func", "shapeRepository.GetAll").
				Msg("failed to scan shape row")
			return nil, fmt.Errorf("failed to scan shape row: %w", scanErr)
		}

		shape, convErr := row.toShape()
		if convErr != nil {
			return nil, fmt.Errorf("failed to decode shape row (id=%s): %w", row.ID, convErr)
		}
		shapes = append(shapes, shape)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return shapes, nil
}

func (r *shapeRepository) Get(ctx context.Context, id string) (models.Shape, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectShapeQuery(id)
	if err != nil {
		return models.Shape{}, err
	}

	var row shapeRow
	scanErr := r.DB.QueryRowContext(ctx, query, args...).Scan(row.scanTargets()...)
	if errors.Is(scanErr, sql.ErrNoRows) {
		return models.Shape{}, fmt.Errorf("%w: id=%s", ErrShapeNotFound, id)
	}
	if scanErr != nil {
		log.Err(scanErr).
			Str("func", "shapeRepository.Get").
			Str("id", id).
			Msg("failed to scan shape row")
		return models.Shape{}, fmt.Errorf("failed to scan shape row: %w", scanErr)
	}

	return row.toShape()
}

// SaveAll replaces the whole local collection with the given set. It runs
// inside a transaction so a failed write never leaves the UI a partial
// dataset.
func (r *shapeRepository) SaveAll(ctx context.Context, shapes []models.Shape) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin save all: %w", ErrExecutingQuery, err)
	}
	defer tx.Rollback()

	query, args, err := buildDeleteAllShapesQuery()
	if err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "shapeRepository.SaveAll").
			Msg("failed to clear shapes table")
		return fmt.Errorf("%w: clear shapes: %w", ErrExecutingQuery, err)
	}

	for i := range shapes {
		if err = upsertShapeTx(ctx, tx, shapes[i]); err != nil {
			log.Err(err).
				Str("func", "shapeRepository.SaveAll").
				Str("id", shapes[i].ID).
				Msg("failed to save shape")
			return err
		}
	}

	return tx.Commit()
}

func (r *shapeRepository) Add(ctx context.Context, shape models.Shape) error {
	return r.upsert(ctx, shape, "shapeRepository.Add")
}

func (r *shapeRepository) Update(ctx context.Context, shape models.Shape) error {
	return r.upsert(ctx, shape, "shapeRepository.Update")
}

func (r *shapeRepository) Remove(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteShapeQuery(id)
	if err != nil {
		return err
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "shapeRepository.Remove").
			Str("id", id).
			Msg("failed to delete shape")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return fmt.Errorf("%w: id=%s", ErrShapeNotFound, id)
	}

	return nil
}

func (r *shapeRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteExpiredShapesQuery(now)
	if err != nil {
		return 0, err
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "shapeRepository.DeleteExpired").
			Msg("failed to delete expired shapes")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, _ := res.RowsAffected()
	return affected, nil
}

func (r *shapeRepository) upsert(ctx context.Context, shape models.Shape, caller string) error {
	log := logger.FromContext(ctx)

	row, err := newShapeRow(shape)
	if err != nil {
		return fmt.Errorf("failed to encode shape (id=%s): %w", shape.ID, err)
	}

	query, args, err := buildUpsertShapeQuery(row)
	if err != nil {
		return err
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", caller).
			Str("id", shape.ID).
			Msg("failed to execute upsert for shape")
		return fmt.Errorf("failed to save shape (id=%s): %w", shape.ID, err)
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return fmt.Errorf("%w: id=%s", ErrShapeNotSaved, shape.ID)
	}

	return nil
}

func upsertShapeTx(ctx context.Context, tx *sql.Tx, shape models.Shape) error {
	row, err := newShapeRow(shape)
	if err != nil {
		return fmt.Errorf("failed to encode shape (id=%s): %w", shape.ID, err)
	}

	query, args, err := buildUpsertShapeQuery(row)
	if err != nil {
		return err
	}

	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("failed to save shape (id=%s): %w", shape.ID, err)
	}

	return nil
}
