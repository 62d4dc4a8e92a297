package services

import (
	"context"
	"errors"
	"fmt"

	"findly-api/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// table holds the statements every repository runs the same way.
type table[T any] struct {
	db     *gorm.DB
	entity string
	pk     string
}

func newTable[T any](db *gorm.DB, entity, pk string) table[T] {
	return table[T]{db: db, entity: entity, pk: pk}
}

func (t table[T]) list(ctx context.Context) ([]T, error) {
	rows := make([]T, 0)
	if err := t.db.WithContext(ctx).Order(t.pk).Find(&rows).Error; err != nil {
		logger.L().Error("list failed", zap.String("entity", t.entity), zap.Error(err))
		return nil, fmt.Errorf("%w: listing %s", ErrUnavailable, t.entity)
	}
	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}

func (t table[T]) get(ctx context.Context, id int64) (*T, error) {
	var row T
	err := t.db.WithContext(ctx).Where(t.pk+" = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Entity: t.entity, ID: id}
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (t table[T]) insert(ctx context.Context, row *T) error {
	return t.db.WithContext(ctx).Create(row).Error
}

// update overwrites the given columns. The count is of matched rows, so an
// unchanged row and a missing row cannot be told apart beyond that.
func (t table[T]) update(ctx context.Context, id int64, columns map[string]any) (bool, error) {
	res := t.db.WithContext(ctx).Model(new(T)).Where(t.pk+" = ?", id).Updates(columns)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (t table[T]) remove(ctx context.Context, id int64) (bool, error) {
	res := t.db.WithContext(ctx).Where(t.pk+" = ?", id).Delete(new(T))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
