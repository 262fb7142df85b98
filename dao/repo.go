package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// queryTimeout 所有存储调用的统一超时上限
const queryTimeout = 3 * time.Second

type Repo[T any] struct {
	Db *gorm.DB
}

func NewRepo[T any](db *gorm.DB) Repo[T] {
	return Repo[T]{Db: db}
}

// opCtx 为单次存储调用套上超时
func (r Repo[T]) opCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, queryTimeout)
}

func (r Repo[T]) Create(ctx context.Context, item *T) error {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()
	return r.Db.WithContext(ctx).Create(item).Error
}

func (r Repo[T]) FindById(ctx context.Context, id int64) (*T, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()
	var item T
	if err := r.Db.WithContext(ctx).First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r Repo[T]) FindByWhere(ctx context.Context, where string, args ...any) (*T, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()
	var item T
	if err := r.Db.WithContext(ctx).Where(where, args...).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r Repo[T]) IsExist(ctx context.Context, where string, args ...any) (bool, error) {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()
	var count int64
	err := r.Db.WithContext(ctx).Model(new(T)).Where(where, args...).Limit(1).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Txx 在单个事务里执行 fn，整体提交或整体回滚
func (r Repo[T]) Txx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	ctx, cancel := r.opCtx(ctx)
	defer cancel()
	return r.Db.WithContext(ctx).Transaction(fn)
}

// IsNotFound 记录不存在
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
