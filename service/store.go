package service

import (
	"context"
	"errors"

	"SketchShare/models"
	"SketchShare/pkg/log"
	"SketchShare/pkg/response"

	"go.uber.org/zap"
)

// 存储访问接口，由 dao 层实现，测试里用内存假实现替换

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindById(ctx context.Context, id int64) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	IsEmailExist(ctx context.Context, email string) (bool, error)
	FindByIDs(ctx context.Context, ids []int64) ([]*models.User, error)
	UpdateAvatar(ctx context.Context, userID int64, data []byte, contentType string) error
}

type PostStore interface {
	Create(ctx context.Context, post *models.Post) error
	FindById(ctx context.Context, id int64) (*models.Post, error)
	FindActive(ctx context.Context, id int64) (*models.Post, error)
	List(ctx context.Context, order string, limit, offset int) ([]*models.Post, error)
	CountActive(ctx context.Context) (int64, error)
	IncrViewCount(ctx context.Context, id int64) error
	SoftDelete(ctx context.Context, id int64, reason string) error
	HardDelete(ctx context.Context, id int64) error
}

type LikeStore interface {
	Toggle(ctx context.Context, postID, userID int64) (liked bool, likeCount int64, err error)
}

type ReportStore interface {
	Create(ctx context.Context, report *models.Report) error
	FindById(ctx context.Context, id int64) (*models.Report, error)
	ListByStatus(ctx context.Context, status string) ([]*models.Report, error)
	Review(ctx context.Context, id int64, status, notes string) error
}

type ImageCache interface {
	Get(ctx context.Context, postID int64) ([]byte, string, error)
	Set(ctx context.Context, postID int64, data []byte, contentType string) error
	Del(ctx context.Context, postID int64) error
}

// storeErr 存储层故障统一出口：超时翻译成 503，其余记日志后原样上抛
func storeErr(op string, entityID int64, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		log.L.Error("store call timed out",
			zap.String("op", op),
			zap.Int64("entity_id", entityID),
			zap.Error(err),
		)
		return response.NewStoreUnavailable()
	}
	log.L.Error("store call failed",
		zap.String("op", op),
		zap.Int64("entity_id", entityID),
		zap.Error(err),
	)
	return err
}
