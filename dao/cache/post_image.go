package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// 原图读多写一，用 redis 挡一层
const imageTTL = 10 * time.Minute

type PostImageCache struct {
	redis *redis.Client
}

func NewPostImageCache(rds *redis.Client) *PostImageCache {
	return &PostImageCache{redis: rds}
}

func (c *PostImageCache) key(postID int64) string {
	return fmt.Sprintf("post:image:%d", postID)
}

// Get 命中返回二进制与 Content-Type，未命中返回 nil
func (c *PostImageCache) Get(ctx context.Context, postID int64) ([]byte, string, error) {
	vals, err := c.redis.HMGet(ctx, c.key(postID), "data", "ctype").Result()
	if err != nil {
		return nil, "", err
	}
	data, ok := vals[0].(string)
	if !ok || data == "" {
		return nil, "", nil
	}
	ctype, _ := vals[1].(string)
	return []byte(data), ctype, nil
}

func (c *PostImageCache) Set(ctx context.Context, postID int64, data []byte, contentType string) error {
	key := c.key(postID)
	_, err := c.redis.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, "data", data, "ctype", contentType)
		pipe.Expire(ctx, key, imageTTL)
		return nil
	})
	return err
}

// Del 作品删除或下架后清缓存
func (c *PostImageCache) Del(ctx context.Context, postID int64) error {
	return c.redis.Del(ctx, c.key(postID)).Err()
}
