package redis_repo

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/natheerjardien/cldvpoe/internal/constants"
	"github.com/redis/go-redis/v9"
)

type BlobRepoError error

var (
	ErrBlobNotFound BlobRepoError = errors.New("blob not found")
	ErrBadBlobURL   BlobRepoError = errors.New("cannot resolve blob name from url")
)

type IBlobRepository interface {
	// Upload 上傳blob, 回傳公開URL
	Upload(ctx context.Context, name, contentType string, content []byte) (string, error)

	// Download 取得blob內容與content type
	Download(ctx context.Context, name string) ([]byte, string, error)

	// Delete 刪除blob, 不存在也不報錯
	Delete(ctx context.Context, name string) error

	// DeleteByURL 從公開URL反解blob name再刪除
	DeleteByURL(ctx context.Context, blobURL string) error
}

/*	blob存放在redis hash
	結構:
	blob:product:{name}: {
		content: ...,
		content_type: image/png,
	}*/

type BlobRepo struct {
	blobCache *redis.Client
	baseURL   string
}

func NewBlobRepo(blobCache *redis.Client, baseURL string) *BlobRepo {
	return &BlobRepo{blobCache: blobCache, baseURL: strings.TrimRight(baseURL, "/")}
}

func generateBlobKey(name string) string {
	return fmt.Sprintf("blob:%s:%s", constants.BlobContainer, name)
}

func (s *BlobRepo) Upload(ctx context.Context, name, contentType string, content []byte) (string, error) {
	redisKey := generateBlobKey(name)
	err := s.blobCache.HSet(ctx, redisKey,
		"content", content,
		"content_type", contentType,
	).Err()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/images/%s", s.baseURL, name), nil
}

// 取得blob
// 錯誤:
//   - ErrBlobNotFound: blob不存在
//   - err: 其他錯誤
func (s *BlobRepo) Download(ctx context.Context, name string) ([]byte, string, error) {
	redisKey := generateBlobKey(name)
	values, err := s.blobCache.HGetAll(ctx, redisKey).Result()
	if err != nil {
		return nil, "", err
	}
	if len(values) == 0 {
		return nil, "", ErrBlobNotFound
	}
	return []byte(values["content"]), values["content_type"], nil
}

func (s *BlobRepo) Delete(ctx context.Context, name string) error {
	return s.blobCache.Del(ctx, generateBlobKey(name)).Err()
}

// blob name取URL最後一段path, URL結構改變這裡會跟著壞
func (s *BlobRepo) DeleteByURL(ctx context.Context, blobURL string) error {
	u, err := url.Parse(blobURL)
	if err != nil {
		return ErrBadBlobURL
	}
	segments := strings.Split(strings.TrimRight(u.Path, "/"), "/")
	name := segments[len(segments)-1]
	if name == "" {
		return ErrBadBlobURL
	}
	return s.Delete(ctx, name)
}

var _ IBlobRepository = (*BlobRepo)(nil)
