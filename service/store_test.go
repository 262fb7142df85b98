package service

import (
	"context"
	"sort"
	"sync"

	"SketchShare/models"

	"gorm.io/gorm"
)

// fakeStore 内存版存储状态，语义对齐 dao 层合同，供 service 测试使用。
// 各接口由共享同一状态的视图类型实现。
type fakeStore struct {
	mu      sync.Mutex
	users   map[int64]*models.User
	posts   map[int64]*models.Post
	likes   map[[2]int64]*models.Like // key: post_id, user_id
	reports map[int64]*models.Report

	nextLikeID int64

	// 一次性错误注入，模拟唯一键冲突或存储超时
	toggleErrOnce error
	countErrOnce  error

	images map[int64]fakeImage
}

type fakeImage struct {
	data  []byte
	ctype string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:   make(map[int64]*models.User),
		posts:   make(map[int64]*models.Post),
		likes:   make(map[[2]int64]*models.Like),
		reports: make(map[int64]*models.Report),
		images:  make(map[int64]fakeImage),
	}
}

func (f *fakeStore) Users() UserStore     { return fakeUserStore{f} }
func (f *fakeStore) Posts() PostStore     { return fakePostStore{f} }
func (f *fakeStore) Likes() LikeStore     { return fakeLikeStore{f} }
func (f *fakeStore) Reports() ReportStore { return fakeReportStore{f} }
func (f *fakeStore) Images() ImageCache   { return fakeImageCache{f} }

func (f *fakeStore) addPost(post *models.Post) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *post
	f.posts[post.ID] = &cp
}

func (f *fakeStore) addUser(user *models.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *user
	f.users[user.ID] = &cp
}

func (f *fakeStore) addLike(postID, userID int64) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextLikeID++
	f.likes[[2]int64{postID, userID}] = &models.Like{ID: f.nextLikeID, PostID: postID, UserID: userID}
}

func (f *fakeStore) likeExists(postID, userID int64) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.likes[[2]int64{postID, userID}]
	return ok
}

func (f *fakeStore) post(id int64) *models.Post {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.posts[id]
}

func (f *fakeStore) report(id int64) *models.Report {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.reports[id]
}

// ---- UserStore ----

type fakeUserStore struct{ *fakeStore }

func (f fakeUserStore) Create(ctx context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f fakeUserStore) FindById(ctx context.Context, id int64) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (f fakeUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f fakeUserStore) IsEmailExist(ctx context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f fakeUserStore) FindByIDs(ctx context.Context, ids []int64) ([]*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	users := make([]*models.User, 0, len(ids))
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			cp := *u
			users = append(users, &cp)
		}
	}
	return users, nil
}

func (f fakeUserStore) UpdateAvatar(ctx context.Context, userID int64, data []byte, contentType string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	u.Avatar = data
	u.AvatarType = contentType
	return nil
}

// ---- PostStore ----

type fakePostStore struct{ *fakeStore }

func (f fakePostStore) Create(ctx context.Context, post *models.Post) error {
	f.addPost(post)
	return nil
}

func (f fakePostStore) FindById(ctx context.Context, id int64) (*models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.posts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (f fakePostStore) FindActive(ctx context.Context, id int64) (*models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.posts[id]
	if !ok || p.IsDeleted {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (f fakePostStore) List(ctx context.Context, order string, limit, offset int) ([]*models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	active := make([]*models.Post, 0, len(f.posts))
	for _, p := range f.posts {
		if !p.IsDeleted {
			cp := *p
			active = append(active, &cp)
		}
	}
	sort.SliceStable(active, func(i, j int) bool {
		a, b := active[i], active[j]
		switch order {
		case "created_at ASC":
			return a.CreatedAt.Before(b.CreatedAt)
		case "like_count DESC, created_at DESC":
			if a.LikeCount != b.LikeCount {
				return a.LikeCount > b.LikeCount
			}
			return a.CreatedAt.After(b.CreatedAt)
		case "view_count DESC, created_at DESC":
			if a.ViewCount != b.ViewCount {
				return a.ViewCount > b.ViewCount
			}
			return a.CreatedAt.After(b.CreatedAt)
		default: // created_at DESC
			return a.CreatedAt.After(b.CreatedAt)
		}
	})
	if offset >= len(active) {
		return []*models.Post{}, nil
	}
	end := offset + limit
	if end > len(active) {
		end = len(active)
	}
	return active[offset:end], nil
}

func (f fakePostStore) CountActive(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.countErrOnce != nil {
		err := f.countErrOnce
		f.countErrOnce = nil
		return 0, err
	}
	var count int64
	for _, p := range f.posts {
		if !p.IsDeleted {
			count++
		}
	}
	return count, nil
}

func (f fakePostStore) IncrViewCount(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.posts[id]; ok {
		p.ViewCount++
	}
	return nil
}

func (f fakePostStore) SoftDelete(ctx context.Context, id int64, reason string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.posts[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	p.IsDeleted = true
	p.DeleteReason = reason
	return nil
}

func (f fakePostStore) HardDelete(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for key := range f.likes {
		if key[0] == id {
			delete(f.likes, key)
		}
	}
	delete(f.posts, id)
	return nil
}

// ---- LikeStore ----

type fakeLikeStore struct{ *fakeStore }

func (f fakeLikeStore) Toggle(ctx context.Context, postID, userID int64) (bool, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.toggleErrOnce != nil {
		err := f.toggleErrOnce
		f.toggleErrOnce = nil
		return false, 0, err
	}

	post, ok := f.posts[postID]
	if !ok || post.IsDeleted {
		return false, 0, gorm.ErrRecordNotFound
	}

	key := [2]int64{postID, userID}
	if _, ok := f.likes[key]; ok {
		delete(f.likes, key)
		if post.LikeCount > 0 {
			post.LikeCount--
		}
		return false, post.LikeCount, nil
	}

	f.nextLikeID++
	f.likes[key] = &models.Like{ID: f.nextLikeID, PostID: postID, UserID: userID}
	post.LikeCount++
	return true, post.LikeCount, nil
}

// ---- ReportStore ----

type fakeReportStore struct{ *fakeStore }

func (f fakeReportStore) Create(ctx context.Context, report *models.Report) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *report
	f.reports[report.ID] = &cp
	return nil
}

func (f fakeReportStore) FindById(ctx context.Context, id int64) (*models.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.reports[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *r
	return &cp, nil
}

func (f fakeReportStore) ListByStatus(ctx context.Context, status string) ([]*models.Report, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	reports := make([]*models.Report, 0, len(f.reports))
	for _, r := range f.reports {
		if status == "" || r.Status == status {
			cp := *r
			reports = append(reports, &cp)
		}
	}
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].CreatedAt.After(reports[j].CreatedAt)
	})
	return reports, nil
}

func (f fakeReportStore) Review(ctx context.Context, id int64, status, notes string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.reports[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	r.Status = status
	r.AdminNotes = notes
	return nil
}

// ---- ImageCache ----

type fakeImageCache struct{ *fakeStore }

func (f fakeImageCache) Get(ctx context.Context, postID int64) ([]byte, string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	img, ok := f.images[postID]
	if !ok {
		return nil, "", nil
	}
	return img.data, img.ctype, nil
}

func (f fakeImageCache) Set(ctx context.Context, postID int64, data []byte, contentType string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.images[postID] = fakeImage{data: data, ctype: contentType}
	return nil
}

func (f fakeImageCache) Del(ctx context.Context, postID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.images, postID)
	return nil
}
