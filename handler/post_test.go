package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"SketchShare/config"
	"SketchShare/models"
	"SketchShare/pkg/jwt"
	"SketchShare/pkg/response"
	"SketchShare/types"

	"github.com/gin-gonic/gin"
)

const testSecret = "handler-test-secret"

// stubServices 按需填充返回值，未设置的调用返回零值
type stubServices struct {
	listRep   *types.ListPostsResponse
	detailRep *types.PostDetail
	imageRep  *types.PostImage
	toggleRep *types.ToggleLikeResponse
	createRep *types.PostDetail
	err       error

	deletedID     int64
	deletedIdent  types.Identity
	deletedReason string
}

func (s *stubServices) ListPosts(ctx context.Context, req *types.ListPostsRequest) (*types.ListPostsResponse, error) {
	return s.listRep, s.err
}

func (s *stubServices) GetPost(ctx context.Context, id int64) (*types.PostDetail, error) {
	return s.detailRep, s.err
}

func (s *stubServices) GetPostImage(ctx context.Context, id int64) (*types.PostImage, error) {
	return s.imageRep, s.err
}

func (s *stubServices) CreatePost(ctx context.Context, userID int64, req *types.CreatePostRequest) (*types.PostDetail, error) {
	return s.createRep, s.err
}

func (s *stubServices) DeletePost(ctx context.Context, postID int64, ident types.Identity, reason string) error {
	s.deletedID = postID
	s.deletedIdent = ident
	s.deletedReason = reason
	return s.err
}

func (s *stubServices) ToggleLike(ctx context.Context, postID, userID int64) (*types.ToggleLikeResponse, error) {
	return s.toggleRep, s.err
}

func newTestRouter(s *stubServices) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := &Post{
		FeedService: s,
		PostService: s,
		LikeService: s,
		Config:      &config.Config{Jwt: &config.Jwt{Secret: testSecret}},
	}
	h.RegisterRouter(r)
	return r
}

func accessToken(t *testing.T, userID int64, roleID int) string {
	t.Helper()
	token, err := jwt.GenerateToken([]byte(testSecret), userID, roleID, "access", time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

func doRequest(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestListPosts_TotalHeaders(t *testing.T) {
	s := &stubServices{listRep: &types.ListPostsResponse{
		Posts:      []*types.PostSummary{{ID: 1, Title: "a"}},
		TotalCount: 42,
		TotalPages: 3,
		Page:       1,
		PageSize:   20,
	}}
	r := newTestRouter(s)

	w := doRequest(r, httptest.NewRequest(http.MethodGet, "/v1/posts?page=1&pageSize=20", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if w.Header().Get("X-Total-Count") != "42" || w.Header().Get("X-Total-Pages") != "3" {
		t.Fatalf("unexpected total headers: %q %q",
			w.Header().Get("X-Total-Count"), w.Header().Get("X-Total-Pages"))
	}

	var rep response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &rep); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if rep.Code != 0 {
		t.Fatalf("expected code 0, got %d", rep.Code)
	}
}

func TestListPosts_BadQuery(t *testing.T) {
	r := newTestRouter(&stubServices{})

	w := doRequest(r, httptest.NewRequest(http.MethodGet, "/v1/posts?page=-1", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetPost_NotFoundMapped(t *testing.T) {
	s := &stubServices{err: response.NewNotFound("作品不存在")}
	r := newTestRouter(s)

	w := doRequest(r, httptest.NewRequest(http.MethodGet, "/v1/posts/42", nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	var rep response.Response
	if err := json.Unmarshal(w.Body.Bytes(), &rep); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if rep.Code != 404 || rep.Msg != "作品不存在" {
		t.Fatalf("unexpected body: %+v", rep)
	}
}

func TestGetPost_BadID(t *testing.T) {
	r := newTestRouter(&stubServices{})

	w := doRequest(r, httptest.NewRequest(http.MethodGet, "/v1/posts/abc", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetPostImage_RawBytes(t *testing.T) {
	s := &stubServices{imageRep: &types.PostImage{ContentType: "image/png", Data: []byte("png-bytes")}}
	r := newTestRouter(s)

	w := doRequest(r, httptest.NewRequest(http.MethodGet, "/v1/posts/1/image", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Fatalf("expected image/png, got %q", ct)
	}
	if w.Body.String() != "png-bytes" {
		t.Fatalf("unexpected body: %q", w.Body.String())
	}
}

func TestCreatePost_RequiresAuth(t *testing.T) {
	r := newTestRouter(&stubServices{})

	w := doRequest(r, httptest.NewRequest(http.MethodPost, "/v1/posts", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/posts", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	if w := doRequest(r, req); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with bad token, got %d", w.Code)
	}
}

func TestCreatePost_Multipart(t *testing.T) {
	s := &stubServices{createRep: &types.PostDetail{PostSummary: types.PostSummary{ID: 9, Title: "落日"}}}
	r := newTestRouter(s)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", "sunset.png")
	if err != nil {
		t.Fatal(err)
	}
	fw.Write([]byte("fake-png"))
	mw.WriteField("title", "落日")
	mw.WriteField("canvas_width", "800")
	mw.WriteField("canvas_height", "600")
	mw.WriteField("stroke_count", "12")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/v1/posts", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+accessToken(t, 7, models.RoleUser))

	w := doRequest(r, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreatePost_MissingFile(t *testing.T) {
	r := newTestRouter(&stubServices{})

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("title", "无图")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/v1/posts", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+accessToken(t, 7, models.RoleUser))

	if w := doRequest(r, req); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestToggleLike(t *testing.T) {
	s := &stubServices{toggleRep: &types.ToggleLikeResponse{Liked: true, LikeCount: 5}}
	r := newTestRouter(s)

	req := httptest.NewRequest(http.MethodPut, "/v1/posts/1/like", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken(t, 7, models.RoleUser))

	w := doRequest(r, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var rep struct {
		Data types.ToggleLikeResponse `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &rep); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !rep.Data.Liked || rep.Data.LikeCount != 5 {
		t.Fatalf("unexpected toggle response: %+v", rep.Data)
	}
}

func TestDeletePost_NoContent(t *testing.T) {
	s := &stubServices{}
	r := newTestRouter(s)

	body := bytes.NewBufferString(`{"reason":"违规"}`)
	req := httptest.NewRequest(http.MethodDelete, "/v1/posts/7", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+accessToken(t, 1, models.RoleAdmin))

	w := doRequest(r, req)
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d: %s", w.Code, w.Body.String())
	}
	if s.deletedID != 7 || s.deletedReason != "违规" {
		t.Fatalf("unexpected delete args: id=%d reason=%q", s.deletedID, s.deletedReason)
	}
	if s.deletedIdent.RoleID != models.RoleAdmin || s.deletedIdent.UserID != 1 {
		t.Fatalf("unexpected identity: %+v", s.deletedIdent)
	}
}

func TestDeletePost_ForbiddenMapped(t *testing.T) {
	s := &stubServices{err: response.NewForbidden("无权删除该作品")}
	r := newTestRouter(s)

	req := httptest.NewRequest(http.MethodDelete, "/v1/posts/7", nil)
	req.Header.Set("Authorization", "Bearer "+accessToken(t, 8, models.RoleUser))

	if w := doRequest(r, req); w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}
