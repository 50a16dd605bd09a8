package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"inventory_api/internal/auth"
	"inventory_api/internal/domain"
	"inventory_api/internal/middleware"
)

// In-memory repository fakes. Each can be primed with a forced error to
// exercise the storage-failure paths.

type fakeUserRepo struct {
	nextID uint
	users  map[uint]*domain.User
	err    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*domain.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *domain.User) error {
	if f.err != nil {
		return f.err
	}
	f.nextID++
	u.ID = f.nextID
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uint) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

type fakeStoreRepo struct {
	nextID uint
	stores map[uint]*domain.Store
	err    error
}

func newFakeStoreRepo() *fakeStoreRepo {
	return &fakeStoreRepo{stores: map[uint]*domain.Store{}}
}

func (f *fakeStoreRepo) FindByName(_ context.Context, name string) (*domain.Store, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, s := range f.stores {
		if s.Name == name {
			cp := *s
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeStoreRepo) Save(_ context.Context, s *domain.Store) error {
	if f.err != nil {
		return f.err
	}
	if s.StoreID == 0 {
		f.nextID++
		s.StoreID = f.nextID
	}
	cp := *s
	f.stores[s.StoreID] = &cp
	return nil
}

func (f *fakeStoreRepo) Delete(_ context.Context, s *domain.Store) error {
	if f.err != nil {
		return f.err
	}
	delete(f.stores, s.StoreID)
	return nil
}

func (f *fakeStoreRepo) List(_ context.Context) ([]domain.Store, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.Store, 0, len(f.stores))
	for _, s := range f.stores {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StoreID < out[j].StoreID })
	return out, nil
}

type fakeItemRepo struct {
	nextID uint
	items  map[uint]*domain.Item
	err    error
}

func newFakeItemRepo() *fakeItemRepo {
	return &fakeItemRepo{items: map[uint]*domain.Item{}}
}

func (f *fakeItemRepo) FindByName(_ context.Context, name string) (*domain.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, i := range f.items {
		if i.Name == name {
			cp := *i
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeItemRepo) FindByStoreID(_ context.Context, storeID uint) ([]domain.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []domain.Item{}
	for _, i := range f.items {
		if i.StoreID == storeID {
			out = append(out, *i)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeItemRepo) Save(_ context.Context, i *domain.Item) error {
	if f.err != nil {
		return f.err
	}
	if i.ID == 0 {
		f.nextID++
		i.ID = f.nextID
	}
	cp := *i
	f.items[i.ID] = &cp
	return nil
}

func (f *fakeItemRepo) Delete(_ context.Context, i *domain.Item) error {
	if f.err != nil {
		return f.err
	}
	delete(f.items, i.ID)
	return nil
}

func (f *fakeItemRepo) List(_ context.Context) ([]domain.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]domain.Item, 0, len(f.items))
	for _, i := range f.items {
		out = append(out, *i)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// testEnv bundles the fakes with a router wired the same way as cmd/server.
type testEnv struct {
	users   *fakeUserRepo
	stores  *fakeStoreRepo
	items   *fakeItemRepo
	authSvc *auth.Service
	router  *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		users:  newFakeUserRepo(),
		stores: newFakeStoreRepo(),
		items:  newFakeItemRepo(),
	}
	env.authSvc = auth.NewService(env.users, "test-secret", time.Hour)

	r := gin.New()
	r.POST("/register", RegisterHandler(env.users))
	r.POST("/auth", LoginHandler(env.authSvc))
	r.GET("/item/:name", middleware.JWTAuthMiddleware(env.authSvc), GetItemHandler(env.items))
	r.POST("/item/:name", CreateItemHandler(env.items, nil))
	r.PUT("/item/:name", PutItemHandler(env.items, nil))
	r.DELETE("/item/:name", DeleteItemHandler(env.items, nil))
	r.GET("/items", ListItemsHandler(env.items, nil))
	r.GET("/store/:name", GetStoreHandler(env.stores, env.items))
	r.POST("/store/:name", CreateStoreHandler(env.stores, nil))
	r.DELETE("/store/:name", DeleteStoreHandler(env.stores, nil))
	r.GET("/stores", ListStoresHandler(env.stores, env.items, nil))
	env.router = r
	return env
}

// do performs a request against the test router. A non-empty token is sent as
// a bearer credential.
func (e *testEnv) do(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// token registers the user when needed and returns a valid access token.
func (e *testEnv) token(t *testing.T, username, password string) string {
	t.Helper()
	if u, _ := e.users.FindByUsername(context.Background(), username); u == nil {
		w := e.do(http.MethodPost, "/register", `{"username":"`+username+`","password":"`+password+`"}`, "")
		if w.Code != http.StatusCreated {
			t.Fatalf("register %s: status %d body %s", username, w.Code, w.Body.String())
		}
	}
	u, err := e.authSvc.Authenticate(context.Background(), username, password)
	if err != nil || u == nil {
		t.Fatalf("authenticate %s: %v", username, err)
	}
	tok, err := e.authSvc.IssueToken(u)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return tok
}
