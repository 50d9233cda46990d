package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/lamare/creator-studio/internal/core/domain"
	"github.com/lamare/creator-studio/internal/core/ports"
	"github.com/lamare/creator-studio/internal/core/service"
)

// fakeKV is an in-memory ports.KVStore.
type fakeKV struct {
	data map[string]string
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string]string{}}
}

func (f *fakeKV) Get(_ context.Context, key string) (string, error) {
	v, ok := f.data[key]
	if !ok {
		return "", ports.ErrKeyNotFound
	}
	return v, nil
}

func (f *fakeKV) Set(_ context.Context, key, value string) error {
	f.data[key] = value
	return nil
}

func (f *fakeKV) Delete(_ context.Context, key string) error {
	delete(f.data, key)
	return nil
}

// fakeCodes is an in-memory ports.CodeStore recording issued codes.
type fakeCodes struct {
	codes map[string]string
}

func newFakeCodes() *fakeCodes {
	return &fakeCodes{codes: map[string]string{}}
}

func (f *fakeCodes) Put(_ context.Context, email, code string) error {
	f.codes[email] = code
	return nil
}

func (f *fakeCodes) Match(_ context.Context, email, code string) (bool, error) {
	return f.codes[email] == code, nil
}

func (f *fakeCodes) Delete(_ context.Context, email string) error {
	delete(f.codes, email)
	return nil
}

// stubGenerator returns a fixed text.
type stubGenerator struct {
	text string
	err  error
}

func (s *stubGenerator) Generate(context.Context, domain.GenerationKind, string, string) (string, error) {
	return s.text, s.err
}

// stubQueue records enqueued jobs without processing them.
type stubQueue struct {
	jobs []service.GenerationJob
}

func (s *stubQueue) Enqueue(job service.GenerationJob) {
	s.jobs = append(s.jobs, job)
}

// stubProducts is an in-memory ports.ProductRepository.
type stubProducts struct {
	products []domain.Product
}

func (s *stubProducts) List(_ context.Context, category string) ([]domain.Product, error) {
	if category == "" || category == "All" {
		return s.products, nil
	}
	out := []domain.Product{}
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *stubProducts) FindByID(_ context.Context, id string) (*domain.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (s *stubProducts) Count(context.Context) (int64, error) {
	return int64(len(s.products)), nil
}

func (s *stubProducts) InsertMany(_ context.Context, products []domain.Product) error {
	s.products = append(s.products, products...)
	return nil
}

// stubCapture simulates the camera permission prompt.
type stubCapture struct {
	denied bool
}

type nopStream struct{}

func (nopStream) Close() error { return nil }

func (s *stubCapture) Acquire(context.Context) (ports.MediaStream, error) {
	if s.denied {
		return nil, domain.ErrPermissionDenied
	}
	return nopStream{}, nil
}

// testEnv wires the full service graph over in-memory collaborators.
type testEnv struct {
	echo      *echo.Echo
	sessions  *service.SessionManager
	nav       *service.Navigator
	tasks     *service.TaskStore
	workspace *service.Workspace
	studio    *service.StudioService
	accounts  *service.AccountService
	catalog   *service.CatalogService
	queue     *stubQueue
	kv        *fakeKV
	codes     *fakeCodes
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	log := zerolog.New(io.Discard)
	e := echo.New()
	e.Validator = NewValidator()

	kv := newFakeKV()
	codes := newFakeCodes()
	sessions := service.NewSessionManager(kv, codes, "test-secret", log)
	nav := service.NewNavigator(sessions, log)

	return &testEnv{
		echo:      e,
		sessions:  sessions,
		nav:       nav,
		tasks:     service.NewTaskStore(kv, log),
		workspace: service.NewWorkspace(log),
		studio:    service.NewStudioService(&stubGenerator{text: "generated"}, log),
		accounts:  service.NewAccountService(&stubCapture{}, log),
		catalog:   service.NewCatalogService(&stubProducts{products: domain.SampleProducts()}, log),
		queue:     &stubQueue{},
		kv:        kv,
		codes:     codes,
	}
}

// login authenticates the demo identity so authenticated views open.
func (env *testEnv) login(t *testing.T) {
	t.Helper()
	if err := env.nav.DemoLogin(context.Background()); err != nil {
		t.Fatalf("demo login: %v", err)
	}
}

// request builds an echo context carrying a JSON body.
func (env *testEnv) request(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return env.echo.NewContext(req, rec), rec
}
