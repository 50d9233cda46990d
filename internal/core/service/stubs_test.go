package service

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/rs/zerolog"

	"github.com/lamare/creator-studio/internal/core/domain"
	"github.com/lamare/creator-studio/internal/core/ports"
)

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

// fakeKV is an in-memory KVStore.
type fakeKV struct {
	mu   sync.Mutex
	data map[string]string
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: make(map[string]string)}
}

func (f *fakeKV) Get(_ context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	v, ok := f.data[key]
	if !ok {
		return "", ports.ErrKeyNotFound
	}
	return v, nil
}

func (f *fakeKV) Set(_ context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
	return nil
}

func (f *fakeKV) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, key)
	return nil
}

// fakeCodes is an in-memory CodeStore.
type fakeCodes struct {
	mu    sync.Mutex
	codes map[string]string
}

func newFakeCodes() *fakeCodes {
	return &fakeCodes{codes: make(map[string]string)}
}

func (f *fakeCodes) Put(_ context.Context, email, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.codes[email] = code
	return nil
}

func (f *fakeCodes) Match(_ context.Context, email, code string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored, ok := f.codes[email]
	return ok && stored == code, nil
}

func (f *fakeCodes) Delete(_ context.Context, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.codes, email)
	return nil
}

func (f *fakeCodes) issued(email string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.codes[email]
}

// stubGenerator returns a fixed text or error.
type stubGenerator struct {
	mu    sync.Mutex
	text  string
	err   error
	calls int
	gate  chan struct{} // when non-nil, Generate blocks until closed
}

func (g *stubGenerator) Generate(_ context.Context, kind domain.GenerationKind, subject, topic string) (string, error) {
	if g.gate != nil {
		<-g.gate
	}
	g.mu.Lock()
	g.calls++
	g.mu.Unlock()
	if g.err != nil {
		return "", g.err
	}
	return g.text, nil
}

// stubCapture simulates the camera collaborator.
type stubCapture struct {
	denied bool
}

type nopStream struct{}

func (nopStream) Close() error { return nil }

func (c *stubCapture) Acquire(_ context.Context) (ports.MediaStream, error) {
	if c.denied {
		return nil, domain.ErrPermissionDenied
	}
	return nopStream{}, nil
}

// stubProducts is an in-memory ProductRepository.
type stubProducts struct {
	products []domain.Product
	err      error
}

func (r *stubProducts) List(_ context.Context, category string) ([]domain.Product, error) {
	if r.err != nil {
		return nil, r.err
	}
	if category == "" || category == "All" {
		return r.products, nil
	}
	var out []domain.Product
	for _, p := range r.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *stubProducts) FindByID(_ context.Context, id string) (*domain.Product, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, p := range r.products {
		if p.ID == id {
			found := p
			return &found, nil
		}
	}
	return nil, domain.ErrProductNotFound
}

func (r *stubProducts) Count(_ context.Context) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	return int64(len(r.products)), nil
}

func (r *stubProducts) InsertMany(_ context.Context, products []domain.Product) error {
	if r.err != nil {
		return r.err
	}
	r.products = append(r.products, products...)
	return nil
}

var errStoreDown = errors.New("store down")
