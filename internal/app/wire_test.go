package app_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"hrtrack/internal/app"
	"hrtrack/internal/devbackend"
	"hrtrack/internal/domain"
	"hrtrack/internal/state"
)

func startBackend(t *testing.T) string {
	t.Helper()
	store := devbackend.NewStore()
	devbackend.Seed(store)
	hs := httptest.NewServer(devbackend.New(store, nil).Handler())
	t.Cleanup(hs.Close)
	return hs.URL
}

func TestWire_LoginThenRestore(t *testing.T) {
	url := startBackend(t)
	home := t.TempDir()
	cfg := app.Config{APIURL: url, Home: home, Passphrase: "correct horse"}

	w, err := app.NewWire(cfg, nil)
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}
	if _, err := w.Restore(); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("want ErrNoSession before login, got %v", err)
	}
	sess, err := w.Auth.Login(context.Background(), cfg.Passphrase, domain.Credentials{
		Email: devbackend.DemoEmail, Password: devbackend.DemoPassword,
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	// A fresh process finds the backend URL in the profile and the token in
	// the sealed session.
	w2, err := app.NewWire(app.Config{Home: home, Passphrase: cfg.Passphrase}, nil)
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}
	if w2.Config.APIURL != url {
		t.Fatalf("want API URL from profile %q, got %q", url, w2.Config.APIURL)
	}
	restored, err := w2.Restore()
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if restored.Token != sess.Token || w2.Client.Token() != sess.Token {
		t.Fatal("restored token does not match the login")
	}

	me, err := w2.Staff.Me(context.Background())
	if err != nil {
		t.Fatalf("Me: %v", err)
	}
	if me.Email != devbackend.DemoEmail {
		t.Fatalf("unexpected staff %+v", me)
	}
}

func TestApp_BuildsScreens(t *testing.T) {
	url := startBackend(t)
	cfg := app.Config{APIURL: url, Home: t.TempDir(), Passphrase: "p", PageSize: 2}
	w, err := app.NewWire(cfg, nil)
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}
	if _, err := w.Auth.Login(context.Background(), "p", domain.Credentials{
		Email: devbackend.DemoEmail, Password: devbackend.DemoPassword,
	}); err != nil {
		t.Fatalf("Login: %v", err)
	}

	scope := state.NewScope(context.Background())
	defer scope.Close()
	search := app.New(w).CandidateSearch(scope)
	if err := search.Search(context.Background(), "", nil); err != nil {
		t.Fatalf("Search: %v", err)
	}
	if got := len(search.State().Value.Items); got != 2 {
		t.Fatalf("want configured page size 2, got %d items", got)
	}
}

func TestWire_LoggedOutRequestFails(t *testing.T) {
	url := startBackend(t)
	w, err := app.NewWire(app.Config{APIURL: url, Home: t.TempDir()}, nil)
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}
	if _, err := w.Vacancies.Tags(context.Background()); !errors.Is(err, domain.ErrRequestFailed) {
		t.Fatalf("want ErrRequestFailed without a token, got %v", err)
	}
}

func TestWire_LogoutForgetsSession(t *testing.T) {
	url := startBackend(t)
	cfg := app.Config{APIURL: url, Home: t.TempDir(), Passphrase: "p"}
	w, err := app.NewWire(cfg, nil)
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}
	if _, err := w.Auth.Login(context.Background(), "p", domain.Credentials{
		Email: devbackend.DemoEmail, Password: devbackend.DemoPassword,
	}); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if err := w.Auth.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if w.Client.Token() != "" {
		t.Fatal("token still installed after logout")
	}
	if _, err := w.Restore(); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("want ErrNoSession after logout, got %v", err)
	}
}

func TestWire_RememberedPageSizeIsFallback(t *testing.T) {
	home := t.TempDir()
	w, err := app.NewWire(app.Config{APIURL: "http://127.0.0.1:1", Home: home}, nil)
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}
	if err := w.RememberPageSize(0); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("want ErrInvalidArgument for 0, got %v", err)
	}
	if err := w.RememberPageSize(7); err != nil {
		t.Fatalf("RememberPageSize: %v", err)
	}

	w2, err := app.NewWire(app.Config{Home: home}, nil)
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}
	if w2.Config.PageSize != 7 {
		t.Fatalf("want remembered page size 7, got %d", w2.Config.PageSize)
	}
	w3, err := app.NewWire(app.Config{Home: home, PageSize: 3}, nil)
	if err != nil {
		t.Fatalf("NewWire: %v", err)
	}
	if w3.Config.PageSize != 3 {
		t.Fatalf("configured page size must win, got %d", w3.Config.PageSize)
	}
}
