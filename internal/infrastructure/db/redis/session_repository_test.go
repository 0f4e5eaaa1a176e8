package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/cargopanel/dashboard-gateway/internal/core/domain"
)

func newTestRepo(t *testing.T) (*SessionRepository, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSessionRepository(client), srv
}

func TestSessionRepository_SaveLoadRoundTrip(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	in := domain.Session{Token: "tok123", Role: domain.RoleWorker, Lang: "ru"}
	if err := repo.Save(ctx, in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out != in {
		t.Fatalf("round trip mismatch: %+v != %+v", out, in)
	}
}

func TestSessionRepository_LoadEmpty(t *testing.T) {
	repo, _ := newTestRepo(t)

	out, err := repo.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out.IsAuthenticated() || out.Token != "" || out.Role != "" {
		t.Fatalf("empty storage must load as logged out: %+v", out)
	}
}

func TestSessionRepository_ClearKeepsLang(t *testing.T) {
	repo, srv := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Save(ctx, domain.Session{Token: "tok", Role: domain.RoleAdmin, Lang: "en"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := repo.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}

	if srv.Exists(keyToken) || srv.Exists(keyRole) {
		t.Fatalf("credentials must be deleted")
	}
	out, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out.IsAuthenticated() {
		t.Fatalf("cleared session must be logged out: %+v", out)
	}
	if out.Lang != "en" {
		t.Fatalf("lang must survive clear, got %q", out.Lang)
	}
}

func TestSessionRepository_LoadPropagatesStorageErrors(t *testing.T) {
	repo, srv := newTestRepo(t)
	srv.Close()

	if _, err := repo.Load(context.Background()); err == nil {
		t.Fatalf("expected error when storage is unavailable")
	}
}
