package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/cargopanel/dashboard-gateway/internal/core/domain"
	"github.com/cargopanel/dashboard-gateway/internal/core/session"
	"github.com/cargopanel/dashboard-gateway/internal/fetch"
)

// BackendAuthService logs the gateway itself in to the cargo backend and
// stores the resulting session. It is invoked at startup and again, through
// the navigator's debounced hook, whenever a 401 clears the session.
type BackendAuthService struct {
	client   fetch.Doer
	store    *session.Store
	username string
	password string
	log      zerolog.Logger
}

func NewBackendAuthService(client fetch.Doer, store *session.Store, username, password string, log zerolog.Logger) *BackendAuthService {
	return &BackendAuthService{
		client:   client,
		store:    store,
		username: username,
		password: password,
		log:      log,
	}
}

type backendLoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type backendLoginResponse struct {
	Token string `json:"token"`
	Role  string `json:"role"`
}

// Login authenticates against the backend and replaces the stored session.
func (s *BackendAuthService) Login(ctx context.Context) error {
	payload, err := json.Marshal(backendLoginRequest{Username: s.username, Password: s.password})
	if err != nil {
		return fmt.Errorf("backend login: %w", err)
	}

	resp, err := s.client.Do(ctx, http.MethodPost, "/auth/login", nil, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("backend login: %w", err)
	}

	var body backendLoginResponse
	if err := json.Unmarshal(resp.Body, &body); err != nil {
		return fmt.Errorf("backend login: decode response: %w", err)
	}
	if body.Token == "" {
		return fmt.Errorf("backend login: %w", domain.ErrInvalidCredentials)
	}

	role, err := domain.ParseRole(body.Role)
	if err != nil {
		// Backends predating the role claim return admin-equivalent tokens.
		role = domain.RoleAdmin
	}

	s.store.Login(body.Token, role)
	s.log.Info().Str("role", string(role)).Msg("backend session established")
	return nil
}
