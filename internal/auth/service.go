package auth

import (
	"errors"
	"io"
	"log/slog"
)

var (
	ErrMissingCredentials = errors.New("username and password are required")
)

// Service backs the login form. It is a placeholder: credentials are
// never checked against anything.
type Service struct {
	tokens *TokenIssuer
	logger *slog.Logger
}

func NewService(tokens *TokenIssuer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Service{tokens: tokens, logger: logger}
}

// LOGIN
func (s *Service) Login(username, password string) (*Session, error) {
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	token, expiresAt, err := s.tokens.GenerateToken(username)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user logged in", "username", username)

	return &Session{
		Username:  username,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
