package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"hotel-reservation/internal/dto/request"
	"hotel-reservation/internal/dto/response"
	"hotel-reservation/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	Authenticate(ctx context.Context, req *request.AuthenticateRequest) (*response.TokenResponse, error)
}

type gatewayUser struct {
	passwordHash string
	roles        []string
}

type authService struct {
	users map[string]gatewayUser
	jwt   utils.JWTConfig
	log   *zap.Logger
}

// NewAuthService loads the gateway's in-memory users. Each entry has the form
// "username:password:ROLE[|ROLE...]"; roles are stored with the ROLE_ prefix.
func NewAuthService(gateway utils.GatewayConfig, jwt utils.JWTConfig, log *zap.Logger) (AuthService, error) {
	if jwt.Secret == "" {
		return nil, fmt.Errorf("invalid jwt config: secret is empty")
	}

	users := make(map[string]gatewayUser, len(gateway.Users))
	for _, entry := range gateway.Users {
		parts := strings.SplitN(entry, ":", 3)
		if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
			return nil, fmt.Errorf("invalid gateway user entry %q", entry)
		}

		hash, err := utils.HashPassword(parts[1])
		if err != nil {
			return nil, fmt.Errorf("hash password of %s: %w", parts[0], err)
		}

		var roles []string
		for _, role := range strings.Split(parts[2], "|") {
			role = strings.ToUpper(strings.TrimSpace(role))
			if !strings.HasPrefix(role, "ROLE_") {
				role = "ROLE_" + role
			}
			roles = append(roles, role)
		}

		users[parts[0]] = gatewayUser{passwordHash: hash, roles: roles}
	}

	return &authService{
		users: users,
		jwt:   jwt,
		log:   log.With(zap.String("service", "auth")),
	}, nil
}

func (s *authService) Authenticate(ctx context.Context, req *request.AuthenticateRequest) (*response.TokenResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, ok := s.users[req.Username]
	if !ok || !utils.CheckPassword(user.passwordHash, req.Password) {
		s.log.Warn("Authentication failed", zap.String("username", req.Username))
		return nil, fmt.Errorf("unauthorized: invalid username or password")
	}

	ttl := time.Duration(s.jwt.ExpiryHours) * time.Hour
	token, expiresAt, err := utils.GenerateToken(s.jwt.Secret, req.Username, user.roles, ttl)
	if err != nil {
		s.log.Error("Failed to sign token", zap.Error(err), zap.String("username", req.Username))
		return nil, fmt.Errorf("generate token: %w", err)
	}

	s.log.Info("User authenticated",
		zap.String("username", req.Username),
		zap.Strings("roles", user.roles))

	return &response.TokenResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: expiresAt,
	}, nil
}
