package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/bobmcallan/insurancebuddy/internal/common"
	"github.com/bobmcallan/insurancebuddy/internal/interfaces"
	"github.com/bobmcallan/insurancebuddy/internal/models"
)

// bcryptCost is shared by provisioning and login verification.
const bcryptCost = 10

// SuperuserResult reports what EnsureSuperuser did.
type SuperuserResult int

const (
	SuperuserSkipped SuperuserResult = iota
	SuperuserExists
	SuperuserCreated
)

func (r SuperuserResult) String() string {
	switch r {
	case SuperuserExists:
		return "exists"
	case SuperuserCreated:
		return "created"
	default:
		return "skipped"
	}
}

// SuperuserRequest names the admin account to provision.
type SuperuserRequest struct {
	Username string
	Password string
	Email    string
}

// SuperuserRequestFromEnv reads BUDDY_SUPERUSER_USERNAME, _PASSWORD and _EMAIL.
func SuperuserRequestFromEnv() SuperuserRequest {
	return SuperuserRequest{
		Username: strings.TrimSpace(os.Getenv("BUDDY_SUPERUSER_USERNAME")),
		Password: os.Getenv("BUDDY_SUPERUSER_PASSWORD"),
		Email:    strings.TrimSpace(os.Getenv("BUDDY_SUPERUSER_EMAIL")),
	}
}

// HashPassword bcrypt-hashes a password, truncated to bcrypt's 72 byte limit.
func HashPassword(password string) (string, error) {
	passwordBytes := []byte(password)
	if len(passwordBytes) > 72 {
		passwordBytes = passwordBytes[:72]
	}
	hash, err := bcrypt.GenerateFromPassword(passwordBytes, bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// EnsureSuperuser creates the admin user unless it already exists. Missing
// credentials skip provisioning with a warning rather than failing.
func EnsureSuperuser(ctx context.Context, store interfaces.InternalStore, logger *common.Logger, req SuperuserRequest) (SuperuserResult, error) {
	if req.Username == "" || req.Password == "" {
		logger.Warn().Msg("Superuser credentials not set, skipping creation")
		return SuperuserSkipped, nil
	}

	// Idempotent: an existing account is never overwritten
	_, err := store.GetUser(ctx, req.Username)
	if err == nil {
		logger.Info().Str("username", req.Username).Msg("Superuser already exists")
		return SuperuserExists, nil
	}
	if !errors.Is(err, interfaces.ErrNotFound) {
		return SuperuserSkipped, fmt.Errorf("failed to look up superuser: %w", err)
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return SuperuserSkipped, fmt.Errorf("failed to hash superuser password: %w", err)
	}

	user := &models.InternalUser{
		UserID:       req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	if err := store.SaveUser(ctx, user); err != nil {
		return SuperuserSkipped, fmt.Errorf("failed to save superuser: %w", err)
	}

	logger.Info().Str("username", req.Username).Str("email", req.Email).Msg("Superuser created")
	return SuperuserCreated, nil
}
