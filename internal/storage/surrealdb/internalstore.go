package surrealdb

import (
	"context"
	"fmt"
	"sort"

	"github.com/bobmcallan/insurancebuddy/internal/common"
	"github.com/bobmcallan/insurancebuddy/internal/interfaces"
	"github.com/bobmcallan/insurancebuddy/internal/models"
	"github.com/surrealdb/surrealdb.go"
	surrealmodels "github.com/surrealdb/surrealdb.go/pkg/models"
)

type InternalStore struct {
	db     *surrealdb.DB
	logger *common.Logger
}

func NewInternalStore(db *surrealdb.DB, logger *common.Logger) *InternalStore {
	return &InternalStore{
		db:     db,
		logger: logger,
	}
}

func (s *InternalStore) GetUser(ctx context.Context, userID string) (*models.InternalUser, error) {
	return getRecord[models.InternalUser](ctx, s.db, tableUser, userID)
}

func (s *InternalStore) SaveUser(ctx context.Context, user *models.InternalUser) error {
	return upsertRecord(ctx, s.db, tableUser, user.UserID, user)
}

func (s *InternalStore) DeleteUser(ctx context.Context, userID string) error {
	return deleteRecord[models.InternalUser](ctx, s.db, tableUser, userID)
}

func (s *InternalStore) ListUsers(ctx context.Context) ([]string, error) {
	list, err := surrealdb.Select[[]models.InternalUser](ctx, s.db, surrealmodels.Table(tableUser))
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	var userIDs []string
	if list != nil {
		for _, u := range *list {
			if u.UserID != "" {
				userIDs = append(userIDs, u.UserID)
			}
		}
	}
	sort.Strings(userIDs)
	return userIDs, nil
}

// Compile-time check
var _ interfaces.InternalStore = (*InternalStore)(nil)
