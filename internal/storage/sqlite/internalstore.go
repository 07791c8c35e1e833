package sqlite

import (
	"context"

	"github.com/bobmcallan/insurancebuddy/internal/common"
	"github.com/bobmcallan/insurancebuddy/internal/interfaces"
	"github.com/bobmcallan/insurancebuddy/internal/models"
)

// InternalStore implements interfaces.InternalStore on the documents table.
type InternalStore struct {
	docs   *documents
	logger *common.Logger
}

func (s *InternalStore) GetUser(ctx context.Context, userID string) (*models.InternalUser, error) {
	user := &models.InternalUser{}
	if err := s.docs.get(ctx, kindUser, userID, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *InternalStore) SaveUser(ctx context.Context, user *models.InternalUser) error {
	return s.docs.put(ctx, kindUser, user.UserID, user)
}

func (s *InternalStore) DeleteUser(ctx context.Context, userID string) error {
	return s.docs.delete(ctx, kindUser, userID)
}

// ListUsers returns user ids in ascending order.
func (s *InternalStore) ListUsers(ctx context.Context) ([]string, error) {
	users, err := listAs[models.InternalUser](ctx, s.docs, kindUser)
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, u := range users {
		if u.UserID != "" {
			ids = append(ids, u.UserID)
		}
	}
	return ids, nil
}

// Compile-time check
var _ interfaces.InternalStore = (*InternalStore)(nil)
