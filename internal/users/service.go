package users

import (
	"context"
	"errors"
	"strings"
)

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// UpdateProfile stores the user's display name and optional country.
func (s *Service) UpdateProfile(ctx context.Context, userID, displayName, country string) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	displayName = strings.TrimSpace(displayName)
	if strings.TrimSpace(userID) == "" || displayName == "" {
		return User{}, errors.New("user id and display name are required")
	}
	user := User{
		ID:          userID,
		DisplayName: displayName,
		Country:     strings.TrimSpace(country),
	}
	if err := s.Repo.Upsert(ctx, user); err != nil {
		return User{}, err
	}
	return s.Repo.GetByID(ctx, userID)
}

func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return User{}, errors.New("user id is required")
	}
	return s.Repo.GetByID(ctx, userID)
}
