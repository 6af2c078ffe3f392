package service

import (
	"context"
	"errors"
	"strings"

	"github.com/dwnGnL/paymentService/db"
	"github.com/dwnGnL/paymentService/models"
	"github.com/dwnGnL/paymentService/pkg/e"
	"github.com/dwnGnL/paymentService/pkg/validation"
	log "github.com/sirupsen/logrus"
)

type UserService struct {
	users UserRepository
}

func NewUserService(users UserRepository) *UserService {
	return &UserService{users: users}
}

// Create registers a new user with no payments. Usernames are unique.
func (s *UserService) Create(ctx context.Context, req *models.UserCreationRequest) (models.TUser, error) {
	if err := validation.Struct(req); err != nil {
		return models.TUser{}, err
	}
	username := strings.TrimSpace(req.Username)

	exists, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return models.TUser{}, err
	}
	if exists {
		return models.TUser{}, e.BadRequest("Username already exists")
	}

	user := models.TUser{Username: username}
	if err := s.users.Create(ctx, &user); err != nil {
		if errors.Is(err, db.ErrAlreadyExists) {
			return models.TUser{}, e.BadRequest("Username already exists")
		}
		return models.TUser{}, err
	}

	log.WithField("user_id", user.ID).Info("user created")
	return user, nil
}

// Delete removes the user and all of its payments.
func (s *UserService) Delete(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	log.WithField("user_id", id).Info("user deleted")
	return nil
}

// RemovePayment detaches and deletes one payment owned by the user.
func (s *UserService) RemovePayment(ctx context.Context, userID, paymentID int64) error {
	if err := s.users.RemovePayment(ctx, userID, paymentID); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return e.NotFound("Payment not found for user: %d", userID)
		}
		return err
	}
	return nil
}
