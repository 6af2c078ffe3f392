package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/dwnGnL/paymentService/models"
	"gorm.io/gorm"
)

// UserStore provides gorm-backed persistence for users and owns the
// cascading removal of their payments.
type UserStore struct {
	db *gorm.DB
}

func NewUserStore(gdb *gorm.DB) *UserStore {
	return &UserStore{db: gdb}
}

func (s *UserStore) FindByID(ctx context.Context, id int64) (models.TUser, error) {
	var user models.TUser
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.TUser{}, ErrNotFound
		}
		return models.TUser{}, fmt.Errorf("find user %d: %w", id, err)
	}
	return user, nil
}

func (s *UserStore) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).Model(&models.TUser{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	return count > 0, nil
}

// Create inserts the user; a taken username yields ErrAlreadyExists.
func (s *UserStore) Create(ctx context.Context, user *models.TUser) error {
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// Delete removes the user together with every payment it owns.
// Deleting an unknown id is not an error.
func (s *UserStore) Delete(ctx context.Context, id int64) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.Payment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.TUser{}, id).Error
	})
	if err != nil {
		return fmt.Errorf("delete user %d: %w", id, err)
	}
	return nil
}

// RemovePayment detaches a payment from its owner, which deletes it.
func (s *UserStore) RemovePayment(ctx context.Context, userID, paymentID int64) error {
	res := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", paymentID, userID).Delete(&models.Payment{})
	if res.Error != nil {
		return fmt.Errorf("remove payment %d of user %d: %w", paymentID, userID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
