package service

import (
	"context"

	"github.com/dwnGnL/paymentService/db"
	"github.com/dwnGnL/paymentService/models"
	"github.com/stretchr/testify/mock"
)

type paymentRepoMock struct {
	mock.Mock
}

func (m *paymentRepoMock) FindByID(ctx context.Context, id int64) (models.Payment, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Payment), args.Error(1)
}

func (m *paymentRepoMock) FindIDs(ctx context.Context, filter db.PaymentFilter) ([]int64, error) {
	args := m.Called(ctx, filter)
	ids, _ := args.Get(0).([]int64)
	return ids, args.Error(1)
}

func (m *paymentRepoMock) Create(ctx context.Context, payment *models.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

func (m *paymentRepoMock) Update(ctx context.Context, payment *models.Payment) error {
	return m.Called(ctx, payment).Error(0)
}

type userRepoMock struct {
	mock.Mock
}

func (m *userRepoMock) FindByID(ctx context.Context, id int64) (models.TUser, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.TUser), args.Error(1)
}

func (m *userRepoMock) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *userRepoMock) Create(ctx context.Context, user *models.TUser) error {
	return m.Called(ctx, user).Error(0)
}

func (m *userRepoMock) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *userRepoMock) RemovePayment(ctx context.Context, userID, paymentID int64) error {
	return m.Called(ctx, userID, paymentID).Error(0)
}
