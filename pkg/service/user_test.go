package service

import (
	"context"
	"testing"

	"github.com/dwnGnL/paymentService/db"
	"github.com/dwnGnL/paymentService/models"
	"github.com/dwnGnL/paymentService/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateUser(t *testing.T) {
	users := &userRepoMock{}
	s := NewUserService(users)
	users.On("ExistsByUsername", mock.Anything, "john_doe").Return(false, nil)
	users.On("Create", mock.Anything, mock.AnythingOfType("*models.TUser")).Run(func(args mock.Arguments) {
		args.Get(1).(*models.TUser).ID = 1
	}).Return(nil)

	got, err := s.Create(context.Background(), &models.UserCreationRequest{Username: " john_doe "})
	require.NoError(t, err)
	assert.Equal(t, models.TUser{ID: 1, Username: "john_doe"}, got)
	users.AssertExpectations(t)
}

func TestCreateUserTaken(t *testing.T) {
	users := &userRepoMock{}
	s := NewUserService(users)
	users.On("ExistsByUsername", mock.Anything, "john_doe").Return(true, nil)

	_, err := s.Create(context.Background(), &models.UserCreationRequest{Username: "john_doe"})
	require.Error(t, err)
	assert.Equal(t, e.KindBadRequest, e.KindOf(err))
	assert.Equal(t, "Username already exists", err.Error())
	users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateUserLosesRace(t *testing.T) {
	users := &userRepoMock{}
	s := NewUserService(users)
	users.On("ExistsByUsername", mock.Anything, "john_doe").Return(false, nil)
	users.On("Create", mock.Anything, mock.Anything).Return(db.ErrAlreadyExists)

	_, err := s.Create(context.Background(), &models.UserCreationRequest{Username: "john_doe"})
	require.Error(t, err)
	assert.Equal(t, "Username already exists", err.Error())
}

func TestCreateUserBlank(t *testing.T) {
	users := &userRepoMock{}
	s := NewUserService(users)

	_, err := s.Create(context.Background(), &models.UserCreationRequest{Username: "   "})
	require.Error(t, err)
	assert.Equal(t, e.KindValidation, e.KindOf(err))
	users.AssertNotCalled(t, "ExistsByUsername", mock.Anything, mock.Anything)
}

func TestDeleteUser(t *testing.T) {
	users := &userRepoMock{}
	s := NewUserService(users)
	users.On("Delete", mock.Anything, int64(1)).Return(nil).Once()

	require.NoError(t, s.Delete(context.Background(), 1))
	users.AssertExpectations(t)
}

func TestRemovePayment(t *testing.T) {
	users := &userRepoMock{}
	s := NewUserService(users)
	users.On("RemovePayment", mock.Anything, int64(1), int64(5)).Return(nil)
	users.On("RemovePayment", mock.Anything, int64(1), int64(6)).Return(db.ErrNotFound)

	require.NoError(t, s.RemovePayment(context.Background(), 1, 5))

	err := s.RemovePayment(context.Background(), 1, 6)
	require.Error(t, err)
	assert.Equal(t, e.KindNotFound, e.KindOf(err))
	assert.Equal(t, "Payment not found for user: 1", err.Error())
}
