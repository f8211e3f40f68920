package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"coachhub/internal/auth"
	"coachhub/internal/model"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateName(ctx context.Context, id uuid.UUID, name string) (int64, error) {
	args := m.Called(ctx, id, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) UpdateRole(ctx context.Context, id uuid.UUID, role string) (int64, error) {
	args := m.Called(ctx, id, role)
	return args.Get(0).(int64), args.Error(1)
}

func newTestUserService(repo *MockUserRepository) UserService {
	return NewUserService(repo, auth.NewJWTService("test-secret", time.Hour))
}

func TestUserService_Signup(t *testing.T) {
	tests := []struct {
		name          string
		userName      string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful signup",
			userName: "A",
			email:    "a@a.com",
			password: "Abcd1234",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "a@a.com").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name:          "password too short",
			userName:      "A",
			email:         "a@a.com",
			password:      "short1A",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: ErrPasswordPolicy,
		},
		{
			name:          "password without uppercase",
			userName:      "A",
			email:         "a@a.com",
			password:      "alllowercase1",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: ErrPasswordPolicy,
		},
		{
			name:     "email already taken",
			userName: "B",
			email:    "taken@a.com",
			password: "Abcd1234",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "taken@a.com").Return(&model.User{Email: "taken@a.com"}, nil)
			},
			expectedError: ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := newTestUserService(mockRepo)
			user, err := svc.Signup(context.Background(), tt.userName, tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
				assert.Equal(t, tt.userName, user.Name)
				assert.Equal(t, model.RoleUser, user.Role)
				assert.NotEmpty(t, user.Password)
				assert.NotEqual(t, tt.password, user.Password)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_Login(t *testing.T) {
	userID := uuid.New()
	digest, _ := auth.HashPassword("Abcd1234")

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "a@a.com",
			password: "Abcd1234",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "a@a.com").Return(&model.User{
					ID:       userID,
					Name:     "A",
					Email:    "a@a.com",
					Password: digest,
					Role:     model.RoleUser,
				}, nil)
			},
			expectedError: nil,
		},
		{
			name:          "password fails policy before lookup",
			email:         "a@a.com",
			password:      "NOUPPERNUMBER",
			setupMock:     func(m *MockUserRepository) {},
			expectedError: ErrPasswordPolicy,
		},
		{
			name:     "unknown email",
			email:    "ghost@a.com",
			password: "Abcd1234",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "ghost@a.com").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "a@a.com",
			password: "Wrong1234",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByEmail", mock.Anything, "a@a.com").Return(&model.User{
					ID:       userID,
					Email:    "a@a.com",
					Password: digest,
				}, nil)
			},
			expectedError: ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret", time.Hour)
			svc := NewUserService(mockRepo, jwtService)

			token, user, err := svc.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Empty(t, token)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.NotNil(t, user)

				// The issued token must carry the user's id and role.
				claims, err := jwtService.ValidateToken(token)
				assert.NoError(t, err)
				assert.Equal(t, userID, claims.UserID)
				assert.Equal(t, model.RoleUser, claims.Role)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestUserService_UpdateName(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name          string
		newName       string
		setupMock     func(*MockUserRepository)
		expectedError error
	}{
		{
			name:    "successful rename",
			newName: "B",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID, Name: "A"}, nil)
				m.On("UpdateName", mock.Anything, userID, "B").Return(int64(1), nil)
			},
			expectedError: nil,
		},
		{
			name:    "no-op rename rejected",
			newName: "A",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID, Name: "A"}, nil)
			},
			expectedError: ErrNameUnchanged,
		},
		{
			name:    "user missing",
			newName: "B",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: ErrUserNotFound,
		},
		{
			name:    "update touches no rows",
			newName: "B",
			setupMock: func(m *MockUserRepository) {
				m.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID, Name: "A"}, nil)
				m.On("UpdateName", mock.Anything, userID, "B").Return(int64(0), nil)
			},
			expectedError: ErrUpdateFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockUserRepository)
			tt.setupMock(mockRepo)

			svc := newTestUserService(mockRepo)
			err := svc.UpdateName(context.Background(), userID, tt.newName)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
