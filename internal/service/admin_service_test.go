package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"coachhub/internal/model"
)

// MockCoachRepository is a mock implementation of CoachRepository.
type MockCoachRepository struct {
	mock.Mock
}

func (m *MockCoachRepository) Create(ctx context.Context, coach *model.Coach) error {
	args := m.Called(ctx, coach)
	return args.Error(0)
}

func (m *MockCoachRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*model.Coach, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Coach), args.Error(1)
}

// MockCourseRepository is a mock implementation of CourseRepository.
type MockCourseRepository struct {
	mock.Mock
}

func (m *MockCourseRepository) Create(ctx context.Context, course *model.Course) error {
	args := m.Called(ctx, course)
	return args.Error(0)
}

func (m *MockCourseRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Course, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Course), args.Error(1)
}

func (m *MockCourseRepository) Update(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (int64, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(int64), args.Error(1)
}

func testCourseInput(userID uuid.UUID) CourseInput {
	start := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
	return CourseInput{
		UserID:          userID,
		SkillID:         uuid.New(),
		Name:            "重訓基礎",
		Description:     "基礎重量訓練",
		StartAt:         start,
		EndAt:           start.Add(2 * time.Hour),
		MaxParticipants: 10,
		MeetingURL:      "https://meet.example.com/abc",
	}
}

func TestAdminService_CreateCourse(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name          string
		setupMock     func(*MockUserRepository, *MockCourseRepository)
		expectedError error
	}{
		{
			name: "successful creation",
			setupMock: func(mUser *MockUserRepository, mCourse *MockCourseRepository) {
				mUser.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID, Role: model.RoleCoach}, nil)
				mCourse.On("Create", mock.Anything, mock.AnythingOfType("*model.Course")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "user missing",
			setupMock: func(mUser *MockUserRepository, mCourse *MockCourseRepository) {
				mUser.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: ErrUserNotFound,
		},
		{
			name: "user is not a coach",
			setupMock: func(mUser *MockUserRepository, mCourse *MockCourseRepository) {
				mUser.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID, Role: model.RoleUser}, nil)
			},
			expectedError: ErrNotCoach,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserRepo := new(MockUserRepository)
			mockCoachRepo := new(MockCoachRepository)
			mockCourseRepo := new(MockCourseRepository)
			tt.setupMock(mockUserRepo, mockCourseRepo)

			svc := NewAdminService(mockUserRepo, mockCoachRepo, mockCourseRepo)
			course, err := svc.CreateCourse(context.Background(), testCourseInput(userID))

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, course)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, course)
				assert.Equal(t, userID, course.UserID)
			}

			mockUserRepo.AssertExpectations(t)
			mockCourseRepo.AssertExpectations(t)
		})
	}
}

func TestAdminService_UpdateCourse(t *testing.T) {
	courseID := uuid.New()
	userID := uuid.New()

	t.Run("course missing", func(t *testing.T) {
		mockCourseRepo := new(MockCourseRepository)
		mockCourseRepo.On("FindByID", mock.Anything, courseID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewAdminService(new(MockUserRepository), new(MockCoachRepository), mockCourseRepo)
		course, err := svc.UpdateCourse(context.Background(), courseID, testCourseInput(userID))

		assert.Equal(t, ErrCourseNotFound, err)
		assert.Nil(t, course)
		mockCourseRepo.AssertExpectations(t)
	})

	t.Run("successful update returns reloaded course", func(t *testing.T) {
		input := testCourseInput(userID)
		updated := &model.Course{ID: courseID, UserID: userID, Name: input.Name}

		mockCourseRepo := new(MockCourseRepository)
		mockCourseRepo.On("FindByID", mock.Anything, courseID).Return(&model.Course{ID: courseID}, nil).Once()
		mockCourseRepo.On("Update", mock.Anything, courseID, mock.AnythingOfType("map[string]interface {}")).Return(int64(1), nil)
		mockCourseRepo.On("FindByID", mock.Anything, courseID).Return(updated, nil).Once()

		svc := NewAdminService(new(MockUserRepository), new(MockCoachRepository), mockCourseRepo)
		course, err := svc.UpdateCourse(context.Background(), courseID, input)

		assert.NoError(t, err)
		assert.Equal(t, updated, course)
		mockCourseRepo.AssertExpectations(t)
	})

	t.Run("update touches no rows", func(t *testing.T) {
		mockCourseRepo := new(MockCourseRepository)
		mockCourseRepo.On("FindByID", mock.Anything, courseID).Return(&model.Course{ID: courseID}, nil)
		mockCourseRepo.On("Update", mock.Anything, courseID, mock.AnythingOfType("map[string]interface {}")).Return(int64(0), nil)

		svc := NewAdminService(new(MockUserRepository), new(MockCoachRepository), mockCourseRepo)
		course, err := svc.UpdateCourse(context.Background(), courseID, testCourseInput(userID))

		assert.Equal(t, ErrUpdateFailed, err)
		assert.Nil(t, course)
	})
}

func TestAdminService_PromoteCoach(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name          string
		setupMock     func(*MockUserRepository, *MockCoachRepository)
		expectedError error
	}{
		{
			name: "successful promotion",
			setupMock: func(mUser *MockUserRepository, mCoach *MockCoachRepository) {
				mUser.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID, Name: "A", Role: model.RoleUser}, nil).Once()
				mUser.On("UpdateRole", mock.Anything, userID, model.RoleCoach).Return(int64(1), nil)
				mCoach.On("Create", mock.Anything, mock.AnythingOfType("*model.Coach")).Return(nil)
				mUser.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID, Name: "A", Role: model.RoleCoach}, nil).Once()
			},
			expectedError: nil,
		},
		{
			name: "already a coach",
			setupMock: func(mUser *MockUserRepository, mCoach *MockCoachRepository) {
				mUser.On("FindByID", mock.Anything, userID).Return(&model.User{ID: userID, Role: model.RoleCoach}, nil)
			},
			expectedError: ErrAlreadyCoach,
		},
		{
			name: "user missing",
			setupMock: func(mUser *MockUserRepository, mCoach *MockCoachRepository) {
				mUser.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUserRepo := new(MockUserRepository)
			mockCoachRepo := new(MockCoachRepository)
			tt.setupMock(mockUserRepo, mockCoachRepo)

			svc := NewAdminService(mockUserRepo, mockCoachRepo, new(MockCourseRepository))
			user, coach, err := svc.PromoteCoach(context.Background(), userID, 3, "健身教練", "https://img.example.com/p.png")

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, user)
				assert.Nil(t, coach)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, model.RoleCoach, user.Role)
				assert.NotNil(t, coach)
				assert.Equal(t, userID, coach.UserID)
				assert.Equal(t, 3, coach.ExperienceYears)
			}

			mockUserRepo.AssertExpectations(t)
			mockCoachRepo.AssertExpectations(t)
		})
	}
}
