package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"coachhub/internal/model"
	"coachhub/internal/repository"
)

var (
	// ErrNotCoach is returned when a course references a user who has not
	// been promoted to coach.
	ErrNotCoach = errors.New("user is not a coach")
	// ErrAlreadyCoach is returned when promoting a user who is already a coach.
	ErrAlreadyCoach = errors.New("user is already a coach")
	// ErrCourseNotFound is returned when the referenced course does not exist.
	ErrCourseNotFound = errors.New("course not found")
)

// CourseInput carries the course fields accepted on create and update.
type CourseInput struct {
	UserID          uuid.UUID
	SkillID         uuid.UUID
	Name            string
	Description     string
	StartAt         time.Time
	EndAt           time.Time
	MaxParticipants int
	MeetingURL      string
}

// AdminService handles course management and coach promotion.
type AdminService interface {
	CreateCourse(ctx context.Context, input CourseInput) (*model.Course, error)
	UpdateCourse(ctx context.Context, courseID uuid.UUID, input CourseInput) (*model.Course, error)
	PromoteCoach(ctx context.Context, userID uuid.UUID, experienceYears int, description, profileImageURL string) (*model.User, *model.Coach, error)
}

type adminService struct {
	userRepo   repository.UserRepository
	coachRepo  repository.CoachRepository
	courseRepo repository.CourseRepository
}

// NewAdminService builds an AdminService.
func NewAdminService(userRepo repository.UserRepository, coachRepo repository.CoachRepository, courseRepo repository.CourseRepository) AdminService {
	return &adminService{
		userRepo:   userRepo,
		coachRepo:  coachRepo,
		courseRepo: courseRepo,
	}
}

// CreateCourse creates a course owned by an existing coach.
func (s *adminService) CreateCourse(ctx context.Context, input CourseInput) (*model.Course, error) {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user.Role != model.RoleCoach {
		return nil, ErrNotCoach
	}

	course := &model.Course{
		UserID:          input.UserID,
		SkillID:         input.SkillID,
		Name:            input.Name,
		Description:     input.Description,
		StartAt:         input.StartAt,
		EndAt:           input.EndAt,
		MaxParticipants: input.MaxParticipants,
		MeetingURL:      input.MeetingURL,
	}

	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}

	return course, nil
}

// UpdateCourse applies the input to an existing course and returns the
// re-read row.
func (s *adminService) UpdateCourse(ctx context.Context, courseID uuid.UUID, input CourseInput) (*model.Course, error) {
	if _, err := s.courseRepo.FindByID(ctx, courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, fmt.Errorf("find course: %w", err)
	}

	affected, err := s.courseRepo.Update(ctx, courseID, map[string]interface{}{
		"skill_id":         input.SkillID,
		"name":             input.Name,
		"description":      input.Description,
		"start_at":         input.StartAt,
		"end_at":           input.EndAt,
		"max_participants": input.MaxParticipants,
		"meeting_url":      input.MeetingURL,
	})
	if err != nil {
		return nil, fmt.Errorf("update course: %w", err)
	}
	if affected == 0 {
		return nil, ErrUpdateFailed
	}

	course, err := s.courseRepo.FindByID(ctx, courseID)
	if err != nil {
		return nil, fmt.Errorf("reload course: %w", err)
	}
	return course, nil
}

// PromoteCoach flips the user's role to coach and creates their coach
// profile. The role transition is one-way; an existing coach is rejected
// before anything is written.
func (s *adminService) PromoteCoach(ctx context.Context, userID uuid.UUID, experienceYears int, description, profileImageURL string) (*model.User, *model.Coach, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrUserNotFound
		}
		return nil, nil, fmt.Errorf("find user: %w", err)
	}
	if user.Role == model.RoleCoach {
		return nil, nil, ErrAlreadyCoach
	}

	affected, err := s.userRepo.UpdateRole(ctx, userID, model.RoleCoach)
	if err != nil {
		return nil, nil, fmt.Errorf("update role: %w", err)
	}
	if affected == 0 {
		return nil, nil, ErrUpdateFailed
	}

	coach := &model.Coach{
		UserID:          userID,
		ExperienceYears: experienceYears,
		Description:     description,
		ProfileImageURL: profileImageURL,
	}
	if err := s.coachRepo.Create(ctx, coach); err != nil {
		return nil, nil, fmt.Errorf("create coach: %w", err)
	}

	promoted, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, nil, fmt.Errorf("reload user: %w", err)
	}
	return promoted, coach, nil
}
