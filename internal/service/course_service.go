package service

import (
	"context"

	"github.com/Webdev-DavidM/TDFS-project9-REST-API/internal/model"
	"github.com/Webdev-DavidM/TDFS-project9-REST-API/internal/repository"
)

// CourseService defines the interface for course operations
type CourseService interface {
	ListCourses(ctx context.Context) ([]model.Course, error)
	// GetCourse retrieves a course by its ID
	GetCourse(ctx context.Context, id int) (*model.Course, error)
	// CreateCourse creates a course owned by the given user
	CreateCourse(ctx context.Context, u *model.User, c *model.Course) (*model.Course, error)
	// UpdateCourse updates a course after checking the caller owns it
	UpdateCourse(ctx context.Context, u *model.User, c *model.Course) error
	// DeleteCourse deletes a course after checking the caller owns it
	DeleteCourse(ctx context.Context, u *model.User, id int) error
}

// courseService is the implementation of CourseService
type courseService struct {
	repo repository.CourseRepository
}

// NewCourseService creates a new CourseService
func NewCourseService(repo repository.CourseRepository) CourseService {
	return &courseService{repo: repo}
}

func (s *courseService) ListCourses(ctx context.Context) ([]model.Course, error) {
	return s.repo.ListCourses(ctx)
}

func (s *courseService) GetCourse(ctx context.Context, id int) (*model.Course, error) {
	c, err := s.repo.GetCourseByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCourseNotFound
	}
	return c, nil
}

// CreateCourse stores a new course. The authenticated user becomes the owner
// regardless of any owner id supplied by the client.
func (s *courseService) CreateCourse(ctx context.Context, u *model.User, c *model.Course) (*model.Course, error) {
	c.UserID = u.ID
	if err := s.repo.CreateCourse(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *courseService) UpdateCourse(ctx context.Context, u *model.User, c *model.Course) error {
	// Absence is checked before ownership so a missing course is reported as
	// not-found, never as not-owned.
	existing, err := s.repo.GetCourseByID(ctx, c.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrCourseNotFound
	}
	if err := AuthorizeOwner(u, existing, "update"); err != nil {
		return err
	}

	return s.repo.UpdateCourse(ctx, c)
}

func (s *courseService) DeleteCourse(ctx context.Context, u *model.User, id int) error {
	existing, err := s.repo.GetCourseByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrCourseNotFound
	}
	if err := AuthorizeOwner(u, existing, "delete"); err != nil {
		return err
	}

	return s.repo.DeleteCourse(ctx, id)
}
