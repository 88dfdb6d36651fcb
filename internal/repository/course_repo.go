package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Webdev-DavidM/TDFS-project9-REST-API/internal/model"
)

// CourseRepository defines the interface for interacting with course data
type CourseRepository interface {
	// ListCourses retrieves all courses together with their owners
	ListCourses(ctx context.Context) ([]model.Course, error)
	// GetCourseByID retrieves a course and its owner by the course ID
	GetCourseByID(ctx context.Context, id int) (*model.Course, error)
	CreateCourse(ctx context.Context, c *model.Course) error
	UpdateCourse(ctx context.Context, c *model.Course) error
	DeleteCourse(ctx context.Context, id int) error
}

type courseRepo struct {
	db *sql.DB
}

// NewCourseRepo creates a new CourseRepository
func NewCourseRepo(db *sql.DB) CourseRepository {
	return &courseRepo{db: db}
}

const courseWithOwnerColumns = `
	c.id, c.title, c.description, c.estimated_time, c.materials_needed, c.user_id,
	u.id, u.first_name, u.last_name, u.email_address`

func scanCourseWithOwner(s interface{ Scan(...any) error }, c *model.Course) error {
	return s.Scan(
		&c.ID,
		&c.Title,
		&c.Description,
		&c.EstimatedTime,
		&c.MaterialsNeeded,
		&c.UserID,
		&c.Owner.ID,
		&c.Owner.FirstName,
		&c.Owner.LastName,
		&c.Owner.EmailAddress,
	)
}

// ListCourses retrieves every course joined with its owning user
func (r *courseRepo) ListCourses(ctx context.Context) ([]model.Course, error) {
	query := `
		SELECT ` + courseWithOwnerColumns + `
		FROM courses c
		JOIN users u ON u.id = c.user_id
		ORDER BY c.id ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var courses []model.Course
	for rows.Next() {
		var course model.Course
		if err := scanCourseWithOwner(rows, &course); err != nil {
			return nil, err
		}
		courses = append(courses, course)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	// If no courses found, return an empty slice, not nil
	if len(courses) == 0 {
		return []model.Course{}, nil
	}

	return courses, nil
}

// GetCourseByID retrieves a course and its owner by the course ID
func (r *courseRepo) GetCourseByID(ctx context.Context, id int) (*model.Course, error) {
	query := `
		SELECT ` + courseWithOwnerColumns + `
		FROM courses c
		JOIN users u ON u.id = c.user_id
		WHERE c.id = $1
	`
	var c model.Course
	if err := scanCourseWithOwner(r.db.QueryRowContext(ctx, query, id), &c); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

// CreateCourse inserts a new course and fills in the generated fields
func (r *courseRepo) CreateCourse(ctx context.Context, c *model.Course) error {
	query := `
		INSERT INTO courses (title, description, estimated_time, materials_needed, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	return r.db.QueryRowContext(ctx, query, c.Title, c.Description, c.EstimatedTime, c.MaterialsNeeded, c.UserID).
		Scan(&c.ID, &c.CreatedAt, &c.UpdatedAt)
}

// UpdateCourse updates an existing course record
func (r *courseRepo) UpdateCourse(ctx context.Context, c *model.Course) error {
	query := `
		UPDATE courses
		SET title = $1, description = $2, estimated_time = $3, materials_needed = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING created_at, updated_at
	`
	return r.db.QueryRowContext(ctx, query, c.Title, c.Description, c.EstimatedTime, c.MaterialsNeeded, c.ID).
		Scan(&c.CreatedAt, &c.UpdatedAt)
}

// DeleteCourse removes a course by its ID
func (r *courseRepo) DeleteCourse(ctx context.Context, id int) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM courses WHERE id = $1`, id)
	return err
}
