package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/course-gateway/internal/api/dto"
	"github.com/spec-kit/course-gateway/internal/domain"
	"github.com/spec-kit/course-gateway/internal/supabase"
)

const coursesTable = "Course"

// CoursesService issues course operations against the backend. Every
// call builds its own store handle from the caller's token, so the
// backend's row-level rules always see the calling identity and two
// concurrent callers can never share privilege.
type CoursesService struct {
	store *supabase.Factory
}

// NewCoursesService builds the service.
func NewCoursesService(store *supabase.Factory) *CoursesService {
	return &CoursesService{store: store}
}

// List returns all visible courses ordered by creation time.
func (s *CoursesService) List(ctx context.Context, token string) ([]domain.Course, error) {
	var courses []domain.Course
	if err := s.store.WithToken(token).Select(ctx, coursesTable, "createdAt.asc", &courses); err != nil {
		return nil, err
	}
	if courses == nil {
		courses = []domain.Course{}
	}
	return courses, nil
}

// Get returns a single course by id.
func (s *CoursesService) Get(ctx context.Context, token, id string) (*domain.Course, error) {
	var course domain.Course
	if err := s.store.WithToken(token).SelectOne(ctx, coursesTable, id, &course); err != nil {
		return nil, err
	}
	return &course, nil
}

// Create inserts a new course with a generated id and timestamps.
func (s *CoursesService) Create(ctx context.Context, token string, req dto.CourseCreateRequest) (*domain.Course, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	row := domain.Course{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Code:        req.Code,
		Description: req.Description,
		Term:        "TBD",
		StartDate:   now,
		EndDate:     now,
		Visibility:  "PUBLISHED",
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	var created domain.Course
	if err := s.store.WithToken(token).Insert(ctx, coursesTable, row, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// Update patches only the supplied fields and refreshes updatedAt.
func (s *CoursesService) Update(ctx context.Context, token, id string, req dto.CourseUpdateRequest) (*domain.Course, error) {
	patch := map[string]any{
		"updatedAt": time.Now().UTC().Format(time.RFC3339),
	}
	if req.Title != nil {
		patch["title"] = *req.Title
	}
	if req.Code != nil {
		patch["code"] = *req.Code
	}
	if req.Description != nil {
		patch["description"] = *req.Description
	}

	var updated domain.Course
	if err := s.store.WithToken(token).Update(ctx, coursesTable, id, patch, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a course by id.
func (s *CoursesService) Delete(ctx context.Context, token, id string) error {
	return s.store.WithToken(token).Delete(ctx, coursesTable, id)
}
