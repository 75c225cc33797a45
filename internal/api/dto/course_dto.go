package dto

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// CourseCreateRequest payload for new courses.
type CourseCreateRequest struct {
	Title       string `json:"title"`
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Validate runs schema rules before anything reaches the store.
func (r CourseCreateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.Required, validation.Length(2, 200)),
		validation.Field(&r.Code, validation.Required, validation.Length(2, 50)),
		validation.Field(&r.Description, validation.Required, validation.Length(2, 2000)),
	)
}

// CourseUpdateRequest is a partial of CourseCreateRequest; absent
// fields stay untouched.
type CourseUpdateRequest struct {
	Title       *string `json:"title"`
	Code        *string `json:"code"`
	Description *string `json:"description"`
}

// Validate applies the create rules to whichever fields are present.
func (r CourseUpdateRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title, validation.NilOrNotEmpty, validation.Length(2, 200)),
		validation.Field(&r.Code, validation.NilOrNotEmpty, validation.Length(2, 50)),
		validation.Field(&r.Description, validation.NilOrNotEmpty, validation.Length(2, 2000)),
	)
}
