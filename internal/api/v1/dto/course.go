package dto

// CourseCreateDTO is used for incoming course creation requests. Any owner id
// in the payload is ignored; the authenticated user becomes the owner.
type CourseCreateDTO struct {
	Title           string  `json:"title" validate:"required"`
	Description     string  `json:"description" validate:"required"`
	EstimatedTime   *string `json:"estimatedTime,omitempty"`
	MaterialsNeeded *string `json:"materialsNeeded,omitempty"`
}

// CourseUpdateDTO is used for incoming course update requests. Title and
// description stay required on updates.
type CourseUpdateDTO struct {
	Title           string  `json:"title" validate:"required"`
	Description     string  `json:"description" validate:"required"`
	EstimatedTime   *string `json:"estimatedTime,omitempty"`
	MaterialsNeeded *string `json:"materialsNeeded,omitempty"`
}

// CourseResponseDTO is returned in API responses for courses
type CourseResponseDTO struct {
	ID              int             `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	EstimatedTime   *string         `json:"estimatedTime"`
	MaterialsNeeded *string         `json:"materialsNeeded"`
	UserID          int             `json:"userId"`
	User            UserResponseDTO `json:"user"`
}
