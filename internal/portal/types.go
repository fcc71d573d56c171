// Package portal contains the wire types and endpoint bindings for the
// training-course portal backend REST API.
package portal

// A Role is the authorization role assigned to a portal user. The set of
// values is fixed and must stay in sync with the backend.
type Role string

// All roles.
const (
	RoleAdmin      Role = "ADMIN"
	RoleInstructor Role = "INSTRUCTOR"
	RoleUser       Role = "USER"
)

// LoginRequest are the credentials for a local-account login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is returned by the login endpoint on success.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int64  `json:"expiresIn"`
	TokenType   string `json:"tokenType,omitempty"`
}

// UserProfile is the identity record returned by the backend for the current
// token.
type UserProfile struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Role     Role   `json:"role"`
	Provider string `json:"provider"`
	Enabled  bool   `json:"enabled"`
}

// A CourseStatus is the lifecycle state of a course.
type CourseStatus string

// All course statuses.
const (
	CourseDraft     CourseStatus = "DRAFT"
	CoursePublished CourseStatus = "PUBLISHED"
	CourseArchived  CourseStatus = "ARCHIVED"
)

// CourseSummary is the list representation of a course.
type CourseSummary struct {
	ID          string       `json:"id"`
	Code        string       `json:"code"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Status      CourseStatus `json:"status"`
	CreatedAt   string       `json:"createdAt"`
	UpdatedAt   string       `json:"updatedAt"`
}

// CourseDetail is a course with its full module tree.
type CourseDetail struct {
	CourseSummary
	Modules []Module `json:"modules"`
}

// Module is an ordered unit of a course.
type Module struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Summary    string    `json:"summary,omitempty"`
	OrderIndex int       `json:"orderIndex"`
	CreatedAt  string    `json:"createdAt"`
	UpdatedAt  string    `json:"updatedAt"`
	Chapters   []Chapter `json:"chapters"`
}

// Chapter is an ordered unit of a module.
type Chapter struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Content         string `json:"content,omitempty"`
	OrderIndex      int    `json:"orderIndex"`
	DurationMinutes int    `json:"durationMinutes,omitempty"`
	CreatedAt       string `json:"createdAt"`
	UpdatedAt       string `json:"updatedAt"`
}

// CourseRequest is the payload for creating or updating a course.
type CourseRequest struct {
	Code        string       `json:"code,omitempty"`
	Title       string       `json:"title,omitempty"`
	Description string       `json:"description,omitempty"`
	Status      CourseStatus `json:"status,omitempty"`
}

// ModuleRequest is the payload for creating or updating a module.
type ModuleRequest struct {
	Title      string `json:"title,omitempty"`
	Summary    string `json:"summary,omitempty"`
	OrderIndex int    `json:"orderIndex,omitempty"`
}

// ChapterRequest is the payload for creating or updating a chapter.
type ChapterRequest struct {
	Title           string `json:"title,omitempty"`
	Content         string `json:"content,omitempty"`
	OrderIndex      int    `json:"orderIndex,omitempty"`
	DurationMinutes int    `json:"durationMinutes,omitempty"`
}

// An EnrollmentStatus is the progress state of an enrollment or of a module
// within it. The values are owned by the backend.
type EnrollmentStatus string

// All enrollment statuses.
const (
	EnrollmentStarted    EnrollmentStatus = "INICIADO"
	EnrollmentInProgress EnrollmentStatus = "EN_PROGRESO"
	EnrollmentCompleted  EnrollmentStatus = "COMPLETADO"
)

// ModuleProgress tracks a user's progress through one module of an enrolled
// course.
type ModuleProgress struct {
	ID                string           `json:"id"`
	ModuleID          string           `json:"moduleId"`
	Status            EnrollmentStatus `json:"status"`
	CompletedChapters int              `json:"completedChapters"`
	LastUpdated       string           `json:"lastUpdated"`
}

// Enrollment is a user's registration in a course.
type Enrollment struct {
	ID               string           `json:"id"`
	CourseID         string           `json:"courseId"`
	Status           EnrollmentStatus `json:"status"`
	EnrolledAt       string           `json:"enrolledAt"`
	LastStatusChange string           `json:"lastStatusChange"`
	Modules          []ModuleProgress `json:"modules"`
}

// EnrollmentStatusRequest is the payload for updating an enrollment's status.
type EnrollmentStatusRequest struct {
	Status EnrollmentStatus `json:"status"`
}

// ModuleProgressRequest is the payload for recording progress in a module.
type ModuleProgressRequest struct {
	ModuleID          string           `json:"moduleId"`
	Status            EnrollmentStatus `json:"status"`
	CompletedChapters int              `json:"completedChapters"`
}

// CourseParticipantProgress is one participant's row in a course progress
// report.
type CourseParticipantProgress struct {
	EnrollmentID     string           `json:"enrollmentId"`
	UserID           string           `json:"userId"`
	UserEmail        string           `json:"userEmail"`
	FullName         string           `json:"fullName"`
	Status           EnrollmentStatus `json:"status"`
	EnrolledAt       string           `json:"enrolledAt"`
	LastStatusChange string           `json:"lastStatusChange"`
}

// CourseProgressReport aggregates enrollment progress for a course.
type CourseProgressReport struct {
	CourseID       string                      `json:"courseId"`
	TotalsByStatus map[string]int              `json:"totalsByStatus"`
	Participants   []CourseParticipantProgress `json:"participants"`
}

// UserProgressReport aggregates a user's enrollments.
type UserProgressReport struct {
	UserID      string       `json:"userId"`
	UserEmail   string       `json:"userEmail"`
	FullName    string       `json:"fullName"`
	Enrollments []Enrollment `json:"enrollments"`
}
