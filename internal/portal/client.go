package portal

import (
	"context"
	"net/http"
	"net/url"

	"github.com/courseportal/portal-cli/internal/httputil"
)

// A Client maps logical portal operations onto backend REST calls. Every
// method issues exactly one request and has no side effects beyond it; the
// caller supplies the bearer token where one is required.
type Client struct {
	baseURL *url.URL
	hc      *http.Client
}

// NewClient creates a Client for the backend at baseURL. If hc is nil a
// logging client with a default timeout is used.
func NewClient(baseURL *url.URL, hc *http.Client) *Client {
	return &Client{baseURL: baseURL, hc: hc}
}

func (c *Client) endpoint(segments ...string) string {
	return c.baseURL.JoinPath(segments...).String()
}

func (c *Client) do(ctx context.Context, method, endpoint, token string, payload, out any) error {
	return httputil.Do(ctx, c.hc, method, endpoint, token, payload, out)
}

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	var res LoginResponse
	err := c.do(ctx, http.MethodPost, c.endpoint("auth", "login"), "", req, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// CurrentUser fetches the profile for the user the token belongs to.
func (c *Client) CurrentUser(ctx context.Context, token string) (*UserProfile, error) {
	var res UserProfile
	err := c.do(ctx, http.MethodGet, c.endpoint("auth", "me"), token, nil, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// ListCourses returns all courses visible to the caller.
func (c *Client) ListCourses(ctx context.Context, token string) ([]CourseSummary, error) {
	var res []CourseSummary
	err := c.do(ctx, http.MethodGet, c.endpoint("cursos"), token, nil, &res)
	return res, err
}

// Course returns a course with its full module tree.
func (c *Client) Course(ctx context.Context, token, courseID string) (*CourseDetail, error) {
	var res CourseDetail
	err := c.do(ctx, http.MethodGet, c.endpoint("cursos", courseID), token, nil, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// CreateCourse creates a course.
func (c *Client) CreateCourse(ctx context.Context, token string, req CourseRequest) (*CourseSummary, error) {
	var res CourseSummary
	err := c.do(ctx, http.MethodPost, c.endpoint("cursos"), token, req, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// UpdateCourse updates a course.
func (c *Client) UpdateCourse(ctx context.Context, token, courseID string, req CourseRequest) (*CourseSummary, error) {
	var res CourseSummary
	err := c.do(ctx, http.MethodPut, c.endpoint("cursos", courseID), token, req, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// DeleteCourse deletes a course.
func (c *Client) DeleteCourse(ctx context.Context, token, courseID string) error {
	return c.do(ctx, http.MethodDelete, c.endpoint("cursos", courseID), token, nil, nil)
}

// CreateModule adds a module to a course.
func (c *Client) CreateModule(ctx context.Context, token, courseID string, req ModuleRequest) (*Module, error) {
	var res Module
	err := c.do(ctx, http.MethodPost, c.endpoint("cursos", courseID, "modulos"), token, req, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// UpdateModule updates a module of a course.
func (c *Client) UpdateModule(ctx context.Context, token, courseID, moduleID string, req ModuleRequest) (*Module, error) {
	var res Module
	err := c.do(ctx, http.MethodPut, c.endpoint("cursos", courseID, "modulos", moduleID), token, req, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// DeleteModule removes a module from a course.
func (c *Client) DeleteModule(ctx context.Context, token, courseID, moduleID string) error {
	return c.do(ctx, http.MethodDelete, c.endpoint("cursos", courseID, "modulos", moduleID), token, nil, nil)
}

// CreateChapter adds a chapter to a module.
func (c *Client) CreateChapter(ctx context.Context, token, courseID, moduleID string, req ChapterRequest) (*Chapter, error) {
	var res Chapter
	err := c.do(ctx, http.MethodPost, c.endpoint("cursos", courseID, "modulos", moduleID, "capitulos"), token, req, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// UpdateChapter updates a chapter.
func (c *Client) UpdateChapter(ctx context.Context, token, courseID, moduleID, chapterID string, req ChapterRequest) (*Chapter, error) {
	var res Chapter
	err := c.do(ctx, http.MethodPut, c.endpoint("cursos", courseID, "modulos", moduleID, "capitulos", chapterID), token, req, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// DeleteChapter removes a chapter from a module.
func (c *Client) DeleteChapter(ctx context.Context, token, courseID, moduleID, chapterID string) error {
	return c.do(ctx, http.MethodDelete, c.endpoint("cursos", courseID, "modulos", moduleID, "capitulos", chapterID), token, nil, nil)
}

// ListEnrollments returns a user's enrollments.
func (c *Client) ListEnrollments(ctx context.Context, token, userID string) ([]Enrollment, error) {
	var res []Enrollment
	err := c.do(ctx, http.MethodGet, c.endpoint("usuarios", userID, "inscripciones"), token, nil, &res)
	return res, err
}

// Enroll registers a user in a course.
func (c *Client) Enroll(ctx context.Context, token, userID, courseID string) (*Enrollment, error) {
	var res Enrollment
	payload := struct {
		CourseID string `json:"courseId"`
	}{CourseID: courseID}
	err := c.do(ctx, http.MethodPost, c.endpoint("usuarios", userID, "inscripciones"), token, payload, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// UpdateEnrollmentStatus changes the status of an enrollment.
func (c *Client) UpdateEnrollmentStatus(ctx context.Context, token, userID, enrollmentID string, req EnrollmentStatusRequest) (*Enrollment, error) {
	var res Enrollment
	err := c.do(ctx, http.MethodPut, c.endpoint("usuarios", userID, "inscripciones", enrollmentID, "estado"), token, req, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// UpsertModuleProgress records a user's progress in one module of an
// enrollment.
func (c *Client) UpsertModuleProgress(ctx context.Context, token, userID, enrollmentID string, req ModuleProgressRequest) (*ModuleProgress, error) {
	var res ModuleProgress
	err := c.do(ctx, http.MethodPost, c.endpoint("usuarios", userID, "inscripciones", enrollmentID, "modulos"), token, req, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// UserProgress returns the progress report for one user.
func (c *Client) UserProgress(ctx context.Context, token, userID string) (*UserProgressReport, error) {
	var res UserProgressReport
	err := c.do(ctx, http.MethodGet, c.endpoint("reportes", "usuarios", userID), token, nil, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// CourseProgress returns the progress report for one course.
func (c *Client) CourseProgress(ctx context.Context, token, courseID string) (*CourseProgressReport, error) {
	var res CourseProgressReport
	err := c.do(ctx, http.MethodGet, c.endpoint("reportes", "cursos", courseID), token, nil, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
