package portal

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courseportal/portal-cli/internal/urlutil"
)

type recordedRequest struct {
	method string
	path   string
	auth   string
	body   string
}

func newRecordingServer(t *testing.T, status int, response string) (*Client, *recordedRequest) {
	t.Helper()
	rec := new(recordedRequest)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.auth = r.Header.Get("Authorization")
		bs, _ := io.ReadAll(r.Body)
		rec.body = string(bs)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return NewClient(urlutil.MustParseAndValidateURL(srv.URL), srv.Client()), rec
}

func TestClient_Login(t *testing.T) {
	t.Parallel()
	c, rec := newRecordingServer(t, http.StatusOK, `{"accessToken":"t1","expiresIn":3600}`)

	res, err := c.Login(context.Background(), LoginRequest{Email: "a@b.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/auth/login", rec.path)
	assert.Empty(t, rec.auth, "login must not carry a bearer token")
	assert.JSONEq(t, `{"email":"a@b.com","password":"secret"}`, rec.body)
	assert.Equal(t, "t1", res.AccessToken)
	assert.Equal(t, int64(3600), res.ExpiresIn)
}

func TestClient_CurrentUser(t *testing.T) {
	t.Parallel()
	want := &UserProfile{
		ID: "u1", Email: "a@b.com", FullName: "A B",
		Role: RoleUser, Provider: "local", Enabled: true,
	}
	bs, _ := json.Marshal(want)
	c, rec := newRecordingServer(t, http.StatusOK, string(bs))

	got, err := c.CurrentUser(context.Background(), "t1")
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, rec.method)
	assert.Equal(t, "/auth/me", rec.path)
	assert.Equal(t, "Bearer t1", rec.auth)
	assert.Empty(t, cmp.Diff(want, got))
}

func TestClient_Paths(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		call       func(c *Client) error
		wantMethod string
		wantPath   string
		response   string
	}{
		{"list courses", func(c *Client) error {
			_, err := c.ListCourses(context.Background(), "t")
			return err
		}, http.MethodGet, "/cursos", `[]`},
		{"course detail", func(c *Client) error {
			_, err := c.Course(context.Background(), "t", "c1")
			return err
		}, http.MethodGet, "/cursos/c1", `{}`},
		{"create course", func(c *Client) error {
			_, err := c.CreateCourse(context.Background(), "t", CourseRequest{Title: "x"})
			return err
		}, http.MethodPost, "/cursos", `{}`},
		{"update course", func(c *Client) error {
			_, err := c.UpdateCourse(context.Background(), "t", "c1", CourseRequest{Title: "x"})
			return err
		}, http.MethodPut, "/cursos/c1", `{}`},
		{"create module", func(c *Client) error {
			_, err := c.CreateModule(context.Background(), "t", "c1", ModuleRequest{Title: "m"})
			return err
		}, http.MethodPost, "/cursos/c1/modulos", `{}`},
		{"update chapter", func(c *Client) error {
			_, err := c.UpdateChapter(context.Background(), "t", "c1", "m1", "ch1", ChapterRequest{Title: "x"})
			return err
		}, http.MethodPut, "/cursos/c1/modulos/m1/capitulos/ch1", `{}`},
		{"list enrollments", func(c *Client) error {
			_, err := c.ListEnrollments(context.Background(), "t", "u1")
			return err
		}, http.MethodGet, "/usuarios/u1/inscripciones", `[]`},
		{"enroll", func(c *Client) error {
			_, err := c.Enroll(context.Background(), "t", "u1", "c1")
			return err
		}, http.MethodPost, "/usuarios/u1/inscripciones", `{}`},
		{"enrollment status", func(c *Client) error {
			_, err := c.UpdateEnrollmentStatus(context.Background(), "t", "u1", "e1", EnrollmentStatusRequest{Status: EnrollmentCompleted})
			return err
		}, http.MethodPut, "/usuarios/u1/inscripciones/e1/estado", `{}`},
		{"module progress", func(c *Client) error {
			_, err := c.UpsertModuleProgress(context.Background(), "t", "u1", "e1", ModuleProgressRequest{ModuleID: "m1"})
			return err
		}, http.MethodPost, "/usuarios/u1/inscripciones/e1/modulos", `{}`},
		{"user report", func(c *Client) error {
			_, err := c.UserProgress(context.Background(), "t", "u1")
			return err
		}, http.MethodGet, "/reportes/usuarios/u1", `{}`},
		{"course report", func(c *Client) error {
			_, err := c.CourseProgress(context.Background(), "t", "c1")
			return err
		}, http.MethodGet, "/reportes/cursos/c1", `{}`},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c, rec := newRecordingServer(t, http.StatusOK, tt.response)
			require.NoError(t, tt.call(c))
			assert.Equal(t, tt.wantMethod, rec.method)
			assert.Equal(t, tt.wantPath, rec.path)
			assert.Equal(t, "Bearer t", rec.auth)
		})
	}
}

func TestClient_Delete(t *testing.T) {
	t.Parallel()
	c, rec := newRecordingServer(t, http.StatusNoContent, "")

	require.NoError(t, c.DeleteCourse(context.Background(), "t", "c1"))
	assert.Equal(t, http.MethodDelete, rec.method)
	assert.Equal(t, "/cursos/c1", rec.path)
}
