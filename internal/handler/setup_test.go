package handler_test

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"sharehub/internal/auth"
	"sharehub/internal/handler"
	"sharehub/internal/model"
	"sharehub/internal/router"
	"sharehub/internal/view"
)

type testApp struct {
	e     *echo.Echo
	auth  *MockAuthService
	posts *MockPostService
	users *MockUserService
	lists *MockMaterialListService
}

// newTestApp wires mocked services through the production router.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	e := echo.New()
	e.Logger.SetOutput(io.Discard)
	renderer, err := view.NewRenderer()
	require.NoError(t, err)
	e.Renderer = renderer

	app := &testApp{
		e:     e,
		auth:  new(MockAuthService),
		posts: new(MockPostService),
		users: new(MockUserService),
		lists: new(MockMaterialListService),
	}

	pages := handler.NewPages(handler.NewFlashes("test-secret", false), auth.CookieOptions{})
	require.NoError(t, router.Register(e, router.Handlers{
		Auth:          handler.NewAuthHandler(pages, app.auth),
		Posts:         handler.NewPostHandler(pages, app.posts),
		Users:         handler.NewUserHandler(pages, app.users),
		MaterialLists: handler.NewMaterialListHandler(pages, app.lists),
	}))

	return app
}

func (a *testApp) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)
	return rec
}

func (a *testApp) assertExpectations(t *testing.T) {
	a.auth.AssertExpectations(t)
	a.posts.AssertExpectations(t)
	a.users.AssertExpectations(t)
	a.lists.AssertExpectations(t)
}

// tokenFor builds a token the way the backend does; the signature is never checked.
func tokenFor(t *testing.T, id int64, name string, role model.Role) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		UserID: id,
		Name:   name,
		Email:  strings.ToLower(name) + "@uc.br",
		Role:   role,
	}).SignedString([]byte("backend-secret"))
	require.NoError(t, err)
	return token
}

func sessionCookie(t *testing.T, id int64, role model.Role) *http.Cookie {
	return &http.Cookie{Name: auth.TokenCookie, Value: tokenFor(t, id, "Ana", role)}
}

func get(target string, cookies ...*http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

func postForm(target string, values url.Values, cookies ...*http.Cookie) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(values.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

type testFile struct {
	name string
	data []byte
}

func postMultipart(t *testing.T, target string, values url.Values, files []testFile, cookies ...*http.Cookie) *http.Request {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, vs := range values {
		for _, v := range vs {
			require.NoError(t, w.WriteField(k, v))
		}
	}
	for _, f := range files {
		part, err := w.CreateFormFile("pictures", f.name)
		require.NoError(t, err)
		_, err = part.Write(f.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return req
}

// cookie returns the named cookie set by rec, or nil.
func cookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}
