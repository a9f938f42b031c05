package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"sharehub/internal/auth"
	apperrors "sharehub/internal/errors"
	"sharehub/internal/view"
)

// Pages holds what every page handler needs to render and redirect.
type Pages struct {
	Flashes *Flashes
	Cookies auth.CookieOptions
}

// NewPages creates the shared page helpers.
func NewPages(flashes *Flashes, cookies auth.CookieOptions) *Pages {
	return &Pages{Flashes: flashes, Cookies: cookies}
}

// render wraps content in the layout with the navigation bar and any pending toasts.
func (p *Pages) render(c echo.Context, status int, name, title string, content any, toasts ...view.Toast) error {
	page := view.Page{
		Title:   title,
		Nav:     view.BuildNav(auth.Current(c), c.Request().URL.Path),
		Toasts:  append(p.Flashes.Pop(c), toasts...),
		Content: content,
	}
	return c.Render(status, name, page)
}

// redirect sends the browser to path, showing message there when set.
func (p *Pages) redirect(c echo.Context, path, kind, message string) error {
	if message != "" {
		p.Flashes.Add(c, kind, message)
	}
	return c.Redirect(http.StatusSeeOther, path)
}

func successToast(message string) view.Toast {
	return view.Toast{Kind: view.ToastSuccess, Message: message}
}

func errorToast(message string) view.Toast {
	return view.Toast{Kind: view.ToastError, Message: message}
}

// pathID parses the :id route parameter. Malformed ids are a 404.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.ErrNotFound
	}
	return id, nil
}

// queryID parses an id carried in a query parameter such as ?excluir=.
func queryID(c echo.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.QueryParam(name), 10, 64)
	return id, err == nil && id > 0
}

// queryInt parses an index query parameter, defaulting to 0.
func queryInt(c echo.Context, name string) int {
	n, err := strconv.Atoi(c.QueryParam(name))
	if err != nil {
		return 0
	}
	return n
}

// logLoadError logs a failed page load. A missing record is a stale link, not a fault.
func logLoadError(c echo.Context, err error, format string, args ...any) {
	args = append(args, err)
	if apperrors.IsStatus(err, http.StatusNotFound) {
		c.Logger().Warnf(format+": %v", args...)
		return
	}
	c.Logger().Errorf(format+": %v", args...)
}
