package handler

import (
	"encoding/gob"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"

	"sharehub/internal/view"
)

// FlashCookie carries toasts across a redirect.
const FlashCookie = "sharehub_flash"

func init() {
	gob.Register(view.Toast{})
}

// Flashes stores one-shot toasts in a signed cookie session.
type Flashes struct {
	store *sessions.CookieStore
}

// NewFlashes creates a flash store signed with secret.
func NewFlashes(secret string, secure bool) *Flashes {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Flashes{store: store}
}

// Add queues a toast for the next rendered page.
func (f *Flashes) Add(c echo.Context, kind, message string) {
	s, _ := f.store.Get(c.Request(), FlashCookie)
	s.AddFlash(view.Toast{Kind: kind, Message: message})
	if err := s.Save(c.Request(), c.Response()); err != nil {
		c.Logger().Errorf("save flash: %v", err)
	}
}

// Pop returns and clears the queued toasts.
func (f *Flashes) Pop(c echo.Context) []view.Toast {
	s, err := f.store.Get(c.Request(), FlashCookie)
	if err != nil {
		return nil
	}
	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}
	if err := s.Save(c.Request(), c.Response()); err != nil {
		c.Logger().Errorf("save flash: %v", err)
	}

	toasts := make([]view.Toast, 0, len(raw))
	for _, v := range raw {
		if t, ok := v.(view.Toast); ok {
			toasts = append(toasts, t)
		}
	}
	return toasts
}

// Clear expires the flash cookie.
func (f *Flashes) Clear(c echo.Context) {
	s, _ := f.store.Get(c.Request(), FlashCookie)
	s.Options = &sessions.Options{Path: "/", MaxAge: -1}
	if err := s.Save(c.Request(), c.Response()); err != nil {
		c.Logger().Errorf("clear flash: %v", err)
	}
}
