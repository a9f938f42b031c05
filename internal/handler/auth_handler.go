package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "sharehub/internal/errors"
	"sharehub/internal/service"
	"sharehub/internal/view"
)

// AuthHandler serves the sign-in, sign-up and password reset pages.
type AuthHandler struct {
	*Pages
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(pages *Pages, authService service.AuthService) *AuthHandler {
	return &AuthHandler{Pages: pages, authService: authService}
}

type authContent struct {
	Form   any
	Errors FieldErrors
}

// ShowLogin renders the sign-in form.
func (h *AuthHandler) ShowLogin(c echo.Context) error {
	return h.render(c, http.StatusOK, "login", "Acessar conta", authContent{Form: loginForm{}, Errors: FieldErrors{}})
}

// Login exchanges the credentials for a token and stores it in the browser.
func (h *AuthHandler) Login(c echo.Context) error {
	var form loginForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	if err := c.Validate(&form); err != nil {
		return h.render(c, http.StatusUnprocessableEntity, "login", "Acessar conta",
			authContent{Form: loginForm{Email: form.Email}, Errors: fieldErrors(err)})
	}

	token, err := h.authService.Login(c.Request().Context(), form.Email, form.Password)
	if err != nil {
		c.Logger().Warnf("login %s: %v", form.Email, err)
		return h.render(c, http.StatusOK, "login", "Acessar conta",
			authContent{Form: loginForm{Email: form.Email}, Errors: FieldErrors{}},
			errorToast(apperrors.Describe(apperrors.OpLogin, err)))
	}

	h.Cookies.SetToken(c, token)
	return h.redirect(c, "/", view.ToastSuccess, "Login realizado com sucesso!")
}

// ShowRegister renders the sign-up form.
func (h *AuthHandler) ShowRegister(c echo.Context) error {
	return h.render(c, http.StatusOK, "register", "Crie uma nova conta",
		authContent{Form: registerForm{Role: "STUDENT"}, Errors: FieldErrors{}})
}

// Register creates the account, then signs the user in.
func (h *AuthHandler) Register(c echo.Context) error {
	var form registerForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	if err := c.Validate(&form); err != nil {
		form.Password = ""
		return h.render(c, http.StatusUnprocessableEntity, "register", "Crie uma nova conta",
			authContent{Form: form, Errors: fieldErrors(err)})
	}

	token, err := h.authService.Register(c.Request().Context(), form.registration())
	if err != nil {
		c.Logger().Warnf("register %s: %v", form.Email, err)
		form.Password = ""
		return h.render(c, http.StatusOK, "register", "Crie uma nova conta",
			authContent{Form: form, Errors: FieldErrors{}},
			errorToast(apperrors.Describe(apperrors.OpRegister, err)))
	}

	h.Cookies.SetToken(c, token)
	return h.redirect(c, "/", view.ToastSuccess, "Conta criada com sucesso!")
}

// ShowForgotPassword renders the password reset form.
func (h *AuthHandler) ShowForgotPassword(c echo.Context) error {
	return h.render(c, http.StatusOK, "forgot_password", "Redefinir senha",
		authContent{Form: forgotPasswordForm{}, Errors: FieldErrors{}})
}

// ForgotPassword asks the backend to e-mail a temporary password.
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var form forgotPasswordForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}

	if err := c.Validate(&form); err != nil {
		return h.render(c, http.StatusUnprocessableEntity, "forgot_password", "Redefinir senha",
			authContent{Form: form, Errors: fieldErrors(err)})
	}

	if err := h.authService.ForgotPassword(c.Request().Context(), form.Email); err != nil {
		c.Logger().Warnf("forgot password %s: %v", form.Email, err)
		return h.render(c, http.StatusOK, "forgot_password", "Redefinir senha",
			authContent{Form: form, Errors: FieldErrors{}},
			errorToast(apperrors.Describe(apperrors.OpForgotPassword, err)))
	}

	return h.redirect(c, "/", view.ToastSuccess, "Email enviado")
}

// Logout forgets the token and any queued toasts.
func (h *AuthHandler) Logout(c echo.Context) error {
	h.Cookies.ClearToken(c)
	h.Flashes.Clear(c)
	return c.Redirect(http.StatusSeeOther, "/")
}
