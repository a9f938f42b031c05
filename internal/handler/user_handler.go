package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"sharehub/internal/auth"
	apperrors "sharehub/internal/errors"
	"sharehub/internal/service"
	"sharehub/internal/view"
)

// UserHandler serves the profile page.
type UserHandler struct {
	*Pages
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(pages *Pages, userService service.UserService) *UserHandler {
	return &UserHandler{Pages: pages, userService: userService}
}

type profileContent struct {
	UserID  int64
	Form    profileForm
	Errors  FieldErrors
	Own     bool
	Editing bool
	Confirm view.ConfirmModal
}

// Show renders a user's profile. The owner can switch to edit mode with
// ?editar=1 and open the delete dialog with ?excluir=1.
func (h *UserHandler) Show(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	user, err := h.userService.Get(c.Request().Context(), id)
	if err != nil {
		logLoadError(c, err, "profile %d", id)
		return h.redirect(c, "/", view.ToastError, apperrors.Describe(apperrors.OpLoadUser, err))
	}

	own := auth.Current(c).Owns(id)
	content := profileContent{
		UserID:  id,
		Form:    newProfileForm(*user),
		Errors:  FieldErrors{},
		Own:     own,
		Editing: own && c.QueryParam("editar") != "",
	}
	if own && c.QueryParam("excluir") != "" {
		self := fmt.Sprintf("/cadastro/%d", id)
		content.Confirm = view.ConfirmDeleteAccount(self+"/excluir", self)
	}
	return h.render(c, http.StatusOK, "profile", "Perfil do Usuário", content)
}

// Update saves the profile and stores the token reissued for it.
func (h *UserHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if !auth.Current(c).Owns(id) {
		return echo.ErrForbidden
	}

	var form profileForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	content := profileContent{UserID: id, Form: form, Own: true, Editing: true}

	if err := c.Validate(&form); err != nil {
		content.Errors = fieldErrors(err)
		return h.render(c, http.StatusUnprocessableEntity, "profile", "Perfil do Usuário", content)
	}

	token, err := h.userService.Update(c.Request().Context(), id, form.update())
	if err != nil {
		c.Logger().Errorf("update user %d: %v", id, err)
		content.Errors = FieldErrors{}
		return h.render(c, http.StatusOK, "profile", "Perfil do Usuário", content,
			errorToast(apperrors.Describe(apperrors.OpUpdateUser, err)))
	}

	if token != "" {
		h.Cookies.SetToken(c, token)
	}
	return h.redirect(c, fmt.Sprintf("/cadastro/%d", id), view.ToastSuccess, "Informações atualizadas com sucesso!")
}

// Delete removes the account when it owns no posts, then signs out.
func (h *UserHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if !auth.Current(c).Owns(id) {
		return echo.ErrForbidden
	}
	self := fmt.Sprintf("/cadastro/%d", id)

	if err := h.userService.Delete(c.Request().Context(), id); err != nil {
		if !errors.Is(err, apperrors.ErrActivePosts) {
			c.Logger().Errorf("delete user %d: %v", id, err)
		}
		return h.redirect(c, self, view.ToastError, apperrors.Describe(apperrors.OpDeleteUser, err))
	}

	h.Cookies.ClearToken(c)
	return h.redirect(c, "/", view.ToastSuccess, "Conta deletada com sucesso!")
}
