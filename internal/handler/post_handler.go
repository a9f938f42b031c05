package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"sharehub/internal/auth"
	apperrors "sharehub/internal/errors"
	"sharehub/internal/model"
	"sharehub/internal/service"
	"sharehub/internal/upload"
	"sharehub/internal/view"
)

// PostHandler serves the listing pages.
type PostHandler struct {
	*Pages
	postService service.PostService
}

// NewPostHandler creates a new post handler.
func NewPostHandler(pages *Pages, postService service.PostService) *PostHandler {
	return &PostHandler{Pages: pages, postService: postService}
}

type postCard struct {
	Post     model.Post
	Cover    view.Slide
	HasCover bool
	Manage   bool
	Pending  bool
}

type homeContent struct {
	Posts  []postCard
	Seller view.SellerModal
}

type postContent struct {
	Post        model.Post
	Carousel    view.Carousel
	ContactHref string
	Seller      view.SellerModal
	CanEdit     bool
}

type myPostsContent struct {
	OwnerID int64
	Own     bool
	Posts   []postCard
	Confirm view.ConfirmModal
}

type postFormContent struct {
	Heading     string
	Action      string
	Editing     bool
	Form        productForm
	Errors      FieldErrors
	Categories  []model.Option
	Conditions  []model.Option
	MaxPictures int
	MaxSize     int64
}

func newPostCard(p model.Post) postCard {
	card := postCard{Post: p}
	if len(p.Pictures) > 0 {
		card.Cover = view.NewCarousel(p.Pictures, 0).Current()
		card.HasCover = true
	}
	return card
}

// Home lists every published post.
func (h *PostHandler) Home(c echo.Context) error {
	var toasts []view.Toast
	posts, err := h.postService.List(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("home: %v", err)
		toasts = append(toasts, errorToast(apperrors.Describe(apperrors.OpListPosts, err)))
	}

	content := homeContent{Posts: make([]postCard, 0, len(posts))}
	for _, p := range posts {
		content.Posts = append(content.Posts, newPostCard(p))
	}
	if id, ok := queryID(c, "contato"); ok {
		for _, p := range posts {
			if p.ID == id {
				content.Seller = view.NewSellerModal(p.User, "/")
				break
			}
		}
	}
	return h.render(c, http.StatusOK, "home", "", content, toasts...)
}

// Show renders one post with its pictures.
func (h *PostHandler) Show(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	post, err := h.postService.Get(c.Request().Context(), id)
	if err != nil {
		logLoadError(c, err, "show post %d", id)
		return h.redirect(c, "/", view.ToastError, apperrors.Describe(apperrors.OpLoadPost, err))
	}

	base := fmt.Sprintf("/anuncio/%d", id)
	carousel := view.NewCarousel(post.Pictures, queryInt(c, "foto")).WithBase(base)
	content := postContent{
		Post:        *post,
		Carousel:    carousel,
		ContactHref: fmt.Sprintf("%s?contato=1&foto=%d", base, carousel.Active()),
		CanEdit:     auth.Current(c).Owns(post.User.ID),
	}
	if c.QueryParam("contato") != "" {
		content.Seller = view.NewSellerModal(post.User, fmt.Sprintf("%s?foto=%d", base, carousel.Active()))
	}
	return h.render(c, http.StatusOK, "post", post.Product.Title, content)
}

// ListByUser renders the posts of one user. The owner gets edit, delete and
// picture retry controls.
func (h *PostHandler) ListByUser(c echo.Context) error {
	userID, err := pathID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	own := auth.Current(c).Owns(userID)

	var toasts []view.Toast
	posts, err := h.postService.ListByUser(ctx, userID)
	if err != nil {
		c.Logger().Errorf("posts of user %d: %v", userID, err)
		toasts = append(toasts, errorToast(apperrors.Describe(apperrors.OpListPosts, err)))
	}

	content := myPostsContent{OwnerID: userID, Own: own, Posts: make([]postCard, 0, len(posts))}
	for _, p := range posts {
		card := newPostCard(p)
		if own {
			card.Manage = true
			card.Pending = h.postService.HasPendingPictures(ctx, p.ID)
		}
		content.Posts = append(content.Posts, card)
	}
	if id, ok := queryID(c, "excluir"); ok && own {
		content.Confirm = view.ConfirmDeletePost(fmt.Sprintf("/anuncio/%d/excluir", id), c.Request().URL.Path)
	}
	return h.render(c, http.StatusOK, "my_posts", "Meus anúncios", content, toasts...)
}

func (h *PostHandler) formContent(heading, action string, editing bool, form productForm, errs FieldErrors) postFormContent {
	return postFormContent{
		Heading:     heading,
		Action:      action,
		Editing:     editing,
		Form:        form,
		Errors:      errs,
		Categories:  model.Categories(),
		Conditions:  model.Conditions(),
		MaxPictures: upload.MaxPictures,
		MaxSize:     upload.MaxPictureSize,
	}
}

// New renders the empty listing form.
func (h *PostHandler) New(c echo.Context) error {
	content := h.formContent("Anunciar equipamento médico", "/anunciar", false, productForm{}, FieldErrors{})
	return h.render(c, http.StatusOK, "post_form", "Anunciar", content)
}

// LimitUpload bounds the listing request body. A request over the limit gets
// the form back with a toast instead of a bare 413.
func (h *PostHandler) LimitUpload(next echo.HandlerFunc) echo.HandlerFunc {
	limited := middleware.BodyLimitWithConfig(middleware.BodyLimitConfig{Limit: upload.BodyLimit})(next)
	return func(c echo.Context) error {
		err := limited(c)
		if errors.Is(err, echo.ErrStatusRequestEntityTooLarge) && !c.Response().Committed {
			c.Logger().Warnf("create post: body of %d bytes over %s", c.Request().ContentLength, upload.BodyLimit)
			return h.renderCreateError(c, http.StatusRequestEntityTooLarge, productForm{},
				"Arquivos muito grandes. Selecione até 2 imagens de até "+upload.FormatBytes(upload.MaxPictureSize))
		}
		return err
	}
}

func (h *PostHandler) renderCreateError(c echo.Context, status int, form productForm, message string) error {
	content := h.formContent("Anunciar equipamento médico", "/anunciar", false, form, FieldErrors{})
	return h.render(c, status, "post_form", "Anunciar", content, errorToast(message))
}

// Create publishes the listing, then uploads its pictures.
func (h *PostHandler) Create(c echo.Context) error {
	s := auth.Current(c)

	var form productForm
	if err := c.Bind(&form); err != nil {
		c.Logger().Warnf("create post: bind: %v", err)
		return h.renderCreateError(c, http.StatusBadRequest, productForm{}, "Não foi possível ler o formulário")
	}
	errs := fieldErrors(c.Validate(&form))

	var pictures []model.UploadFile
	mf, err := c.MultipartForm()
	if err != nil {
		errs["pictures"] = pictureMessage(apperrors.ErrNoPictures)
	} else if pictures, err = upload.Load(mf.File["pictures"]); err != nil {
		errs["pictures"] = pictureMessage(err)
	}

	if len(errs) > 0 {
		content := h.formContent("Anunciar equipamento médico", "/anunciar", false, form, errs)
		return h.render(c, http.StatusUnprocessableEntity, "post_form", "Anunciar", content)
	}

	post, err := h.postService.Create(c.Request().Context(), s.ID, form.product(), pictures)
	switch {
	case err == nil:
		return h.redirect(c, "/", view.ToastSuccess, "Anúncio criado com sucesso!")
	case errors.Is(err, apperrors.ErrPicturesNotSaved):
		c.Logger().Errorf("create post %d: %v", post.ID, err)
		return h.redirect(c, fmt.Sprintf("/anuncios/usuario/%d", s.ID), view.ToastError,
			apperrors.Describe(apperrors.OpUploadPictures, err))
	default:
		c.Logger().Errorf("create post: %v", err)
		return h.renderCreateError(c, http.StatusOK, form, apperrors.Describe(apperrors.OpCreatePost, err))
	}
}

// Edit renders the listing form filled with the current product.
func (h *PostHandler) Edit(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	post, err := h.postService.Get(c.Request().Context(), id)
	if err != nil {
		c.Logger().Errorf("edit post %d: %v", id, err)
		return h.redirect(c, "/", view.ToastError, apperrors.Describe(apperrors.OpLoadPost, err))
	}
	if !auth.Current(c).Owns(post.User.ID) {
		return echo.ErrForbidden
	}

	content := h.formContent("Editar anúncio", fmt.Sprintf("/anuncio/%d/editar", id), true, newProductForm(post.Product), FieldErrors{})
	return h.render(c, http.StatusOK, "post_form", "Editar anúncio", content)
}

// Update saves the edited product.
func (h *PostHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	s := auth.Current(c)
	action := fmt.Sprintf("/anuncio/%d/editar", id)

	var form productForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	if err := c.Validate(&form); err != nil {
		content := h.formContent("Editar anúncio", action, true, form, fieldErrors(err))
		return h.render(c, http.StatusUnprocessableEntity, "post_form", "Editar anúncio", content)
	}

	if _, err := h.postService.Update(c.Request().Context(), id, form.product()); err != nil {
		c.Logger().Errorf("update post %d: %v", id, err)
		content := h.formContent("Editar anúncio", action, true, form, FieldErrors{})
		return h.render(c, http.StatusOK, "post_form", "Editar anúncio", content,
			errorToast(apperrors.Describe(apperrors.OpUpdatePost, err)))
	}
	return h.redirect(c, fmt.Sprintf("/anuncios/usuario/%d", s.ID), view.ToastSuccess, "Anúncio atualizado com sucesso!")
}

// Delete removes a listing and returns to the owner's listings.
func (h *PostHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	back := fmt.Sprintf("/anuncios/usuario/%d", auth.Current(c).ID)

	if err := h.postService.Delete(c.Request().Context(), id); err != nil {
		c.Logger().Errorf("delete post %d: %v", id, err)
		return h.redirect(c, back, view.ToastError, apperrors.Describe(apperrors.OpDeletePost, err))
	}
	return h.redirect(c, back, view.ToastSuccess, "Anúncio deletado com sucesso!")
}

// RetryPictures re-sends pictures whose upload failed when the post was created.
func (h *PostHandler) RetryPictures(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	back := fmt.Sprintf("/anuncios/usuario/%d", auth.Current(c).ID)

	if err := h.postService.RetryPictures(c.Request().Context(), id); err != nil {
		c.Logger().Errorf("retry pictures of post %d: %v", id, err)
		if errors.Is(err, apperrors.ErrNoPendingPictures) {
			return h.redirect(c, back, view.ToastError, "Nenhuma imagem pendente para este anúncio")
		}
		return h.redirect(c, back, view.ToastError, apperrors.Describe(apperrors.OpUploadPictures, err))
	}
	return h.redirect(c, back, view.ToastSuccess, "Imagens salvas com sucesso!")
}
