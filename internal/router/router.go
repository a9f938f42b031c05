package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"sharehub/internal/auth"
	"sharehub/internal/handler"
	"sharehub/internal/upload"
	"sharehub/internal/view"
)

// Handlers groups the page handlers wired by Register.
type Handlers struct {
	Auth          *handler.AuthHandler
	Posts         *handler.PostHandler
	Users         *handler.UserHandler
	MaterialLists *handler.MaterialListHandler
}

// Register wires routes and middleware.
func Register(e *echo.Echo, h Handlers) error {
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimitWithConfig(middleware.BodyLimitConfig{
		Limit: upload.FormLimit,
		// The listing form carries pictures and has its own limit.
		Skipper: func(c echo.Context) bool {
			return c.Request().Method == http.MethodPost && c.Path() == "/anunciar"
		},
	}))

	// Add validator
	v := validator.New()
	if err := handler.RegisterValidations(v); err != nil {
		return err
	}
	e.Validator = &CustomValidator{validator: v}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.StaticFS("/static", view.Static())

	web := e.Group("", auth.Middleware())

	// Public pages
	web.GET("/", h.Posts.Home)
	web.GET("/anuncio/:id", h.Posts.Show)
	web.GET("/login", h.Auth.ShowLogin)
	web.POST("/login", h.Auth.Login)
	web.GET("/cadastro", h.Auth.ShowRegister)
	web.POST("/cadastro", h.Auth.Register)
	web.GET("/redefinir-senha", h.Auth.ShowForgotPassword)
	web.POST("/redefinir-senha", h.Auth.ForgotPassword)
	web.POST("/sair", h.Auth.Logout)
	web.GET("/listas-material", h.MaterialLists.Index)
	web.GET("/listas-material/:id", h.MaterialLists.Show)

	// Pages that need a signed-in user
	secured := web.Group("", auth.RequireSession)

	secured.GET("/anunciar", h.Posts.New)
	secured.POST("/anunciar", h.Posts.Create, h.Posts.LimitUpload)
	secured.GET("/anuncios/usuario/:id", h.Posts.ListByUser)
	secured.GET("/anuncio/:id/editar", h.Posts.Edit)
	secured.POST("/anuncio/:id/editar", h.Posts.Update)
	secured.POST("/anuncio/:id/excluir", h.Posts.Delete)
	secured.POST("/anuncio/:id/imagens", h.Posts.RetryPictures)

	secured.GET("/cadastro/:id", h.Users.Show)
	secured.POST("/cadastro/:id", h.Users.Update)
	secured.POST("/cadastro/:id/excluir", h.Users.Delete)

	secured.GET("/criar-lista-material", h.MaterialLists.New)
	secured.POST("/criar-lista-material", h.MaterialLists.Create)
	secured.GET("/listas-material/:id/editar", h.MaterialLists.Edit)
	secured.POST("/listas-material/:id/editar", h.MaterialLists.Update)
	secured.POST("/listas-material/:id/excluir", h.MaterialLists.Delete)

	return nil
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
