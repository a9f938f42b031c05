package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrActivePosts is returned when an account still owns listings and cannot be deleted.
	ErrActivePosts = errors.New("user has active posts")
	// ErrNoPostID is returned when the backend creates a post without returning its id.
	ErrNoPostID = errors.New("created post has no id")
	// ErrPicturesNotSaved is returned when a post was created but its pictures failed to upload.
	ErrPicturesNotSaved = errors.New("pictures not saved")
	// ErrNoPendingPictures is returned when a retry is requested for a post with nothing parked.
	ErrNoPendingPictures = errors.New("no pending pictures")
	// ErrNoPictures is returned when an image selection is empty.
	ErrNoPictures = errors.New("no pictures selected")
	// ErrUnsupportedPicture is returned when a selected file is not png or jpeg.
	ErrUnsupportedPicture = errors.New("unsupported picture type")
)

// ErrorResponse is the error body returned by the backend. Message is either
// a string or a list of validation messages.
type ErrorResponse struct {
	Error   string          `json:"error"`
	Message json.RawMessage `json:"message"`
	Code    string          `json:"code"`
}

// Text returns the message as one string, falling back to Error.
func (r ErrorResponse) Text() string {
	var message string
	if json.Unmarshal(r.Message, &message) == nil {
		return message
	}
	var list []string
	if json.Unmarshal(r.Message, &list) == nil {
		return strings.Join(list, "; ")
	}
	return r.Error
}

// HTTPError converts the body into the error for a response with statusCode.
func (r ErrorResponse) HTTPError(statusCode int) *HTTPError {
	return NewHTTPError(statusCode, r.Text(), r.Code)
}

// HTTPError represents a non-2xx answer from the backend.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend returned %d", e.StatusCode)
	}
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, e.Message)
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// StatusCode returns the backend status carried by err, or 0 for transport errors.
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}

// IsStatus reports whether err is an HTTPError with the given status.
func IsStatus(err error, status int) bool {
	return StatusCode(err) == status
}

// Operation identifies a user action for message lookup.
type Operation string

const (
	OpLogin           Operation = "login"
	OpRegister        Operation = "register"
	OpForgotPassword  Operation = "forgot_password"
	OpListPosts       Operation = "list_posts"
	OpLoadPost        Operation = "load_post"
	OpCreatePost      Operation = "create_post"
	OpUpdatePost      Operation = "update_post"
	OpDeletePost      Operation = "delete_post"
	OpUploadPictures  Operation = "upload_pictures"
	OpLoadUser        Operation = "load_user"
	OpUpdateUser      Operation = "update_user"
	OpDeleteUser      Operation = "delete_user"
	OpListMaterials   Operation = "list_material_lists"
	OpLoadMaterials   Operation = "load_material_list"
	OpCreateMaterials Operation = "create_material_list"
	OpUpdateMaterials Operation = "update_material_list"
	OpDeleteMaterials Operation = "delete_material_list"
)

type messages struct {
	unauthorized string
	notFound     string
	server       string
	fallback     string
	// useBackend prefers the backend's message over fallback for client errors.
	useBackend bool
}

var catalog = map[Operation]messages{
	OpLogin: {
		unauthorized: "Não autorizado. Verifique seu email e senha",
		server:       "Erro interno do servidor. Tente novamente mais tarde",
		fallback:     "Falha ao acessar a conta",
	},
	OpRegister: {
		server:     "Erro interno do servidor. Tente novamente mais tarde",
		fallback:   "Falha ao criar conta",
		useBackend: true,
	},
	OpForgotPassword: {
		unauthorized: "Não autorizado. Cheque o email",
		server:       "Erro interno",
		fallback:     "Falha ao enviar email",
	},
	OpListPosts:       {fallback: "Erro ao carregar anúncios"},
	OpLoadPost:        {notFound: "Anúncio não encontrado", fallback: "Erro ao carregar anúncio"},
	OpCreatePost:      {fallback: "Erro ao criar anúncio!"},
	OpUpdatePost:      {fallback: "Erro ao atualizar anúncio!"},
	OpDeletePost:      {fallback: "Erro ao deletar anúncio!"},
	OpUploadPictures:  {fallback: "Erro ao salvar imagens do anúncio!"},
	OpLoadUser:        {notFound: "Usuário não encontrado", fallback: "Erro ao carregar informações!"},
	OpUpdateUser:      {fallback: "Erro ao atualizar informações!"},
	OpDeleteUser:      {fallback: "Erro ao deletar conta!"},
	OpListMaterials:   {fallback: "Erro ao carregar listas de material"},
	OpLoadMaterials:   {notFound: "Lista de material não encontrada", fallback: "Erro ao carregar lista de material"},
	OpCreateMaterials: {fallback: "Erro ao cadastrar lista de material"},
	OpUpdateMaterials: {fallback: "Erro ao atualizar lista de material"},
	OpDeleteMaterials: {fallback: "Erro ao remover lista de material"},
}

// Describe maps an error raised during op to the localized message shown to the user.
func Describe(op Operation, err error) string {
	if errors.Is(err, ErrActivePosts) {
		return "Usuário possui anúncios ativos!"
	}
	if errors.Is(err, ErrPicturesNotSaved) {
		return catalog[OpUploadPictures].fallback
	}

	m, ok := catalog[op]
	if !ok {
		return "Erro inesperado"
	}

	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		return m.fallback
	}
	switch status := StatusCode(err); {
	case status == http.StatusUnauthorized && m.unauthorized != "":
		return m.unauthorized
	case IsStatus(err, http.StatusNotFound) && m.notFound != "":
		return m.notFound
	case status >= http.StatusInternalServerError && m.server != "":
		return m.server
	case m.useBackend && httpErr.Message != "":
		return httpErr.Message
	default:
		return m.fallback
	}
}
