package handler

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "sharehub/internal/errors"
	"sharehub/internal/model"
	"sharehub/internal/upload"
)

var registrationPattern = regexp.MustCompile(`^UC\d{8}$`)

// RegisterValidations installs the form rules used by the page handlers.
func RegisterValidations(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "" || name == "-" {
			return strings.ToLower(f.Name)
		}
		return name
	})

	rules := map[string]validator.Func{
		"registration": func(fl validator.FieldLevel) bool {
			return registrationPattern.MatchString(strings.TrimSpace(fl.Field().String()))
		},
		"price": func(fl validator.FieldLevel) bool {
			_, err := model.ParsePrice(fl.Field().String())
			return err == nil
		},
		"category": func(fl validator.FieldLevel) bool {
			return model.IsCategory(fl.Field().String())
		},
		"condition": func(fl validator.FieldLevel) bool {
			return model.IsCondition(fl.Field().String())
		},
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s: %w", tag, err)
		}
	}
	return nil
}

// FieldErrors maps input names to the message shown next to them.
type FieldErrors map[string]string

// Has reports whether name failed validation.
func (fe FieldErrors) Has(name string) bool {
	_, ok := fe[name]
	return ok
}

// fieldErrors converts validator output into FieldErrors. Other errors are
// reported under the empty key.
func fieldErrors(err error) FieldErrors {
	out := FieldErrors{}
	if err == nil {
		return out
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out[""] = "Dados inválidos"
		return out
	}
	for _, fe := range verrs {
		key := fe.Namespace()
		if i := strings.Index(key, "."); i >= 0 {
			key = key[i+1:]
		}
		if _, seen := out[key]; !seen {
			out[key] = message(fe)
		}
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Campo obrigatório"
	case "email":
		return "Email inválido"
	case "registration":
		return "Formato incorreto. Exemplo: UC12345678"
	case "numeric":
		return "Apenas números"
	case "max":
		return "Máximo de " + fe.Param() + " caracteres"
	case "min":
		if fe.Kind() == reflect.String {
			return "Mínimo de " + fe.Param() + " caracteres"
		}
		return "Valor mínimo: " + fe.Param()
	case "lte":
		return "Valor máximo: " + fe.Param()
	case "price":
		return "Preço inválido. Exemplo: 1.234,50"
	case "category", "condition", "oneof":
		return "Selecione uma opção"
	default:
		return "Valor inválido"
	}
}

func pictureMessage(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrNoPictures):
		return "Selecione ao menos uma imagem"
	case errors.Is(err, apperrors.ErrUnsupportedPicture):
		return fmt.Sprintf("Use imagens PNG ou JPEG de até %s", upload.FormatBytes(upload.MaxPictureSize))
	default:
		return "Não foi possível ler as imagens"
	}
}

type loginForm struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

type registerForm struct {
	Name         string `form:"name" validate:"required,max=100"`
	Email        string `form:"email" validate:"required,email,max=100"`
	Registration string `form:"registration" validate:"required,registration"`
	Role         string `form:"type" validate:"required,oneof=STUDENT TEACHER"`
	Password     string `form:"password" validate:"required,min=6"`
	Phone        string `form:"phone" validate:"omitempty,numeric,max=11"`
}

func (f registerForm) registration() model.Registration {
	return model.Registration{
		Name:         f.Name,
		Email:        f.Email,
		Registration: f.Registration,
		Role:         model.Role(f.Role),
		Password:     f.Password,
		Phone:        f.Phone,
	}
}

type forgotPasswordForm struct {
	Email string `form:"email" validate:"required,email"`
}

type profileForm struct {
	Name         string `form:"name" validate:"required,max=100"`
	Email        string `form:"email" validate:"required,email,max=100"`
	Registration string `form:"registration" validate:"required,registration"`
	Phone        string `form:"phone" validate:"omitempty,numeric,max=11"`
}

func newProfileForm(u model.User) profileForm {
	return profileForm{Name: u.Name, Email: u.Email, Registration: u.Registration, Phone: u.Phone}
}

func (f profileForm) update() model.UserUpdate {
	return model.UserUpdate{Name: f.Name, Email: f.Email, Registration: f.Registration, Phone: f.Phone}
}

type productForm struct {
	Title       string `form:"title" validate:"required,max=100"`
	Description string `form:"description" validate:"required,max=250"`
	Price       string `form:"price" validate:"required,price"`
	Category    string `form:"category" validate:"required,category"`
	Condition   string `form:"condition" validate:"required,condition"`
}

func newProductForm(p model.Product) productForm {
	return productForm{
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Condition:   p.Condition,
	}
}

func (f productForm) product() model.Product {
	return model.Product{
		Title:       strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
		Price:       f.Price,
		Category:    f.Category,
		Condition:   f.Condition,
	}
}

type itemForm struct {
	Name        string `form:"name" validate:"required,max=100"`
	Description string `form:"description" validate:"max=250"`
	Mandatory   bool   `form:"mandatory"`
}

type materialListForm struct {
	Semester   int        `form:"semester" validate:"required,min=1,lte=12"`
	Discipline string     `form:"discipline" validate:"required,max=100"`
	Active     bool       `form:"active"`
	Items      []itemForm `form:"-" validate:"dive"`
}

func newMaterialListForm(l model.MaterialList) materialListForm {
	f := materialListForm{Semester: l.Semester, Discipline: l.Discipline, Active: l.Active}
	for _, it := range l.Items {
		f.Items = append(f.Items, itemForm(it))
	}
	return f
}

func (f materialListForm) input() model.MaterialListInput {
	in := model.MaterialListInput{Semester: f.Semester, Discipline: f.Discipline, Active: f.Active}
	for _, it := range f.Items {
		in.Items = append(in.Items, model.MaterialItem(it))
	}
	return in
}
