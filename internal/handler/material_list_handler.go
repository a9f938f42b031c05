package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"sharehub/internal/auth"
	apperrors "sharehub/internal/errors"
	"sharehub/internal/model"
	"sharehub/internal/service"
	"sharehub/internal/view"
)

// MaterialListHandler serves the teacher material list pages.
type MaterialListHandler struct {
	*Pages
	listService service.MaterialListService
}

// NewMaterialListHandler creates a new material list handler.
func NewMaterialListHandler(pages *Pages, listService service.MaterialListService) *MaterialListHandler {
	return &MaterialListHandler{Pages: pages, listService: listService}
}

type materialListRow struct {
	List      model.MaterialList
	CanManage bool
}

type materialListsContent struct {
	Rows    []materialListRow
	Confirm view.ConfirmModal
}

type materialListContent struct {
	List      model.MaterialList
	CanManage bool
	Confirm   view.ConfirmModal
}

type materialListFormContent struct {
	Heading string
	Action  string
	Form    materialListForm
	Errors  FieldErrors
}

// canManage gates edit and delete controls. The backend enforces ownership.
func canManage(s *auth.Session, l model.MaterialList) bool {
	return s.IsTeacher() && s.Owns(l.OwnerID())
}

// Index renders the table of material lists.
func (h *MaterialListHandler) Index(c echo.Context) error {
	s := auth.Current(c)

	var toasts []view.Toast
	lists, err := h.listService.List(c.Request().Context())
	if err != nil {
		c.Logger().Errorf("material lists: %v", err)
		toasts = append(toasts, errorToast(apperrors.Describe(apperrors.OpListMaterials, err)))
	}

	content := materialListsContent{Rows: make([]materialListRow, 0, len(lists))}
	for _, l := range lists {
		row := materialListRow{List: l, CanManage: canManage(s, l)}
		content.Rows = append(content.Rows, row)
		if id, ok := queryID(c, "excluir"); ok && id == l.ID && row.CanManage {
			content.Confirm = view.ConfirmDeleteMaterialList(fmt.Sprintf("/listas-material/%d/excluir", id), "/listas-material")
		}
	}
	return h.render(c, http.StatusOK, "material_lists", "Listas de material", content, toasts...)
}

// Show renders one material list.
func (h *MaterialListHandler) Show(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	list, err := h.listService.Get(c.Request().Context(), id)
	if err != nil {
		logLoadError(c, err, "material list %d", id)
		return h.redirect(c, "/listas-material", view.ToastError, apperrors.Describe(apperrors.OpLoadMaterials, err))
	}

	content := materialListContent{List: *list, CanManage: canManage(auth.Current(c), *list)}
	if content.CanManage && c.QueryParam("excluir") != "" {
		self := fmt.Sprintf("/listas-material/%d", id)
		content.Confirm = view.ConfirmDeleteMaterialList(self+"/excluir", self)
	}
	return h.render(c, http.StatusOK, "material_list", list.Discipline, content)
}

// New renders the empty material list form with one item row.
func (h *MaterialListHandler) New(c echo.Context) error {
	content := materialListFormContent{
		Heading: "Cadastro de Lista de Material",
		Action:  "/criar-lista-material",
		Form:    materialListForm{Active: true, Items: []itemForm{{}}},
		Errors:  FieldErrors{},
	}
	return h.render(c, http.StatusOK, "material_list_form", "Cadastrar lista", content)
}

// Create handles the form: row edits re-render it, a save submits the list.
func (h *MaterialListHandler) Create(c echo.Context) error {
	content := materialListFormContent{Heading: "Cadastro de Lista de Material", Action: "/criar-lista-material"}
	return h.submit(c, content, func(in model.MaterialListInput) error {
		return h.listService.Create(c.Request().Context(), auth.Current(c).ID, in)
	}, apperrors.OpCreateMaterials, "Lista de material cadastrada com sucesso")
}

// Edit renders the form filled with an existing list.
func (h *MaterialListHandler) Edit(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	list, err := h.listService.Get(c.Request().Context(), id)
	if err != nil {
		c.Logger().Errorf("edit material list %d: %v", id, err)
		return h.redirect(c, "/listas-material", view.ToastError, apperrors.Describe(apperrors.OpLoadMaterials, err))
	}
	if !canManage(auth.Current(c), *list) {
		return echo.ErrForbidden
	}

	content := materialListFormContent{
		Heading: "Editar Lista de Material",
		Action:  fmt.Sprintf("/listas-material/%d/editar", id),
		Form:    newMaterialListForm(*list),
		Errors:  FieldErrors{},
	}
	return h.render(c, http.StatusOK, "material_list_form", "Editar lista", content)
}

// Update handles the edit form.
func (h *MaterialListHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	content := materialListFormContent{Heading: "Editar Lista de Material", Action: fmt.Sprintf("/listas-material/%d/editar", id)}
	return h.submit(c, content, func(in model.MaterialListInput) error {
		return h.listService.Update(c.Request().Context(), id, auth.Current(c).ID, in)
	}, apperrors.OpUpdateMaterials, "Lista de material atualizada com sucesso")
}

// Delete removes a material list.
func (h *MaterialListHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.listService.Delete(c.Request().Context(), id); err != nil {
		c.Logger().Errorf("delete material list %d: %v", id, err)
		return h.redirect(c, "/listas-material", view.ToastError, apperrors.Describe(apperrors.OpDeleteMaterials, err))
	}
	return h.redirect(c, "/listas-material", view.ToastSuccess, "Lista de material removida com sucesso")
}

// submit binds the list form. The add_item and remove_item buttons mutate the
// rows and re-render; anything else validates and saves.
func (h *MaterialListHandler) submit(c echo.Context, content materialListFormContent, save func(model.MaterialListInput) error, op apperrors.Operation, success string) error {
	var form materialListForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	form.Items = bindItems(c)
	content.Errors = FieldErrors{}

	in := form.input()
	if c.FormValue("add_item") != "" {
		in.AddItem()
		content.Form = formFromInput(in)
		return h.render(c, http.StatusOK, "material_list_form", content.Heading, content)
	}
	if v := c.FormValue("remove_item"); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			in.RemoveItem(i)
		}
		content.Form = formFromInput(in)
		return h.render(c, http.StatusOK, "material_list_form", content.Heading, content)
	}

	content.Form = form
	if err := c.Validate(&form); err != nil {
		content.Errors = fieldErrors(err)
		return h.render(c, http.StatusUnprocessableEntity, "material_list_form", content.Heading, content)
	}

	if err := save(in); err != nil {
		c.Logger().Errorf("save material list: %v", err)
		return h.render(c, http.StatusOK, "material_list_form", content.Heading, content,
			errorToast(apperrors.Describe(op, err)))
	}
	return h.redirect(c, "/listas-material", view.ToastSuccess, success)
}

// bindItems reads the item rows posted as parallel item_name,
// item_description and item_mandatory fields.
func bindItems(c echo.Context) []itemForm {
	params, err := c.FormParams()
	if err != nil {
		return nil
	}
	names := params["item_name"]
	descriptions := params["item_description"]
	mandatory := params["item_mandatory"]

	items := make([]itemForm, len(names))
	for i := range names {
		items[i].Name = names[i]
		if i < len(descriptions) {
			items[i].Description = descriptions[i]
		}
		if i < len(mandatory) {
			items[i].Mandatory = mandatory[i] == "true"
		}
	}
	return items
}

func formFromInput(in model.MaterialListInput) materialListForm {
	f := materialListForm{Semester: in.Semester, Discipline: in.Discipline, Active: in.Active}
	for _, it := range in.Items {
		f.Items = append(f.Items, itemForm(it))
	}
	return f
}
