package view

import "sharehub/internal/model"

// ConfirmModal is the yes/no dialog placed in front of destructive actions.
// ConfirmAction is the form target posted on confirmation.
type ConfirmModal struct {
	Open          bool
	Title         string
	Message       string
	ConfirmAction string
	CancelHref    string
}

const confirmTitle = "Confirmar Deleção"

// ConfirmDeleteAccount asks before removing the user's account.
func ConfirmDeleteAccount(action, cancel string) ConfirmModal {
	return newConfirm("Tem certeza que deseja deletar sua conta?", action, cancel)
}

// ConfirmDeletePost asks before removing a listing.
func ConfirmDeletePost(action, cancel string) ConfirmModal {
	return newConfirm("Tem certeza que deseja deletar este anúncio?", action, cancel)
}

// ConfirmDeleteMaterialList asks before removing a material list.
func ConfirmDeleteMaterialList(action, cancel string) ConfirmModal {
	return newConfirm("Tem certeza que deseja deletar esta lista?", action, cancel)
}

func newConfirm(message, action, cancel string) ConfirmModal {
	return ConfirmModal{
		Open:          true,
		Title:         confirmTitle,
		Message:       message,
		ConfirmAction: action,
		CancelHref:    cancel,
	}
}

// SellerModal shows the contact details of a listing's owner.
type SellerModal struct {
	Open       bool
	Name       string
	Phone      string
	Email      string
	CancelHref string
}

// NewSellerModal opens the contact dialog for seller.
func NewSellerModal(seller model.User, cancel string) SellerModal {
	return SellerModal{
		Open:       true,
		Name:       seller.Name,
		Phone:      seller.Phone,
		Email:      seller.Email,
		CancelHref: cancel,
	}
}
