package view

// Toast kinds.
const (
	ToastSuccess = "success"
	ToastError   = "error"
)

// Toast is a short notification rendered at the top of a page.
type Toast struct {
	Kind    string
	Message string
}

// Page is the data every template receives. Content holds the page-specific
// view model.
type Page struct {
	Title   string
	Nav     Nav
	Toasts  []Toast
	Content any
}
