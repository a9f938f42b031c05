package view

import (
	"fmt"
	"strings"

	"sharehub/internal/auth"
)

// Link is one entry of the navigation bar. Method is "post" for entries that
// must be submitted as a form.
type Link struct {
	Label  string
	Href   string
	Method string
	Active bool
}

// Nav is the role-aware top bar shown on every page.
type Nav struct {
	Sections  []Link
	Primary   Link
	ShowLogin bool
	UserName  string
	UserMenu  []Link
}

// LoggedIn reports whether the user menu is shown.
func (n Nav) LoggedIn() bool {
	return len(n.UserMenu) > 0
}

// BuildNav derives the navigation bar for the current path and session.
func BuildNav(s *auth.Session, path string) Nav {
	nav := Nav{
		Sections: []Link{
			{Label: "Produtos", Href: "/", Active: path == "/" || strings.HasPrefix(path, "/anuncio/")},
			{Label: "Listas de material", Href: "/listas-material", Active: strings.HasPrefix(path, "/listas-material")},
		},
	}

	switch {
	case s == nil:
		nav.Primary = Link{Label: "Anunciar", Href: "/login"}
		nav.ShowLogin = true
		return nav
	case s.IsStudent():
		nav.Primary = Link{Label: "Anunciar", Href: "/anunciar"}
	default:
		nav.Primary = Link{Label: "Cadastrar lista", Href: "/criar-lista-material"}
	}
	nav.Primary.Active = path == nav.Primary.Href

	nav.UserName = s.Name
	nav.UserMenu = []Link{
		{Label: "Meu cadastro", Href: fmt.Sprintf("/cadastro/%d", s.ID)},
		{Label: "Meus anúncios", Href: fmt.Sprintf("/anuncios/usuario/%d", s.ID)},
		{Label: "Sair", Href: "/sair", Method: "post"},
	}
	for i := range nav.UserMenu {
		nav.UserMenu[i].Active = nav.UserMenu[i].Href == path
	}
	return nav
}
