// Package html renders the server-side storefront pages.
package html

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/labstack/echo/v4"

	"obracalc.GO/api"
	coreAuth "obracalc.GO/core/auth"
	parts "obracalc.GO/html/parts"
)

type Template struct {
	Templates *template.Template
}

func (t *Template) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.Templates.ExecuteTemplate(w, name, data)
}

// NewRenderer parses the page templates with the shared helpers.
func NewRenderer(glob string) *Template {
	return &Template{
		Templates: template.Must(template.New("").Funcs(TemplateFuncs()).ParseGlob(glob)),
	}
}

// TemplateFuncs returns the FuncMap shared by all page templates.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"add": func(a, b int) int { return a + b },
		"sub": func(a, b int) int { return a - b },
		"kg": func(v float64) string {
			return strings.Replace(fmt.Sprintf("%.2f", v), ".", ",", 1) + " kg"
		},
		"decimal": func(v float64) string {
			s := fmt.Sprintf("%g", v)
			return strings.Replace(s, ".", ",", 1)
		},
	}
}

// viewData builds the fields every page template expects.
func viewData(c echo.Context, deps *api.Deps, title string) map[string]interface{} {
	sess := coreAuth.CurrentSession(c)
	cartCount := 0
	if deps.Carts != nil {
		cartCount = deps.Carts.ForSession(coreAuth.SessionID(c)).Len()
	}
	criticalCSS, err := parts.GetCriticalCSSCached()
	if err != nil {
		criticalCSS = ""
	}
	return map[string]interface{}{
		"Title":       title,
		"AppName":     "ObraCalc",
		"User":        sess.User,
		"Anonymous":   sess.Anonymous(),
		"AuthEnabled": deps.Auth.Enabled(),
		"CartCount":   cartCount,
		"CriticalCSS": template.CSS(criticalCSS),
	}
}
