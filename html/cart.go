package html

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"

	"obracalc.GO/api"
	"obracalc.GO/cart"
	coreAuth "obracalc.GO/core/auth"
	entity "obracalc.GO/model/entity"
	orderRepo "obracalc.GO/model/repository/order"
	"obracalc.GO/service/estimate"
)

func init() {
	api.RegisterHTMLModule(RegisterCartHTMLRoutes)
}

// RegisterCartHTMLRoutes registers the cart and order pages.
func RegisterCartHTMLRoutes(e *echo.Echo, deps *api.Deps) {
	e.GET("/carrinho", func(c echo.Context) error {
		ledger := deps.Carts.ForSession(coreAuth.SessionID(c))
		data := viewData(c, deps, "Carrinho")
		data["Groups"] = ledger.GroupByArea()
		data["Total"] = ledger.Total()
		data["Empty"] = ledger.Len() == 0
		return c.Render(http.StatusOK, "carrinho.html", data)
	})

	// Add from the calculator result form. The hidden fields carry the
	// espessura/consumo overrides so the stored line matches the quote the
	// user confirmed.
	e.POST("/carrinho/adicionar", func(c echo.Context) error {
		req := quoteRequest(c)
		res, _, err := estimate.Quote(deps.Store, req)
		if err != nil {
			return c.Redirect(http.StatusFound, "/calculadora")
		}

		sid := coreAuth.SessionID(c)
		ledger := deps.Carts.ForSession(sid)
		item, err := ledger.Add(cart.Item{
			ProductID:   req.ProductID,
			ProductName: res.ProductName,
			Quantity:    res.PackageCount,
			Area:        res.Area,
			AreaName:    strings.TrimSpace(c.FormValue("area_nome")),
			TotalAmount: res.RequiredKg,
		})
		if err == nil {
			row := entity.CartLog{
				SessionID:   sid,
				ProductID:   item.ProductID,
				ProductName: item.ProductName,
				Quantity:    item.Quantity,
				Area:        item.Area,
				AreaName:    item.AreaName,
				TotalKg:     item.TotalAmount,
			}
			if sess := coreAuth.CurrentSession(c); !sess.Anonymous() {
				row.UserID = &sess.User.ID
			}
			deps.Mirror.CartAdd(row)
		}
		return c.Redirect(http.StatusFound, "/carrinho")
	})

	e.POST("/carrinho/remover/:id", func(c echo.Context) error {
		deps.Carts.ForSession(coreAuth.SessionID(c)).Remove(c.Param("id"))
		return c.Redirect(http.StatusFound, "/carrinho")
	})

	e.POST("/carrinho/limpar", func(c echo.Context) error {
		deps.Carts.ForSession(coreAuth.SessionID(c)).Clear()
		return c.Redirect(http.StatusFound, "/carrinho")
	})

	e.GET("/pedidos", func(c echo.Context) error {
		data := viewData(c, deps, "Pedidos")
		data["Sent"] = c.QueryParam("enviado") == "1"
		ledger := deps.Carts.ForSession(coreAuth.SessionID(c))
		data["CartEmpty"] = ledger.Len() == 0
		if deps.DB != nil {
			repo := orderRepo.NewOrderRepository(deps.DB)
			var (
				orders []entity.Order
				err    error
			)
			if sess := coreAuth.CurrentSession(c); !sess.Anonymous() {
				orders, err = repo.FindByUser(sess.User.ID)
			} else {
				orders, err = repo.FindBySession(coreAuth.SessionID(c))
			}
			if err != nil {
				log.Printf("pedidos: list failed: %v", err)
			}
			data["Orders"] = orders
		}
		return c.Render(http.StatusOK, "pedidos.html", data)
	})

	e.POST("/pedidos", func(c echo.Context) error {
		name := strings.TrimSpace(c.FormValue("nome"))
		email := strings.TrimSpace(c.FormValue("email"))
		phone := strings.TrimSpace(c.FormValue("telefone"))

		sid := coreAuth.SessionID(c)
		ledger := deps.Carts.ForSession(sid)
		items := ledger.Items()

		if name == "" || email == "" || phone == "" || len(items) == 0 {
			data := viewData(c, deps, "Pedidos")
			data["Error"] = "preencha nome, email e telefone com o carrinho não vazio"
			data["CartEmpty"] = len(items) == 0
			return c.Render(http.StatusOK, "pedidos.html", data)
		}

		snapshot, _ := json.Marshal(items)
		o := entity.Order{
			SessionID: sid,
			Name:      name,
			Email:     email,
			Phone:     phone,
			Notes:     strings.TrimSpace(c.FormValue("observacoes")),
			Items:     datatypes.JSON(snapshot),
		}
		if sess := coreAuth.CurrentSession(c); !sess.Anonymous() {
			o.UserID = &sess.User.ID
		}
		if deps.DB != nil {
			if err := orderRepo.NewOrderRepository(deps.DB).Create(&o); err != nil {
				log.Printf("pedidos: persist failed: %v", err)
			}
		}

		ledger.Clear()
		return c.Redirect(http.StatusFound, "/pedidos?enviado=1")
	})
}
