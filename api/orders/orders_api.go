package orders

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"gorm.io/datatypes"

	"obracalc.GO/api"
	coreAuth "obracalc.GO/core/auth"
	entity "obracalc.GO/model/entity"
	order "obracalc.GO/model/repository/order"
)

func init() {
	api.RegisterModule(RegisterOrderRoutes)
}

type submitRequest struct {
	Name  string `json:"nome"`
	Email string `json:"email"`
	Phone string `json:"telefone"`
	Notes string `json:"observacoes"`
}

func RegisterOrderRoutes(apiGroup *echo.Group, deps *api.Deps) {
	// POST /api/orders: submit the current cart as an order request
	apiGroup.POST("/orders", func(c echo.Context) error {
		var req submitRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		req.Name = strings.TrimSpace(req.Name)
		req.Email = strings.TrimSpace(req.Email)
		req.Phone = strings.TrimSpace(req.Phone)
		if req.Name == "" || req.Email == "" || req.Phone == "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "nome, email e telefone são obrigatórios"})
		}

		sid := coreAuth.SessionID(c)
		ledger := deps.Carts.ForSession(sid)
		items := ledger.Items()
		if len(items) == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "carrinho vazio"})
		}

		snapshot, err := json.Marshal(items)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		o := entity.Order{
			SessionID: sid,
			Name:      req.Name,
			Email:     req.Email,
			Phone:     req.Phone,
			Notes:     req.Notes,
			Items:     datatypes.JSON(snapshot),
		}
		if sess := coreAuth.CurrentSession(c); !sess.Anonymous() {
			o.UserID = &sess.User.ID
		}

		// The order row is best-effort: without a database the submission
		// still succeeds and the cart is cleared.
		if deps.DB != nil {
			if err := order.NewOrderRepository(deps.DB).Create(&o); err != nil {
				log.Printf("orders: persist failed: %v", err)
			}
		}

		ledger.Clear()
		return c.JSON(http.StatusCreated, o)
	})

	// GET /api/orders: orders for the current user, or session when anonymous
	apiGroup.GET("/orders", func(c echo.Context) error {
		if deps.DB == nil {
			return c.JSON(http.StatusOK, []entity.Order{})
		}
		repo := order.NewOrderRepository(deps.DB)

		var (
			found []entity.Order
			err   error
		)
		if sess := coreAuth.CurrentSession(c); !sess.Anonymous() {
			found, err = repo.FindByUser(sess.User.ID)
		} else {
			found, err = repo.FindBySession(coreAuth.SessionID(c))
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		if found == nil {
			found = []entity.Order{}
		}
		return c.JSON(http.StatusOK, found)
	})
}
