package controllers

import (
	"net/http"

	"Gin_redis_lending_tracker/app"

	"github.com/gin-gonic/gin"
)

type CartController struct{ *Srv }

func NewCartController(s *Srv) *CartController { return &CartController{Srv: s} }

// POST /api/carts
func (cc *CartController) CreateCart(c *gin.Context) {
	cart, err := cc.Carts.Create(c.Request.Context())
	if err != nil {
		cc.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, cart)
}

// GET /api/carts/:id
func (cc *CartController) GetCart(c *gin.Context) {
	cart, err := cc.Carts.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		cc.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

// POST /api/carts/:id/items
// Adding an item that is already in the cart raises its amount; when the
// new total would exceed the stock the cart is returned unchanged with added=false.
func (cc *CartController) AddItem(c *gin.Context) {
	var in struct {
		EquipmentID string `json:"equipment_id" binding:"required"`
		Amount      int    `json:"amount"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	ctx := c.Request.Context()
	cart, err := cc.Carts.Get(ctx, c.Param("id"))
	if err != nil {
		cc.fail(c, err)
		return
	}
	added, err := cc.Engine.AddToCart(cart, in.EquipmentID, in.Amount)
	if err != nil {
		cc.fail(c, err)
		return
	}
	if added {
		if err := cc.Carts.Save(ctx, cart); err != nil {
			cc.fail(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, app.H{"cart": cart, "added": added})
}

// PUT /api/carts/:id/items/:equipmentId
// The amount is clipped to what is on the shelf.
func (cc *CartController) SetAmount(c *gin.Context) {
	var in struct {
		Amount int `json:"amount"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	ctx := c.Request.Context()
	cart, err := cc.Carts.Get(ctx, c.Param("id"))
	if err != nil {
		cc.fail(c, err)
		return
	}
	changed, err := cc.Engine.SetCartAmount(cart, c.Param("equipmentId"), in.Amount)
	if err != nil {
		cc.fail(c, err)
		return
	}
	if changed {
		if err := cc.Carts.Save(ctx, cart); err != nil {
			cc.fail(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, app.H{"cart": cart, "changed": changed})
}

// DELETE /api/carts/:id/items/:equipmentId
func (cc *CartController) RemoveItem(c *gin.Context) {
	ctx := c.Request.Context()
	cart, err := cc.Carts.Get(ctx, c.Param("id"))
	if err != nil {
		cc.fail(c, err)
		return
	}
	if cart.Remove(c.Param("equipmentId")) {
		if err := cc.Carts.Save(ctx, cart); err != nil {
			cc.fail(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, app.H{"cart": cart})
}

// DELETE /api/carts/:id
func (cc *CartController) DeleteCart(c *gin.Context) {
	if err := cc.Carts.Delete(c.Request.Context(), c.Param("id")); err != nil {
		cc.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}
