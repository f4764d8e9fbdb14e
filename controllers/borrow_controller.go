package controllers

import (
	"log/slog"
	"net/http"

	"Gin_redis_lending_tracker/app"
	"Gin_redis_lending_tracker/lending"

	"github.com/gin-gonic/gin"
)

type BorrowController struct{ *Srv }

func NewBorrowController(s *Srv) *BorrowController { return &BorrowController{Srv: s} }

type createBorrowReq struct {
	lending.BorrowRequest
	CartID string `json:"cart_id"`
}

// POST /api/borrows
// Lines come from cart_id when given, otherwise from items. The cart is
// dropped once the borrow is recorded.
func (bc *BorrowController) CreateBorrow(c *gin.Context) {
	var in createBorrowReq
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	ctx := c.Request.Context()
	if in.CartID != "" {
		cart, err := bc.Carts.Get(ctx, in.CartID)
		if err != nil {
			bc.fail(c, err)
			return
		}
		in.Items = cart.Lines
	}
	bc.Engine.DefaultDates(&in.BorrowRequest)

	b, err := bc.Engine.CreateBorrow(ctx, in.BorrowRequest)
	if err != nil {
		bc.fail(c, err)
		return
	}
	if in.CartID != "" {
		if err := bc.Carts.Delete(ctx, in.CartID); err != nil {
			bc.Log.Warn("drop cart", slog.String("cart_id", in.CartID), slog.Any("error", err))
		}
	}
	c.JSON(http.StatusCreated, b)
}

// GET /api/borrows?q=&status=ALL|BORROWED|RETURNED
func (bc *BorrowController) ListBorrows(c *gin.Context) {
	var f lending.BorrowFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		badRequest(c, err)
		return
	}
	items, err := bc.Engine.ListBorrows(f)
	if err != nil {
		bc.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"items": items, "total": len(items)})
}

// GET /api/borrows/:id
func (bc *BorrowController) GetBorrow(c *gin.Context) {
	b, err := bc.Engine.GetBorrow(c.Param("id"))
	if err != nil {
		bc.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// DELETE /api/borrows/:id
// Stock is not restored.
func (bc *BorrowController) DeleteBorrow(c *gin.Context) {
	if err := bc.Engine.DeleteBorrow(c.Request.Context(), c.Param("id")); err != nil {
		bc.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}

// GET /api/borrows/:id/return
func (bc *BorrowController) OpenReturn(c *gin.Context) {
	prefill, err := bc.Engine.OpenReturnSession(c.Param("id"))
	if err != nil {
		bc.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"borrow_id": c.Param("id"), "returns": prefill})
}

// POST /api/borrows/:id/return
func (bc *BorrowController) ApplyReturn(c *gin.Context) {
	var in struct {
		Returns map[string]int `json:"returns"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	b, err := bc.Engine.ApplyReturn(c.Request.Context(), c.Param("id"), in.Returns)
	if err != nil {
		bc.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}
