package controllers

import (
	"net/http"

	"Gin_redis_lending_tracker/app"
	"Gin_redis_lending_tracker/lending"

	"github.com/gin-gonic/gin"
)

type UserController struct{ *Srv }

func NewUserController(s *Srv) *UserController { return &UserController{Srv: s} }

// GET /api/users?q=
func (uc *UserController) ListUsers(c *gin.Context) {
	users := uc.Engine.ListUsers(c.Query("q"))
	c.JSON(http.StatusOK, app.H{"users": users, "total": len(users)})
}

// POST /api/users
func (uc *UserController) CreateUser(c *gin.Context) {
	var in lending.UserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	u, err := uc.Engine.CreateUser(c.Request.Context(), in)
	if err != nil {
		uc.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

// PUT /api/users/:id
func (uc *UserController) UpdateUser(c *gin.Context) {
	var in lending.UserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	u, err := uc.Engine.UpdateUser(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		uc.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// DELETE /api/users/:id
// Borrows that reference the user are kept as they are.
func (uc *UserController) DeleteUser(c *gin.Context) {
	if err := uc.Engine.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		uc.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}

// POST /api/users/reset
func (uc *UserController) ResetUsers(c *gin.Context) {
	users, err := uc.Engine.ResetUsers(c.Request.Context())
	if err != nil {
		uc.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"users": users})
}
