package controllers

import (
	"net/http"

	"Gin_redis_lending_tracker/app"
	"Gin_redis_lending_tracker/lending"

	"github.com/gin-gonic/gin"
)

type EquipmentController struct{ *Srv }

func NewEquipmentController(s *Srv) *EquipmentController { return &EquipmentController{Srv: s} }

// GET /api/equipment?q=&status=ALL|AVAILABLE|MAINTENANCE|DISPOSED
func (ec *EquipmentController) ListEquipment(c *gin.Context) {
	var f lending.EquipmentFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		badRequest(c, err)
		return
	}
	items, err := ec.Engine.ListEquipment(f)
	if err != nil {
		ec.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"items": items, "total": len(items)})
}

// GET /api/equipment/available
func (ec *EquipmentController) ListAvailable(c *gin.Context) {
	c.JSON(http.StatusOK, app.H{"items": ec.Engine.AvailableEquipment()})
}

// POST /api/equipment
func (ec *EquipmentController) CreateEquipment(c *gin.Context) {
	var in lending.EquipmentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	eq, err := ec.Engine.CreateEquipment(c.Request.Context(), in)
	if err != nil {
		ec.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, eq)
}

// PUT /api/equipment/:id
func (ec *EquipmentController) UpdateEquipment(c *gin.Context) {
	var in lending.EquipmentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, err)
		return
	}
	eq, err := ec.Engine.UpdateEquipment(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		ec.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, eq)
}

// DELETE /api/equipment/:id
func (ec *EquipmentController) DeleteEquipment(c *gin.Context) {
	if err := ec.Engine.DeleteEquipment(c.Request.Context(), c.Param("id")); err != nil {
		ec.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}

// POST /api/equipment/reset
func (ec *EquipmentController) ResetEquipment(c *gin.Context) {
	items, err := ec.Engine.ResetEquipment(c.Request.Context())
	if err != nil {
		ec.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"items": items})
}
