package routes

import (
	"net/http"

	"Gin_redis_lending_tracker/app"
	"Gin_redis_lending_tracker/controllers"
	"Gin_redis_lending_tracker/metrics"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	s := controllers.GetSrv(a)
	uc := controllers.NewUserController(s)
	ec := controllers.NewEquipmentController(s)
	cc := controllers.NewCartController(s)
	bc := controllers.NewBorrowController(s)
	rc := controllers.NewReportController(s)

	r.GET("/healthz", func(c *app.Ctx) {
		c.JSON(http.StatusOK, app.H{"ok": true, "store": a.Store.Driver()})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler(a.Registry)))

	api := r.Group("/api", a.Limiter.Writes())

	// ------------------------------
	// Users
	// ------------------------------
	users := api.Group("/users")
	{
		users.GET("", uc.ListUsers) // ?q=
		users.POST("", uc.CreateUser)
		users.POST("/reset", uc.ResetUsers)
		users.PUT("/:id", uc.UpdateUser)
		users.DELETE("/:id", uc.DeleteUser)
	}

	// ------------------------------
	// Equipment
	// ------------------------------
	equipment := api.Group("/equipment")
	{
		equipment.GET("", ec.ListEquipment) // ?q=&status=
		equipment.GET("/available", ec.ListAvailable)
		equipment.POST("", ec.CreateEquipment)
		equipment.POST("/reset", ec.ResetEquipment)
		equipment.PUT("/:id", ec.UpdateEquipment)
		equipment.DELETE("/:id", ec.DeleteEquipment)
	}

	// ------------------------------
	// Carts (pending borrow lines)
	// ------------------------------
	carts := api.Group("/carts")
	{
		carts.POST("", cc.CreateCart)
		carts.GET("/:id", cc.GetCart)
		carts.DELETE("/:id", cc.DeleteCart)
		carts.POST("/:id/items", cc.AddItem)
		carts.PUT("/:id/items/:equipmentId", cc.SetAmount)
		carts.DELETE("/:id/items/:equipmentId", cc.RemoveItem)
	}

	// ------------------------------
	// Borrows and returns
	// ------------------------------
	borrows := api.Group("/borrows")
	{
		borrows.GET("", bc.ListBorrows) // ?q=&status=ALL|BORROWED|RETURNED
		borrows.POST("", bc.CreateBorrow)
		borrows.GET("/:id", bc.GetBorrow)
		borrows.DELETE("/:id", bc.DeleteBorrow)
		borrows.GET("/:id/return", bc.OpenReturn)
		borrows.POST("/:id/return", bc.ApplyReturn)
	}

	// ------------------------------
	// Reports
	// ------------------------------
	reports := api.Group("/reports")
	{
		reports.GET("/timeline", rc.Timeline) // ?mode=DAY|MONTH&days=|months=|start=&end=
		reports.GET("/top", rc.TopBorrowed)   // ?n=
		reports.GET("/summary", rc.Summary)
	}
}
