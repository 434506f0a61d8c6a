package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/revisaai/revisaai/internal/store"
)

// RegisterWorkshopRoutes serves the public workshop directory.
func RegisterWorkshopRoutes(rg gin.IRouter, workshops store.WorkshopStore) {
	rg.GET("/workshops", func(c *gin.Context) {
		list, err := workshops.Search(c.Request.Context(), c.Query("q"))
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	})
}
