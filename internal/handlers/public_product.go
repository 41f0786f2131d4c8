package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"backend/internal/catalog"
)

// GetProducts serves the catalog, optionally narrowed by category and a
// case-insensitive search over name and brand.
func GetProducts(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		category := strings.TrimSpace(c.Query("category"))
		search := strings.TrimSpace(c.Query("search"))

		products := cat.Products(category, search)

		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"produtos": products,
			"total":    len(products),
		})
	}
}
