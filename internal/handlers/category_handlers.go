package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListCategories renders a paginated category listing.
func (h *Handlers) ListCategories(c *gin.Context) {
	page := pageParam(c)
	categories, err := h.Categories.GetPage(page, pageSize)
	if err != nil {
		h.serverError(c, err)
		return
	}
	h.render(c, http.StatusOK, "categorias.html", gin.H{
		"Categories": categories,
		"Page":       page,
		"HasNext":    len(categories) == pageSize,
	})
}
