package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Home renders the storefront with the first page of products.
func (h *Handlers) Home(c *gin.Context) {
	products, err := h.Products.GetPage(1, pageSize)
	if err != nil {
		h.serverError(c, err)
		return
	}
	h.render(c, http.StatusOK, "index.html", gin.H{"Products": products})
}

// ListProducts renders a paginated product listing.
func (h *Handlers) ListProducts(c *gin.Context) {
	page := pageParam(c)
	products, err := h.Products.GetPage(page, pageSize)
	if err != nil {
		h.serverError(c, err)
		return
	}
	h.render(c, http.StatusOK, "produtos.html", gin.H{
		"Products": products,
		"Page":     page,
		"HasNext":  len(products) == pageSize,
	})
}

// ShowProduct renders one product with its category resolved.
func (h *Handlers) ShowProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		h.notFound(c, "Produto não encontrado")
		return
	}

	product, err := h.Products.GetByID(id)
	if err != nil {
		h.serverError(c, err)
		return
	}
	if product == nil {
		h.notFound(c, "Produto não encontrado")
		return
	}

	h.render(c, http.StatusOK, "produto.html", gin.H{"Product": product})
}
