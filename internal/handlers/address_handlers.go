package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListAddresses renders a paginated address listing, ordered by street.
func (h *Handlers) ListAddresses(c *gin.Context) {
	page := pageParam(c)
	addresses, err := h.Addresses.GetPage(page, pageSize)
	if err != nil {
		h.serverError(c, err)
		return
	}
	h.render(c, http.StatusOK, "enderecos.html", gin.H{
		"Addresses": addresses,
		"Page":      page,
		"HasNext":   len(addresses) == pageSize,
	})
}
