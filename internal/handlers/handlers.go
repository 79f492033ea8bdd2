// Package handlers contains the page and form endpoints. Every handler
// follows the same shape: read the form or path, call a repository,
// then render a template or redirect with a flash message.
package handlers

import (
	"database/sql"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"github.com/ebarbosa/loja-virtual/internal/auth"
	"github.com/ebarbosa/loja-virtual/internal/repository"
)

// pageSize is how many rows every listing page shows.
const pageSize = 12

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	DB    *sql.DB
	Store *sessions.CookieStore

	Categories *repository.CategoryRepository
	Products   *repository.ProductRepository
	Users      *repository.UserRepository
	Addresses  *repository.AddressRepository
}

// New wires the repositories onto a database handle. Seed scripts are
// attached here so a fresh database comes up with browsable data.
func New(db *sql.DB, store *sessions.CookieStore) *Handlers {
	return &Handlers{
		DB:         db,
		Store:      store,
		Categories: repository.NewCategoryRepository(db).WithSeed(repository.CategorySeed),
		Products:   repository.NewProductRepository(db).WithSeed(repository.ProductSeed),
		Users:      repository.NewUserRepository(db),
		Addresses:  repository.NewAddressRepository(db),
	}
}

// EnsureTables bootstraps every table, parents before children so the
// foreign keys resolve. Safe to call on every startup.
func (h *Handlers) EnsureTables() bool {
	ok := h.Categories.EnsureTable()
	ok = h.Users.EnsureTable() && ok
	ok = h.Products.EnsureTable() && ok
	ok = h.Addresses.EnsureTable() && ok
	return ok
}

// session fetches the request session. gorilla returns a usable fresh
// session even when decoding fails, so the error is only worth logging.
func (h *Handlers) session(c *gin.Context) *sessions.Session {
	session, err := h.Store.Get(c.Request, auth.SessionName)
	if err != nil {
		log.Printf("Error decoding session, starting a fresh one: %v", err)
	}
	return session
}

// render draws a template with the shared context every page needs:
// the logged-in user, if any, and the pending flash messages.
func (h *Handlers) render(c *gin.Context, status int, name string, data gin.H) {
	session := h.session(c)
	if user, ok := auth.ReadSessionUser(session); ok {
		data["IsLoggedIn"] = true
		data["SessionUser"] = user
	}
	data["FlashesSuccess"] = session.Flashes("success")
	data["FlashesError"] = session.Flashes("error")
	if err := session.Save(c.Request, c.Writer); err != nil {
		log.Printf("Error saving session: %v", err)
	}
	c.HTML(status, name, data)
}

// flash queues a message and redirects, the post/redirect/get half of
// every form flow.
func (h *Handlers) flash(c *gin.Context, kind, message, location string) {
	session := h.session(c)
	session.AddFlash(message, kind)
	if err := session.Save(c.Request, c.Writer); err != nil {
		log.Printf("Error saving session: %v", err)
	}
	c.Redirect(http.StatusSeeOther, location)
}

// notFound renders the shared 404 page.
func (h *Handlers) notFound(c *gin.Context, message string) {
	h.render(c, http.StatusNotFound, "erro.html", gin.H{"Message": message})
}

// serverError logs the storage fault and renders the generic 500 page.
// The detail never reaches the client.
func (h *Handlers) serverError(c *gin.Context, err error) {
	log.Printf("Internal error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	h.render(c, http.StatusInternalServerError, "erro.html", gin.H{
		"Message": "Ocorreu um erro inesperado. Tente novamente.",
	})
}

// pageParam reads the 1-based ?page= query, clamped to 1. Repositories do
// not validate page numbers, so the clamp lives here at the boundary.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// idParam parses the numeric :id path segment.
func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
