package routes

import (
	"html/template"

	"github.com/gin-gonic/gin"
	"github.com/gosimple/slug"

	"github.com/ebarbosa/loja-virtual/internal/handlers"
	"github.com/ebarbosa/loja-virtual/internal/middleware"
	"github.com/ebarbosa/loja-virtual/internal/webutil"
)

// TemplateFuncs are the helpers available inside the HTML templates.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatCurrency": webutil.FormatBRL,
		"slugify":        slug.Make,
		"add":            func(a, b int) int { return a + b },
		"sub":            func(a, b int) int { return a - b },
	}
}

// SetupRouter mounts every endpoint. templateGlob points at the HTML
// templates; tests pass their own absolute glob.
func SetupRouter(h *handlers.Handlers, templateGlob string) *gin.Engine {
	router := gin.Default()
	router.SetFuncMap(TemplateFuncs())
	router.LoadHTMLGlob(templateGlob)
	router.Static("/static", "./static")

	// --- Public pages ---
	router.GET("/", h.Home)
	router.GET("/produtos", h.ListProducts)
	router.GET("/produtos/:id", h.ShowProduct)
	router.GET("/categorias", h.ListCategories)
	router.GET("/usuarios", h.ListUsers)
	router.GET("/enderecos", h.ListAddresses)

	// --- Auth ---
	router.GET("/cadastrar", h.ShowRegister)
	router.POST("/cadastrar", h.Register)
	router.GET("/login", h.ShowLogin)
	router.POST("/login", h.Login)
	router.GET("/logout", h.Logout)

	// --- Pages that need a logged-in user ---
	logged := router.Group("/")
	logged.Use(middleware.RequireLogin(h.Store))
	{
		logged.GET("/perfil", h.ShowProfile)
		logged.POST("/perfil", h.UpdateProfile)
		logged.GET("/senha", h.ShowPasswordForm)
		logged.POST("/senha", h.UpdatePassword)

		// Any logged-in user can flip role flags today; restricting
		// this to administrators is still an open decision.
		logged.GET("/usuarios/promover/:id", h.PromoteUser)
		logged.GET("/usuarios/rebaixar/:id", h.DemoteUser)
	}

	return router
}
