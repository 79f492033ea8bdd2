package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"

	"github.com/ebarbosa/loja-virtual/internal/auth"
)

// sessionUserKey is where RequireLogin parks the decoded payload for the
// handlers downstream.
const sessionUserKey = "sessionUser"

// RequireLogin guards a route group: anonymous requests are bounced to
// the login page, authenticated ones continue with the session payload
// attached to the request context.
func RequireLogin(store *sessions.CookieStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		session, _ := store.Get(c.Request, auth.SessionName)
		user, ok := auth.ReadSessionUser(session)
		if !ok {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}
		c.Set(sessionUserKey, user)
		c.Next()
	}
}

// SessionUser returns the payload RequireLogin attached to the context.
func SessionUser(c *gin.Context) (auth.SessionUser, bool) {
	value, exists := c.Get(sessionUserKey)
	if !exists {
		return auth.SessionUser{}, false
	}
	user, ok := value.(auth.SessionUser)
	return user, ok
}
