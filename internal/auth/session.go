package auth

import (
	"encoding/gob"

	"github.com/gorilla/sessions"

	"github.com/ebarbosa/loja-virtual/internal/models"
)

// SessionName is the cookie under which the session travels.
const SessionName = "loja_session"

const sessionUserKey = "usuario"

// SessionUser is the projection of an authenticated user that lives in
// the session. It never carries the password hash.
type SessionUser struct {
	ID    int64
	Name  string
	Email string
	Role  string
}

func init() {
	// gorilla/sessions serializes values with gob.
	gob.Register(SessionUser{})
}

// NewSessionUser shapes the session payload for a user, mapping the role
// flag onto its label.
func NewSessionUser(user *models.User) SessionUser {
	role := "user"
	if user.IsAdmin() {
		role = "admin"
	}
	return SessionUser{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  role,
	}
}

// WriteSessionUser attaches the payload to the session. The caller still
// has to save the session on the response.
func WriteSessionUser(session *sessions.Session, user *models.User) {
	session.Values[sessionUserKey] = NewSessionUser(user)
}

// ReadSessionUser validates and returns the payload from the session.
// A missing, mistyped or incomplete payload means anonymous.
func ReadSessionUser(session *sessions.Session) (SessionUser, bool) {
	value, found := session.Values[sessionUserKey]
	if !found {
		return SessionUser{}, false
	}
	user, ok := value.(SessionUser)
	if !ok || user.ID <= 0 || user.Email == "" {
		return SessionUser{}, false
	}
	return user, true
}

// ClearSession drops the whole session state, not just the user key, and
// expires the cookie. Logout must not leave flashes or any other residue
// behind.
func ClearSession(session *sessions.Session) {
	for key := range session.Values {
		delete(session.Values, key)
	}
	session.Options.MaxAge = -1
}
