package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ebarbosa/loja-virtual/internal/auth"
	"github.com/ebarbosa/loja-virtual/internal/middleware"
	"github.com/ebarbosa/loja-virtual/internal/models"
)

// ProfileInput holds the profile edit form. The tax id is immutable after
// registration, so it is not part of the form.
type ProfileInput struct {
	Name      string `form:"nome" binding:"required"`
	Phone     string `form:"telefone" binding:"required"`
	Email     string `form:"email" binding:"required,email"`
	BirthDate string `form:"data_nascimento" binding:"required"`
}

// PasswordInput holds the password change form.
type PasswordInput struct {
	Password string `form:"nova_senha" binding:"required,min=6"`
	Confirm  string `form:"conf_nova_senha" binding:"required"`
}

// currentUser loads the full record for the logged-in user. The session
// only carries the projection; the row is always re-read so stale session
// data never leaks into an update.
func (h *Handlers) currentUser(c *gin.Context) (*models.User, bool) {
	sessionUser, ok := middleware.SessionUser(c)
	if !ok {
		// RequireLogin guards these routes; a miss here means the
		// middleware is not mounted.
		h.render(c, http.StatusUnauthorized, "erro.html", gin.H{"Message": "Usuário não autenticado"})
		return nil, false
	}

	user, err := h.Users.GetByID(sessionUser.ID)
	if err != nil {
		h.serverError(c, err)
		return nil, false
	}
	if user == nil {
		h.notFound(c, "Usuário não encontrado")
		return nil, false
	}
	return user, true
}

// ShowProfile renders the profile page with the user's addresses.
func (h *Handlers) ShowProfile(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	addresses, err := h.Addresses.GetByOwner(user.ID)
	if err != nil {
		h.serverError(c, err)
		return
	}

	h.render(c, http.StatusOK, "perfil.html", gin.H{
		"Profile":   user,
		"Addresses": addresses,
	})
}

// UpdateProfile overwrites the profile fields and refreshes the session
// payload so the new name and email show up immediately.
func (h *Handlers) UpdateProfile(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	var input ProfileInput
	if err := c.ShouldBind(&input); err != nil {
		h.flash(c, "error", "Preencha todos os campos corretamente.", "/perfil")
		return
	}
	birthDate, err := time.Parse(birthDateLayout, input.BirthDate)
	if err != nil {
		h.flash(c, "error", "Data de nascimento inválida.", "/perfil")
		return
	}

	user.Name = input.Name
	user.Phone = input.Phone
	user.Email = input.Email
	user.BirthDate = birthDate

	updated, err := h.Users.Update(user)
	if err != nil {
		h.serverError(c, err)
		return
	}
	if !updated {
		h.notFound(c, "Usuário não encontrado")
		return
	}

	session := h.session(c)
	auth.WriteSessionUser(session, user)
	session.AddFlash("Perfil atualizado com sucesso.", "success")
	if err := session.Save(c.Request, c.Writer); err != nil {
		h.serverError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/perfil")
}

// ShowPasswordForm renders the password change page.
func (h *Handlers) ShowPasswordForm(c *gin.Context) {
	if _, ok := h.currentUser(c); !ok {
		return
	}
	h.render(c, http.StatusOK, "senha.html", gin.H{})
}

// UpdatePassword hashes and stores a new password for the logged-in user.
func (h *Handlers) UpdatePassword(c *gin.Context) {
	user, ok := h.currentUser(c)
	if !ok {
		return
	}

	var input PasswordInput
	if err := c.ShouldBind(&input); err != nil {
		h.flash(c, "error", "Informe a nova senha com ao menos 6 caracteres.", "/senha")
		return
	}
	if input.Password != input.Confirm {
		h.flash(c, "error", "As senhas não conferem.", "/senha")
		return
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		h.serverError(c, err)
		return
	}
	if _, err := h.Users.UpdatePassword(user.ID, hash); err != nil {
		h.serverError(c, err)
		return
	}

	h.flash(c, "success", "Senha alterada com sucesso.", "/perfil")
}
