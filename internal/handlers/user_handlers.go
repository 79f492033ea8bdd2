package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ebarbosa/loja-virtual/internal/auth"
	"github.com/ebarbosa/loja-virtual/internal/models"
)

// birthDateLayout matches the <input type="date"> wire format.
const birthDateLayout = "2006-01-02"

// RegisterInput holds the registration form. It is separate from
// models.User because we never accept an id or a role from the client.
type RegisterInput struct {
	Name      string `form:"nome" binding:"required"`
	TaxID     string `form:"cpf" binding:"required"`
	Phone     string `form:"telefone" binding:"required"`
	Email     string `form:"email" binding:"required,email"`
	BirthDate string `form:"data_nascimento" binding:"required"`
	Password  string `form:"senha" binding:"required,min=6"`
	Confirm   string `form:"conf_senha" binding:"required"`
}

// LoginInput holds the login form.
type LoginInput struct {
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"senha" binding:"required"`
}

// ListUsers renders a paginated user listing (no password hashes are ever
// selected for this page).
func (h *Handlers) ListUsers(c *gin.Context) {
	page := pageParam(c)
	users, err := h.Users.GetPage(page, pageSize)
	if err != nil {
		h.serverError(c, err)
		return
	}
	h.render(c, http.StatusOK, "usuarios.html", gin.H{
		"Users":   users,
		"Page":    page,
		"HasNext": len(users) == pageSize,
	})
}

// ShowRegister renders the registration form.
func (h *Handlers) ShowRegister(c *gin.Context) {
	h.render(c, http.StatusOK, "cadastrar.html", gin.H{})
}

// Register processes the registration form: confirmation check, bcrypt
// hash, insert with the default regular role, then off to the login page.
func (h *Handlers) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBind(&input); err != nil {
		h.flash(c, "error", "Preencha todos os campos corretamente.", "/cadastrar")
		return
	}
	if input.Password != input.Confirm {
		h.flash(c, "error", "As senhas não conferem.", "/cadastrar")
		return
	}
	birthDate, err := time.Parse(birthDateLayout, input.BirthDate)
	if err != nil {
		h.flash(c, "error", "Data de nascimento inválida.", "/cadastrar")
		return
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		h.serverError(c, err)
		return
	}

	user := &models.User{
		Name:         input.Name,
		TaxID:        input.TaxID,
		Phone:        input.Phone,
		Email:        input.Email,
		BirthDate:    birthDate,
		PasswordHash: hash,
		Role:         models.RoleRegular,
	}
	if _, err := h.Users.Insert(user); err != nil {
		// The unique email column is the only constraint a valid form
		// can still trip over.
		if strings.Contains(err.Error(), "UNIQUE") {
			h.flash(c, "error", "Este e-mail já está cadastrado.", "/cadastrar")
			return
		}
		h.serverError(c, err)
		return
	}

	h.flash(c, "success", "Cadastro realizado com sucesso! Faça o login.", "/login")
}

// ShowLogin renders the login form.
func (h *Handlers) ShowLogin(c *gin.Context) {
	h.render(c, http.StatusOK, "login.html", gin.H{})
}

// Login verifies the credentials and writes the session payload. Unknown
// email and wrong password get the same message.
func (h *Handlers) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBind(&input); err != nil {
		h.flash(c, "error", "Credenciais inválidas.", "/login")
		return
	}

	user, err := auth.Authenticate(h.Users, input.Email, input.Password)
	if err != nil {
		h.serverError(c, err)
		return
	}
	if user == nil {
		h.flash(c, "error", "Credenciais inválidas.", "/login")
		return
	}

	session := h.session(c)
	auth.WriteSessionUser(session, user)
	if err := session.Save(c.Request, c.Writer); err != nil {
		h.serverError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// Logout clears the entire session, not just the user key.
func (h *Handlers) Logout(c *gin.Context) {
	session := h.session(c)
	auth.ClearSession(session)
	if err := session.Save(c.Request, c.Writer); err != nil {
		h.serverError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// PromoteUser sets the admin flag on a user and returns to the listing.
func (h *Handlers) PromoteUser(c *gin.Context) {
	h.setRole(c, models.RoleAdmin)
}

// DemoteUser clears the admin flag on a user and returns to the listing.
func (h *Handlers) DemoteUser(c *gin.Context) {
	h.setRole(c, models.RoleRegular)
}

func (h *Handlers) setRole(c *gin.Context, role int) {
	id, ok := idParam(c)
	if !ok {
		h.notFound(c, "Usuário não encontrado")
		return
	}

	user, err := h.Users.GetByID(id)
	if err != nil {
		h.serverError(c, err)
		return
	}
	if user == nil {
		h.notFound(c, "Usuário não encontrado")
		return
	}

	if _, err := h.Users.UpdateRole(id, role); err != nil {
		h.serverError(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/usuarios")
}
