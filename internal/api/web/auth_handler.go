package web

import (
	"errors"
	"net/http"

	"github.com/MGTheTrain/auth-admin/internal/api/web/view"
	"github.com/MGTheTrain/auth-admin/internal/domain/sessions"
	"github.com/MGTheTrain/auth-admin/internal/domain/users"
	"github.com/MGTheTrain/auth-admin/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// AuthHandler defines the login, registration and logout pages
type AuthHandler interface {
	ShowLogin(ctx *gin.Context)
	Login(ctx *gin.Context)
	ShowRegister(ctx *gin.Context)
	Register(ctx *gin.Context)
	Logout(ctx *gin.Context)
}

type authHandler struct {
	authService    users.AuthService
	sessionService sessions.SessionService
	cookie         *SessionCookie
	logger         logger.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService users.AuthService, sessionService sessions.SessionService, cookie *SessionCookie, logger logger.Logger) AuthHandler {
	return &authHandler{
		authService:    authService,
		sessionService: sessionService,
		cookie:         cookie,
		logger:         logger,
	}
}

// ShowLogin handles GET /login/
func (handler *authHandler) ShowLogin(ctx *gin.Context) {
	var form LoginForm
	handler.renderForm(ctx, "Log in", form.View())
}

// Login handles POST /login/. Unknown usernames and wrong passwords are reported
// on the matching field; success logs the user in and redirects home.
func (handler *authHandler) Login(ctx *gin.Context) {
	var form LoginForm
	if err := ctx.ShouldBindWith(&form, binding.Form); err != nil {
		RenderError(ctx, http.StatusBadRequest, "invalid form data")
		return
	}

	vf := form.View()
	valid, err := validateForm(&form, vf)
	if err != nil {
		handler.internalError(ctx, err)
		return
	}
	if !valid {
		handler.renderForm(ctx, "Log in", vf)
		return
	}

	user, err := handler.authService.Authenticate(ctx.Request.Context(), form.Username, form.Password)
	switch {
	case errors.Is(err, users.ErrInvalidUser):
		vf.AddError("username", MessageInvalidUser)
	case errors.Is(err, users.ErrInvalidPassword):
		vf.AddError("password", MessageInvalidPassword)
	case err != nil:
		handler.internalError(ctx, err)
		return
	}
	if !vf.Valid() {
		handler.renderForm(ctx, "Log in", vf)
		return
	}

	handler.loginAndRedirect(ctx, user)
}

// ShowRegister handles GET /register/
func (handler *authHandler) ShowRegister(ctx *gin.Context) {
	var form RegistrationForm
	handler.renderForm(ctx, "Register", form.View())
}

// Register handles POST /register/. A taken username is reported on the field;
// success creates the user, logs them in and redirects home.
func (handler *authHandler) Register(ctx *gin.Context) {
	var form RegistrationForm
	if err := ctx.ShouldBindWith(&form, binding.Form); err != nil {
		RenderError(ctx, http.StatusBadRequest, "invalid form data")
		return
	}

	vf := form.View()
	valid, err := validateForm(&form, vf)
	if err != nil {
		handler.internalError(ctx, err)
		return
	}
	if !valid {
		handler.renderForm(ctx, "Register", vf)
		return
	}

	user, err := handler.authService.Register(ctx.Request.Context(), form.Username, form.Password)
	switch {
	case errors.Is(err, users.ErrDuplicateUsername):
		vf.AddError("username", MessageDuplicateUsername)
	case errors.Is(err, users.ErrPasswordTooLong):
		vf.AddError("password", MessagePasswordTooLong)
	case err != nil:
		handler.internalError(ctx, err)
		return
	}
	if !vf.Valid() {
		handler.renderForm(ctx, "Register", vf)
		return
	}

	handler.loginAndRedirect(ctx, user)
}

// Logout handles GET /logout/. Visitors without a session are just redirected.
func (handler *authHandler) Logout(ctx *gin.Context) {
	current := CurrentSession(ctx)
	if current == nil {
		ctx.Redirect(http.StatusFound, "/")
		return
	}

	session, err := handler.sessionService.Logout(ctx.Request.Context(), current)
	if err == nil {
		err = handler.cookie.Write(ctx, session)
	}
	if err != nil {
		handler.internalError(ctx, err)
		return
	}
	ctx.Redirect(http.StatusFound, "/")
}

func (handler *authHandler) loginAndRedirect(ctx *gin.Context, user *users.User) {
	session, err := handler.sessionService.Login(ctx.Request.Context(), CurrentSession(ctx), user.ID)
	if err == nil {
		err = handler.cookie.Write(ctx, session)
	}
	if err != nil {
		handler.internalError(ctx, err)
		return
	}
	ctx.Redirect(http.StatusFound, "/")
}

func (handler *authHandler) renderForm(ctx *gin.Context, title string, form *view.Form) {
	page := NewPage(ctx, title)
	form.CSRFToken = page.CSRFToken
	ctx.HTML(http.StatusOK, view.TemplateForm, view.FormPage{Page: page, Form: form})
}

func (handler *authHandler) internalError(ctx *gin.Context, err error) {
	handler.logger.Error("Request failed: ", err)
	RenderError(ctx, http.StatusInternalServerError, "Internal server error")
}
