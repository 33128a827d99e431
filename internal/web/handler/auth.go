package handler

import (
	"net/http"
	"time"

	"github.com/investa-app/webclient/internal/investapi"
	"github.com/investa-app/webclient/internal/session"
	"github.com/investa-app/webclient/internal/web/middleware"
	"github.com/investa-app/webclient/pkg/logger"
)

// AuthHandler serves the sign-in and sign-up pages and manages the session
// cookie lifecycle.
type AuthHandler struct {
	api           *investapi.Client
	sessions      session.Store
	render        *Renderer
	log           *logger.Logger
	sessionTTL    time.Duration
	secureCookies bool
}

// NewAuthHandler creates an auth handler
func NewAuthHandler(api *investapi.Client, sessions session.Store, render *Renderer, log *logger.Logger, sessionTTL time.Duration, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		api:           api,
		sessions:      sessions,
		render:        render,
		log:           log.WithField("component", "auth"),
		sessionTTL:    sessionTTL,
		secureCookies: secureCookies,
	}
}

type loginPage struct {
	Page
	Email string
}

// LoginPage renders the sign-in form.
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.render.HTML(w, http.StatusOK, "login", loginPage{Page: Page{Title: "Entrar"}})
}

// Login exchanges the submitted credentials for an API token and opens a
// session around it.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	email := r.FormValue("email")
	password := r.FormValue("password")

	token, err := h.api.SignIn(r.Context(), email, password)
	if err != nil {
		h.log.Warn("sign-in failed", "email", email, "error", err)
		h.render.HTML(w, http.StatusUnauthorized, "login", loginPage{
			Page:  Page{Title: "Entrar", Error: investapi.ErrorMessage(err, "Erro ao fazer login")},
			Email: email,
		})
		return
	}

	id := session.NewID()
	if err := h.sessions.Set(r.Context(), id, token.AccessToken); err != nil {
		h.log.Error("session store failed", "error", err)
		h.render.HTML(w, http.StatusInternalServerError, "login", loginPage{
			Page:  Page{Title: "Entrar", Error: "Erro ao iniciar a sessão"},
			Email: email,
		})
		return
	}

	http.SetCookie(w, h.sessionCookie(id, int(h.sessionTTL.Seconds())))
	http.Redirect(w, r, "/dashboard/wallets", http.StatusSeeOther)
}

type registerPage struct {
	Page
	Name  string
	Email string
}

// RegisterPage renders the sign-up form.
func (h *AuthHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	h.render.HTML(w, http.StatusOK, "register", registerPage{Page: Page{Title: "Criar conta"}})
}

// Register creates an account upstream. The profile picture is optional and
// forwarded as-is.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		h.render.HTML(w, http.StatusBadRequest, "register", registerPage{
			Page: Page{Title: "Criar conta", Error: "Formulário inválido"},
		})
		return
	}

	input := investapi.SignUpInput{
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Password: r.FormValue("password"),
	}

	if file, header, err := r.FormFile("picture"); err == nil {
		defer file.Close()
		input.Picture = &investapi.Upload{Filename: header.Filename, Content: file}
	}

	if _, err := h.api.SignUp(r.Context(), input); err != nil {
		h.log.Warn("sign-up failed", "email", input.Email, "error", err)
		h.render.HTML(w, http.StatusBadGateway, "register", registerPage{
			Page:  Page{Title: "Criar conta", Error: investapi.ErrorMessage(err, "Erro ao criar a conta")},
			Name:  input.Name,
			Email: input.Email,
		})
		return
	}

	h.render.HTML(w, http.StatusOK, "login", loginPage{
		Page:  Page{Title: "Entrar", Notice: "Conta criada com sucesso. Faça login para continuar."},
		Email: input.Email,
	})
}

// Logout destroys the session and clears its cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if id, ok := middleware.GetSessionID(r.Context()); ok {
		if err := h.sessions.Delete(r.Context(), id); err != nil {
			h.log.Warn("session delete failed", "error", err)
		}
	}

	http.SetCookie(w, h.sessionCookie("", -1))
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}
