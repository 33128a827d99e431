package handler

import (
	"net/http"

	"github.com/investa-app/webclient/internal/investapi"
	"github.com/investa-app/webclient/internal/session"
	"github.com/investa-app/webclient/internal/web/middleware"
	"github.com/investa-app/webclient/pkg/logger"
)

// ProfileHandler serves the account settings page.
type ProfileHandler struct {
	api      *investapi.Client
	sessions session.Store
	render   *Renderer
	log      *logger.Logger
}

// NewProfileHandler creates a profile handler
func NewProfileHandler(api *investapi.Client, sessions session.Store, render *Renderer, log *logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		api:      api,
		sessions: sessions,
		render:   render,
		log:      log.WithField("component", "profile"),
	}
}

type profilePage struct {
	Page
	Name  string
	Email string
}

// userID reads the user's id out of the session token's subject claim.
func (h *ProfileHandler) userID(r *http.Request) (string, error) {
	token, _ := session.TokenFromContext(r.Context())
	return session.UserID(token)
}

// Show renders the settings page with the current profile.
func (h *ProfileHandler) Show(w http.ResponseWriter, r *http.Request) {
	h.showWith(w, r, http.StatusOK, "", "")
}

func (h *ProfileHandler) showWith(w http.ResponseWriter, r *http.Request, status int, errMsg, notice string) {
	data := profilePage{Page: Page{Title: "Configurações", Authenticated: true, Error: errMsg, Notice: notice}}

	uid, err := h.userID(r)
	if err != nil {
		h.log.Warn("token subject missing", "error", err)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	user, err := h.api.GetUser(r.Context(), uid)
	if err != nil {
		h.log.Error("user fetch failed", "user_id", uid, "error", err)
		if data.Error == "" {
			data.Error = investapi.ErrorMessage(err, "Erro ao carregar o perfil")
			status = http.StatusBadGateway
		}
		h.render.HTML(w, status, "profile", data)
		return
	}

	data.Name = user.Name
	data.Email = user.Email
	h.render.HTML(w, status, "profile", data)
}

// Update saves the profile fields.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, err := h.userID(r)
	if err != nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	input := investapi.UpdateUserInput{
		Name:  r.FormValue("name"),
		Email: r.FormValue("email"),
	}
	if _, err := h.api.UpdateUser(r.Context(), uid, input); err != nil {
		h.log.Error("user update failed", "user_id", uid, "error", err)
		h.showWith(w, r, http.StatusBadGateway, investapi.ErrorMessage(err, "Erro ao atualizar o perfil"), "")
		return
	}

	h.showWith(w, r, http.StatusOK, "", "Perfil atualizado com sucesso")
}

// UploadPicture replaces the profile picture.
func (h *ProfileHandler) UploadPicture(w http.ResponseWriter, r *http.Request) {
	uid, err := h.userID(r)
	if err != nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		h.showWith(w, r, http.StatusBadRequest, "Formulário inválido", "")
		return
	}

	file, header, err := r.FormFile("picture")
	if err != nil {
		h.showWith(w, r, http.StatusUnprocessableEntity, "Selecione uma imagem", "")
		return
	}
	defer file.Close()

	picture := investapi.Upload{Filename: header.Filename, Content: file}
	if err := h.api.UploadProfilePicture(r.Context(), uid, picture); err != nil {
		h.log.Error("picture upload failed", "user_id", uid, "error", err)
		h.showWith(w, r, http.StatusBadGateway, investapi.ErrorMessage(err, "Erro ao enviar a foto"), "")
		return
	}

	h.showWith(w, r, http.StatusOK, "", "Foto de perfil atualizada")
}

// ChangePassword sets a new password for the signed-in user.
func (h *ProfileHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	newPassword := r.FormValue("newPassword")
	if newPassword == "" {
		h.showWith(w, r, http.StatusUnprocessableEntity, "Informe a nova senha", "")
		return
	}

	if err := h.api.ChangePassword(r.Context(), newPassword); err != nil {
		h.log.Error("password change failed", "error", err)
		h.showWith(w, r, http.StatusBadGateway, investapi.ErrorMessage(err, "Erro ao alterar a senha"), "")
		return
	}

	h.showWith(w, r, http.StatusOK, "", "Senha alterada com sucesso")
}

// Delete removes the account upstream and tears the session down.
func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, err := h.userID(r)
	if err != nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := h.api.DeleteUser(r.Context(), uid); err != nil {
		h.log.Error("user delete failed", "user_id", uid, "error", err)
		h.showWith(w, r, http.StatusBadGateway, investapi.ErrorMessage(err, "Erro ao excluir a conta"), "")
		return
	}

	if id, ok := middleware.GetSessionID(r.Context()); ok {
		if err := h.sessions.Delete(r.Context(), id); err != nil {
			h.log.Warn("session delete failed", "error", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
