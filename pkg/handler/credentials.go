package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"ultrapanel_admin_back/models"
	"ultrapanel_admin_back/pkg/cache"
	"ultrapanel_admin_back/pkg/service"
)

type credentialsView struct {
	ClientID     string `json:"pixup_client_id"`
	ClientSecret string `json:"pixup_client_secret"`
	BaseURL      string `json:"pixup_base_url"`
	IsConfigured bool   `json:"is_configured"`
	StatusLabel  string `json:"status_label"`
	ShowSecrets  bool   `json:"show_secrets"`
	EditOpen     bool   `json:"edit_open"`
	EditError    string `json:"edit_error,omitempty"`
	CopiedField  string `json:"copied_field,omitempty"`
	Error        string `json:"error,omitempty"`
}

// buildCredentialsView monta o modelo de exibição da tela: o segredo só sai
// em claro com a visibilidade ligada, caso contrário vai mascarado.
func buildCredentialsView(scr *models.CredentialsScreen, now time.Time) credentialsView {
	view := credentialsView{
		ShowSecrets: scr.ShowSecrets,
		EditOpen:    scr.EditOpen,
		EditError:   scr.EditError,
		CopiedField: scr.ActiveCopiedField(now),
		Error:       scr.Error,
	}
	if scr.Credentials == nil {
		view.StatusLabel = service.ConfiguredLabel(false)
		return view
	}

	view.ClientID = scr.Credentials.ClientID
	view.BaseURL = scr.Credentials.BaseURL
	view.IsConfigured = scr.Credentials.IsConfigured
	view.StatusLabel = service.ConfiguredLabel(scr.Credentials.IsConfigured)
	if scr.ShowSecrets {
		view.ClientSecret = scr.Credentials.ClientSecret
	} else {
		view.ClientSecret = service.MaskSecret(scr.Credentials.ClientSecret)
	}
	return view
}

func (h *Handler) session(c *gin.Context) (string, *models.Session) {
	token := c.GetString("token")
	return token, cache.GetSession(token)
}

func (h *Handler) GetCredentials(c *gin.Context) {
	token, sess := h.session(c)
	sess.Lock()
	defer sess.Unlock()

	scr := &sess.Credentials
	if scr.Credentials == nil {
		if err := h.service.Credentials.Fetch(scr, token); err != nil {
			newErrorResponse(c, errorStatus(err), scr.Error)
			return
		}
	}
	wrapOkJSON(c, map[string]interface{}{
		"data": buildCredentialsView(scr, time.Now()),
	})
}

func (h *Handler) RefreshCredentials(c *gin.Context) {
	token, sess := h.session(c)
	sess.Lock()
	defer sess.Unlock()

	scr := &sess.Credentials
	if err := h.service.Credentials.Fetch(scr, token); err != nil {
		newErrorResponse(c, errorStatus(err), scr.Error)
		return
	}
	wrapOkJSON(c, map[string]interface{}{
		"data": buildCredentialsView(scr, time.Now()),
	})
}

func (h *Handler) OpenCredentialsEditor(c *gin.Context) {
	_, sess := h.session(c)
	sess.Lock()
	defer sess.Unlock()

	scr := &sess.Credentials
	h.service.Credentials.OpenEditor(scr)
	if !scr.EditOpen {
		newErrorResponse(c, http.StatusConflict, "Credenciais ainda não carregadas")
		return
	}
	wrapOkJSON(c, map[string]interface{}{
		"edit_open": true,
		"form":      scr.EditForm,
	})
}

func (h *Handler) CloseCredentialsEditor(c *gin.Context) {
	_, sess := h.session(c)
	sess.Lock()
	defer sess.Unlock()

	h.service.Credentials.CloseEditor(&sess.Credentials)
	wrapOkJSON(c, map[string]interface{}{
		"edit_open": false,
	})
}

type editFieldInput struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

func (h *Handler) EditCredentialsField(c *gin.Context) {
	var input editFieldInput
	if err := c.BindJSON(&input); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	_, sess := h.session(c)
	sess.Lock()
	defer sess.Unlock()

	scr := &sess.Credentials
	if err := h.service.Credentials.UpdateField(scr, input.Field, input.Value); err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	wrapOkJSON(c, map[string]interface{}{
		"form": scr.EditForm,
	})
}

func (h *Handler) UpdateCredentials(c *gin.Context) {
	token, sess := h.session(c)
	sess.Lock()
	defer sess.Unlock()

	scr := &sess.Credentials
	if err := h.service.Credentials.Submit(scr, token); err != nil {
		newErrorResponse(c, errorStatus(err), scr.EditError)
		return
	}
	wrapOkJSON(c, map[string]interface{}{
		"message": "Credenciais PixUp atualizadas com sucesso!",
		"data":    buildCredentialsView(scr, time.Now()),
	})
}

type copyFieldInput struct {
	Field string `json:"field" binding:"required"`
}

func (h *Handler) CopyCredentialsField(c *gin.Context) {
	var input copyFieldInput
	if err := c.BindJSON(&input); err != nil {
		newErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	_, sess := h.session(c)
	sess.Lock()
	defer sess.Unlock()

	scr := &sess.Credentials
	value, err := h.service.Credentials.Copy(scr, input.Field)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	wrapOkJSON(c, map[string]interface{}{
		"message":      "Copiado para a área de transferência!",
		"value":        value,
		"copied_field": scr.ActiveCopiedField(time.Now()),
	})
}

func (h *Handler) ToggleCredentialsVisibility(c *gin.Context) {
	_, sess := h.session(c)
	sess.Lock()
	defer sess.Unlock()

	visible := h.service.Credentials.ToggleSecrets(&sess.Credentials)
	wrapOkJSON(c, map[string]interface{}{
		"show_secrets": visible,
	})
}
