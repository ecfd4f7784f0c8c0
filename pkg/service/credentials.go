package service

import (
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"ultrapanel_admin_back/models"
	"ultrapanel_admin_back/pkg/panelapi"
	"ultrapanel_admin_back/pkg/repository"
	"ultrapanel_admin_back/pkg/utils"
)

// DefaultPixupBaseURL é o endpoint de produção da PixUp, usado quando a
// configuração ainda não tem uma URL base.
const DefaultPixupBaseURL = "https://api.pixupbr.com/v2"

type CredentialsService struct {
	client *panelapi.Client
	audit  repository.Audit
}

func NewCredentialsService(client *panelapi.Client, audit repository.Audit) *CredentialsService {
	return &CredentialsService{
		client: client,
		audit:  audit,
	}
}

// Fetch recarrega o registro de credenciais do painel e deriva is_configured.
// Sempre limpa o flag de carregamento, com sucesso ou falha.
func (s *CredentialsService) Fetch(scr *models.CredentialsScreen, token string) error {
	scr.Loading = true
	scr.Error = ""
	defer func() { scr.Loading = false }()

	settings, err := s.client.GetSettings(token)
	if err != nil {
		scr.Error = userMessage(err, "Erro ao carregar credenciais")
		logrus.Errorf("Erro ao carregar credenciais: %s", err)
		return err
	}

	baseURL := settings.BaseURL
	if baseURL == "" {
		baseURL = DefaultPixupBaseURL
	}
	scr.Credentials = &models.Credentials{
		ClientID:     settings.ClientID,
		ClientSecret: settings.ClientSecret,
		BaseURL:      baseURL,
		IsConfigured: settings.ClientID != "" && settings.ClientSecret != "" && settings.BaseURL != "",
	}
	return nil
}

// OpenEditor semeia a cópia de rascunho a partir do registro atual e abre o
// modal. Sem registro carregado não faz nada.
func (s *CredentialsService) OpenEditor(scr *models.CredentialsScreen) {
	if scr.Credentials == nil {
		return
	}
	baseURL := scr.Credentials.BaseURL
	if baseURL == "" {
		baseURL = DefaultPixupBaseURL
	}
	scr.EditForm = models.CredentialsForm{
		ClientID:     scr.Credentials.ClientID,
		ClientSecret: scr.Credentials.ClientSecret,
		BaseURL:      baseURL,
	}
	scr.EditOpen = true
	scr.EditError = ""
}

// CloseEditor descarta o rascunho e fecha o modal.
func (s *CredentialsService) CloseEditor(scr *models.CredentialsScreen) {
	scr.EditOpen = false
	scr.EditForm = models.CredentialsForm{BaseURL: DefaultPixupBaseURL}
	scr.EditError = ""
}

// UpdateField muta um campo do rascunho. Nenhuma validação local, o painel é
// a autoridade sobre o conteúdo.
func (s *CredentialsService) UpdateField(scr *models.CredentialsScreen, field, value string) error {
	switch field {
	case "pixup_client_id":
		scr.EditForm.ClientID = value
	case "pixup_client_secret":
		scr.EditForm.ClientSecret = value
	case "pixup_base_url":
		scr.EditForm.BaseURL = value
	default:
		return errors.New("campo desconhecido: " + field)
	}
	return nil
}

// Submit envia o rascunho inteiro ao painel. Falha do envio mantém o modal
// aberto com o erro inline; sucesso fecha o modal e refaz o Fetch para
// reconciliar com a fonte da verdade. Uma releitura que falhar não desfaz o
// envio já aceito: o erro fica na tela como erro de página.
func (s *CredentialsService) Submit(scr *models.CredentialsScreen, token string) error {
	scr.EditSaving = true
	scr.EditError = ""
	defer func() { scr.EditSaving = false }()

	form := scr.EditForm
	if err := s.client.UpdateCredentials(token, form); err != nil {
		scr.EditError = userMessage(err, "Erro ao atualizar credenciais")
		logrus.Errorf("Erro ao atualizar credenciais: %s", err)
		return err
	}

	s.CloseEditor(scr)
	recordAudit(s.audit, models.ActionCredentialsUpdate, form.ClientID, token)
	go utils.SendCredentialsAlert(form.ClientID, MaskSecret(form.ClientSecret), form.BaseURL)
	_ = s.Fetch(scr, token)
	return nil
}

// Copy resolve o valor bruto do campo marcado e liga o indicador "copiado",
// que expira sozinho após a janela fixa.
func (s *CredentialsService) Copy(scr *models.CredentialsScreen, field string) (string, error) {
	if scr.Credentials == nil {
		return "", errors.New("Credenciais ainda não carregadas")
	}

	var value string
	switch field {
	case "client_id":
		value = scr.Credentials.ClientID
	case "client_secret":
		value = scr.Credentials.ClientSecret
	case "base_url":
		value = scr.Credentials.BaseURL
	default:
		return "", errors.New("Erro ao copiar para a área de transferência")
	}

	scr.CopiedField = field
	scr.CopiedAt = time.Now()
	return value, nil
}

func (s *CredentialsService) ToggleSecrets(scr *models.CredentialsScreen) bool {
	scr.ShowSecrets = !scr.ShowSecrets
	return scr.ShowSecrets
}

// MaskSecret é transformação cosmética de exibição: segredos de até 8
// caracteres viram só asteriscos, maiores mostram os 4 primeiros e os 4
// últimos. Não é controle de segurança.
func MaskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 8 {
		return strings.Repeat("*", len(secret))
	}
	return secret[:4] + strings.Repeat("*", len(secret)-8) + secret[len(secret)-4:]
}
