package service

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"github.com/sirupsen/logrus"

	"ultrapanel_admin_back/models"
	"ultrapanel_admin_back/pkg/panelapi"
	"ultrapanel_admin_back/pkg/repository"
)

type Credentials interface {
	Fetch(scr *models.CredentialsScreen, token string) error
	OpenEditor(scr *models.CredentialsScreen)
	CloseEditor(scr *models.CredentialsScreen)
	UpdateField(scr *models.CredentialsScreen, field, value string) error
	Submit(scr *models.CredentialsScreen, token string) error
	Copy(scr *models.CredentialsScreen, field string) (string, error)
	ToggleSecrets(scr *models.CredentialsScreen) bool
}

type Withdrawals interface {
	Fetch(scr *models.WithdrawalsScreen, token string, page int) error
	Approve(scr *models.WithdrawalsScreen, token, id string) error
	Reject(scr *models.WithdrawalsScreen, token, id string) error
	Details(id string)
}

type Audit interface {
	History(limit int) ([]models.AuditEntry, error)
}

type Service struct {
	Credentials
	Withdrawals
	Audit
}

func NewService(client *panelapi.Client, repos *repository.Repository) *Service {
	var audit repository.Audit
	if repos != nil {
		audit = repos.Audit
	}
	return &Service{
		Credentials: NewCredentialsService(client, audit),
		Withdrawals: NewWithdrawalsService(client, audit),
		Audit:       NewAuditService(audit),
	}
}

// userMessage traduz um erro do cliente do painel para a mensagem exibida ao
// usuário: erros tipados carregam o próprio texto, falha de transporte cai na
// mensagem genérica da operação.
func userMessage(err error, fallback string) string {
	var apiErr *panelapi.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	if errors.Is(err, panelapi.ErrSemToken) ||
		errors.Is(err, panelapi.ErrTokenInvalido) ||
		errors.Is(err, panelapi.ErrRespostaAPI) {
		return err.Error()
	}
	return fallback
}

// tokenFingerprint deriva o identificador do ator para a trilha de auditoria.
func tokenFingerprint(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:4])
}

func recordAudit(audit repository.Audit, action, target, token string) {
	if audit == nil {
		return
	}
	entry := models.AuditEntry{
		Action: action,
		Target: target,
		Actor:  tokenFingerprint(token),
	}
	if _, err := audit.RecordAction(entry); err != nil {
		logrus.Errorf("Erro ao registrar auditoria de %s: %s", action, err)
	}
}
