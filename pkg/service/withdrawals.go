package service

import (
	"errors"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"ultrapanel_admin_back/models"
	"ultrapanel_admin_back/pkg/panelapi"
	"ultrapanel_admin_back/pkg/repository"
)

// PageLimit é o tamanho fixo de página da listagem de saques.
const PageLimit = 20

type WithdrawalsService struct {
	client *panelapi.Client
	audit  repository.Audit
}

func NewWithdrawalsService(client *panelapi.Client, audit repository.Audit) *WithdrawalsService {
	return &WithdrawalsService{
		client: client,
		audit:  audit,
	}
}

// Fetch substitui a lista local e a paginação por inteiro com a página pedida.
func (s *WithdrawalsService) Fetch(scr *models.WithdrawalsScreen, token string, page int) error {
	if page < 1 {
		page = 1
	}
	scr.Loading = true
	scr.Error = ""
	defer func() { scr.Loading = false }()

	withdrawals, pagination, err := s.client.ListWithdrawals(token, page, PageLimit)
	if err != nil {
		scr.Error = userMessage(err, "Erro ao carregar saques")
		logrus.Errorf("Erro ao buscar saques: %s", err)
		return err
	}

	scr.Withdrawals = withdrawals
	scr.Pagination = pagination
	return nil
}

// Approve aprova o saque no painel e refaz o fetch da página atual. Nenhuma
// mutação otimista da lista local.
func (s *WithdrawalsService) Approve(scr *models.WithdrawalsScreen, token, id string) error {
	if err := s.client.ApproveWithdrawal(token, id); err != nil {
		logrus.Errorf("Erro ao aprovar saque: %s", err)
		return errors.New("Erro ao aprovar saque. Tente novamente.")
	}
	recordAudit(s.audit, models.ActionWithdrawalApprove, id, token)
	return s.Fetch(scr, token, scr.Pagination.Page)
}

// Reject nega o saque, simétrico ao Approve.
func (s *WithdrawalsService) Reject(scr *models.WithdrawalsScreen, token, id string) error {
	if err := s.client.RejectWithdrawal(token, id); err != nil {
		logrus.Errorf("Erro ao negar saque: %s", err)
		return errors.New("Erro ao negar saque. Tente novamente.")
	}
	recordAudit(s.audit, models.ActionWithdrawalReject, id, token)
	return s.Fetch(scr, token, scr.Pagination.Page)
}

// Details é o ponto de extensão da visualização detalhada: por enquanto só
// registra o identificador.
func (s *WithdrawalsService) Details(id string) {
	logrus.Infof("Visualizar saque: %s", id)
}

// Filter aplica o termo de busca sobre a página já carregada, preservando a
// ordem. Usuário, email, id e chave PIX casam sem diferenciar maiúsculas;
// valor e documento casam como substring exata.
func Filter(list []models.Withdrawal, term string) []models.Withdrawal {
	if term == "" {
		return list
	}
	lower := strings.ToLower(term)
	out := make([]models.Withdrawal, 0, len(list))
	for _, w := range list {
		if strings.Contains(strings.ToLower(w.User.Username), lower) ||
			strings.Contains(strings.ToLower(w.User.Email), lower) ||
			strings.Contains(strings.ToLower(w.ID), lower) ||
			strings.Contains(w.Amount, term) ||
			strings.Contains(strings.ToLower(w.PixKey), lower) ||
			strings.Contains(w.Document, term) {
			out = append(out, w)
		}
	}
	return out
}

// Stats agrega a página carregada: somas por status e contagem total.
type Stats struct {
	TotalProcessed float64 `json:"total_processed"`
	TotalPending   float64 `json:"total_pending"`
	TotalRequests  int     `json:"total_requests"`
}

func ComputeStats(list []models.Withdrawal) Stats {
	stats := Stats{TotalRequests: len(list)}
	for _, w := range list {
		value, err := strconv.ParseFloat(w.Amount, 64)
		if err != nil {
			continue
		}
		if w.Status {
			stats.TotalProcessed += value
		} else {
			stats.TotalPending += value
		}
	}
	return stats
}
