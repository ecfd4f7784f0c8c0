package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"ultrapanel_admin_back/models"
	"ultrapanel_admin_back/pkg/service"
)

type withdrawalRow struct {
	ID          string `json:"id"`
	ShortID     string `json:"short_id"`
	StatusLabel string `json:"status_label"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Amount      string `json:"amount"`
	PixKey      string `json:"pix_key"`
	PixType     string `json:"pix_type"`
	Document    string `json:"document"`
	CreatedAt   string `json:"created_at"`
	ProcessedAt string `json:"processed_at"`
	CanModerate bool   `json:"can_moderate"`
}

type statCard struct {
	Title       string `json:"title"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

// renderWithdrawals monta o modelo de exibição da tela: linhas filtradas e
// formatadas, cards de estatística da página carregada e o banner de contagem.
func renderWithdrawals(scr *models.WithdrawalsScreen) map[string]interface{} {
	filtered := service.Filter(scr.Withdrawals, scr.Search)
	stats := service.ComputeStats(scr.Withdrawals)

	rows := make([]withdrawalRow, 0, len(filtered))
	for _, w := range filtered {
		rows = append(rows, withdrawalRow{
			ID:          w.ID,
			ShortID:     service.AbbreviateID(w.ID),
			StatusLabel: service.StatusLabel(w.Status),
			Username:    w.User.Username,
			Email:       w.User.Email,
			Amount:      service.FormatCurrency(w.Amount, w.Symbol),
			PixKey:      w.PixKey,
			PixType:     w.PixType,
			Document:    w.Document,
			CreatedAt:   service.FormatDate(w.CreatedAt),
			ProcessedAt: service.ProcessedAtLabel(w),
			CanModerate: !w.Status,
		})
	}

	cards := []statCard{
		{Title: "Total processado", Value: service.FormatAmount(stats.TotalProcessed, ""), Description: "Saques confirmados"},
		{Title: "Total pendente", Value: service.FormatAmount(stats.TotalPending, ""), Description: "Aguardando processamento"},
		{Title: "Total de Solicitações", Value: strconv.Itoa(stats.TotalRequests), Description: "Pedidos de saque"},
	}

	return map[string]interface{}{
		"withdrawals": rows,
		"pagination":  scr.Pagination,
		"stats":       stats,
		"stats_cards": cards,
		"banner":      fmt.Sprintf("Total de %d solicitações", scr.Pagination.Total),
	}
}

func (h *Handler) GetWithdrawals(c *gin.Context) {
	token, sess := h.session(c)
	sess.Lock()
	defer sess.Unlock()

	scr := &sess.Withdrawals
	scr.Search = c.Query("search")

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "parâmetro page inválido")
		return
	}

	if err := h.service.Withdrawals.Fetch(scr, token, page); err != nil {
		newErrorResponse(c, errorStatus(err), scr.Error)
		return
	}
	wrapOkJSON(c, map[string]interface{}{
		"data": renderWithdrawals(scr),
	})
}

// moderationMessage escolhe o texto exibido quando uma moderação falha: a
// releitura que falhou já deixou a mensagem amigável na tela, senão o erro
// inline da própria moderação.
func moderationMessage(scr *models.WithdrawalsScreen, err error) string {
	if scr.Error != "" {
		return scr.Error
	}
	return err.Error()
}

func (h *Handler) ApproveWithdrawal(c *gin.Context) {
	token, sess := h.session(c)
	sess.Lock()
	defer sess.Unlock()

	scr := &sess.Withdrawals
	if err := h.service.Withdrawals.Approve(scr, token, c.Param("id")); err != nil {
		newErrorResponse(c, errorStatus(err), moderationMessage(scr, err))
		return
	}
	wrapOkJSON(c, map[string]interface{}{
		"message": "Saque aprovado com sucesso",
		"data":    renderWithdrawals(scr),
	})
}

func (h *Handler) RejectWithdrawal(c *gin.Context) {
	token, sess := h.session(c)
	sess.Lock()
	defer sess.Unlock()

	scr := &sess.Withdrawals
	if err := h.service.Withdrawals.Reject(scr, token, c.Param("id")); err != nil {
		newErrorResponse(c, errorStatus(err), moderationMessage(scr, err))
		return
	}
	wrapOkJSON(c, map[string]interface{}{
		"message": "Saque negado com sucesso",
		"data":    renderWithdrawals(scr),
	})
}

func (h *Handler) GetWithdrawalDetails(c *gin.Context) {
	id := c.Param("id")
	h.service.Withdrawals.Details(id)
	wrapOkJSON(c, map[string]interface{}{
		"id":      id,
		"message": "Visualização detalhada ainda não implementada",
	})
}

func (h *Handler) GetAuditHistory(c *gin.Context) {
	entries, err := h.service.Audit.History(50)
	if err != nil {
		newErrorResponse(c, http.StatusInternalServerError, "Erro ao carregar trilha de auditoria")
		return
	}
	wrapOkJSON(c, map[string]interface{}{
		"data": entries,
	})
}
