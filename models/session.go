package models

import (
	"sync"
	"time"
)

// CopyBadgeTTL é a janela em que o indicador "copiado" de um campo fica ativo.
const CopyBadgeTTL = 2 * time.Second

// CredentialsScreen guarda o estado de visualização da tela de credenciais
// de uma sessão administrativa.
type CredentialsScreen struct {
	Credentials *Credentials
	Loading     bool
	Error       string
	EditOpen    bool
	EditSaving  bool
	EditForm    CredentialsForm
	EditError   string
	ShowSecrets bool
	CopiedField string
	CopiedAt    time.Time
}

// ActiveCopiedField devolve o campo marcado como copiado, ou "" se a janela
// de exibição já expirou.
func (s *CredentialsScreen) ActiveCopiedField(now time.Time) string {
	if s.CopiedField == "" || now.Sub(s.CopiedAt) > CopyBadgeTTL {
		return ""
	}
	return s.CopiedField
}

// WithdrawalsScreen guarda o estado de visualização da tela de saques.
// A lista é um cache da página carregada, substituído por inteiro a cada fetch.
type WithdrawalsScreen struct {
	Withdrawals []Withdrawal
	Pagination  Pagination
	Loading     bool
	Error       string
	Search      string
}

// Session agrupa o estado das duas telas de um administrador. O mutex
// serializa os handlers da sessão, cada mutação acontece com ele tomado.
type Session struct {
	sync.Mutex
	Credentials CredentialsScreen
	Withdrawals WithdrawalsScreen
}

func NewSession() *Session {
	return &Session{
		Credentials: CredentialsScreen{Loading: true},
		Withdrawals: WithdrawalsScreen{
			Loading:    true,
			Pagination: Pagination{Page: 1, Limit: 20},
		},
	}
}
