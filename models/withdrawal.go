package models

import (
	"encoding/json"
	"time"
)

type WithdrawalUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Withdrawal é uma solicitação de saque como retornada pelo painel.
// Status é binário: false = pendente, true = processado. ProcessedAt
// só é preenchido quando o saque foi processado.
type Withdrawal struct {
	ID            string          `json:"id"`
	UserID        string          `json:"userId"`
	WalletID      string          `json:"walletId"`
	Amount        string          `json:"amount"` // valor decimal como string, ex: "150.00"
	Document      string          `json:"document"`
	PixKey        string          `json:"pix_key"`
	PixType       string          `json:"pix_type"` // EMAIL, CPF, CNPJ, PHONE, RANDOM
	Currency      string          `json:"currency"`
	Symbol        string          `json:"symbol"`
	Status        bool            `json:"status"`
	PaymentMethod string          `json:"payment_method"`
	Metadata      json.RawMessage `json:"metadata,omitempty"`
	ProcessedAt   *time.Time      `json:"processed_at"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	User          WithdrawalUser  `json:"user"`
}

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}
