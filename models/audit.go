package models

import "time"

const (
	ActionCredentialsUpdate = "credentials_update"
	ActionWithdrawalApprove = "withdrawal_approve"
	ActionWithdrawalReject  = "withdrawal_reject"
)

// AuditEntry registra uma ação administrativa executada pelo console.
// Actor é a impressão digital do token da sessão, nunca o token em si.
type AuditEntry struct {
	ID        int64     `db:"id" json:"id"`
	Action    string    `db:"action" json:"action"`
	Target    string    `db:"target" json:"target"`
	Actor     string    `db:"actor" json:"actor"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
