package repository

import (
	"github.com/jmoiron/sqlx"

	"ultrapanel_admin_back/models"
)

type Audit interface {
	RecordAction(entry models.AuditEntry) (int64, error)
	History(limit int) ([]models.AuditEntry, error)
}

type Repository struct {
	Audit
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Audit: NewAuditPostgres(db),
	}
}
