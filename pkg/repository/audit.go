package repository

import (
	"github.com/jmoiron/sqlx"

	"ultrapanel_admin_back/models"
)

type AuditPostgres struct {
	db *sqlx.DB
}

func NewAuditPostgres(db *sqlx.DB) *AuditPostgres {
	return &AuditPostgres{db: db}
}

func (r *AuditPostgres) RecordAction(entry models.AuditEntry) (int64, error) {
	var id int64
	query := `
        INSERT INTO admin_audit (action, target, actor)
        VALUES ($1, $2, $3)
        RETURNING id
    `
	err := r.db.QueryRow(
		query,
		entry.Action,
		entry.Target,
		entry.Actor,
	).Scan(&id)
	return id, err
}

func (r *AuditPostgres) History(limit int) ([]models.AuditEntry, error) {
	var entries []models.AuditEntry
	query := `SELECT id, action, target, actor, created_at FROM admin_audit ORDER BY created_at DESC LIMIT $1`
	err := r.db.Select(&entries, query, limit)
	return entries, err
}
