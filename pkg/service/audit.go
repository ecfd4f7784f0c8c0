package service

import (
	"ultrapanel_admin_back/models"
	"ultrapanel_admin_back/pkg/repository"
)

type AuditService struct {
	repos repository.Audit
}

func NewAuditService(repos repository.Audit) *AuditService {
	return &AuditService{
		repos: repos,
	}
}

func (s *AuditService) History(limit int) ([]models.AuditEntry, error) {
	if s.repos == nil {
		return []models.AuditEntry{}, nil
	}
	return s.repos.History(limit)
}
