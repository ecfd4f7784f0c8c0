package models

// Credentials representa as credenciais PixUp do tenant, sempre o elemento 0
// da lista retornada por GET /setting no painel.
type Credentials struct {
	ClientID     string `json:"pixup_client_id"`
	ClientSecret string `json:"pixup_client_secret"`
	BaseURL      string `json:"pixup_base_url"`
	IsConfigured bool   `json:"is_configured"`
}

// CredentialsForm é a cópia de rascunho editada no modal e o corpo enviado
// em PUT /setting/credentials.
type CredentialsForm struct {
	ClientID     string `json:"pixup_client_id"`
	ClientSecret string `json:"pixup_client_secret"`
	BaseURL      string `json:"pixup_base_url"`
}
