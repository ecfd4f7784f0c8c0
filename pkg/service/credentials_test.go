package service_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"ultrapanel_admin_back/models"
	"ultrapanel_admin_back/pkg/panelapi"
	"ultrapanel_admin_back/pkg/service"
)

// fakePanel simula o endpoint de configurações do painel: GET /setting serve o
// registro guardado, PUT /setting/credentials o substitui canonicalizando o
// client_id em minúsculas.
type fakePanel struct {
	mu        sync.Mutex
	settings  models.CredentialsForm
	empty     bool
	getStatus int
	getBody   string
	putStatus int
	putBody   string
	gets      int
	puts      int
}

func (f *fakePanel) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/setting":
			f.gets++
			if f.getStatus != 0 {
				w.WriteHeader(f.getStatus)
				fmt.Fprint(w, f.getBody)
				return
			}
			if f.empty {
				fmt.Fprint(w, `{"data":[]}`)
				return
			}
			json.NewEncoder(w).Encode(map[string]interface{}{"data": []models.CredentialsForm{f.settings}})
		case r.Method == http.MethodPut && r.URL.Path == "/setting/credentials":
			f.puts++
			if f.putStatus != 0 {
				w.WriteHeader(f.putStatus)
				fmt.Fprint(w, f.putBody)
				return
			}
			var form models.CredentialsForm
			if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
				t.Errorf("corpo do PUT inválido: %v", err)
			}
			form.ClientID = strings.ToLower(form.ClientID)
			f.settings = form
			fmt.Fprint(w, `{"message":"ok"}`)
		default:
			t.Errorf("requisição inesperada: %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func newCredentialsEnv(t *testing.T, panel *fakePanel) (*service.CredentialsService, *models.CredentialsScreen) {
	t.Helper()
	srv := httptest.NewServer(panel.handler(t))
	t.Cleanup(srv.Close)
	client := panelapi.NewClient(srv.URL, 2*time.Second)
	return service.NewCredentialsService(client, nil), &models.CredentialsScreen{}
}

func TestMaskSecret(t *testing.T) {
	tests := []struct {
		secret string
		want   string
	}{
		{"", ""},
		{"a", "*"},
		{"12345678", "********"},
		{"123456789", "1234*6789"},
		{"1234567890AB", "1234****90AB"},
		{"sk_live_abcdef123456", "sk_l************3456"},
	}
	for _, tt := range tests {
		if got := service.MaskSecret(tt.secret); got != tt.want {
			t.Errorf("MaskSecret(%q) = %q, esperado %q", tt.secret, got, tt.want)
		}
	}
}

func TestFetchDerivaIsConfigured(t *testing.T) {
	tests := []struct {
		name       string
		settings   models.CredentialsForm
		empty      bool
		configured bool
	}{
		{
			name:       "tudo preenchido",
			settings:   models.CredentialsForm{ClientID: "cid", ClientSecret: "secret", BaseURL: "https://api.pixupbr.com/v2"},
			configured: true,
		},
		{
			name:     "sem segredo",
			settings: models.CredentialsForm{ClientID: "cid", BaseURL: "https://api.pixupbr.com/v2"},
		},
		{
			name:     "sem base url",
			settings: models.CredentialsForm{ClientID: "cid", ClientSecret: "secret"},
		},
		{
			name:  "lista vazia",
			empty: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, scr := newCredentialsEnv(t, &fakePanel{settings: tt.settings, empty: tt.empty})

			if err := svc.Fetch(scr, "tok"); err != nil {
				t.Fatalf("erro inesperado: %v", err)
			}
			if scr.Loading {
				t.Errorf("flag de carregamento deveria estar limpo")
			}
			if scr.Credentials == nil {
				t.Fatalf("registro não carregado")
			}
			if scr.Credentials.IsConfigured != tt.configured {
				t.Errorf("is_configured = %v, esperado %v", scr.Credentials.IsConfigured, tt.configured)
			}
			if scr.Credentials.BaseURL == "" {
				t.Errorf("base url deveria cair no endpoint de produção quando ausente")
			}
		})
	}
}

func TestFetchErroUsaMensagemDoPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"message":"Painel em manutenção"}`)
	}))
	t.Cleanup(srv.Close)
	svc := service.NewCredentialsService(panelapi.NewClient(srv.URL, 2*time.Second), nil)

	scr := &models.CredentialsScreen{}
	if err := svc.Fetch(scr, "tok"); err == nil {
		t.Fatalf("esperado erro")
	}
	if scr.Error != "Painel em manutenção" {
		t.Errorf("erro da tela = %q, esperado a mensagem do payload", scr.Error)
	}
	if scr.Loading {
		t.Errorf("flag de carregamento deveria estar limpo também na falha")
	}
}

func TestFetchSemToken(t *testing.T) {
	panel := &fakePanel{}
	svc, scr := newCredentialsEnv(t, panel)

	if err := svc.Fetch(scr, ""); err == nil {
		t.Fatalf("esperado erro sem token")
	}
	if scr.Error != "Token de autenticação não encontrado" {
		t.Errorf("erro da tela = %q", scr.Error)
	}
	if panel.gets != 0 {
		t.Errorf("nenhuma requisição deveria ter saído, houve %d", panel.gets)
	}
}

func TestEditorAbreFechaESemeia(t *testing.T) {
	svc, scr := newCredentialsEnv(t, &fakePanel{
		settings: models.CredentialsForm{ClientID: "cid", ClientSecret: "secret", BaseURL: "https://sandbox-api.pixupbr.com/v2"},
	})

	// abrir antes de carregar não faz nada
	svc.OpenEditor(scr)
	if scr.EditOpen {
		t.Fatalf("modal não deveria abrir sem registro carregado")
	}

	if err := svc.Fetch(scr, "tok"); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	svc.OpenEditor(scr)
	if !scr.EditOpen {
		t.Fatalf("modal deveria estar aberto")
	}
	if scr.EditForm.ClientID != "cid" || scr.EditForm.BaseURL != "https://sandbox-api.pixupbr.com/v2" {
		t.Errorf("rascunho não foi semeado do registro: %+v", scr.EditForm)
	}

	svc.CloseEditor(scr)
	if scr.EditOpen {
		t.Errorf("modal deveria estar fechado")
	}
	if scr.EditForm.ClientID != "" || scr.EditForm.BaseURL != service.DefaultPixupBaseURL {
		t.Errorf("rascunho deveria voltar ao padrão: %+v", scr.EditForm)
	}
}

func TestUpdateFieldMutaSomenteORascunho(t *testing.T) {
	svc, scr := newCredentialsEnv(t, &fakePanel{
		settings: models.CredentialsForm{ClientID: "cid", ClientSecret: "secret", BaseURL: "https://api.pixupbr.com/v2"},
	})
	if err := svc.Fetch(scr, "tok"); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	svc.OpenEditor(scr)

	if err := svc.UpdateField(scr, "pixup_client_id", "outro"); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if scr.EditForm.ClientID != "outro" {
		t.Errorf("rascunho não mudou")
	}
	if scr.Credentials.ClientID != "cid" {
		t.Errorf("registro exibido não pode mudar antes do servidor confirmar")
	}
	if err := svc.UpdateField(scr, "campo_que_nao_existe", "x"); err == nil {
		t.Errorf("campo desconhecido deveria dar erro")
	}
}

func TestSubmitSucessoFechaModalEReconcilia(t *testing.T) {
	panel := &fakePanel{
		settings: models.CredentialsForm{ClientID: "cid", ClientSecret: "secret", BaseURL: "https://api.pixupbr.com/v2"},
	}
	svc, scr := newCredentialsEnv(t, panel)

	if err := svc.Fetch(scr, "tok"); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	svc.OpenEditor(scr)
	svc.UpdateField(scr, "pixup_client_id", "NOVO-ID")
	svc.UpdateField(scr, "pixup_client_secret", "novo-segredo")

	if err := svc.Submit(scr, "tok"); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if scr.EditOpen {
		t.Errorf("modal deveria fechar após o sucesso")
	}
	if panel.puts != 1 || panel.gets != 2 {
		t.Errorf("esperado 1 PUT e 2 GETs (reconciliação), veio %d/%d", panel.puts, panel.gets)
	}
	// o registro exibido vem da releitura do painel, não do rascunho:
	// o painel canonicaliza o client_id em minúsculas
	if scr.Credentials.ClientID != "novo-id" {
		t.Errorf("registro exibido = %q, esperado o estado do servidor", scr.Credentials.ClientID)
	}
	if scr.Credentials.ClientSecret != "novo-segredo" {
		t.Errorf("segredo não reconciliado: %q", scr.Credentials.ClientSecret)
	}
}

func TestSubmitFalhaMantemModalAberto(t *testing.T) {
	panel := &fakePanel{
		settings:  models.CredentialsForm{ClientID: "cid", ClientSecret: "secret", BaseURL: "https://api.pixupbr.com/v2"},
		putStatus: http.StatusBadRequest,
		putBody:   `{"message":"Credenciais inválidas"}`,
	}
	svc, scr := newCredentialsEnv(t, panel)

	if err := svc.Fetch(scr, "tok"); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	svc.OpenEditor(scr)
	svc.UpdateField(scr, "pixup_client_id", "novo")

	if err := svc.Submit(scr, "tok"); err == nil {
		t.Fatalf("esperado erro")
	}
	if !scr.EditOpen {
		t.Errorf("modal deveria continuar aberto na falha")
	}
	if scr.EditError != "Credenciais inválidas" {
		t.Errorf("erro inline = %q", scr.EditError)
	}
	if scr.Credentials.ClientID != "cid" {
		t.Errorf("registro exibido não pode mudar na falha")
	}
	if panel.gets != 1 {
		t.Errorf("não deveria refazer o fetch na falha, GETs = %d", panel.gets)
	}
}

func TestSubmitComReleituraFalhaAindaESucesso(t *testing.T) {
	panel := &fakePanel{
		settings: models.CredentialsForm{ClientID: "cid", ClientSecret: "secret", BaseURL: "https://api.pixupbr.com/v2"},
	}
	svc, scr := newCredentialsEnv(t, panel)

	if err := svc.Fetch(scr, "tok"); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	svc.OpenEditor(scr)
	svc.UpdateField(scr, "pixup_client_id", "novo")

	panel.mu.Lock()
	panel.getStatus = http.StatusInternalServerError
	panel.getBody = `{"message":"Painel em manutenção"}`
	panel.mu.Unlock()

	// o painel aceitou o PUT; só a releitura falha
	if err := svc.Submit(scr, "tok"); err != nil {
		t.Fatalf("envio aceito não deveria virar erro: %v", err)
	}
	if scr.EditOpen {
		t.Errorf("modal deveria fechar, o envio foi concluído")
	}
	if scr.EditError != "" {
		t.Errorf("erro inline deveria estar limpo, veio %q", scr.EditError)
	}
	if scr.Error != "Painel em manutenção" {
		t.Errorf("a falha da releitura vira erro de página, veio %q", scr.Error)
	}
	if panel.puts != 1 {
		t.Errorf("esperado 1 PUT, veio %d", panel.puts)
	}
}

func TestCopyMarcaCampoPorJanelaLimitada(t *testing.T) {
	svc, scr := newCredentialsEnv(t, &fakePanel{
		settings: models.CredentialsForm{ClientID: "cid", ClientSecret: "super-secreto", BaseURL: "https://api.pixupbr.com/v2"},
	})
	if err := svc.Fetch(scr, "tok"); err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	value, err := svc.Copy(scr, "client_secret")
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if value != "super-secreto" {
		t.Errorf("a cópia devolve o valor bruto, veio %q", value)
	}

	now := time.Now()
	if got := scr.ActiveCopiedField(now); got != "client_secret" {
		t.Errorf("indicador dentro da janela = %q", got)
	}
	if got := scr.ActiveCopiedField(now.Add(models.CopyBadgeTTL + 50*time.Millisecond)); got != "" {
		t.Errorf("indicador deveria expirar sozinho, veio %q", got)
	}

	if _, err := svc.Copy(scr, "campo_invalido"); err == nil {
		t.Errorf("campo desconhecido é o caminho de falha da cópia")
	}
}

func TestCopySemRegistroCarregado(t *testing.T) {
	svc, scr := newCredentialsEnv(t, &fakePanel{})
	if _, err := svc.Copy(scr, "client_id"); err == nil {
		t.Errorf("copiar antes do fetch deveria falhar")
	}
}

func TestToggleSecrets(t *testing.T) {
	svc, scr := newCredentialsEnv(t, &fakePanel{})
	if got := svc.ToggleSecrets(scr); !got {
		t.Errorf("primeiro toggle deveria ligar a visibilidade")
	}
	if got := svc.ToggleSecrets(scr); got {
		t.Errorf("segundo toggle deveria desligar")
	}
}
