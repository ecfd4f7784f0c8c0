package panelapi

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"

	"ultrapanel_admin_back/models"
)

const DefaultBaseURL = "https://api.ultrapanel.shop/v1/api"

var (
	// ErrSemToken indica operação chamada sem token de sessão.
	ErrSemToken = errors.New("Token de autenticação não encontrado")
	// ErrTokenInvalido indica resposta 401 do painel na listagem de saques.
	ErrTokenInvalido = errors.New("Token inválido ou expirado")
	// ErrRespostaAPI indica envelope com success=false.
	ErrRespostaAPI = errors.New("Erro na resposta da API")
)

// APIError carrega o status HTTP e a mensagem vinda do payload do painel
// (campo "message"), ou a mensagem genérica da operação quando ausente.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return e.Message
}

type messageEnvelope struct {
	Message string `json:"message"`
}

type settingsEnvelope struct {
	Data []models.CredentialsForm `json:"data"`
}

type withdrawalsEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		Withdrawals []models.Withdrawal `json:"withdrawals"`
		Pagination  models.Pagination   `json:"pagination"`
	} `json:"data"`
}

// Client fala com a API remota do painel. Toda chamada recebe o token da
// sessão explicitamente, não existe estado de autenticação ambiente.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")
	return &Client{http: httpClient}
}

// GetSettings busca GET /setting e devolve o elemento 0 da lista, ou um
// registro vazio quando a lista vier vazia.
func (c *Client) GetSettings(token string) (models.CredentialsForm, error) {
	if token == "" {
		return models.CredentialsForm{}, ErrSemToken
	}

	var out settingsEnvelope
	resp, err := c.http.R().
		SetAuthToken(token).
		SetResult(&out).
		SetError(&messageEnvelope{}).
		Get("/setting")
	if err != nil {
		return models.CredentialsForm{}, errors.Wrap(err, "falha na requisição ao painel")
	}
	if resp.IsError() {
		return models.CredentialsForm{}, apiError(resp, "Erro ao carregar credenciais")
	}
	if len(out.Data) == 0 {
		return models.CredentialsForm{}, nil
	}
	return out.Data[0], nil
}

// UpdateCredentials envia a cópia de rascunho inteira em PUT /setting/credentials.
func (c *Client) UpdateCredentials(token string, form models.CredentialsForm) error {
	if token == "" {
		return ErrSemToken
	}

	resp, err := c.http.R().
		SetAuthToken(token).
		SetBody(form).
		SetError(&messageEnvelope{}).
		Put("/setting/credentials")
	if err != nil {
		return errors.Wrap(err, "falha na requisição ao painel")
	}
	if resp.IsError() {
		return apiError(resp, "Erro ao atualizar credenciais")
	}
	return nil
}

// ListWithdrawals busca uma página de saques. 401 vira ErrTokenInvalido,
// qualquer outro status de erro vira a mensagem genérica de carga.
func (c *Client) ListWithdrawals(token string, page, limit int) ([]models.Withdrawal, models.Pagination, error) {
	if token == "" {
		return nil, models.Pagination{}, ErrSemToken
	}

	var out withdrawalsEnvelope
	resp, err := c.http.R().
		SetAuthToken(token).
		SetQueryParam("page", strconv.Itoa(page)).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&out).
		SetError(&messageEnvelope{}).
		Get("/admin/withdrawals")
	if err != nil {
		return nil, models.Pagination{}, errors.Wrap(err, "falha na requisição ao painel")
	}
	if resp.StatusCode() == http.StatusUnauthorized {
		return nil, models.Pagination{}, ErrTokenInvalido
	}
	if resp.IsError() {
		return nil, models.Pagination{}, &APIError{StatusCode: resp.StatusCode(), Message: "Erro ao carregar saques"}
	}
	if !out.Success {
		return nil, models.Pagination{}, ErrRespostaAPI
	}
	return out.Data.Withdrawals, out.Data.Pagination, nil
}

func (c *Client) ApproveWithdrawal(token, id string) error {
	return c.moderate(token, id, "approve", "Erro ao aprovar saque")
}

func (c *Client) RejectWithdrawal(token, id string) error {
	return c.moderate(token, id, "reject", "Erro ao negar saque")
}

func (c *Client) moderate(token, id, action, fallback string) error {
	if token == "" {
		return ErrSemToken
	}

	resp, err := c.http.R().
		SetAuthToken(token).
		SetError(&messageEnvelope{}).
		Post(fmt.Sprintf("/admin/withdrawals/%s/%s", id, action))
	if err != nil {
		return errors.Wrap(err, "falha na requisição ao painel")
	}
	if resp.IsError() {
		return apiError(resp, fallback)
	}
	return nil
}

func apiError(resp *resty.Response, fallback string) error {
	message := fallback
	if env, ok := resp.Error().(*messageEnvelope); ok && env != nil && env.Message != "" {
		message = env.Message
	}
	return &APIError{StatusCode: resp.StatusCode(), Message: message}
}
