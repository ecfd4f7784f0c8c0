package service

import (
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"ultrapanel_admin_back/models"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatCurrency formata um valor decimal em string com símbolo e
// agrupamento pt-BR, ex: "R$ 1.234,56".
func FormatCurrency(amount, symbol string) string {
	if symbol == "" {
		symbol = "R$"
	}
	value, _ := strconv.ParseFloat(amount, 64)
	return FormatAmount(value, symbol)
}

func FormatAmount(value float64, symbol string) string {
	if symbol == "" {
		symbol = "R$"
	}
	return ptBR.Sprintf("%s %.2f", symbol, value)
}

// FormatDate segue a convenção fixa dia/mês/ano hora:minuto:segundo.
func FormatDate(t time.Time) string {
	return t.Format("02/01/2006 15:04:05")
}

func StatusLabel(status bool) string {
	if status {
		return "Processado"
	}
	return "Pendente"
}

func ConfiguredLabel(configured bool) string {
	if configured {
		return "Configurado"
	}
	return "Não Configurado"
}

// AbbreviateID encurta identificadores longos para exibição em tabela,
// mantendo os 8 primeiros e os 8 últimos caracteres.
func AbbreviateID(id string) string {
	if len(id) <= 16 {
		return id
	}
	return id[:8] + "..." + id[len(id)-8:]
}

// ProcessedAtLabel rende a data de processamento ou "-" para saques pendentes.
func ProcessedAtLabel(w models.Withdrawal) string {
	if w.ProcessedAt == nil {
		return "-"
	}
	return FormatDate(*w.ProcessedAt)
}
