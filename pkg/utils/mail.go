package utils

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/gomail.v2"

	"github.com/mailjet/mailjet-apiv3-go/v4"
)

const alertSubject = "Credenciais PixUp alteradas"

// O segredo chega aqui já mascarado, o valor em claro nunca sai por e-mail.
func alertBody(clientID, maskedSecret, baseURL string) string {
	return fmt.Sprintf(`<body style="margin:0;padding:0;background:#f6f6f6;">
  <table width="100%%" cellpadding="0" cellspacing="0" border="0" style="max-width:600px;background:#f6f6f6;">
    <tr>
      <td style="padding:32px;">
        <h1 style="margin:0 0 12px 0;font-family:Arial,sans-serif;font-size:24px;color:#111;">Credenciais PixUp alteradas</h1>
        <p style="margin:0 0 24px 0;font-family:Arial,sans-serif;font-size:16px;color:#222;">As credenciais de integração com a PixUp foram atualizadas pelo console administrativo.</p>
        <table cellpadding="0" cellspacing="0" border="0" style="width:100%%;">
          <tr>
            <td style="font-family:Arial,sans-serif;font-size:14px;color:#555;padding:6px 0;">Client ID:</td>
            <td style="font-family:Arial,sans-serif;font-size:14px;color:#111;font-weight:bold;padding:6px 0;">%s</td>
          </tr>
          <tr>
            <td style="font-family:Arial,sans-serif;font-size:14px;color:#555;padding:6px 0;">Client Secret:</td>
            <td style="font-family:Arial,sans-serif;font-size:14px;color:#111;font-weight:bold;padding:6px 0;">%s</td>
          </tr>
          <tr>
            <td style="font-family:Arial,sans-serif;font-size:14px;color:#555;padding:6px 0;">Base URL:</td>
            <td style="font-family:Arial,sans-serif;font-size:14px;color:#111;font-weight:bold;padding:6px 0;">%s</td>
          </tr>
        </table>
        <div style="font-family:Arial,sans-serif;font-size:13px;color:#aaa;margin-top:24px;">Se esta alteração não foi esperada, revise a trilha de auditoria do console.</div>
      </td>
    </tr>
  </table>
</body>`, clientID, maskedSecret, baseURL)
}

// SendCredentialsAlert avisa a operação por e-mail que as credenciais PixUp
// mudaram. Tenta o Mailjet primeiro e cai para SMTP quando as chaves não
// estão configuradas. Melhor esforço: falha só gera log.
func SendCredentialsAlert(clientID, maskedSecret, baseURL string) {
	if os.Getenv("MAILJET_API_KEY") != "" && os.Getenv("MAILJET_SECRET_KEY") != "" {
		sendCredentialsAlertMailjet(clientID, maskedSecret, baseURL)
		return
	}
	sendCredentialsAlertSMTP(clientID, maskedSecret, baseURL)
}

func sendCredentialsAlertMailjet(clientID, maskedSecret, baseURL string) {
	fromEmail := os.Getenv("ALERT_FROM_EMAIL")
	toEmail := os.Getenv("ALERT_TO_EMAIL")
	if fromEmail == "" || toEmail == "" {
		log.Println("ALERT_FROM_EMAIL ou ALERT_TO_EMAIL não estão configurados!")
		return
	}

	mj := mailjet.NewMailjetClient(os.Getenv("MAILJET_API_KEY"), os.Getenv("MAILJET_SECRET_KEY"))
	messagesInfo := []mailjet.InfoMessagesV31{
		{
			From: &mailjet.RecipientV31{
				Email: fromEmail,
				Name:  "UltraPanel",
			},
			To: &mailjet.RecipientsV31{
				{
					Email: toEmail,
					Name:  "Operação",
				},
			},
			Subject:  alertSubject,
			HTMLPart: alertBody(clientID, maskedSecret, baseURL),
		},
	}
	messages := &mailjet.MessagesV31{Info: messagesInfo}
	if _, err := mj.SendMailV31(messages); err != nil {
		log.Println("Erro ao enviar alerta pelo Mailjet:", err)
	} else {
		log.Printf("Alerta de credenciais enviado pelo Mailjet para %s", toEmail)
	}
}

func sendCredentialsAlertSMTP(clientID, maskedSecret, baseURL string) {
	from := os.Getenv("ALERT_FROM_EMAIL")
	to := os.Getenv("ALERT_TO_EMAIL")
	password := os.Getenv("GMAIL_APP_PASSWORD")
	if from == "" || to == "" || password == "" {
		log.Println("Alerta de credenciais não enviado: SMTP não configurado")
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", alertSubject)
	m.SetBody("text/html", alertBody(clientID, maskedSecret, baseURL))

	d := gomail.NewDialer("smtp.gmail.com", 587, from, password)
	if err := d.DialAndSend(m); err != nil {
		log.Println("Erro ao enviar alerta por SMTP:", err)
	} else {
		log.Printf("Alerta de credenciais enviado por SMTP para %s", to)
	}
}
