// Package mailer envia os e-mails de notificação do GestorPro via SMTP.
package mailer

import (
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"gestorpro/internal/format"
)

var ErrNotConfigured = errors.New("smtp not configured")

type Mailer struct {
	host string
	port int
	user string
	pass string
	to   []string
}

func New(host string, port int, user, pass string, to []string) *Mailer {
	return &Mailer{host: host, port: port, user: user, pass: pass, to: to}
}

// Configured indica se há servidor SMTP e destinatários definidos.
func (m *Mailer) Configured() bool {
	return m.host != "" && m.user != "" && len(m.to) > 0
}

// SendNewCompanyNotification avisa os destinatários configurados
// sobre um novo cadastro. Uma tentativa só, sem retry.
func (m *Mailer) SendNewCompanyNotification(name, cnpj, tradeName string) error {
	if !m.Configured() {
		return ErrNotConfigured
	}

	displayCNPJ := format.FormatCNPJ(cnpj)
	subject := "Nova Empresa Cadastrada"
	text := fmt.Sprintf(
		"Uma nova empresa foi cadastrada:\r\n\r\nNome: %s\r\nCNPJ: %s\r\nNome Fantasia: %s\r\n",
		name, displayCNPJ, tradeName,
	)
	html := fmt.Sprintf(`<div style="font-family: Arial, sans-serif; padding: 20px; max-width: 600px;">
  <h2>Nova Empresa Cadastrada</h2>
  <p>Uma nova empresa foi cadastrada no sistema GestorPro:</p>
  <table style="width: 100%%; border-collapse: collapse;">
    <tr><td><b>Nome:</b></td><td>%s</td></tr>
    <tr><td><b>CNPJ:</b></td><td>%s</td></tr>
    <tr><td><b>Nome Fantasia:</b></td><td>%s</td></tr>
  </table>
  <p style="font-size: 12px;">Esta é uma notificação automática do sistema GestorPro.</p>
</div>`, name, displayCNPJ, tradeName)

	return m.send(subject, text, html)
}

func (m *Mailer) send(subject, text, html string) error {
	from := fmt.Sprintf("GestorPro <%s>", m.user)
	boundary := "gestorpro-alt"

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", strings.Join(m.to, ", "))
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	b.WriteString(text)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s\r\n", boundary)
	b.WriteString("Content-Type: text/html; charset=utf-8\r\n\r\n")
	b.WriteString(html)
	b.WriteString("\r\n")

	fmt.Fprintf(&b, "--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", m.host, m.port)
	auth := smtp.PlainAuth("", m.user, m.pass, m.host)
	return smtp.SendMail(addr, auth, m.user, m.to, []byte(b.String()))
}
