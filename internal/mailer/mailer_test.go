package mailer

import (
	"errors"
	"testing"
)

func TestMailer_Configured(t *testing.T) {
	cases := []struct {
		name string
		m    *Mailer
		want bool
	}{
		{"completo", New("smtp.example.com", 587, "bot@example.com", "s3cret", []string{"ops@example.com"}), true},
		{"sem host", New("", 587, "bot@example.com", "s3cret", []string{"ops@example.com"}), false},
		{"sem usuario", New("smtp.example.com", 587, "", "s3cret", []string{"ops@example.com"}), false},
		{"sem destinatarios", New("smtp.example.com", 587, "bot@example.com", "s3cret", nil), false},
	}
	for _, tc := range cases {
		if got := tc.m.Configured(); got != tc.want {
			t.Fatalf("%s: Configured() = %v, esperava %v", tc.name, got, tc.want)
		}
	}
}

// Sem SMTP configurado o envio falha cedo, sem tentar conexão
func TestMailer_SendNotConfigured(t *testing.T) {
	m := New("", 0, "", "", nil)
	err := m.SendNewCompanyNotification("ACME S.A.", "11222333000181", "ACME")
	if !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("esperava ErrNotConfigured, veio %v", err)
	}
}
