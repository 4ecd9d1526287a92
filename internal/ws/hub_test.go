package ws

import (
	"encoding/json"
	"log/slog"
	"testing"
	"time"
)

func recv(t *testing.T, c *Client) []byte {
	t.Helper()
	select {
	case got := <-c.Send:
		return got
	case <-time.After(500 * time.Millisecond):
		t.Fatalf("timeout esperando mensagem para %s", c.ID)
		return nil
	}
}

// Todo cliente conectado recebe todos os eventos do feed
func TestHub_BroadcastEvent(t *testing.T) {
	h := NewHub(slog.Default())
	go h.Run()
	defer h.Stop()

	c1 := &Client{Send: make(chan []byte, 1)}
	c2 := &Client{Send: make(chan []byte, 1)}
	h.Register(c1)
	h.Register(c2)

	ev := []byte(`{"action":"cadastro","id":1,"cnpj":"11222333000181","name":"ACME S.A."}`)
	h.Broadcast(ev)

	for _, c := range []*Client{c1, c2} {
		got := recv(t, c)
		var decoded map[string]any
		if err := json.Unmarshal(got, &decoded); err != nil {
			t.Fatalf("payload não é JSON: %v (%s)", err, got)
		}
		if decoded["action"] != "cadastro" || decoded["cnpj"] != "11222333000181" {
			t.Fatalf("evento errado: %s", got)
		}
	}
}

// Cliente que não consegue registrar id recebe um gerado pelo hub
func TestHub_AssignsID(t *testing.T) {
	h := NewHub(slog.Default())
	go h.Run()
	defer h.Stop()

	c := &Client{Send: make(chan []byte, 1)}
	h.Register(c)
	h.Broadcast([]byte("ping")) // sincroniza: broadcast só roda após o register

	recv(t, c)
	if c.ID == "" {
		t.Fatal("hub não atribuiu id ao cliente")
	}
}

// Cliente lento (buffer cheio) é dropado sem travar os demais
func TestHub_DropsSlowClient(t *testing.T) {
	h := NewHub(slog.Default())
	go h.Run()
	defer h.Stop()

	slow := &Client{ID: "slow", Send: make(chan []byte)} // sem buffer, nunca lê
	ok := &Client{ID: "ok", Send: make(chan []byte, 4)}
	h.Register(slow)
	h.Register(ok)

	h.Broadcast([]byte("ev1"))
	h.Broadcast([]byte("ev2"))

	if string(recv(t, ok)) != "ev1" {
		t.Fatal("ok não recebeu ev1")
	}
	if string(recv(t, ok)) != "ev2" {
		t.Fatal("ok não recebeu ev2")
	}

	// canal do lento foi fechado pelo hub
	select {
	case _, open := <-slow.Send:
		if open {
			t.Fatal("esperava canal do cliente lento fechado")
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("canal do cliente lento segue aberto")
	}
}

// Depois do Unregister o cliente não recebe mais eventos
func TestHub_Unregister(t *testing.T) {
	h := NewHub(slog.Default())
	go h.Run()
	defer h.Stop()

	c := &Client{ID: "c1", Send: make(chan []byte, 1)}
	h.Register(c)
	h.Unregister(c)

	// canal fecha no unregister
	select {
	case _, open := <-c.Send:
		if open {
			t.Fatal("esperava canal fechado após unregister")
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("canal não fechou após unregister")
	}
}
