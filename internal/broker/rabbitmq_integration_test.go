//go:build integration
// +build integration

package broker

/*
	Para rodar: go test -tags=integration -v ./internal/broker -run TestRabbitMQ_PublishAndConsume -count=1

	obs: Rodar todos os de integração: go test -tags=integration -v ./... -count=1
*/

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Sobe RabbitMQ real, publica um evento de empresa com o Publisher e consome
// com o Consumer para validar corpo, content-type e cabeçalhos
func TestRabbitMQ_PublishAndConsumeEvent(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	// Sobe container do RabbitMQ
	req := tc.ContainerRequest{
		Image:        "rabbitmq:3.13",
		ExposedPorts: []string{"5672/tcp"},
		WaitingFor:   wait.ForListeningPort("5672/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	if err != nil {
		t.Fatalf("start rabbit: %v", err)
	}
	t.Cleanup(func() { _ = c.Terminate(ctx) })

	host, err := c.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := c.MappedPort(ctx, "5672/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}

	uri := fmt.Sprintf("amqp://guest:guest@%s:%s/", host, port.Port())
	queue := "empresas_eventos_test"

	// Publisher
	pub, err := NewPublisher(uri, queue)
	if err != nil {
		t.Fatalf("new publisher: %v", err)
	}
	t.Cleanup(func() { _ = pub.Close() })

	// Consumer (o mesmo que o notifier usa)
	cons, deliveries, err := NewConsumer(uri, queue, 1, nil)
	if err != nil {
		t.Fatalf("new consumer: %v", err)
	}
	t.Cleanup(func() { _ = cons.Close() })

	// Publica um evento de cadastro
	ev := CompanyEvent{
		Action:    ActionCreated,
		ID:        7,
		CNPJ:      "11222333000181",
		Name:      "ACME S.A.",
		TradeName: "ACME",
		Timestamp: time.Now().UTC(),
	}
	body, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	headers := amqp.Table{"action": ActionCreated}
	if err := pub.Publish(ctx, string(body), headers); err != nil {
		t.Fatalf("publish: %v", err)
	}

	// Aguarda receber (com timeout)
	select {
	case m := <-deliveries:
		if m.ContentType != "application/json" {
			t.Fatalf("content-type: %q", m.ContentType)
		}
		var got CompanyEvent
		if err := json.Unmarshal(m.Body, &got); err != nil {
			t.Fatalf("unmarshal: %v body=%s", err, m.Body)
		}
		if got.Action != ActionCreated || got.ID != 7 || got.CNPJ != "11222333000181" {
			t.Fatalf("event mismatch: %#v", got)
		}
		if m.Headers["action"] != ActionCreated {
			t.Fatalf("header mismatch: %#v", m.Headers)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("timeout esperando mensagem")
	}
}
