package broker

import "time"

// Ações publicadas na fila de eventos de empresa.
const (
	ActionCreated = "cadastro"
	ActionUpdated = "edição"
	ActionDeleted = "exclusão"
)

// CompanyEvent é o corpo JSON das mensagens da fila. O notificador
// encaminha o evento para o feed websocket e, no cadastro, dispara
// o e-mail de notificação.
type CompanyEvent struct {
	Action    string    `json:"action"`
	ID        int64     `json:"id"`
	CNPJ      string    `json:"cnpj"`
	Name      string    `json:"name"`
	TradeName string    `json:"trade_name"`
	Timestamp time.Time `json:"timestamp"`
}
