package domain

import (
	"time"

	"github.com/google/uuid"
)

var (
	RoutingKeyWorkerReady     = "fraud.worker.ready"
	RoutingKeyPreflightFailed = "fraud.worker.failed"
)

const (
	FraudExchange          = "fraud"
	WorkerEventsQueue      = "fraud.worker.events"
	RoutingKeyWorkerEvents = "fraud.worker.#"
)

type WorkerReadyMessage struct {
	WorkerID     uuid.UUID `json:"worker_id" validate:"required"`
	Hostname     string    `json:"hostname" validate:"required"`
	Dependencies []string  `json:"dependencies" validate:"required,min=1,dive,required"`
	ReadyAt      time.Time `json:"ready_at" validate:"required"`
}

type PreflightFailedMessage struct {
	Report   *Report   `json:"report" validate:"required"`
	Reason   string    `json:"reason" validate:"required"`
	FailedAt time.Time `json:"failed_at" validate:"required"`
}
