package ports

import "context"

// RMQConsumer drains the user/document lifecycle queue; the app runs
// DeliveryWorker next to the HTTP server for the life of the process.
type RMQConsumer interface {
	Connect(dsn string) error
	Init() error
	DeliveryWorker(ctx context.Context)
}
