//go:build integration

package events

import (
	"context"
	"testing"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/carson-networks/fuel-server/internal/fuel"
)

func startRabbitMQ(t *testing.T, ctx context.Context) string {
	t.Helper()

	ctr, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "rabbitmq:3-management",
			ExposedPorts: []string{"5672/tcp"},
			WaitingFor:   wait.ForLog("Server startup complete").WithStartupTimeout(90 * time.Second),
		},
		Started: true,
	})
	testcontainers.CleanupContainer(t, ctr)
	require.NoError(t, err)

	host, err := ctr.Host(ctx)
	require.NoError(t, err)
	port, err := ctr.MappedPort(ctx, "5672/tcp")
	require.NoError(t, err)

	return "amqp://guest:guest@" + host + ":" + port.Port() + "/"
}

func consume(t *testing.T, url, exchange string) <-chan amqp091.Delivery {
	t.Helper()

	conn, err := amqp091.Dial(url)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	ch, err := conn.Channel()
	require.NoError(t, err)

	queue, err := ch.QueueDeclare("", false, true, true, false, nil)
	require.NoError(t, err)
	require.NoError(t, ch.QueueBind(queue.Name, "operation.*", exchange, false, nil))
	deliveries, err := ch.Consume(queue.Name, "", true, true, false, false, nil)
	require.NoError(t, err)
	return deliveries
}

func receive(t *testing.T, deliveries <-chan amqp091.Delivery) amqp091.Delivery {
	t.Helper()
	select {
	case msg := <-deliveries:
		return msg
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for event to be published")
		return amqp091.Delivery{}
	}
}

func TestIntegration_AMQPPublisher(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	ctx := context.Background()
	url := startRabbitMQ(t, ctx)
	const exchange = "fuel.operations.test"

	publisher, err := NewAMQPPublisher(url, exchange, quietLogger())
	require.NoError(t, err)
	t.Cleanup(func() { publisher.Close() })
	deliveries := consume(t, url, exchange)

	event := OperationEvent{
		Kind:       OperationCreated,
		Type:       fuel.OperationTypePurchase,
		FuelType:   fuel.FuelTypeGasoline,
		Month:      1,
		Year:       2024,
		Quantity:   decimal.RequireFromString("100"),
		TotalValue: decimal.RequireFromString("773.61"),
		OccurredAt: time.Now().UTC(),
	}
	require.NoError(t, publisher.Publish(ctx, event))

	msg := receive(t, deliveries)
	assert.Equal(t, "operation.created", msg.RoutingKey)
	assert.Equal(t, "application/json", msg.ContentType)
	decoded, err := OperationEventFromJSON(msg.Body)
	require.NoError(t, err)
	assert.True(t, decoded.TotalValue.Equal(decimal.RequireFromString("773.61")))
	assert.Equal(t, fuel.FuelTypeGasoline, decoded.FuelType)

	// Lose the broker connection; the next publish dials again.
	publisher.mu.Lock()
	require.NoError(t, publisher.conn.Close())
	publisher.mu.Unlock()

	event.Kind = OperationDeleted
	require.NoError(t, publisher.Publish(ctx, event))
	assert.Equal(t, "operation.deleted", receive(t, deliveries).RoutingKey)
}
