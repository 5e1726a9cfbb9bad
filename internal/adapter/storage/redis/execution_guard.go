package redis

import (
	"context"
	"fmt"
	"time"

	"bank-payment-service/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
)

// ExecutionGuard implements ports.ExecutionGuard using Redis SET NX.
// Each payment id can be reserved exactly once, which stops retried or
// duplicated requests from executing the same payment twice.
type ExecutionGuard struct {
	client *goredis.Client
	prefix string
}

// NewExecutionGuard creates a new Redis-backed execution guard.
func NewExecutionGuard(client *goredis.Client) *ExecutionGuard {
	return &ExecutionGuard{
		client: client,
		prefix: "payment:executed:",
	}
}

// Acquire atomically reserves the payment id. Returns true when this
// caller won the reservation, false when the id was already taken.
func (g *ExecutionGuard) Acquire(ctx context.Context, id domain.PaymentID, ttl time.Duration) (bool, error) {
	key := g.prefix + id.String()
	result, err := g.client.SetArgs(ctx, key, 1, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if err == goredis.Nil {
			// Key already exists, the payment was already executed
			return false, nil
		}
		return false, fmt.Errorf("redis execution guard: %w", err)
	}
	return result == "OK", nil
}
