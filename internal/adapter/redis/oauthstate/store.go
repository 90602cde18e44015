package oauthstate

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"gitlab.com/codeplatform.net/internal/core/ports/primary"
	"gitlab.com/codeplatform.net/internal/core/ports/secondary"
)

const stateKeyPrefix = "oauth:state:"

var _ secondary.StateStore = (*StateRepository)(nil)

// StateRepository keeps issued OAuth state values in Redis until they are
// consumed or expire
type StateRepository struct {
	redisClient *redis.Client
	logger      primary.Logger
}

func NewStateRepository(redisClient *redis.Client, logger primary.Logger) *StateRepository {
	return &StateRepository{
		redisClient: redisClient,
		logger:      logger,
	}
}

func (r *StateRepository) Save(ctx context.Context, state string, ttl time.Duration) error {
	if err := r.redisClient.Set(ctx, stateKeyPrefix+state, 1, ttl).Err(); err != nil {
		return fmt.Errorf("failed to save oauth state: %w", err)
	}
	return nil
}

// Consume deletes the state. A state can be consumed once.
func (r *StateRepository) Consume(ctx context.Context, state string) (bool, error) {
	if state == "" {
		return false, nil
	}
	n, err := r.redisClient.Del(ctx, stateKeyPrefix+state).Result()
	if err != nil {
		return false, fmt.Errorf("failed to consume oauth state: %w", err)
	}
	if n == 0 {
		r.logger.Warn("Unknown or expired oauth state")
	}
	return n > 0, nil
}
