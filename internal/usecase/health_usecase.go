package usecase

import (
	"context"
	"time"

	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/redis"

	goredis "github.com/redis/go-redis/v9"
)

type healthUsecase struct {
	deliveryMode string
	redisClient  *goredis.Client
}

// NewHealthUsecase reports the delivery mode and, when configured, Redis.
// redisClient may be nil.
func NewHealthUsecase(deliveryMode string, redisClient *goredis.Client) domain.HealthUsecase {
	return &healthUsecase{
		deliveryMode: deliveryMode,
		redisClient:  redisClient,
	}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	status := map[string]string{
		"status":        "ok",
		"delivery_mode": u.deliveryMode,
		"redis":         "disabled",
	}

	if u.redisClient != nil {
		ctx, cancel := context.WithTimeout(ctx, time.Second)
		defer cancel()
		if err := redis.HealthCheck(ctx, u.redisClient); err != nil {
			status["redis"] = "down"
		} else {
			status["redis"] = "up"
		}
	}

	return status
}
