package domain

import "context"

// HealthUsecase reports the readiness of the service dependencies.
type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}
