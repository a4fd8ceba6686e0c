package usecase

import (
	"context"

	"monarch-web/pkg/redis"
)

type HealthUsecase interface {
	Check(ctx context.Context) map[string]string
}

type healthUsecase struct {
	contactUC interface{ IsAvailable() bool }
}

func NewHealthUsecase(contactUC interface{ IsAvailable() bool }) HealthUsecase {
	return &healthUsecase{contactUC: contactUC}
}

func (u *healthUsecase) Check(ctx context.Context) map[string]string {
	status := map[string]string{
		"status":  "ok",
		"redis":   "disabled",
		"contact": "unconfigured",
	}
	if redis.Client() != nil {
		status["redis"] = "ok"
		if err := redis.HealthCheck(ctx); err != nil {
			status["redis"] = "unreachable"
		}
	}
	if u.contactUC != nil && u.contactUC.IsAvailable() {
		status["contact"] = "ok"
	}
	return status
}
