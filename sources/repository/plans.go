package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"agencymanager/sources/persistence/entities"
	"agencymanager/sources/platform"
	"agencymanager/sources/tracing"

	"gorm.io/gorm"
)

var ErrPlanNotFound = errors.New("plan not found")

type PlansRepository struct {
	db *gorm.DB
}

func NewPlansRepository(db *gorm.DB) *PlansRepository {
	return &PlansRepository{db: db}
}

func (x *PlansRepository) GetLatestByKey(log *tracing.Logger, key string) (*entities.Plan, error) {
	defer tracing.ProfilePoint(log, "Plans get latest by key completed", "repository.plans.get.latest.by.key", "key", key)()
	ctx, cancel := platform.ContextTimeoutVal(context.Background(), 20*time.Second)
	defer cancel()

	var plan entities.Plan
	err := x.db.WithContext(ctx).
		Where("key = ?", key).
		Order("created_at DESC").
		First(&plan).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest plan for key %s: %w", key, err)
	}

	return &plan, nil
}

// GetAllLatest returns the most recent revision of every plan key.
func (x *PlansRepository) GetAllLatest(log *tracing.Logger) ([]*entities.Plan, error) {
	defer tracing.ProfilePoint(log, "Plans get all latest completed", "repository.plans.get.all.latest")()
	ctx, cancel := platform.ContextTimeoutVal(context.Background(), 20*time.Second)
	defer cancel()

	var plans []*entities.Plan
	err := x.db.WithContext(ctx).
		Order("key, created_at DESC").
		Find(&plans).Error

	if err != nil {
		return nil, fmt.Errorf("failed to get all plans: %w", err)
	}

	latestMap := make(map[string]*entities.Plan)
	for _, plan := range plans {
		if _, exists := latestMap[plan.Key]; !exists {
			latestMap[plan.Key] = plan
		}
	}

	result := make([]*entities.Plan, 0, len(latestMap))
	for _, plan := range latestMap {
		result = append(result, plan)
	}

	return result, nil
}
