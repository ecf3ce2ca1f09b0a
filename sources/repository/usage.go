package repository

import (
	"context"
	"time"

	"agencymanager/sources/persistence/entities"
	"agencymanager/sources/platform"
	"agencymanager/sources/tracing"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UsageRepository struct {
	db *gorm.DB
}

func NewUsageRepository(db *gorm.DB) *UsageRepository {
	return &UsageRepository{db: db}
}

// Append writes one ledger row. Rows are never updated or deleted here.
func (x *UsageRepository) Append(log *tracing.Logger, tenantID string, at time.Time, action string) error {
	defer tracing.ProfilePoint(log, "Usage append completed", "repository.usage.append", tracing.TenantId, tenantID, tracing.UsageAction, action)()
	ctx, cancel := platform.ContextTimeoutVal(context.Background(), 20*time.Second)
	defer cancel()

	tid, err := uuid.Parse(tenantID)
	if err != nil {
		log.E("Invalid tenant id for usage append", tracing.TenantId, tenantID, tracing.InnerError, err)
		return err
	}

	record := &entities.UsageRecord{
		TenantID:  tid,
		Action:    action,
		CreatedAt: at,
	}

	if err := x.db.WithContext(ctx).Create(record).Error; err != nil {
		log.E("Failed to append usage record", tracing.TenantId, tenantID, tracing.InnerError, err)
		return err
	}

	log.I("Usage recorded", tracing.TenantId, tenantID, tracing.UsageAction, action)
	return nil
}

// CountSince counts ledger rows for a tenant across all actions from `since` up to now.
func (x *UsageRepository) CountSince(log *tracing.Logger, tenantID string, since time.Time) (int64, error) {
	defer tracing.ProfilePoint(log, "Usage count since completed", "repository.usage.count.since", tracing.TenantId, tenantID)()
	ctx, cancel := platform.ContextTimeoutVal(context.Background(), 20*time.Second)
	defer cancel()

	var count int64
	err := x.db.WithContext(ctx).
		Model(&entities.UsageRecord{}).
		Where("tenant_id = ?", tenantID).
		Where("created_at >= ?", since).
		Count(&count).Error

	if err != nil {
		log.E("Failed to count usage records", tracing.TenantId, tenantID, tracing.InnerError, err)
		return 0, err
	}

	return count, nil
}

func (x *UsageRepository) GetTotalInvocations(log *tracing.Logger) (int64, error) {
	defer tracing.ProfilePoint(log, "Usage get total invocations completed", "repository.usage.get.total.invocations")()
	ctx, cancel := platform.ContextTimeoutVal(context.Background(), 20*time.Second)
	defer cancel()

	var count int64
	err := x.db.WithContext(ctx).
		Model(&entities.UsageRecord{}).
		Count(&count).Error

	if err != nil {
		log.E("Failed to get total invocations", tracing.InnerError, err)
		return 0, err
	}

	return count, nil
}

func (x *UsageRepository) GetMonthlyInvocations(log *tracing.Logger) (int64, error) {
	defer tracing.ProfilePoint(log, "Usage get monthly invocations completed", "repository.usage.get.monthly.invocations")()
	ctx, cancel := platform.ContextTimeoutVal(context.Background(), 20*time.Second)
	defer cancel()

	now := time.Now()
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var count int64
	err := x.db.WithContext(ctx).
		Model(&entities.UsageRecord{}).
		Where("created_at >= ?", startOfMonth).
		Count(&count).Error

	if err != nil {
		log.E("Failed to get monthly invocations", tracing.InnerError, err)
		return 0, err
	}

	return count, nil
}

func (x *UsageRepository) GetActiveTenantsCount(log *tracing.Logger, since time.Time) (int64, error) {
	defer tracing.ProfilePoint(log, "Usage get active tenants count completed", "repository.usage.get.active.tenants.count")()
	ctx, cancel := platform.ContextTimeoutVal(context.Background(), 20*time.Second)
	defer cancel()

	var count int64
	err := x.db.WithContext(ctx).
		Model(&entities.UsageRecord{}).
		Where("created_at >= ?", since).
		Distinct("tenant_id").
		Count(&count).Error

	if err != nil {
		log.E("Failed to get active tenants count", tracing.InnerError, err)
		return 0, err
	}

	return count, nil
}
