package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"agencymanager/sources/persistence/entities"
	"agencymanager/sources/platform"
	"agencymanager/sources/tracing"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

var ErrTenantNotFound = errors.New("tenant not found")

type TenantsRepository struct {
	db     *gorm.DB
	redis  *redis.Client
	config *TenantsConfig
}

func NewTenantsRepository(db *gorm.DB, redis *redis.Client, config *TenantsConfig) *TenantsRepository {
	return &TenantsRepository{db: db, redis: redis, config: config}
}

// GetPlanSnapshot returns (nil, nil) when the tenant does not exist, so callers
// can distinguish an absent tenant from a store failure.
func (x *TenantsRepository) GetPlanSnapshot(log *tracing.Logger, tenantID string) (*platform.PlanSnapshot, error) {
	defer tracing.ProfilePoint(log, "Tenants get plan snapshot completed", "repository.tenants.get.plan.snapshot", tracing.TenantId, tenantID)()
	ctx, cancel := platform.ContextTimeoutVal(context.Background(), 20*time.Second)
	defer cancel()

	if x.config.PlanCacheEnabled {
		if snapshot := x.getCachedSnapshot(ctx, log, tenantID); snapshot != nil {
			return snapshot, nil
		}
	}

	var tenant entities.Tenant
	err := x.db.WithContext(ctx).
		Where("id = ?", tenantID).
		First(&tenant).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.W("Tenant not found for plan snapshot", tracing.TenantId, tenantID)
		return nil, nil
	}
	if err != nil {
		log.E("Failed to get tenant", tracing.TenantId, tenantID, tracing.InnerError, err)
		return nil, err
	}

	snapshot := &platform.PlanSnapshot{
		TenantID:           tenantID,
		SubscriptionStatus: tenant.SubscriptionStatus,
	}
	if tenant.PlanCode != nil {
		snapshot.PlanCode = *tenant.PlanCode
	}

	if x.config.PlanCacheEnabled {
		x.putCachedSnapshot(ctx, log, snapshot)
	}

	return snapshot, nil
}

func (x *TenantsRepository) CreateTenant(log *tracing.Logger, name string, planCode *string, status string) (*entities.Tenant, error) {
	defer tracing.ProfilePoint(log, "Tenants create tenant completed", "repository.tenants.create")()
	ctx, cancel := platform.ContextTimeoutVal(context.Background(), 20*time.Second)
	defer cancel()

	tenant := &entities.Tenant{
		Name:               name,
		PlanCode:           planCode,
		SubscriptionStatus: status,
		IsActive:           platform.BoolPtr(true),
	}

	if err := x.db.WithContext(ctx).Create(tenant).Error; err != nil {
		log.E("Failed to create tenant", tracing.InnerError, err)
		return nil, err
	}

	log.I("Created tenant", tracing.TenantId, tenant.ID.String())
	return tenant, nil
}

func (x *TenantsRepository) GetTotalTenantsCount(log *tracing.Logger) (int64, error) {
	defer tracing.ProfilePoint(log, "Tenants get total count completed", "repository.tenants.get.total.count")()
	ctx, cancel := platform.ContextTimeoutVal(context.Background(), 20*time.Second)
	defer cancel()

	var count int64
	err := x.db.WithContext(ctx).
		Model(&entities.Tenant{}).
		Count(&count).Error

	if err != nil {
		log.E("Failed to get total tenants count", tracing.InnerError, err)
		return 0, err
	}

	return count, nil
}

// GetActivePlanCounts returns how many active tenants sit on each plan code.
func (x *TenantsRepository) GetActivePlanCounts(log *tracing.Logger) (map[string]int64, error) {
	defer tracing.ProfilePoint(log, "Tenants get active plan counts completed", "repository.tenants.get.active.plan.counts")()
	ctx, cancel := platform.ContextTimeoutVal(context.Background(), 20*time.Second)
	defer cancel()

	type planCount struct {
		PlanCode string
		Total    int64
	}

	var rows []planCount
	err := x.db.WithContext(ctx).
		Model(&entities.Tenant{}).
		Select("plan_code, count(*) as total").
		Where("is_active = ?", true).
		Where("plan_code IS NOT NULL").
		Group("plan_code").
		Scan(&rows).Error

	if err != nil {
		log.E("Failed to get active plan counts", tracing.InnerError, err)
		return nil, err
	}

	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.PlanCode] = row.Total
	}

	return counts, nil
}

func (x *TenantsRepository) getCachedSnapshot(ctx context.Context, log *tracing.Logger, tenantID string) *platform.PlanSnapshot {
	payload, err := x.redis.Get(ctx, planCacheKey(tenantID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.E("Failed to read plan snapshot cache", tracing.TenantId, tenantID, tracing.InnerError, err)
		}
		return nil
	}

	var snapshot platform.PlanSnapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		log.E("Failed to decode cached plan snapshot", tracing.TenantId, tenantID, tracing.InnerError, err)
		return nil
	}

	return &snapshot
}

func (x *TenantsRepository) putCachedSnapshot(ctx context.Context, log *tracing.Logger, snapshot *platform.PlanSnapshot) {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return
	}

	if err := x.redis.Set(ctx, planCacheKey(snapshot.TenantID), payload, x.config.PlanCacheTTL).Err(); err != nil {
		log.E("Failed to cache plan snapshot", tracing.TenantId, snapshot.TenantID, tracing.InnerError, err)
	}
}

func planCacheKey(tenantID string) string {
	return "tenant:plan:" + tenantID
}
