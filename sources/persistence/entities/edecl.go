package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

type (
	Tenant struct {
		ID                 uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
		Name               string         `gorm:"size:255;not null" json:"name"`
		PlanCode           *string        `gorm:"size:50" json:"plan_code"`
		SubscriptionStatus string         `gorm:"size:50;not null;default:'trial'" json:"subscription_status"`
		Features           pq.StringArray `gorm:"type:text[];not null;default:ARRAY[]::text[]" json:"features"`
		IsActive           *bool          `gorm:"not null;default:true" json:"is_active"`
		CreatedAt          time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`

		UsageRecords []UsageRecord `gorm:"foreignKey:TenantID;references:ID" json:"usage_records"`
	}

	Plan struct {
		ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
		Key          string          `gorm:"size:50;not null;index" json:"key"`
		DisplayName  string          `gorm:"size:100;not null" json:"display_name"`
		MonthlyPrice decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"monthly_price"`
		CreatedAt    time.Time       `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	}

	UsageRecord struct {
		ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
		TenantID  uuid.UUID `gorm:"type:uuid;not null;index" json:"tenant_id"`
		Action    string    `gorm:"size:100;not null" json:"action"`
		CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP;index" json:"created_at"`

		Tenant Tenant `gorm:"foreignKey:TenantID;references:ID" json:"tenant"`
	}
)

func (Tenant) TableName() string      { return "am_tenants" }
func (Plan) TableName() string        { return "am_plans" }
func (UsageRecord) TableName() string { return "am_usage_records" }
