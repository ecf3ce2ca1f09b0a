package platform

// PlanSnapshot is the read-only view of a tenant's billing state this service
// consumes. Tenant management owns the underlying rows.
type PlanSnapshot struct {
	TenantID           string             `json:"tenant_id"`
	PlanCode           PlanCode           `json:"plan_code"`
	SubscriptionStatus SubscriptionStatus `json:"subscription_status"`
}
