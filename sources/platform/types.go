package platform

type PlanCode = string

const (
	PlanStarter    PlanCode = "starter"
	PlanPro        PlanCode = "pro"
	PlanEnterprise PlanCode = "enterprise"
)

type SubscriptionStatus = string

const (
	StatusTrial     SubscriptionStatus = "trial"
	StatusActive    SubscriptionStatus = "active"
	StatusSuspended SubscriptionStatus = "suspended"
	StatusCancelled SubscriptionStatus = "cancelled"
)
