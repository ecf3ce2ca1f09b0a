package entities

const (
	PlanKeyStarter    = "starter"
	PlanKeyPro        = "pro"
	PlanKeyEnterprise = "enterprise"
)

const (
	TenantFeatureAssistant = "assistant"
	TenantFeatureFinance   = "finance"
	TenantFeatureContent   = "content"
)
