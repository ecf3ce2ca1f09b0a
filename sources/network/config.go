package network

import "agencymanager/sources/platform"

type ProxyConfig struct {
	Enabled      bool
	ProxyAddress string
	ProxyUser    string
	ProxyPass    string

	TimeoutSeconds int
}

func NewProxyConfig() *ProxyConfig {
	return &ProxyConfig{
		Enabled:      platform.GetAsBool("PROXY_ENABLED", false),
		ProxyAddress: platform.Get("PROXY_ADDRESS", "localhost:9050"),
		ProxyUser:    platform.Get("PROXY_USER", "admin"),
		ProxyPass:    platform.Get("PROXY_PASS", "admin"),

		TimeoutSeconds: platform.GetAsInt("NETWORK_TIMEOUT_SECONDS", 60),
	}
}
