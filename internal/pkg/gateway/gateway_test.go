package gateway_test

import (
	"testing"

	"autocare-service/config"
	"autocare-service/internal/pkg/gateway"

	"github.com/stretchr/testify/assert"
)

func validGatewayConfig() config.GatewayConfig {
	return config.GatewayConfig{
		BaseURL:        "https://sandbox.safaricom.co.ke",
		ConsumerKey:    "key",
		ConsumerSecret: "secret",
		Shortcode:      "174379",
		Passkey:        "passkey",
		CallbackURL:    "https://autocare.example.com/api/callbacks/payment",
	}
}

func TestValidateConfig(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*config.GatewayConfig)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *config.GatewayConfig) {}, wantErr: false},
		{name: "missing consumer key", mutate: func(c *config.GatewayConfig) { c.ConsumerKey = "" }, wantErr: true},
		{name: "missing consumer secret", mutate: func(c *config.GatewayConfig) { c.ConsumerSecret = "" }, wantErr: true},
		{name: "missing shortcode", mutate: func(c *config.GatewayConfig) { c.Shortcode = "" }, wantErr: true},
		{name: "missing passkey", mutate: func(c *config.GatewayConfig) { c.Passkey = "" }, wantErr: true},
		{name: "http callback", mutate: func(c *config.GatewayConfig) { c.CallbackURL = "http://autocare.example.com/cb" }, wantErr: true},
		{name: "callback without host", mutate: func(c *config.GatewayConfig) { c.CallbackURL = "https://" }, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validGatewayConfig()
			tc.mutate(&cfg)

			err := gateway.New(&cfg, nil).ValidateConfig()

			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
