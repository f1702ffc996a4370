package httpclient

import (
	"time"

	"autocare-service/config"

	circuit "github.com/rubyist/circuitbreaker"
)

// InitCircuitBreaker builds the breaker guarding outbound HTTP calls
// (user service, notification service, payment gateway).
func InitCircuitBreaker(cfg *config.HttpClientConfig, breakerType string) *circuit.Breaker {
	switch breakerType {
	case "rate":
		return circuit.NewRateBreaker(0.95, 100)
	case "threshold":
		return circuit.NewThresholdBreaker(cfg.Threshold)
	default:
		return circuit.NewConsecutiveBreaker(cfg.Threshold)
	}
}

// InitHttpClient wraps net/http with the circuit breaker; all requests share
// one breaker so a dead collaborator trips fast.
func InitHttpClient(cfg *config.HttpClientConfig, cb *circuit.Breaker) *circuit.HTTPClient {
	client := circuit.NewHTTPClient(time.Duration(cfg.Timeout)*time.Second, cfg.Threshold, nil)
	client.BreakerLookup = func(c *circuit.HTTPClient, val interface{}) *circuit.Breaker {
		return cb
	}
	return client
}
