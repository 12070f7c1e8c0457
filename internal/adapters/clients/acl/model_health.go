package acl

import "context"

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry]. The value "model-server" matches the service name
// used by the underlying [httpclient.Client] for tracing and metrics.
func (c *ModelServerClient) Name() string {
	return "model-server"
}

// HealthCheck reports the model server's availability from the circuit
// breaker state. No network call is made.
//
// A failing model server degrades answers to heuristics but never stops the
// classifier from serving, so this feeds readiness reporting only.
func (c *ModelServerClient) HealthCheck(ctx context.Context) error {
	return c.client.HealthCheck(ctx)
}
