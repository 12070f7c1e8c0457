// Package ports defines interfaces between layers in the hexagonal architecture.
// Service ports (Classifier) are implemented by the application layer and
// called by handlers. Outbound ports (ModelAdapter, PredictionLog,
// HealthChecker) are implemented by adapters and called by the application
// layer and the HTTP handlers.
package ports
