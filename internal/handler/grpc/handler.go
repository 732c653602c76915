// Package grpc implements the gRPC transport of the consent bridge: the
// standard grpc.health.v1.Health service.
package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/consent-bridge/internal/logger"
	"github.com/MKhiriev/consent-bridge/internal/service"
)

const (
	// ServiceName is the health-checked name of the bridge itself.
	ServiceName = "consentbridge.v1.ConsentBridge"

	// NativeServiceName reports whether the native SDK host is reachable.
	// It is re-checked on every Check call for this name.
	NativeServiceName = "consentbridge.v1.NativeSDK"
)

// Handler is the root gRPC transport handler.
//
// It wraps the grpc-go health server: the overall ("") and [ServiceName]
// statuses follow the bridge lifecycle, [NativeServiceName] follows the
// native SDK host.
type Handler struct {
	*health.Server

	services *service.Services
	logger   *logger.Logger
}

// NewHandler constructs a [Handler]. All statuses start as NOT_SERVING until
// [Handler.Serving] is called.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		Server:   health.NewServer(),
		services: services,
		logger:   logger,
	}
	for _, name := range []string{"", ServiceName, NativeServiceName} {
		h.SetServingStatus(name, healthpb.HealthCheckResponse_NOT_SERVING)
	}

	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h)
}

// Serving marks the bridge as SERVING.
func (h *Handler) Serving() {
	h.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
}

// Check refreshes the native SDK status before answering when the caller asks
// for [NativeServiceName].
func (h *Handler) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	if req.GetService() == NativeServiceName {
		h.refreshNative(ctx)
	}
	return h.Server.Check(ctx, req)
}

func (h *Handler) refreshNative(ctx context.Context) {
	status := healthpb.HealthCheckResponse_SERVING
	if _, err := h.services.ConsentClient.GetPlatformVersion(ctx); err != nil {
		h.logger.Warn().Err(err).Str("func", "*Handler.refreshNative").Msg("native sdk host is not reachable")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}
	h.SetServingStatus(NativeServiceName, status)
}
