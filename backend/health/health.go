// SPDX-FileCopyrightText: 2025 Canonical Ltd
//
// SPDX-License-Identifier: Apache-2.0

package health

import (
	"fmt"
	"net"
	"time"

	"github.com/omec-project/sliceinsight/backend/logger"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/keepalive"
)

// ServiceName is the name clients pass to grpc.health.v1.Health/Check.
const ServiceName = "sliceinsight.SliceInsight"

var kaep = keepalive.EnforcementPolicy{
	MinTime:             15 * time.Second,
	PermitWithoutStream: true,
}

var kasp = keepalive.ServerParameters{
	Time:    30 * time.Second,
	Timeout: 5 * time.Second,
}

// Server reports whether the subscriber data source is usable. It starts in
// NOT_SERVING.
type Server struct {
	grpcServer *grpc.Server
	status     *grpchealth.Server
}

func NewServer() *Server {
	status := grpchealth.NewServer()
	status.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	grpcServer := grpc.NewServer(grpc.KeepaliveEnforcementPolicy(kaep), grpc.KeepaliveParams(kasp))
	healthpb.RegisterHealthServer(grpcServer, status)
	return &Server{grpcServer: grpcServer, status: status}
}

func (s *Server) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}
	logger.GrpcLog.Infof("health status of %s set to %s", ServiceName, status)
	s.status.SetServingStatus(ServiceName, status)
	s.status.SetServingStatus("", status)
}

// Serve blocks until Stop is called or the listener fails.
func (s *Server) Serve(lis net.Listener) error {
	logger.GrpcLog.Infoln("gRPC health server listening on", lis.Addr())
	return s.grpcServer.Serve(lis)
}

func (s *Server) ListenAndServe(port int) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return fmt.Errorf("failed to listen on gRPC port %d: %w", port, err)
	}
	return s.Serve(lis)
}

func (s *Server) Stop() {
	s.status.Shutdown()
	s.grpcServer.GracefulStop()
}
