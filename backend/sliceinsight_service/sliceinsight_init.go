// SPDX-FileCopyrightText: 2022-present Intel Corporation
// SPDX-FileCopyrightText: 2021 Open Networking Foundation <info@opennetworking.org>
// SPDX-FileCopyrightText: 2019 free5GC.org
// SPDX-FileCopyrightText: 2024 Canonical Ltd
//
// SPDX-License-Identifier: Apache-2.0
//

package sliceinsight_service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/omec-project/sliceinsight/afservice"
	"github.com/omec-project/sliceinsight/backend/factory"
	"github.com/omec-project/sliceinsight/backend/health"
	"github.com/omec-project/sliceinsight/backend/logger"
	"github.com/omec-project/sliceinsight/backend/metrics"
	"github.com/omec-project/sliceinsight/configapi"
	"github.com/omec-project/sliceinsight/dbadapter"
	"github.com/omec-project/sliceinsight/udr"
	"github.com/omec-project/util/http2_util"
	utilLogger "github.com/omec-project/util/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const shutdownTimeout = 5 * time.Second

type SliceInsight struct{}

// Initialize loads the configuration file and applies its log levels.
func (si *SliceInsight) Initialize(cfgPath string) error {
	absPath, err := filepath.Abs(cfgPath)
	if err != nil {
		return err
	}
	if err := factory.InitConfigFactory(absPath); err != nil {
		return err
	}
	si.setLogLevel()
	return nil
}

func (si *SliceInsight) setLogLevel() {
	if factory.SliceInsightConfig.Logger == nil {
		logger.InitLog.Warnln("sliceinsight config without log level setting")
		return
	}

	if setting := factory.SliceInsightConfig.Logger.SliceInsight; setting != nil {
		if setting.DebugLevel != "" {
			if level, err := zapcore.ParseLevel(setting.DebugLevel); err != nil {
				logger.InitLog.Warnf("SliceInsight Log level [%s] is invalid, set to [info] level", setting.DebugLevel)
				logger.SetLogLevel(zap.InfoLevel)
			} else {
				logger.InitLog.Infof("SliceInsight Log level is set to [%s] level", level)
				logger.SetLogLevel(level)
			}
		} else {
			logger.InitLog.Warnln("SliceInsight Log level not set. Default set to [info] level")
			logger.SetLogLevel(zap.InfoLevel)
		}
	}

	if setting := factory.SliceInsightConfig.Logger.MongoDBLibrary; setting != nil {
		if setting.DebugLevel != "" {
			if level, err := zapcore.ParseLevel(setting.DebugLevel); err != nil {
				utilLogger.AppLog.Warnf("MongoDBLibrary Log level [%s] is invalid, set to [info] level", setting.DebugLevel)
				utilLogger.SetLogLevel(zap.InfoLevel)
			} else {
				utilLogger.SetLogLevel(level)
			}
		} else {
			utilLogger.AppLog.Warnln("MongoDBLibrary Log level not set. Default set to [info] level")
			utilLogger.SetLogLevel(zap.InfoLevel)
		}
	}
}

// NewSubscriberSource builds the data source selected by the configuration.
// The MongoDB source blocks until the database is reachable or ctx is done.
func NewSubscriberSource(ctx context.Context, cfg *factory.Configuration) (afservice.SubscriberDataSource, error) {
	switch cfg.SubscriberSource {
	case factory.SourceUdr:
		logger.InitLog.Infof("reading SM data from UDR %s", cfg.Udr.Url)
		return udr.NewClient(cfg.Udr.Url, cfg.Udr.PlmnId, cfg.Udr.Timeout), nil
	case factory.SourceMongoDB:
		logger.InitLog.Infof("reading SM data from MongoDB %s/%s", cfg.Mongodb.Url, cfg.Mongodb.Name)
		db, err := dbadapter.ConnectMongo(ctx, cfg.Mongodb.Url, cfg.Mongodb.Name)
		if err != nil {
			return nil, err
		}
		return udr.NewMongoSource(db), nil
	default:
		return nil, fmt.Errorf("unknown subscriber source %q", cfg.SubscriberSource)
	}
}

// NewRouter returns the HTTP handler serving the slice insight API.
func NewRouter(svc *afservice.Service) *gin.Engine {
	router := utilLogger.NewGinWithZap(logger.GinLog)
	router.Use(cors.New(cors.Config{
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{
			"Origin", "Content-Length", "Content-Type", "User-Agent",
			"Referrer", "Host", "Token", "X-Requested-With",
		},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           86400,
	}))
	configapi.AddService(router, svc)
	AddSwaggerUiService(router)
	return router
}

func newHTTPServer(cfg *factory.WebServer, handler http.Handler) (*http.Server, error) {
	httpAddr := ":" + strconv.Itoa(cfg.Port)
	if cfg.TLS == nil {
		return &http.Server{Addr: httpAddr, Handler: handler, ReadHeaderTimeout: 10 * time.Second}, nil
	}
	server, err := http2_util.NewServer(httpAddr, "", handler)
	if server == nil {
		return nil, fmt.Errorf("initialize HTTP-2 server failed: %w", err)
	}
	if err != nil {
		logger.InitLog.Warnln("initialize HTTP-2 server:", err)
	}
	return server, nil
}

// Start runs the HTTP, metrics and gRPC health servers until ctx is done.
func (si *SliceInsight) Start(ctx context.Context) error {
	cfg := factory.SliceInsightConfig.Configuration
	if cfg == nil {
		return errors.New("sliceinsight is not initialized")
	}

	healthServer := health.NewServer()
	go func() {
		if err := healthServer.ListenAndServe(cfg.GrpcPort); err != nil {
			logger.GrpcLog.Errorf("gRPC health server failed: %v", err)
		}
	}()
	defer healthServer.Stop()

	go metrics.InitMetrics(cfg.MetricsPort)

	source, err := NewSubscriberSource(ctx, cfg)
	if err != nil {
		return err
	}
	svc := afservice.NewService(source, cfg.DefaultImsis)

	server, err := newHTTPServer(cfg.WebServer, NewRouter(svc))
	if err != nil {
		return err
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.InitLog.Infoln("SliceInsight HTTP addr", server.Addr)
		if tls := cfg.WebServer.TLS; tls != nil {
			serveErr <- server.ListenAndServeTLS(tls.PEM, tls.Key)
		} else {
			serveErr <- server.ListenAndServe()
		}
	}()
	healthServer.SetServing(true)
	logger.InitLog.Infoln("SliceInsight server started")

	select {
	case err := <-serveErr:
		healthServer.SetServing(false)
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("HTTP server setup failed: %w", err)
	case <-ctx.Done():
		healthServer.SetServing(false)
		logger.InitLog.Infoln("shutting down SliceInsight")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}
