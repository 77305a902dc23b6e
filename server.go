// SPDX-FileCopyrightText: 2021 Open Networking Foundation <info@opennetworking.org>
// Copyright 2019 free5GC.org
//
// SPDX-License-Identifier: Apache-2.0
//

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/omec-project/sliceinsight/backend/factory"
	"github.com/omec-project/sliceinsight/backend/logger"
	"github.com/omec-project/sliceinsight/backend/sliceinsight_service"
	"github.com/urfave/cli"
)

type sliceInsightApp interface {
	Initialize(cfgPath string) error
	Start(ctx context.Context) error
}

var SLICEINSIGHT = &sliceinsight_service.SliceInsight{}

func main() {
	app := cli.NewApp()
	app.Name = "sliceinsight"
	logger.AppLog.Infoln(app.Name)
	app.Usage = "per-slice subscriber SM data insight service"
	app.UsageText = "sliceinsight -cfg <sliceinsight_config_file.yaml>"
	app.Action = action
	app.Flags = factory.GetCliFlags()
	if err := app.Run(os.Args); err != nil {
		logger.AppLog.Fatalf("SliceInsight run error: %v", err)
	}
}

func action(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return runSliceInsight(ctx, SLICEINSIGHT, c.String("cfg"))
}

func runSliceInsight(ctx context.Context, app sliceInsightApp, cfgPath string) error {
	if cfgPath == "" {
		return fmt.Errorf("required flag cfg not set")
	}
	if err := app.Initialize(cfgPath); err != nil {
		return fmt.Errorf("failed to initialize SliceInsight: %w", err)
	}
	if err := app.Start(ctx); err != nil {
		return fmt.Errorf("SliceInsight failed: %w", err)
	}
	return nil
}
