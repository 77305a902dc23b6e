// SPDX-FileCopyrightText: 2025 Canonical Ltd
//
// SPDX-License-Identifier: Apache-2.0

package factory

import "github.com/urfave/cli"

func GetCliFlags() []cli.Flag {
	return []cli.Flag{
		cli.StringFlag{
			Name:     "cfg",
			Usage:    "sliceinsight config file",
			Required: true,
		},
	}
}
