// SPDX-FileCopyrightText: 2021 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

/*
 * SliceInsight Configuration Factory
 */

package factory

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

var SliceInsightConfig Config

// TODO: Support configuration reload on SIGHUP
func InitConfigFactory(f string) error {
	content, err := os.ReadFile(f)
	if err != nil {
		return fmt.Errorf("[Configuration] %+v", err)
	}

	SliceInsightConfig = Config{}
	if yamlErr := yaml.Unmarshal(content, &SliceInsightConfig); yamlErr != nil {
		return fmt.Errorf("[Configuration] %+v", yamlErr)
	}
	if err := SliceInsightConfig.Validate(); err != nil {
		return fmt.Errorf("[Configuration] %+v", err)
	}
	return nil
}
