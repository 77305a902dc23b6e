// SPDX-FileCopyrightText: 2024 Open Networking Foundation <info@opennetworking.org>
// SPDX-FileCopyrightText: 2024 Canonical Ltd
//
// SPDX-License-Identifier: Apache-2.0

package configmodels

import (
	"encoding/json"

	"github.com/omec-project/sliceinsight/backend/logger"
)

func MapToByte(data map[string]any) (ret []byte) {
	ret, err := json.Marshal(data)
	if err != nil {
		logger.DbLog.Errorln("could not marshal data")
		return nil
	}
	return ret
}
