// SPDX-FileCopyrightText: 2021 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package afservice

import (
	"strconv"
	"strings"

	"github.com/omec-project/openapi/models"
	"github.com/omec-project/sliceinsight/configmodels"
)

// Totals are always reported in Kbps. Input units are not compared.
const bitrateUnit = "Kbps"

// ParseQuantity returns the integer part of a "<integer> <unit>" string.
func ParseQuantity(quantity string) (int64, error) {
	fields := strings.Fields(quantity)
	if len(fields) == 0 {
		return 0, &MalformedQuantityError{Value: quantity, Err: errEmptyQuantity}
	}
	value, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return 0, &MalformedQuantityError{Value: quantity, Err: err}
	}
	return value, nil
}

// SumBitrates adds up the uplink and downlink quantities of ambrs.
func SumBitrates(ambrs []models.Ambr) (configmodels.BitrateTotals, error) {
	var ul, dl int64
	for _, ambr := range ambrs {
		uplink, err := ParseQuantity(ambr.Uplink)
		if err != nil {
			return configmodels.BitrateTotals{}, err
		}
		downlink, err := ParseQuantity(ambr.Downlink)
		if err != nil {
			return configmodels.BitrateTotals{}, err
		}
		ul += uplink
		dl += downlink
	}
	return configmodels.BitrateTotals{
		TotalAmbrUl: formatBitrate(ul),
		TotalAmbrDl: formatBitrate(dl),
	}, nil
}

func formatBitrate(total int64) string {
	return strconv.FormatInt(total, 10) + bitrateUnit
}
