// SPDX-FileCopyrightText: 2021 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package configmodels

import (
	"fmt"

	"github.com/omec-project/openapi/models"
)

type BitrateTotals struct {
	TotalAmbrUl string `json:"TOTAL_AMBR_UL"`
	TotalAmbrDl string `json:"TOTAL_AMBR_DL"`
}

type SliceSummary struct {
	TotalImsis               int                         `json:"TOTAL_IMSIS"`
	AllSupportingImsis       []string                    `json:"ALL_SUPPORTING_IMSIS"`
	PerDnnDefaultRequiredSsc map[string][]models.SscMode `json:"PER_DNN_DEFAULT_REQUIRED_SSC"`
	// Union of every allowed mode seen for the DNN, not an intersection.
	PerDnnCommonSupportedSsc map[string][]models.SscMode `json:"PER_DNN_COMMON_SUPPORTED_SSC"`
	PerDnnAggregatedBitrate  map[string]BitrateTotals    `json:"PER_DNN_AGGREGATED_BITRATE"`
	BitrateTotals
}

// SliceSummaryResponse is keyed by SliceKey.
type SliceSummaryResponse map[string]SliceSummary

func SliceKey(sst int32, sd string) string {
	return fmt.Sprintf("S_NSSAI[SST:%d SD:%s]", sst, sd)
}

type DnnSummary struct {
	Dnn                string           `json:"DNN"`
	TotalImsis         int              `json:"TOTAL_IMSIS"`
	AllSupportingImsis []string         `json:"ALL_SUPPORTING_IMSIS"`
	DefaultRequiredSsc []models.SscMode `json:"DEFAULT_REQUIRED_SSC"`
	CommonSupportedSsc []models.SscMode `json:"COMMON_SUPPORTED_SSC"`
	BitrateTotals
}
