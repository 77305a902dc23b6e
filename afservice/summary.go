// SPDX-FileCopyrightText: 2021 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package afservice

import (
	"context"
	"time"

	"github.com/omec-project/openapi/models"
	"github.com/omec-project/sliceinsight/backend/metrics"
	"github.com/omec-project/sliceinsight/configmodels"
)

// SummarizeBySlice returns the slice summary keyed by configmodels.SliceKey.
func (s *Service) SummarizeBySlice(ctx context.Context, sst int32, sd string, imsis []string) (configmodels.SliceSummaryResponse, error) {
	start := time.Now()
	summary, err := s.summarizeBySlice(ctx, sst, sd, imsis)
	metrics.RecordOperation("summarize_by_slice", start, err)
	if err != nil {
		return nil, err
	}
	return configmodels.SliceSummaryResponse{configmodels.SliceKey(sst, sd): *summary}, nil
}

func (s *Service) summarizeBySlice(ctx context.Context, sst int32, sd string, imsis []string) (*configmodels.SliceSummary, error) {
	data, err := s.fetchSliceData(ctx, sst, sd, imsis)
	if err != nil {
		return nil, err
	}
	return buildSliceSummary(data)
}

func buildSliceSummary(data configmodels.AggregatedSliceData) (*configmodels.SliceSummary, error) {
	totals, err := SumBitrates(allSessionAmbrs(data))
	if err != nil {
		return nil, err
	}

	perDnnBitrate := make(map[string]configmodels.BitrateTotals)
	for dnn, ambrs := range perDnnSessionAmbrs(data) {
		dnnTotals, err := SumBitrates(ambrs)
		if err != nil {
			return nil, err
		}
		perDnnBitrate[dnn] = dnnTotals
	}

	defaultRequired := make(map[string][]models.SscMode)
	commonSupported := make(map[string][]models.SscMode)
	for dnn, modes := range perDnnSscModes(data) {
		defaultRequired[dnn] = DistinctSscModes(modes.defaults)
		commonSupported[dnn] = UnionSscModes(modes.allowed)
	}

	return &configmodels.SliceSummary{
		TotalImsis:               len(data),
		AllSupportingImsis:       data.Imsis(),
		PerDnnDefaultRequiredSsc: defaultRequired,
		PerDnnCommonSupportedSsc: commonSupported,
		PerDnnAggregatedBitrate:  perDnnBitrate,
		BitrateTotals:            totals,
	}, nil
}
