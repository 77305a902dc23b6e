// SPDX-FileCopyrightText: 2021 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package afservice

import (
	"context"
	"time"

	"github.com/omec-project/sliceinsight/backend/metrics"
	"github.com/omec-project/sliceinsight/configmodels"
)

// SubscribedDnns lists the DNNs declared by the slice's accepted subscribers
// in the order they are first seen.
func (s *Service) SubscribedDnns(ctx context.Context, sst int32, sd string, imsis []string) ([]string, error) {
	start := time.Now()
	data, err := s.fetchSliceData(ctx, sst, sd, imsis)
	metrics.RecordOperation("subscribed_dnns", start, err)
	if err != nil {
		return nil, err
	}
	return subscribedDnns(data), nil
}

// SummarizeByDnn is SummarizeBySlice restricted to the subscribers that
// declare dnn.
func (s *Service) SummarizeByDnn(ctx context.Context, sst int32, sd string, dnn string, imsis []string) (*configmodels.DnnSummary, error) {
	start := time.Now()
	summary, err := s.summarizeByDnn(ctx, sst, sd, dnn, imsis)
	metrics.RecordOperation("summarize_by_dnn", start, err)
	return summary, err
}

func (s *Service) summarizeByDnn(ctx context.Context, sst int32, sd string, dnn string, imsis []string) (*configmodels.DnnSummary, error) {
	data, err := s.fetchSliceData(ctx, sst, sd, imsis)
	if err != nil {
		return nil, err
	}
	selected := subscribersOfDnn(data, dnn)
	if len(selected) == 0 {
		return nil, &UnknownDnnError{Dnn: dnn, Sst: sst, Sd: sd}
	}
	sliceSummary, err := buildSliceSummary(selected)
	if err != nil {
		return nil, err
	}
	return &configmodels.DnnSummary{
		Dnn:                dnn,
		TotalImsis:         sliceSummary.TotalImsis,
		AllSupportingImsis: sliceSummary.AllSupportingImsis,
		DefaultRequiredSsc: sliceSummary.PerDnnDefaultRequiredSsc[dnn],
		CommonSupportedSsc: sliceSummary.PerDnnCommonSupportedSsc[dnn],
		BitrateTotals:      sliceSummary.PerDnnAggregatedBitrate[dnn],
	}, nil
}
