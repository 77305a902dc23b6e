// SPDX-FileCopyrightText: 2021 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package afservice

import (
	"context"
	"time"

	"github.com/omec-project/openapi/models"
	"github.com/omec-project/sliceinsight/backend/logger"
	"github.com/omec-project/sliceinsight/backend/metrics"
	"github.com/omec-project/sliceinsight/configmodels"
)

// FetchSliceData looks up every subscriber once, in order, and keeps those
// that returned a profile for the slice. An empty imsis uses the default
// roster. It fails with *UnsupportedSliceError when nobody is kept.
func (s *Service) FetchSliceData(ctx context.Context, sst int32, sd string, imsis []string) (configmodels.AggregatedSliceData, error) {
	start := time.Now()
	data, err := s.fetchSliceData(ctx, sst, sd, imsis)
	metrics.RecordOperation("fetch_slice_data", start, err)
	return data, err
}

func (s *Service) fetchSliceData(ctx context.Context, sst int32, sd string, imsis []string) (configmodels.AggregatedSliceData, error) {
	imsis = s.rosterOr(imsis)
	snssai := models.Snssai{Sst: sst, Sd: sd}
	data := make(configmodels.AggregatedSliceData, 0, len(imsis))
	for _, imsi := range imsis {
		lookup, err := s.source.LookupSmData(ctx, snssai, imsi)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			logger.AfLog.Warnw("subscriber lookup failed", "imsi", imsi, "sst", sst, "sd", sd, "error", err)
			continue
		}
		if lookup.IsProblem() {
			logger.AfLog.Debugw("subscriber has no SM data for slice", "imsi", imsi, "sst", sst, "sd", sd, "problem", lookup.Problem)
			continue
		}
		data = append(data, configmodels.SubscriberSmData{Imsi: imsi, Profile: lookup.Profile})
	}

	if len(data) == 0 {
		return nil, &UnsupportedSliceError{Sst: sst, Sd: sd}
	}
	logger.AfLog.Debugf("%d of %d subscribers support S_NSSAI [SST: %d, SD: %s]", len(data), len(imsis), sst, sd)
	return data, nil
}
