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

type preemptionRule func(qos *models.SubscribedDefaultQos) (configmodels.PreemptionRecord, bool)

// A capable bearer may drop bearers of lower ARP priority under congestion.
func mayPreempt(qos *models.SubscribedDefaultQos) (configmodels.PreemptionRecord, bool) {
	if qos.Arp.PreemptCap != models.PreemptionCapability_MAY_PREEMPT {
		return configmodels.PreemptionRecord{}, false
	}
	return configmodels.PreemptionRecord{
		PreemptCap: models.PreemptionCapability_MAY_PREEMPT,
		Arp:        qos.PriorityLevel,
	}, true
}

// A vulnerable bearer may be dropped in favour of a capable one.
func preemptable(qos *models.SubscribedDefaultQos) (configmodels.PreemptionRecord, bool) {
	if qos.Arp.PreemptVuln != models.PreemptionVulnerability_PREEMPTABLE {
		return configmodels.PreemptionRecord{}, false
	}
	return configmodels.PreemptionRecord{
		PreemptVuln: models.PreemptionVulnerability_PREEMPTABLE,
		Arp:         qos.PriorityLevel,
	}, true
}

// PreemptionCapableUEs lists, per DNN, the subscribers whose default QoS may
// preempt other bearers.
func (s *Service) PreemptionCapableUEs(ctx context.Context, sst int32, sd string, imsis []string) (*configmodels.PreemptiveUEs, error) {
	start := time.Now()
	report, err := s.classifyPreemption(ctx, sst, sd, imsis, mayPreempt)
	metrics.RecordOperation("preemption_capable_ues", start, err)
	if err != nil {
		return nil, err
	}
	return &configmodels.PreemptiveUEs{PreemptiveUes: report}, nil
}

// PreemptionVulnerableUEs lists, per DNN, the subscribers whose default QoS
// may be preempted.
func (s *Service) PreemptionVulnerableUEs(ctx context.Context, sst int32, sd string, imsis []string) (*configmodels.PreemptableUEs, error) {
	start := time.Now()
	report, err := s.classifyPreemption(ctx, sst, sd, imsis, preemptable)
	metrics.RecordOperation("preemption_vulnerable_ues", start, err)
	if err != nil {
		return nil, err
	}
	return &configmodels.PreemptableUEs{PreemptableUes: report}, nil
}

func (s *Service) classifyPreemption(ctx context.Context, sst int32, sd string, imsis []string, rule preemptionRule) (configmodels.PreemptionReport, error) {
	data, err := s.fetchSliceData(ctx, sst, sd, imsis)
	if err != nil {
		return nil, err
	}
	return buildPreemptionReport(data, rule), nil
}

// Every DNN declared by an accepted subscriber gets an entry, qualifying
// subscribers or not.
func buildPreemptionReport(data configmodels.AggregatedSliceData, rule preemptionRule) configmodels.PreemptionReport {
	report := make(configmodels.PreemptionReport)
	forEachDnn(data, func(imsi, dnn string, cfg models.DnnConfiguration) {
		if _, ok := report[dnn]; !ok {
			report[dnn] = make(map[string]configmodels.PreemptionRecord)
		}
		qos := cfg.Var5gQosProfile
		if qos == nil || qos.Arp == nil {
			return
		}
		if record, ok := rule(qos); ok {
			report[dnn][imsi] = record
		}
	})
	return report
}
