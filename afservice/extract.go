// SPDX-FileCopyrightText: 2021 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package afservice

import (
	"slices"

	"github.com/omec-project/openapi/models"
	"github.com/omec-project/sliceinsight/configmodels"
)

type dnnSscModes struct {
	defaults []models.SscMode
	allowed  [][]models.SscMode
}

// forEachDnn visits subscribers in order and, within a subscriber, DNNs in
// lexical order.
func forEachDnn(data configmodels.AggregatedSliceData, visit func(imsi, dnn string, cfg models.DnnConfiguration)) {
	for _, subscriber := range data {
		if subscriber.Profile == nil {
			continue
		}
		configs := subscriber.Profile.DnnConfigurations
		dnns := make([]string, 0, len(configs))
		for dnn := range configs {
			dnns = append(dnns, dnn)
		}
		slices.Sort(dnns)
		for _, dnn := range dnns {
			visit(subscriber.Imsi, dnn, configs[dnn])
		}
	}
}

func allSessionAmbrs(data configmodels.AggregatedSliceData) []models.Ambr {
	ambrs := []models.Ambr{}
	forEachDnn(data, func(_, _ string, cfg models.DnnConfiguration) {
		if cfg.SessionAmbr != nil {
			ambrs = append(ambrs, *cfg.SessionAmbr)
		}
	})
	return ambrs
}

func perDnnSessionAmbrs(data configmodels.AggregatedSliceData) map[string][]models.Ambr {
	ambrs := make(map[string][]models.Ambr)
	forEachDnn(data, func(_, dnn string, cfg models.DnnConfiguration) {
		if _, ok := ambrs[dnn]; !ok {
			ambrs[dnn] = []models.Ambr{}
		}
		if cfg.SessionAmbr != nil {
			ambrs[dnn] = append(ambrs[dnn], *cfg.SessionAmbr)
		}
	})
	return ambrs
}

func perDnnSscModes(data configmodels.AggregatedSliceData) map[string]*dnnSscModes {
	modes := make(map[string]*dnnSscModes)
	forEachDnn(data, func(_, dnn string, cfg models.DnnConfiguration) {
		entry, ok := modes[dnn]
		if !ok {
			entry = &dnnSscModes{}
			modes[dnn] = entry
		}
		if cfg.SscModes == nil {
			return
		}
		if cfg.SscModes.DefaultSscMode != "" {
			entry.defaults = append(entry.defaults, cfg.SscModes.DefaultSscMode)
		}
		entry.allowed = append(entry.allowed, cfg.SscModes.AllowedSscModes)
	})
	return modes
}

func subscribedDnns(data configmodels.AggregatedSliceData) []string {
	dnns := []string{}
	seen := make(map[string]struct{})
	forEachDnn(data, func(_, dnn string, _ models.DnnConfiguration) {
		if _, ok := seen[dnn]; ok {
			return
		}
		seen[dnn] = struct{}{}
		dnns = append(dnns, dnn)
	})
	return dnns
}

func subscribersOfDnn(data configmodels.AggregatedSliceData, dnn string) configmodels.AggregatedSliceData {
	var selected configmodels.AggregatedSliceData
	for _, subscriber := range data {
		if subscriber.Profile == nil {
			continue
		}
		if cfg, ok := subscriber.Profile.DnnConfigurations[dnn]; ok {
			selected = append(selected, configmodels.SubscriberSmData{
				Imsi: subscriber.Imsi,
				Profile: &models.SessionManagementSubscriptionData{
					SingleNssai:       subscriber.Profile.SingleNssai,
					DnnConfigurations: map[string]models.DnnConfiguration{dnn: cfg},
				},
			})
		}
	}
	return selected
}
