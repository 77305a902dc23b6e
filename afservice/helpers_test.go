// SPDX-FileCopyrightText: 2025 Canonical Ltd
//
// SPDX-License-Identifier: Apache-2.0

package afservice

import (
	"context"
	"sync"

	"github.com/omec-project/openapi/models"
	"github.com/omec-project/sliceinsight/configmodels"
)

type fakeSource struct {
	mu       sync.Mutex
	profiles map[string]*models.SessionManagementSubscriptionData
	errs     map[string]error
	calls    []string
}

func (f *fakeSource) LookupSmData(ctx context.Context, snssai models.Snssai, imsi string) (configmodels.SmDataLookup, error) {
	f.mu.Lock()
	f.calls = append(f.calls, imsi)
	f.mu.Unlock()
	if err, ok := f.errs[imsi]; ok {
		return configmodels.SmDataLookup{}, err
	}
	if profile, ok := f.profiles[imsi]; ok {
		return configmodels.ProfileLookup(profile), nil
	}
	return configmodels.ProblemLookup(&configmodels.ProblemIndicator{Status: 404, Cause: "DATA_NOT_FOUND"}), nil
}

type dnnParams struct {
	ul          string
	dl          string
	defaultSsc  models.SscMode
	allowedSsc  []models.SscMode
	preemptCap  models.PreemptionCapability
	preemptVuln models.PreemptionVulnerability
	priority    int32
	noAmbr      bool
	noSsc       bool
	noQos       bool
}

func makeProfile(dnns map[string]dnnParams) *models.SessionManagementSubscriptionData {
	configs := make(map[string]models.DnnConfiguration, len(dnns))
	for dnn, p := range dnns {
		cfg := models.DnnConfiguration{}
		if !p.noAmbr {
			cfg.SessionAmbr = &models.Ambr{Uplink: p.ul, Downlink: p.dl}
		}
		if !p.noSsc {
			cfg.SscModes = &models.SscModes{
				DefaultSscMode:  p.defaultSsc,
				AllowedSscModes: p.allowedSsc,
			}
		}
		if !p.noQos {
			cfg.Var5gQosProfile = &models.SubscribedDefaultQos{
				Var5qi: 9,
				Arp: &models.Arp{
					PriorityLevel: p.priority,
					PreemptCap:    p.preemptCap,
					PreemptVuln:   p.preemptVuln,
				},
				PriorityLevel: p.priority,
			}
		}
		configs[dnn] = cfg
	}
	return &models.SessionManagementSubscriptionData{
		SingleNssai:       &models.Snssai{Sst: 1, Sd: "010203"},
		DnnConfigurations: configs,
	}
}

// Two subscribers on "internet", one of them also on "ims", one subscriber
// without data for the slice.
func newSliceFixture() *fakeSource {
	return &fakeSource{
		profiles: map[string]*models.SessionManagementSubscriptionData{
			"208930000000001": makeProfile(map[string]dnnParams{
				"internet": {
					ul: "10000 Kbps", dl: "20000 Kbps",
					defaultSsc: models.SscMode__1,
					allowedSsc: []models.SscMode{models.SscMode__1, models.SscMode__2},
					preemptCap: models.PreemptionCapability_NOT_PREEMPT, preemptVuln: models.PreemptionVulnerability_PREEMPTABLE,
					priority: 8,
				},
				"ims": {
					ul: "1000 Kbps", dl: "1000 Kbps",
					defaultSsc: models.SscMode__1,
					allowedSsc: []models.SscMode{models.SscMode__1},
					preemptCap: models.PreemptionCapability_MAY_PREEMPT, preemptVuln: models.PreemptionVulnerability_NOT_PREEMPTABLE,
					priority: 5,
				},
			}),
			"208930000000002": makeProfile(map[string]dnnParams{
				"internet": {
					ul: "5000 Kbps", dl: "7000 Kbps",
					defaultSsc: models.SscMode__3,
					allowedSsc: []models.SscMode{models.SscMode__3},
					preemptCap: models.PreemptionCapability_MAY_PREEMPT, preemptVuln: models.PreemptionVulnerability_PREEMPTABLE,
					priority: 2,
				},
			}),
		},
	}
}

var fixtureImsis = []string{"208930000000001", "208930000000003", "208930000000002"}
