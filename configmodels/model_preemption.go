// SPDX-FileCopyrightText: 2021 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package configmodels

import (
	"github.com/omec-project/openapi/models"
)

// PreemptionRecord carries the qualifying attribute and, under "arp", the
// QoS profile priority level.
type PreemptionRecord struct {
	PreemptCap  models.PreemptionCapability    `json:"preemptCap,omitempty"`
	PreemptVuln models.PreemptionVulnerability `json:"preemptVuln,omitempty"`
	Arp         int32                          `json:"arp"`
}

// PreemptionReport maps DNN -> IMSI -> record.
type PreemptionReport map[string]map[string]PreemptionRecord

type PreemptiveUEs struct {
	PreemptiveUes PreemptionReport `json:"PREEMPTIVE_UES"`
}

type PreemptableUEs struct {
	PreemptableUes PreemptionReport `json:"PREEMPTABLE_UES"`
}
