// SPDX-FileCopyrightText: 2021 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package configmodels

import (
	"encoding/json"
	"fmt"

	"github.com/omec-project/openapi/models"
)

// ProblemIndicator is what a subscriber data source answers with when it has
// no usable SM data for a subscriber and slice. Only its presence matters to
// the aggregation.
type ProblemIndicator struct {
	Status int32  `json:"status" mapstructure:"status"`
	Title  string `json:"title,omitempty" mapstructure:"title"`
	Detail string `json:"detail,omitempty" mapstructure:"detail"`
	Cause  string `json:"cause,omitempty" mapstructure:"cause"`
}

func (p *ProblemIndicator) String() string {
	if p.Cause != "" {
		return fmt.Sprintf("status %d (%s)", p.Status, p.Cause)
	}
	return fmt.Sprintf("status %d", p.Status)
}

// SmDataLookup is the outcome of one subscriber data lookup: either a profile
// or a problem, never both.
type SmDataLookup struct {
	Profile *models.SessionManagementSubscriptionData
	Problem *ProblemIndicator
}

func ProfileLookup(profile *models.SessionManagementSubscriptionData) SmDataLookup {
	return SmDataLookup{Profile: profile}
}

func ProblemLookup(problem *ProblemIndicator) SmDataLookup {
	return SmDataLookup{Problem: problem}
}

func (l SmDataLookup) IsProblem() bool {
	return l.Problem != nil || l.Profile == nil
}

// SubscriberSmData is one accepted subscriber of a slice.
type SubscriberSmData struct {
	Imsi    string
	Profile *models.SessionManagementSubscriptionData
}

// MarshalJSON renders the entry as {"<imsi>": <profile>}.
func (s SubscriberSmData) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]*models.SessionManagementSubscriptionData{s.Imsi: s.Profile})
}

// AggregatedSliceData keeps accepted subscribers in request order.
type AggregatedSliceData []SubscriberSmData

func (a AggregatedSliceData) Imsis() []string {
	imsis := make([]string, 0, len(a))
	for _, s := range a {
		imsis = append(imsis, s.Imsi)
	}
	return imsis
}
