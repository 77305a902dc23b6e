// SPDX-FileCopyrightText: 2021 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package afservice

import (
	"context"
	"slices"

	"github.com/omec-project/openapi/models"
	"github.com/omec-project/sliceinsight/configmodels"
)

// SubscriberDataSource returns the SM subscription data of one subscriber in
// one slice. A returned error means the lookup itself failed; a subscriber
// without data for the slice is reported through SmDataLookup.Problem.
type SubscriberDataSource interface {
	LookupSmData(ctx context.Context, snssai models.Snssai, imsi string) (configmodels.SmDataLookup, error)
}

var defaultRoster = []string{
	"999707364000060",
	"666010000000001",
	"666010000000002",
	"666011",
	"666012",
	"666013",
}

// DefaultImsis returns the built-in subscriber roster used when a request
// names no subscribers.
func DefaultImsis() []string {
	return slices.Clone(defaultRoster)
}

// Service aggregates per-subscriber SM data into slice level views. It holds
// no mutable state and is safe for concurrent use.
type Service struct {
	source       SubscriberDataSource
	defaultImsis []string
}

func NewService(source SubscriberDataSource, defaultImsis []string) *Service {
	if len(defaultImsis) == 0 {
		defaultImsis = defaultRoster
	}
	return &Service{
		source:       source,
		defaultImsis: slices.Clone(defaultImsis),
	}
}

func (s *Service) rosterOr(imsis []string) []string {
	if len(imsis) == 0 {
		return s.defaultImsis
	}
	return imsis
}
