// SPDX-FileCopyrightText: 2025 Canonical Ltd
//
// SPDX-License-Identifier: Apache-2.0

package afservice

import (
	"errors"
	"testing"

	"github.com/omec-project/openapi/models"
	"github.com/omec-project/sliceinsight/configmodels"
)

func TestParseQuantity(t *testing.T) {
	testCases := []struct {
		name      string
		quantity  string
		expected  int64
		expectErr bool
	}{
		{name: "kbps", quantity: "10000 Kbps", expected: 10000},
		{name: "extra whitespace", quantity: "  42   Kbps ", expected: 42},
		{name: "no unit", quantity: "7", expected: 7},
		{name: "other unit is not converted", quantity: "2 Gbps", expected: 2},
		{name: "above int32", quantity: "5000000000 Kbps", expected: 5000000000},
		{name: "unit glued to number", quantity: "100Kbps", expectErr: true},
		{name: "decimal", quantity: "1.5 Mbps", expectErr: true},
		{name: "empty", quantity: "", expectErr: true},
		{name: "blank", quantity: "   ", expectErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseQuantity(tc.quantity)
			if tc.expectErr {
				var malformed *MalformedQuantityError
				if !errors.As(err, &malformed) {
					t.Fatalf("expected MalformedQuantityError, got %v", err)
				}
				if malformed.Value != tc.quantity {
					t.Errorf("expected error to carry %q, got %q", tc.quantity, malformed.Value)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.expected {
				t.Errorf("expected %d, got %d", tc.expected, got)
			}
		})
	}
}

func TestSumBitrates(t *testing.T) {
	testCases := []struct {
		name     string
		ambrs    []models.Ambr
		expected configmodels.BitrateTotals
	}{
		{
			name: "two subscribers",
			ambrs: []models.Ambr{
				{Uplink: "10000 Kbps", Downlink: "20000 Kbps"},
				{Uplink: "5000 Kbps", Downlink: "7000 Kbps"},
			},
			expected: configmodels.BitrateTotals{TotalAmbrUl: "15000Kbps", TotalAmbrDl: "27000Kbps"},
		},
		{
			name:     "no entries",
			ambrs:    nil,
			expected: configmodels.BitrateTotals{TotalAmbrUl: "0Kbps", TotalAmbrDl: "0Kbps"},
		},
		{
			// units are not reconciled, the numbers are added as they are
			name: "mixed units",
			ambrs: []models.Ambr{
				{Uplink: "10 Mbps", Downlink: "1 Gbps"},
				{Uplink: "5 Kbps", Downlink: "1 Kbps"},
			},
			expected: configmodels.BitrateTotals{TotalAmbrUl: "15Kbps", TotalAmbrDl: "2Kbps"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := SumBitrates(tc.ambrs)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.expected {
				t.Errorf("expected %+v, got %+v", tc.expected, got)
			}
		})
	}
}

func TestSumBitrates_Malformed(t *testing.T) {
	ambrs := []models.Ambr{
		{Uplink: "10000 Kbps", Downlink: "20000 Kbps"},
		{Uplink: "10000 Kbps", Downlink: "lots"},
	}
	_, err := SumBitrates(ambrs)
	var malformed *MalformedQuantityError
	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedQuantityError, got %v", err)
	}
	if malformed.Value != "lots" {
		t.Errorf("expected offending value %q, got %q", "lots", malformed.Value)
	}
}
