// SPDX-FileCopyrightText: 2025 Canonical Ltd
//
// SPDX-License-Identifier: Apache-2.0

package afservice

import (
	"reflect"
	"testing"

	"github.com/omec-project/openapi/models"
)

func TestUnionSscModes(t *testing.T) {
	testCases := []struct {
		name     string
		sets     [][]models.SscMode
		expected []models.SscMode
	}{
		{
			name:     "no sets",
			sets:     nil,
			expected: []models.SscMode{},
		},
		{
			name:     "empty sets",
			sets:     [][]models.SscMode{{}, nil},
			expected: []models.SscMode{},
		},
		{
			name: "overlapping sets",
			sets: [][]models.SscMode{
				{models.SscMode__3, models.SscMode__1},
				{models.SscMode__1, models.SscMode__2},
			},
			expected: []models.SscMode{models.SscMode__1, models.SscMode__2, models.SscMode__3},
		},
		{
			name: "disjoint sets give everything, not the intersection",
			sets: [][]models.SscMode{
				{models.SscMode__1},
				{models.SscMode__2},
			},
			expected: []models.SscMode{models.SscMode__1, models.SscMode__2},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := UnionSscModes(tc.sets)
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("expected %v, got %v", tc.expected, got)
			}
		})
	}
}

func TestDistinctSscModes(t *testing.T) {
	got := DistinctSscModes([]models.SscMode{models.SscMode__2, models.SscMode__1, models.SscMode__2})
	expected := []models.SscMode{models.SscMode__1, models.SscMode__2}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("expected %v, got %v", expected, got)
	}
}
