// SPDX-FileCopyrightText: 2021 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package afservice

import (
	"slices"

	"github.com/omec-project/openapi/models"
)

// UnionSscModes folds sets with set union. The result is sorted and never nil.
func UnionSscModes(sets [][]models.SscMode) []models.SscMode {
	seen := make(map[models.SscMode]struct{})
	for _, set := range sets {
		for _, mode := range set {
			seen[mode] = struct{}{}
		}
	}
	modes := make([]models.SscMode, 0, len(seen))
	for mode := range seen {
		modes = append(modes, mode)
	}
	slices.Sort(modes)
	return modes
}

// DistinctSscModes returns the sorted distinct values of modes.
func DistinctSscModes(modes []models.SscMode) []models.SscMode {
	return UnionSscModes([][]models.SscMode{modes})
}
