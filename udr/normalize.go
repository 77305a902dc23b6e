// SPDX-FileCopyrightText: 2021 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package udr

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mitchellh/mapstructure"
	"github.com/omec-project/openapi/models"
	"github.com/omec-project/sliceinsight/backend/logger"
	"github.com/omec-project/sliceinsight/configmodels"
)

const causeDataNotFound = "DATA_NOT_FOUND"

func dataNotFound() *configmodels.ProblemIndicator {
	return &configmodels.ProblemIndicator{
		Status: http.StatusNotFound,
		Title:  http.StatusText(http.StatusNotFound),
		Cause:  causeDataNotFound,
	}
}

// NormalizeSmData turns a generically decoded SM data response into a lookup
// result. A list keeps only its first element; a document carrying a
// "status" key is a problem.
func NormalizeSmData(raw any) (configmodels.SmDataLookup, error) {
	switch doc := raw.(type) {
	case []any:
		if len(doc) == 0 {
			return configmodels.ProblemLookup(dataNotFound()), nil
		}
		first, ok := doc[0].(map[string]any)
		if !ok {
			return configmodels.SmDataLookup{}, fmt.Errorf("unexpected SM data list element of type %T", doc[0])
		}
		return normalizeDocument(first)
	case map[string]any:
		return normalizeDocument(doc)
	default:
		return configmodels.SmDataLookup{}, fmt.Errorf("unexpected SM data document of type %T", raw)
	}
}

func normalizeDocument(doc map[string]any) (configmodels.SmDataLookup, error) {
	if _, ok := doc["status"]; ok {
		return configmodels.ProblemLookup(decodeProblem(doc)), nil
	}
	var profile models.SessionManagementSubscriptionData
	if err := json.Unmarshal(configmodels.MapToByte(doc), &profile); err != nil {
		return configmodels.SmDataLookup{}, fmt.Errorf("could not decode SM data: %w", err)
	}
	return configmodels.ProfileLookup(&profile), nil
}

// decodeProblem never fails: a status that cannot be decoded still marks the
// document as a problem.
func decodeProblem(doc map[string]any) *configmodels.ProblemIndicator {
	problem := &configmodels.ProblemIndicator{}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           problem,
	})
	if err == nil {
		err = decoder.Decode(doc)
	}
	if err != nil {
		logger.UdrLog.Debugw("could not decode problem details", "error", err)
	}
	return problem
}
