// SPDX-FileCopyrightText: 2021 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package udr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/omec-project/openapi/models"
	"github.com/omec-project/sliceinsight/backend/logger"
	"github.com/omec-project/sliceinsight/backend/metrics"
	"github.com/omec-project/sliceinsight/configmodels"
)

const (
	udrSourceName = "udr"
	smDataPath    = "/nudr-dr/v1/subscription-data/%s/%s/provisioned-data/sm-data"
)

// Client reads provisioned SM data from a UDR over the Nudr_DataRepository API.
type Client struct {
	baseURL    string
	plmnID     string
	httpClient *http.Client
}

func NewClient(baseURL, plmnID string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		plmnID:     plmnID,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) smDataURL(snssai models.Snssai, imsi string) (string, error) {
	nssai, err := json.Marshal(snssai)
	if err != nil {
		return "", err
	}
	query := url.Values{}
	query.Set("single-nssai", string(nssai))
	path := fmt.Sprintf(smDataPath, url.PathEscape("imsi-"+imsi), url.PathEscape(c.plmnID))
	return c.baseURL + path + "?" + query.Encode(), nil
}

func (c *Client) LookupSmData(ctx context.Context, snssai models.Snssai, imsi string) (configmodels.SmDataLookup, error) {
	reqURL, err := c.smDataURL(snssai, imsi)
	if err != nil {
		metrics.RecordLookup(udrSourceName, metrics.LookupFailed)
		return configmodels.SmDataLookup{}, fmt.Errorf("could not build SM data request for %s: %w", imsi, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		metrics.RecordLookup(udrSourceName, metrics.LookupFailed)
		return configmodels.SmDataLookup{}, err
	}
	req.Header.Set("Accept", "application/json")

	logger.UdrLog.Debugf("GET %s", reqURL)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordLookup(udrSourceName, metrics.LookupFailed)
		return configmodels.SmDataLookup{}, fmt.Errorf("SM data request for %s failed: %w", imsi, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logger.UdrLog.Warnf("could not close response body: %v", closeErr)
		}
	}()

	lookup, err := decodeResponse(resp)
	if err != nil {
		metrics.RecordLookup(udrSourceName, metrics.LookupFailed)
		return configmodels.SmDataLookup{}, fmt.Errorf("SM data response for %s: %w", imsi, err)
	}
	recordOutcome(udrSourceName, lookup)
	return lookup, nil
}

func decodeResponse(resp *http.Response) (configmodels.SmDataLookup, error) {
	var raw any
	decodeErr := json.NewDecoder(resp.Body).Decode(&raw)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if doc, ok := raw.(map[string]any); decodeErr == nil && ok {
			if _, hasStatus := doc["status"]; hasStatus {
				return configmodels.ProblemLookup(decodeProblem(doc)), nil
			}
		}
		return configmodels.ProblemLookup(&configmodels.ProblemIndicator{
			Status: int32(resp.StatusCode),
			Title:  http.StatusText(resp.StatusCode),
		}), nil
	}

	if errors.Is(decodeErr, io.EOF) {
		return configmodels.ProblemLookup(dataNotFound()), nil
	}
	if decodeErr != nil {
		return configmodels.SmDataLookup{}, decodeErr
	}
	return NormalizeSmData(raw)
}

func recordOutcome(source string, lookup configmodels.SmDataLookup) {
	if lookup.IsProblem() {
		metrics.RecordLookup(source, metrics.LookupRejected)
		return
	}
	metrics.RecordLookup(source, metrics.LookupAccepted)
}
