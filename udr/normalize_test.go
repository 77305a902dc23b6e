// SPDX-FileCopyrightText: 2025 Canonical Ltd
//
// SPDX-License-Identifier: Apache-2.0

package udr

import (
	"encoding/json"
	"testing"

	"github.com/omec-project/openapi/models"
)

func decode(t *testing.T, body string) any {
	t.Helper()
	var raw any
	if err := json.Unmarshal([]byte(body), &raw); err != nil {
		t.Fatalf("invalid test body %s: %v", body, err)
	}
	return raw
}

const smDataBody = `{
	"singleNssai": {"sst": 1, "sd": "010203"},
	"dnnConfigurations": {
		"internet": {
			"pduSessionTypes": {"defaultSessionType": "IPV4"},
			"sscModes": {"defaultSscMode": "SSC_MODE_1", "allowedSscModes": ["SSC_MODE_1", "SSC_MODE_2"]},
			"sessionAmbr": {"uplink": "1000 Kbps", "downlink": "2000 Kbps"}
		}
	}
}`

func TestNormalizeSmData(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantProblem bool
		wantStatus  int32
		wantCause   string
	}{
		{name: "single document", body: smDataBody},
		{name: "list keeps the first element", body: "[" + smDataBody + `, {"status": 500}]`},
		{name: "empty list", body: `[]`, wantProblem: true, wantStatus: 404, wantCause: causeDataNotFound},
		{
			name:        "problem details",
			body:        `{"status": 404, "title": "Not Found", "cause": "USER_NOT_FOUND"}`,
			wantProblem: true,
			wantStatus:  404,
			wantCause:   "USER_NOT_FOUND",
		},
		{
			name:        "status given as a string",
			body:        `{"status": "403", "detail": "forbidden"}`,
			wantProblem: true,
			wantStatus:  403,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lookup, err := NormalizeSmData(decode(t, tc.body))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if lookup.IsProblem() != tc.wantProblem {
				t.Fatalf("expected problem=%v, got %+v", tc.wantProblem, lookup)
			}
			if tc.wantProblem {
				if lookup.Problem.Status != tc.wantStatus {
					t.Errorf("expected status %d, got %d", tc.wantStatus, lookup.Problem.Status)
				}
				if lookup.Problem.Cause != tc.wantCause {
					t.Errorf("expected cause %q, got %q", tc.wantCause, lookup.Problem.Cause)
				}
				return
			}
			dnn, ok := lookup.Profile.DnnConfigurations["internet"]
			if !ok {
				t.Fatalf("expected internet dnn in %+v", lookup.Profile)
			}
			if dnn.SessionAmbr == nil || dnn.SessionAmbr.Uplink != "1000 Kbps" {
				t.Errorf("unexpected session ambr %+v", dnn.SessionAmbr)
			}
			if dnn.SscModes == nil || dnn.SscModes.DefaultSscMode != models.SscMode__1 {
				t.Errorf("unexpected ssc modes %+v", dnn.SscModes)
			}
		})
	}
}

func TestNormalizeSmData_UnexpectedShape(t *testing.T) {
	for _, body := range []string{`"sm-data"`, `42`, `[1, 2]`, `null`} {
		if _, err := NormalizeSmData(decode(t, body)); err == nil {
			t.Errorf("expected error for %s", body)
		}
	}
}
