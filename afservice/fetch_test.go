// SPDX-FileCopyrightText: 2025 Canonical Ltd
//
// SPDX-License-Identifier: Apache-2.0

package afservice

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/omec-project/openapi/models"
)

func TestFetchSliceData_KeepsRequestOrder(t *testing.T) {
	source := newSliceFixture()
	svc := NewService(source, nil)

	imsis := []string{"208930000000002", "208930000000003", "208930000000001"}
	data, err := svc.FetchSliceData(context.Background(), 1, "010203", imsis)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []string{"208930000000002", "208930000000001"}
	if !reflect.DeepEqual(data.Imsis(), expected) {
		t.Errorf("expected %v, got %v", expected, data.Imsis())
	}
	if !reflect.DeepEqual(source.calls, imsis) {
		t.Errorf("expected one lookup per subscriber in order %v, got %v", imsis, source.calls)
	}
	if data[0].Profile != source.profiles["208930000000002"] {
		t.Errorf("expected the looked up profile to be kept as is")
	}
}

func TestFetchSliceData_LookupErrorsAreSkipped(t *testing.T) {
	source := newSliceFixture()
	source.errs = map[string]error{"208930000000001": errors.New("connection refused")}
	svc := NewService(source, nil)

	data, err := svc.FetchSliceData(context.Background(), 1, "010203", fixtureImsis)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(data.Imsis(), []string{"208930000000002"}) {
		t.Errorf("expected only the reachable subscriber, got %v", data.Imsis())
	}
}

func TestFetchSliceData_UnsupportedSlice(t *testing.T) {
	source := &fakeSource{}
	svc := NewService(source, nil)

	_, err := svc.FetchSliceData(context.Background(), 2, "000001", []string{"1", "2"})
	var unsupported *UnsupportedSliceError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedSliceError, got %v", err)
	}
	if unsupported.Sst != 2 || unsupported.Sd != "000001" {
		t.Errorf("expected error for SST 2 SD 000001, got %+v", unsupported)
	}
	if err.Error() != "unsupported slice: S_NSSAI [SST: 2, SD: 000001]" {
		t.Errorf("unexpected message %q", err.Error())
	}
}

func TestFetchSliceData_DefaultRoster(t *testing.T) {
	testCases := []struct {
		name         string
		defaultImsis []string
		expected     []string
	}{
		{
			name:     "built-in roster",
			expected: DefaultImsis(),
		},
		{
			name:         "configured roster",
			defaultImsis: []string{"001010000000001", "001010000000002"},
			expected:     []string{"001010000000001", "001010000000002"},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			source := &fakeSource{
				profiles: map[string]*models.SessionManagementSubscriptionData{
					tc.expected[0]: makeProfile(map[string]dnnParams{"internet": {ul: "1 Kbps", dl: "1 Kbps"}}),
				},
			}
			svc := NewService(source, tc.defaultImsis)
			data, err := svc.FetchSliceData(context.Background(), 1, "010203", nil)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(source.calls, tc.expected) {
				t.Errorf("expected lookups for %v, got %v", tc.expected, source.calls)
			}
			if !reflect.DeepEqual(data.Imsis(), tc.expected[:1]) {
				t.Errorf("expected %v, got %v", tc.expected[:1], data.Imsis())
			}
		})
	}
}

func TestFetchSliceData_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	source := newSliceFixture()
	source.errs = map[string]error{"208930000000001": context.Canceled}
	svc := NewService(source, nil)

	_, err := svc.FetchSliceData(ctx, 1, "010203", fixtureImsis)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if len(source.calls) != 1 {
		t.Errorf("expected the loop to stop after the first lookup, got %v", source.calls)
	}
}

func TestNewService_CopiesRoster(t *testing.T) {
	roster := []string{"001010000000001"}
	svc := NewService(&fakeSource{}, roster)
	roster[0] = "changed"
	if svc.defaultImsis[0] != "001010000000001" {
		t.Errorf("expected roster to be copied, got %v", svc.defaultImsis)
	}
}
