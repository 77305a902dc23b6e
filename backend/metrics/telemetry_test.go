// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024 Canonical Ltd.

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordLookup(t *testing.T) {
	before := testutil.ToFloat64(subscriberLookups.WithLabelValues("udr", LookupRejected))
	RecordLookup("udr", LookupRejected)
	RecordLookup("udr", LookupRejected)
	after := testutil.ToFloat64(subscriberLookups.WithLabelValues("udr", LookupRejected))
	if after-before != 2 {
		t.Errorf("expected counter to grow by 2, got %v", after-before)
	}
}

func TestRecordOperation(t *testing.T) {
	okBefore := testutil.ToFloat64(operations.WithLabelValues("summary", "success"))
	errBefore := testutil.ToFloat64(operations.WithLabelValues("summary", "error"))

	RecordOperation("summary", time.Now(), nil)
	RecordOperation("summary", time.Now(), errors.New("unsupported slice"))

	if got := testutil.ToFloat64(operations.WithLabelValues("summary", "success")) - okBefore; got != 1 {
		t.Errorf("expected one success, got %v", got)
	}
	if got := testutil.ToFloat64(operations.WithLabelValues("summary", "error")) - errBefore; got != 1 {
		t.Errorf("expected one error, got %v", got)
	}
	if count := testutil.CollectAndCount(operationDuration, namespace+"_operation_duration_seconds"); count == 0 {
		t.Errorf("expected duration histogram to have samples")
	}
}
