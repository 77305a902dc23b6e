// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024 Canonical Ltd.

/*
 *  Metrics package is used to expose the metrics of the SliceInsight service.
 */

package metrics

import (
	"fmt"
	"net/http"
	"time"

	"github.com/omec-project/sliceinsight/backend/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "sliceinsight"

// Lookup results
const (
	LookupAccepted = "accepted"
	LookupRejected = "rejected"
	LookupFailed   = "failed"
)

var (
	subscriberLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "subscriber_lookups_total",
		Help:      "Subscriber SM data lookups by source and result.",
	}, []string{"source", "result"})

	operations = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "operations_total",
		Help:      "Aggregation operations by operation and result.",
	}, []string{"operation", "result"})

	operationDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "operation_duration_seconds",
		Help:      "Aggregation operation latency in seconds.",
		Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5},
	}, []string{"operation"})
)

func init() {
	prometheus.MustRegister(subscriberLookups, operations, operationDuration)
}

// RecordLookup counts one subscriber data lookup.
func RecordLookup(source, result string) {
	subscriberLookups.WithLabelValues(source, result).Inc()
}

// RecordOperation counts a finished aggregation operation and observes its latency.
func RecordOperation(operation string, start time.Time, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	operations.WithLabelValues(operation, result).Inc()
	operationDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

// InitMetrics initializes SliceInsight metrics
func InitMetrics(port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	addr := fmt.Sprintf(":%d", port)
	logger.InitLog.Infoln("metrics server listening on", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.InitLog.Errorf("could not open metrics port: %v", err)
	}
}
