// SPDX-FileCopyrightText: 2021 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

package udr

import (
	"context"
	"fmt"

	"github.com/omec-project/openapi/models"
	"github.com/omec-project/sliceinsight/backend/logger"
	"github.com/omec-project/sliceinsight/backend/metrics"
	"github.com/omec-project/sliceinsight/configmodels"
	"github.com/omec-project/sliceinsight/dbadapter"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	mongoSourceName = "mongodb"
	SmDataColl      = "subscriptionData.provisionedData.smData"
)

// MongoSource reads provisioned SM data straight from the database the UDR
// is backed by.
type MongoSource struct {
	db dbadapter.DBInterface
}

func NewMongoSource(db dbadapter.DBInterface) *MongoSource {
	return &MongoSource{db: db}
}

func smDataFilter(snssai models.Snssai, imsi string) bson.M {
	filter := bson.M{
		"ueId":            "imsi-" + imsi,
		"singleNssai.sst": snssai.Sst,
	}
	if snssai.Sd != "" {
		filter["singleNssai.sd"] = snssai.Sd
	}
	return filter
}

func (m *MongoSource) LookupSmData(ctx context.Context, snssai models.Snssai, imsi string) (configmodels.SmDataLookup, error) {
	if err := ctx.Err(); err != nil {
		return configmodels.SmDataLookup{}, err
	}
	filter := smDataFilter(snssai, imsi)
	docs, err := m.db.RestfulAPIGetMany(SmDataColl, filter)
	if err != nil {
		metrics.RecordLookup(mongoSourceName, metrics.LookupFailed)
		logger.DbLog.Errorw("failed to retrieve SM data", "imsi", imsi, "error", err)
		return configmodels.SmDataLookup{}, fmt.Errorf("could not read SM data for %s: %w", imsi, err)
	}
	if len(docs) == 0 {
		metrics.RecordLookup(mongoSourceName, metrics.LookupRejected)
		return configmodels.ProblemLookup(dataNotFound()), nil
	}
	if len(docs) > 1 {
		logger.DbLog.Debugf("%d SM data documents for imsi %s, using the first", len(docs), imsi)
	}

	lookup, err := normalizeDocument(docs[0])
	if err != nil {
		metrics.RecordLookup(mongoSourceName, metrics.LookupFailed)
		return configmodels.SmDataLookup{}, fmt.Errorf("SM data document for %s: %w", imsi, err)
	}
	recordOutcome(mongoSourceName, lookup)
	return lookup, nil
}
