// SPDX-FileCopyrightText: 2024 Open Networking Foundation <info@opennetworking.org>
// SPDX-FileCopyrightText: 2019 free5GC.org
// SPDX-FileCopyrightText: 2024 Canonical Ltd
//
// SPDX-License-Identifier: Apache-2.0
package dbadapter

import (
	"context"
	"fmt"
	"time"

	"github.com/omec-project/sliceinsight/backend/logger"
	"github.com/omec-project/util/mongoapi"
	"go.mongodb.org/mongo-driver/bson"
)

type DBInterface interface {
	RestfulAPIGetMany(collName string, filter bson.M) ([]map[string]interface{}, error)
}

type MongoDBClient struct {
	*mongoapi.MongoClient
}

var (
	connectRetryInterval = 2 * time.Second
	connectTimeout       = 180 * time.Second
)

func setDBClient(url, dbname string) (DBInterface, error) {
	mClient, errConnect := mongoapi.NewMongoClient(url, dbname)
	if mClient != nil && mClient.Client != nil {
		return &MongoDBClient{MongoClient: mClient}, nil
	}
	if errConnect == nil {
		errConnect = fmt.Errorf("mongoDB client has not been initialized")
	}
	return nil, errConnect
}

// ConnectMongo retries until the database answers, the context ends or three
// minutes pass.
func ConnectMongo(ctx context.Context, url string, dbname string) (DBInterface, error) {
	ticker := time.NewTicker(connectRetryInterval)
	defer ticker.Stop()
	timer := time.After(connectTimeout)
	for {
		client, err := setDBClient(url, dbname)
		if err == nil {
			logger.DbLog.Infow("connected to MongoDB", "url", url, "dbName", dbname)
			return client, nil
		}
		logger.DbLog.Debugw("MongoDB not reachable yet", "url", url, "error", err)
		select {
		case <-ticker.C:
			continue
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer:
			logger.DbLog.Errorln("timed out while connecting to MongoDB in 3 minutes")
			return nil, fmt.Errorf("timed out while connecting to MongoDB %s", url)
		}
	}
}

func (db *MongoDBClient) RestfulAPIGetMany(collName string, filter bson.M) ([]map[string]interface{}, error) {
	return db.MongoClient.RestfulAPIGetMany(collName, filter)
}
