package dbadapter

import (
	"go.mongodb.org/mongo-driver/bson"
)

// MockDBClient is a mock implementation of the database client for testing
type MockDBClient struct {
	Docs      []map[string]any
	GetManyFn func(collName string, filter bson.M) ([]map[string]any, error)
}

// RestfulAPIGetMany implements the mock version of GetMany
func (m *MockDBClient) RestfulAPIGetMany(collName string, filter bson.M) ([]map[string]any, error) {
	if m.GetManyFn != nil {
		return m.GetManyFn(collName, filter)
	}
	return m.Docs, nil
}
