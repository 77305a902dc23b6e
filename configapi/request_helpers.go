// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024 Canonical Ltd

package configapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/omec-project/sliceinsight/afservice"
	"github.com/omec-project/sliceinsight/backend/logger"
)

type sliceParams struct {
	sst int32
	sd  string
}

func parseSliceParams(c *gin.Context) (sliceParams, error) {
	rawSst := c.Param("sst")
	sst, err := strconv.ParseInt(rawSst, 10, 32)
	if err != nil {
		return sliceParams{}, fmt.Errorf("invalid sst %q", rawSst)
	}
	return sliceParams{sst: int32(sst), sd: c.Param("sd")}, nil
}

// requestedImsis returns nil when the caller did not restrict the roster.
func requestedImsis(c *gin.Context) []string {
	var imsis []string
	for _, value := range c.QueryArray("imsi") {
		for _, imsi := range strings.Split(value, ",") {
			if imsi = strings.TrimSpace(imsi); imsi != "" {
				imsis = append(imsis, imsi)
			}
		}
	}
	return imsis
}

func errorStatus(err error) int {
	var unsupported *afservice.UnsupportedSliceError
	var unknownDnn *afservice.UnknownDnnError
	var malformed *afservice.MalformedQuantityError
	switch {
	case errors.As(err, &unsupported), errors.As(err, &unknownDnn):
		return http.StatusNotFound
	case errors.As(err, &malformed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeServiceError(c *gin.Context, operation string, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		logger.AppLog.Errorw("request failed", "operation", operation, "error", err)
	} else {
		logger.AppLog.Infow("request rejected", "operation", operation, "status", status, "error", err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
