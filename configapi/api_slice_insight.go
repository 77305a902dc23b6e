// SPDX-License-Identifier: Apache-2.0
// SPDX-FileCopyrightText: 2024 Canonical Ltd

package configapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/omec-project/sliceinsight/afservice"
	"github.com/omec-project/sliceinsight/backend/logger"
)

// SliceInsightHandler serves the aggregation operations of an afservice.Service.
type SliceInsightHandler struct {
	svc *afservice.Service
}

func NewSliceInsightHandler(svc *afservice.Service) *SliceInsightHandler {
	return &SliceInsightHandler{svc: svc}
}

// GetSliceData godoc
//
// @Description Return the SM data of every subscriber on the slice
// @Tags        Slices
// @Produce     json
// @Param       sst     path     integer  true   "Slice/Service Type"
// @Param       sd      path     string   true   "Slice Differentiator"
// @Param       imsi    query    []string false  "Subscribers to query instead of the default roster" collectionFormat(multi)
// @Success     200  {array}   configmodels.SubscriberSmData  "SM data per subscriber"
// @Failure     400  {object}  nil                            "Invalid slice"
// @Failure     404  {object}  nil                            "Unsupported slice"
// @Failure     500  {object}  nil                            "Error retrieving SM data"
// @Router      /af/v1/slices/{sst}/{sd}/data  [get]
func (h *SliceInsightHandler) GetSliceData(c *gin.Context) {
	slice, err := parseSliceParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	logger.AppLog.Infof("received a GET slice data request for SST %d SD %s", slice.sst, slice.sd)
	data, err := h.svc.FetchSliceData(c.Request.Context(), slice.sst, slice.sd, requestedImsis(c))
	if err != nil {
		writeServiceError(c, "FetchSliceData", err)
		return
	}
	c.JSON(http.StatusOK, data)
}

// GetSliceSummary godoc
//
// @Description Return subscriber counts, SSC modes and aggregate bitrates of the slice
// @Tags        Slices
// @Produce     json
// @Param       sst     path     integer  true   "Slice/Service Type"
// @Param       sd      path     string   true   "Slice Differentiator"
// @Param       imsi    query    []string false  "Subscribers to query instead of the default roster" collectionFormat(multi)
// @Success     200  {object}  configmodels.SliceSummaryResponse  "Slice summary"
// @Failure     400  {object}  nil                                "Invalid slice"
// @Failure     404  {object}  nil                                "Unsupported slice"
// @Failure     502  {object}  nil                                "Malformed bitrate in subscriber data"
// @Failure     500  {object}  nil                                "Error summarizing slice"
// @Router      /af/v1/slices/{sst}/{sd}/summary  [get]
func (h *SliceInsightHandler) GetSliceSummary(c *gin.Context) {
	slice, err := parseSliceParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	logger.AppLog.Infof("received a GET slice summary request for SST %d SD %s", slice.sst, slice.sd)
	summary, err := h.svc.SummarizeBySlice(c.Request.Context(), slice.sst, slice.sd, requestedImsis(c))
	if err != nil {
		writeServiceError(c, "SummarizeBySlice", err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetSubscribedDnns godoc
//
// @Description Return the DNNs subscribed on the slice
// @Tags        DNNs
// @Produce     json
// @Param       sst     path     integer  true   "Slice/Service Type"
// @Param       sd      path     string   true   "Slice Differentiator"
// @Param       imsi    query    []string false  "Subscribers to query instead of the default roster" collectionFormat(multi)
// @Success     200  {array}   string  "DNN names"
// @Failure     400  {object}  nil     "Invalid slice"
// @Failure     404  {object}  nil     "Unsupported slice"
// @Failure     500  {object}  nil     "Error retrieving DNNs"
// @Router      /af/v1/slices/{sst}/{sd}/dnns  [get]
func (h *SliceInsightHandler) GetSubscribedDnns(c *gin.Context) {
	slice, err := parseSliceParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	dnns, err := h.svc.SubscribedDnns(c.Request.Context(), slice.sst, slice.sd, requestedImsis(c))
	if err != nil {
		writeServiceError(c, "SubscribedDnns", err)
		return
	}
	c.JSON(http.StatusOK, dnns)
}

// GetDnnSummary godoc
//
// @Description Return the slice summary restricted to one DNN
// @Tags        DNNs
// @Produce     json
// @Param       sst     path     integer  true   "Slice/Service Type"
// @Param       sd      path     string   true   "Slice Differentiator"
// @Param       dnn     path     string   true   "Data Network Name"
// @Param       imsi    query    []string false  "Subscribers to query instead of the default roster" collectionFormat(multi)
// @Success     200  {object}  configmodels.DnnSummary  "DNN summary"
// @Failure     400  {object}  nil                      "Invalid slice"
// @Failure     404  {object}  nil                      "Unsupported slice or unknown DNN"
// @Failure     502  {object}  nil                      "Malformed bitrate in subscriber data"
// @Failure     500  {object}  nil                      "Error summarizing DNN"
// @Router      /af/v1/slices/{sst}/{sd}/dnns/{dnn}/summary  [get]
func (h *SliceInsightHandler) GetDnnSummary(c *gin.Context) {
	slice, err := parseSliceParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	dnn := c.Param("dnn")
	logger.AppLog.Infof("received a GET DNN summary request for %s on SST %d SD %s", dnn, slice.sst, slice.sd)
	summary, err := h.svc.SummarizeByDnn(c.Request.Context(), slice.sst, slice.sd, dnn, requestedImsis(c))
	if err != nil {
		writeServiceError(c, "SummarizeByDnn", err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetPreemptiveUEs godoc
//
// @Description Return, per DNN, the subscribers allowed to preempt other sessions
// @Tags        Preemption
// @Produce     json
// @Param       sst     path     integer  true   "Slice/Service Type"
// @Param       sd      path     string   true   "Slice Differentiator"
// @Param       imsi    query    []string false  "Subscribers to query instead of the default roster" collectionFormat(multi)
// @Success     200  {object}  configmodels.PreemptiveUEs  "Preemption capable subscribers"
// @Failure     400  {object}  nil                         "Invalid slice"
// @Failure     404  {object}  nil                         "Unsupported slice"
// @Failure     500  {object}  nil                         "Error classifying subscribers"
// @Router      /af/v1/slices/{sst}/{sd}/preemptive-ues  [get]
func (h *SliceInsightHandler) GetPreemptiveUEs(c *gin.Context) {
	slice, err := parseSliceParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ues, err := h.svc.PreemptionCapableUEs(c.Request.Context(), slice.sst, slice.sd, requestedImsis(c))
	if err != nil {
		writeServiceError(c, "PreemptionCapableUEs", err)
		return
	}
	c.JSON(http.StatusOK, ues)
}

// GetPreemptableUEs godoc
//
// @Description Return, per DNN, the subscribers whose sessions may be preempted
// @Tags        Preemption
// @Produce     json
// @Param       sst     path     integer  true   "Slice/Service Type"
// @Param       sd      path     string   true   "Slice Differentiator"
// @Param       imsi    query    []string false  "Subscribers to query instead of the default roster" collectionFormat(multi)
// @Success     200  {object}  configmodels.PreemptableUEs  "Preemptable subscribers"
// @Failure     400  {object}  nil                          "Invalid slice"
// @Failure     404  {object}  nil                          "Unsupported slice"
// @Failure     500  {object}  nil                          "Error classifying subscribers"
// @Router      /af/v1/slices/{sst}/{sd}/preemptable-ues  [get]
func (h *SliceInsightHandler) GetPreemptableUEs(c *gin.Context) {
	slice, err := parseSliceParams(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ues, err := h.svc.PreemptionVulnerableUEs(c.Request.Context(), slice.sst, slice.sd, requestedImsis(c))
	if err != nil {
		writeServiceError(c, "PreemptionVulnerableUEs", err)
		return
	}
	c.JSON(http.StatusOK, ues)
}
