// SPDX-FileCopyrightText: 2021 Open Networking Foundation <info@opennetworking.org>
// Copyright 2019 free5GC.org
//
// SPDX-License-Identifier: Apache-2.0
//

package configapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/omec-project/sliceinsight/afservice"
)

const apiGroup = "/af/v1"

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
}

type Routes []Route

// AddService registers the slice insight API on the engine.
func AddService(engine *gin.Engine, svc *afservice.Service) *gin.RouterGroup {
	group := engine.Group(apiGroup)
	addRoutes(group, sliceRoutes(NewSliceInsightHandler(svc)))
	return group
}

func addRoutes(group *gin.RouterGroup, routes Routes) {
	for _, route := range routes {
		switch route.Method {
		case http.MethodGet:
			group.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			group.POST(route.Pattern, route.HandlerFunc)
		case http.MethodPut:
			group.PUT(route.Pattern, route.HandlerFunc)
		case http.MethodDelete:
			group.DELETE(route.Pattern, route.HandlerFunc)
		}
	}
}

func sliceRoutes(h *SliceInsightHandler) Routes {
	return Routes{
		{
			"GetSliceData",
			http.MethodGet,
			"/slices/:sst/:sd/data",
			h.GetSliceData,
		},
		{
			"GetSliceSummary",
			http.MethodGet,
			"/slices/:sst/:sd/summary",
			h.GetSliceSummary,
		},
		{
			"GetSubscribedDnns",
			http.MethodGet,
			"/slices/:sst/:sd/dnns",
			h.GetSubscribedDnns,
		},
		{
			"GetDnnSummary",
			http.MethodGet,
			"/slices/:sst/:sd/dnns/:dnn/summary",
			h.GetDnnSummary,
		},
		{
			"GetPreemptiveUEs",
			http.MethodGet,
			"/slices/:sst/:sd/preemptive-ues",
			h.GetPreemptiveUEs,
		},
		{
			"GetPreemptableUEs",
			http.MethodGet,
			"/slices/:sst/:sd/preemptable-ues",
			h.GetPreemptableUEs,
		},
	}
}
