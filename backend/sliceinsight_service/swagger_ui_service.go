// SPDX-License-Identifier: Apache-2.0
// Copyright 2024 Canonical Ltd.

//go:build ui

package sliceinsight_service

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/omec-project/sliceinsight/backend/logger"
	"github.com/omec-project/sliceinsight/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title		SliceInsight API Documentation
//	@version	1.0

//	@contact.name	OMEC Project - SliceInsight
//	@contact.url	https://github.com/omec-project/sliceinsight

//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html

// @host		localhost:5001
// @BasePath	/
func AddSwaggerUiService(engine *gin.Engine) {
	logger.InitLog.Infoln("Adding Swagger UI service")
	if host := os.Getenv("SWAGGER_HOST"); host != "" {
		docs.SwaggerInfo.Host = host + ":5001"
		logger.InitLog.Infoln(docs.SwaggerInfo.Host)
	}
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
