// SPDX-FileCopyrightText: 2021 Open Networking Foundation <info@opennetworking.org>
//
// SPDX-License-Identifier: Apache-2.0
//

/*
 * SliceInsight Configuration Factory
 */

package factory

import (
	"fmt"
	"time"
)

const (
	SourceUdr     = "udr"
	SourceMongoDB = "mongodb"

	defaultWebServerPort = 5001
	defaultMetricsPort   = 8080
	defaultGrpcPort      = 9876
	defaultUdrTimeout    = 5 * time.Second
)

type Config struct {
	Info          *Info          `yaml:"info"`
	Configuration *Configuration `yaml:"configuration"`
	Logger        *Logger        `yaml:"logger"`
}

type Info struct {
	Version     string `yaml:"version,omitempty"`
	Description string `yaml:"description,omitempty"`
}

type Configuration struct {
	WebServer        *WebServer `yaml:"webServer,omitempty"`
	MetricsPort      int        `yaml:"metricsPort,omitempty"`
	GrpcPort         int        `yaml:"grpcPort,omitempty"`
	SubscriberSource string     `yaml:"subscriberSource,omitempty"`
	Udr              *Udr       `yaml:"udr,omitempty"`
	Mongodb          *Mongodb   `yaml:"mongodb,omitempty"`
	DefaultImsis     []string   `yaml:"defaultImsis,omitempty"`
}

type WebServer struct {
	Port int  `yaml:"port,omitempty"`
	TLS  *TLS `yaml:"tls,omitempty"`
}

type TLS struct {
	PEM string `yaml:"pem,omitempty"`
	Key string `yaml:"key,omitempty"`
}

type Udr struct {
	Url     string        `yaml:"url,omitempty"`
	PlmnId  string        `yaml:"plmnId,omitempty"`
	Timeout time.Duration `yaml:"timeout,omitempty"`
}

type Mongodb struct {
	Name string `yaml:"name,omitempty"`
	Url  string `yaml:"url,omitempty"`
}

type Logger struct {
	SliceInsight   *LogSetting `yaml:"sliceInsight,omitempty"`
	MongoDBLibrary *LogSetting `yaml:"mongoDBLibrary,omitempty"`
}

type LogSetting struct {
	DebugLevel string `yaml:"debugLevel,omitempty"`
}

// Validate fills in defaults and checks that the selected subscriber source
// has the settings it needs.
func (c *Config) Validate() error {
	if c.Configuration == nil {
		return fmt.Errorf("configuration section is missing")
	}
	cfg := c.Configuration
	if cfg.WebServer == nil {
		cfg.WebServer = &WebServer{}
	}
	if cfg.WebServer.Port == 0 {
		cfg.WebServer.Port = defaultWebServerPort
	}
	if cfg.MetricsPort == 0 {
		cfg.MetricsPort = defaultMetricsPort
	}
	if cfg.GrpcPort == 0 {
		cfg.GrpcPort = defaultGrpcPort
	}
	if cfg.SubscriberSource == "" {
		cfg.SubscriberSource = SourceUdr
	}

	switch cfg.SubscriberSource {
	case SourceUdr:
		if cfg.Udr == nil || cfg.Udr.Url == "" {
			return fmt.Errorf("udr url is required when subscriberSource is %q", SourceUdr)
		}
		if cfg.Udr.PlmnId == "" {
			return fmt.Errorf("udr plmnId is required when subscriberSource is %q", SourceUdr)
		}
		if cfg.Udr.Timeout == 0 {
			cfg.Udr.Timeout = defaultUdrTimeout
		}
	case SourceMongoDB:
		if cfg.Mongodb == nil || cfg.Mongodb.Url == "" || cfg.Mongodb.Name == "" {
			return fmt.Errorf("mongodb url and name are required when subscriberSource is %q", SourceMongoDB)
		}
	default:
		return fmt.Errorf("unknown subscriberSource %q", cfg.SubscriberSource)
	}
	return nil
}
