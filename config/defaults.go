// SPDX-License-Identifier: MIT

package config

const (
	defaultLambda     = 10.0
	defaultSpeed      = 1
	defaultWorkers    = 0
	defaultLogLevel   = "info"
	defaultLogFormat  = "auto"
	defaultUserConfig = "~/.config/isoscore/config.toml"
	projectConfigName = "isoscore.toml"
)
