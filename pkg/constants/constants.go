package constants

const (
	ConfigName   = "config"
	ConfigFormat = "yaml"
	EnvPrefix    = "DATALUX"

	ServiceName    = "DataLux Consulting API"
	ServiceVersion = "1.0.0"
	DocsPath       = "/docs"
)
