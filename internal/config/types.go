// Package config loads the settings of the analyze-excel and tmdlgen
// commands from defaults, an optional YAML file, the environment and flags.
package config

import (
	"github.com/OrryLee/mission-scheduling-system/pkg/tmdl"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const (
	// DefaultWorkbook is the workbook analyzed when no path is given.
	DefaultWorkbook = "/home/ubuntu/upload/formpowrbicop.xlsx"
	// DefaultSiteURL is the SharePoint site the generated partitions read from.
	DefaultSiteURL = "https://armyeitaas.sharepoint-mil.us/teams/2-358ARGrizzlies"
	// DefaultOutput is the file the generated model is written to.
	DefaultOutput = tmdl.DefaultOutputFile
	// DefaultLogLevel is the minimum level written to the log.
	DefaultLogLevel = "info"
)

// InspectorEnvPrefix and GeneratorEnvPrefix prefix the environment
// variables read by each command.
const (
	InspectorEnvPrefix = "ANALYZE_EXCEL_"
	GeneratorEnvPrefix = "TMDLGEN_"
)

var logLevels = []interface{}{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}

// Inspector holds the analyze-excel settings.
type Inspector struct {
	File        string `koanf:"file"`
	PreviewRows int    `koanf:"preview_rows"`
	Samples     int    `koanf:"samples"`
	Mode        string `koanf:"mode"`
	JSON        bool   `koanf:"json"`
	LogLevel    string `koanf:"log_level"`
}

func inspectorDefaults() map[string]interface{} {
	return map[string]interface{}{
		"file":         DefaultWorkbook,
		"preview_rows": 5,
		"samples":      3,
		"mode":         "standard",
		"json":         false,
		"log_level":    DefaultLogLevel,
	}
}

func (c Inspector) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.File, validation.Required),
		validation.Field(&c.PreviewRows, validation.Required, validation.Min(1)),
		validation.Field(&c.Samples, validation.Required, validation.Min(1)),
		validation.Field(&c.Mode, validation.Required, validation.In("light", "standard", "verbose")),
		validation.Field(&c.LogLevel, validation.Required, validation.In(logLevels...)),
	)
}

// Generator holds the tmdlgen settings.
type Generator struct {
	SiteURL string `koanf:"site_url"`
	Output  string `koanf:"output"`
	// Schema is an optional schema file replacing the embedded one.
	Schema   string `koanf:"schema"`
	LogLevel string `koanf:"log_level"`
}

func generatorDefaults() map[string]interface{} {
	return map[string]interface{}{
		"site_url":  DefaultSiteURL,
		"output":    DefaultOutput,
		"schema":    "",
		"log_level": DefaultLogLevel,
	}
}

func (c Generator) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.SiteURL, validation.Required, is.URL),
		validation.Field(&c.Output, validation.Required),
		validation.Field(&c.LogLevel, validation.Required, validation.In(logLevels...)),
	)
}
