package gantry

import (
	"embed"
	"strings"
	"time"
)

type HttpMethod string

const (
	HttpPost HttpMethod = "POST"
	HttpGet  HttpMethod = "GET"
)

const (
	HTTP_TIMEOUT             = 10
	HTTP_TIMEOUT_IN_DURATION = time.Duration(HTTP_TIMEOUT) * time.Second

	DefaultUserAgent = "Gantry/"
)

//go:embed VERSION
var F embed.FS

//go:embed sql/*.sql
var MigrationFiles embed.FS

func readVersion(fs embed.FS) ([]byte, error) {
	data, err := fs.ReadFile("VERSION")
	if err != nil {
		return nil, err
	}

	return data, nil
}

func GetVersion() string {
	v := "0.1.0"

	f, err := readVersion(F)
	if err != nil {
		return v
	}

	v = strings.TrimSpace(string(f))
	return v
}

func UserAgent() string {
	return DefaultUserAgent + GetVersion()
}
