package config

import (
	"time"

	"github.com/urfave/cli/v3"
)

type Config struct {
	App
	Converter
	PostgreSQL
	HTTP
}

type App struct {
	MaxUploadSize         int64
	DownloadTTL           time.Duration
	DownloadSweepInterval time.Duration
}

type Converter struct {
	APIURL string
}

type PostgreSQL struct {
	Host     string
	Port     string
	Username string
	Password string
	DBName   string
}

// Enabled reports whether the conversion journal has credentials to connect with.
func (p PostgreSQL) Enabled() bool {
	return p.Username != ""
}

type HTTP struct {
	Host         string
	Port         string
	IdleTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

func Load(cmd *cli.Command) *Config {
	return &Config{
		App: App{
			MaxUploadSize:         cmd.Int64("max-upload-size"),
			DownloadTTL:           cmd.Duration("download-ttl"),
			DownloadSweepInterval: cmd.Duration("download-sweep-interval"),
		},
		Converter: Converter{
			APIURL: cmd.String("api-url"),
		},
		PostgreSQL: PostgreSQL{
			Host:     cmd.String("pg-host"),
			Port:     cmd.String("pg-port"),
			Username: cmd.String("pg-username"),
			Password: cmd.String("pg-password"),
			DBName:   cmd.String("pg-dbname"),
		},
		HTTP: HTTP{
			Host:         cmd.String("http-host"),
			Port:         cmd.String("http-port"),
			IdleTimeout:  cmd.Duration("http-idle-timeout"),
			ReadTimeout:  cmd.Duration("http-read-timeout"),
			WriteTimeout: cmd.Duration("http-write-timeout"),
		},
	}
}
