package config

import (
	"time"
)

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"8080"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"json"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[accounts]"`
}

type DB struct {
	Url string `envconfig:"URL"`
}

// RateLimit bounds admitted calls per rolling window. The defaults gate the
// java-version read to one call per five seconds.
type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"1"`
	Window      time.Duration `envconfig:"WINDOW" default:"5s"`
}

// Retry configures the bounded retry applied to the build-info read.
type Retry struct {
	MaxAttempts int           `envconfig:"MAX_ATTEMPTS" default:"3"`
	Delay       time.Duration `envconfig:"DELAY" default:"500ms"`
}

type Build struct {
	Version string `envconfig:"VERSION" default:"3.0"`
}

// Contact holds the support details served by the contact-info endpoint.
type Contact struct {
	Message       string   `envconfig:"MESSAGE" default:"Welcome to Novabank accounts related docs"`
	Name          string   `envconfig:"NAME" default:"Accounts Dev Team"`
	Email         string   `envconfig:"EMAIL" default:"accounts@novabank.example"`
	OnCallSupport []string `envconfig:"ON_CALL_SUPPORT" default:"(555) 555-1234,(555) 523-1345"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	DB        *DB        `envconfig:"DATABASE"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
	Retry     *Retry     `envconfig:"RETRY"`
	Build     *Build     `envconfig:"BUILD"`
	Contact   *Contact   `envconfig:"CONTACT"`
}
