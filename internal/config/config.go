package config

import (
	"basic_server/types"
	"net"
	"time"
)

type Config interface {
	BindAddress() string
	Port() string
	Address() string

	Mode() types.ServerMode
	DocumentRoot() string
	DefaultDocument() string

	ReadBufferSize() int
	ReadTimeout() time.Duration
	WriteTimeout() time.Duration
	Workers() int
	CloseHeader() bool

	LogLevel() string
	LogFormat() string

	Warnings() []string
}

func MustLoad() (Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg, err := parse()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *config) BindAddress() string         { return c.bindAddress }
func (c *config) Port() string                { return c.port }
func (c *config) Address() string             { return net.JoinHostPort(c.bindAddress, c.port) }
func (c *config) Mode() types.ServerMode      { return c.mode }
func (c *config) DocumentRoot() string        { return c.documentRoot }
func (c *config) DefaultDocument() string     { return c.defaultDocument }
func (c *config) ReadBufferSize() int         { return c.readBufferSize }
func (c *config) ReadTimeout() time.Duration  { return c.readTimeout }
func (c *config) WriteTimeout() time.Duration { return c.writeTimeout }
func (c *config) Workers() int                { return c.workers }
func (c *config) CloseHeader() bool           { return c.closeHeader }
func (c *config) LogLevel() string            { return c.logLevel }
func (c *config) LogFormat() string           { return c.logFormat }
func (c *config) Warnings() []string          { return c.warnings }
