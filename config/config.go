// Package config loads the shared moera-tools configuration. Both moname
// and moctl read the same file, by default ~/.moerc.yaml.
package config

import (
	"net/url"
	"strings"
)

// HostConfig is the credential set of one node host. The key in
// Config.Hosts is a hostname suffix: "moera.blog" matches every node under
// that domain.
type HostConfig struct {
	Token  string `mapstructure:"token"`
	Secret string `mapstructure:"secret"`
}

// Config is the contents of the configuration file. Flags and MOERA_*
// environment variables override individual values.
type Config struct {
	NamingServer string                `mapstructure:"naming-server"`
	Host         string                `mapstructure:"host"`
	Keys         string                `mapstructure:"keys"`
	Hosts        map[string]HostConfig `mapstructure:"hosts"`
}

// Hostname extracts the host part of a node URL, without the port.
func Hostname(nodeURL string) string {
	u, err := url.Parse(nodeURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

func (c *Config) hostParam(nodeURL string, param func(HostConfig) string) string {
	hostname := Hostname(nodeURL)
	if hostname == "" {
		return ""
	}
	// the most specific suffix wins
	best := ""
	value := ""
	for suffix, hostCfg := range c.Hosts {
		if !strings.HasSuffix(hostname, suffix) || len(suffix) < len(best) {
			continue
		}
		if v := param(hostCfg); v != "" {
			best = suffix
			value = v
		}
	}
	return value
}

// TokenFor returns the admin token configured for the node URL's host, or
// empty.
func (c *Config) TokenFor(nodeURL string) string {
	return c.hostParam(nodeURL, func(h HostConfig) string { return h.Token })
}

// SecretFor returns the root admin secret configured for the node URL's
// host, or empty.
func (c *Config) SecretFor(nodeURL string) string {
	return c.hostParam(nodeURL, func(h HostConfig) string { return h.Secret })
}
