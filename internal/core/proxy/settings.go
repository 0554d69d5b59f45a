package proxy

import (
	"fmt"
	"net/url"
)

// Settings contains the outbound proxy configuration used by the page fetchers.
type Settings struct {
	Enabled  bool
	Hostname string
	Port     int
	Username string
	Password string
}

// HasProxy returns true if proxy is enabled and configured.
func (p Settings) HasProxy() bool {
	return p.Enabled && p.Hostname != "" && p.Port > 0
}

// HasCredentials returns true if the proxy requires basic authentication.
func (p Settings) HasCredentials() bool {
	return p.HasProxy() && p.Username != "" && p.Password != ""
}

// HostPort returns the proxy URL without credentials (e.g., "http://proxy.example.com:3128").
func (p Settings) HostPort() string {
	if !p.HasProxy() {
		return ""
	}
	return fmt.Sprintf("http://%s:%d", p.Hostname, p.Port)
}

// URL returns the proxy URL including credentials, or nil when no proxy is configured.
func (p Settings) URL() *url.URL {
	if !p.HasProxy() {
		return nil
	}
	u := &url.URL{
		Scheme: "http",
		Host:   fmt.Sprintf("%s:%d", p.Hostname, p.Port),
	}
	if p.Username != "" && p.Password != "" {
		u.User = url.UserPassword(p.Username, p.Password)
	}
	return u
}
