// Package nets builds the HTTP client shared by the task store and the
// interpreter backend.
package nets

import (
	"context"
	"net"
	"net/http"
	"net/url"
	"os"
	"time"

	"golang.org/x/net/proxy"
)

// Dialer is satisfied by *net.Dialer and by proxy dialers that support contexts
type Dialer interface {
	Dial(network, addr string) (net.Conn, error)
	DialContext(ctx context.Context, network, addr string) (net.Conn, error)
}

// ProxyAddr picks the proxy address: the configured value first, then the
// usual environment variables.
func ProxyAddr(configured string) string {
	for _, v := range []string{
		configured,
		os.Getenv("ALL_PROXY"),
		os.Getenv("all_proxy"),
		os.Getenv("SOCKS_PROXY"),
		os.Getenv("socks_proxy"),
	} {
		if v != "" {
			return v
		}
	}
	return ""
}

// NewDialer returns a direct dialer, or one tunnelling through proxyAddr when
// it is a SOCKS address. socks:// is accepted as an alias for socks5://.
// HTTP proxies are handled by the transport, so they get the direct dialer.
func NewDialer(proxyAddr string) (Dialer, error) {
	direct := &net.Dialer{Timeout: 30 * time.Second}
	if proxyAddr == "" {
		return direct, nil
	}

	u, err := parseProxy(proxyAddr)
	if err != nil {
		return nil, err
	}
	if isHTTPProxy(u) {
		return direct, nil
	}

	proxyDialer, err := proxy.FromURL(u, direct)
	if err != nil {
		return nil, err
	}
	if d, ok := proxyDialer.(Dialer); ok {
		return d, nil
	}
	return contextDialer{proxyDialer}, nil
}

func parseProxy(proxyAddr string) (*url.URL, error) {
	u, err := url.Parse(proxyAddr)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "socks" {
		u.Scheme = "socks5"
	}
	return u, nil
}

func isHTTPProxy(u *url.URL) bool {
	return u.Scheme == "http" || u.Scheme == "https"
}

// contextDialer adapts a proxy.Dialer without DialContext
type contextDialer struct {
	proxy.Dialer
}

func (d contextDialer) DialContext(ctx context.Context, network, addr string) (net.Conn, error) {
	return d.Dial(network, addr)
}

// NewHTTPClient builds a client with the given timeout. An http(s) proxyAddr
// is set as the transport proxy, a SOCKS one replaces the dialer, and an
// empty one leaves HTTP_PROXY/HTTPS_PROXY/NO_PROXY in charge.
func NewHTTPClient(proxyAddr string, timeout time.Duration) (*http.Client, error) {
	dialer, err := NewDialer(proxyAddr)
	if err != nil {
		return nil, err
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = dialer.DialContext
	transport.Proxy = http.ProxyFromEnvironment

	if proxyAddr != "" {
		u, err := parseProxy(proxyAddr)
		if err != nil {
			return nil, err
		}
		if isHTTPProxy(u) {
			transport.Proxy = http.ProxyURL(u)
		} else {
			transport.Proxy = nil
		}
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}, nil
}
