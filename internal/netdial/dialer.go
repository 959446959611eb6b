// Package netdial builds the net.Conn a ClientHelloConfig's handshake rides
// over: a direct connection or a proxy tunnel (HTTP CONNECT, SOCKS5),
// selected by ProxyConfig. This sits below the Customizer Pipeline — the
// pipeline never sees a net.Conn, only the wire bytes it customizes.
package netdial

import (
	"bufio"
	"context"
	"encoding/base64"
	"fmt"
	"net"
	"net/http"
	"net/url"

	"golang.org/x/net/proxy"
)

// ProxyAuth carries basic/SOCKS5 credentials for a proxy.
type ProxyAuth struct {
	Username string
	Password string
}

// ProxyConfig selects how Dialer reaches a target. Type is one of "",
// "none", "http", or "socks5"; "" and "none" both mean direct.
type ProxyConfig struct {
	Type string
	Host string
	Port int
	Auth *ProxyAuth
}

// Dialer is the minimal contract utlsbridge.Dial needs from a connection
// source, satisfied by both a direct net.Dialer and the proxy wrappers
// below.
type Dialer interface {
	DialContext(ctx context.Context, network, addr string) (net.Conn, error)
}

type nilDialer struct{}

// NilDialer returns a Dialer that connects directly, bypassing any proxy.
func NilDialer() Dialer { return &nilDialer{} }

func (d *nilDialer) DialContext(ctx context.Context, network, addr string) (net.Conn, error) {
	var dialer net.Dialer
	return dialer.DialContext(ctx, network, addr)
}

type httpProxyDialer struct {
	proxyAddr string
	auth      *ProxyAuth
}

func (d *httpProxyDialer) DialContext(ctx context.Context, network, addr string) (net.Conn, error) {
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", d.proxyAddr)
	if err != nil {
		return nil, fmt.Errorf("netdial: connect to http proxy: %w", err)
	}

	connectReq := &http.Request{
		Method: "CONNECT",
		URL:    &url.URL{Opaque: addr},
		Host:   addr,
		Header: make(http.Header),
	}
	if d.auth != nil && d.auth.Username != "" {
		creds := base64.StdEncoding.EncodeToString([]byte(d.auth.Username + ":" + d.auth.Password))
		connectReq.Header.Set("Proxy-Authorization", "Basic "+creds)
	}

	if err := connectReq.Write(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("netdial: write CONNECT request: %w", err)
	}

	br := bufio.NewReader(conn)
	resp, err := http.ReadResponse(br, connectReq)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("netdial: read CONNECT response: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		conn.Close()
		return nil, fmt.Errorf("netdial: CONNECT to %s via %s failed: %s", addr, d.proxyAddr, resp.Status)
	}
	return conn, nil
}

type socks5Dialer struct {
	dialer proxy.Dialer
}

func (d *socks5Dialer) DialContext(ctx context.Context, network, addr string) (net.Conn, error) {
	if cd, ok := d.dialer.(proxy.ContextDialer); ok {
		return cd.DialContext(ctx, network, addr)
	}
	return d.dialer.Dial(network, addr)
}

// NewDialer builds a Dialer from cfg. A nil cfg, or one with Type "" /
// "none", yields a direct dialer.
func NewDialer(cfg *ProxyConfig) (Dialer, error) {
	if cfg == nil || cfg.Type == "" || cfg.Type == "none" {
		return NilDialer(), nil
	}

	proxyAddr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	switch cfg.Type {
	case "http":
		return &httpProxyDialer{proxyAddr: proxyAddr, auth: cfg.Auth}, nil

	case "socks5":
		var auth *proxy.Auth
		if cfg.Auth != nil && cfg.Auth.Username != "" {
			auth = &proxy.Auth{User: cfg.Auth.Username, Password: cfg.Auth.Password}
		}
		d, err := proxy.SOCKS5("tcp", proxyAddr, auth, proxy.Direct)
		if err != nil {
			return nil, fmt.Errorf("netdial: build SOCKS5 dialer: %w", err)
		}
		return &socks5Dialer{dialer: d}, nil

	default:
		return nil, fmt.Errorf("netdial: unsupported proxy type %q", cfg.Type)
	}
}
