package mcpserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"
)

const maxRedirects = 10

// resolvePublicAddrs resolves host and rejects any address that is private,
// loopback, link-local, or unspecified. Both the initial dial and every
// redirect hop go through this check, so a DNS name that later resolves to
// an internal address cannot be used to reach it.
func resolvePublicAddrs(ctx context.Context, host string) ([]net.IPAddr, error) {
	ips, err := net.DefaultResolver.LookupIPAddr(ctx, host)
	if err != nil {
		return nil, err
	}
	if len(ips) == 0 {
		return nil, fmt.Errorf("no IP addresses found for host: %s", host)
	}
	for _, addr := range ips {
		ip := addr.IP
		if ip.IsPrivate() || ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsUnspecified() {
			return nil, fmt.Errorf("blocked request to private/loopback IP: %s (%s)", host, ip)
		}
	}
	return ips, nil
}

// newSafeHTTPClient returns an HTTP client that refuses connections to
// private, loopback, and link-local addresses. The MCP server fetches
// service documents from URLs supplied by AI agents, so without this an
// agent could point a tool at internal infrastructure.
func newSafeHTTPClient() *http.Client {
	dialer := &net.Dialer{Timeout: 10 * time.Second}

	return &http.Client{
		Timeout: 30 * time.Second,
		Transport: &http.Transport{
			DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				host, port, err := net.SplitHostPort(addr)
				if err != nil {
					return nil, err
				}
				ips, err := resolvePublicAddrs(ctx, host)
				if err != nil {
					return nil, err
				}
				return dialer.DialContext(ctx, network, net.JoinHostPort(ips[0].IP.String(), port))
			},
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			_, err := resolvePublicAddrs(req.Context(), req.URL.Hostname())
			return err
		},
	}
}
