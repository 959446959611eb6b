// Command parrotdial dials a host with a parrotls-customized ClientHello
// and performs a minimal HTTP/1.1 GET over the resulting connection,
// printing the negotiated protocol and response status.
//
// Grounded on the teacher's cmd/tlstest, generalized from a hardcoded
// JA3-string/preset CLI into a driver over the parrotls facade.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	parrotls "github.com/parrotls/parrotls"
	"github.com/parrotls/parrotls/internal/model"
	"github.com/parrotls/parrotls/internal/template"
	"github.com/parrotls/parrotls/utlsbridge"
)

func main() {
	tpl := flag.String("template", template.NameChrome, "preset name: chrome-like, firefox-like, safari-like, edge-like")
	level := flag.String("level", "medium", "randomization level: none, light, medium, high")
	addr := flag.String("addr", "example.com:443", "host:port to dial")
	path := flag.String("path", "/", "HTTP path to GET after the handshake")
	timeout := flag.Duration("timeout", 15*time.Second, "overall deadline for dial + request")
	flag.Parse()

	lvl, err := parseLevel(*level)
	if err != nil {
		log.Fatal(err)
	}

	c, err := parrotls.New(parrotls.Config{
		Template:           *tpl,
		RandomizationLevel: lvl,
		EnableCache:        true,
		MaxCacheSize:       64,
	})
	if err != nil {
		log.Fatalf("parrotls.New: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	uConn, err := utlsbridge.Dial(ctx, "tcp", *addr, c, &parrotls.Config{Template: *tpl})
	if err != nil {
		log.Fatalf("dial: %v", err)
	}
	defer uConn.Close()

	fmt.Println("handshake complete, negotiated protocol:", uConn.ConnectionState().NegotiatedProtocol)

	host, _, _ := splitHost(*addr)
	req, err := http.NewRequest(http.MethodGet, "https://"+host+*path, nil)
	if err != nil {
		log.Fatalf("build request: %v", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	if err := req.Write(uConn); err != nil {
		log.Fatalf("write request: %v", err)
	}

	resp, err := http.ReadResponse(bufio.NewReader(uConn), req)
	if err != nil {
		log.Fatalf("read response: %v", err)
	}
	defer resp.Body.Close()

	fmt.Printf("status: %d\n", resp.StatusCode)
	resp.Write(os.Stdout)
}

func parseLevel(s string) (model.RandomizationLevel, error) {
	switch s {
	case "none":
		return model.LevelNone, nil
	case "light":
		return model.LevelLight, nil
	case "medium":
		return model.LevelMedium, nil
	case "high":
		return model.LevelHigh, nil
	default:
		return 0, fmt.Errorf("unknown randomization level %q", s)
	}
}

func splitHost(addr string) (host, port string, err error) {
	for i := len(addr) - 1; i >= 0; i-- {
		if addr[i] == ':' {
			return addr[:i], addr[i+1:], nil
		}
	}
	return addr, "443", nil
}
