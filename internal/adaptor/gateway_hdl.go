package adaptor

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"sort"
	"strings"

	"hotel-reservation/pkg/utils"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type upstream struct {
	prefix string
	proxy  *httputil.ReverseProxy
}

// GatewayHandler forwards authenticated API calls to the owning service by
// path prefix. Headers, including Authorization, are passed through.
type GatewayHandler struct {
	upstreams []upstream
	log       *zap.Logger
}

// NewGatewayHandler builds one reverse proxy per route; routes maps a path
// prefix such as /api/v1/hotels to the base URL of a service.
func NewGatewayHandler(routes map[string]string, log *zap.Logger) (*GatewayHandler, error) {
	h := &GatewayHandler{log: log.With(zap.String("handler", "gateway"))}

	for prefix, rawURL := range routes {
		target, err := url.Parse(rawURL)
		if err != nil || target.Scheme == "" || target.Host == "" {
			return nil, fmt.Errorf("invalid upstream url %q for %s", rawURL, prefix)
		}

		h.upstreams = append(h.upstreams, upstream{
			prefix: strings.TrimRight(prefix, "/"),
			proxy:  h.newProxy(prefix, target),
		})
	}

	// longest prefix wins
	sort.Slice(h.upstreams, func(i, j int) bool {
		return len(h.upstreams[i].prefix) > len(h.upstreams[j].prefix)
	})

	return h, nil
}

func (h *GatewayHandler) newProxy(prefix string, target *url.URL) *httputil.ReverseProxy {
	return &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.SetXForwarded()
			if reqID := chimw.GetReqID(pr.In.Context()); reqID != "" {
				pr.Out.Header.Set(chimw.RequestIDHeader, reqID)
			}
		},
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			h.log.Error("Upstream unavailable",
				zap.Error(err),
				zap.String("prefix", prefix),
				zap.String("upstream", target.Host),
				zap.String("path", r.URL.Path))
			utils.ResponseBadGateway(w, "Upstream service unavailable")
		},
	}
}

func (h *GatewayHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	for _, u := range h.upstreams {
		if r.URL.Path == u.prefix || strings.HasPrefix(r.URL.Path, u.prefix+"/") {
			u.proxy.ServeHTTP(w, r)
			return
		}
	}

	utils.ResponseNotFound(w, "No route for "+r.URL.Path)
}

// Prefixes lists the routed prefixes, longest first.
func (h *GatewayHandler) Prefixes() []string {
	out := make([]string, len(h.upstreams))
	for i, u := range h.upstreams {
		out[i] = u.prefix
	}
	return out
}
