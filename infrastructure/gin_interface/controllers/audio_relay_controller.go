package controllers

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/irademos/ai-news-song/application/ports/outbound"
)

// DefaultAudioRelayAllowlist is the fixed set of audio CDN hosts the
// relay will proxy from. A hostname passes when it equals an entry or is
// a subdomain of one.
var DefaultAudioRelayAllowlist = []string{
	"cdn1.suno.ai",
	"cdn2.suno.ai",
	"audiopipe.suno.ai",
	"suno.ai",
}

const relayCacheControl = "public, max-age=3600"

type AudioRelayController interface {
	StreamAudio(c *gin.Context)
	RegisterRoutes(g *gin.Engine)
}

type audioRelayController struct {
	logger    outbound.LoggerPort
	client    *http.Client
	allowlist []string
}

func NewAudioRelayController(logger outbound.LoggerPort, client *http.Client, allowlist []string) AudioRelayController {
	if client == nil {
		client = &http.Client{}
	}
	return &audioRelayController{
		logger:    logger,
		client:    client,
		allowlist: allowlist,
	}
}

// StreamAudio validates the src URL fully before any outbound request,
// then streams the upstream body through without buffering it.
func (a *audioRelayController) StreamAudio(c *gin.Context) {
	src := c.Query("src")
	if src == "" {
		abortWithError(c, http.StatusBadRequest, "missing src parameter", nil)
		return
	}

	parsed, err := url.Parse(src)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid src URL", err)
		return
	}
	if parsed.Scheme != "https" {
		abortWithError(c, http.StatusBadRequest, "src must be an absolute https URL", nil)
		return
	}
	if !hostAllowed(parsed.Hostname(), a.allowlist) {
		abortWithError(c, http.StatusForbidden, "src host not allowed", nil)
		return
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, parsed.String(), nil)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "failed to build upstream request", err)
		return
	}

	res, err := a.client.Do(req)
	if err != nil {
		a.logger.ErrorWithFields(err, "Audio relay upstream request failed", map[string]interface{}{
			"src": parsed.String(),
		})
		abortWithError(c, http.StatusBadGateway, "upstream request failed", err)
		return
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		abortWithError(c, http.StatusBadGateway, "upstream returned an error",
			fmt.Errorf("upstream status %d", res.StatusCode))
		return
	}

	contentType := res.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "audio/mpeg"
	}

	c.Header("Cache-Control", relayCacheControl)
	c.DataFromReader(http.StatusOK, res.ContentLength, contentType, res.Body, nil)
}

func (a *audioRelayController) RegisterRoutes(g *gin.Engine) {
	g.GET("/audio-proxy", a.StreamAudio)
}

func hostAllowed(hostname string, allowlist []string) bool {
	hostname = strings.ToLower(hostname)
	for _, allowed := range allowlist {
		if hostname == allowed || strings.HasSuffix(hostname, "."+allowed) {
			return true
		}
	}
	return false
}
