// Package images resolves illustrative image and logo URLs for generated
// content. Lookups walk a chain of free sources and always produce a usable
// URL; a placeholder closes the chain so callers never handle an error.
package images

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// Image lookup kinds, matching the roles content fields play.
const (
	KindCategory = "category"
	KindPerson   = "person"
	KindIcon     = "icon"
	KindGeneral  = "general"
)

// Finder resolves an image URL for a query. Implementations never fail: when
// no source yields a usable image they return a placeholder URL.
type Finder interface {
	Find(ctx context.Context, query, kind string) string
	DepartmentLogo(ctx context.Context, name, code string) string
}

// FinderOptions configures the HTTP-backed finder. The URL overrides exist
// for tests pointing at local servers.
type FinderOptions struct {
	HTTPClient    *http.Client
	Logger        *logrus.Logger
	BritannicaURL string
	UnsplashURL   string
}

type httpFinder struct {
	client        *http.Client
	logger        *logrus.Logger
	britannicaURL string
	unsplashURL   string
}

const (
	britannicaSearchURL = "https://www.britannica.com/search?query="
	britannicaCDNPrefix = "https://cdn.britannica.com/"
	unsplashSourceURL   = "https://source.unsplash.com/800x600/?"

	lookupTimeout = 8 * time.Second
	probeTimeout  = 5 * time.Second
)

var unsplashCategories = map[string]string{
	"technology": "technology",
	"nature":     "nature",
	"science":    "technology",
	"business":   "business",
	"education":  "education",
	KindGeneral:  "abstract",
}

type departmentIcon struct {
	code string
	term string
}

// departmentIconTerms maps department codes to icon search terms. Order
// matters: the first match wins, keeping lookups deterministic.
var departmentIconTerms = []departmentIcon{
	{"IT", "technology computer server"},
	{"HR", "human resources people team"},
	{"FINANCE", "finance money accounting calculator"},
	{"MARKETING", "marketing advertising megaphone"},
	{"SALES", "sales business handshake"},
	{"OPERATIONS", "operations management gear"},
	{"LEGAL", "legal law justice scales"},
	{"ADMIN", "administration office building"},
	{"RESEARCH", "research science laboratory microscope"},
	{"DEVELOPMENT", "development engineering tools"},
	{"SUPPORT", "customer support service headset"},
	{"SECURITY", "security shield protection lock"},
}

// NewHTTPFinder constructs a Finder that queries Britannica and Unsplash
// before falling back to a placeholder.
func NewHTTPFinder(opts FinderOptions) Finder {
	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: lookupTimeout}
	}

	britannicaURL := opts.BritannicaURL
	if britannicaURL == "" {
		britannicaURL = britannicaSearchURL
	}

	unsplashURL := opts.UnsplashURL
	if unsplashURL == "" {
		unsplashURL = unsplashSourceURL
	}

	return &httpFinder{
		client:        client,
		logger:        opts.Logger,
		britannicaURL: britannicaURL,
		unsplashURL:   unsplashURL,
	}
}

func (f *httpFinder) Find(ctx context.Context, query, kind string) string {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return Placeholder("image")
	}

	if kind == KindCategory || kind == KindGeneral {
		if found := f.searchBritannica(ctx, trimmed); found != "" {
			return found
		}
	}

	if found := f.probeUnsplash(ctx, trimmed, kind); found != "" {
		return found
	}

	return Placeholder(trimmed)
}

func (f *httpFinder) DepartmentLogo(ctx context.Context, name, code string) string {
	term := iconTermForDepartment(name, code)

	if found := f.Find(ctx, term, KindIcon); found != "" && !isPlaceholder(found) {
		return found
	}

	return LogoPlaceholder(code)
}

func (f *httpFinder) searchBritannica(ctx context.Context, query string) string {
	searchURL := f.britannicaURL + url.QueryEscape(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		f.logDebug(query, err, "building britannica request")
		return ""
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; maqala/1.0)")

	resp, err := f.client.Do(req)
	if err != nil {
		f.logDebug(query, err, "britannica search failed")
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	found, err := extractBritannicaImage(resp.Body)
	if err != nil {
		f.logDebug(query, err, "parsing britannica response")
		return ""
	}

	return found
}

func (f *httpFinder) probeUnsplash(ctx context.Context, query, kind string) string {
	category, ok := unsplashCategories[kind]
	if !ok {
		category = unsplashCategories[KindGeneral]
	}

	probeURL := f.unsplashURL + category + "," + url.QueryEscape(query)

	probeCtx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(probeCtx, http.MethodHead, probeURL, nil)
	if err != nil {
		f.logDebug(query, err, "building unsplash request")
		return ""
	}

	resp, err := f.client.Do(req)
	if err != nil {
		f.logDebug(query, err, "unsplash probe failed")
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ""
	}

	return probeURL
}

func (f *httpFinder) logDebug(query string, err error, message string) {
	if f.logger == nil || err == nil {
		return
	}

	f.logger.WithField("error", err.Error()).WithField("query", query).Debug(message)
}

// Placeholder returns a deterministic placeholder image URL for the query.
func Placeholder(query string) string {
	return "https://placehold.co/400x300/2563eb/ffffff?text=" + url.QueryEscape(truncateRunes(query, 20))
}

// LogoPlaceholder returns a deterministic placeholder logo URL for a
// department code.
func LogoPlaceholder(code string) string {
	label := truncateRunes(strings.TrimSpace(code), 3)
	if label == "" {
		label = "DEP"
	}
	return "https://placehold.co/200x200/3b82f6/ffffff?text=" + url.QueryEscape(label)
}

func isPlaceholder(imageURL string) bool {
	return strings.HasPrefix(imageURL, "https://placehold.co/")
}

func iconTermForDepartment(name, code string) string {
	normalizedCode := strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(code), " ", "_"))
	loweredName := strings.ToLower(name)

	for _, icon := range departmentIconTerms {
		if strings.Contains(normalizedCode, icon.code) || strings.Contains(loweredName, strings.ToLower(icon.code)) {
			return icon.term
		}
	}

	return fmt.Sprintf("department office building corporate %s", strings.TrimSpace(name))
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
