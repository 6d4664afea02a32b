// Package navigation builds safe "back" links between dashboard pages.
package navigation

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/urlutil"
)

// BackURLOptions configures SafeBackURL.
type BackURLOptions struct {
	// AllowedPrefix is the required prefix of a "return" URL. Empty allows
	// any local URL.
	AllowedPrefix string

	// ExcludedSubpaths reject return URLs that would land on an action
	// endpoint, such as a calculator POST target.
	ExcludedSubpaths []string

	// Fallback is used when no acceptable return URL is present.
	Fallback string

	// PreserveQuery lists request parameters copied onto the fallback so the
	// sidebar selection survives the round trip.
	PreserveQuery []string
}

// SafeBackURL reads "return" from the query string or form and validates
// it against opts. Open redirects are rejected by urlutil.SafeReturn.
func SafeBackURL(r *http.Request, opts BackURLOptions) string {
	ret := urlutil.SafeReturn(query.Get(r, "return"), "", "")
	if ret == "" {
		ret = urlutil.SafeReturn(strings.TrimSpace(r.FormValue("return")), "", "")
	}

	if ret != "" && acceptable(ret, opts) {
		return ret
	}
	return withPreserved(r, opts.Fallback, opts.PreserveQuery)
}

func acceptable(ret string, opts BackURLOptions) bool {
	if opts.AllowedPrefix != "" && !strings.HasPrefix(ret, opts.AllowedPrefix) {
		return false
	}
	for _, excluded := range opts.ExcludedSubpaths {
		if strings.Contains(ret, excluded) {
			return false
		}
	}
	return true
}

func withPreserved(r *http.Request, fallback string, params []string) string {
	vals := url.Values{}
	for _, p := range params {
		v := query.Get(r, p)
		if v == "" {
			v = strings.TrimSpace(r.FormValue(p))
		}
		if v != "" {
			vals.Set(p, v)
		}
	}
	if len(vals) == 0 {
		return fallback
	}
	sep := "?"
	if strings.Contains(fallback, "?") {
		sep = "&"
	}
	return fallback + sep + vals.Encode()
}

// DashboardBackURL sends the About page back to a dashboard tab, keeping
// the property and horizon selection.
var DashboardBackURL = BackURLOptions{
	AllowedPrefix:    "/dashboard",
	ExcludedSubpaths: []string{"/calculator"},
	Fallback:         "/dashboard",
	PreserveQuery:    []string{"property", "horizon"},
}
