// Package selection remembers the dashboard widget state (selected
// property, tab and time horizon) for one browser.
//
// Values come from the request first, then from a signed cookie written on
// the previous visit, then from configured defaults. Nothing is stored
// server-side.
package selection

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/dalemusser/propertypulse/internal/app/store/sampledata"
	"github.com/dalemusser/propertypulse/internal/app/system/inputval"
	"github.com/dalemusser/propertypulse/internal/domain/models"
	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

/*─────────────────────────────────────────────────────────────────────────────*
| Cookie constants                                                           |
*─────────────────────────────────────────────────────────────────────────────*/

const (
	DefaultSessionName = "propertypulse-widgets"

	propertyKey = "property"
	tabKey      = "tab"
	horizonKey  = "horizon"

	maxAgeSeconds = 30 * 24 * 60 * 60
)

// Selection is the current widget state.
type Selection struct {
	Property string
	Tab      models.Tab
	Horizon  int
}

// Defaults are used when neither the request nor the cookie has a value.
type Defaults struct {
	Tab     models.Tab
	Horizon int
}

// Options configures NewStore.
type Options struct {
	Key      string
	Name     string
	Domain   string
	Secure   bool
	Defaults Defaults
}

// Store reads and writes widget state.
type Store struct {
	cookies  *sessions.CookieStore
	name     string
	defaults Defaults
	log      *zap.Logger
}

/*─────────────────────────────────────────────────────────────────────────────*
| Construction                                                               |
*─────────────────────────────────────────────────────────────────────────────*/

// NewStore builds the cookie store. The `Secure` flag controls whether
// cookies are marked Secure and which SameSite mode is used. An empty key
// is replaced by a random one, so remembered state does not survive a
// restart.
func NewStore(opts Options, logger *zap.Logger) (*Store, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	key := []byte(opts.Key)
	if len(key) == 0 {
		key = securecookie.GenerateRandomKey(32)
		if key == nil {
			return nil, fmt.Errorf("selection: could not generate a cookie key")
		}
		logger.Warn("session key not configured; using a random key for this process")
	} else if len(key) < 32 {
		logger.Warn("session key is short; 32+ chars recommended",
			zap.Int("length", len(key)))
	}

	name := opts.Name
	if name == "" {
		name = DefaultSessionName
	}

	defaults := opts.Defaults
	if !defaults.Tab.Valid() {
		defaults.Tab = models.DefaultTab
	}
	if !inputval.Horizon.InRange(defaults.Horizon) {
		defaults.Horizon = inputval.Horizon.Default
	}

	cs := sessions.NewCookieStore(key)
	cs.Options = &sessions.Options{
		Domain:   opts.Domain,
		Path:     "/",
		MaxAge:   maxAgeSeconds,
		Secure:   opts.Secure,
		HttpOnly: true,
	}
	// Same-site navigation only; Lax works over plain HTTP in dev.
	if opts.Secure {
		cs.Options.SameSite = http.SameSiteStrictMode
	} else {
		cs.Options.SameSite = http.SameSiteLaxMode
	}

	logger.Info("widget state store initialized",
		zap.String("cookie", name),
		zap.Bool("secure", opts.Secure),
		zap.String("domain", opts.Domain))

	return &Store{cookies: cs, name: name, defaults: defaults, log: logger}, nil
}

// Defaults returns the effective defaults.
func (s *Store) Defaults() Defaults { return s.defaults }

/*─────────────────────────────────────────────────────────────────────────────*
| Resolve / Remember                                                         |
*─────────────────────────────────────────────────────────────────────────────*/

// Resolve determines the selection for r. pathTab is the tab taken from the
// route, if any; it wins over a "tab" query parameter. An explicit but
// unknown property falls back to "All Properties" and an explicit but
// unknown tab falls back to Overview.
func (s *Store) Resolve(r *http.Request, pathTab string) Selection {
	remembered := s.load(r)
	sel := Selection{
		Property: models.AllProperties,
		Tab:      s.defaults.Tab,
		Horizon:  s.defaults.Horizon,
	}

	// property
	if raw, ok := lookup(r, "property"); ok {
		sel.Property = NormalizeProperty(raw)
	} else if p, ok := remembered.Values[propertyKey].(string); ok && sampledata.IsKnownProperty(p) {
		sel.Property = p
	}

	// tab
	rawTab, hasTab := strings.TrimSpace(pathTab), pathTab != ""
	if !hasTab {
		rawTab, hasTab = lookup(r, "tab")
	}
	if hasTab {
		if t, ok := models.ParseTab(rawTab); ok {
			sel.Tab = t
		} else {
			sel.Tab = models.DefaultTab
		}
	} else if v, ok := remembered.Values[tabKey].(string); ok {
		if t, ok := models.ParseTab(v); ok {
			sel.Tab = t
		}
	}

	// horizon
	if raw, ok := lookup(r, "horizon"); ok {
		sel.Horizon = inputval.Horizon.Parse(raw)
	} else if h, ok := remembered.Values[horizonKey].(int); ok && inputval.Horizon.InRange(h) {
		sel.Horizon = h
	}

	return sel
}

// Remember writes sel to the widget cookie.
func (s *Store) Remember(w http.ResponseWriter, r *http.Request, sel Selection) error {
	sess := s.load(r)
	sess.Values[propertyKey] = sel.Property
	sess.Values[tabKey] = sel.Tab.Slug()
	sess.Values[horizonKey] = sel.Horizon
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("save widget state: %w", err)
	}
	return nil
}

// load returns the cookie session, discarding a cookie that no longer
// decodes (for example after a key rotation).
func (s *Store) load(r *http.Request) *sessions.Session {
	sess, err := s.cookies.Get(r, s.name)
	if err != nil {
		var scErr securecookie.Error
		if errors.As(err, &scErr) && scErr.IsDecode() {
			s.log.Debug("ignoring undecodable widget cookie", zap.Error(err))
		} else {
			s.log.Warn("widget cookie read failed", zap.Error(err))
		}
		if sess == nil {
			sess = sessions.NewSession(s.cookies, s.name)
		}
		sess.Values = map[interface{}]interface{}{}
		sess.Options = s.cookies.Options
		sess.IsNew = true
	}
	return sess
}

/*─────────────────────────────────────────────────────────────────────────────*
| Helpers                                                                    |
*─────────────────────────────────────────────────────────────────────────────*/

// NormalizeProperty maps raw to a known property name, or "All Properties".
func NormalizeProperty(raw string) string {
	raw = strings.TrimSpace(raw)
	if sampledata.IsKnownProperty(raw) {
		return raw
	}
	return models.AllProperties
}

// lookup reads a query or form value and reports whether it was present.
func lookup(r *http.Request, key string) (string, bool) {
	if vals, ok := r.URL.Query()[key]; ok && len(vals) > 0 {
		return vals[0], true
	}
	if r.Method == http.MethodPost {
		if v := r.PostFormValue(key); v != "" {
			return v, true
		}
	}
	return "", false
}

// Query encodes the selection as URL parameters, leaving the tab to the path.
func (sel Selection) Query() url.Values {
	q := url.Values{}
	q.Set("property", sel.Property)
	q.Set("horizon", fmt.Sprint(sel.Horizon))
	return q
}

// URL returns the dashboard URL for tab carrying the rest of sel.
func (sel Selection) URL(tab models.Tab) string {
	return "/dashboard/" + tab.Slug() + "?" + sel.Query().Encode()
}

// Heading is the page title shown above each view, e.g.
// "Energy Optimization: Whole Foods".
func (sel Selection) Heading() string {
	title := string(sel.Tab)
	switch sel.Tab {
	case models.TabOverview:
		title = "PropertyPulse AI Dashboard"
	case models.TabMaintenance:
		title = "Predictive Maintenance"
	case models.TabEnergy:
		title = "Energy Optimization"
	}
	return title + ": " + sel.Property
}
