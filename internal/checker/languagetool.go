package checker

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"fortio.org/safecast"
	"github.com/tidwall/gjson"

	"prosecheck/internal/config"
	"prosecheck/internal/doc"
	"prosecheck/internal/overlay"
	"prosecheck/internal/source"
	"prosecheck/internal/suggest"
	"prosecheck/internal/trace"
)

// LanguageToolChecker sends projected prose to a LanguageTool server and
// maps the reported matches back to source spans.
type LanguageToolChecker struct {
	cfg    config.LanguageTool
	client *http.Client
	cache  *Cache
}

// NewLanguageTool builds the backend; cache may be nil to disable caching.
func NewLanguageTool(cfg config.LanguageTool, cache *Cache) *LanguageToolChecker {
	return &LanguageToolChecker{
		cfg:    cfg,
		client: &http.Client{Timeout: 30 * time.Second},
		cache:  cache,
	}
}

func (c *LanguageToolChecker) Name() string { return "languagetool" }

func (c *LanguageToolChecker) Check(docs *doc.Documentation) (*suggest.SuggestionSet, error) {
	set := suggest.NewSuggestionSet()
	for _, path := range docs.Paths() {
		for _, ls := range docs.Sets(path) {
			po := overlay.EraseMarkdown(ls)
			plain := po.Plain()
			if strings.TrimSpace(plain) == "" {
				continue
			}
			body, err := c.matches(plain)
			if err != nil {
				return nil, err
			}
			c.collect(set, path, ls, po, body)
		}
	}
	return set, nil
}

// matches returns the raw JSON response for one text, via the cache when
// possible.
func (c *LanguageToolChecker) matches(plain string) ([]byte, error) {
	key := Key(c.cfg.URL+"\x00"+c.cfg.Language, plain)
	if body, ok := c.cache.Get(key); ok {
		trace.Debugf("languagetool: cache hit")
		return body, nil
	}

	form := url.Values{}
	form.Set("text", plain)
	form.Set("language", c.cfg.Language)

	endpoint := strings.TrimRight(c.cfg.URL, "/") + "/v2/check"
	resp, err := c.client.PostForm(endpoint, form)
	if err != nil {
		return nil, fmt.Errorf("languagetool request to %q failed: %w", endpoint, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("languagetool returned %s", resp.Status)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read languagetool response: %w", err)
	}
	if err := c.cache.Put(key, body); err != nil {
		trace.Warnf("languagetool: failed to cache response: %v", err)
	}
	return body, nil
}

func (c *LanguageToolChecker) collect(set *suggest.SuggestionSet, path string, ls *doc.LiteralSet, po *overlay.PlainOverlay, body []byte) {
	for _, m := range gjson.GetBytes(body, "matches").Array() {
		offset, err := safecast.Conv[int](m.Get("offset").Int())
		if err != nil {
			trace.Warnf("languagetool: bad offset %v, match dropped", m.Get("offset"))
			continue
		}
		length, err := safecast.Conv[int](m.Get("length").Int())
		if err != nil || length <= 0 {
			trace.Warnf("languagetool: bad length %v, match dropped", m.Get("length"))
			continue
		}

		candidates := make([]string, 0, maxCandidates)
		for _, r := range m.Get("replacements").Array() {
			if len(candidates) == maxCandidates {
				break
			}
			if v := r.Get("value").String(); v != "" {
				candidates = append(candidates, v)
			}
		}

		message := m.Get("message").String()
		for _, span := range po.Resolve(source.Range{Start: offset, End: offset + length}) {
			set.Add(path, suggest.Suggestion{
				Span:       span,
				Context:    ls.LineText(span.Line),
				Origin:     c.Name(),
				Message:    message,
				Candidates: candidates,
			})
		}
	}
}
