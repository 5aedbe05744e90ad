package checkout

import (
	"context"
	"log/slog"
	"strings"
)

type SourceName string

const (
	SourceSession SourceName = "session"
	SourceCookie  SourceName = "cookie"
	SourceRequest SourceName = "request"
)

// Source is one named place a checkout value can come from.
type Source struct {
	Name   SourceName
	Lookup func(key string) (string, bool)
}

func MapSource(name SourceName, values map[string]string) Source {
	return Source{
		Name: name,
		Lookup: func(key string) (string, bool) {
			v, ok := values[key]
			return v, ok
		},
	}
}

// SessionSource reads from the session store. Store errors are treated as a miss.
func SessionSource(ctx context.Context, store SessionStore, sessionID string) Source {
	return Source{
		Name: SourceSession,
		Lookup: func(key string) (string, bool) {
			if sessionID == "" {
				return "", false
			}
			v, ok, err := store.Get(ctx, sessionID, key)
			if err != nil {
				slog.WarnContext(ctx, "Session lookup failed", "key", key, "error", err)
				return "", false
			}
			return v, ok
		},
	}
}

type resolved struct {
	value  string
	source SourceName
	ok     bool
}

// RequestContext carries everything one checkout request submitted.
// It is not safe for concurrent use.
type RequestContext struct {
	sessionID string
	fields    map[string]string
	sources   []Source

	resolved map[string]resolved
	expired  []string
}

func NewRequestContext(sessionID string, fields map[string]string, sources ...Source) *RequestContext {
	if fields == nil {
		fields = map[string]string{}
	}
	return &RequestContext{
		sessionID: sessionID,
		fields:    fields,
		sources:   sources,
		resolved:  map[string]resolved{},
	}
}

func (rc *RequestContext) SessionID() string {
	return rc.sessionID
}

func (rc *RequestContext) Fields() map[string]string {
	return rc.fields
}

// Field returns the trimmed submitted value.
func (rc *RequestContext) Field(name string) string {
	return strings.TrimSpace(rc.fields[name])
}

// Resolve returns the first non-blank value for key across the sources, in order.
// The result is computed once per request.
func (rc *RequestContext) Resolve(key string) (string, SourceName, bool) {
	if r, ok := rc.resolved[key]; ok {
		return r.value, r.source, r.ok
	}

	var r resolved
	for _, src := range rc.sources {
		v, ok := src.Lookup(key)
		if v = strings.TrimSpace(v); ok && v != "" {
			r = resolved{value: v, source: src.Name, ok: true}
			break
		}
	}

	rc.resolved[key] = r
	return r.value, r.source, r.ok
}

// ExpireCookie asks the transport to clear the named cookie on the response.
func (rc *RequestContext) ExpireCookie(name string) {
	rc.expired = append(rc.expired, name)
}

func (rc *RequestContext) ExpiredCookies() []string {
	return rc.expired
}
