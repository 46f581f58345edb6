// Package api wraps the backend REST contract (/auth, /clubs, /courts, /reservations)
// in typed calls. Every call goes through the shared httpclient pipeline.
package api

import (
	"context"
	"net/url"

	"courtbook/internal/infra/httpclient"
	"courtbook/internal/pkg/id"
)

type Requester interface {
	Do(ctx context.Context, method, path string, query url.Values, body, out any, opts ...httpclient.RequestOption) error
}

func idPath(prefix string, v id.ID, suffix ...string) string {
	p := prefix + "/" + v.String()
	for _, s := range suffix {
		p += "/" + s
	}
	return p
}

func setID(q url.Values, key string, v id.ID) {
	if !v.IsZero() {
		q.Set(key, v.String())
	}
}

func setString(q url.Values, key, v string) {
	if v != "" {
		q.Set(key, v)
	}
}
