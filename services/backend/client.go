// Package backend is the REST client of the external exam-prep backend.
package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sendgrid/rest"

	"github.com/trezcool/examprep/core"
	"github.com/trezcool/examprep/core/modeltest"
	"github.com/trezcool/examprep/core/studyplan"
)

type Client struct {
	baseURL string
	timeout time.Duration
	rest    *rest.Client
}

var (
	_ modeltest.Backend = (*Client)(nil)
	_ studyplan.Backend = (*Client)(nil)
)

func NewClient(conf *core.Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(conf.Backend.BaseURL, "/"),
		timeout: conf.Backend.Timeout,
		rest:    &rest.Client{HTTPClient: &http.Client{}},
	}
}

// call sends a request to path & decodes the JSON answer into out (when not nil).
func (c *Client) call(ctx context.Context, token string, method rest.Method, path string, body, out interface{}) error {
	req := rest.Request{
		Method:  method,
		BaseURL: c.baseURL + path,
		Headers: map[string]string{"Accept": "application/json"},
	}
	if token != "" {
		req.Headers["Authorization"] = "Bearer " + token
	}
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "encoding request body")
		}
		req.Body = raw
		req.Headers["Content-Type"] = "application/json"
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	res, err := c.rest.SendWithContext(ctx, req)
	if err != nil {
		return errors.Wrapf(err, "backend %s %s", method, path)
	}
	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return &core.UpstreamError{Method: string(method), Path: path, StatusCode: res.StatusCode, Body: res.Body}
	}

	if out == nil || strings.TrimSpace(res.Body) == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(res.Body), out); err != nil {
		return errors.Wrapf(err, "decoding backend %s %s", method, path)
	}
	return nil
}

func idPath(prefix string, id core.ID, suffix ...string) string {
	return prefix + "/" + url.PathEscape(string(id)) + strings.Join(suffix, "")
}
