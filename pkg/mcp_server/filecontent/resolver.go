// Package filecontent normalizes the file reference of an issue_ebl call
// into the inline payload the BU server accepts. The url variant lets
// callers avoid base64 encoding large documents client-side.
package filecontent

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/openebl/ebl-mcp-server/pkg/mcp_server/model"
)

const (
	// Fallbacks for remote files that expose neither a usable name nor a
	// content type.
	DefaultFileName = "bill-of-lading.pdf"
	DefaultFileType = "application/pdf"

	defaultFetchTimeout = 30 * time.Second
)

type Resolver interface {
	Resolve(ctx context.Context, src model.FileContentSource) (model.FileContent, error)
}

type ResolverOption func(r *_HTTPResolver)

func WithFetchTimeout(timeout time.Duration) ResolverOption {
	return func(r *_HTTPResolver) {
		r.timeout = timeout
	}
}

type _HTTPResolver struct {
	timeout time.Duration
}

func NewHTTPResolver(opts ...ResolverOption) *_HTTPResolver {
	res := &_HTTPResolver{
		timeout: defaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Resolve turns either file content variant into a uniform payload. Inline
// content passes through unchanged; the url variant is fetched.
func (r *_HTTPResolver) Resolve(ctx context.Context, src model.FileContentSource) (model.FileContent, error) {
	switch {
	case src.Inline != nil:
		return *src.Inline, nil
	case src.Remote != nil:
		return r.fetch(ctx, src.Remote.URL)
	}
	return model.FileContent{}, fmt.Errorf("file_content has no source%w", model.ErrInvalidParameter)
}

func (r *_HTTPResolver) fetch(ctx context.Context, fileURL string) (model.FileContent, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DisableKeepAlives = true
	transport.MaxIdleConnsPerHost = -1
	client := http.Client{Timeout: r.timeout, Transport: transport}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fileURL, nil)
	if err != nil {
		return model.FileContent{}, fmt.Errorf("create file request for %q: %v%w", fileURL, err, model.ErrFileFetchError)
	}

	resp, err := client.Do(req)
	if err != nil {
		return model.FileContent{}, fmt.Errorf("fetch %q: %v%w", fileURL, err, model.ErrFileFetchError)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode/100 != 2 {
		return model.FileContent{}, fmt.Errorf("fetch %q returned status %d%w", fileURL, resp.StatusCode, model.ErrFileFetchError)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return model.FileContent{}, fmt.Errorf("read body of %q: %v%w", fileURL, err, model.ErrFileFetchError)
	}

	return model.FileContent{
		Name:    fileName(resp.Header.Get("Content-Disposition"), fileURL),
		Type:    fileType(resp.Header.Get("Content-Type")),
		Content: content,
	}, nil
}

// fileName derives the file name from the Content-Disposition header when
// present, then from the last segment of the URL path, then a fixed fallback.
func fileName(contentDisposition, fileURL string) string {
	if contentDisposition != "" {
		if _, params, err := mime.ParseMediaType(contentDisposition); err == nil {
			if name := params["filename"]; name != "" {
				return name
			}
		}
	}

	if u, err := url.Parse(fileURL); err == nil {
		if segment := path.Base(u.Path); segment != "" && segment != "." && segment != "/" {
			return segment
		}
	}

	return DefaultFileName
}

func fileType(contentType string) string {
	if contentType == "" {
		return DefaultFileType
	}
	if mediaType, _, err := mime.ParseMediaType(contentType); err == nil {
		return mediaType
	}
	return contentType
}
