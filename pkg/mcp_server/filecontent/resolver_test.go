package filecontent_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openebl/ebl-mcp-server/pkg/mcp_server/filecontent"
	"github.com/openebl/ebl-mcp-server/pkg/mcp_server/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveInlineContent(t *testing.T) {
	resolver := filecontent.NewHTTPResolver()
	src := model.FileContentSource{
		Inline: &model.FileContent{
			Name:    "bl.pdf",
			Type:    "application/pdf",
			Content: []byte("%PDF-1.7"),
		},
	}

	file, err := resolver.Resolve(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, *src.Inline, file)

	// Resolution has no side effect. A second call yields the same result.
	again, err := resolver.Resolve(context.Background(), src)
	require.NoError(t, err)
	assert.Equal(t, file, again)
}

func TestResolveRemoteContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf; charset=binary")
		w.Header().Set("Content-Disposition", `attachment; filename="shipment-42.pdf"`)
		_, _ = w.Write([]byte("%PDF-1.7"))
	}))
	defer srv.Close()

	resolver := filecontent.NewHTTPResolver()
	file, err := resolver.Resolve(context.Background(), model.FileContentSource{
		Remote: &model.RemoteFileContent{URL: srv.URL + "/files/original.pdf"},
	})
	require.NoError(t, err)
	assert.Equal(t, "shipment-42.pdf", file.Name)
	assert.Equal(t, "application/pdf", file.Type)
	assert.Equal(t, []byte("%PDF-1.7"), file.Content)
}

func TestResolveRemoteContentNameFromURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header()["Content-Type"] = nil // suppress content type sniffing
		_, _ = w.Write([]byte("data"))
	}))
	defer srv.Close()

	resolver := filecontent.NewHTTPResolver()
	file, err := resolver.Resolve(context.Background(), model.FileContentSource{
		Remote: &model.RemoteFileContent{URL: srv.URL + "/files/doc.pdf?version=2"},
	})
	require.NoError(t, err)
	assert.Equal(t, "doc.pdf", file.Name)
}

func TestResolveRemoteContentDefaults(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header()["Content-Type"] = nil // suppress content type sniffing
		_, _ = w.Write([]byte("data"))
	}))
	defer srv.Close()

	resolver := filecontent.NewHTTPResolver()
	file, err := resolver.Resolve(context.Background(), model.FileContentSource{
		Remote: &model.RemoteFileContent{URL: srv.URL + "/"},
	})
	require.NoError(t, err)
	assert.Equal(t, filecontent.DefaultFileName, file.Name)
	assert.Equal(t, filecontent.DefaultFileType, file.Type)
}

func TestResolveRemoteContentErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	resolver := filecontent.NewHTTPResolver()
	_, err := resolver.Resolve(context.Background(), model.FileContentSource{
		Remote: &model.RemoteFileContent{URL: srv.URL + "/files/doc.pdf"},
	})
	assert.ErrorIs(t, err, model.ErrFileFetchError)
	assert.Contains(t, err.Error(), "404")
}

func TestResolveRemoteContentUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	resolver := filecontent.NewHTTPResolver()
	_, err := resolver.Resolve(context.Background(), model.FileContentSource{
		Remote: &model.RemoteFileContent{URL: srv.URL + "/files/doc.pdf"},
	})
	assert.ErrorIs(t, err, model.ErrFileFetchError)
}

func TestResolveWithoutSource(t *testing.T) {
	resolver := filecontent.NewHTTPResolver()
	_, err := resolver.Resolve(context.Background(), model.FileContentSource{})
	assert.ErrorIs(t, err, model.ErrInvalidParameter)
}
