package asset

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Returned (wrapped) whenever a resource cannot be opened or read.
var ErrResourceUnavailable = errors.New("resource: unavailable")

// The Resource class wraps a streamable file or remote Resource.
type Resource struct {
	io.ReadCloser
	url *url.URL
}

// Returns the path to this resource.
func (r *Resource) Path() string {
	return r.url.String()
}

// Returns true if the Resource is streamed over http/https.
func (r *Resource) IsRemote() bool {
	return r.url.Scheme == "http" || r.url.Scheme == "https"
}

// Create a new Resource data stream. If relTo is specified and pathToResource
// does not define a scheme, then the path to the new Resource will be generated
// by concatenating the base path of relTo and pathToResource.
//
// Local paths may optionally use the file:// scheme. http/https URLs are
// fetched with the net/http package. The caller must close the returned
// Resource.
func NewResource(pathToResource string, relTo *Resource) (*Resource, error) {
	// Replace backslashes with forward slashes and try parsing as a URL
	resURL, err := url.Parse(strings.Replace(pathToResource, `\`, `/`, -1))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrResourceUnavailable, err.Error())
	}

	// If this is a relative url, clone parent url and adjust its path
	if resURL.Scheme == "" && relTo != nil && !filepath.IsAbs(resURL.Path) {
		path := resURL.Path
		resURL, _ = url.Parse(relTo.url.String())
		prefix := resURL.Path
		if !relTo.IsRemote() {
			prefix, err = filepath.Abs(resURL.Path)
			if err != nil {
				return nil, fmt.Errorf("%w: could not detect abs path for %s; %s", ErrResourceUnavailable, relTo.url.String(), err.Error())
			}
		}
		resURL.Path = filepath.Dir(prefix) + "/" + path
	}

	var reader io.ReadCloser
	switch resURL.Scheme {
	case "", "file":
		reader, err = os.Open(filepath.Clean(resURL.Path))
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrResourceUnavailable, err.Error())
		}
	case "http", "https":
		resp, err := http.Get(resURL.String())
		if err != nil {
			return nil, fmt.Errorf("%w: could not fetch '%s': %s", ErrResourceUnavailable, resURL.String(), err)
		}
		if resp.StatusCode >= 400 {
			resp.Body.Close()
			return nil, fmt.Errorf("%w: could not fetch '%s': status %d", ErrResourceUnavailable, resURL.String(), resp.StatusCode)
		}
		reader = resp.Body
	default:
		return nil, fmt.Errorf("%w: unsupported scheme '%s'", ErrResourceUnavailable, resURL.Scheme)
	}

	return &Resource{
		ReadCloser: reader,
		url:        resURL,
	}, nil
}

// Create a resource from a reader.
func NewResourceFromStream(name string, source io.Reader) *Resource {
	resURL, _ := url.Parse(name)
	if resURL == nil {
		resURL = &url.URL{Path: name}
	}
	return &Resource{
		ReadCloser: io.NopCloser(source),
		url:        resURL,
	}
}

// Read the entire contents of a resource as text. Open and read failures as
// well as empty payloads are reported as ErrResourceUnavailable; no partial
// content is ever returned.
func ReadText(pathToResource string) (string, error) {
	return ReadTextRelTo(pathToResource, nil)
}

// Like ReadText but relative paths are resolved against the location of relTo.
func ReadTextRelTo(pathToResource string, relTo *Resource) (string, error) {
	res, err := NewResource(pathToResource, relTo)
	if err != nil {
		return "", err
	}
	defer res.Close()

	return readAll(res)
}

func readAll(res *Resource) (string, error) {
	data, err := io.ReadAll(res)
	if err != nil {
		return "", fmt.Errorf("%w: error reading '%s': %s", ErrResourceUnavailable, res.Path(), err.Error())
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return "", fmt.Errorf("%w: '%s' is empty", ErrResourceUnavailable, res.Path())
	}
	return string(data), nil
}
