package upload

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Dev-MihirParmar/Enlighten/errors"
)

var allowedExtensions = map[string]struct{}{
	".mp4": {},
	".mkv": {},
	".mov": {},
}

// DiskStore saves uploaded videos on the local disk and serves them back
// under a base URL.
type DiskStore struct {
	dir     string
	baseURL string
}

func NewDiskStore(dir, baseURL string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	return &DiskStore{
		dir:     dir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// Save writes the video to disk under a unique name and returns the URL it
// will be served at. The original filename is only used for its extension.
func (s *DiskStore) Save(filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", errors.New("unsupported video format "+ext, errors.BadRequest())
	}

	// Sniff the first bytes, the extension alone is too easy to lie about.
	head := make([]byte, 512)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", err
	}
	head = head[:n]

	if !videoContentType(http.DetectContentType(head)) {
		return "", errors.New("file content does not look like a video", errors.BadRequest())
	}

	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}

	if _, err := io.Copy(f, io.MultiReader(bytes.NewReader(head), r)); err != nil {
		f.Close()
		os.Remove(path)
		return "", err
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return "", err
	}

	return s.baseURL + "/" + name, nil
}

// Dir returns the directory the videos are stored in, for static serving.
func (s *DiskStore) Dir() string {
	return s.dir
}

// videoContentType accepts sniffed video types, and the opaque fallback since
// some valid containers (quicktime among them) are not in the sniffing table.
func videoContentType(contentType string) bool {
	return strings.HasPrefix(contentType, "video/") || contentType == "application/octet-stream"
}
