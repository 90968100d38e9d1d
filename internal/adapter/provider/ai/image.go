package ai

import (
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/heartmarshall/nutrigym-backend/internal/domain"
)

// MaxImageBytes bounds a single uploaded image.
const MaxImageBytes = 20 << 20

// EncodeImage reads r fully and base64-encodes it. An empty mimeType is
// detected from the content. r is closed when it is an io.Closer, whatever
// the outcome.
func EncodeImage(r io.Reader, mimeType string) (*domain.InlineImage, error) {
	if c, ok := r.(io.Closer); ok {
		defer c.Close()
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxImageBytes+1))
	if err != nil {
		return nil, fmt.Errorf("ai.EncodeImage: read: %w", err)
	}
	if len(data) == 0 {
		return nil, domain.NewValidationError("image", "empty")
	}
	if len(data) > MaxImageBytes {
		return nil, domain.NewValidationError("image", fmt.Sprintf("larger than %d bytes", MaxImageBytes))
	}

	mimeType = baseType(mimeType)
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = baseType(http.DetectContentType(data))
	}
	if !strings.HasPrefix(mimeType, "image/") {
		return nil, domain.NewValidationError("mimeType", fmt.Sprintf("unsupported type %q", mimeType))
	}

	return &domain.InlineImage{
		MIMEType: mimeType,
		Data:     base64.StdEncoding.EncodeToString(data),
	}, nil
}

// EncodeFile opens path and encodes it with EncodeImage. The MIME type comes
// from the extension when known.
func EncodeFile(path string) (*domain.InlineImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ai.EncodeFile: %w", err)
	}
	return EncodeImage(f, mime.TypeByExtension(strings.ToLower(filepath.Ext(path))))
}

func baseType(mt string) string {
	if mt == "" {
		return ""
	}
	t, _, err := mime.ParseMediaType(mt)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(mt))
	}
	return t
}
