package payments

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// MaxProofSize caps uploaded payment proofs at 5 MiB.
	MaxProofSize = 5 << 20

	proofPrefix = "payment-proofs"
)

var (
	ErrProofTooLarge    = errors.New("proof file exceeds size limit")
	ErrProofUnsupported = errors.New("unsupported proof file type")
)

var allowedProofTypes = map[string]struct{}{
	"image/jpeg":      {},
	"image/png":       {},
	"image/webp":      {},
	"application/pdf": {},
}

// ProofStore keeps payment proof files on local disk and serves them back
// under the application's /uploads/ path.
type ProofStore struct {
	dir    string
	appURL string
	now    func() time.Time
}

func NewProofStore(dir, appURL string) *ProofStore {
	return &ProofStore{
		dir:    dir,
		appURL: strings.TrimRight(appURL, "/"),
		now:    time.Now,
	}
}

// Save streams the proof to disk and returns its public URL. The content type
// is sniffed from the leading bytes rather than trusted from the client.
func (p *ProofStore) Save(orderID, userID, filename string, r io.Reader) (string, error) {
	limited := io.LimitReader(r, MaxProofSize+1)
	head := make([]byte, 512)
	n, err := io.ReadFull(limited, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", err
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	if _, ok := allowedProofTypes[contentType]; !ok {
		return "", fmt.Errorf("%w: %s", ErrProofUnsupported, contentType)
	}

	key := filepath.Join(proofPrefix, orderID, userID,
		fmt.Sprintf("%d-%s", p.now().UnixMilli(), sanitizeFilename(filename)))
	path := filepath.Join(p.dir, key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	written, err := io.Copy(f, io.MultiReader(strings.NewReader(string(head)), limited))
	if err != nil {
		os.Remove(path)
		return "", err
	}
	if written > MaxProofSize {
		os.Remove(path)
		return "", ErrProofTooLarge
	}

	return p.appURL + "/uploads/" + filepath.ToSlash(key), nil
}

// Dir returns the root directory served under /uploads/.
func (p *ProofStore) Dir() string {
	return p.dir
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '-'
		}
	}, name)
	if name == "" || name == "." {
		name = "proof"
	}
	return name
}
