package driver

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"ember/internal/diag"
	"ember/internal/source"
)

// CacheSchema is the layout version of CachePayload. Bump it on any change:
// entries of another schema read as misses.
const CacheSchema uint16 = 1

// Digest keys cache entries.
type Digest [32]byte

// DiskCache хранит результаты декодирования файлов на диске.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// CachePayload is the on-disk form of a Result. Spans are stored as offsets
// only, the file ID is assigned again on restore.
type CachePayload struct {
	Schema      uint16
	Path        string
	Literals    []cachedLiteral
	Diagnostics []cachedDiagnostic
}

type cachedLiteral struct {
	Value string `msgpack:"v"`
	Start uint32 `msgpack:"s"`
	End   uint32 `msgpack:"e"`
}

type cachedNote struct {
	Msg   string `msgpack:"m"`
	Start uint32 `msgpack:"s"`
	End   uint32 `msgpack:"e"`
}

type cachedDiagnostic struct {
	Severity uint8        `msgpack:"sev"`
	Code     uint16       `msgpack:"code"`
	Message  string       `msgpack:"msg"`
	Start    uint32       `msgpack:"s"`
	End      uint32       `msgpack:"e"`
	Notes    []cachedNote `msgpack:"notes,omitempty"`
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return OpenDiskCacheAt(filepath.Join(base, app))
}

// OpenDiskCacheAt uses dir as the cache root.
func OpenDiskCacheAt(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &DiskCache{dir: dir}, nil
}

// Dir is the cache root.
func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

// CacheKey derives the entry key from the file hash and the options that
// change the decoded output.
func CacheKey(contentHash [32]byte, opts Options) Digest {
	h := sha256.New()
	h.Write(contentHash[:])
	var flags [9]byte
	if opts.NFC {
		flags[0] = 1
	}
	binary.LittleEndian.PutUint64(flags[1:], uint64(max(opts.MaxDiagnostics, 0))) // #nosec G115 -- non-negative
	h.Write(flags[:])
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

func (c *DiskCache) pathFor(key Digest) string {
	hexKey := hex.EncodeToString(key[:])
	// подкаталог по первым двум символам, чтобы не раздувать один каталог
	return filepath.Join(c.dir, "lits", hexKey[:2], hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key Digest, payload *CachePayload) (err error) {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err = os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if rmErr := os.Remove(f.Name()); rmErr != nil && !errors.Is(rmErr, os.ErrNotExist) && err == nil {
			err = rmErr
		}
	}()

	if err = msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close() //nolint:errcheck
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	// Атомарная замена
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes a payload from the disk cache. Entries written
// with another schema version are reported as misses.
func (c *DiskCache) Get(key Digest, out *CachePayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close() //nolint:errcheck

	if err := msgpack.NewDecoder(f).Decode(out); err != nil {
		return false, fmt.Errorf("decode cache entry: %w", err)
	}
	if out.Schema != CacheSchema {
		return false, nil
	}
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := os.RemoveAll(old); err != nil {
		return err
	}
	return os.MkdirAll(c.dir, 0o755)
}

func resultToPayload(res *Result) *CachePayload {
	payload := &CachePayload{
		Schema:   CacheSchema,
		Path:     res.Path,
		Literals: make([]cachedLiteral, len(res.Literals)),
	}
	for i, lit := range res.Literals {
		payload.Literals[i] = cachedLiteral{Value: lit.Value, Start: lit.Span.Start, End: lit.Span.End}
	}
	for _, d := range res.Bag.Items() {
		cd := cachedDiagnostic{
			Severity: uint8(d.Severity),
			Code:     uint16(d.Code),
			Message:  d.Message,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
		}
		for _, n := range d.Notes {
			cd.Notes = append(cd.Notes, cachedNote{Msg: n.Msg, Start: n.Span.Start, End: n.Span.End})
		}
		payload.Diagnostics = append(payload.Diagnostics, cd)
	}
	return payload
}

func payloadToResult(payload *CachePayload, file *source.File, maxDiagnostics int) *Result {
	res := &Result{
		Path:     file.Path,
		FileID:   file.ID,
		Literals: make([]Literal, len(payload.Literals)),
		Bag:      diag.NewBag(maxDiagnostics),
		Cached:   true,
	}
	for i, lit := range payload.Literals {
		res.Literals[i] = Literal{
			Value: lit.Value,
			Span:  source.Span{File: file.ID, Start: lit.Start, End: lit.End},
		}
	}
	for _, cd := range payload.Diagnostics {
		d := diag.New(diag.Severity(cd.Severity), diag.Code(cd.Code),
			source.Span{File: file.ID, Start: cd.Start, End: cd.End}, cd.Message)
		for _, n := range cd.Notes {
			d = d.WithNote(source.Span{File: file.ID, Start: n.Start, End: n.End}, n.Msg)
		}
		res.Bag.Add(d)
	}
	return res
}
