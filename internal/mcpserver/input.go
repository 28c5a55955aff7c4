package mcpserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/erraggy/jsonapikit/document"
	"github.com/erraggy/jsonapikit/internal/options"
)

// documentInput represents the two ways a JSON:API document can be provided
// to a tool. Exactly one of File or Content must be set.
type documentInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a JSON:API document on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline JSON:API document content (JSON or YAML)"`
}

// cachedDocument is a decoded document plus its bookkeeping.
type cachedDocument struct {
	doc      *document.Document
	lastUsed time.Time
	expires  time.Time
}

// documentCacheStore keeps decoded documents for the session so repeated
// tool calls on the same input skip decoding. It is bounded by maxSize,
// dropping the least recently used document when full.
type documentCacheStore struct {
	mu             sync.Mutex
	entries        map[string]*cachedDocument
	maxSize        int
	sweeperStarted atomic.Bool
}

var docCache = &documentCacheStore{
	entries: make(map[string]*cachedDocument),
	maxSize: cfg.CacheMaxSize,
}

func (c *documentCacheStore) get(key string) *document.Document {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		return nil
	}
	now := time.Now()
	if now.After(e.expires) {
		delete(c.entries, key)
		return nil
	}
	e.lastUsed = now
	return e.doc
}

func (c *documentCacheStore) putWithTTL(key string, doc *document.Document, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.entries[key]; !ok && len(c.entries) >= c.maxSize {
		c.evictLeastRecentLocked()
	}
	now := time.Now()
	c.entries[key] = &cachedDocument{doc: doc, lastUsed: now, expires: now.Add(ttl)}
}

func (c *documentCacheStore) evictLeastRecentLocked() {
	var victim string
	var victimUsed time.Time
	for k, e := range c.entries {
		if victim == "" || e.lastUsed.Before(victimUsed) {
			victim, victimUsed = k, e.lastUsed
		}
	}
	delete(c.entries, victim)
}

func (c *documentCacheStore) sweep() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	for k, e := range c.entries {
		if now.After(e.expires) {
			delete(c.entries, k)
		}
	}
}

// startSweeper drops expired documents every interval until ctx ends.
// At most one sweeper runs at a time.
func (c *documentCacheStore) startSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 || !c.sweeperStarted.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer c.sweeperStarted.Store(false)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				c.sweep()
			}
		}
	}()
}

func (c *documentCacheStore) reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cachedDocument)
}

func (c *documentCacheStore) size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// cacheKey returns the cache key for the input, or "" when it cannot be cached.
func (d documentInput) cacheKey() string {
	switch {
	case d.File != "":
		absPath, err := filepath.Abs(d.File)
		if err != nil {
			return ""
		}
		info, err := os.Stat(absPath)
		if err != nil {
			return ""
		}
		return fmt.Sprintf("file:%s:%d", absPath, info.ModTime().UnixNano())
	case d.Content != "":
		h := sha256.Sum256([]byte(d.Content))
		return "content:" + hex.EncodeToString(h[:])
	default:
		return ""
	}
}

// resolve decodes the document from whichever input was provided, consulting
// the cache first.
func (d documentInput) resolve() (*document.Document, error) {
	if err := options.ValidateSingleInputSource("document",
		options.Source{Name: "file", Set: d.File != ""},
		options.Source{Name: "content", Set: d.Content != ""},
	); err != nil {
		return nil, err
	}

	if d.Content != "" && int64(len(d.Content)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("inline content size %d bytes exceeds maximum %d bytes; use file input instead, or set JSONAPIKIT_MAX_INLINE_SIZE to increase",
			len(d.Content), cfg.MaxInlineSize)
	}

	var key string
	ttl := cfg.CacheContentTTL
	if cfg.CacheEnabled {
		key = d.cacheKey()
		if d.File != "" {
			ttl = cfg.CacheFileTTL
		}
	}
	if key != "" {
		if cached := docCache.get(key); cached != nil {
			return cached, nil
		}
	}

	opts := []document.Option{document.WithMaxSize(cfg.MaxDocumentSize)}
	if d.File != "" {
		opts = append(opts, document.WithFilePath(d.File))
	} else {
		opts = append(opts, document.WithReader(strings.NewReader(d.Content)), document.WithSourceName("<inline>"))
	}

	doc, err := document.ParseWithOptions(opts...)
	if err != nil {
		return nil, err
	}

	if key != "" {
		docCache.putWithTTL(key, doc, ttl)
	}
	return doc, nil
}
