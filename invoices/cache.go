package invoices

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/greenacres/invoicing/models"
)

// ListCache holds rendered invoice list pages between mutations. A mutation
// flushes the whole cache so the next list read hits the store.
type ListCache interface {
	Get(key string) ([]models.Invoice, bool)
	Set(key string, invoices []models.Invoice)
	Invalidate()
}

type listCache struct {
	c *gocache.Cache
}

// NewListCache returns a ListCache with the given entry lifetime.
func NewListCache(ttl time.Duration) ListCache {
	return &listCache{c: gocache.New(ttl, 2*ttl)}
}

func (l *listCache) Get(key string) ([]models.Invoice, bool) {
	v, ok := l.c.Get(key)
	if !ok {
		return nil, false
	}
	return v.([]models.Invoice), true
}

func (l *listCache) Set(key string, invoices []models.Invoice) {
	l.c.SetDefault(key, invoices)
}

func (l *listCache) Invalidate() {
	l.c.Flush()
}
