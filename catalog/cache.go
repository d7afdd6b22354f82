package catalog

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"

	"shadequote/bom"
)

// CachedProvider keeps recent catalog lookups in memory. Misses are not
// cached. Call Purge whenever catalog items change.
type CachedProvider struct {
	next   bom.CatalogProvider
	byType *lru.Cache[string, []bom.CatalogItem]
	byID   *lru.Cache[string, bom.CatalogItem]
}

func NewCachedProvider(next bom.CatalogProvider, size int) (*CachedProvider, error) {
	byType, err := lru.New[string, []bom.CatalogItem](size)
	if err != nil {
		return nil, err
	}
	byID, err := lru.New[string, bom.CatalogItem](size)
	if err != nil {
		return nil, err
	}
	return &CachedProvider{next: next, byType: byType, byID: byID}, nil
}

func (c *CachedProvider) FindItemsByType(ctx context.Context, productTypeID string) ([]bom.CatalogItem, error) {
	if cached, ok := c.byType.Get(productTypeID); ok {
		return cached, nil
	}
	items, err := c.next.FindItemsByType(ctx, productTypeID)
	if err != nil {
		return nil, err
	}
	c.byType.Add(productTypeID, items)
	return items, nil
}

func (c *CachedProvider) FindItemByID(ctx context.Context, id string) (*bom.CatalogItem, error) {
	if cached, ok := c.byID.Get(id); ok {
		return &cached, nil
	}
	item, err := c.next.FindItemByID(ctx, id)
	if err != nil || item == nil {
		return item, err
	}
	c.byID.Add(id, *item)
	return item, nil
}

// Purge drops every cached entry.
func (c *CachedProvider) Purge() {
	c.byType.Purge()
	c.byID.Purge()
}
