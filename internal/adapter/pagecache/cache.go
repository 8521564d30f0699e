// Package pagecache serves pre-rendered pages with incremental regeneration:
// pages are rendered ahead of time, served from a store, and rebuilt in the
// background once their regeneration window has passed.
package pagecache

import (
	"context"
	"log"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// Generator renders one page. It reaches the payment provider, so it may be
// slow and may fail; failures are never stored.
type Generator func(ctx context.Context) ([]byte, error)

type Cache struct {
	store             Store
	group             singleflight.Group
	regenerateTimeout time.Duration
	now               func() time.Time
	background        sync.WaitGroup
}

func New(store Store, regenerateTimeout time.Duration) *Cache {
	return &Cache{store: store, regenerateTimeout: regenerateTimeout, now: time.Now}
}

// Get returns the page stored under key.
//
//   - missing: the page is generated while the caller waits; concurrent
//     callers for the same key share one generation.
//   - older than window: the stale page is returned and one background
//     regeneration is started; if it fails the stale page stays.
func (c *Cache) Get(ctx context.Context, key string, window time.Duration, generate Generator) ([]byte, error) {
	page, ok, err := c.store.Get(ctx, key)
	if err != nil {
		log.Printf("[pagecache] store get failed key=%s err=%v", key, err)
		ok = false
	}
	if ok {
		if age := c.now().Sub(page.GeneratedAt); age >= window {
			log.Printf("[pagecache] stale page served key=%s age=%s", key, age.Round(time.Second))
			c.revalidate(key, generate)
		}
		return page.Body, nil
	}

	log.Printf("[pagecache] miss; generating while client waits key=%s", key)
	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		return c.render(key, generate)
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

// Prerender generates and stores a page unconditionally. Startup uses it to
// build the pages that must exist before the first request.
func (c *Cache) Prerender(ctx context.Context, key string, generate Generator) error {
	body, err := generate(ctx)
	if err != nil {
		log.Printf("[pagecache] prerender failed key=%s err=%v", key, err)
		return err
	}
	if err := c.store.Put(ctx, key, Page{Body: body, GeneratedAt: c.now()}); err != nil {
		log.Printf("[pagecache] prerender store failed key=%s err=%v", key, err)
		return err
	}
	log.Printf("[pagecache] prerendered key=%s bytes=%d", key, len(body))
	return nil
}

// wait blocks until background regenerations started so far have finished.
func (c *Cache) wait() {
	c.background.Wait()
}

// The regeneration is counted before it is started, so wait never misses one
// that is already running.
func (c *Cache) revalidate(key string, generate Generator) {
	c.background.Add(1)
	ch := c.group.DoChan(key, func() (interface{}, error) {
		return c.render(key, generate)
	})
	go func() {
		defer c.background.Done()
		if res := <-ch; res.Err != nil {
			log.Printf("[pagecache] regeneration failed; keeping stale page key=%s err=%v", key, res.Err)
		}
	}()
}

// render runs detached from any single request so a disconnecting client
// does not abort a generation other clients are waiting on.
func (c *Cache) render(key string, generate Generator) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.regenerateTimeout)
	defer cancel()

	started := c.now()
	body, err := generate(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.store.Put(ctx, key, Page{Body: body, GeneratedAt: c.now()}); err != nil {
		log.Printf("[pagecache] store put failed key=%s err=%v", key, err)
	}
	log.Printf("[pagecache] generated key=%s bytes=%d took=%s", key, len(body), c.now().Sub(started))
	return body, nil
}
