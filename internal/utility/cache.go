package utility

import (
	"sync"
	"time"
)

// Cache quản lý cache trong bộ nhớ với vòng dọn dẹp định kỳ.
// Dùng cho các kết quả tổng hợp báo cáo theo tháng: toàn bộ cache được xóa
// theo chu kỳ cleanup, từng key có thể bị xóa chủ động khi dữ liệu nguồn thay đổi.
type Cache struct {
	items    map[string]interface{}
	mu       sync.RWMutex
	cleanup  time.Duration
	stopChan chan struct{}
	stopOnce sync.Once
}

// NewCache tạo một instance mới của Cache
func NewCache(cleanup time.Duration) *Cache {
	cache := &Cache{
		items:    make(map[string]interface{}),
		cleanup:  cleanup,
		stopChan: make(chan struct{}),
	}
	go cache.cleanupLoop()
	return cache
}

// Set lưu giá trị vào cache
func (c *Cache) Set(key string, value interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = value
}

// Get lấy giá trị từ cache
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	value, exists := c.items[key]
	return value, exists
}

// Delete xóa một key khỏi cache (dùng khi invalidate theo sự kiện thay đổi dữ liệu)
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Clear xóa toàn bộ cache
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.items {
		delete(c.items, k)
	}
}

// Stop dừng vòng dọn dẹp
func (c *Cache) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopChan)
	})
}

// cleanupLoop dọn dẹp cache định kỳ
func (c *Cache) cleanupLoop() {
	ticker := time.NewTicker(c.cleanup)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.Clear()
		case <-c.stopChan:
			return
		}
	}
}
