// Package registry cung cấp một registry generic, an toàn với goroutine,
// dùng để lưu trữ và truy xuất các tài nguyên dùng chung theo tên
// (ví dụ: các *mongo.Collection được đăng ký lúc khởi động).
package registry

import (
	"fmt"
	"sync"
)

// Registry là một kho lưu trữ key-value generic, an toàn với goroutine.
//
// Ví dụ:
//
//	regs := registry.NewRegistry[*mongo.Collection]()
//	regs.Register("categories", collection)
//	col, ok := regs.Get("categories")
type Registry[T any] struct {
	mu    sync.RWMutex
	items map[string]T
}

// NewRegistry tạo mới một Registry rỗng.
func NewRegistry[T any]() *Registry[T] {
	return &Registry[T]{
		items: make(map[string]T),
	}
}

// Register đăng ký một item với tên cho trước.
// Trả về lỗi nếu tên đã tồn tại trong registry.
func (r *Registry[T]) Register(name string, item T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[name]; exists {
		return fmt.Errorf("item với tên '%s' đã tồn tại trong registry", name)
	}
	r.items[name] = item
	return nil
}

// Get trả về item theo tên và một bool cho biết item có tồn tại không.
func (r *Registry[T]) Get(name string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, exists := r.items[name]
	return item, exists
}

// GetOrCreate trả về item theo tên; nếu chưa tồn tại thì gọi factory để tạo,
// đăng ký và trả về item mới.
func (r *Registry[T]) GetOrCreate(name string, factory func() T) T {
	r.mu.Lock()
	defer r.mu.Unlock()

	if item, exists := r.items[name]; exists {
		return item
	}
	item := factory()
	r.items[name] = item
	return item
}

// Update ghi đè item theo tên (tạo mới nếu chưa tồn tại).
func (r *Registry[T]) Update(name string, item T) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[name] = item
}

// Names trả về danh sách tên của tất cả item đã đăng ký.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.items))
	for name := range r.items {
		names = append(names, name)
	}
	return names
}

// Clear xóa một item khỏi registry.
func (r *Registry[T]) Clear(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.items, name)
}

// ClearAll xóa toàn bộ item trong registry.
func (r *Registry[T]) ClearAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = make(map[string]T)
}
