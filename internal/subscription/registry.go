package subscription

import (
	"sort"
	"sync"
)

// Registry хранит чаты, подписанные на уведомления об уроках.
// Живёт в памяти процесса, после перезапуска список пустой.
type Registry struct {
	mu    sync.RWMutex
	chats map[int64]struct{} // chatID -> подписан
}

// NewRegistry создаёт пустой реестр подписчиков
func NewRegistry() *Registry {
	return &Registry{
		chats: make(map[int64]struct{}),
	}
}

// Add подписывает чат. Возвращает false, если чат уже был подписан.
func (r *Registry) Add(chatID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.chats[chatID]; exists {
		return false
	}
	r.chats[chatID] = struct{}{}
	return true
}

// Remove отписывает чат. Возвращает false, если чат не был подписан.
func (r *Registry) Remove(chatID int64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.chats[chatID]; !exists {
		return false
	}
	delete(r.chats, chatID)
	return true
}

// Contains проверяет подписку чата
func (r *Registry) Contains(chatID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.chats[chatID]
	return exists
}

// Len возвращает количество подписчиков
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.chats)
}

// Snapshot возвращает копию списка подписчиков на текущий момент
func (r *Registry) Snapshot() []int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Возвращаем копию, чтобы рассылка не зависела от Add/Remove
	chats := make([]int64, 0, len(r.chats))
	for chatID := range r.chats {
		chats = append(chats, chatID)
	}
	sort.Slice(chats, func(i, j int) bool { return chats[i] < chats[j] })
	return chats
}
