package stream

import (
	"log"
	"sync"

	"github.com/google/uuid"

	"perpusku_backend/internals/features/fines/fines/dto"
)

const subscriberBuffer = 16

// Hub mem-fan-out event denda baru ke subscriber milik patron terkait.
// Delivery at-most-once: subscriber yang buffernya penuh di-skip, bukan
// diblokir, supaya pembuat denda tidak ikut macet.
type Hub struct {
	mu   sync.RWMutex
	subs map[uuid.UUID]map[*Subscriber]struct{}
}

type Subscriber struct {
	PatronID uuid.UUID
	Events   chan dto.FineResponse
}

func NewHub() *Hub {
	return &Hub{subs: make(map[uuid.UUID]map[*Subscriber]struct{})}
}

// Subscribe mendaftarkan satu koneksi untuk patron tertentu.
func (h *Hub) Subscribe(patronID uuid.UUID) *Subscriber {
	sub := &Subscriber{
		PatronID: patronID,
		Events:   make(chan dto.FineResponse, subscriberBuffer),
	}

	h.mu.Lock()
	if h.subs[patronID] == nil {
		h.subs[patronID] = make(map[*Subscriber]struct{})
	}
	h.subs[patronID][sub] = struct{}{}
	h.mu.Unlock()

	return sub
}

// Unsubscribe melepas koneksi dan menutup channel-nya.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	if set, ok := h.subs[sub.PatronID]; ok {
		if _, ok := set[sub]; ok {
			delete(set, sub)
			close(sub.Events)
		}
		if len(set) == 0 {
			delete(h.subs, sub.PatronID)
		}
	}
	h.mu.Unlock()
}

// Publish mengirim event ke semua subscriber patron pemilik denda.
func (h *Hub) Publish(fine *dto.FineResponse) {
	if fine == nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subs[fine.PatronID] {
		select {
		case sub.Events <- *fine:
		default:
			log.Printf("⚠️ [WARNING] Buffer subscriber patron %s penuh, event denda %s di-skip", fine.PatronID, fine.FineID)
		}
	}
}

// SubscriberCount dipakai untuk monitoring/testing.
func (h *Hub) SubscriberCount(patronID uuid.UUID) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[patronID])
}
