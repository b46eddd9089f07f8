package stream

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"perpusku_backend/internals/features/fines/fines/dto"
)

func fineFor(patronID uuid.UUID) *dto.FineResponse {
	return &dto.FineResponse{
		FineID:   uuid.New(),
		PatronID: patronID,
		Amount:   15.0,
	}
}

func TestHubPublishHanyaKePatronPemilik(t *testing.T) {
	hub := NewHub()
	patronA := uuid.New()
	patronB := uuid.New()

	subA := hub.Subscribe(patronA)
	subB := hub.Subscribe(patronB)
	defer hub.Unsubscribe(subA)
	defer hub.Unsubscribe(subB)

	fine := fineFor(patronA)
	hub.Publish(fine)

	select {
	case got := <-subA.Events:
		assert.Equal(t, fine.FineID, got.FineID)
	default:
		t.Fatal("subscriber pemilik tidak menerima event")
	}

	select {
	case <-subB.Events:
		t.Fatal("patron lain ikut menerima event")
	default:
	}
}

func TestHubFanOutSemuaKoneksiPatron(t *testing.T) {
	hub := NewHub()
	patronID := uuid.New()

	sub1 := hub.Subscribe(patronID)
	sub2 := hub.Subscribe(patronID)
	defer hub.Unsubscribe(sub1)
	defer hub.Unsubscribe(sub2)

	hub.Publish(fineFor(patronID))

	require.Len(t, sub1.Events, 1)
	require.Len(t, sub2.Events, 1)
}

func TestHubBufferPenuhTidakMemblokir(t *testing.T) {
	hub := NewHub()
	patronID := uuid.New()

	sub := hub.Subscribe(patronID)
	defer hub.Unsubscribe(sub)

	// isi sampai melewati kapasitas; Publish tidak boleh blocking
	for i := 0; i < subscriberBuffer+5; i++ {
		hub.Publish(fineFor(patronID))
	}

	assert.Len(t, sub.Events, subscriberBuffer)
}

func TestHubUnsubscribe(t *testing.T) {
	hub := NewHub()
	patronID := uuid.New()

	sub := hub.Subscribe(patronID)
	assert.Equal(t, 1, hub.SubscriberCount(patronID))

	hub.Unsubscribe(sub)
	assert.Equal(t, 0, hub.SubscriberCount(patronID))

	// channel tertutup: receive tidak blocking
	_, ok := <-sub.Events
	assert.False(t, ok)

	// unsubscribe dua kali aman
	hub.Unsubscribe(sub)

	// publish setelah semua lepas tidak panik
	hub.Publish(fineFor(patronID))
}
