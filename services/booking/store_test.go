package booking

import (
	"context"
	"testing"
	"time"

	"barberbook/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, ttl time.Duration) (SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisSessionStore(client, ttl), mr
}

func TestSessionStoreRoundTrip(t *testing.T) {
	store, _ := newTestStore(t, time.Minute)
	ctx := context.Background()

	session := &models.BookingSession{
		SessionID: "sess-1",
		Step:      models.StepSelectDateTime,
		Service:   &models.Service{ID: "service2", Name: "Serviço 2", Duration: models.DurationOneHour, Price: "R$ 50"},
		Staff:     &models.Staff{ID: "barber1", Name: "Barbeiro 1"},
		Date:      "2026-10-05",
		Start:     "10:00",
	}
	require.NoError(t, store.Save(ctx, session))

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, session, got)
}

func TestSessionStoreMissingSession(t *testing.T) {
	store, _ := newTestStore(t, time.Minute)
	_, err := store.Get(context.Background(), "never-created")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestSessionStoreExpiry(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)
	ctx := context.Background()

	session := &models.BookingSession{SessionID: "sess-1", Step: models.StepSelectService}
	require.NoError(t, store.Save(ctx, session))

	mr.FastForward(2 * time.Minute)

	_, err := store.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrSessionNotFound, "an expired draft reads as never created")
}

func TestSessionStoreSaveRefreshesTTL(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)
	ctx := context.Background()

	session := &models.BookingSession{SessionID: "sess-1", Step: models.StepSelectService}
	require.NoError(t, store.Save(ctx, session))

	mr.FastForward(40 * time.Second)
	session.Step = models.StepSelectStaff
	require.NoError(t, store.Save(ctx, session))

	mr.FastForward(40 * time.Second)
	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err, "each save restarts the expiry clock")
	assert.Equal(t, models.StepSelectStaff, got.Step)
}

func TestSessionStoreDelete(t *testing.T) {
	store, _ := newTestStore(t, time.Minute)
	ctx := context.Background()

	session := &models.BookingSession{SessionID: "sess-1", Step: models.StepSelectService}
	require.NoError(t, store.Save(ctx, session))
	require.NoError(t, store.Delete(ctx, "sess-1"))

	_, err := store.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// Deleting a missing draft is not an error.
	assert.NoError(t, store.Delete(ctx, "sess-1"))
}
