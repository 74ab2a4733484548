package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuctuc-telu/shuttle-tracker/internal/models"
	"github.com/tuctuc-telu/shuttle-tracker/internal/store"
)

func newTestRepo(t *testing.T) *DocumentRepo {
	t.Helper()
	return NewDocumentRepo(store.New(&store.MemoryBackend{}))
}

func TestDocumentRepo_CreateAndFindUser(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.CreateUser(ctx, "Alice", "alice", "secret1", "")
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	user, err := repo.FindUserByNIM(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, models.RoleStudent, user.Role)
	assert.Equal(t, "Fakultas Informatika", user.Faculty, "empty faculty gets the default")
	assert.NotZero(t, user.CreatedAt)

	assert.True(t, repo.VerifyPassword("secret1", user.PasswordHash))
	assert.False(t, repo.VerifyPassword("wrong", user.PasswordHash))
}

func TestDocumentRepo_FindUserByNIM_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.FindUserByNIM(context.Background(), "bob")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDocumentRepo_CreateUserDoesNotDedupe(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.CreateUser(ctx, "Alice", "alice", "secret1", "")
	require.NoError(t, err)

	// uniqueness is the boundary layer's job, not the store's
	id, err := repo.CreateUser(ctx, "Alice Again", "alice", "secret2", "")
	require.NoError(t, err)
	assert.Equal(t, 2, id)
}

func TestDocumentRepo_ListSchedules(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	all, err := repo.ListSchedules(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 10)

	filtered, err := repo.ListSchedulesByHalte(ctx, "Gedung Telkom")
	require.NoError(t, err)
	require.NotEmpty(t, filtered)
	for _, s := range filtered {
		assert.Equal(t, "Gedung Telkom", s.Halte)
	}

	none, err := repo.ListSchedulesByHalte(ctx, "Nowhere")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDocumentRepo_UpdateVehiclePosition(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	err := repo.UpdateVehiclePosition(ctx, 2, -6.98, 107.64, "Sukapura")
	require.NoError(t, err)

	vehicles, err := repo.ListVehicles(ctx)
	require.NoError(t, err)
	require.Len(t, vehicles, 3)
	assert.Equal(t, -6.98, vehicles[1].Lat)
	assert.Equal(t, 107.64, vehicles[1].Lng)
	assert.Equal(t, "Sukapura", vehicles[1].CurrentHalte)
}

func TestDocumentRepo_UpdateVehiclePosition_UnknownID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	before, err := repo.ListVehicles(ctx)
	require.NoError(t, err)

	err = repo.UpdateVehiclePosition(ctx, 42, 0, 0, "Nowhere")
	assert.NoError(t, err, "unknown id must not raise")

	after, err := repo.ListVehicles(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after, "unknown id must leave the document unchanged")
}

func TestDocumentRepo_CreateTripAndList(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.CreateTrip(ctx, 2, "TucTuc #01", "StopA", "StopB")
	require.NoError(t, err)
	assert.Equal(t, 1, id)

	trips, err := repo.ListTripsByUser(ctx, 2)
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.Equal(t, "StopA", trips[0].HalteFrom)
	assert.Equal(t, "StopB", trips[0].HalteTo)
	assert.Equal(t, "TucTuc #01", trips[0].Vehicle)
	assert.NotZero(t, trips[0].TripDate)
}

func TestDocumentRepo_ListTripsByUser_Ordering(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first, err := repo.CreateTrip(ctx, 1, "TucTuc #01", "A", "B")
	require.NoError(t, err)
	_, err = repo.CreateTrip(ctx, 9, "TucTuc #02", "B", "C")
	require.NoError(t, err)
	second, err := repo.CreateTrip(ctx, 1, "TucTuc #01", "B", "C")
	require.NoError(t, err)
	third, err := repo.CreateTrip(ctx, 1, "TucTuc #03", "C", "D")
	require.NoError(t, err)

	trips, err := repo.ListTripsByUser(ctx, 1)
	require.NoError(t, err)
	require.Len(t, trips, 3, "only the requested user's trips")

	// reverse insertion order, independent of timestamps
	assert.Equal(t, third, trips[0].ID)
	assert.Equal(t, second, trips[1].ID)
	assert.Equal(t, first, trips[2].ID)
}

func TestDocumentRepo_Stats(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.CreateUser(ctx, "Alice", "alice", "secret1", "")
	require.NoError(t, err)
	_, err = repo.CreateUser(ctx, "Bob", "bob", "secret2", "")
	require.NoError(t, err)
	_, err = repo.CreateTrip(ctx, 1, "TucTuc #01", "A", "B")
	require.NoError(t, err)

	// an offline vehicle must not count as active
	require.NoError(t, repo.Store.Update(func(doc *store.Document) {
		doc.Vehicles[2].Status = "offline"
	}))

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalStudents)
	assert.Equal(t, 1, stats.TotalTrips)
	assert.Equal(t, 2, stats.ActiveVehicles)
}

func TestDocumentRepo_StatsExcludesAdmins(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Store.EnsureAdmins(store.DefaultAdmins))
	_, err := repo.CreateUser(ctx, "Alice", "alice", "secret1", "")
	require.NoError(t, err)

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalStudents)
}
