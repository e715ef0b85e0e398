//go:build unit

package repository_test

import (
	"context"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"cancha-client/internal/domain/availability"
	"cancha-client/internal/domain/venue"
	"cancha-client/internal/gateway"
	"cancha-client/internal/infra"
	"cancha-client/internal/infra/repository"
	"cancha-client/tests/common/servicetest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newVenueRepo(t *testing.T, baseURL string) *repository.VenueRepository {
	t.Helper()
	client := gateway.NewClient(&http.Client{Timeout: 2 * time.Second}, slog.Default())
	return repository.NewVenueRepository(gateway.NewVenuesAPI(client, baseURL))
}

func newAvailabilityRepo(t *testing.T, baseURL string) *repository.AvailabilityRepository {
	t.Helper()
	client := gateway.NewClient(&http.Client{Timeout: 2 * time.Second}, slog.Default())
	return repository.NewAvailabilityRepository(gateway.NewAvailabilityAPI(client, baseURL))
}

func venueDTO() gin.H {
	return gin.H{
		"id":            3,
		"nombre":        "Cancha Central",
		"tipo":          "Fútbol",
		"precioPorHora": 50.0,
		"direccion":     "Av. Siempre Viva 742",
		"ciudad":        "Córdoba",
		"activa":        true,
	}
}

func TestVenueListActive(t *testing.T) {
	svc := servicetest.New(t)
	svc.RespondJSON(http.MethodGet, "/api/canchas/activas", http.StatusOK, []any{venueDTO()})

	repo := newVenueRepo(t, svc.URL())
	got, err := repo.ListActive(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].ID)
	assert.Equal(t, venue.SportSoccer, got[0].Sport)
	assert.Equal(t, "Córdoba", got[0].City)
	assert.True(t, got[0].Active)
}

func TestVenueListByTypeEscapesPath(t *testing.T) {
	svc := servicetest.New(t)
	svc.RespondJSON(http.MethodGet, "/api/canchas/tipo/:tipo", http.StatusOK, []any{venueDTO()})

	repo := newVenueRepo(t, svc.URL())
	got, err := repo.ListByType(context.Background(), venue.SportSoccer)

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestVenueGetByIDNotFound(t *testing.T) {
	svc := servicetest.New(t)
	svc.RespondError(http.MethodGet, "/api/canchas/99", http.StatusNotFound, "Cancha no encontrada")

	repo := newVenueRepo(t, svc.URL())
	_, err := repo.GetByID(context.Background(), 99)

	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindHTTP))
	assert.Equal(t, http.StatusNotFound, infra.StatusOf(err))
	assert.Equal(t, "Cancha no encontrada", infra.Message(err, ""))
}

// An unknown sport value survives the mapping as-is rather than failing it.
func TestVenueUnknownSportKept(t *testing.T) {
	svc := servicetest.New(t)
	dto := venueDTO()
	dto["tipo"] = "Pádel"
	svc.RespondJSON(http.MethodGet, "/api/canchas", http.StatusOK, []any{dto})

	repo := newVenueRepo(t, svc.URL())
	got, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, venue.SportType("Pádel"), got[0].Sport)
}

func TestAvailabilitySlotsByVenue(t *testing.T) {
	svc := servicetest.New(t)
	svc.RespondJSON(http.MethodGet, "/api/disponibilidades/cancha/3", http.StatusOK, []any{gin.H{
		"id":          11,
		"canchaId":    3,
		"fechaInicio": "2026-09-12T18:00:00",
		"fechaFin":    "2026-09-12T19:00:00",
		"disponible":  true,
	}})

	repo := newAvailabilityRepo(t, svc.URL())
	got, err := repo.SlotsByVenue(context.Background(), 3)

	require.NoError(t, err)
	want := []availability.Slot{{
		ID:        11,
		VenueID:   3,
		Start:     "2026-09-12T18:00:00",
		End:       "2026-09-12T19:00:00",
		Available: true,
	}}
	assert.Equal(t, want, got)
}

func TestAvailabilityVerify(t *testing.T) {
	svc := servicetest.New(t)
	var seenQuery string
	svc.Engine.GET("/api/disponibilidades/verificar", func(c *gin.Context) {
		seenQuery = c.Request.URL.RawQuery
		c.JSON(http.StatusOK, true)
	})

	repo := newAvailabilityRepo(t, svc.URL())
	available, err := repo.Verify(context.Background(), 3, "2026-09-12T18:00:00", "2026-09-12T19:00:00")

	require.NoError(t, err)
	assert.True(t, available)
	assert.Contains(t, seenQuery, "canchaId=3")
}
