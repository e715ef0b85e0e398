package repository

import (
	"cancha-client/internal/domain/availability"
	"cancha-client/internal/domain/reservation"
	"cancha-client/internal/domain/user"
	"cancha-client/internal/domain/venue"
	"cancha-client/internal/gateway"
)

// Wire field names are Spanish, domain names are not, so the mapping is
// spelled out instead of reflected.

func strOr(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func boolOr(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}
	return *p
}

func idOr(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}

func userFromDTO(dto gateway.UsuarioDTO) user.User {
	return user.User{
		ID:        idOr(dto.ID),
		Email:     dto.Email,
		Name:      dto.Nombre,
		Surname:   strOr(dto.Apellido),
		Phone:     strOr(dto.Telefono),
		Active:    boolOr(dto.Activo, true),
		Role:      user.RoleOrMember(strOr(dto.Rol)),
		CreatedAt: strOr(dto.FechaCreacion),
		UpdatedAt: strOr(dto.FechaActualizacion),
	}
}

func usersFromDTO(dtos []gateway.UsuarioDTO) []user.User {
	users := make([]user.User, 0, len(dtos))
	for _, dto := range dtos {
		users = append(users, userFromDTO(dto))
	}
	return users
}

func venueFromDTO(dto gateway.CanchaDTO) venue.Venue {
	sport, err := venue.NewSportType(dto.Tipo)
	if err != nil {
		sport = venue.SportType(dto.Tipo)
	}
	return venue.Venue{
		ID:           idOr(dto.ID),
		Name:         dto.Nombre,
		Description:  strOr(dto.Descripcion),
		Sport:        sport,
		PricePerHour: dto.PrecioPorHora,
		Address:      dto.Direccion,
		City:         strOr(dto.Ciudad),
		Active:       boolOr(dto.Activa, true),
		CreatedAt:    strOr(dto.FechaCreacion),
		UpdatedAt:    strOr(dto.FechaActualizacion),
	}
}

func venuesFromDTO(dtos []gateway.CanchaDTO) []venue.Venue {
	venues := make([]venue.Venue, 0, len(dtos))
	for _, dto := range dtos {
		venues = append(venues, venueFromDTO(dto))
	}
	return venues
}

func slotFromDTO(dto gateway.DisponibilidadDTO) availability.Slot {
	return availability.Slot{
		ID:                idOr(dto.ID),
		VenueID:           dto.CanchaID,
		Start:             dto.FechaInicio,
		End:               dto.FechaFin,
		Available:         boolOr(dto.Disponible, true),
		UnavailableReason: strOr(dto.MotivoNoDisponible),
		CreatedAt:         strOr(dto.FechaCreacion),
		UpdatedAt:         strOr(dto.FechaActualizacion),
	}
}

func slotsFromDTO(dtos []gateway.DisponibilidadDTO) []availability.Slot {
	slots := make([]availability.Slot, 0, len(dtos))
	for _, dto := range dtos {
		slots = append(slots, slotFromDTO(dto))
	}
	return slots
}

func reservationFromDTO(dto gateway.ReservaDTO) reservation.Reservation {
	status := reservation.Status(strOr(dto.Estado))
	if !status.IsValid() {
		status = reservation.StatusPending
	}
	return reservation.Reservation{
		ID:         idOr(dto.ID),
		UserID:     dto.UsuarioID,
		VenueID:    dto.CanchaID,
		Start:      dto.FechaInicio,
		End:        dto.FechaFin,
		TotalPrice: dto.PrecioTotal,
		Status:     status,
		Notes:      strOr(dto.Observaciones),
		CreatedAt:  strOr(dto.FechaCreacion),
		UpdatedAt:  strOr(dto.FechaActualizacion),
	}
}

func reservationsFromDTO(dtos []gateway.ReservaDTO) []reservation.Reservation {
	reservations := make([]reservation.Reservation, 0, len(dtos))
	for _, dto := range dtos {
		reservations = append(reservations, reservationFromDTO(dto))
	}
	return reservations
}
