package gateway

// Wire DTOs. Field names are exactly what the Spanish-speaking services emit;
// do not rename tags without coordinating a service release.

type UsuarioDTO struct {
	ID                 *int64  `json:"id,omitempty"`
	Email              string  `json:"email"`
	Password           string  `json:"password,omitempty"`
	Nombre             string  `json:"nombre"`
	Apellido           *string `json:"apellido,omitempty"`
	Telefono           *string `json:"telefono,omitempty"`
	Activo             *bool   `json:"activo,omitempty"`
	Rol                *string `json:"rol,omitempty"`
	FechaCreacion      *string `json:"fechaCreacion,omitempty"`
	FechaActualizacion *string `json:"fechaActualizacion,omitempty"`
	UltimoAcceso       *string `json:"ultimoAcceso,omitempty"`
}

type LoginRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponseDTO: token is optional; older service builds answer without
// one, and admin-scoped calls fail locally until a token-bearing login.
type LoginResponseDTO struct {
	Mensaje string     `json:"mensaje"`
	Usuario UsuarioDTO `json:"usuario"`
	Token   string     `json:"token,omitempty"`
}

type CanchaDTO struct {
	ID                 *int64  `json:"id,omitempty"`
	Nombre             string  `json:"nombre"`
	Descripcion        *string `json:"descripcion,omitempty"`
	Tipo               string  `json:"tipo"`
	PrecioPorHora      float64 `json:"precioPorHora"`
	Direccion          string  `json:"direccion"`
	Ciudad             *string `json:"ciudad,omitempty"`
	Activa             *bool   `json:"activa,omitempty"`
	FechaCreacion      *string `json:"fechaCreacion,omitempty"`
	FechaActualizacion *string `json:"fechaActualizacion,omitempty"`
}

type DisponibilidadDTO struct {
	ID                 *int64  `json:"id,omitempty"`
	CanchaID           int64   `json:"canchaId"`
	FechaInicio        string  `json:"fechaInicio"`
	FechaFin           string  `json:"fechaFin"`
	Disponible         *bool   `json:"disponible,omitempty"`
	MotivoNoDisponible *string `json:"motivoNoDisponible,omitempty"`
	FechaCreacion      *string `json:"fechaCreacion,omitempty"`
	FechaActualizacion *string `json:"fechaActualizacion,omitempty"`
}

type ReservaDTO struct {
	ID                 *int64  `json:"id,omitempty"`
	UsuarioID          int64   `json:"usuarioId"`
	CanchaID           int64   `json:"canchaId"`
	FechaInicio        string  `json:"fechaInicio"`
	FechaFin           string  `json:"fechaFin"`
	PrecioTotal        float64 `json:"precioTotal"`
	Estado             *string `json:"estado,omitempty"`
	Observaciones      *string `json:"observaciones,omitempty"`
	FechaCreacion      *string `json:"fechaCreacion,omitempty"`
	FechaActualizacion *string `json:"fechaActualizacion,omitempty"`
}

// CrearReservaDTO is the minimal create body; the service assigns id, status
// (PENDIENTE) and audit timestamps.
type CrearReservaDTO struct {
	UsuarioID     int64   `json:"usuarioId"`
	CanchaID      int64   `json:"canchaId"`
	FechaInicio   string  `json:"fechaInicio"`
	FechaFin      string  `json:"fechaFin"`
	PrecioTotal   float64 `json:"precioTotal"`
	Observaciones *string `json:"observaciones,omitempty"`
}
