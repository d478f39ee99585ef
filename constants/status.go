package constants

// Roles de usuario
const (
	RoleStaff   = 1
	RoleOwner   = 2
	RoleStudent = 3
)

// User status
const (
	UserStatusActive   = 1
	UserStatusInactive = 0
)

// Booking status
const (
	BookingStatusActive    = "active"
	BookingStatusUpcoming  = "upcoming"
	BookingStatusCompleted = "completed"
	BookingStatusCancelled = "cancelled"
)

// Inquiry type
const (
	InquiryTypeContact         = "contact"
	InquiryTypeReservation     = "reservation"
	InquiryTypePropertyListing = "property_listing"
)

// Room type / bathroom type
const (
	RoomTypePrivate = "private"
	RoomTypeShared  = "shared"

	BathroomPrivate = "private"
	BathroomShared  = "shared"
)

// Periodos escolares: solo existen dos ventanas de inscripción
const (
	SemesterSpring = "primavera" // enero - junio
	SemesterFall   = "otono"     // agosto - diciembre
)

// Locales soportados. fr aparece en algunas páginas del sitio viejo
// pero nunca tuvo columnas propias; cae a en.
const (
	LocaleEs = "es"
	LocaleEn = "en"
)
