package constants

// Redis key formats
const (
	// Spatial index: list of trip ids per geohash prefix
	KeyGeoTrips = "geo:trips:%s" // Format: geo:trips:{geohash_prefix}
)

// Default delivery channel for trip events, shared by every messaging driver
const DefaultTripChannel = "trip_updates"

// Rate limiting
const KeyRateLimit = "rate:limit:%s" // Format: rate:limit:{client_ip}
