package constants

// Relational store tables
const (
	TableTimeTrips       = "time_trips"
	TableOriginDestTrips = "orgn_dst_geo_trips"
)

