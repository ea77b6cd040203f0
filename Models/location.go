package Models

import "gorm.io/gorm"

// Location is a row of the PostGIS locations table. The geometry column is a
// WGS84 point (SRID 4326); coordinates are extracted with ST_X/ST_Y on read so
// no geometry parsing happens in Go.
type Location struct {
	ID   uint    `json:"id"`
	Name *string `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

func CreateLocation(db *gorm.DB, name *string, lat, lon float64) (Location, error) {
	location := Location{Name: name, Lat: lat, Lon: lon}
	err := db.Raw(
		"INSERT INTO locations (name, geom) VALUES (?, ST_SetSRID(ST_MakePoint(?, ?), 4326)) RETURNING id",
		name, lon, lat,
	).Scan(&location.ID).Error
	return location, err
}

func ListLocations(db *gorm.DB) ([]Location, error) {
	locations := []Location{}
	err := db.Raw(
		"SELECT id, name, ST_Y(geom) AS lat, ST_X(geom) AS lon FROM locations ORDER BY id",
	).Scan(&locations).Error
	return locations, err
}
