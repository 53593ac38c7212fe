package store

import "github.com/MKhiriev/go-flix/internal/config"

func configStorage(driver, dsn string) config.Storage {
	return config.Storage{DB: config.DB{Driver: driver, DSN: dsn}}
}
