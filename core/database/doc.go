// Package database handles the read-only connection to the fortune entry store.
//
// It wraps GORM to open either a sqlite file (through the pure-Go modernc.org/sqlite
// driver, in read-only URI mode) or a MySQL DSN, based on the application's configuration.
//
// # Verify
//
// Verify confirms the sqlite file exists before anything binds a listener. A missing
// file is a fatal startup condition reported as ErrDatabaseMissing.
//
// # Usage
//
//	if err := cfg.Database.Verify(); err != nil {
//	    log.Fatal(err)
//	}
//	db, err := database.Connect(cfg.Database)
package database
