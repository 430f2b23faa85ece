//go:build !cgo_sqlite

package wordfile

import (
	_ "modernc.org/sqlite"
)

const driverName = "sqlite"
