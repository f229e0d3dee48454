package repository

import "errors"

// ErrNoRowsAffected signals that an update or delete matched no rows.
// Handlers translate it to a 404.
var ErrNoRowsAffected = errors.New("no rows affected")
