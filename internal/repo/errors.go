package repo

import "errors"

// ErrStorage wraps every failure of the underlying database: unreachable,
// constraint violations, or a write that returned no row.
var ErrStorage = errors.New("repo: storage failure")
