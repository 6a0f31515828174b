package shopping

import "errors"

// ErrNoStores is returned when a cheapest-store query runs with zero stores
// registered. No result is synthesized in that case.
var ErrNoStores = errors.New("no stores registered")
