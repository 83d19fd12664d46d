package sales

import "errors"

// ErrNoRecord is returned when the last sale is requested before any sale was recorded.
var ErrNoRecord = errors.New("no transaction available")
