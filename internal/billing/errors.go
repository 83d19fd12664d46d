package billing

import "errors"

// ErrNoRecord is returned when the last bill is requested before any bill was created.
var ErrNoRecord = errors.New("no bill available")
