package interfaces

import "time"

// IClock supplies the current time. Injected so warranty and abandonment
// date math is deterministic under test.

type IClock interface {
	Now() time.Time
}

// IIDGenerator allocates opaque unique ids for new entities.

type IIDGenerator interface {
	NewID() string
}
