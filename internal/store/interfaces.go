package store

import (
	"context"

	"github.com/MKhiriev/go-pad-config/internal/config"
)

// DirectoryPreparer makes sure the on-disk locations named in the
// configuration can be used by the server.
type DirectoryPreparer interface {
	// Prepare creates every missing directory and checks that each one is
	// a writable directory. All failures are reported together.
	Prepare(ctx context.Context, dirs ...config.NamedPath) error
}
