package memory

import (
	"go.uber.org/fx"

	"github.com/bluedot/paylink/internal/domain/repository"
)

// Module wires the in-memory document store into the fx container.
var Module = fx.Options(
	fx.Provide(New),
	fx.Provide(func(s *Store) repository.DocumentRepository { return s }),
)
