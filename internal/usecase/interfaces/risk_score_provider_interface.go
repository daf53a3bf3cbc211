package interfaces

import (
	"context"

	"github.com/raisilvacor/clinicadomobile/internal/domain/entities"
)

// IRiskScoreProvider is the external anti-fraud scoring service. Its
// algorithm is out of scope; only the score contract is consumed here.

type IRiskScoreProvider interface {
	ScoreFor(ctx context.Context, cpf string) (entities.RiskScore, error)
}
