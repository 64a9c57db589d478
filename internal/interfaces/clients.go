package interfaces

import (
	"context"

	"github.com/bobmcallan/myxview/internal/models"
)

// PredictClient consumes the external price-prediction service. A missing
// model, non-success response, or malformed body yields an empty slice and
// no error: prediction data is best-effort by contract.
type PredictClient interface {
	GetPredictions(ctx context.Context, ticker string) ([]models.PredictionPoint, error)
}
