package risk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/raisilvacor/clinicadomobile/internal/domain/entities"
	"github.com/raisilvacor/clinicadomobile/internal/usecase/interfaces"
)

var ErrRiskProviderNotConfigured = errors.New("risk score provider not configured")

// HTTPProvider queries the external anti-fraud scoring service. The scoring
// model is the provider's; this client only speaks its contract:
//
//	GET {RISK_SCORE_URL}/score/{cpf} -> {"score": 0.42, "level": "medium", "label": "..."}
//
// Supported env vars:
//   - RISK_SCORE_URL (no default; without it construction fails and the
//     search endpoint simply omits the score)
//   - RISK_SCORE_TIMEOUT_MS (default: 3000)
type HTTPProvider struct {
	baseURL string
	client  *http.Client
}

var _ interfaces.IRiskScoreProvider = (*HTTPProvider)(nil)

func NewHTTPProvider() (*HTTPProvider, error) {
	baseURL := os.Getenv("RISK_SCORE_URL")
	if baseURL == "" {
		return nil, ErrRiskProviderNotConfigured
	}

	timeout := 3000 * time.Millisecond
	if v := os.Getenv("RISK_SCORE_TIMEOUT_MS"); v != "" {
		var ms int
		if _, err := fmt.Sscanf(v, "%d", &ms); err == nil && ms > 0 {
			timeout = time.Duration(ms) * time.Millisecond
		}
	}

	log.Printf("[risk][provider] configured base_url=%s timeout=%s", baseURL, timeout)
	return &HTTPProvider{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

func (p *HTTPProvider) ScoreFor(ctx context.Context, cpf string) (entities.RiskScore, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/score/"+cpf, nil)
	if err != nil {
		return entities.RiskScore{}, err
	}

	resp, err := p.client.Do(req)
	if err != nil {
		log.Printf("[risk][provider] request failed err=%v", err)
		return entities.RiskScore{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[risk][provider] unexpected status=%d", resp.StatusCode)
		return entities.RiskScore{}, fmt.Errorf("risk score provider returned status %d", resp.StatusCode)
	}

	var score entities.RiskScore
	if err := json.NewDecoder(resp.Body).Decode(&score); err != nil {
		return entities.RiskScore{}, err
	}
	return score, nil
}
