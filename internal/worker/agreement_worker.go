package worker

import (
	"context"
	"time"

	"github.com/pctowa/pctowa-backend/internal/service"
	"github.com/rs/zerolog"
)

// AgreementCheckInterval is how often expiring agreements are scanned.
const AgreementCheckInterval = 24 * time.Hour

// AgreementWorker periodically scans for company agreements nearing
// expiry and logs a warning for each, so operators can renew them
// before shifts lose their legal basis.
type AgreementWorker struct {
	companies *service.CompanyService
	warnAhead time.Duration
	log       zerolog.Logger
}

// NewAgreementWorker creates a new AgreementWorker.
func NewAgreementWorker(companies *service.CompanyService, warnAhead time.Duration, log zerolog.Logger) *AgreementWorker {
	return &AgreementWorker{
		companies: companies,
		warnAhead: warnAhead,
		log:       log.With().Str("component", "agreement_worker").Logger(),
	}
}

// Start runs the scan loop until the context is cancelled. The first
// scan happens immediately.
func (w *AgreementWorker) Start(ctx context.Context) {
	w.log.Info().Dur("warn_ahead", w.warnAhead).Msg("AgreementWorker started")

	ticker := time.NewTicker(AgreementCheckInterval)
	defer ticker.Stop()

	w.scan(ctx)

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("AgreementWorker stopped")
			return
		case <-ticker.C:
			w.scan(ctx)
		}
	}
}

func (w *AgreementWorker) scan(ctx context.Context) {
	companies, err := w.companies.ListExpiringAgreements(ctx, w.warnAhead)
	if err != nil {
		if ctx.Err() == nil {
			w.log.Error().Err(err).Msg("expiring agreement scan failed")
		}
		return
	}

	for _, co := range companies {
		w.log.Warn().
			Int("company_id", co.ID).
			Str("business_name", co.BusinessName).
			Time("agreement_expiry", *co.AgreementExpiry).
			Msg("company agreement expires soon")
	}
}
