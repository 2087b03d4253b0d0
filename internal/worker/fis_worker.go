package worker

// fis_worker.go
// Processes receipt jobs from QueueFis: renders the PDF for a recorded
// payment and, when the customer left an email, chains an email job.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Ovtnc/Pos-System/internal/infra"
	"github.com/Ovtnc/Pos-System/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// FisJobPayload is the job envelope sent to QueueFis.
type FisJobPayload struct {
	OdemeID       string  `json:"odeme_id"`
	CustomerEmail *string `json:"customer_email,omitempty"`
}

type FisWorker struct {
	odemeRepo      repository.OdemeRepository
	dispatcher     *Dispatcher
	pdfStoragePath string
}

func NewFisWorker(odemeRepo repository.OdemeRepository, dispatcher *Dispatcher, pdfStoragePath string) *FisWorker {
	return &FisWorker{
		odemeRepo:      odemeRepo,
		dispatcher:     dispatcher,
		pdfStoragePath: pdfStoragePath,
	}
}

// Process fetches the payment with its order lines, renders the receipt PDF
// and optionally enqueues an email job carrying the attachment.
func (w *FisWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload FisJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("fis_worker: invalid payload")
		return nil // malformed payloads are not retryable
	}

	odemeID, err := uuid.Parse(payload.OdemeID)
	if err != nil {
		log.Error().Str("odeme_id", payload.OdemeID).Msg("fis_worker: invalid odeme_id")
		return nil
	}

	odeme, err := w.odemeRepo.FindByID(ctx, odemeID)
	if err != nil {
		return fmt.Errorf("fis_worker: odeme %s: %w", payload.OdemeID, err)
	}

	pdfPath, err := infra.GenerateFisPDF(odeme, w.pdfStoragePath)
	if err != nil {
		return fmt.Errorf("fis_worker: pdf for %s: %w", odeme.OdemeNo, err)
	}
	log.Info().Str("pdf", pdfPath).Str("odeme_no", odeme.OdemeNo).Msg("fis_worker: receipt generated")

	if payload.CustomerEmail != nil && *payload.CustomerEmail != "" {
		emailJob := EmailJobPayload{
			ToEmail: *payload.CustomerEmail,
			Subject: fmt.Sprintf("Satış Fişi %s", odeme.OdemeNo),
			Body:    fmt.Sprintf("Satış fişiniz ektedir.\nToplam: %s TL", odeme.Tutar.StringFixed(2)),
			PDFPath: pdfPath,
		}
		if err := w.dispatcher.EnqueueEmail(ctx, emailJob); err != nil {
			log.Warn().Err(err).Str("email", *payload.CustomerEmail).Msg("fis_worker: failed to enqueue email")
		}
	}

	return nil
}
