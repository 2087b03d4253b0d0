package worker

// stok_alarm_worker.go
// Processes low-stock jobs from QueueStokAlarm. A movement that leaves an
// item below its minimum enqueues one of these; the worker mails the
// configured alert address.

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
)

// StokAlarmJobPayload is the job envelope sent to QueueStokAlarm.
type StokAlarmJobPayload struct {
	StokID      string `json:"stok_id"`
	UrunAdi     string `json:"urun_adi"`
	MevcutStok  int    `json:"mevcut_stok"`
	MinimumStok int    `json:"minimum_stok"`
	Birim       string `json:"birim"`
}

type StokAlarmWorker struct {
	dispatcher *Dispatcher
	alertEmail string
}

func NewStokAlarmWorker(dispatcher *Dispatcher, alertEmail string) *StokAlarmWorker {
	return &StokAlarmWorker{dispatcher: dispatcher, alertEmail: alertEmail}
}

// Process turns the alarm into an email job. Alerts are disabled when no
// address is configured.
func (w *StokAlarmWorker) Process(ctx context.Context, raw json.RawMessage) error {
	var payload StokAlarmJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("stok_alarm_worker: invalid payload")
		return nil
	}

	if w.alertEmail == "" {
		log.Debug().Str("urun", payload.UrunAdi).Msg("stok_alarm_worker: no alert email configured — skipping")
		return nil
	}

	emailJob := EmailJobPayload{
		ToEmail: w.alertEmail,
		Subject: fmt.Sprintf("Stok Uyarısı: %s", payload.UrunAdi),
		Body: fmt.Sprintf(
			"%s stoğu minimumun altına düştü.\nMevcut: %d %s\nMinimum: %d %s",
			payload.UrunAdi,
			payload.MevcutStok, payload.Birim,
			payload.MinimumStok, payload.Birim,
		),
	}
	if err := w.dispatcher.EnqueueEmail(ctx, emailJob); err != nil {
		return fmt.Errorf("stok_alarm_worker: enqueue email: %w", err)
	}

	log.Info().
		Str("urun", payload.UrunAdi).
		Int("mevcut", payload.MevcutStok).
		Int("minimum", payload.MinimumStok).
		Msg("stok_alarm_worker: alert queued")
	return nil
}
