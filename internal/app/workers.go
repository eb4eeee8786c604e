package app

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/telecare/telecare_backend/config"
	"github.com/telecare/telecare_backend/internal/repo"
	entdoctor "github.com/telecare/telecare_backend/internal/repo/doctor"
	entpatient "github.com/telecare/telecare_backend/internal/repo/patient"
	"github.com/telecare/telecare_backend/internal/service/auth"
	"github.com/telecare/telecare_backend/internal/service/onboarding"
	"github.com/telecare/telecare_backend/pkg/email"
)

// reconcileInterval is how often completed-but-broken onboardings are
// repaired in the background.
const reconcileInterval = 10 * time.Minute

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc            fx.Lifecycle
	Cfg           *config.Config
	NC            *nats.Conn
	DB            *repo.Client
	Email         *email.Client
	OnboardingSvc onboarding.Service
}

func RegisterWorkers(p WorkerParams) {
	done := make(chan struct{})

	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startEmailWorker(p.NC, p.DB, p.Email, p.Cfg)
			go runReconcileLoop(p.OnboardingSvc, done)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(done)
			// NATS drain handled by ProvideNatsClient
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// email_worker
// ---------------------------------------------------------------------------

func startEmailWorker(nc *nats.Conn, db *repo.Client, cli *email.Client, cfg *config.Config) {
	baseURL := cfg.Server.Domain

	// Welcome email after registration
	_, err := nc.Subscribe(auth.SubjectUserRegistered+".*", func(msg *nats.Msg) {
		var ev auth.UserRegisteredEvent
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			slog.Warn("email_worker: malformed user.registered event", "err", err)
			return
		}

		m := email.BuildWelcomeEmail(email.WelcomeEmailData{
			FirstName: ev.FirstName,
			Email:     ev.Email,
			BaseURL:   baseURL,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := cli.Send(ctx, m); err != nil && !errors.Is(err, email.ErrDisabled{}) {
			slog.Warn("email_worker: welcome email failed", "user_id", ev.UserID, "err", err)
		}
	})
	if err != nil {
		slog.Error("email_worker: subscribe user.registered failed", "err", err)
	}

	// Assignment email after onboarding completes
	_, err = nc.Subscribe(onboarding.SubjectOnboardingCompleted+".*", func(msg *nats.Msg) {
		var ev onboarding.CompletedEvent
		if err := json.Unmarshal(msg.Data, &ev); err != nil {
			slog.Warn("email_worker: malformed onboarding.completed event", "err", err)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		patient, err := db.Patient.Query().
			Where(entpatient.ID(ev.PatientID)).
			WithUser().
			Only(ctx)
		if err != nil {
			slog.Warn("email_worker: patient not found", "patient_id", ev.PatientID, "err", err)
			return
		}

		doc, err := db.Doctor.Query().
			Where(entdoctor.ID(ev.DoctorID)).
			WithUser().
			Only(ctx)
		if err != nil {
			slog.Warn("email_worker: doctor not found", "doctor_id", ev.DoctorID, "err", err)
			return
		}

		pu, du := patient.Edges.User, doc.Edges.User
		if pu == nil || du == nil {
			return
		}

		m := email.BuildAssignmentEmail(email.AssignmentEmailData{
			FirstName:  pu.FirstName,
			Email:      pu.Email,
			DoctorName: du.FirstName + " " + du.LastName,
			Specialty:  doc.Specialty,
			BaseURL:    baseURL,
		})

		if err := cli.Send(ctx, m); err != nil && !errors.Is(err, email.ErrDisabled{}) {
			slog.Warn("email_worker: assignment email failed", "patient_id", ev.PatientID, "err", err)
		}
	})
	if err != nil {
		slog.Error("email_worker: subscribe onboarding.completed failed", "err", err)
	}

	slog.Info("email_worker: started")
}

// ---------------------------------------------------------------------------
// reconcile_worker
// ---------------------------------------------------------------------------

// runReconcileLoop periodically repairs patients whose onboarding finished
// but whose assignment or chat room write was lost.
func runReconcileLoop(svc onboarding.Service, done <-chan struct{}) {
	ticker := time.NewTicker(reconcileInterval)
	defer ticker.Stop()

	slog.Info("reconcile_worker: started", "interval", reconcileInterval)

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			fixed, err := svc.ReconcilePartialCompletions(ctx)
			cancel()
			if err != nil {
				slog.Warn("reconcile_worker: pass failed", "err", err)
				continue
			}
			if fixed > 0 {
				slog.Info("reconcile_worker: repaired onboardings", "count", fixed)
			}
		}
	}
}
