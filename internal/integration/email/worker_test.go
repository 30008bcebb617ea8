package email

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/lankagrow/backend/internal/application/adapter"
	"github.com/lankagrow/backend/internal/domain/entity"
	domainerror "github.com/lankagrow/backend/internal/domain/error"
	"github.com/lankagrow/backend/internal/integration/email/templates"
)

type fakeQueue struct {
	jobs map[uuid.UUID]*entity.EmailJob
}

func newFakeQueue() *fakeQueue {
	return &fakeQueue{jobs: make(map[uuid.UUID]*entity.EmailJob)}
}

func (f *fakeQueue) Create(ctx context.Context, job *entity.EmailJob) error {
	f.jobs[job.ID] = job
	return nil
}

func (f *fakeQueue) GetPendingJobs(ctx context.Context, limit int) ([]*entity.EmailJob, error) {
	pending := make([]*entity.EmailJob, 0)
	for _, job := range f.jobs {
		if job.Status == entity.EmailStatusPending && !job.ScheduledAt.After(time.Now().UTC()) {
			pending = append(pending, job)
		}
		if len(pending) == limit {
			break
		}
	}
	return pending, nil
}

func (f *fakeQueue) Update(ctx context.Context, job *entity.EmailJob) error {
	f.jobs[job.ID] = job
	return nil
}

func (f *fakeQueue) GetByID(ctx context.Context, id uuid.UUID) (*entity.EmailJob, error) {
	job, ok := f.jobs[id]
	if !ok {
		return nil, domainerror.ErrEmailJobNotFound
	}
	return job, nil
}

func (f *fakeQueue) GetByRecipient(ctx context.Context, email string) ([]*entity.EmailJob, error) {
	jobs := make([]*entity.EmailJob, 0)
	for _, job := range f.jobs {
		if job.RecipientEmail == email {
			jobs = append(jobs, job)
		}
	}
	return jobs, nil
}

func (f *fakeQueue) DeleteOldSentJobs(ctx context.Context, olderThanDays int) (int64, error) {
	return 0, nil
}

type fakeSender struct {
	sent    []adapter.SendEmailInput
	sendErr error
}

func (f *fakeSender) Send(ctx context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	if f.sendErr != nil {
		return nil, f.sendErr
	}
	f.sent = append(f.sent, input)
	return &adapter.SendEmailResult{ResendID: "re_" + uuid.NewString()}, nil
}

func newTestWorker(t *testing.T, queue *fakeQueue, sender *fakeSender) *Worker {
	t.Helper()
	renderer, err := templates.NewRenderer()
	if err != nil {
		t.Fatalf("failed to build renderer: %v", err)
	}
	return NewWorker(queue, sender, renderer, WorkerConfig{PollInterval: time.Second, BatchSize: 10})
}

func invoiceJobData() map[string]interface{} {
	return map[string]interface{}{
		"customer_name":  "Nimal Perera",
		"business_name":  "Kamal Traders",
		"invoice_number": "INV-000042",
		"total_amount":   "1610.00",
		"currency":       "LKR",
		"due_date":       "2026-09-14",
	}
}

func TestWorker_ProcessNow(t *testing.T) {
	ctx := context.Background()

	t.Run("sends a pending job and marks it sent", func(t *testing.T) {
		queue := newFakeQueue()
		sender := &fakeSender{}
		worker := newTestWorker(t, queue, sender)

		job := entity.NewEmailJob(entity.TemplateInvoiceSent,
			"nimal@example.com", "Nimal Perera", "Invoice INV-000042 from Kamal Traders", invoiceJobData())
		queue.jobs[job.ID] = job

		worker.ProcessNow(ctx)

		if len(sender.sent) != 1 {
			t.Fatalf("expected 1 email sent, got %d", len(sender.sent))
		}
		if sender.sent[0].To != "nimal@example.com" {
			t.Errorf("unexpected recipient %s", sender.sent[0].To)
		}
		if sender.sent[0].HTML == "" || sender.sent[0].Text == "" {
			t.Error("expected both rendered bodies")
		}

		stored := queue.jobs[job.ID]
		if stored.Status != entity.EmailStatusSent {
			t.Errorf("expected sent status, got %s", stored.Status)
		}
		if stored.ResendID == "" {
			t.Error("expected the provider id to be recorded")
		}
		if stored.ProcessedAt == nil {
			t.Error("expected processed time to be stamped")
		}
	})

	t.Run("reschedules a transient failure with backoff", func(t *testing.T) {
		queue := newFakeQueue()
		sender := &fakeSender{sendErr: errors.New("connection reset")}
		worker := newTestWorker(t, queue, sender)

		job := entity.NewEmailJob(entity.TemplateInvoiceSent,
			"nimal@example.com", "Nimal Perera", "Invoice INV-000042 from Kamal Traders", invoiceJobData())
		queue.jobs[job.ID] = job

		worker.ProcessNow(ctx)

		stored := queue.jobs[job.ID]
		if stored.Status != entity.EmailStatusPending {
			t.Errorf("expected the job back in pending, got %s", stored.Status)
		}
		if stored.Attempts != 1 {
			t.Errorf("expected 1 attempt recorded, got %d", stored.Attempts)
		}
		if stored.LastError == "" {
			t.Error("expected the failure to be recorded")
		}
	})

	t.Run("fails permanently on a permanent provider error", func(t *testing.T) {
		queue := newFakeQueue()
		sender := &fakeSender{sendErr: domainerror.NewEmailError(
			domainerror.ErrCodePermanentEmailFailure, "invalid recipient", nil)}
		worker := newTestWorker(t, queue, sender)

		job := entity.NewEmailJob(entity.TemplateInvoiceSent,
			"bad@", "Nimal Perera", "Invoice INV-000042 from Kamal Traders", invoiceJobData())
		queue.jobs[job.ID] = job

		worker.ProcessNow(ctx)

		stored := queue.jobs[job.ID]
		if stored.Status != entity.EmailStatusFailed {
			t.Errorf("expected failed status, got %s", stored.Status)
		}
	})

	t.Run("fails permanently on an unknown template", func(t *testing.T) {
		queue := newFakeQueue()
		sender := &fakeSender{}
		worker := newTestWorker(t, queue, sender)

		job := entity.NewEmailJob(entity.EmailTemplateType("newsletter"),
			"nimal@example.com", "Nimal Perera", "News", nil)
		queue.jobs[job.ID] = job

		worker.ProcessNow(ctx)

		stored := queue.jobs[job.ID]
		if stored.Status != entity.EmailStatusFailed {
			t.Errorf("expected failed status, got %s", stored.Status)
		}
		if len(sender.sent) != 0 {
			t.Error("expected nothing to be sent")
		}
	})
}

func TestService_Queueing(t *testing.T) {
	ctx := context.Background()

	t.Run("queues an invoice notification", func(t *testing.T) {
		queue := newFakeQueue()
		service := NewService(queue)

		err := service.QueueInvoiceEmail(ctx, adapter.QueueInvoiceEmailInput{
			CustomerEmail: "nimal@example.com",
			CustomerName:  "Nimal Perera",
			BusinessName:  "Kamal Traders",
			InvoiceNumber: "INV-000042",
			TotalAmount:   "1610.00",
			Currency:      "LKR",
			DueDate:       "2026-09-14",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		jobs, _ := queue.GetByRecipient(ctx, "nimal@example.com")
		if len(jobs) != 1 {
			t.Fatalf("expected 1 queued job, got %d", len(jobs))
		}
		if jobs[0].TemplateType != entity.TemplateInvoiceSent {
			t.Errorf("unexpected template %s", jobs[0].TemplateType)
		}
		if jobs[0].Subject != "Invoice INV-000042 from Kamal Traders" {
			t.Errorf("unexpected subject %s", jobs[0].Subject)
		}
	})

	t.Run("queues a payment reminder with the overdue details", func(t *testing.T) {
		queue := newFakeQueue()
		service := NewService(queue)

		err := service.QueuePaymentReminderEmail(ctx, adapter.QueuePaymentReminderInput{
			CustomerEmail: "nimal@example.com",
			CustomerName:  "Nimal Perera",
			BusinessName:  "Kamal Traders",
			InvoiceNumber: "INV-000042",
			TotalAmount:   "1610.00",
			Currency:      "LKR",
			DueDate:       "2026-08-01",
			DaysPastDue:   14,
			Message:       "Invoice INV-000042 is 14 days past due.",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		jobs, _ := queue.GetByRecipient(ctx, "nimal@example.com")
		if len(jobs) != 1 {
			t.Fatalf("expected 1 queued job, got %d", len(jobs))
		}
		if jobs[0].TemplateType != entity.TemplatePaymentReminder {
			t.Errorf("unexpected template %s", jobs[0].TemplateType)
		}
		if jobs[0].TemplateData["days_past_due"] != "14" {
			t.Errorf("expected days past due 14, got %v", jobs[0].TemplateData["days_past_due"])
		}
	})
}
