package tasks

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"doctorsportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type channelNotifier struct {
	confirmations chan models.EmailPayload
	receipts      chan models.EmailPayload
}

func newChannelNotifier() *channelNotifier {
	return &channelNotifier{
		confirmations: make(chan models.EmailPayload, 1),
		receipts:      make(chan models.EmailPayload, 1),
	}
}

func (n *channelNotifier) SendBookingConfirmation(_ context.Context, p models.EmailPayload) error {
	n.confirmations <- p
	return nil
}

func (n *channelNotifier) SendPaymentReceipt(_ context.Context, p models.EmailPayload) error {
	n.receipts <- p
	return nil
}

func TestNewEmailTaskRoundTrip(t *testing.T) {
	payload := models.EmailPayload{
		Kind:          models.EmailKindBookingConfirmation,
		Email:         "a@x.com",
		TreatmentName: "Braces",
		SelectedDate:  "2024-01-01",
		Slot:          "10am",
	}

	task, opts, err := NewEmailTask(payload)
	require.NoError(t, err)
	require.NotEmpty(t, opts)
	assert.Equal(t, TypeSendEmail, task.Type())

	var decoded models.EmailPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &decoded))
	assert.Equal(t, payload, decoded)
}

func TestDispatchFallsBackWithoutQueue(t *testing.T) {
	notifier := newChannelNotifier()
	d := &AsynqDispatcher{Client: nil, Fallback: notifier}

	d.DispatchEmail(models.EmailPayload{
		Kind:  models.EmailKindBookingConfirmation,
		Email: "a@x.com",
	})

	select {
	case p := <-notifier.confirmations:
		assert.Equal(t, "a@x.com", p.Email)
	case <-time.After(2 * time.Second):
		t.Fatal("fallback confirmation send never happened")
	}
}

func TestDispatchRoutesReceiptsToReceiptSender(t *testing.T) {
	notifier := newChannelNotifier()
	d := &AsynqDispatcher{Client: nil, Fallback: notifier}

	d.DispatchEmail(models.EmailPayload{
		Kind:          models.EmailKindPaymentReceipt,
		Email:         "a@x.com",
		TransactionID: "txn_1",
	})

	select {
	case p := <-notifier.receipts:
		assert.Equal(t, "txn_1", p.TransactionID)
	case <-time.After(2 * time.Second):
		t.Fatal("fallback receipt send never happened")
	}
}

func TestDispatchWithoutFallbackDropsQuietly(t *testing.T) {
	d := &AsynqDispatcher{}
	// Must not panic or block.
	d.DispatchEmail(models.EmailPayload{Kind: models.EmailKindBookingConfirmation, Email: "a@x.com"})
}
