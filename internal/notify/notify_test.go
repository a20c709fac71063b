package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
)

func TestLogNotifier(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	NewLogNotifier(logger).SendEmail(context.Background(), "o@mail.com", "Booking for Concert confirmed", "20 seats were reserved for the event Concert.")

	out := buf.String()
	for _, want := range []string{"to=o@mail.com", `subject="Booking for Concert confirmed"`, "20 seats were reserved"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected log to contain %q, got %q", want, out)
		}
	}
}

func TestNewPublishing(t *testing.T) {
	t.Parallel()

	pub, err := newPublishing(Email{To: "o@mail.com", Subject: "s", Body: "b"})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if pub.DeliveryMode != amqp.Persistent {
		t.Fatalf("expected persistent delivery, got %d", pub.DeliveryMode)
	}
	if pub.ContentType != "application/json" {
		t.Fatalf("expected application/json, got %s", pub.ContentType)
	}

	var got Email
	if err := json.Unmarshal(pub.Body, &got); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if got.To != "o@mail.com" || got.Subject != "s" || got.Body != "b" {
		t.Fatalf("unexpected email %+v", got)
	}
}
