package mail

import (
	"context"
	"net/smtp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/jstanislawczyk/compcar-car-service-sub000/internal/core/ports"
)

func TestBuildConfirmationMail(t *testing.T) {
	env := buildConfirmationMail("https://compcar.example.com/", "new@example.com", ports.ConfirmationMail{
		Code:         "abc123",
		AllowedUpTo:  time.Date(2026, 5, 1, 11, 0, 0, 0, time.UTC),
		RegisteredAt: time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC),
	})

	if env.To != "new@example.com" {
		t.Errorf("To = %q", env.To)
	}
	// The trailing slash on the base URL must not double up in the link.
	wantLink := "https://compcar.example.com/register/confirmation/abc123"
	if !strings.Contains(env.Text, wantLink) {
		t.Errorf("text is missing link %q:\n%s", wantLink, env.Text)
	}
	if !strings.Contains(env.HTML, wantLink) {
		t.Errorf("html is missing link %q:\n%s", wantLink, env.HTML)
	}
	if !strings.Contains(env.Text, "1 May 2026 11:00 UTC") {
		t.Errorf("text is missing the deadline:\n%s", env.Text)
	}
}

func TestSMTPMailerEncodesMultipart(t *testing.T) {
	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte

	m := NewSMTPMailer(Config{
		Host:        "smtp.example.com",
		Port:        587,
		From:        "no-reply@compcar.example.com",
		FrontendURL: "https://compcar.example.com",
	})
	m.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	err := m.SendConfirmation(context.Background(), "new@example.com", ports.ConfirmationMail{
		Code:        "abc123",
		AllowedUpTo: time.Now().Add(time.Hour),
	})
	if err != nil {
		t.Fatalf("SendConfirmation: %v", err)
	}

	if gotAddr != "smtp.example.com:587" {
		t.Errorf("addr = %q", gotAddr)
	}
	if gotFrom != "no-reply@compcar.example.com" {
		t.Errorf("from = %q", gotFrom)
	}
	if len(gotTo) != 1 || gotTo[0] != "new@example.com" {
		t.Errorf("to = %v", gotTo)
	}

	msg := string(gotMsg)
	for _, want := range []string{
		"Subject: Confirm your Compcar registration\r\n",
		"Content-Type: multipart/alternative;",
		"Content-Type: text/plain; charset=utf-8",
		"Content-Type: text/html; charset=utf-8",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message is missing %q", want)
		}
	}
}

func TestSMTPMailerCancelledContext(t *testing.T) {
	m := NewSMTPMailer(Config{Host: "smtp.example.com", Port: 587})
	m.send = func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("send called with cancelled context")
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := m.SendWelcome(ctx, "new@example.com"); err == nil {
		t.Fatal("expected context error")
	}
}

type recordingMailer struct {
	mu       sync.Mutex
	welcomes []string
	done     chan struct{}
}

func (m *recordingMailer) SendConfirmation(context.Context, string, ports.ConfirmationMail) error {
	return nil
}

func (m *recordingMailer) SendWelcome(_ context.Context, to string) error {
	m.mu.Lock()
	m.welcomes = append(m.welcomes, to)
	m.mu.Unlock()
	m.done <- struct{}{}
	return nil
}

func TestDispatcherDelivers(t *testing.T) {
	mailer := &recordingMailer{done: make(chan struct{}, 8)}
	d := NewDispatcher(2, mailer, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	recipients := []string{"a@example.com", "b@example.com", "c@example.com"}
	for _, r := range recipients {
		d.Enqueue(r)
	}
	for range recipients {
		select {
		case <-mailer.done:
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for delivery")
		}
	}

	mailer.mu.Lock()
	defer mailer.mu.Unlock()
	if len(mailer.welcomes) != len(recipients) {
		t.Fatalf("delivered = %d, want %d", len(mailer.welcomes), len(recipients))
	}
	seen := map[string]bool{}
	for _, w := range mailer.welcomes {
		seen[w] = true
	}
	for _, r := range recipients {
		if !seen[r] {
			t.Errorf("%s was not delivered", r)
		}
	}
}

func TestDispatcherShardIsStable(t *testing.T) {
	d := NewDispatcher(4, &recordingMailer{done: make(chan struct{}, 1)}, zerolog.Nop())
	first := d.shardIndex("same@example.com")
	for i := 0; i < 10; i++ {
		if got := d.shardIndex("same@example.com"); got != first {
			t.Fatalf("shard changed: %d vs %d", got, first)
		}
	}
}
