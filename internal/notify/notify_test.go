package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"tourism-booking/internal/data/entity"
	"tourism-booking/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, topic, key string, payload any) error {
	args := m.Called(ctx, topic, key, payload)
	return args.Error(0)
}

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(msg Message) error {
	args := m.Called(msg)
	return args.Error(0)
}

func booking() entity.Booking {
	return entity.Booking{
		ID:           uuid.MustParse("7b0c7a52-0a0e-4d5e-9f2a-1c1e1a1b1c1d"),
		TourTitle:    "Song-Kul Trek",
		Name:         "Aida",
		Email:        "aida@example.com",
		Participants: 3,
		StartDate:    "2024-06-01",
		EndDate:      "2024-06-05",
		TotalPrice:   "$600",
	}
}

func TestCompose_Booking(t *testing.T) {
	b := booking()
	msgs := Compose(Event{Kind: KindBookingCreated, Booking: &b}, "ops@example.com")
	require.Len(t, msgs, 2)

	assert.Equal(t, "aida@example.com", msgs[0].To)
	assert.Equal(t, "Booking received: Song-Kul Trek", msgs[0].Subject)
	assert.True(t, strings.HasPrefix(msgs[0].Body, "Hello Aida,\n"))
	assert.Contains(t, msgs[0].Body, "Dates: 2024-06-01 to 2024-06-05")
	assert.Contains(t, msgs[0].Body, "Participants: 3")
	assert.Contains(t, msgs[0].Body, "Total: $600")

	assert.Equal(t, "ops@example.com", msgs[1].To)
	assert.Equal(t, "Admin: Booking received: Song-Kul Trek", msgs[1].Subject)
	assert.Contains(t, msgs[1].Body, "Email: aida@example.com")
}

func TestCompose_MissingFieldsUsePlaceholders(t *testing.T) {
	msgs := Compose(Event{Kind: KindBookingCreated, Booking: &entity.Booking{}}, "ops@example.com")
	require.Len(t, msgs, 1)
	assert.Equal(t, "Admin: Booking received: Tour", msgs[0].Subject)
	assert.Contains(t, msgs[0].Body, "Name: N/A")
	assert.Contains(t, msgs[0].Body, "Participants: N/A")
}

func TestCompose_CustomRequest(t *testing.T) {
	r := entity.CustomTourRequest{
		Name: "Bek", Email: "bek@example.com", GroupSize: 4,
		StartLocation: "Bishkek", EndLocation: "Karakol", Budget: "$2000",
	}
	msgs := Compose(Event{Kind: KindCustomRequestCreated, CustomRequest: &r}, "")
	require.Len(t, msgs, 1)
	assert.Equal(t, "Custom tour request received", msgs[0].Subject)
	assert.Contains(t, msgs[0].Body, "Route: Bishkek to Karakol")
	assert.Contains(t, msgs[0].Body, "Group size: 4")
	assert.NotContains(t, msgs[0].Body, "Budget")
}

func TestCompose_UnknownKind(t *testing.T) {
	assert.Empty(t, Compose(Event{Kind: "other"}, "ops@example.com"))
}

func TestNotifier_PublishesWithoutBlocking(t *testing.T) {
	pub := &MockPublisher{}
	n := NewNotifier(pub, "tourism.notifications", zap.NewNop())
	b := booking()

	pub.On("Publish", mock.Anything, "tourism.notifications", b.ID.String(), mock.MatchedBy(func(ev Event) bool {
		return ev.Kind == KindBookingCreated && ev.Booking.Email == "aida@example.com"
	})).Return(nil).Once()

	n.BookingCreated(b)
	n.Wait()
	pub.AssertExpectations(t)
}

func TestNotifier_FailureIsSwallowed(t *testing.T) {
	pub := &MockPublisher{}
	n := NewNotifier(pub, "topic", zap.NewNop())
	pub.On("Publish", mock.Anything, "topic", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()

	n.CustomRequestCreated(entity.CustomTourRequest{Name: "Bek"})
	n.Wait()
	pub.AssertExpectations(t)
}

func TestHandler_SendsEveryMessage(t *testing.T) {
	sender := &MockSender{}
	h := NewHandler(sender, "ops@example.com", zap.NewNop())
	b := booking()
	payload, err := json.Marshal(Event{Kind: KindBookingCreated, Booking: &b})
	require.NoError(t, err)

	sender.On("Send", mock.MatchedBy(func(m Message) bool { return m.To == "aida@example.com" })).Return(nil).Once()
	sender.On("Send", mock.MatchedBy(func(m Message) bool { return m.To == "ops@example.com" })).Return(errors.New("smtp down")).Once()

	assert.NoError(t, h.Handle(context.Background(), payload))
	sender.AssertExpectations(t)
}

func TestHandler_DropsBadPayload(t *testing.T) {
	sender := &MockSender{}
	h := NewHandler(sender, "ops@example.com", zap.NewNop())

	assert.NoError(t, h.Handle(context.Background(), []byte("not json")))
	sender.AssertNotCalled(t, "Send", mock.Anything)
}

func TestMailer_SkipsWithoutConfig(t *testing.T) {
	m := NewMailer(utils.EmailConfig{Host: "smtp.example.com"}, zap.NewNop())
	called := false
	m.send = func(string, smtp.Auth, string, []string, []byte) error {
		called = true
		return nil
	}

	assert.False(t, m.Configured())
	assert.NoError(t, m.Send(Message{To: "a@example.com"}))
	assert.False(t, called)
}

func TestMailer_RendersPlainText(t *testing.T) {
	m := NewMailer(utils.EmailConfig{Host: "smtp.example.com", Port: 587, User: "bot@example.com", Password: "secret"}, zap.NewNop())
	var gotAddr string
	var gotTo []string
	var gotMsg string
	m.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotTo, gotMsg = addr, to, string(msg)
		assert.Equal(t, "bot@example.com", from)
		return nil
	}

	err := m.Send(Message{To: "aida@example.com", Subject: "Hi\r\nBcc: evil@example.com", Body: "line one\nline two"})
	require.NoError(t, err)

	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, []string{"aida@example.com"}, gotTo)
	assert.Contains(t, gotMsg, "From: bot@example.com\r\n")
	assert.Contains(t, gotMsg, "Subject: Hi  Bcc: evil@example.com\r\n")
	assert.Contains(t, gotMsg, "Content-Type: text/plain; charset=utf-8")
	assert.Contains(t, gotMsg, "line one\r\nline two")
}

func TestMailer_WrapsSendError(t *testing.T) {
	m := NewMailer(utils.EmailConfig{Host: "h", Port: 25, User: "u", Password: "p"}, zap.NewNop())
	m.send = func(string, smtp.Auth, string, []string, []byte) error { return errors.New("refused") }

	err := m.Send(Message{To: "x@example.com"})
	assert.ErrorContains(t, err, "send email to x@example.com")
	assert.ErrorContains(t, err, "refused")
}
