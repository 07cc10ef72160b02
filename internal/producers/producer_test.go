package producers_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wagslane/go-rabbitmq"

	"github.com/Nazarious-ucu/weather-dashboard/internal/producers"
	"github.com/Nazarious-ucu/weather-dashboard/pkg/messaging"
)

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishWithContext(
	ctx context.Context,
	data []byte,
	routingKeys []string,
	optionFuncs ...func(*rabbitmq.PublishOptions),
) error {
	return m.Called(ctx, data, routingKeys, len(optionFuncs)).Error(0)
}

func TestProducer_CitiesChanged(t *testing.T) {
	pub := new(mockPublisher)
	var body []byte
	pub.On("PublishWithContext", mock.Anything, mock.Anything, []string{messaging.CitiesRoutingKey}, 4).
		Run(func(args mock.Arguments) { body = args.Get(1).([]byte) }).
		Return(nil).Once()

	p := producers.NewProducer(pub, zerolog.Nop())

	require.NoError(t, p.CitiesChanged(context.Background(), "add", "Kyiv", []string{"London", "Kyiv"}))
	pub.AssertExpectations(t)

	var event messaging.CitiesChangedEvent
	require.NoError(t, json.Unmarshal(body, &event))
	assert.Equal(t, "add", event.Action)
	assert.Equal(t, "Kyiv", event.City)
	assert.Equal(t, []string{"London", "Kyiv"}, event.Cities)
	_, err := uuid.Parse(event.ID)
	assert.NoError(t, err)
	assert.False(t, event.At.IsZero())
}

func TestProducer_PublishError(t *testing.T) {
	pub := new(mockPublisher)
	pub.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("channel closed")).Once()

	p := producers.NewProducer(pub, zerolog.Nop())

	err := p.CitiesChanged(context.Background(), "remove", "Kyiv", []string{"London"})
	assert.EqualError(t, err, "channel closed")
}

func TestNoop(t *testing.T) {
	assert.NoError(t, producers.Noop{}.CitiesChanged(context.Background(), "add", "x", nil))
}
