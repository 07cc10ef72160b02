package app

import (
	"github.com/wagslane/go-rabbitmq"

	"github.com/Nazarious-ucu/weather-dashboard/pkg/messaging"
)

func (a *App) setupRabbit() (*rabbitmq.Conn, *rabbitmq.Publisher, error) {
	conn, err := a.setupConn()
	if err != nil {
		return nil, nil, err
	}
	publisher, err := a.setupPublisher(conn)
	if err != nil {
		_ = conn.Close()
		return nil, nil, err
	}
	return conn, publisher, nil
}

func (a *App) setupConn() (*rabbitmq.Conn, error) {
	conn, err := rabbitmq.NewConn(
		a.cfg.RabbitMQ.Address(),
		rabbitmq.WithConnectionOptionsLogging,
	)
	if err != nil {
		a.l.Error().Err(err).Msg("failed to connect to RabbitMQ")
		return nil, err
	}

	a.l.Info().Str("host", a.cfg.RabbitMQ.Host).Msg("connected to RabbitMQ")
	return conn, nil
}

// setupPublisher declares the dashboard exchange and returns a publisher bound to it.
func (a *App) setupPublisher(conn *rabbitmq.Conn) (*rabbitmq.Publisher, error) {
	publisher, err := rabbitmq.NewPublisher(
		conn,
		rabbitmq.WithPublisherOptionsExchangeName(messaging.ExchangeName),
		rabbitmq.WithPublisherOptionsExchangeDeclare,
		rabbitmq.WithPublisherOptionsLogging,
		rabbitmq.WithPublisherOptionsExchangeDurable,
	)
	if err != nil {
		return nil, err
	}

	publisher.NotifyReturn(func(r rabbitmq.Return) {
		a.l.Warn().
			Str("routing_key", r.RoutingKey).
			Uint16("reply_code", r.ReplyCode).
			Msg("message returned from server")
	})

	return publisher, nil
}
