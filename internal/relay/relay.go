// Package relay forwards log records published on a NATS subject to the
// store's log collection.
package relay

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"github.com/fivetwenty-io/castore/internal/constants"
	"github.com/fivetwenty-io/castore/pkg/castore"
)

// Subscription is an active subject subscription.
type Subscription interface {
	Unsubscribe() error
}

// Subscriber registers message handlers on a subject.
type Subscriber interface {
	Subscribe(subject string, handler nats.MsgHandler) (Subscription, error)
}

// Conn adapts a *nats.Conn to Subscriber.
type Conn struct {
	*nats.Conn
}

// Subscribe implements Subscriber.
func (c Conn) Subscribe(subject string, handler nats.MsgHandler) (Subscription, error) {
	sub, err := c.Conn.Subscribe(subject, handler)
	if err != nil {
		return nil, fmt.Errorf("subscribing to %s: %w", subject, err)
	}

	return sub, nil
}

// Dial connects to the NATS server at url with reconnect handling that
// reports through logger.
func Dial(url, name string, logger castore.Logger) (*nats.Conn, error) {
	if url == "" {
		return nil, constants.ErrNoNATSURL
	}

	if logger == nil {
		logger = castore.NopLogger{}
	}

	opts := []nats.Option{
		nats.Name(name),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2 * time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("NATS disconnected", map[string]interface{}{"error": err.Error()})
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", map[string]interface{}{"url": nc.ConnectedUrl()})
		}),
	}

	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	return nc, nil
}

// Relay posts every JSON object received on a subject through Logs().Add.
type Relay struct {
	logs       castore.LogsClient
	subscriber Subscriber
	subject    string
	logger     castore.Logger
	newID      func() string
}

// Option configures a Relay.
type Option func(*Relay)

// WithSubject overrides the subject, DefaultRelaySubject by default.
func WithSubject(subject string) Option {
	return func(r *Relay) {
		if subject != "" {
			r.subject = subject
		}
	}
}

// WithLogger sets the logger.
func WithLogger(logger castore.Logger) Option {
	return func(r *Relay) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a relay.
func New(logs castore.LogsClient, subscriber Subscriber, opts ...Option) *Relay {
	relay := &Relay{
		logs:       logs,
		subscriber: subscriber,
		subject:    constants.DefaultRelaySubject,
		logger:     castore.NopLogger{},
		newID:      uuid.NewString,
	}

	for _, opt := range opts {
		opt(relay)
	}

	return relay
}

// Subject returns the subject the relay listens on.
func (r *Relay) Subject() string {
	return r.subject
}

// Run subscribes and relays messages until ctx is done.
func (r *Relay) Run(ctx context.Context) error {
	sub, err := r.subscriber.Subscribe(r.subject, func(msg *nats.Msg) {
		r.handle(ctx, msg)
	})
	if err != nil {
		return err
	}

	r.logger.Info("relay started", map[string]interface{}{"subject": r.subject})

	<-ctx.Done()

	err = sub.Unsubscribe()
	if err != nil {
		return fmt.Errorf("unsubscribing from %s: %w", r.subject, err)
	}

	r.logger.Info("relay stopped", map[string]interface{}{"subject": r.subject})

	return nil
}

// Forward decodes a single message body and posts it. A record without an
// id is stamped with a fresh relay_id.
func (r *Relay) Forward(ctx context.Context, data []byte) (*castore.Result, error) {
	var record castore.Record

	err := json.Unmarshal(data, &record)
	if err != nil || record == nil {
		return nil, fmt.Errorf("decoding relayed log: %w", constants.ErrNotAnObject)
	}

	if _, ok := record["id"]; !ok {
		record[constants.RelayIDField] = r.newID()
	}

	res, err := r.logs.Add(ctx, record)
	if err != nil {
		return nil, fmt.Errorf("relaying log: %w", err)
	}

	return res, nil
}

func (r *Relay) handle(ctx context.Context, msg *nats.Msg) {
	res, err := r.Forward(ctx, msg.Data)

	switch {
	case err != nil:
		r.logger.Warn("dropping relayed log", map[string]interface{}{
			"subject": msg.Subject,
			"error":   err.Error(),
		})
	case res.Failed():
		r.logger.Warn("store rejected relayed log", map[string]interface{}{
			"subject": msg.Subject,
			"status":  res.Failure.StatusCode,
		})
	}

	if msg.Reply == "" {
		return
	}

	reply, marshalErr := json.Marshal(replyFor(res, err))
	if marshalErr != nil {
		return
	}

	respondErr := msg.Respond(reply)
	if respondErr != nil {
		r.logger.Debug("relay reply failed", map[string]interface{}{"error": respondErr.Error()})
	}
}

func replyFor(res *castore.Result, err error) interface{} {
	if err != nil {
		return map[string]interface{}{"error": true, "text": err.Error()}
	}

	if res.Failed() {
		return res.Failure
	}

	return res.Data
}
