package events

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/google/uuid"
	"github.com/gyeongmae/auction-map/internal/pkg/infrastructure/logging"
	"github.com/gyeongmae/auction-map/pkg/types"
	"golang.org/x/sys/unix"
	yaml "gopkg.in/yaml.v2"
)

const EventSource string = "github.com/gyeongmae/auction-map"

// SendTimeout bounds the delivery of an event to a single subscriber.
const SendTimeout time.Duration = 5 * time.Second

//go:generate moq -rm -out events_mock.go . EventSender

type EventSender interface {
	HasSubscribers(eventType string) bool
	SendHotTerritory(ctx context.Context, message types.HotTerritoryDetected) error
}

type eventSender struct {
	subscribers map[string][]SubscriberConfig
	timeout     time.Duration

	newClient func() (cloudevents.Client, error)
	once      sync.Once
	c         cloudevents.Client
	clientErr error
}

func New(cfg *Config) EventSender {
	e := &eventSender{
		subscribers: make(map[string][]SubscriberConfig),
		timeout:     SendTimeout,
		newClient: func() (cloudevents.Client, error) {
			return cloudevents.NewClientHTTP()
		},
	}

	if cfg != nil {
		for _, n := range cfg.Notifications {
			e.subscribers[n.Type] = append(e.subscribers[n.Type], n.Subscribers...)
		}
	}

	return e
}

func (e *eventSender) HasSubscribers(eventType string) bool {
	return len(e.subscribers[eventType]) > 0
}

// client is created on first use and shared by all later sends.
func (e *eventSender) client() (cloudevents.Client, error) {
	e.once.Do(func() {
		e.c, e.clientErr = e.newClient()
	})
	return e.c, e.clientErr
}

func (e *eventSender) SendHotTerritory(ctx context.Context, message types.HotTerritoryDetected) error {
	eventType := message.TopicName()
	if !e.HasSubscribers(eventType) {
		return nil
	}

	c, err := e.client()
	if err != nil {
		return err
	}

	event := cloudevents.NewEvent()
	event.SetID(uuid.NewString())
	event.SetTime(message.Timestamp)
	event.SetSource(EventSource)
	event.SetType(eventType)
	event.SetSubject(message.TerritoryID)

	err = event.SetData(message.ContentType(), message)
	if err != nil {
		return err
	}

	logger := logging.GetLoggerFromContext(ctx)

	for _, s := range e.subscribers[eventType] {
		ctxWithTarget, cancel := context.WithTimeout(cloudevents.ContextWithTarget(ctx, s.Endpoint), e.timeout)
		result := c.Send(ctxWithTarget, event)
		cancel()

		if errors.Is(result, unix.ECONNREFUSED) {
			logger.Error().Err(result).Msgf("subscriber at %s refused connection", s.Endpoint)
			err = fmt.Errorf("%w", result)
		} else if !cloudevents.IsACK(result) {
			logger.Error().Err(result).Msgf("failed to send event to %s", s.Endpoint)
			err = fmt.Errorf("%w", result)
		}
	}

	return err
}

type SubscriberConfig struct {
	Endpoint string `yaml:"endpoint"`
}

type Notification struct {
	ID          string             `yaml:"id"`
	Name        string             `yaml:"name"`
	Type        string             `yaml:"type"`
	Subscribers []SubscriberConfig `yaml:"subscribers"`
}

type Config struct {
	Notifications []Notification `yaml:"notifications"`
}

func LoadConfiguration(data io.Reader) (*Config, error) {
	buf, err := io.ReadAll(data)
	if err != nil {
		return nil, err
	}

	cfg := Config{}
	if err := yaml.Unmarshal(buf, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
