package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/muhammadheryan/classifieds/model"
	"github.com/muhammadheryan/classifieds/utils/logger"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Consumer retries orphaned image removal through the internal purge API.
// A failed purge is re-published through the delayed exchange until maxAttempts is reached.
type Consumer struct {
	conn        *amqp091.Connection
	channel     *amqp091.Channel
	retry       channelPublisher
	retryDelay  time.Duration
	maxAttempts int
	apiURL      string
	apiKey      string
	client      *http.Client
}

func NewConsumer(host string, port int, user, password, apiURL, apiKey string, retryDelay time.Duration, maxAttempts int) (*Consumer, error) {
	conn, channel, err := dial(host, port, user, password)
	if err != nil {
		return nil, err
	}
	if maxAttempts < 1 {
		maxAttempts = 1
	}

	return &Consumer{
		conn:        conn,
		channel:     channel,
		retry:       channel,
		retryDelay:  retryDelay,
		maxAttempts: maxAttempts,
		apiURL:      apiURL,
		apiKey:      apiKey,
		client:      &http.Client{Timeout: 10 * time.Second},
	}, nil
}

// Start consumes until ctx is done or the channel closes.
func (c *Consumer) Start(ctx context.Context) error {
	// one message at a time
	if err := c.channel.Qos(1, 0, false); err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		imageOrphanedQueue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				c.handle(ctx, msg)
			}
		}
	}()

	return nil
}

func (c *Consumer) handle(ctx context.Context, msg amqp091.Delivery) {
	var event model.ImageOrphanedMessage
	if err := json.Unmarshal(msg.Body, &event); err != nil || event.Path == "" {
		logger.Error("[ImageJanitor] drop malformed message", zap.ByteString("body", msg.Body))
		_ = msg.Ack(false)
		return
	}

	if err := c.callPurgeImageAPI(ctx, event.Path); err != nil {
		c.retryLater(msg, event, err)
		return
	}

	_ = msg.Ack(false)
	logger.Info("[ImageJanitor] orphan handled", zap.String("path", event.Path), zap.String("scope", string(event.Scope)))
}

// retryLater acks the delivery and schedules a delayed copy with the next attempt number.
func (c *Consumer) retryLater(msg amqp091.Delivery, event model.ImageOrphanedMessage, cause error) {
	attempt := deliveryAttempt(msg.Headers)
	if attempt >= c.maxAttempts {
		logger.Error("[ImageJanitor] giving up on orphan",
			zap.String("path", event.Path),
			zap.Int("attempts", attempt),
			zap.String("error", cause.Error()))
		_ = msg.Ack(false)
		return
	}

	if err := publishOrphaned(c.retry, event, c.retryDelay, attempt+1); err != nil {
		logger.Error("[ImageJanitor] err schedule retry, requeue", zap.String("path", event.Path), zap.String("error", err.Error()))
		_ = msg.Nack(false, true)
		return
	}

	_ = msg.Ack(false)
	logger.Warn("[ImageJanitor] purge failed, retry scheduled",
		zap.String("path", event.Path),
		zap.Int("next_attempt", attempt+1),
		zap.Duration("delay", c.retryDelay),
		zap.String("error", cause.Error()))
}

// deliveryAttempt reads the attempt header; messages without one are on their first attempt.
func deliveryAttempt(headers amqp091.Table) int {
	switch v := headers[attemptHeader].(type) {
	case int8:
		return int(v)
	case int16:
		return int(v)
	case int32:
		return int(v)
	case int64:
		return int(v)
	case int:
		return v
	default:
		return 1
	}
}

// callPurgeImageAPI treats any status below 500 as final; 404 and 409 mean nothing is left to do.
func (c *Consumer) callPurgeImageAPI(ctx context.Context, path string) error {
	endpoint := fmt.Sprintf("%s/internal/images/%s", c.apiURL, url.PathEscape(path))

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("X-Internal-Service", "image-janitor")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 500 {
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, string(body))
	}
	return nil
}

func (c *Consumer) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
	return nil
}
