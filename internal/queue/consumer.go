package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/common/logger"
	"github.com/redis/go-redis/v9"
)

type ConsumerConfig struct {
	Stream       string        // Redis stream name
	Group        string        // Redis consumer group name
	Consumer     string        // Redis consumer name
	DLQStream    string        // Dead letter queue stream for failed messages
	BatchSize    int64         // Number of messages to process per batch
	Block        time.Duration // How long to block/poll for new messages
	MaxAttempts  int           // Maximum retry attempts before moving to DLQ
	RequeueDelay time.Duration // Delay before the first retry; doubles per attempt
}

// maxRequeueDelay caps the backoff so a throttled email API is retried within minutes.
const maxRequeueDelay = 2 * time.Minute

// promoteBatch bounds how many due retries one Read moves back onto the stream.
const promoteBatch = 100

type Message struct {
	ID             string
	TaskType       TaskType
	Payload        []byte
	Attempt        int
	TraceID        string
	IdempotencyKey string
	Raw            redis.XMessage
}

// MessageProcessor processes a queue message.
type MessageProcessor func(ctx context.Context, msg Message) error

// RedisConsumer reads tasks from a stream through a consumer group. Delayed
// retries wait in a sorted set scored by due time and rejoin the stream on Read.
type RedisConsumer struct {
	client *redis.Client
	cfg    ConsumerConfig
	now    func() time.Time
}

func NewRedisConsumer(client *redis.Client, cfg ConsumerConfig) (*RedisConsumer, error) {
	consumer := &RedisConsumer{
		client: client,
		cfg:    cfg,
		now:    time.Now,
	}

	if err := consumer.ensureGroup(context.Background()); err != nil { //nolint:contextcheck
		return nil, err
	}

	return consumer, nil
}

func (c *RedisConsumer) ensureGroup(ctx context.Context) error {
	// Starting from "0" instead of "$" keeps messages added while no group existed.
	if err := c.client.XGroupCreateMkStream(ctx, c.cfg.Stream, c.cfg.Group, "0").Err(); err != nil && err.Error() != "BUSYGROUP Consumer Group name already exists" {
		return fmt.Errorf("creating consumer group: %w", err)
	}
	return nil
}

func (c *RedisConsumer) delayedKey() string {
	return c.cfg.Stream + ":delayed"
}

func (c *RedisConsumer) Read(ctx context.Context) ([]Message, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Component: "sprint.queue.consumer",
	})

	if n, err := c.promoteDue(ctx); err != nil {
		slog.WarnContext(ctx, "failed to promote delayed retries", "error", err)
	} else if n > 0 {
		slog.DebugContext(ctx, "promoted delayed retries", "count", n)
	}

	streams, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    c.cfg.Group,
		Consumer: c.cfg.Consumer,
		// ">" reads only messages never delivered to this group. Unacked ones belong to the reclaimer.
		Streams: []string{c.cfg.Stream, ">"},
		Count:   c.cfg.BatchSize,
		Block:   c.cfg.Block,
	}).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []Message{}, nil
		}
		return nil, fmt.Errorf("reading from stream: %w", err)
	}

	var messages []Message
	for _, stream := range streams {
		for _, msg := range stream.Messages {
			parsed, parseErr := ParseMessage(msg)
			if parseErr != nil {
				slog.ErrorContext(ctx, "failed to parse message",
					"error", parseErr,
					"raw_message_id", msg.ID,
					"stream", c.cfg.Stream)
				_ = c.Ack(ctx, Message{ID: msg.ID, Raw: msg})
				continue
			}
			messages = append(messages, parsed)
		}
	}

	if len(messages) > 0 {
		slog.DebugContext(ctx, "read messages from stream",
			"count", len(messages),
			"stream", c.cfg.Stream,
			"consumer", c.cfg.Consumer)
	}

	return messages, nil
}

func (c *RedisConsumer) Ack(ctx context.Context, msg Message) error {
	if err := c.client.XAck(ctx, c.cfg.Stream, c.cfg.Group, msg.ID).Err(); err != nil {
		return fmt.Errorf("xack (stream=%s): %w", c.cfg.Stream, err)
	}

	slog.DebugContext(ctx, "message acknowledged", "stream", c.cfg.Stream)
	return nil
}

func (c *RedisConsumer) Requeue(ctx context.Context, msg Message, errMsg string) error {
	return c.RequeueWithAttempt(ctx, msg, msg.Attempt+1, errMsg)
}

// RequeueWithAttempt schedules the retry and acks the original in one MULTI, so a
// failure or cancellation leaves the message pending for the reclaimer.
func (c *RedisConsumer) RequeueWithAttempt(ctx context.Context, msg Message, attempt int, errMsg string) error {
	if attempt <= 0 {
		attempt = max(msg.Attempt, 1)
	}

	values := messageValues(msg, attempt)
	if errMsg != "" {
		values["last_error"] = errMsg
	}

	delay := c.requeueDelay(attempt)
	var member []byte
	if delay > 0 {
		// requeued_from keeps members unique when the same task fails twice at one attempt.
		values["requeued_from"] = msg.ID
		var err error
		member, err = json.Marshal(stringValues(values))
		if err != nil {
			return fmt.Errorf("encoding delayed retry: %w", err)
		}
	}

	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		if delay > 0 {
			pipe.ZAdd(ctx, c.delayedKey(), redis.Z{
				Score:  float64(c.now().Add(delay).UnixMilli()),
				Member: string(member),
			})
		} else {
			pipe.XAdd(ctx, &redis.XAddArgs{Stream: c.cfg.Stream, Values: values})
		}
		pipe.XAck(ctx, c.cfg.Stream, c.cfg.Group, msg.ID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("requeue (stream=%s): %w", c.cfg.Stream, err)
	}

	slog.InfoContext(ctx, "message requeued for retry",
		"next_attempt", attempt,
		"delay", delay,
		"reason", errMsg)
	return nil
}

// promoteDue moves retries whose delay has passed back onto the stream. WATCH makes
// concurrent consumers promote each retry once.
func (c *RedisConsumer) promoteDue(ctx context.Context) (int, error) {
	key := c.delayedKey()
	promoted := 0
	err := c.client.Watch(ctx, func(tx *redis.Tx) error {
		due, err := tx.ZRangeByScore(ctx, key, &redis.ZRangeBy{
			Min:   "-inf",
			Max:   strconv.FormatInt(c.now().UnixMilli(), 10),
			Count: promoteBatch,
		}).Result()
		if err != nil || len(due) == 0 {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			for _, member := range due {
				var values map[string]string
				if err := json.Unmarshal([]byte(member), &values); err != nil {
					slog.ErrorContext(ctx, "dropping undecodable delayed retry", "error", err)
					pipe.ZRem(ctx, key, member)
					continue
				}
				fields := make(map[string]any, len(values))
				for k, v := range values {
					if k != "requeued_from" {
						fields[k] = v
					}
				}
				pipe.ZRem(ctx, key, member)
				pipe.XAdd(ctx, &redis.XAddArgs{Stream: c.cfg.Stream, Values: fields})
				promoted++
			}
			return nil
		})
		return err
	}, key)
	if errors.Is(err, redis.TxFailedErr) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("promoting delayed retries: %w", err)
	}
	return promoted, nil
}

// requeueDelay is RequeueDelay for the second attempt, doubled for each one after.
func (c *RedisConsumer) requeueDelay(attempt int) time.Duration {
	if c.cfg.RequeueDelay <= 0 {
		return 0
	}
	delay := c.cfg.RequeueDelay
	for i := 2; i < attempt && delay < maxRequeueDelay; i++ {
		delay *= 2
	}
	return min(delay, maxRequeueDelay)
}

func (c *RedisConsumer) SendDLQ(ctx context.Context, msg Message, errMsg string) error {
	values := messageValues(msg, msg.Attempt)
	values["error"] = errMsg

	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.XAdd(ctx, &redis.XAddArgs{Stream: c.cfg.DLQStream, Values: values})
		pipe.XAck(ctx, c.cfg.Stream, c.cfg.Group, msg.ID)
		return nil
	})
	if err != nil {
		return fmt.Errorf("dlq (stream=%s): %w", c.cfg.DLQStream, err)
	}

	slog.ErrorContext(ctx, "message sent to DLQ",
		"final_error", errMsg,
		"dlq_stream", c.cfg.DLQStream)
	return nil
}

func ParseMessage(msg redis.XMessage) (Message, error) {
	taskTypeStr, err := parseOptionalString(msg.Values, "task_type")
	if err != nil {
		return Message{}, err
	}
	taskType := TaskType(taskTypeStr)
	if taskType == "" {
		return Message{}, fmt.Errorf("missing task_type")
	}
	if !taskType.IsValid() {
		return Message{}, fmt.Errorf("unknown task_type %q", taskType)
	}

	payload, err := parseOptionalString(msg.Values, "payload")
	if err != nil {
		return Message{}, err
	}
	if payload == "" {
		return Message{}, fmt.Errorf("missing payload")
	}

	attempt, err := parseOptionalInt(msg.Values, "attempt")
	if err != nil {
		return Message{}, err
	}
	if attempt == 0 {
		attempt = 1
	}

	traceID, err := parseOptionalString(msg.Values, "trace_id")
	if err != nil {
		return Message{}, err
	}
	key, err := parseOptionalString(msg.Values, "idempotency_key")
	if err != nil {
		return Message{}, err
	}

	return Message{
		ID:             msg.ID,
		TaskType:       taskType,
		Payload:        []byte(payload),
		Attempt:        attempt,
		TraceID:        traceID,
		IdempotencyKey: key,
		Raw:            msg,
	}, nil
}

func parseOptionalInt(values map[string]any, key string) (int, error) {
	raw, ok := values[key]
	if !ok {
		return 0, nil
	}
	num, err := strconv.Atoi(fmt.Sprint(raw))
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, err)
	}
	return num, nil
}

func parseOptionalString(values map[string]any, key string) (string, error) {
	raw, ok := values[key]
	if !ok {
		return "", nil
	}
	return fmt.Sprint(raw), nil
}

func messageValues(msg Message, attempt int) map[string]any {
	values := map[string]any{
		"task_type": string(msg.TaskType),
		"payload":   string(msg.Payload),
		"attempt":   attempt,
	}
	if msg.TraceID != "" {
		values["trace_id"] = msg.TraceID
	}
	if msg.IdempotencyKey != "" {
		values["idempotency_key"] = msg.IdempotencyKey
	}
	return values
}

func stringValues(values map[string]any) map[string]string {
	out := make(map[string]string, len(values))
	for k, v := range values {
		out[k] = fmt.Sprint(v)
	}
	return out
}
