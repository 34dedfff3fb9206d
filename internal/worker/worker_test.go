package worker_test

import (
	"context"
	"errors"
	"fmt"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/queue"
	"github.com/SL-IT-AMAZING/founder-sprint-workspace-sub001/internal/worker"
)

var _ = Describe("Worker", func() {
	var (
		consumer  *mockConsumer
		processor *mockProcessor
		w         *worker.Worker
		ctx       context.Context
	)

	message := func(id string, attempt int) queue.Message {
		return queue.Message{ID: id, TaskType: queue.TaskTypeSendEmail, Payload: []byte("{}"), Attempt: attempt}
	}

	BeforeEach(func() {
		ctx = context.Background()
		consumer = &mockConsumer{}
		processor = &mockProcessor{}
		w = worker.New(consumer, processor, worker.Config{MaxAttempts: 3, ErrorBackoff: 5 * time.Millisecond})
	})

	Describe("Handle", func() {
		It("acknowledges processed messages", func() {
			Expect(w.Handle(ctx, message("1-0", 1))).To(Succeed())

			acked, requeued, dlq := consumer.snapshot()
			Expect(acked).To(ConsistOf("1-0"))
			Expect(requeued).To(BeEmpty())
			Expect(dlq).To(BeEmpty())
		})

		It("requeues failures while attempts remain", func() {
			processor.processFn = func(context.Context, queue.Message) error { return errors.New("smtp timeout") }

			err := w.Handle(ctx, message("2-0", 2))

			Expect(err).To(HaveOccurred())
			acked, requeued, dlq := consumer.snapshot()
			Expect(acked).To(BeEmpty())
			Expect(requeued).To(ConsistOf("2-0"))
			Expect(dlq).To(BeEmpty())
			Expect(consumer.errors).To(ConsistOf("smtp timeout"))
		})

		It("moves messages to the DLQ on the last attempt", func() {
			processor.processFn = func(context.Context, queue.Message) error { return errors.New("smtp timeout") }

			_ = w.Handle(ctx, message("3-0", 3))

			_, requeued, dlq := consumer.snapshot()
			Expect(requeued).To(BeEmpty())
			Expect(dlq).To(ConsistOf("3-0"))
		})

		It("skips retries for permanent failures", func() {
			processor.processFn = func(context.Context, queue.Message) error {
				return fmt.Errorf("%w: bad payload", worker.ErrPermanent)
			}

			_ = w.Handle(ctx, message("4-0", 1))

			_, requeued, dlq := consumer.snapshot()
			Expect(requeued).To(BeEmpty())
			Expect(dlq).To(ConsistOf("4-0"))
		})

		It("recovers from panics and retries", func() {
			processor.processFn = func(context.Context, queue.Message) error { panic("nil map") }

			err := w.Handle(ctx, message("5-0", 1))

			Expect(err).To(MatchError(ContainSubstring("panic: nil map")))
			_, requeued, _ := consumer.snapshot()
			Expect(requeued).To(ConsistOf("5-0"))
		})
	})

	Describe("Run", func() {
		It("processes batches until stopped", func() {
			consumer.batches = [][]queue.Message{
				{message("1-0", 1), message("2-0", 1)},
				{message("3-0", 1)},
			}

			done := make(chan error, 1)
			go func() { done <- w.Run(ctx) }()

			Eventually(func() []string {
				acked, _, _ := consumer.snapshot()
				return acked
			}).Should(ConsistOf("1-0", "2-0", "3-0"))

			w.Stop()
			Eventually(done).Should(Receive(BeNil()))
		})

		It("returns when the context is cancelled, backing off on read errors", func() {
			consumer.readErr = errors.New("redis unavailable")
			runCtx, cancel := context.WithCancel(ctx)

			done := make(chan error, 1)
			go func() { done <- w.Run(runCtx) }()

			time.Sleep(20 * time.Millisecond)
			cancel()
			Eventually(done).Should(Receive(MatchError(context.Canceled)))
		})
	})
})

var _ = Describe("Scheduler", func() {
	It("runs at startup and on every tick until stopped", func() {
		maintainer := &mockMaintainer{err: errors.New("db down")}
		s := worker.NewScheduler(maintainer, 10*time.Millisecond)

		go s.Run(context.Background())

		Eventually(maintainer.count).Should(BeNumerically(">=", 3))
		s.Stop()

		runs := maintainer.count()
		Consistently(maintainer.count, 50*time.Millisecond).Should(Equal(runs))
	})
})
