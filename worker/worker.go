package worker

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/SujayCh07/codelinc10-sub000/insights"
	"github.com/SujayCh07/codelinc10-sub000/logger"
	"github.com/SujayCh07/codelinc10-sub000/models"
	"github.com/SujayCh07/codelinc10-sub000/mongodb"
	"github.com/SujayCh07/codelinc10-sub000/sse"

	"go.uber.org/zap"
)

// WorkerPool processes enrichment responses off the Kafka consumer. Each
// partition gets its own goroutine and buffer so responses for a given
// user stay ordered.
type WorkerPool struct {
	workers    int
	partitions []chan []byte
	wg         sync.WaitGroup
	ctx        context.Context
	cancelFunc context.CancelFunc

	// Metrics
	mu                 sync.RWMutex
	messagesProcessed  uint64
	processingDuration uint64
	bufferFillLevels   []uint64
	messagesDropped    uint64
}

func NewWorkerPool(workers int) *WorkerPool {
	ctx, cancel := context.WithCancel(context.Background())
	partitions := make([]chan []byte, workers)
	bufferLevels := make([]uint64, workers)
	for i := range partitions {
		partitions[i] = make(chan []byte, 100) // Buffer size of 100 per partition
	}
	return &WorkerPool{
		workers:          workers,
		partitions:       partitions,
		ctx:              ctx,
		cancelFunc:       cancel,
		bufferFillLevels: bufferLevels,
	}
}

func (wp *WorkerPool) Start() {
	logger.Get().Info("Starting worker pool", zap.Int("workers", wp.workers))
	for i := range wp.partitions {
		wp.wg.Add(1)
		go wp.worker(i)
	}
}

func (wp *WorkerPool) Stop() {
	logger.Get().Info("Stopping worker pool")
	wp.cancelFunc()
	for _, ch := range wp.partitions {
		close(ch)
	}
	wp.wg.Wait()
}

func (wp *WorkerPool) Submit(job []byte, partition int32) {
	if int(partition) >= len(wp.partitions) {
		wp.mu.Lock()
		wp.messagesDropped++
		wp.mu.Unlock()
		logger.Get().Error("Invalid partition number",
			zap.Int32("partition", partition),
			zap.Int("max_partitions", len(wp.partitions)))
		return
	}

	wp.mu.Lock()
	wp.bufferFillLevels[partition]++
	wp.mu.Unlock()

	select {
	case wp.partitions[partition] <- job:
		logger.Get().Debug("Job submitted to worker pool",
			zap.Int32("partition", partition))
	case <-wp.ctx.Done():
		wp.mu.Lock()
		wp.messagesDropped++
		wp.mu.Unlock()
		logger.Get().Warn("Worker pool is stopped, job not submitted")
	}
}

func (wp *WorkerPool) worker(id int) {
	defer wp.wg.Done()
	logger.Get().Info("Worker started", zap.Int("worker_id", id))

	for {
		select {
		case job, ok := <-wp.partitions[id]:
			if !ok {
				logger.Get().Info("Worker stopping", zap.Int("worker_id", id))
				return
			}

			wp.mu.Lock()
			wp.bufferFillLevels[id]--
			wp.mu.Unlock()

			startTime := time.Now()

			if err := wp.processResponse(job); err != nil {
				wp.mu.Lock()
				wp.messagesDropped++
				wp.mu.Unlock()
				logger.Get().Error("Failed to process enrichment response",
					zap.Int("worker_id", id),
					zap.Error(err))
				continue
			}

			wp.mu.Lock()
			wp.messagesProcessed++
			wp.processingDuration += uint64(time.Since(startTime).Milliseconds())
			wp.mu.Unlock()

		case <-wp.ctx.Done():
			logger.Get().Info("Worker stopping due to context cancellation",
				zap.Int("worker_id", id))
			return
		}
	}
}

// processResponse applies the enrichment merge policy: persona, statement,
// and theme may be overridden; timeline, priorities, and conversation stay
// local. Error responses are dropped without touching the stored insight.
func (wp *WorkerPool) processResponse(job []byte) error {
	var resp models.EnrichmentResponse
	if err := json.Unmarshal(job, &resp); err != nil {
		return err
	}

	if resp.Error {
		logger.Get().Warn("enrichment service reported an error, keeping local insight",
			zap.String("user_id", resp.UserID),
			zap.String("request_id", resp.RequestID))
		return nil
	}

	ctx, cancel := context.WithTimeout(wp.ctx, 10*time.Second)
	defer cancel()

	local, err := mongodb.GetInsightByUserID(ctx, resp.UserID)
	if err != nil {
		return err
	}
	if local == nil {
		// Profile was reset between request and response; nothing to merge.
		logger.Get().Warn("no stored insight for enrichment response",
			zap.String("user_id", resp.UserID))
		return nil
	}

	merged := insights.MergeEnrichment(*local, resp.Enrichment)
	if err := mongodb.SaveInsight(ctx, &merged); err != nil {
		return err
	}

	payload, err := json.Marshal(&merged)
	if err != nil {
		return err
	}
	sse.SendToClient(resp.UserID, string(payload))
	// Enrichment is one merged insight per generation; end the stream.
	sse.CloseClient(resp.UserID)
	return nil
}

// MetricsHandler returns the current metrics as JSON
func (wp *WorkerPool) MetricsHandler(w http.ResponseWriter, r *http.Request) {
	wp.mu.RLock()
	defer wp.mu.RUnlock()

	var avgProcessingTime float64
	if wp.messagesProcessed > 0 {
		avgProcessingTime = float64(wp.processingDuration) / float64(wp.messagesProcessed)
	}

	metrics := map[string]any{
		"messages_processed": wp.messagesProcessed,
		"messages_dropped":   wp.messagesDropped,
		"avg_processing_ms":  avgProcessingTime,
		"buffer_levels":      wp.bufferFillLevels,
		"active_workers":     wp.workers,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(metrics)
}
