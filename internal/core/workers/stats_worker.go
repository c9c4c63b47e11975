package workers

import (
	"context"
	"log"

	"github.com/comitanigiacomo/kanso-habit-dashboard/internal/core/domain"
	"github.com/comitanigiacomo/kanso-habit-dashboard/internal/metrics"
)

const DefaultQueueSize = 100

type BoardRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Board, error)
}

type StatsRefresher interface {
	Refresh(ctx context.Context, board *domain.Board) *domain.Statistics
}

type RefreshJob struct {
	BoardID string
}

// StatsWorker recomputes statistics in the background after a board changes,
// so the next read is served from the cache.
type StatsWorker struct {
	boardRepo BoardRepository
	stats     StatsRefresher
	jobs      chan RefreshJob
	done      chan struct{}
}

func NewStatsWorker(boardRepo BoardRepository, stats StatsRefresher, queueSize int) *StatsWorker {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &StatsWorker{
		boardRepo: boardRepo,
		stats:     stats,
		jobs:      make(chan RefreshJob, queueSize),
		done:      make(chan struct{}),
	}
}

// Start runs the worker loop until ctx is cancelled. Done is closed once the
// loop has exited.
func (w *StatsWorker) Start(ctx context.Context) {
	go func() {
		defer close(w.done)
		log.Println("[WORKER] Stats worker started in background...")
		for {
			select {
			case job := <-w.jobs:
				w.processJob(ctx, job)
			case <-ctx.Done():
				log.Println("[WORKER] Stats worker shutting down...")
				return
			}
		}
	}()
}

func (w *StatsWorker) Done() <-chan struct{} {
	return w.done
}

// Enqueue schedules a refresh without blocking. When the queue is full the
// job is dropped; the next read computes the statistics on demand instead.
func (w *StatsWorker) Enqueue(boardID string) {
	select {
	case w.jobs <- RefreshJob{BoardID: boardID}:
	default:
		metrics.WorkerJobs.WithLabelValues("dropped").Inc()
		log.Printf("[WORKER] Queue full! Dropping refresh for board %s", boardID)
	}
}

func (w *StatsWorker) processJob(ctx context.Context, job RefreshJob) {
	board, err := w.boardRepo.GetByID(ctx, job.BoardID)
	if err != nil {
		metrics.WorkerJobs.WithLabelValues("failed").Inc()
		log.Printf("[WORKER] Error fetching board %s: %v", job.BoardID, err)
		return
	}

	stats := w.stats.Refresh(ctx, board)
	metrics.WorkerJobs.WithLabelValues("refreshed").Inc()
	log.Printf("[WORKER] Statistics refreshed for %s (v%d): overall=%.2f%%", board.Title, board.Version, stats.OverallPercentage)
}
