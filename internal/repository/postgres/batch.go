package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"vaultgate/internal/domain/repositories"
)

// BatchExecutor implements the BatchExecutor interface on top of pgx
// batches. Each chunk runs inside its own transaction; there is no
// atomicity across chunks.
type BatchExecutor struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewBatchExecutor creates a new batch executor
func NewBatchExecutor(config *RepositoryConfig) repositories.BatchExecutor {
	return &BatchExecutor{
		pool:   config.Pool,
		logger: config.Logger,
	}
}

// ExecuteBatched executes ops in consecutive chunks of at most chunkSize.
// chunkSize 0 means one atomic unit for everything.
func (e *BatchExecutor) ExecuteBatched(ctx context.Context, ops []repositories.BatchOp, chunkSize int) error {
	return executeBatched(ctx, ops, chunkSize, e.runChunk)
}

// executeBatched is the chunking loop, factored out so the ordering and
// abort-on-failure behavior can be tested without a database. Chunks run
// strictly in input order; the first failure aborts the remaining chunks
// while earlier chunks stay applied.
func executeBatched(ctx context.Context, ops []repositories.BatchOp, chunkSize int, run func(ctx context.Context, chunk []repositories.BatchOp) error) error {
	if len(ops) == 0 {
		return nil
	}
	for _, chunk := range chunkOps(ops, chunkSize) {
		if err := run(ctx, chunk); err != nil {
			return err
		}
	}
	return nil
}

// chunkOps splits ops into consecutive chunks of at most chunkSize,
// preserving input order. A chunkSize of 0 yields a single chunk.
func chunkOps(ops []repositories.BatchOp, chunkSize int) [][]repositories.BatchOp {
	if chunkSize <= 0 {
		return [][]repositories.BatchOp{ops}
	}
	chunks := make([][]repositories.BatchOp, 0, (len(ops)+chunkSize-1)/chunkSize)
	for start := 0; start < len(ops); start += chunkSize {
		end := min(start+chunkSize, len(ops))
		chunks = append(chunks, ops[start:end])
	}
	return chunks
}

// runChunk executes one chunk as a single transaction.
func (e *BatchExecutor) runChunk(ctx context.Context, chunk []repositories.BatchOp) error {
	tx, err := e.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin batch chunk: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && err != pgx.ErrTxClosed {
			e.logger.Warn("batch chunk rollback failed", "error", err)
		}
	}()

	batch := &pgx.Batch{}
	for _, op := range chunk {
		batch.Queue(op.SQL, op.Args...)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("execute batch chunk: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit batch chunk: %w", err)
	}

	return nil
}
