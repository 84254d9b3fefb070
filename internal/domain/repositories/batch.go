package repositories

import "context"

// BatchOp is one bound write statement queued for batched execution.
type BatchOp struct {
	SQL  string
	Args []interface{}
}

// BatchExecutor executes a sequence of write operations in chunks.
//
// A chunkSize of 0 executes everything as one atomic unit. Otherwise the
// operations are split into consecutive chunks of at most chunkSize, each
// chunk one atomic unit, executed strictly in input order. There is no
// atomicity across chunks: a failure in chunk N leaves chunks 1..N-1
// durably applied, aborts the remaining chunks and surfaces the error.
type BatchExecutor interface {
	ExecuteBatched(ctx context.Context, ops []BatchOp, chunkSize int) error
}

// TxFn is a function that runs within a transaction
type TxFn func(ctx context.Context) error

// TransactionManager handles database transactions
type TransactionManager interface {
	// ExecTx executes a function within a transaction
	ExecTx(ctx context.Context, fn TxFn) error
}
