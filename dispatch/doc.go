// Package dispatch partitions point sets across workers and reduces the
// partial pair counts they produce.
//
// What:
//
//   - Split cuts n points into contiguous, order-preserving, near-equal ranges.
//   - Pool is a bounded worker pool scoped to one estimator call. Acquire it
//     with NewPool, release it with Close (usually deferred).
//   - Group is a fixed set of cooperating ranks that all-reduce their partial
//     sums; GroupReducer runs the same partitioning over a Group.
//   - Pool and GroupReducer both satisfy Reducer, the interface the
//     estimator pipelines consume.
//
// Guarantees:
//
//   - Partial results are summed in partition order, so plain counts from
//     one worker and from many are bit-identical.
//   - A failing partition aborts the reduction; its error is returned and
//     no partial result escapes.
//   - Every rank of a Group obtains the same reduced result.
//
// Errors:
//
//   - ErrPoolClosed:   work submitted after Close.
//   - ErrRankFailed:   a peer rank failed before contributing its partial sum.
//   - ErrReduceShape:  ranks contributed partial results of different lengths.
package dispatch
