// Package queue provides the work queue that connects the directory walker
// to the indexing workers.
//
// Queue is a mutex and condition-variable FIFO. Push never blocks, Pop blocks
// until work arrives, and MarkComplete tells consumers that once the queue
// drains there is nothing left to do. Every pushed item is returned by
// exactly one Pop.
package queue
