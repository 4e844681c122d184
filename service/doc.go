// Package service is the only write entry point into the engine. It
// serializes all submitters onto the single-writer book, sequences
// every executed trade, and hands executions to the journal for the
// reporter to publish. The server's transports (gRPC, the Kafka ingest
// loop) never touch the book directly; the standalone CLI drives its
// own book without the service.
package service
