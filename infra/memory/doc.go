// Package memory provides the typed object pool the service layer
// uses to recycle order allocations. The book itself is allocation
// agnostic; pooling only reduces garbage on the hot submission path.
package memory
