// Package castore provides types, interfaces, and helpers for working with a
// caMicroscope-style annotation storage service.
//
// # Overview
//
// The castore package defines the request pipeline shared by every store
// operation: the query encoder (Query, EncodeQuery), the result envelope
// (Result, Failure), the validator registry used to filter records
// (Registry, Validator), and the transport contract (Transport, Request,
// Response). A concrete implementation of the resource clients is provided by
// the storeclient package, which wires configuration, the default HTTP
// transport, and logging.
//
// Getting a store
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/castore/pkg/castore"
//	  "github.com/fivetwenty-io/castore/pkg/storeclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  store, err := storeclient.New(&castore.Config{
//	    Base:   "./data/",
//	    Origin: "https://camic.example.org/",
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  res, err := store.Marks().Find(ctx, castore.MarkFindParams{Slide: "slide-1"})
//	  if err != nil { log.Fatal(err) }
//	  if res.Failed() { log.Fatal(res.Failure) }
//	  _ = res.Records()
//	}
//
// # Queries
//
// Query keeps parameters in insertion order. Set skips falsy values (empty
// strings, zero numbers, false, nil) so optional filters are simply omitted;
// Require records a value even when it is zero. Slices are encoded as a
// bracketed list of double-quoted elements:
//
//	castore.NewQuery().Set("name", []string{"a", "b"}).Encode()
//	// name=%5B%22a%22%2C%22b%22%5D
//
// # Results and errors
//
// A non-2xx response is not an error: it is returned as a Result whose
// Failure carries the status text and request URL. Transport errors and
// malformed JSON bodies are returned as errors. Precondition failures such as
// a missing slide return sentinel errors (ErrSlideRequired,
// ErrInvalidArguments) before any request is made.
//
// # Validation
//
// A Registry maps lowercase entity type tags to validators. Read operations
// drop invalid records from arrays and return nil for an invalid single
// record; write operations only log a warning. The schema package ships
// validators for the built-in entity types.
package castore
