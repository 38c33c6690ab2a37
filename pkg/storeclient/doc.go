// Package storeclient provides the primary entry point for constructing a
// store client that implements the castore.Store interface.
//
// It layers configuration, HTTP transport, and authentication on top of the
// resource interfaces and types defined in the castore package. Most
// applications should import storeclient to build a store, then use the
// returned castore.Store to access resource-specific clients, for example
// Marks(), Heatmaps(), Slides(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/castore/pkg/castore"
//	  "github.com/fivetwenty-io/castore/pkg/schema"
//	  "github.com/fivetwenty-io/castore/pkg/storeclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // Minimal: an absolute base URL (no auth).
//	  store, err := storeclient.New(&castore.Config{Base: "https://camic.example.org/data/"})
//	  if err != nil { log.Fatal(err) }
//
//	  // Or the default relative base resolved against an origin, with a
//	  // token and the built-in record schemas:
//	  store, err = storeclient.New(&castore.Config{
//	    Origin:     "https://camic.example.org/",
//	    Token:      "eyJhbGciOi...", // bearer token
//	    Validation: schema.Default(),
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  res, err := store.Marks().Find(ctx, castore.MarkFindParams{Slide: "slide-1"})
//	  if err != nil { log.Fatal(err) }
//	  _ = res.Records()
//	}
//
// # Transport
//
// When Config.Transport is nil, New builds the default HTTP transport. It
// makes exactly one attempt per call and never retries; a non-2xx answer is
// returned as a castore.Result carrying a Failure. Set Config.Transport to
// replace it, for example with a castore.TransportFunc in tests.
//
// # Helpers
//
// The package also provides convenience constructors NewWithBase and
// NewWithToken that wrap New with the appropriate configuration.
package storeclient
