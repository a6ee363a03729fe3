// Package teamwork provides types, interfaces, and helpers for working with the
// Teamwork.com projects API.
//
// # Overview
//
// The teamwork package defines the request and response values, the error
// taxonomy, the client-side Validator, and the interfaces for resource
// handlers (ResourceHandler) and the top-level Client. A concrete
// implementation is provided by the twclient package, which wires
// configuration, transport, and basic authentication. Most consumers should
// import twclient to construct a client and then resolve resources by name or
// through the typed accessors.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/teamwork/pkg/teamwork"
//	  "github.com/fivetwenty-io/teamwork/pkg/twclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := twclient.New(&teamwork.Config{APIKey: "twp_xxx", Domain: "acme.teamwork.com"})
//	  if err != nil { log.Fatal(err) }
//
//	  project, err := cli.Projects().Get(ctx, 42)
//	  if err != nil { log.Fatal(err) }
//	  _ = project
//
//	  tasks, err := cli.Resolve("tasks")
//	  if err != nil { log.Fatal(err) }
//	  _, _ = tasks.Call(ctx, "allForProject", teamwork.Args{
//	    IDs:   []any{42},
//	    Query: teamwork.NewQuery().Add("page", 2).Add("pageSize", 50),
//	  })
//	}
//
// # Results
//
// Results are the decoded JSON values (map[string]any, []any, and scalars)
// with the operation's envelope key already removed. Decode converts such a
// value into a typed struct:
//
//	var account teamwork.Account
//	err := teamwork.Decode(raw, &account)
//
// # Errors
//
// Validation failures are reported as *ValidationError before any network
// call. Unknown resource names yield *UnknownResourceError, a rejected API key
// yields *NotAuthorizedError, and every other failed call yields
// *RequestFailedError. Helpers such as IsValidation and IsNotAuthorized make it
// easy to branch on these cases.
//
// # Interceptors
//
// InterceptorChain runs request interceptors after a request is built and
// response interceptors after the transport returns. Logging, header, rate
// limit, metrics (in-memory and Prometheus), and NATS call event interceptors
// are provided.
package teamwork
