// Package twclient builds a teamwork.Client from a teamwork.Config.
//
// It normalises the account URL, wires the default transport with basic
// authentication, and registers the built-in resources. Most applications
// should import twclient to build a client, then use the returned
// teamwork.Client to reach resources by name or through the typed accessors.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//	  "os"
//
//	  "github.com/fivetwenty-io/teamwork/pkg/teamwork"
//	  "github.com/fivetwenty-io/teamwork/pkg/twclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // A bare domain gets an https:// scheme.
//	  cli, err := twclient.NewWithDomain("acme.teamwork.com", "twp_xxx")
//	  if err != nil { log.Fatal(err) }
//
//	  // Or a full config with rate limiting and a logger.
//	  cli, err = twclient.New(&teamwork.Config{
//	    APIKey:            "twp_xxx",
//	    BaseURL:           "https://acme.teamwork.com/",
//	    RequestsPerMinute: 120,
//	    Logger:            teamwork.NewLogger("teamwork", "debug", os.Stderr),
//	    Debug:             true,
//	  })
//	  if err != nil { log.Fatal(err) }
//
//	  starred, err := cli.Projects().Call(ctx, "allStarred", teamwork.Args{})
//	  if err != nil { log.Fatal(err) }
//	  _ = starred
//	}
//
// Requests are sent once and never retried. Bound them with the context
// passed to each handler method.
package twclient
