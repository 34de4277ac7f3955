// Package flightplandb provides a client for the Flight Plan Database API
// (https://flightplandatabase.com/dev/api).
//
// The API serves flight plans, airports, navaids, NATS/PACOTS tracks and
// weather reports. Most endpoints work without credentials against a small
// daily request quota; authenticated requests carry an API key as the
// username of an HTTP Basic header and get a larger quota.
//
// # Usage
//
// Create a client, optionally with an API key:
//
//	logger := zerolog.New(os.Stderr)
//	client := flightplandb.NewClient("your-api-key", logger)
//
//	plan, err := client.Plan(ctx, 62373)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Listing endpoints return lazy iterators that fetch pages on demand:
//
//	for plan, err := range client.UserPlans(ctx, "lemon", flightplandb.WithPageSize(50)) {
//		if err != nil {
//			log.Fatal(err)
//		}
//		fmt.Println(plan.ID)
//	}
//
// # Error Handling
//
// Failed requests return an *APIError which unwraps to a sentinel kind per
// HTTP status, so callers can test with errors.Is:
//
//	if errors.Is(err, flightplandb.ErrNotFound) {
//		// no such plan
//	}
//
// The client never retries and imposes no timeouts of its own; wrap calls in
// a context or supply an http.Client with a timeout via WithHTTPClient.
package flightplandb
