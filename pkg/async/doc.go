// Package async provides minimal value-carrying futures for the parts of
// the client that fan out independent API calls: assembling the dashboard
// from several endpoints at once, or firing a best-effort request whose
// result only needs collecting later.
//
//	stats := async.Go(ctx, func(ctx context.Context) (estimates.Statistics, error) {
//		return estimatesClient.Statistics(ctx)
//	})
//	plans := async.Go(ctx, func(ctx context.Context) ([]subscriptions.Plan, error) {
//		return subsClient.Plans(ctx)
//	})
//
//	s, err := stats.Await()
//	p, err2 := plans.Await()
//
// Futures complete exactly once and are safe to await from multiple
// goroutines.
package async
