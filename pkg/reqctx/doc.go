// Package reqctx carries request-scoped metadata through context.Context.
//
// The HTTP request ID middleware sets a RequestMeta on every request:
//
//	ctx = reqctx.WithRequestMeta(ctx, &reqctx.RequestMeta{
//	    RequestID:   "abc-123",
//	    ClientIP:    "192.168.1.1",
//	    UserAgent:   "Mozilla/5.0",
//	    RequestedAt: time.Now(),
//	})
//
// Handlers read it back to capture submission metadata, and the log
// handler in pkg/logs uses it to stamp request_id on every record.
// Values survive context.WithoutCancel, so work detached from the
// request keeps its request ID.
package reqctx
