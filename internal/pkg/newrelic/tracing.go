package newrelic

import (
	"context"

	"github.com/newrelic/go-agent/v3/newrelic"
)

// FromContext extracts New Relic transaction from standard context
func FromContext(ctx context.Context) *newrelic.Transaction {
	return newrelic.FromContext(ctx)
}

// StartDatastoreSegment times a store call inside the transaction carried by ctx.
// The returned func ends the segment and is safe to call without a transaction.
func StartDatastoreSegment(ctx context.Context, product newrelic.DatastoreProduct, collection, operation string) func() {
	txn := FromContext(ctx)
	if txn == nil {
		return func() {}
	}
	segment := &newrelic.DatastoreSegment{
		StartTime:  txn.StartSegmentNow(),
		Product:    product,
		Collection: collection,
		Operation:  operation,
	}
	return segment.End
}

// StartBackgroundTransaction starts a non-web transaction and attaches it to ctx.
// With a nil application the context is returned unchanged.
func StartBackgroundTransaction(ctx context.Context, app *newrelic.Application, name string) (context.Context, func()) {
	if app == nil {
		return ctx, func() {}
	}
	txn := app.StartTransaction(name)
	return newrelic.NewContext(ctx, txn), txn.End
}

// NoticeError reports err on the transaction carried by ctx
func NoticeError(ctx context.Context, err error) {
	if txn := FromContext(ctx); txn != nil && err != nil {
		txn.NoticeError(err)
	}
}

// AddAttribute adds a custom attribute to the transaction carried by ctx
func AddAttribute(ctx context.Context, key string, value interface{}) {
	if txn := FromContext(ctx); txn != nil {
		txn.AddAttribute(key, value)
	}
}
