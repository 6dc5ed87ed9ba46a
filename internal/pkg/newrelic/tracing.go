package newrelic

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Middleware returns the nrecho middleware, or a pass-through when app is nil
func Middleware(app *newrelic.Application) echo.MiddlewareFunc {
	if app == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return nrecho.Middleware(app)
}

// FromContext extracts New Relic transaction from standard context
func FromContext(ctx context.Context) *newrelic.Transaction {
	return newrelic.FromContext(ctx)
}

// StartBackgroundTransaction starts a non-web transaction and attaches it to ctx.
// Returns a nil transaction and ctx unchanged when app is nil.
func StartBackgroundTransaction(ctx context.Context, app *newrelic.Application, name string) (*newrelic.Transaction, context.Context) {
	if app == nil {
		return nil, ctx
	}
	txn := app.StartTransaction(name)
	return txn, newrelic.NewContext(ctx, txn)
}

// WithSegment executes a function within a New Relic segment
func WithSegment(ctx context.Context, segmentName string, fn func() error) error {
	if txn := FromContext(ctx); txn != nil {
		defer txn.StartSegment(segmentName).End()
	}

	return fn()
}

// WithSegmentAndReturn executes a function within a New Relic segment and returns a value
func WithSegmentAndReturn[T any](ctx context.Context, segmentName string, fn func() (T, error)) (T, error) {
	if txn := FromContext(ctx); txn != nil {
		defer txn.StartSegment(segmentName).End()
	}

	return fn()
}

// WithDatastoreSegment records fn as a Postgres datastore call on the current transaction
func WithDatastoreSegment(ctx context.Context, collection, operation string, fn func() error) error {
	if txn := FromContext(ctx); txn != nil {
		segment := newrelic.DatastoreSegment{
			StartTime:  txn.StartSegmentNow(),
			Product:    newrelic.DatastorePostgres,
			Collection: collection,
			Operation:  operation,
		}
		defer segment.End()
	}

	return fn()
}

// WithMessageSegment records fn as a NATS publish on the current transaction
func WithMessageSegment(ctx context.Context, subject string, fn func() error) error {
	if txn := FromContext(ctx); txn != nil {
		segment := newrelic.MessageProducerSegment{
			StartTime:       txn.StartSegmentNow(),
			Library:         "NATS",
			DestinationType: newrelic.MessageTopic,
			DestinationName: subject,
		}
		defer segment.End()
	}

	return fn()
}
