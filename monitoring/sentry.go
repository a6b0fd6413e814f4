package monitoring

import (
	"time"

	"github.com/getsentry/sentry-go"
)

// InitSentry enables error reporting when a DSN is configured. Without one
// the report helpers do nothing.
func InitSentry(dsn, environment string) error {
	if dsn == "" {
		return nil
	}
	return sentry.Init(sentry.ClientOptions{
		Dsn:              dsn,
		Environment:      environment,
		AttachStacktrace: true,
	})
}

func ReportError(err error) {
	sentry.CaptureException(err)
}

func ReportPanic(recovered any) {
	sentry.CurrentHub().Recover(recovered)
}

func FlushSentry() {
	sentry.Flush(2 * time.Second)
}
