package crawler

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// FailureKind indica por que uma busca ficou sem dados.
type FailureKind string

const (
	KindTimeout     FailureKind = "timeout"
	KindNetwork     FailureKind = "network"
	KindRateLimited FailureKind = "rate_limited"
	KindClientError FailureKind = "client_error"
	KindServerError FailureKind = "server_error"
	KindMalformed   FailureKind = "malformed"
	KindCanceled    FailureKind = "canceled"
)

// FetchError é o que o chamador recebe quando o client desiste. O erro de
// transporte original só vai para o log, não é encapsulado.
type FetchError struct {
	Kind     FailureKind
	Status   int
	Attempts int
	URL      string

	cause error
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("fetch %s: %s (status %d) after %d attempt(s)", e.URL, e.Kind, e.Status, e.Attempts)
	}
	return fmt.Sprintf("fetch %s: %s after %d attempt(s)", e.URL, e.Kind, e.Attempts)
}

// RetryPolicy decide quais tipos de falha ganham nova tentativa.
type RetryPolicy struct {
	// RetryClientErrors volta a repetir respostas 4xx (além de 429).
	RetryClientErrors bool
}

func (p RetryPolicy) ShouldRetry(k FailureKind) bool {
	switch k {
	case KindTimeout, KindNetwork, KindRateLimited, KindServerError:
		return true
	case KindClientError:
		return p.RetryClientErrors
	default:
		return false
	}
}

func classifyStatus(status int) FailureKind {
	switch {
	case status == http.StatusTooManyRequests:
		return KindRateLimited
	case status >= 400 && status < 500:
		return KindClientError
	default:
		return KindServerError
	}
}

func classifyTransport(ctx context.Context, err error) FailureKind {
	if ctx.Err() != nil {
		return KindCanceled
	}
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		return KindTimeout
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	return KindNetwork
}
