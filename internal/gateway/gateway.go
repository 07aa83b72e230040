package gateway

import "context"

// Requester is the transport surface gateways depend on. Satisfied by
// *transport.Client; tests substitute a recording fake.
type Requester interface {
	Request(ctx context.Context, method, endpoint string, body any, token string, out any) error
}
