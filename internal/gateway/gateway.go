// Package gateway exposes every resource operation behind one interface that
// prefers the remote API and falls back to the local stores when the remote
// call fails. Without an API URL the stores are used directly.
package gateway

import (
	"github.com/revisaai/revisaai/internal/remote"
	"github.com/revisaai/revisaai/internal/store"
	"github.com/revisaai/revisaai/pkg/logger"
	"github.com/revisaai/revisaai/pkg/metrics"
)

// Gateway groups the per-resource gateways.
type Gateway struct {
	Auth          *AuthGateway
	Motos         *MotoGateway
	Revisions     *RevisionGateway
	Notifications *NotificationGateway
	Workshops     *WorkshopGateway

	rc *remote.Client
}

// New builds a gateway. A nil rc selects mock-only mode for the lifetime of the gateway.
func New(rc *remote.Client, stores *store.Set) *Gateway {
	b := base{rc: rc, stores: stores}
	return &Gateway{
		Auth:          &AuthGateway{base: b},
		Motos:         &MotoGateway{base: b},
		Revisions:     &RevisionGateway{base: b},
		Notifications: &NotificationGateway{base: b},
		Workshops:     &WorkshopGateway{base: b},
		rc:            rc,
	}
}

// MockOnly reports whether the gateway never calls the remote API.
func (g *Gateway) MockOnly() bool { return g.rc == nil }

type base struct {
	rc     *remote.Client
	stores *store.Set
}

// run tries the remote call and serves the operation from the store when it fails.
// Only store errors reach the caller.
func run[T any](b base, resource, op string, call func(*remote.Client) remote.Result[T], local func() (T, error)) (T, error) {
	if b.rc != nil {
		res := call(b.rc)
		if res.Ok() {
			return res.Value, nil
		}
		logger.Warnf("%s %s: remote failed, serving from local store: %v", resource, op, res.Err)
		metrics.GatewayFallbacks.WithLabelValues(resource, op).Inc()
	}
	return local()
}

// exec is run for operations without a payload.
func exec(b base, resource, op string, call func(*remote.Client) remote.Result[remote.Empty], local func() error) error {
	_, err := run(b, resource, op, call, func() (remote.Empty, error) {
		return remote.Empty{}, local()
	})
	return err
}
