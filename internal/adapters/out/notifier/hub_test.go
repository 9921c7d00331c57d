package notifier_test

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"dispatch/internal/adapters/out/notifier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	mu     sync.Mutex
	events []ports.Event
	fail   bool
}

func (s *fakeSender) Send(event ports.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("connection closed")
	}
	s.events = append(s.events, event)
	return nil
}

func (s *fakeSender) received() []ports.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]ports.Event(nil), s.events...)
}

func newHub() *notifier.Hub {
	return notifier.NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHub_BroadcastToRole_ReachesAllRoleConnections(t *testing.T) {
	hub := newHub()

	partnerA := &fakeSender{}
	partnerB := &fakeSender{}
	customer := &fakeSender{}
	hub.Register(kernel.RolePartner, "partner-1", partnerA)
	hub.Register(kernel.RolePartner, "partner-2", partnerB)
	hub.Register(kernel.RoleCustomer, "cust-1", customer)

	event := ports.OrderTakenEvent(kernel.NewUUID())
	hub.BroadcastToRole(kernel.RolePartner, event)

	require.Len(t, partnerA.received(), 1)
	require.Len(t, partnerB.received(), 1)
	assert.Equal(t, ports.EventOrderTaken, partnerA.received()[0].Kind)
	assert.Empty(t, customer.received(), "customers must not receive partner broadcasts")
}

func TestHub_NotifyUser_ReachesExactIdentityOnly(t *testing.T) {
	hub := newHub()

	target := &fakeSender{}
	otherUser := &fakeSender{}
	sameIDOtherRole := &fakeSender{}
	hub.Register(kernel.RoleCustomer, "cust-1", target)
	hub.Register(kernel.RoleCustomer, "cust-2", otherUser)
	hub.Register(kernel.RolePartner, "cust-1", sameIDOtherRole)

	event := ports.OrderAcceptedEvent(kernel.NewUUID(), "partner-7")
	hub.NotifyUser(kernel.RoleCustomer, "cust-1", event)

	require.Len(t, target.received(), 1)
	assert.Equal(t, ports.EventOrderAccepted, target.received()[0].Kind)
	assert.Empty(t, otherUser.received())
	assert.Empty(t, sameIDOtherRole.received())
}

func TestHub_NotifyUser_NoConnections_IsNoOp(t *testing.T) {
	hub := newHub()
	hub.NotifyUser(kernel.RoleCustomer, "cust-1", ports.OrderDeliveredEvent(kernel.NewUUID()))
}

func TestHub_SameUserMultipleConnections_AllReceive(t *testing.T) {
	hub := newHub()

	phone := &fakeSender{}
	laptop := &fakeSender{}
	hub.Register(kernel.RoleCustomer, "cust-1", phone)
	hub.Register(kernel.RoleCustomer, "cust-1", laptop)

	hub.NotifyUser(kernel.RoleCustomer, "cust-1", ports.OrderDeliveredEvent(kernel.NewUUID()))

	assert.Len(t, phone.received(), 1)
	assert.Len(t, laptop.received(), 1)
}

func TestHub_FailedSend_DropsConnection(t *testing.T) {
	hub := newHub()

	dead := &fakeSender{fail: true}
	alive := &fakeSender{}
	hub.Register(kernel.RolePartner, "partner-1", dead)
	hub.Register(kernel.RolePartner, "partner-2", alive)

	hub.BroadcastToRole(kernel.RolePartner, ports.OrderTakenEvent(kernel.NewUUID()))
	require.Len(t, alive.received(), 1)

	// The dead connection was unregistered; it gets nothing further and
	// healthy connections keep receiving.
	dead.fail = false
	hub.BroadcastToRole(kernel.RolePartner, ports.OrderTakenEvent(kernel.NewUUID()))
	assert.Empty(t, dead.received())
	assert.Len(t, alive.received(), 2)
}

func TestHub_Unregister_StopsDelivery(t *testing.T) {
	hub := newHub()

	sender := &fakeSender{}
	sub := hub.Register(kernel.RolePartner, "partner-1", sender)

	hub.Unregister(sub)
	hub.Unregister(sub) // second unregister is safe

	hub.BroadcastToRole(kernel.RolePartner, ports.OrderTakenEvent(kernel.NewUUID()))
	assert.Empty(t, sender.received())
}

func TestHub_ConcurrentRegisterAndBroadcast(t *testing.T) {
	hub := newHub()

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			sender := &fakeSender{}
			sub := hub.Register(kernel.RolePartner, "partner", sender)
			hub.Unregister(sub)
		}()
		go func() {
			defer wg.Done()
			hub.BroadcastToRole(kernel.RolePartner, ports.OrderTakenEvent(kernel.NewUUID()))
		}()
	}
	wg.Wait()
}
