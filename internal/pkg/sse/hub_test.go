package sse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_SubscribePublish(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("emp-1")
	defer cleanup()

	assert.Equal(t, 1, hub.SubscriberCount("emp-1"))

	hub.Publish("emp-1", Event{Event: "badge_awarded", Data: "Gold"})

	select {
	case ev := <-ch:
		assert.Equal(t, "badge_awarded", ev.Event)
		assert.Equal(t, "Gold", ev.Data)
	default:
		t.Fatal("expected event on subscriber channel")
	}
}

func TestHub_PublishToOtherEmployeeNotDelivered(t *testing.T) {
	hub := NewHub()

	ch, cleanup := hub.Subscribe("emp-1")
	defer cleanup()

	hub.Publish("emp-2", Event{Event: "badge_awarded"})

	select {
	case <-ch:
		t.Fatal("event for emp-2 must not reach emp-1")
	default:
	}
}

func TestHub_CleanupRemovesSubscriber(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("emp-1")
	_, cleanup2 := hub.Subscribe("emp-1")
	require.Equal(t, 2, hub.SubscriberCount("emp-1"))

	cleanup()
	assert.Equal(t, 1, hub.SubscriberCount("emp-1"))
	cleanup2()
	assert.Equal(t, 0, hub.SubscriberCount("emp-1"))
	assert.Equal(t, 0, hub.TotalSubscribers())
}

func TestHub_PublishToMany(t *testing.T) {
	hub := NewHub()

	ch1, cleanup1 := hub.Subscribe("emp-1")
	defer cleanup1()
	ch2, cleanup2 := hub.Subscribe("emp-2")
	defer cleanup2()

	hub.PublishToMany([]string{"emp-1", "emp-2"}, Event{Event: "monthly_summary"})

	ev1 := <-ch1
	ev2 := <-ch2
	assert.Equal(t, "emp-1", ev1.EmployeeID)
	assert.Equal(t, "emp-2", ev2.EmployeeID)
}

func TestHub_FullChannelDoesNotBlock(t *testing.T) {
	hub := NewHub()

	_, cleanup := hub.Subscribe("emp-1")
	defer cleanup()

	// Channel buffer is 10; extra publishes must be dropped, not block.
	for i := 0; i < 25; i++ {
		hub.Publish("emp-1", Event{Event: "objective_met"})
	}
}
