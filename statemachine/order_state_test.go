package statemachine

import (
	"testing"

	"github.com/elsonbaty123/wagbty2/models"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	t.Run("allowed transitions", func(t *testing.T) {
		allowed := []struct {
			from, to models.OrderStatus
			actor    string
		}{
			{models.StatusPendingReview, models.StatusPreparing, "chef"},
			{models.StatusPendingReview, models.StatusRejected, "chef"},
			{models.StatusPendingReview, models.StatusRejected, "customer"},
			{models.StatusPendingReview, models.StatusWaitingForChef, "system"},
			{models.StatusWaitingForChef, models.StatusPreparing, "chef"},
			{models.StatusWaitingForChef, models.StatusRejected, "customer"},
			{models.StatusPreparing, models.StatusReadyForDelivery, "chef"},
			{models.StatusReadyForDelivery, models.StatusOutForDelivery, "delivery"},
			{models.StatusOutForDelivery, models.StatusDelivered, "delivery"},
			{models.StatusOutForDelivery, models.StatusNotDelivered, "delivery"},
		}
		for _, tr := range allowed {
			assert.NoError(t, CanTransition(tr.from, tr.to, tr.actor),
				"%s -> %s by %s", tr.from, tr.to, tr.actor)
		}
	})

	t.Run("wrong actor is rejected", func(t *testing.T) {
		assert.Error(t, CanTransition(models.StatusPendingReview, models.StatusPreparing, "customer"))
		assert.Error(t, CanTransition(models.StatusReadyForDelivery, models.StatusOutForDelivery, "chef"))
		assert.Error(t, CanTransition(models.StatusOutForDelivery, models.StatusDelivered, "customer"))
	})

	t.Run("skipping states is rejected", func(t *testing.T) {
		assert.Error(t, CanTransition(models.StatusPendingReview, models.StatusDelivered, "chef"))
		assert.Error(t, CanTransition(models.StatusPreparing, models.StatusOutForDelivery, "delivery"))
	})

	t.Run("customer cannot cancel once preparing", func(t *testing.T) {
		assert.Error(t, CanTransition(models.StatusPreparing, models.StatusRejected, "customer"))
	})

	t.Run("terminal states have no exits", func(t *testing.T) {
		for _, terminal := range []models.OrderStatus{
			models.StatusDelivered, models.StatusRejected, models.StatusNotDelivered,
		} {
			assert.Empty(t, ValidTransitionsFrom(terminal), string(terminal))
			err := CanTransition(terminal, models.StatusPreparing, "chef")
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "terminal state")
		}
	})
}

func TestValidTransitionsFrom(t *testing.T) {
	nexts := ValidTransitionsFrom(models.StatusPendingReview)
	assert.ElementsMatch(t, []models.OrderStatus{
		models.StatusPreparing,
		models.StatusRejected,
		models.StatusWaitingForChef,
	}, nexts)

	// duplicate targets across actors collapse to one entry
	rejected := 0
	for _, s := range nexts {
		if s == models.StatusRejected {
			rejected++
		}
	}
	assert.Equal(t, 1, rejected)
}

func TestGetAllTransitions(t *testing.T) {
	all := GetAllTransitions()
	assert.NotEmpty(t, all)
	for _, tr := range all {
		assert.NoError(t, CanTransition(tr.From, tr.To, tr.Actor))
	}
}
