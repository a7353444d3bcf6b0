package statemachine

import (
	"errors"

	"github.com/elsonbaty123/wagbty2/models"
)

// Transition defines a valid state change and who can perform it
type Transition struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string // "chef", "delivery", "customer", "system"
}

// validTransitions is the authoritative state machine definition
var validTransitions = []Transition{
	// Chef reviews a fresh order
	{From: models.StatusPendingReview, To: models.StatusPreparing, Actor: "chef"},
	{From: models.StatusPendingReview, To: models.StatusRejected, Actor: "chef"},
	// Customer can withdraw an order the chef has not accepted yet
	{From: models.StatusPendingReview, To: models.StatusRejected, Actor: "customer"},
	// Orders queue while the chef is busy; the system parks them
	{From: models.StatusPendingReview, To: models.StatusWaitingForChef, Actor: "system"},
	{From: models.StatusWaitingForChef, To: models.StatusPreparing, Actor: "chef"},
	{From: models.StatusWaitingForChef, To: models.StatusRejected, Actor: "chef"},
	{From: models.StatusWaitingForChef, To: models.StatusRejected, Actor: "customer"},
	// Chef hands the finished order to delivery
	{From: models.StatusPreparing, To: models.StatusReadyForDelivery, Actor: "chef"},
	// Delivery rider takes it out and settles it
	{From: models.StatusReadyForDelivery, To: models.StatusOutForDelivery, Actor: "delivery"},
	{From: models.StatusOutForDelivery, To: models.StatusDelivered, Actor: "delivery"},
	{From: models.StatusOutForDelivery, To: models.StatusNotDelivered, Actor: "delivery"},
}

// transitionKey is used to look up valid transitions quickly
type transitionKey struct {
	From  models.OrderStatus
	To    models.OrderStatus
	Actor string
}

// Build a lookup map for O(1) validation
var transitionMap = func() map[transitionKey]bool {
	m := make(map[transitionKey]bool)
	for _, t := range validTransitions {
		m[transitionKey{t.From, t.To, t.Actor}] = true
	}
	return m
}()

// ValidTransitionsFrom returns all valid next states from a given state
func ValidTransitionsFrom(status models.OrderStatus) []models.OrderStatus {
	var nexts []models.OrderStatus
	seen := map[models.OrderStatus]bool{}
	for _, t := range validTransitions {
		if t.From == status && !seen[t.To] {
			nexts = append(nexts, t.To)
			seen[t.To] = true
		}
	}
	return nexts
}

// CanTransition checks if a given actor can move from one state to another
func CanTransition(from, to models.OrderStatus, actor string) error {
	key := transitionKey{From: from, To: to, Actor: actor}
	if transitionMap[key] {
		return nil
	}
	return errors.New(
		"invalid transition: " + string(from) + " → " + string(to) +
			" is not allowed for actor '" + actor + "'. " +
			"Valid transitions from " + string(from) + " are: " + describeValidFrom(from),
	)
}

func describeValidFrom(status models.OrderStatus) string {
	nexts := ValidTransitionsFrom(status)
	if len(nexts) == 0 {
		return "none (terminal state)"
	}
	result := ""
	for i, s := range nexts {
		if i > 0 {
			result += ", "
		}
		result += string(s)
	}
	return result
}

// GetAllTransitions returns the full state machine for documentation
func GetAllTransitions() []Transition {
	return validTransitions
}
