package session

// State is the conversation state of one session. A session is in exactly
// one state at any time.
type State string

const (
	StateInitial            State = "initial"
	StateProductSearch      State = "product_search"
	StateProductDetails     State = "product_details"
	StateOrdering           State = "ordering"
	StateCollectingName     State = "collecting_name"
	StateCollectingPhone    State = "collecting_phone"
	StateCollectingAddress  State = "collecting_address"
	StateCollectingQuantity State = "collecting_quantity"
	StateOrderConfirmation  State = "order_confirmation"
	StateGeneralQuery       State = "general_query"
)

// orderingStates are the states during which a pending draft must exist.
var orderingStates = map[State]bool{
	StateOrdering:           true,
	StateCollectingName:     true,
	StateCollectingPhone:    true,
	StateCollectingAddress:  true,
	StateCollectingQuantity: true,
}

// IsOrdering reports whether the state is part of the order-collection flow.
func (s State) IsOrdering() bool {
	return orderingStates[s]
}
