package assistant

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/leeway-ai/store-assistant/internal/ai"
	"github.com/leeway-ai/store-assistant/internal/catalog"
	"github.com/leeway-ai/store-assistant/internal/order"
	"github.com/leeway-ai/store-assistant/internal/session"
)

const (
	maxReplyProducts = 5
	retrievalTopK    = 3
	minAddressLen    = 10
)

type service struct {
	sessions  session.Store
	locker    *session.Locker
	catalog   *catalog.Catalog
	orders    order.Store
	retriever Retriever
	gen       ai.Generator
	repo      Repo
	storeName string
}

func NewService(
	sessions session.Store,
	locker *session.Locker,
	cat *catalog.Catalog,
	orders order.Store,
	retriever Retriever,
	gen ai.Generator,
	repo Repo,
	storeName string,
) Service {
	return &service{
		sessions:  sessions,
		locker:    locker,
		catalog:   cat,
		orders:    orders,
		retriever: retriever,
		gen:       gen,
		repo:      repo,
		storeName: storeName,
	}
}

func (s *service) ProcessMessage(ctx context.Context, sessionID, message string) (*Reply, error) {
	log.Printf("[svc] session=%s text=%q", sessionID, message)

	// Greetings bypass everything, including an active ordering flow:
	// a bare "hi" mid-order must not disturb the pending draft.
	if isGreeting(message) {
		return &Reply{
			Response: fmt.Sprintf("Aslam u Alaikum! 👋 Welcome to %s. Main apki kya madad kar sakti hoon?", s.storeName),
			Products: []catalog.Product{},
		}, nil
	}

	unlock := s.locker.Lock(sessionID)
	defer unlock()

	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// A confirmed order ends the conversation; the next message starts
	// a fresh one.
	if sess.State == session.StateOrderConfirmation {
		sess.Reset()
	}

	sess.AppendMessage("user", message, nil)
	s.mirror(ctx, sessionID, "user", message)

	var reply *Reply
	switch {
	case sess.InOrderingFlow():
		reply = s.advanceOrder(ctx, sess, message)
	case hasOrderIntent(message):
		reply = s.startOrder(ctx, sess, message)
	default:
		reply, err = s.compose(ctx, sess, message)
		if err != nil {
			return nil, err
		}
	}

	if reply.Products == nil {
		reply.Products = []catalog.Product{}
	}

	sess.AppendMessage("assistant", reply.Response, nil)
	s.mirror(ctx, sessionID, "assistant", reply.Response)

	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, err
	}

	return reply, nil
}

// SyncProducts reloads the catalog from storage and re-indexes it.
func (s *service) SyncProducts(ctx context.Context) error {
	if err := s.catalog.Reload(ctx); err != nil {
		return err
	}
	return s.retriever.SyncCatalog(ctx)
}

// startOrder opens a draft. If the intent message already names a catalog
// product, the item goes straight onto the draft and the session stays in
// quantity collection; otherwise the missing-field dispatch takes over.
func (s *service) startOrder(ctx context.Context, sess *session.Session, message string) *Reply {
	sess.PendingOrder = order.NewDraft()
	sess.State = session.StateOrdering

	if name, qty := extractProductQuantity(message); name != "" {
		if p, ok := s.matchProduct(name); ok {
			sess.PendingOrder.AddItem(order.Item{
				ProductID:   p.ID,
				ProductName: p.Name,
				Quantity:    qty,
				Price:       p.Price,
			})
			sess.State = session.StateCollectingQuantity
			return &Reply{Response: fmt.Sprintf(
				"Added %d x %s to your order. Anything else, or shall we proceed with your details?",
				qty, p.Name,
			)}
		}
	}

	return s.askMissing(ctx, sess)
}

// advanceOrder is the per-state dispatch for messages arriving mid-flow.
func (s *service) advanceOrder(ctx context.Context, sess *session.Session, message string) *Reply {
	switch sess.State {
	case session.StateCollectingName:
		name := extractName(message)
		if name == "" {
			return &Reply{Response: "I didn't catch your name. Could you tell me your name, please?"}
		}
		sess.PendingOrder.CustomerName = name
		sess.State = session.StateCollectingPhone
		return &Reply{Response: fmt.Sprintf("Nice to meet you, %s! What's your phone number?", name)}

	case session.StateCollectingPhone:
		phone := extractPhone(message)
		if phone == "" {
			return &Reply{Response: "That doesn't look like a valid phone number. Could you share it again?"}
		}
		sess.PendingOrder.PhoneNumber = phone
		sess.State = session.StateCollectingAddress
		return &Reply{Response: "Great! What's your delivery address?"}

	case session.StateCollectingAddress:
		address := strings.TrimSpace(message)
		if len(address) <= minAddressLen {
			return &Reply{Response: "That address looks too short. Could you share your complete delivery address?"}
		}
		sess.PendingOrder.Address = address
		return s.confirm(ctx, sess)

	case session.StateCollectingQuantity:
		name, qty := extractProductQuantity(message)
		if name == "" {
			return s.askMissing(ctx, sess)
		}
		p, ok := s.matchProduct(name)
		if !ok {
			return &Reply{Response: s.productNotFound()}
		}
		sess.PendingOrder.AddItem(order.Item{
			ProductID:   p.ID,
			ProductName: p.Name,
			Quantity:    qty,
			Price:       p.Price,
		})
		return &Reply{Response: fmt.Sprintf(
			"Added %d x %s to your order. Anything else, or shall we proceed with your details?",
			qty, p.Name,
		)}

	default:
		return s.askMissing(ctx, sess)
	}
}

// askMissing prompts for the first missing draft field, name before phone
// before address, moving the session into the matching collecting state.
// With all fields present it hands off to confirm.
func (s *service) askMissing(ctx context.Context, sess *session.Session) *Reply {
	draft := sess.PendingOrder
	switch {
	case draft.CustomerName == "":
		sess.State = session.StateCollectingName
		return &Reply{Response: "I'd be happy to help you place an order! What's your name?"}
	case draft.PhoneNumber == "":
		sess.State = session.StateCollectingPhone
		return &Reply{Response: "What's your phone number?"}
	case draft.Address == "":
		sess.State = session.StateCollectingAddress
		return &Reply{Response: "What's your delivery address?"}
	default:
		return s.confirm(ctx, sess)
	}
}

// confirm finalizes a complete draft: the order is persisted fire-and-forget,
// the draft leaves the session, and the payload rides back on the reply.
func (s *service) confirm(ctx context.Context, sess *session.Session) *Reply {
	draft := sess.PendingOrder
	if draft == nil || !draft.IsComplete() {
		return &Reply{Response: "I need a bit more information to complete your order. Please provide your name, phone number, and address."}
	}

	finalized, err := draft.Finalize()
	if err != nil {
		return &Reply{Response: "I need a bit more information to complete your order. Please provide your name, phone number, and address."}
	}

	if err := s.orders.Append(ctx, finalized); err != nil {
		log.Printf("[svc] order persist failed id=%s: %v", finalized.ID, err)
	}

	sess.State = session.StateOrderConfirmation
	sess.PendingOrder = nil

	return &Reply{
		Response: "Thank you for your order! Proceeding to checkout.",
		Action:   ActionAddToCart,
		Payload:  &finalized,
	}
}

// compose answers a non-ordering message: catalog matches plus retrieved
// context go to the generation provider. The session is committed before
// the outbound call so a provider failure cannot lose the turn.
func (s *service) compose(ctx context.Context, sess *session.Session, message string) (*Reply, error) {
	products := s.catalog.SearchText(message)
	if len(products) > 0 {
		sess.State = session.StateProductSearch
	} else {
		sess.State = session.StateGeneralQuery
	}

	if err := s.sessions.Save(ctx, sess); err != nil {
		log.Printf("[svc] save before generation failed session=%s: %v", sess.ID, err)
	}

	items := s.retriever.Retrieve(ctx, message, retrievalTopK)

	answer, err := s.gen.GenerateWithContext(ctx, message, items, ai.SystemPrompt(s.storeName))
	if err != nil {
		return nil, fmt.Errorf("generate reply: %w", err)
	}

	reply := &Reply{Response: answer, Products: products}
	if len(reply.Products) > maxReplyProducts {
		reply.Products = reply.Products[:maxReplyProducts]
	}
	if len(reply.Products) > 0 {
		reply.Action = ActionDisplayProducts
	}
	return reply, nil
}

// productNotFound steers the customer toward categories we do carry.
func (s *service) productNotFound() string {
	cats := s.catalog.Categories()
	if len(cats) == 0 {
		return "I couldn't find that product. Could you please specify the product name?"
	}
	return fmt.Sprintf(
		"I couldn't find that product. We have %s. Could you please specify the product name?",
		strings.Join(cats, ", "),
	)
}

// matchProduct matches an extracted product phrase against catalog product
// names in both directions, so "silver bracelets" still finds the product
// named "Silver Bracelet".
func (s *service) matchProduct(name string) (catalog.Product, bool) {
	needle := strings.ToLower(strings.TrimSpace(name))
	if needle == "" {
		return catalog.Product{}, false
	}
	for _, p := range s.catalog.Products() {
		pname := strings.ToLower(p.Name)
		if strings.Contains(pname, needle) || strings.Contains(needle, pname) {
			return p, true
		}
	}
	return catalog.Product{}, false
}

func (s *service) mirror(ctx context.Context, sessionID, role, content string) {
	if s.repo == nil {
		return
	}
	if err := s.repo.SaveMessage(ctx, sessionID, role, content); err != nil {
		log.Printf("[svc] history mirror failed session=%s: %v", sessionID, err)
	}
}
