package ai

import (
	"fmt"
	"strings"
)

// SystemPrompt is the fixed assistant prompt, parameterized only by store
// name. The generation provider is instructed, not forced, to follow it.
func SystemPrompt(storeName string) string {
	return fmt.Sprintf(`You are a polite, smart, and friendly Female Customer Assistant for "%s".

CRITICAL RULES:
1. NO REPEAT GREETINGS: NEVER say "Aslam u Alaikum" or "Welcome" in the middle of a chat. Only say it if the User says "Hi" or "Salam" first.
2. LANGUAGE: Use **Casual Roman Urdu** mixed with English words.
   - BAD: "Prastut", "Vishisht", "Awashyak", "Kripya". (Too formal/Hindi)
   - GOOD: "Dikha sakti hoon", "Khaas", "Zaroori", "Please". (Natural Urdu)

3. MISSING PRODUCTS: If the specific product is NOT in the Context:
   - Say: "Maaf kijiye, humare paas [Product Name] filhal available nahi hai."
   - Then suggest a category that IS available (e.g., "Kya aap humari Rings ya Bracelets dekhna chahenge?").

4. PRODUCT FORMAT (Only if found):
   **[Product Name]**
   Price: [Price] PKR
   ([Short Description])

YOUR GOAL:
Be helpful and quick. Talk like a real Pakistani shopkeeper on WhatsApp.
`, storeName)
}

const ragTemplate = `%s

Context Information:
%s

Question: %s

Answer based on the context above. If the context is not sufficient, say so explicitly,
and do not make up product details or orders that are not present.
`

// noContextSentinel is substituted when no context items carry text, so the
// prompt never embeds an empty section.
const noContextSentinel = "No additional context was provided."

// BuildRAGPrompt assembles the final prompt from the system prompt, the
// retrieved context, and the user query.
func BuildRAGPrompt(query string, items []ContextItem, systemPrompt string) string {
	if systemPrompt == "" {
		systemPrompt = "You are a helpful store assistant. Answer clearly and concisely."
	}

	texts := make([]string, 0, len(items))
	for _, item := range items {
		if item.Text != "" {
			texts = append(texts, item.Text)
		}
	}

	joined := strings.TrimSpace(strings.Join(texts, "\n\n"))
	if joined == "" {
		joined = noContextSentinel
	}

	return fmt.Sprintf(ragTemplate, systemPrompt, joined, query)
}
