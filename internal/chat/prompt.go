package chat

import (
	"fmt"
	"strings"
	"time"

	"jeancro/internal/i18n"
)

// maxPromptProducts caps how much catalog detail goes into the system
// prompt; the remainder is summarised as a "+K more" line.
const maxPromptProducts = 10

// BuildSystemPrompt assembles the instruction block for the generative
// fallback: persona, FAQ dump, a capped product summary, the category list
// and the fixed ordering/payment/shipping guidance.
func BuildSystemPrompt(snap Snapshot, lang i18n.Lang, now time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are JeancroBot, a friendly and helpful AI assistant for %s, an online clothing store.\n", snap.Settings.StoreName)
	fmt.Fprintf(&b, "Current language for responses: %s.\n\n", lang)

	b.WriteString("Available FAQs:\n")
	for _, f := range snap.FAQs {
		fmt.Fprintf(&b, "- Q: %s\n  A: %s\n", f.Question.Get(lang), f.Answer.Get(lang))
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Available Products (%d total):\n", len(snap.Products))
	shown := snap.Products
	if len(shown) > maxPromptProducts {
		shown = shown[:maxPromptProducts]
	}
	for _, p := range shown {
		fmt.Fprintf(&b, "- Name: %s\n  Price: %s\n  Category: %s\n  Description: %s\n\n",
			p.Name.Get(lang),
			FormatPrice(snap.Settings.CurrencySymbol, p.Price),
			p.CategoryID,
			Truncate(p.Description.Get(lang), 100))
	}
	if extra := len(snap.Products) - len(shown); extra > 0 {
		fmt.Fprintf(&b, "(+%d more products in the catalog)\n\n", extra)
	}

	b.WriteString("Categories:\n")
	for _, c := range snap.Categories {
		fmt.Fprintf(&b, "- %s (%s)\n", c.Name.Get(lang), c.ID)
	}
	b.WriteString("\n")

	b.WriteString(`Ordering, payment and shipping guidance:

## How orders are placed:
1. Browse the products and pick what you want
2. Add products to the cart
3. Review the cart
4. Press the "Send via WhatsApp" button
5. WhatsApp opens with the order details prefilled
6. Send the message to the Jeancro team
7. The team confirms within minutes
8. Delivery details and payment method are agreed over chat
9. A delivery time is scheduled

## Why WhatsApp ordering:
- No login or account needed
- Direct, fast contact with the sales team
- Instant order confirmation
- Full flexibility on delivery and payment

## Available payment methods:
- Cash on Delivery
- Bank cards (Visa, Mastercard)
- Bank transfer
- PayPal
- Electronic payment through local banks

## Payment handling:
- All payments are secure and encrypted
- Cash on delivery: pay the courier on arrival
- Electronic payment: charged right after order confirmation
- Cancellations are refunded within 3-7 business days
- Shipping: free for orders over 500 MAD, otherwise 30 MAD

## Processing times:
- Order preparation: 24-48 hours
- In-city delivery: 1-2 business days
- Out-of-city delivery: 3-5 business days
- International shipping: 7-14 business days

`)

	b.WriteString(`If the user's query is directly answered by an FAQ, provide that answer.
If the user asks about products, provide information about our available products.
If the user asks about a specific product, provide details about that product.
If the user asks about ordering or payments, provide detailed information from the above guidelines.
Otherwise, answer general questions about fashion, clothing, or common e-commerce queries.
Keep responses concise and helpful. If you don't know the answer, say so politely.
Do not provide medical, legal, or financial advice.
The store sells Men's, Women's, and Kids' clothing and accessories.
`)
	fmt.Fprintf(&b, "Today's date is %s.", now.Format("2006-01-02"))

	return b.String()
}
