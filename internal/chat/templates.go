package chat

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"jeancro/internal/domain"
	"jeancro/internal/i18n"
)

const divider = "━━━━━━━━━━━━━━━━━━\n"

// FormatPrice renders an amount the way every chat template does: currency
// symbol glued to a two-decimal value.
func FormatPrice(symbol string, amount float64) string {
	return fmt.Sprintf("%s%.2f", symbol, amount)
}

// Truncate shortens s to max runes and appends "..." when it cut anything.
// Rune-based so Arabic text is never split mid-character.
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "..."
}

// ImageMarker wraps a product image URL in the in-band token the chat UI
// scans message text for.
func ImageMarker(url string) string {
	return "[PRODUCT_IMAGE:" + url + "]"
}

var imageMarkerRe = regexp.MustCompile(`\[PRODUCT_IMAGE:([^\]]*)\]`)

// ExtractImageMarkers strips every image token out of text and returns the
// cleaned text plus the URLs in order of appearance. Callers that want a
// structured attachment list use this; callers that render raw text can
// ignore it since the marker stays in the dispatcher's return value.
func ExtractImageMarkers(text string) (string, []string) {
	var urls []string
	for _, m := range imageMarkerRe.FindAllStringSubmatch(text, -1) {
		urls = append(urls, m[1])
	}
	if urls == nil {
		return text, nil
	}
	clean := imageMarkerRe.ReplaceAllString(text, "")
	return clean, urls
}

func availabilityLine(p domain.Product, lang i18n.Lang) string {
	if p.Available() {
		return i18n.Pick(lang, "✅ **Available Now**\n\n", "✅ **متوفر الآن**\n\n")
	}
	return i18n.Pick(lang, "❌ **Currently Out of Stock**\n\n", "❌ **غير متوفر حالياً**\n\n")
}

// ProductsListMessage renders the full catalog with a numbered entry per
// product and a footer telling the user what to type next.
func ProductsListMessage(products []domain.Product, lang i18n.Lang, symbol string) string {
	if len(products) == 0 {
		return i18n.Pick(lang,
			"🛍️ Sorry, there are no products available at the moment.",
			"🛍️ عذراً، لا توجد منتجات متوفرة حالياً.")
	}

	var b strings.Builder
	b.WriteString(i18n.Pick(lang,
		"🛍️ **Jeancro Store - Our Featured Products:**\n\n",
		"🛍️ **متجر جين كرو - منتجاتنا المميزة:**\n\n"))

	for i, p := range products {
		b.WriteString(divider)
		fmt.Fprintf(&b, "📦 **%d. %s**\n\n", i+1, p.Name.Get(lang))
		fmt.Fprintf(&b, "📝 *%s*\n\n", Truncate(p.Description.Get(lang), 60))
		fmt.Fprintf(&b, "💰 **%s:** %s\n", i18n.Pick(lang, "Price", "السعر"), FormatPrice(symbol, p.Price))
		b.WriteString(availabilityLine(p, lang))
	}

	b.WriteString(divider)
	b.WriteString("\n")
	b.WriteString(i18n.Pick(lang, "💡 **How to interact with me?**\n\n", "💡 **كيف تتفاعل معي؟**\n\n"))
	b.WriteString(i18n.Pick(lang,
		"🔍 For more product details: type \"product number 1\"\n",
		"🔍 لمعرفة تفاصيل أكثر عن منتج: اكتب \"المنتج رقم 1\"\n"))
	b.WriteString(i18n.Pick(lang,
		"🛒 To order a product: type \"I want to order\" or \"how to buy\"\n",
		"🛒 لطلب منتج: اكتب \"أريد طلب\" أو \"كيف أشتري\"\n"))
	b.WriteString(i18n.Pick(lang,
		"📞 For direct contact: type \"contact\" or \"whatsapp\"",
		"📞 للتواصل المباشر: اكتب \"التواصل\" أو \"واتساب\""))
	return b.String()
}

// ProductDetailsMessage renders one product in full, image marker included.
func ProductDetailsMessage(p domain.Product, lang i18n.Lang, symbol string) string {
	details := p.DetailsFor(lang)

	var b strings.Builder
	b.WriteString("🎯 **تفاصيل المنتج** | **Product Details**\n")
	b.WriteString(divider)
	b.WriteString("\n")
	fmt.Fprintf(&b, "🏷️ **%s**\n\n", p.Name.Get(lang))
	fmt.Fprintf(&b, "📸 %s\n\n", ImageMarker(p.ImageURL))
	fmt.Fprintf(&b, "📝 **%s:**\n%s\n\n", i18n.Pick(lang, "Description", "الوصف"), p.Description.Get(lang))
	fmt.Fprintf(&b, "💰 **%s:** %s\n\n", i18n.Pick(lang, "Price", "السعر"), FormatPrice(symbol, p.Price))

	if p.Available() {
		b.WriteString(i18n.Pick(lang, "✅ **Status:** Available Now\n\n", "✅ **الحالة:** متوفر الآن\n\n"))
	} else {
		b.WriteString(i18n.Pick(lang, "❌ **Status:** Currently Out of Stock\n\n", "❌ **الحالة:** غير متوفر حالياً\n\n"))
	}

	if len(details.Features) > 0 {
		fmt.Fprintf(&b, "⭐ **%s:**\n", i18n.Pick(lang, "Features", "المميزات"))
		for _, f := range details.Features {
			fmt.Fprintf(&b, "  🔸 %s\n", f)
		}
		b.WriteString("\n")
	}
	if len(details.Specifications) > 0 {
		fmt.Fprintf(&b, "🔧 **%s:**\n", i18n.Pick(lang, "Specifications", "المواصفات"))
		for _, k := range sortedKeys(details.Specifications) {
			fmt.Fprintf(&b, "  🔹 %s: %s\n", k, details.Specifications[k])
		}
		b.WriteString("\n")
	}

	b.WriteString(divider)
	b.WriteString("\n")
	b.WriteString(i18n.Pick(lang, "🛒 **Want to order this product?**\n\n", "🛒 **هل تريد طلب هذا المنتج؟**\n\n"))
	b.WriteString(i18n.Pick(lang,
		"💬 Type \"I want to order this product\" or \"how to buy\" and we'll help you complete your order!\n\n",
		"💬 اكتب \"أريد طلب هذا المنتج\" أو \"كيف أشتري\" وسنساعدك في إتمام الطلب!\n\n"))
	b.WriteString(i18n.Pick(lang,
		"📱 Or you can contact us directly via WhatsApp for quick ordering!",
		"📱 أو يمكنك التواصل معنا مباشرة عبر واتساب لطلب سريع!"))
	return b.String()
}

// NewProductsMessage shows the most recently added products, newest last in
// the catalog so we take the tail.
func NewProductsMessage(products []domain.Product, lang i18n.Lang, symbol string) string {
	if len(products) == 0 {
		return i18n.Pick(lang,
			"✨ No new arrivals right now. Check back soon!",
			"✨ لا توجد منتجات جديدة حالياً. عد قريباً!")
	}

	latest := products
	if len(latest) > 3 {
		latest = latest[len(latest)-3:]
	}

	var b strings.Builder
	b.WriteString(i18n.Pick(lang,
		"✨ **New Arrivals at Jeancro:**\n\n",
		"✨ **وصل حديثاً إلى جين كرو:**\n\n"))
	for _, p := range latest {
		b.WriteString(divider)
		fmt.Fprintf(&b, "🆕 **%s**\n\n", p.Name.Get(lang))
		fmt.Fprintf(&b, "📝 *%s*\n\n", Truncate(p.Description.Get(lang), 80))
		fmt.Fprintf(&b, "💰 **%s:** %s\n", i18n.Pick(lang, "Price", "السعر"), FormatPrice(symbol, p.Price))
		b.WriteString(availabilityLine(p, lang))
	}
	b.WriteString(divider)
	b.WriteString("\n")
	b.WriteString(i18n.Pick(lang,
		"🔍 For more product details: type \"product number 1\"",
		"🔍 لمعرفة تفاصيل أكثر عن منتج: اكتب \"المنتج رقم 1\""))
	return b.String()
}

// CategoryProductsMessage lists only the products of one category, keeping
// their catalog numbering so "product number N" follow-ups still work.
func CategoryProductsMessage(cat domain.Category, products []domain.Product, lang i18n.Lang, symbol string) string {
	var matched []int
	for i, p := range products {
		if p.CategoryID == cat.ID {
			matched = append(matched, i)
		}
	}
	if len(matched) == 0 {
		return fmt.Sprintf(i18n.Pick(lang,
			"🛍️ Sorry, there are no products in %s at the moment.",
			"🛍️ عذراً، لا توجد منتجات في قسم %s حالياً."), cat.Name.Get(lang))
	}

	var b strings.Builder
	fmt.Fprintf(&b, i18n.Pick(lang,
		"🛍️ **%s Collection at Jeancro:**\n\n",
		"🛍️ **تشكيلة %s في جين كرو:**\n\n"), cat.Name.Get(lang))
	for _, i := range matched {
		p := products[i]
		b.WriteString(divider)
		fmt.Fprintf(&b, "📦 **%d. %s**\n\n", i+1, p.Name.Get(lang))
		fmt.Fprintf(&b, "📝 *%s*\n\n", Truncate(p.Description.Get(lang), 60))
		fmt.Fprintf(&b, "💰 **%s:** %s\n", i18n.Pick(lang, "Price", "السعر"), FormatPrice(symbol, p.Price))
		b.WriteString(availabilityLine(p, lang))
	}
	b.WriteString(divider)
	b.WriteString("\n")
	b.WriteString(i18n.Pick(lang,
		"🔍 For more product details: type \"product number 1\"",
		"🔍 لمعرفة تفاصيل أكثر عن منتج: اكتب \"المنتج رقم 1\""))
	return b.String()
}

// StoreInfoMessage renders the about-the-store card from live settings.
func StoreInfoMessage(st domain.StoreSettings, lang i18n.Lang) string {
	var b strings.Builder
	fmt.Fprintf(&b, i18n.Pick(lang,
		"🏬 **About %s:**\n\n",
		"🏬 **عن متجر %s:**\n\n"), st.StoreName)
	b.WriteString(divider)
	b.WriteString("\n")
	b.WriteString(i18n.Pick(lang,
		"👕 An online clothing store for Men, Women, and Kids, plus accessories.\n\n",
		"👕 متجر ملابس إلكتروني للرجال والنساء والأطفال، بالإضافة إلى الإكسسوارات.\n\n"))
	b.WriteString(i18n.Pick(lang, "🎯 **What we promise:**\n", "🎯 **ما نعدك به:**\n"))
	b.WriteString(i18n.Pick(lang,
		"  🔸 High-quality products\n  🔸 Competitive prices\n  🔸 Fast and reliable delivery\n\n",
		"  🔸 منتجات عالية الجودة\n  🔸 أسعار تنافسية\n  🔸 توصيل سريع وموثوق\n\n"))
	if st.WhatsAppNumber != "" {
		fmt.Fprintf(&b, i18n.Pick(lang,
			"💚 **WhatsApp:** %s\n\n",
			"💚 **واتساب:** %s\n\n"), st.WhatsAppNumber)
	}
	b.WriteString(divider)
	b.WriteString("\n")
	b.WriteString(i18n.Pick(lang,
		"💡 Type \"products\" to browse our collection!",
		"💡 اكتب \"المنتجات\" لتصفح تشكيلتنا!"))
	return b.String()
}

// StoreStatsMessage summarises catalog counts per category.
func StoreStatsMessage(snap Snapshot, lang i18n.Lang) string {
	var b strings.Builder
	b.WriteString(i18n.Pick(lang, "📊 **Store Statistics:**\n\n", "📊 **إحصائيات المتجر:**\n\n"))
	b.WriteString(divider)
	b.WriteString("\n")
	fmt.Fprintf(&b, i18n.Pick(lang,
		"📦 **Products:** %d\n",
		"📦 **المنتجات:** %d\n"), len(snap.Products))
	fmt.Fprintf(&b, i18n.Pick(lang,
		"🗂️ **Categories:** %d\n\n",
		"🗂️ **الأقسام:** %d\n\n"), len(snap.Categories))

	if len(snap.Categories) > 0 {
		b.WriteString(i18n.Pick(lang, "**Per category:**\n", "**حسب القسم:**\n"))
		for _, c := range snap.Categories {
			n := 0
			for _, p := range snap.Products {
				if p.CategoryID == c.ID {
					n++
				}
			}
			fmt.Fprintf(&b, "  🔹 %s: %d\n", c.Name.Get(lang), n)
		}
		b.WriteString("\n")
	}
	b.WriteString(divider)
	b.WriteString("\n")
	b.WriteString(i18n.Pick(lang,
		"🔍 Type \"products\" to see them all!",
		"🔍 اكتب \"المنتجات\" لعرضها كلها!"))
	return b.String()
}

// OrderingInstructionsMessage is a fixed guide, no live data involved.
func OrderingInstructionsMessage(lang i18n.Lang) string {
	if lang == i18n.AR {
		return `🛍️ **دليل الطلب السريع - متجر جينكرو**
━━━━━━━━━━━━━━━━━━

✨ **خطوات بسيطة لطلبك:**

🔍 **1. تصفح واختر**
   • تصفح مجموعة منتجاتنا المميزة
   • اختر المنتج الذي يعجبك

📱 **2. أرسل طلبك بسهولة**
   • اضغط على "إضافة إلى السلة"
   • اضغط على زر "إرسال عبر WhatsApp"
   • سيتم فتح واتساب مع تفاصيل طلبك جاهزة

⚡ **3. تأكيد فوري**
   • فريقنا سيرد عليك خلال دقائق
   • تأكيد الطلب وتفاصيل التوصيل
   • اختيار طريقة الدفع المناسبة

🚚 **4. استلام سريع**
   • توصيل مجاني للطلبات فوق 500 د.م
   • خدمة توصيل سريعة وآمنة
   • ضمان الجودة والرضا التام

💰 **طرق الدفع المتاحة:**
   ✅ الدفع عند الاستلام (مفضل)
   ✅ بطاقات الائتمان
   ✅ التحويل البنكي
   ✅ PayPal

🎯 **لماذا جينكرو؟**
   • منتجات عالية الجودة
   • أسعار تنافسية
   • خدمة عملاء مميزة
   • توصيل سريع وموثوق

📞 **هل تحتاج مساعدة؟** اكتب "تواصل" للحصول على رقم واتساب المباشر!`
	}
	return `🛍️ **Quick Order Guide - Jeancro Store**
━━━━━━━━━━━━━━━━━━

✨ **Simple Steps for Your Order:**

🔍 **1. Browse & Choose**
   • Explore our premium product collection
   • Select the product you love

📱 **2. Send Your Order Easily**
   • Click "Add to Cart"
   • Click "Send via WhatsApp" button
   • WhatsApp will open with your order details ready

⚡ **3. Instant Confirmation**
   • Our team will reply within minutes
   • Order confirmation and delivery details
   • Choose your preferred payment method

🚚 **4. Fast Delivery**
   • Free shipping for orders over 500 MAD
   • Quick and secure delivery service
   • Quality and satisfaction guarantee

💰 **Available Payment Methods:**
   ✅ Cash on Delivery (preferred)
   ✅ Credit/Debit Cards
   ✅ Bank Transfer
   ✅ PayPal

🎯 **Why Choose Jeancro?**
   • High-quality products
   • Competitive prices
   • Excellent customer service
   • Fast and reliable delivery

📞 **Need Help?** Type "contact" to get our direct WhatsApp number!`
}

// PaymentMethodsMessage is a fixed guide, no live data involved.
func PaymentMethodsMessage(lang i18n.Lang) string {
	if lang == i18n.AR {
		return `**طرق الدفع المتاحة في متجر جينكرو:**

💰 **الدفع عند الاستلام**
   - ادفع للمندوب عند وصول الطلب
   - بدون رسوم إضافية
   - الطريقة الأكثر أماناً

💳 **البطاقات البنكية**
   - Visa و Mastercard
   - دفع آمن ومشفر بتقنية SSL
   - تأكيد فوري للطلب

🏦 **التحويل البنكي**
   - تحويل مباشر لحساب المتجر
   - يرجى إرسال إيصال التحويل
   - معالجة الطلب خلال 24 ساعة

🌐 **PayPal**
   - دفع دولي آمن
   - حماية للمشتري
   - سهولة في الاستخدام

📱 **الدفع الإلكتروني**
   - عبر البنوك المحلية
   - تطبيقات الدفع الإلكتروني
   - تأكيد فوري

**ضمانات الأمان:**
✅ جميع المعاملات مشفرة
✅ عدم حفظ بيانات البطاقات
✅ إمكانية الإرجاع والاستبدال

أي طريقة دفع تفضل؟`
	}
	return `**Available Payment Methods at Jeancro:**

💰 **Cash on Delivery**
   - Pay the delivery person upon arrival
   - No additional fees
   - Most secure method

💳 **Bank Cards**
   - Visa & Mastercard accepted
   - Secure SSL encrypted payment
   - Instant order confirmation

🏦 **Bank Transfer**
   - Direct transfer to store account
   - Please send transfer receipt
   - Order processed within 24 hours

🌐 **PayPal**
   - Secure international payment
   - Buyer protection
   - Easy to use

📱 **Electronic Payment**
   - Through local banks
   - Mobile payment apps
   - Instant confirmation

**Security Guarantees:**
✅ All transactions encrypted
✅ Card details not stored
✅ Return & exchange available

Which payment method do you prefer?`
}

// ShippingInfoMessage is a fixed guide, no live data involved.
func ShippingInfoMessage(lang i18n.Lang) string {
	if lang == i18n.AR {
		return `**معلومات الشحن والتوصيل في متجر جينكرو:**

🚚 **تكلفة الشحن:**
   - مجاني للطلبات أكثر من 500 درهم
   - 30 درهم للطلبات الأقل

📍 **مناطق التوصيل:**
   - جميع أنحاء المغرب
   - التوصيل للمنزل أو المكتب
   - إمكانية الاستلام من المتجر

⏰ **أوقات التوصيل:**
   - داخل الدار البيضاء: 1-2 يوم عمل
   - المدن الرئيسية: 2-3 أيام عمل
   - المناطق النائية: 3-5 أيام عمل
   - الشحن الدولي: 7-14 يوم عمل

📦 **معالجة الطلبات:**
   - تجهيز الطلب: 24-48 ساعة
   - تأكيد الشحن عبر SMS
   - رقم تتبع للمتابعة

🕒 **أوقات العمل للتوصيل:**
   - السبت - الخميس: 9 صباحاً - 6 مساءً
   - الجمعة: راحة
   - إمكانية تحديد وقت مفضل

✅ **ضمانات التوصيل:**
   - تغليف آمن ومحترف
   - فحص المنتج قبل الاستلام
   - إرجاع مجاني في حالة عدم المطابقة

هل تريد معرفة تكلفة الشحن لمنطقتك؟`
	}
	return `**Shipping & Delivery Information at Jeancro:**

🚚 **Shipping Costs:**
   - Free for orders over 500 MAD
   - 30 MAD for smaller orders

📍 **Delivery Areas:**
   - All Morocco regions
   - Home or office delivery
   - Store pickup available

⏰ **Delivery Times:**
   - Casablanca area: 1-2 business days
   - Major cities: 2-3 business days
   - Remote areas: 3-5 business days
   - International: 7-14 business days

📦 **Order Processing:**
   - Order preparation: 24-48 hours
   - SMS shipping confirmation
   - Tracking number provided

🕒 **Delivery Hours:**
   - Saturday - Thursday: 9 AM - 6 PM
   - Friday: Rest day
   - Preferred time slot available

✅ **Delivery Guarantees:**
   - Professional secure packaging
   - Product inspection before receipt
   - Free return if not matching

Want to know shipping cost for your area?`
}

// ContactMessage renders contact channels, preferring the configured
// WhatsApp number when the store has one.
func ContactMessage(lang i18n.Lang, whatsappNumber string) string {
	var b strings.Builder
	b.WriteString(i18n.Pick(lang,
		"📞 **Contact Jeancro Store:**\n\n",
		"📞 **طرق التواصل مع متجر جينكرو:**\n\n"))
	b.WriteString(divider)
	b.WriteString("\n")

	if whatsappNumber != "" {
		b.WriteString(i18n.Pick(lang,
			"💚 **WhatsApp (Preferred Method):**\n",
			"💚 **واتساب (الطريقة المفضلة):**\n"))
		fmt.Fprintf(&b, "📱 %s\n\n", whatsappNumber)
		b.WriteString(i18n.Pick(lang, "🚀 **Benefits:**\n", "🚀 **المميزات:**\n"))
		b.WriteString(i18n.Pick(lang,
			"  🔸 Quick response within minutes\n  🔸 Send product images\n  🔸 Instant order confirmation\n  🔸 Order status tracking\n\n",
			"  🔸 رد سريع خلال دقائق\n  🔸 إرسال صور للمنتجات\n  🔸 تأكيد الطلبات فوري\n  🔸 متابعة حالة الطلب\n\n"))
	} else {
		b.WriteString(i18n.Pick(lang, "💚 **WhatsApp:**\n", "💚 **واتساب:**\n"))
		b.WriteString(i18n.Pick(lang,
			"📱 Coming soon - We'll add the number shortly\n\n",
			"📱 +212123456789\n\n"))
	}

	b.WriteString(i18n.Pick(lang, "📧 **Email:**\n", "📧 **البريد الإلكتروني:**\n"))
	b.WriteString("✉️ info@jeancro.com\n\n")
	b.WriteString(i18n.Pick(lang, "🕒 **Response Times:**\n", "🕒 **أوقات الاستجابة:**\n"))
	b.WriteString(i18n.Pick(lang,
		"  🔸 WhatsApp: Instant (24/7)\n  🔸 Email: Within 24 hours\n\n",
		"  🔸 واتساب: فوري (24/7)\n  🔸 البريد: خلال 24 ساعة\n\n"))
	b.WriteString(divider)
	b.WriteString("\n")
	b.WriteString(i18n.Pick(lang,
		"💡 **Tip:** Type \"I want to order\" and I'll help you prepare and send your order directly via WhatsApp!",
		"💡 **نصيحة:** اكتب \"أريد طلب\" وسأساعدك في إعداد طلبك وإرساله مباشرة عبر واتساب!"))
	return b.String()
}

// WelcomeMessage opens a fresh conversation after a reset.
func WelcomeMessage(lang i18n.Lang, storeName string, now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, i18n.Pick(lang,
		"👋 **Welcome to %s!**\n\n",
		"👋 **مرحباً بك في %s!**\n\n"), storeName)
	fmt.Fprintf(&b, "📅 %s\n\n", now.Format("2006-01-02"))
	b.WriteString(i18n.Pick(lang,
		"I'm here to help you browse, order, and answer questions.\n\n",
		"أنا هنا لمساعدتك في التصفح والطلب والإجابة عن أسئلتك.\n\n"))
	b.WriteString(i18n.Pick(lang,
		"🔍 Type \"products\" to browse\n🛒 Type \"how to order\" for ordering steps\n📞 Type \"contact\" to reach us",
		"🔍 اكتب \"المنتجات\" للتصفح\n🛒 اكتب \"كيف أطلب\" لخطوات الطلب\n📞 اكتب \"تواصل\" للوصول إلينا"))
	return b.String()
}

// FallbackMessage is returned when the generative call fails. It must always
// be displayable and points the user at the keyword shortcuts that never
// need the AI path.
func FallbackMessage(lang i18n.Lang, whatsappNumber string) string {
	var b strings.Builder
	b.WriteString(i18n.Pick(lang,
		"An error occurred. Please try again.\n\n",
		"حدث خطأ. يرجى المحاولة مرة أخرى.\n\n"))
	b.WriteString(i18n.Pick(lang,
		"💡 Meanwhile I can still help with these shortcuts:\n🔍 \"products\"\n📞 \"contact\"\n🛒 \"how to order\"",
		"💡 في هذه الأثناء يمكنني المساعدة عبر هذه الاختصارات:\n🔍 \"المنتجات\"\n📞 \"تواصل\"\n🛒 \"كيف أطلب\""))
	if whatsappNumber != "" {
		fmt.Fprintf(&b, i18n.Pick(lang,
			"\n\n💚 WhatsApp: %s",
			"\n\n💚 واتساب: %s"), whatsappNumber)
	}
	return b.String()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
