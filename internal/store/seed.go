package store

import (
	"jeancro/internal/domain"
	"jeancro/internal/i18n"
)

// Default catalog used to seed an empty database, carried over from the
// storefront's shipped demo data.

func DefaultCategories() []domain.Category {
	return []domain.Category{
		{ID: "cat1", Name: i18n.Text{i18n.EN: "Men", i18n.AR: "رجال"}},
		{ID: "cat2", Name: i18n.Text{i18n.EN: "Women", i18n.AR: "نساء"}},
		{ID: "cat3", Name: i18n.Text{i18n.EN: "Kids", i18n.AR: "أطفال"}},
		{ID: "cat4", Name: i18n.Text{i18n.EN: "Accessories", i18n.AR: "إكسسوارات"}},
	}
}

func DefaultProducts() []domain.Product {
	return []domain.Product{
		{
			ID:   "prod1",
			Name: i18n.Text{i18n.EN: "Crochet Jacket", i18n.AR: "جاكيت كروشيه"},
			Description: i18n.Text{
				i18n.EN: "Handmade crochet jacket with vintage square patterns in cream and brown tones. Perfect for stylish, cozy outfits.",
				i18n.AR: "جاكيت كروشيه يدوي بنقوش مربعة كلاسيكية بألوان الكريمي والبني. مثالي لإطلالة أنيقة ودافئة.",
			},
			Price:      300,
			ImageURL:   "/assets/img/image01.jpg",
			Images:     []string{"/assets/img/image01.jpg", "/assets/img/image05.jpg", "/assets/img/image06.jpg"},
			CategoryID: "cat1",
			Details: map[i18n.Lang]domain.ProductDetails{
				i18n.EN: {
					Features:       []string{"100% Cotton", "Handmade", "Vintage Design"},
					Specifications: map[string]string{"Material": "Cotton", "Size": "L", "Color": "Cream & Brown"},
				},
				i18n.AR: {
					Features:       []string{"قطن 100%", "صناعة يدوية", "تصميم كلاسيكي"},
					Specifications: map[string]string{"الخامة": "قطن", "المقاس": "L", "اللون": "كريمي وبني"},
				},
			},
		},
		{
			ID:          "prod2",
			Name:        i18n.Text{i18n.EN: "Slim Fit Jeans", i18n.AR: "جينز بقصة ضيقة"},
			Description: i18n.Text{i18n.EN: "Modern slim fit jeans for a stylish look.", i18n.AR: "جينز عصري بقصة ضيقة لإطلالة أنيقة."},
			Price:       60,
			ImageURL:    "https://picsum.photos/seed/prod2/400/300",
			Images:      []string{"https://picsum.photos/seed/prod2/400/300", "https://picsum.photos/seed/prod2b/400/300"},
			CategoryID:  "cat1",
			Details: map[i18n.Lang]domain.ProductDetails{
				i18n.EN: {
					Features:       []string{"Slim Fit", "Cotton Blend", "Modern Design"},
					Specifications: map[string]string{"Material": "Cotton & Elastane", "Size": "M", "Color": "Blue"},
				},
				i18n.AR: {
					Features:       []string{"قصة ضيقة", "مزيج قطني", "تصميم عصري"},
					Specifications: map[string]string{"الخامة": "قطن وإيلاستين", "المقاس": "M", "اللون": "أزرق"},
				},
			},
		},
		{
			ID:          "prod3",
			Name:        i18n.Text{i18n.EN: "Summer Dress", i18n.AR: "فستان صيفي"},
			Description: i18n.Text{i18n.EN: "Light and airy summer dress.", i18n.AR: "فستان صيفي خفيف ومتجدد الهواء."},
			Price:       45,
			ImageURL:    "https://picsum.photos/seed/prod3/400/300",
			Images:      []string{"https://picsum.photos/seed/prod3/400/300", "https://picsum.photos/seed/prod3b/400/300"},
			CategoryID:  "cat2",
			Details: map[i18n.Lang]domain.ProductDetails{
				i18n.EN: {
					Features:       []string{"Lightweight", "Cotton Fabric", "Summer Design"},
					Specifications: map[string]string{"Material": "Cotton", "Size": "M", "Color": "White"},
				},
				i18n.AR: {
					Features:       []string{"خفيف الوزن", "قماش قطني", "تصميم صيفي"},
					Specifications: map[string]string{"الخامة": "قطن", "المقاس": "M", "اللون": "أبيض"},
				},
			},
		},
		{
			ID:          "prod4",
			Name:        i18n.Text{i18n.EN: "Leather Belt", i18n.AR: "حزام جلدي"},
			Description: i18n.Text{i18n.EN: "Genuine leather belt with a classic buckle.", i18n.AR: "حزام من الجلد الطبيعي بإبزيم كلاسيكي."},
			Price:       30,
			ImageURL:    "https://picsum.photos/seed/prod4/400/300",
			Images:      []string{"https://picsum.photos/seed/prod4/400/300", "https://picsum.photos/seed/prod4b/400/300"},
			CategoryID:  "cat4",
			Details: map[i18n.Lang]domain.ProductDetails{
				i18n.EN: {
					Features:       []string{"Genuine Leather", "Classic Design", "Durable"},
					Specifications: map[string]string{"Material": "Leather", "Size": "M", "Color": "Brown"},
				},
				i18n.AR: {
					Features:       []string{"جلد طبيعي", "تصميم كلاسيكي", "متين"},
					Specifications: map[string]string{"الخامة": "جلد", "المقاس": "M", "اللون": "بني"},
				},
			},
		},
		{
			ID:          "prod5",
			Name:        i18n.Text{i18n.EN: "Kids Hoodie", i18n.AR: "هودي أطفال"},
			Description: i18n.Text{i18n.EN: "Warm and cozy hoodie for kids.", i18n.AR: "هودي دافئ ومريح للأطفال."},
			Price:       35,
			ImageURL:    "https://picsum.photos/seed/prod5/400/300",
			Images:      []string{"https://picsum.photos/seed/prod5/400/300", "https://picsum.photos/seed/prod5b/400/300"},
			CategoryID:  "cat3",
			Details: map[i18n.Lang]domain.ProductDetails{
				i18n.EN: {
					Features:       []string{"Warm Material", "Kid Friendly", "Easy Care"},
					Specifications: map[string]string{"Material": "Cotton Blend", "Size": "Kids L", "Color": "Gray"},
				},
				i18n.AR: {
					Features:       []string{"خامة دافئة", "مناسب للأطفال", "سهل العناية"},
					Specifications: map[string]string{"الخامة": "مزيج قطني", "المقاس": "L أطفال", "اللون": "رمادي"},
				},
			},
		},
		{
			ID:          "prod6",
			Name:        i18n.Text{i18n.EN: "Elegant Blouse", i18n.AR: "بلوزة أنيقة"},
			Description: i18n.Text{i18n.EN: "Chic blouse for formal or casual occasions.", i18n.AR: "بلوزة أنيقة للمناسبات الرسمية أو غير الرسمية."},
			Price:       50,
			ImageURL:    "https://picsum.photos/seed/prod6/400/300",
			Images:      []string{"https://picsum.photos/seed/prod6/400/300", "https://picsum.photos/seed/prod6b/400/300"},
			CategoryID:  "cat2",
			Details: map[i18n.Lang]domain.ProductDetails{
				i18n.EN: {
					Features:       []string{"Elegant Design", "Versatile Style", "Premium Fabric"},
					Specifications: map[string]string{"Material": "Silk Blend", "Size": "M", "Color": "White"},
				},
				i18n.AR: {
					Features:       []string{"تصميم أنيق", "ستايل متعدد الاستخدامات", "قماش فاخر"},
					Specifications: map[string]string{"الخامة": "مزيج حرير", "المقاس": "M", "اللون": "أبيض"},
				},
			},
		},
	}
}

func DefaultFAQs() []domain.FAQ {
	return []domain.FAQ{
		{
			ID:       "faq1",
			Question: i18n.Text{i18n.EN: "What are the shipping options?", i18n.AR: "ما هي خيارات الشحن؟"},
			Answer:   i18n.Text{i18n.EN: "We offer standard and express shipping.", i18n.AR: "نحن نقدم الشحن القياسي والسريع."},
		},
		{
			ID:       "faq2",
			Question: i18n.Text{i18n.EN: "What is your return policy?", i18n.AR: "ما هي سياسة الإرجاع الخاصة بكم؟"},
			Answer:   i18n.Text{i18n.EN: "You can return items within 30 days of purchase.", i18n.AR: "يمكنك إرجاع المنتجات خلال 30 يومًا من تاريخ الشراء."},
		},
		{
			ID:       "faq3",
			Question: i18n.Text{i18n.EN: "How can I track my order?", i18n.AR: "كيف يمكنني تتبع طلبي؟"},
			Answer:   i18n.Text{i18n.EN: "Once your order is shipped, you will receive a tracking number via email.", i18n.AR: "بمجرد شحن طلبك، ستتلقى رقم تتبع عبر البريد الإلكتروني."},
		},
	}
}

func DefaultAds() []domain.Ad {
	return []domain.Ad{
		{
			ID:          "ad1",
			ImageURL:    "https://picsum.photos/seed/ad1/800/200",
			LinkURL:     "#",
			Title:       i18n.Text{i18n.EN: "Summer Collection Out Now!", i18n.AR: "تشكيلة الصيف متوفرة الآن!"},
			Description: i18n.Text{i18n.EN: "Discover the latest trends for this summer.", i18n.AR: "اكتشف أحدث الصيحات لهذا الصيف."},
			Placement:   "homepage-banner",
			IsActive:    true,
		},
		{
			ID:          "ad2",
			ImageURL:    "https://picsum.photos/seed/ad2/300/250",
			LinkURL:     "#",
			Title:       i18n.Text{i18n.EN: "Special Discount on Accessories", i18n.AR: "خصم خاص على الإكسسوارات"},
			Description: i18n.Text{i18n.EN: "Get 20% off on all accessories.", i18n.AR: "احصل على خصم 20% على جميع الإكسسوارات."},
			Placement:   "sidebar",
			IsActive:    true,
		},
	}
}

func DefaultSettings() domain.StoreSettings {
	return domain.StoreSettings{
		StoreName:       "Jeancro",
		DefaultLanguage: i18n.EN,
		CurrencySymbol:  "د.م",
		WhatsAppNumber:  "+12345678900",
		SocialLinks: domain.SocialLinks{
			Facebook:  "https://facebook.com/jeancro",
			Instagram: "https://instagram.com/jeancro",
			Twitter:   "https://twitter.com/jeancro",
		},
		Appearance: domain.Appearance{PrimaryColor: "#4f46e5"},
		SEO: domain.SEOMeta{
			Title:       "Jeancro | Clothing & Accessories",
			Description: "Men's, Women's and Kids' clothing and accessories.",
		},
		ChatWidget: domain.ChatWidget{
			Enabled: true,
			WelcomeMessage: i18n.Text{
				i18n.EN: "Hello! How can I help you today? You can ask about our products, shipping, or return policy.",
				i18n.AR: "مرحباً! كيف يمكنني مساعدتك اليوم؟ يمكنك السؤال عن منتجاتنا، الشحن، أو سياسة الإرجاع.",
			},
			AutoShow: false,
		},
		Shipping: domain.Shipping{
			Cost:          30,
			FreeThreshold: 500,
			Methods:       []string{"standard", "express"},
		},
	}
}
