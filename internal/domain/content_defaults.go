package domain

// DefaultFAQ is served until an admin stores a "faq" section.
var DefaultFAQ = FAQSection{
	Title:    "Frequently Asked Questions",
	Subtitle: "Quick Answers to Some Frequently Asked Questions",
	Image:    "/images/blogs/blog5.jpg",
	ImageAlt: "FAQ decorative image",
	CTALabel: "Get Support",
	Items: []FAQItem{
		{
			Question: "Do you offer fresh vegetables and fruits daily?",
			Answer:   "Yes, we receive fresh stock of vegetables and fruits every morning directly from trusted local farms and suppliers to ensure maximum freshness and quality.",
		},
		{
			Question: "Are your products organic?",
			Answer:   "We offer a wide selection of organic vegetables and fruits. Look for items labeled \"organic\" in our store or filter your search online by the organic category.",
		},
		{
			Question: "Do you provide home delivery?",
			Answer:   "Yes, we offer same-day delivery within the city on orders placed before 4 PM. Delivery slots can be chosen during checkout. Free delivery is available on orders above ₹499.",
		},
		{
			Question: "What is your return or replacement policy for groceries?",
			Answer:   "If you're not satisfied with the quality of any item, we offer easy replacements or refunds within 24 hours of delivery. Just contact our support team with your order ID.",
		},
		{
			Question: "How do you ensure hygiene and freshness?",
			Answer:   "All our fruits and vegetables are cleaned, handled with care, and stored in temperature-controlled environments. Our team follows strict hygiene protocols from farm to doorstep.",
		},
	},
}

// DefaultVideo is served until an admin stores a "video" section.
var DefaultVideo = VideoSection{
	Heading:    "Why You Should Have a Healthy Vegetable and Fruits",
	Subheading: "Fresh fruits and vegetables play a vital role in boosting overall wellness, reducing stress, and filling your day with natural energy.",
	EmbedURL:   "https://www.youtube.com/embed/NRz1E2x8anw",
	Title:      "Do's & Don'ts In Consuming Vegetables | Dr. Hansaji Yogendra",
}

// DefaultSection returns the built-in content for key, if there is one.
func DefaultSection(key string) (any, bool) {
	switch key {
	case SectionFAQ:
		return DefaultFAQ, true
	case SectionVideo:
		return DefaultVideo, true
	}
	return nil, false
}
