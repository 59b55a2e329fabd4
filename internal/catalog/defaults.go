package catalog

import "github.com/shopspring/decimal"

func defaultProducts() []Product {
	return []Product{
		{
			Slug:        "starmoon-ai-device",
			Title:       "Starmoon AI Device",
			Description: "The Starmoon AI device provides all AI characters packed into one fully assembled compact device that can be added to any object",
			ImageSrc:    "/images/front_view.png",
			Features: []string{
				"Dimensions: 4.5cm x 3.8cm x 1.9cm",
				"2-month FREE access to Starmoon AI subscription",
				"Unlimited access to Starmoon characters till we deliver your device",
				"On-the-go empathic companion for anyone",
				"Access any AI character from the Starmoon universe",
				"Compact and easy to use",
				"Customizable to fit any object",
				"Over 4 days standby and 6 hours of continuous voice interaction",
				"Understand your conversational insights",
			},
			Components:    []string{"The Starmoon AI device", "USB-C cable"},
			OriginalPrice: decimal.NewFromInt(89),
			Price:         decimal.RequireFromString("57.99"),
			Tag:           "Most Popular",
			PaymentLink:   "https://buy.stripe.com/eVa3cfb5E9TJ3cs6ou",
			Shadow:        "0 4px 6px rgba(255, 215, 0, 0.2), 0 8px 24px rgba(218, 165, 32, 0.5) !important;",
		},
		{
			Slug:        "starmoon-ai-diy-dev-kit",
			Title:       "Starmoon AI DIY Dev Kit",
			Description: "The Starmoon AI Dev Kit is a fully programmable set of components for developers to create their own AI characters and integrate them into their projects.",
			ImageSrc:    "/images/devkit.png",
			Features: []string{
				"All hardware components included in your Starmoon kit. No soldering required.",
				"Unlimited access to Starmoon characters on our website till we deliver your device",
				"Tools to create your own AI character",
				"Integrate your AI character into your projects",
				"Access to the Starmoon AI SDK",
				"Access to the Starmoon AI Discord community",
			},
			Components: []string{
				"Mini ESP32-S3 device",
				"Microphone module",
				"Speaker module",
				"Battery module",
				"LED light module",
				"Switch",
				"USB-C cable",
			},
			OriginalPrice: decimal.NewFromInt(69),
			Price:         decimal.RequireFromString("45.99"),
			Tag:           "Best Value",
			PaymentLink:   "https://buy.stripe.com/3cs6ora1A2rheVa3cj",
			Shadow:        "0 4px 6px rgba(135, 206, 235, 0.2), 0 8px 24px rgba(70, 130, 180, 0.5) !important;",
		},
	}
}
