package content

// seedContent is the default marketing copy each section starts with.
func seedContent() map[string]Section {
	return map[string]Section{
		"home": {
			"heroTitle":    "Creating Magical Moments That Last Forever",
			"heroSubtitle": "From elegant weddings to corporate events, we transform your vision into reality with professional event planning, stunning decorations, and exceptional beauty services.",
			"heroImage":    "",
			"videoUrl":     "",
			"stats": []Section{
				{"number": "500+", "label": "Happy Clients", "icon": "Users"},
				{"number": "1000+", "label": "Events Completed", "icon": "Calendar"},
				{"number": "5+", "label": "Years Experience", "icon": "Award"},
				{"number": "100%", "label": "Satisfaction Rate", "icon": "Star"},
			},
			"testimonials": []Section{
				{
					"name":    "Sarah Johnson",
					"role":    "Bride",
					"content": "Big Treat made our wedding day absolutely magical. Every detail was perfect and the team was incredibly professional.",
					"avatar":  "",
				},
			},
		},
		"about": {
			"title":       "About Us",
			"description": "Big Treat Unique Centre Nigeria Ltd is a leading event and beauty business in Benin City.",
			"heroImage":   "",
			"team": []Section{
				{
					"name":  "Mrs. Grace Okafor",
					"role":  "Founder",
					"bio":   "Grace is the visionary behind Big Treat, with over 10 years of experience in event planning and beauty services.",
					"photo": "",
				},
			},
			"stats": []Section{
				{"number": "500+", "label": "Happy Clients", "icon": "Heart"},
				{"number": "1000+", "label": "Events Completed", "icon": "Calendar"},
				{"number": "5+", "label": "Years Experience", "icon": "Award"},
				{"number": "100%", "label": "Satisfaction Rate", "icon": "Star"},
			},
		},
		"contact": {
			"address":  "No 1 Upper Lawani Road, By New Benin Market, Benin City, Edo State, Nigeria",
			"phone":    "+2348035491639",
			"email":    "info@bigtreat.com",
			"mapEmbed": "",
			"businessHours": []string{
				"Monday - Saturday: 8:00 AM - 8:00 PM",
				"Sunday: By Appointment",
			},
		},
	}
}
