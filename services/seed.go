package services

import (
	"time"

	"bigtreat/models"
)

// seedServices is the six-service catalog the site launches with. It backs
// the in-process store until the document store takes over.
func seedServices() []models.Service {
	now := time.Now()
	return []models.Service{
		{
			ID:          "1",
			Name:        "Wedding Event Planning",
			Description: "Complete wedding planning and coordination services. From venue selection to timeline management, we ensure your special day runs perfectly.",
			Price:       150000,
			Category:    "event-planning",
			Duration:    "3-6 months",
			Features:    []string{"Venue selection", "Vendor coordination", "Timeline management", "Day-of coordination", "Budget management", "Guest list management"},
			ImageURL:    "https://images.unsplash.com/photo-1519225421980-715cb0215aed?w=500&h=400&fit=crop",
			IsActive:    true,
			CreatedAt:   now,
		},
		{
			ID:          "2",
			Name:        "Bridal Makeup & Beauty",
			Description: "Professional makeup services for brides and special occasions. We use high-quality products to create stunning, long-lasting looks.",
			Price:       45000,
			Category:    "makeup",
			Duration:    "2-4 hours",
			Features:    []string{"Bridal makeup", "Bridal party makeup", "Hair styling", "Nail services", "Touch-up services", "Product consultation"},
			ImageURL:    "https://images.unsplash.com/photo-148741291-2498d0a9d4e5?w=500&h=400&fit=crop",
			IsActive:    true,
			CreatedAt:   now,
		},
		{
			ID:          "3",
			Name:        "Traditional Bead Making",
			Description: "Handcrafted bead jewelry and accessories with traditional and modern designs. Perfect for cultural events and personal adornment.",
			Price:       25000,
			Category:    "bead-making",
			Duration:    "1-7 days",
			Features:    []string{"Traditional designs", "Custom patterns", "Wedding accessories", "Cultural pieces", "Workshop training", "Repair services"},
			ImageURL:    "https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?w=500&h=400&fit=crop",
			IsActive:    true,
			CreatedAt:   now,
		},
		{
			ID:          "4",
			Name:        "Benin Traditional Hair",
			Description: "Expert traditional hair styling including Benin cultural hairstyles, modern twists, and special occasion hair designs.",
			Price:       35000,
			Category:    "hair-styling",
			Duration:    "3-6 hours",
			Features:    []string{"Traditional Benin styles", "Modern interpretations", "Wedding hair", "Cultural events", "Hair care advice", "Accessory integration"},
			ImageURL:    "https://images.unsplash.com/photo-1562322140-8baeececf3df?w=500&h=400&fit=crop",
			IsActive:    true,
			CreatedAt:   now,
		},
		{
			ID:          "5",
			Name:        "Custom Wedding Cakes",
			Description: "Beautiful and delicious custom-designed wedding cakes. We create stunning cakes that taste as amazing as they look.",
			Price:       75000,
			Category:    "cakes",
			Duration:    "3-7 days",
			Features:    []string{"Custom design consultation", "Flavor selection", "Dietary accommodations", "Delivery and setup", "Cake topper design", "Tasting sessions"},
			ImageURL:    "https://images.unsplash.com/photo-1578985545062-69928b1d9587?w=500&h=400&fit=crop",
			IsActive:    true,
			CreatedAt:   now,
		},
		{
			ID:          "6",
			Name:        "Corporate Event Decoration",
			Description: "Professional decoration services for corporate events, conferences, and business functions. Create impressive and professional atmospheres.",
			Price:       100000,
			Category:    "decoration",
			Duration:    "1-3 days",
			Features:    []string{"Theme-based decoration", "Flower arrangements", "Lighting setup", "Backdrop design", "Table centerpieces", "Brand integration"},
			ImageURL:    "https://images.unsplash.com/photo-1511795409834-ef04bbd61622?w=500&h=400&fit=crop",
			IsActive:    true,
			CreatedAt:   now,
		},
	}
}
