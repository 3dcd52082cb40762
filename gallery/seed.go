package gallery

import (
	"time"

	"bigtreat/models"
)

func seedGallery() []models.GalleryItem {
	now := time.Now()
	return []models.GalleryItem{
		{
			ID:          "1",
			Title:       "Traditional Wedding Decoration",
			Category:    "weddings",
			Description: "Beautiful traditional wedding setup with cultural elements",
			ImageURL:    "https://images.unsplash.com/photo-1519225421980-715cb0215aed?w=500&h=400&fit=crop",
			Date:        "2024-01-15",
			Location:    "Benin City",
			Tags:        []string{"wedding", "traditional", "decoration"},
			IsActive:    true,
			CreatedAt:   now,
		},
		{
			ID:          "2",
			Title:       "Modern Event Setup",
			Category:    "events",
			Description: "Contemporary corporate event decoration",
			ImageURL:    "https://images.unsplash.com/photo-1511795409834-ef04bbd61622?w=500&h=400&fit=crop",
			Date:        "2024-01-20",
			Location:    "Lagos",
			Tags:        []string{"corporate", "modern", "events"},
			IsActive:    true,
			CreatedAt:   now,
		},
		{
			ID:          "3",
			Title:       "Bridal Makeup Session",
			Category:    "makeup",
			Description: "Professional bridal makeup and styling",
			ImageURL:    "https://images.unsplash.com/photo-148741291-2498d0a9d4e5?w=500&h=400&fit=crop",
			Date:        "2024-01-25",
			Location:    "Benin City",
			Tags:        []string{"bridal", "makeup", "beauty"},
			IsActive:    true,
			CreatedAt:   now,
		},
		{
			ID:          "4",
			Title:       "Traditional Bead Jewelry",
			Category:    "beads",
			Description: "Handcrafted traditional bead accessories",
			ImageURL:    "https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?w=500&h=400&fit=crop",
			Date:        "2024-02-01",
			Location:    "Benin City",
			Tags:        []string{"beads", "traditional", "jewelry"},
			IsActive:    true,
			CreatedAt:   now,
		},
		{
			ID:          "5",
			Title:       "Elegant Wedding Cake",
			Category:    "cakes",
			Description: "Custom-designed wedding cake with floral decoration",
			ImageURL:    "https://images.unsplash.com/photo-1578985545062-69928b1d9587?w=500&h=400&fit=crop",
			Date:        "2024-02-05",
			Location:    "Benin City",
			Tags:        []string{"wedding", "cake", "custom"},
			IsActive:    true,
			CreatedAt:   now,
		},
		{
			ID:          "6",
			Title:       "Traditional Hair Styling",
			Category:    "hair",
			Description: "Benin traditional hair styling for cultural events",
			ImageURL:    "https://images.unsplash.com/photo-1562322140-8baeececf3df?w=500&h=400&fit=crop",
			Date:        "2024-02-10",
			Location:    "Benin City",
			Tags:        []string{"traditional", "hair", "cultural"},
			IsActive:    true,
			CreatedAt:   now,
		},
	}
}
