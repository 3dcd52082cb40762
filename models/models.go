package models

import "time"

// Booking statuses
const (
	BookingPending   = "pending"
	BookingConfirmed = "confirmed"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
)

type Booking struct {
	ID                  string    `json:"id" bson:"id"`
	CustomerName        string    `json:"customerName" bson:"customerName"`
	CustomerEmail       string    `json:"customerEmail" bson:"customerEmail"`
	CustomerPhone       string    `json:"customerPhone" bson:"customerPhone"`
	ServiceID           string    `json:"serviceId" bson:"serviceId"`
	ServiceName         string    `json:"serviceName" bson:"serviceName"`
	EventDate           string    `json:"eventDate" bson:"eventDate"`
	EventTime           string    `json:"eventTime,omitempty" bson:"eventTime,omitempty"`
	EventLocation       string    `json:"eventLocation,omitempty" bson:"eventLocation,omitempty"`
	GuestCount          int       `json:"guestCount" bson:"guestCount"`
	SpecialRequirements string    `json:"specialRequirements,omitempty" bson:"specialRequirements,omitempty"`
	Budget              float64   `json:"budget" bson:"budget"`
	Status              string    `json:"status" bson:"status"`
	AdminNotes          string    `json:"adminNotes,omitempty" bson:"adminNotes,omitempty"`
	Price               float64   `json:"price,omitempty" bson:"price,omitempty"`
	ConfirmedDate       string    `json:"confirmedDate,omitempty" bson:"confirmedDate,omitempty"`
	ConfirmedTime       string    `json:"confirmedTime,omitempty" bson:"confirmedTime,omitempty"`
	CreatedAt           time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt           time.Time `json:"updatedAt" bson:"updatedAt"`
}

type ContactMessage struct {
	ID        string    `json:"id" bson:"id"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Subject   string    `json:"subject" bson:"subject"`
	Message   string    `json:"message" bson:"message"`
	Status    string    `json:"status" bson:"status"`
	Read      bool      `json:"read" bson:"read"`
	Notes     string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           string    `json:"id" bson:"id"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"passwordHash"`
	Role         string    `json:"role" bson:"role"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}

type Service struct {
	ID          string    `json:"id" bson:"id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description" bson:"description"`
	Price       float64   `json:"price" bson:"price"`
	Category    string    `json:"category" bson:"category"`
	Duration    string    `json:"duration" bson:"duration"`
	Features    []string  `json:"features" bson:"features"`
	ImageURL    string    `json:"imageUrl" bson:"imageUrl"`
	IsActive    bool      `json:"isActive" bson:"isActive"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

type GalleryItem struct {
	ID          string    `json:"id" bson:"id"`
	Title       string    `json:"title" bson:"title"`
	Category    string    `json:"category" bson:"category"`
	Description string    `json:"description" bson:"description"`
	ImageURL    string    `json:"imageUrl" bson:"imageUrl"`
	Date        string    `json:"date" bson:"date"`
	Location    string    `json:"location" bson:"location"`
	Tags        []string  `json:"tags" bson:"tags"`
	IsActive    bool      `json:"isActive" bson:"isActive"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}
