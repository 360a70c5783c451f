package models

import "time"

// Review is a customer testimonial shown on the public site.
type Review struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Text      string    `bson:"text" json:"text"`
	Rating    int       `bson:"rating" json:"rating"`
	PhotoURL  string    `bson:"photoUrl,omitempty" json:"photo_url,omitempty"`
	Date      time.Time `bson:"date" json:"date"`
	IsActive  bool      `bson:"isActive" json:"is_active"`
	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
}

// Advantage is a "why us" card on the landing page.
type Advantage struct {
	ID          string    `bson:"id" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Icon        string    `bson:"icon" json:"icon"`
	IsActive    bool      `bson:"isActive" json:"is_active"`
	SortOrder   int       `bson:"sortOrder" json:"sort_order"`
	CreatedAt   time.Time `bson:"createdAt" json:"created_at"`
}

// GalleryItem is a before/after photo pair. The public IDs track the
// uploaded media so it can be removed from storage with the item.
type GalleryItem struct {
	ID             string    `bson:"id" json:"id"`
	BeforeImage    string    `bson:"beforeImage" json:"before_image"`
	AfterImage     string    `bson:"afterImage" json:"after_image"`
	BeforePublicID string    `bson:"beforePublicId,omitempty" json:"before_public_id,omitempty"`
	AfterPublicID  string    `bson:"afterPublicId,omitempty" json:"after_public_id,omitempty"`
	Caption        string    `bson:"caption,omitempty" json:"caption,omitempty"`
	IsActive       bool      `bson:"isActive" json:"is_active"`
	SortOrder      int       `bson:"sortOrder" json:"sort_order"`
	CreatedAt      time.Time `bson:"createdAt" json:"created_at"`
}

// SocialLinks groups the company's messenger/social handles.
type SocialLinks struct {
	WhatsApp  string `bson:"whatsapp,omitempty" json:"whatsapp,omitempty"`
	Telegram  string `bson:"telegram,omitempty" json:"telegram,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	Facebook  string `bson:"facebook,omitempty" json:"facebook,omitempty"`
}

// CompanyInfo is the singleton contact/company document.
type CompanyInfo struct {
	Phone     string      `bson:"phone" json:"phone"`
	Email     string      `bson:"email" json:"email"`
	Address   string      `bson:"address" json:"address"`
	Social    SocialLinks `bson:"social" json:"social_links"`
	MapLat    *float64    `bson:"mapLat,omitempty" json:"map_lat,omitempty"`
	MapLng    *float64    `bson:"mapLng,omitempty" json:"map_lng,omitempty"`
	UpdatedAt time.Time   `bson:"updatedAt" json:"updated_at"`
}

// LevelDescription is the public description card for one cleaning level.
type LevelDescription struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	IncludedItems []string `json:"included_items"`
}
