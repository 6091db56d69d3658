package domain

import "time"

// Brand is a car manufacturer (e.g. Audi).
type Brand struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	LogoURL   string    `json:"logo_url,omitempty" bson:"logo_url,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// CarModel is a model line belonging to a brand (e.g. A4).
type CarModel struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	BrandID     string    `json:"brand_id" bson:"brand_id"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// Generation is one production run of a model (e.g. B8, 2008-2015).
type Generation struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	ModelID   string    `json:"model_id" bson:"model_id"`
	Name      string    `json:"name" bson:"name"`
	StartYear int       `json:"start_year" bson:"start_year"`
	EndYear   int       `json:"end_year,omitempty" bson:"end_year,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Engine describes a powertrain offered for a generation.
type Engine struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	GenerationID string    `json:"generation_id" bson:"generation_id"`
	Name         string    `json:"name" bson:"name"`
	FuelType     string    `json:"fuel_type" bson:"fuel_type"`
	HorsePower   int       `json:"horse_power" bson:"horse_power"`
	CapacityCcm  int       `json:"capacity_ccm" bson:"capacity_ccm"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// Color is a named paint color with a normalized hex code.
type Color struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	HexCode   string    `json:"hex_code" bson:"hex_code"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}

// Painting is a color offered for a generation at a given surcharge.
type Painting struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	GenerationID string    `json:"generation_id" bson:"generation_id"`
	ColorID      string    `json:"color_id" bson:"color_id"`
	Price        float64   `json:"price" bson:"price"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}

// Comment is a user's rated remark on a car model.
type Comment struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UserID    string    `json:"user_id" bson:"user_id"`
	ModelID   string    `json:"model_id" bson:"model_id"`
	Text      string    `json:"text" bson:"text"`
	Rating    int       `json:"rating" bson:"rating"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
