package handler

type createBrandRequest struct {
	Name    string `json:"name"     validate:"required"`
	LogoURL string `json:"logo_url" validate:"omitempty,url"`
}

type updateBrandRequest struct {
	Name    string `json:"name"     validate:"omitempty,min=1"`
	LogoURL string `json:"logo_url" validate:"omitempty,url"`
}

type createCarModelRequest struct {
	BrandID     string `json:"brand_id"    validate:"required"`
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description"`
}

type createGenerationRequest struct {
	ModelID   string `json:"model_id"   validate:"required"`
	Name      string `json:"name"       validate:"required"`
	StartYear int    `json:"start_year" validate:"required,gte=1900"`
	EndYear   int    `json:"end_year"   validate:"omitempty,gte=1900"`
}

type createEngineRequest struct {
	GenerationID string `json:"generation_id" validate:"required"`
	Name         string `json:"name"          validate:"required"`
	FuelType     string `json:"fuel_type"     validate:"required,oneof=petrol diesel hybrid electric"`
	HorsePower   int    `json:"horse_power"   validate:"required,gt=0"`
	CapacityCcm  int    `json:"capacity_ccm"  validate:"omitempty,gt=0"`
}

type createColorRequest struct {
	Name    string `json:"name"     validate:"required"`
	HexCode string `json:"hex_code" validate:"required"`
}

type updateColorRequest struct {
	Name    string `json:"name"     validate:"omitempty,min=1"`
	HexCode string `json:"hex_code" validate:"omitempty"`
}

type createPaintingRequest struct {
	GenerationID string  `json:"generation_id" validate:"required"`
	ColorID      string  `json:"color_id"      validate:"required"`
	Price        float64 `json:"price"         validate:"gte=0"`
}

type createCommentRequest struct {
	Text   string `json:"text"   validate:"required,min=1,max=2000"`
	Rating int    `json:"rating" validate:"required,gte=1,lte=5"`
}
