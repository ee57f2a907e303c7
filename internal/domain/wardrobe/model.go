package wardrobe

// MinItems is the smallest wardrobe the presentation boundary forwards to the flow.
const MinItems = 2

// DefaultMaxItems bounds how many photos a single request may carry.
const DefaultMaxItems = 12

// ClothingItem is one piece the user owns.
type ClothingItem struct {
	PhotoDataURI string `json:"photoDataUri" validate:"required,photo"`
	Description  string `json:"description" validate:"notblank"`
	Type         string `json:"type" validate:"notblank"`
	Color        string `json:"color" validate:"notblank"`
}

// Request carries the user's wardrobe.
type Request struct {
	ClothingItems []ClothingItem `json:"clothingItems" validate:"required,min=1,dive"`
}

// OutfitItem references a wardrobe piece inside a suggested outfit.
type OutfitItem struct {
	Type        string `json:"type" validate:"notblank"`
	Description string `json:"description" validate:"notblank"`
}

// Outfit is one combination built from the wardrobe.
type Outfit struct {
	Description string       `json:"description" validate:"notblank"`
	Items       []OutfitItem `json:"items" validate:"required,min=1,dive"`
}

// Response lists the outfits the stylist assembled.
type Response struct {
	Outfits []Outfit `json:"suggestedOutfits" validate:"required,dive"`
}

// Config wires runtime knobs for the wardrobe flow.
type Config struct {
	Temperature   float32
	MaxPhotoBytes int
	MaxItems      int
}
