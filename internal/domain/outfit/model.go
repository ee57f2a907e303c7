package outfit

// Request describes the user the outfit is for.
type Request struct {
	BodyType     string `json:"bodyType" validate:"notblank"`
	BodyShape    string `json:"bodyShape" validate:"notblank"`
	ColorPalette string `json:"colorPalette" validate:"notblank"`
}

// Response is a suggested outfit and the stylist's reasoning.
type Response struct {
	SuggestedOutfit []string `json:"suggestedOutfit" validate:"required,min=1,dive,notblank"`
	Reasoning       string   `json:"reasoning" validate:"notblank"`
}

// Catalog lists the values offered by the recommendation form.
type Catalog struct {
	BodyTypes     []string `json:"bodyTypes"`
	BodyShapes    []string `json:"bodyShapes"`
	ColorPalettes []string `json:"colorPalettes"`
}

// Config wires runtime knobs for the pairing flow.
type Config struct {
	Temperature float32
}
