package bodyanalysis

// Request carries the photo to analyze.
type Request struct {
	PhotoDataURI string `json:"photoDataUri" validate:"required,photo"`
}

// Response is the body type and skin undertone read from the photo.
type Response struct {
	BodyType  string `json:"bodyType" validate:"notblank"`
	Undertone string `json:"undertone" validate:"notblank"`
}

// Config wires runtime knobs for the analysis flow.
type Config struct {
	Temperature   float32
	MaxPhotoBytes int
}
