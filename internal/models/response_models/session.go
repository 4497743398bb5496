package response_models

type TripFormResponse struct {
	City      string   `json:"city"`
	Days      int      `json:"days"`
	Budget    int      `json:"budget"`
	Interests []string `json:"interests"`
}

type SessionResponse struct {
	ID        string            `json:"id"`
	State     string            `json:"state"`
	Loading   bool              `json:"loading"`
	Form      *TripFormResponse `json:"form,omitempty"`
	Itinerary *Itinerary        `json:"itinerary,omitempty"`
	CreatedAt string            `json:"created_at"`
	UpdatedAt string            `json:"updated_at"`
}

type SharePayload struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	URL   string `json:"url"`
}

// ShareResponse carries the native share payload plus the text a client
// without a share sheet copies to the clipboard.
type ShareResponse struct {
	Payload       SharePayload `json:"payload"`
	ClipboardText string       `json:"clipboard_text"`
	ExpiresAt     string       `json:"expires_at"`
}
