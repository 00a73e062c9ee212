package dto

// GenerateSongRequest is the optional body of POST /generate-song. With a
// SourceURL the lyrics come from that article; without one the service
// aggregates current headlines.
type GenerateSongRequest struct {
	SourceURL string `json:"source_url"`
	Headline  string `json:"headline"`
	Source    string `json:"source"`
	Tags      string `json:"tags"`
}
