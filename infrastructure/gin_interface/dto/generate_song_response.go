package dto

// GenerateSongResponse acknowledges an accepted submission. RawResponse is
// only present when the upstream reply contained no recognizable job IDs.
type GenerateSongResponse struct {
	TaskIDs     []string `json:"task_ids"`
	ClipIDs     []string `json:"clip_ids"`
	Lyrics      string   `json:"lyrics"`
	RawResponse string   `json:"raw_response,omitempty"`
}
